package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

var ErrRecordNotFound = errors.New("запись не найдена")

// crudExecutor расширяет DBExecutor выборкой нескольких строк.
type crudExecutor interface {
	DBExecutor
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// TableSpec описывает таблицу для универсального хранилища: имя, изменяемые
// колонки и функции сканирования строки и извлечения значений модели.
type TableSpec[T any] struct {
	Table   string
	Columns []string
	Scan    func(row pgx.Row) (*T, error)
	Values  func(item *T) []interface{}
}

// CRUDStore универсальное хранилище справочных сущностей с мягким удалением.
// Запросы собираются один раз при создании по описанию таблицы.
type CRUDStore[T any] struct {
	db   crudExecutor
	spec TableSpec[T]

	selectAllQuery  string
	selectByIDQuery string
	insertQuery     string
	updateQuery     string
	deleteQuery     string
}

// NewCRUDStore собирает хранилище по описанию таблицы.
func NewCRUDStore[T any](d *Database, spec TableSpec[T]) *CRUDStore[T] {
	columns := strings.Join(spec.Columns, ", ")

	placeholders := make([]string, len(spec.Columns))
	assignments := make([]string, len(spec.Columns))
	for i, column := range spec.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	return &CRUDStore[T]{
		db:   d.db,
		spec: spec,
		selectAllQuery: fmt.Sprintf(
			"SELECT id, %s FROM %s WHERE deleted_at IS NULL ORDER BY id",
			columns, spec.Table),
		selectByIDQuery: fmt.Sprintf(
			"SELECT id, %s FROM %s WHERE id = $1 AND deleted_at IS NULL",
			columns, spec.Table),
		insertQuery: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			spec.Table, columns, strings.Join(placeholders, ", ")),
		updateQuery: fmt.Sprintf(
			"UPDATE %s SET %s WHERE id = $1 AND deleted_at IS NULL",
			spec.Table, strings.Join(assignments, ", ")),
		deleteQuery: fmt.Sprintf(
			"UPDATE %s SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL",
			spec.Table),
	}
}

// FindAll возвращает все неудалённые записи по возрастанию id.
func (s *CRUDStore[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.Query(ctx, s.selectAllQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки из %s: %w", s.spec.Table, err)
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		item, err := s.spec.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка обработки строки %s: %w", s.spec.Table, err)
		}
		result = append(result, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// FindByID ищет неудалённую запись по id. Если записи нет, возвращает nil без ошибки.
func (s *CRUDStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	item, err := s.spec.Scan(s.db.QueryRow(ctx, s.selectByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска в %s: %w", s.spec.Table, err)
	}
	return item, nil
}

// Create вставляет запись и возвращает присвоенный id.
func (s *CRUDStore[T]) Create(ctx context.Context, item *T) (int64, error) {
	var id int64
	if err := s.db.QueryRow(ctx, s.insertQuery, s.spec.Values(item)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка вставки в %s: %w", s.spec.Table, err)
	}
	return id, nil
}

// Update обновляет неудалённую запись. Возвращает ErrRecordNotFound, если записи нет.
func (s *CRUDStore[T]) Update(ctx context.Context, id int64, item *T) error {
	args := append([]interface{}{id}, s.spec.Values(item)...)
	tag, err := s.db.Exec(ctx, s.updateQuery, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления %s: %w", s.spec.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// SoftDelete помечает запись удалённой. Возвращает ErrRecordNotFound, если записи нет.
func (s *CRUDStore[T]) SoftDelete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, s.deleteQuery, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления из %s: %w", s.spec.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}
