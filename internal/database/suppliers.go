package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// Поставщики хранятся в users с ролью fournisseur.
const (
	SelectSuppliersQuery = `
		SELECT
			id,
			nom,
			prenom,
			email
		FROM
			users
		WHERE
			role = 'fournisseur'
			AND deleted_at IS NULL
		ORDER BY
			id
	`
	SelectSupplierQuery = `
		SELECT
			id,
			nom,
			prenom,
			email
		FROM
			users
		WHERE
			id = $1
			AND role = 'fournisseur'
			AND deleted_at IS NULL
	`
	UpdateSupplierQuery = `
		UPDATE
			users
		SET
			nom = $2,
			prenom = $3,
			email = $4,
			hash = COALESCE(NULLIF($5, ''), hash)
		WHERE
			id = $1
			AND role = 'fournisseur'
			AND deleted_at IS NULL
	`
	SoftDeleteSupplierQuery = `
		UPDATE
			users
		SET
			deleted_at = now()
		WHERE
			id = $1
			AND role = 'fournisseur'
			AND deleted_at IS NULL
	`
)

// FindSuppliers возвращает всех неудалённых поставщиков.
func (d *Database) FindSuppliers(ctx context.Context) ([]models.Supplier, error) {
	rows, err := d.db.Query(ctx, SelectSuppliersQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки поставщиков: %w", err)
	}
	defer rows.Close()

	var result []models.Supplier
	for rows.Next() {
		var item models.Supplier
		if err := rows.Scan(&item.ID, &item.Nom, &item.Prenom, &item.Email); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с поставщиком: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// FindSupplierByID ищет поставщика по id. Если поставщика нет, возвращает nil без ошибки.
func (d *Database) FindSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	item := &models.Supplier{}
	if err := d.db.QueryRow(ctx, SelectSupplierQuery, id).
		Scan(&item.ID, &item.Nom, &item.Prenom, &item.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска поставщика: %w", err)
	}
	return item, nil
}

// CreateSupplier создает пользователя с ролью fournisseur.
func (d *Database) CreateSupplier(ctx context.Context, supplier models.Supplier, hash string) (int64, error) {
	var id int64
	err := d.db.QueryRow(ctx, InsertUserQuery,
		supplier.Nom, supplier.Prenom, supplier.Email, hash, string(models.RoleFournisseur)).Scan(&id)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return 0, ErrDuplicateUser
		}
		return 0, fmt.Errorf("ошибка создания поставщика: %w", err)
	}
	return id, nil
}

// UpdateSupplier обновляет данные поставщика. Пустой hash оставляет прежний
// пароль без изменений. Возвращает ErrRecordNotFound, если поставщика нет.
func (d *Database) UpdateSupplier(ctx context.Context, supplier models.Supplier, hash string) error {
	tag, err := d.db.Exec(ctx, UpdateSupplierQuery,
		supplier.ID, supplier.Nom, supplier.Prenom, supplier.Email, hash)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateUser
		}
		return fmt.Errorf("ошибка обновления поставщика: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// SoftDeleteSupplier помечает поставщика удалённым. Возвращает ErrRecordNotFound, если поставщика нет.
func (d *Database) SoftDeleteSupplier(ctx context.Context, id int64) error {
	tag, err := d.db.Exec(ctx, SoftDeleteSupplierQuery, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления поставщика: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}
