package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

var (
	ErrOrderNotFound       = errors.New("заказ не найден")
	ErrOrderNotDeliverable = errors.New("заказ не доставлен")
	ErrInstallmentLimit    = errors.New("превышен лимит платежей по заказу")
)

const (
	// SelectOrderForPaymentQuery блокирует строку заказа на время транзакции,
	// чтобы подсчёт платежей и вставка нового были сериализованы.
	SelectOrderForPaymentQuery = `
		SELECT
			etat
		FROM
			commandes
		WHERE
			id = $1
			AND deleted_at IS NULL
		FOR UPDATE
	`
	CountInstallmentsQuery = `
		SELECT
			COUNT(*)
		FROM
			versements
		WHERE
			commande_id = $1
			AND deleted_at IS NULL
	`
	InsertInstallmentQuery = `
		INSERT INTO
			versements (commande_id, montant, date_versement, numero_versement)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	SelectInstallmentsQuery = `
		SELECT
			id,
			commande_id,
			montant,
			date_versement,
			numero_versement
		FROM
			versements
		WHERE
			commande_id = $1
			AND deleted_at IS NULL
		ORDER BY
			numero_versement ASC
	`
	SumInstallmentsQuery = `
		SELECT
			COALESCE(SUM(montant), 0)
		FROM
			versements
		WHERE
			commande_id = $1
			AND deleted_at IS NULL
	`
	SumPaymentsBetweenQuery = `
		SELECT
			COALESCE(SUM(montant), 0)
		FROM
			versements
		WHERE
			date_versement >= $1
			AND date_versement < $2
			AND deleted_at IS NULL
	`
)

// maxInstallments предельное число платежей по одному заказу.
const maxInstallments = 3

// VersementDB строка таблицы versements.
type VersementDB struct {
	ID              int64
	CommandeID      int64
	Montant         float64
	DateVersement   time.Time
	NumeroVersement int
}

// CreateInstallment регистрирует платёж по заказу в одной транзакции:
// блокирует заказ, считает существующие платежи и вставляет новый со
// следующим порядковым номером. Возвращает ErrOrderNotFound, если заказа нет,
// ErrOrderNotDeliverable, если он не в состоянии livre, и ErrInstallmentLimit,
// если платежей уже три.
func (d *Database) CreateInstallment(ctx context.Context, orderID int64, montant float64, dateVersement time.Time) (*VersementDB, error) {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var etat string
	if err := tx.QueryRow(ctx, SelectOrderForPaymentQuery, orderID).Scan(&etat); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("ошибка блокировки заказа: %w", err)
	}
	if models.OrderStatus(etat) != models.StatusDelivered {
		return nil, ErrOrderNotDeliverable
	}

	var count int
	if err := tx.QueryRow(ctx, CountInstallmentsQuery, orderID).Scan(&count); err != nil {
		return nil, fmt.Errorf("ошибка подсчёта платежей: %w", err)
	}
	if count >= maxInstallments {
		return nil, ErrInstallmentLimit
	}

	payment := &VersementDB{
		CommandeID:      orderID,
		Montant:         montant,
		DateVersement:   dateVersement,
		NumeroVersement: count + 1,
	}

	err = tx.QueryRow(ctx, InsertInstallmentQuery,
		orderID, montant, dateVersement, payment.NumeroVersement).Scan(&payment.ID)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, ErrInstallmentLimit
		}
		return nil, fmt.Errorf("ошибка регистрации платежа: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return payment, nil
}

// FindInstallments возвращает платежи по заказу по возрастанию номера.
func (d *Database) FindInstallments(ctx context.Context, orderID int64) ([]VersementDB, error) {
	rows, err := d.db.Query(ctx, SelectInstallmentsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки платежей: %w", err)
	}
	defer rows.Close()

	var result []VersementDB
	for rows.Next() {
		var item VersementDB
		if err := rows.Scan(&item.ID, &item.CommandeID, &item.Montant, &item.DateVersement, &item.NumeroVersement); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с платежом: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// SumInstallments возвращает сумму платежей по заказу.
func (d *Database) SumInstallments(ctx context.Context, orderID int64) (float64, error) {
	var total float64
	if err := d.db.QueryRow(ctx, SumInstallmentsQuery, orderID).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка суммирования платежей: %w", err)
	}
	return total, nil
}

// SumPaymentsBetween возвращает сумму платежей с датой в полуинтервале [from, to).
func (d *Database) SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	if err := d.db.QueryRow(ctx, SumPaymentsBetweenQuery, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка суммирования платежей за период: %w", err)
	}
	return total, nil
}
