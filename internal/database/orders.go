package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// SQL-запросы для работы с заказами
const (
	InsertOrderQuery = `
		INSERT INTO
			commandes (user_id, date_livraison, montant_total, etat)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date_commande
	`
	SelectOrderQuery = `
		SELECT
			id,
			user_id,
			date_commande,
			date_livraison,
			montant_total,
			etat
		FROM
			commandes
		WHERE
			id = $1
			AND deleted_at IS NULL
	`
	// SelectOrderIncludingDeletedQuery намеренно не фильтрует deleted_at:
	// исходная реализация montant-restant искала заказ через findUnique без
	// фильтра удаления, и это поведение сохранено как есть.
	SelectOrderIncludingDeletedQuery = `
		SELECT
			id,
			user_id,
			date_commande,
			date_livraison,
			montant_total,
			etat
		FROM
			commandes
		WHERE
			id = $1
	`
	SelectOwnerOrdersQuery = `
		SELECT
			id,
			user_id,
			date_commande,
			date_livraison,
			montant_total,
			etat
		FROM
			commandes
		WHERE
			user_id = $1
			AND deleted_at IS NULL
	`
	SoftDeleteOrderQuery = `
		UPDATE
			commandes
		SET
			deleted_at = now()
		WHERE
			id = $1
			AND deleted_at IS NULL
	`
	// SelectOrderBalancesQuery считает по каждому неудалённому заказу сумму
	// неудалённых платежей. Единственный источник данных для агрегатора долгов.
	SelectOrderBalancesQuery = `
		SELECT
			c.id,
			c.user_id,
			c.etat,
			c.montant_total,
			COALESCE(SUM(v.montant), 0)
		FROM
			commandes c
			LEFT JOIN versements v ON v.commande_id = c.id AND v.deleted_at IS NULL
		WHERE
			c.deleted_at IS NULL
		GROUP BY
			c.id
	`
	CountOrdersByStateQuery = `
		SELECT
			COUNT(*)
		FROM
			commandes
		WHERE
			etat = $1
			AND deleted_at IS NULL
	`
	CountDeliveriesBetweenQuery = `
		SELECT
			COUNT(*)
		FROM
			commandes
		WHERE
			date_livraison >= $1
			AND date_livraison < $2
			AND deleted_at IS NULL
	`
)

// OrderDB строка таблицы commandes.
type OrderDB struct {
	ID            int64
	UserID        int64
	DateCommande  time.Time
	DateLivraison time.Time
	MontantTotal  float64
	Etat          models.OrderStatus
}

// OrderBalanceDB заказ с суммой зарегистрированных по нему платежей.
type OrderBalanceDB struct {
	ID           int64
	UserID       int64
	Etat         models.OrderStatus
	MontantTotal float64
	MontantVerse float64
}

// CreateOrder создает новый заказ в состоянии encours
func (d *Database) CreateOrder(ctx context.Context, userID int64, dateLivraison time.Time, montantTotal float64) (*OrderDB, error) {
	order := &OrderDB{
		UserID:        userID,
		DateLivraison: dateLivraison,
		MontantTotal:  montantTotal,
		Etat:          models.StatusPending,
	}

	err := d.db.QueryRow(ctx, InsertOrderQuery,
		userID, dateLivraison, montantTotal, string(models.StatusPending)).
		Scan(&order.ID, &order.DateCommande)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания заказа: %w", err)
	}

	return order, nil
}

// FindOrder ищет неудалённый заказ по его ID. Если заказ не найден, возвращает nil без ошибки.
func (d *Database) FindOrder(ctx context.Context, orderID int64) (*OrderDB, error) {
	return d.findOrder(ctx, SelectOrderQuery, orderID)
}

// FindOrderIncludingDeleted ищет заказ по ID без фильтра мягкого удаления.
func (d *Database) FindOrderIncludingDeleted(ctx context.Context, orderID int64) (*OrderDB, error) {
	return d.findOrder(ctx, SelectOrderIncludingDeletedQuery, orderID)
}

func (d *Database) findOrder(ctx context.Context, query string, orderID int64) (*OrderDB, error) {
	order := &OrderDB{}

	var etat string
	err := d.db.QueryRow(ctx, query, orderID).
		Scan(&order.ID, &order.UserID, &order.DateCommande, &order.DateLivraison, &order.MontantTotal, &etat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска заказа: %w", err)
	}
	order.Etat = models.OrderStatus(etat)

	return order, nil
}

// FindOwnerOrders возвращает заказы пользователя с необязательными условиями
// по дате создания и состоянию, по убыванию даты создания.
func (d *Database) FindOwnerOrders(ctx context.Context, userID int64, filter models.OrderFilter) ([]OrderDB, error) {
	query := SelectOwnerOrdersQuery
	args := []interface{}{userID}

	if filter.Etat != "" {
		args = append(args, string(filter.Etat))
		query += fmt.Sprintf(" AND etat = $%d", len(args))
	}
	if filter.DateDebut != nil {
		args = append(args, *filter.DateDebut)
		query += fmt.Sprintf(" AND date_commande >= $%d", len(args))
	}
	if filter.DateFin != nil {
		args = append(args, *filter.DateFin)
		query += fmt.Sprintf(" AND date_commande <= $%d", len(args))
	}
	query += " ORDER BY date_commande DESC"

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска заказов пользователя: %w", err)
	}
	defer rows.Close()

	var result []OrderDB
	for rows.Next() {
		var item OrderDB
		var etat string
		if err := rows.Scan(&item.ID, &item.UserID, &item.DateCommande, &item.DateLivraison, &item.MontantTotal, &etat); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с заказом: %w", err)
		}
		item.Etat = models.OrderStatus(etat)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// SoftDeleteOrder помечает заказ удалённым. Возвращает true, если строка была помечена.
func (d *Database) SoftDeleteOrder(ctx context.Context, orderID int64) (bool, error) {
	tag, err := d.db.Exec(ctx, SoftDeleteOrderQuery, orderID)
	if err != nil {
		return false, fmt.Errorf("ошибка отмены заказа: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindOrderBalances возвращает все неудалённые заказы с суммой платежей по каждому.
func (d *Database) FindOrderBalances(ctx context.Context) ([]OrderBalanceDB, error) {
	rows, err := d.db.Query(ctx, SelectOrderBalancesQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки балансов заказов: %w", err)
	}
	defer rows.Close()

	var result []OrderBalanceDB
	for rows.Next() {
		var item OrderBalanceDB
		var etat string
		if err := rows.Scan(&item.ID, &item.UserID, &etat, &item.MontantTotal, &item.MontantVerse); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки баланса: %w", err)
		}
		item.Etat = models.OrderStatus(etat)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// CountOrdersByState считает неудалённые заказы в заданном состоянии.
func (d *Database) CountOrdersByState(ctx context.Context, etat models.OrderStatus) (int, error) {
	var count int
	if err := d.db.QueryRow(ctx, CountOrdersByStateQuery, string(etat)).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта заказов: %w", err)
	}
	return count, nil
}

// CountDeliveriesBetween считает неудалённые заказы с датой доставки в полуинтервале [from, to).
func (d *Database) CountDeliveriesBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	if err := d.db.QueryRow(ctx, CountDeliveriesBetweenQuery, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта доставок: %w", err)
	}
	return count, nil
}
