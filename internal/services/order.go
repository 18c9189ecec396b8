package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/utils"
)

var (
	ErrOrderNotFound     = errors.New("заказ не найден")
	ErrOrderAccessDenied = errors.New("заказ принадлежит другому пользователю")
)

// OrderService сервис заказов ответственного по закупкам.
type OrderService struct {
	storage OrderStorage
}

// OrderStorage определяет интерфейс для взаимодействия с хранилищем заказов
type OrderStorage interface {
	CreateOrder(ctx context.Context, userID int64, dateLivraison time.Time, montantTotal float64) (*database.OrderDB, error)
	FindOrder(ctx context.Context, orderID int64) (*database.OrderDB, error)
	FindOwnerOrders(ctx context.Context, userID int64, filter models.OrderFilter) ([]database.OrderDB, error)
	SoftDeleteOrder(ctx context.Context, orderID int64) (bool, error)
}

// NewOrderService создает новый экземпляр OrderService с заданным хранилищем
func NewOrderService(storage OrderStorage) *OrderService {
	return &OrderService{storage: storage}
}

// CreateOrder создает заказ в состоянии encours от имени пользователя.
func (o *OrderService) CreateOrder(ctx context.Context, userID int64, order models.UnknownOrder) (*models.Order, error) {
	if order.DateLivraison == nil {
		return nil, errors.New("дата доставки не может быть пустой")
	}
	if order.MontantTotal == nil || *order.MontantTotal < 0 {
		return nil, errors.New("сумма заказа не может быть пустой или отрицательной")
	}

	created, err := o.storage.CreateOrder(ctx, userID, order.DateLivraison.Time, *order.MontantTotal)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании заказа: %w", err)
	}

	result := orderFromDB(*created)
	return &result, nil
}

// GetOwnerOrders возвращает заказы пользователя с необязательным фильтром
// по состоянию и периоду создания.
func (o *OrderService) GetOwnerOrders(ctx context.Context, userID int64, filter models.OrderFilter) ([]models.Order, error) {
	orders, err := o.storage.FindOwnerOrders(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заказов: %w", err)
	}

	result := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, orderFromDB(order))
	}

	return result, nil
}

// CancelOrder помечает заказ пользователя удалённым. Отменить можно только свой заказ.
func (o *OrderService) CancelOrder(ctx context.Context, userID, orderID int64) error {
	order, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("ошибка при поиске заказа: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.UserID != userID {
		return ErrOrderAccessDenied
	}

	deleted, err := o.storage.SoftDeleteOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("ошибка при отмене заказа: %w", err)
	}
	if !deleted {
		return ErrOrderNotFound
	}

	return nil
}

// orderFromDB переводит строку базы данных в модель ответа.
func orderFromDB(order database.OrderDB) models.Order {
	return models.Order{
		ID:            order.ID,
		UserID:        order.UserID,
		DateCommande:  utils.RFC3339Date{Time: order.DateCommande},
		DateLivraison: utils.RFC3339Date{Time: order.DateLivraison},
		MontantTotal:  order.MontantTotal,
		Etat:          order.Etat,
	}
}
