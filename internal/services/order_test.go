package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/utils"
)

// stubOrderStorage подменяет хранилище заказов в тестах.
type stubOrderStorage struct {
	createOrder     func(ctx context.Context, userID int64, dateLivraison time.Time, montantTotal float64) (*database.OrderDB, error)
	findOrder       func(ctx context.Context, orderID int64) (*database.OrderDB, error)
	findOwnerOrders func(ctx context.Context, userID int64, filter models.OrderFilter) ([]database.OrderDB, error)
	softDeleteOrder func(ctx context.Context, orderID int64) (bool, error)
}

func (s *stubOrderStorage) CreateOrder(ctx context.Context, userID int64, dateLivraison time.Time, montantTotal float64) (*database.OrderDB, error) {
	return s.createOrder(ctx, userID, dateLivraison, montantTotal)
}

func (s *stubOrderStorage) FindOrder(ctx context.Context, orderID int64) (*database.OrderDB, error) {
	return s.findOrder(ctx, orderID)
}

func (s *stubOrderStorage) FindOwnerOrders(ctx context.Context, userID int64, filter models.OrderFilter) ([]database.OrderDB, error) {
	return s.findOwnerOrders(ctx, userID, filter)
}

func (s *stubOrderStorage) SoftDeleteOrder(ctx context.Context, orderID int64) (bool, error) {
	return s.softDeleteOrder(ctx, orderID)
}

// Новый заказ создаётся в состоянии encours.
func TestCreateOrder(t *testing.T) {
	date, _ := time.Parse(time.RFC3339, "2024-07-25T00:00:00Z")

	storage := &stubOrderStorage{
		createOrder: func(_ context.Context, userID int64, dateLivraison time.Time, montantTotal float64) (*database.OrderDB, error) {
			return &database.OrderDB{
				ID:            5,
				UserID:        userID,
				DateCommande:  time.Now(),
				DateLivraison: dateLivraison,
				MontantTotal:  montantTotal,
				Etat:          models.StatusPending,
			}, nil
		},
	}

	order, err := NewOrderService(storage).CreateOrder(context.Background(), 4, models.UnknownOrder{
		DateLivraison: &utils.RFC3339Date{Time: date},
		MontantTotal:  float64Ptr(1500.5),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Etat)
	assert.Equal(t, int64(4), order.UserID)
	assert.Equal(t, 1500.5, order.MontantTotal)
}

// Заказ без даты доставки или суммы не создаётся.
func TestCreateOrderValidation(t *testing.T) {
	date, _ := time.Parse(time.RFC3339, "2024-07-25T00:00:00Z")
	service := NewOrderService(&stubOrderStorage{})

	_, err := service.CreateOrder(context.Background(), 4, models.UnknownOrder{
		MontantTotal: float64Ptr(100),
	})
	assert.Error(t, err)

	_, err = service.CreateOrder(context.Background(), 4, models.UnknownOrder{
		DateLivraison: &utils.RFC3339Date{Time: date},
	})
	assert.Error(t, err)

	_, err = service.CreateOrder(context.Background(), 4, models.UnknownOrder{
		DateLivraison: &utils.RFC3339Date{Time: date},
		MontantTotal:  float64Ptr(-1),
	})
	assert.Error(t, err)
}

// Отменить можно только собственный заказ.
func TestCancelOrder(t *testing.T) {
	storage := &stubOrderStorage{
		findOrder: func(_ context.Context, orderID int64) (*database.OrderDB, error) {
			if orderID == 99 {
				return nil, nil
			}
			return &database.OrderDB{ID: orderID, UserID: 4, Etat: models.StatusPending}, nil
		},
		softDeleteOrder: func(context.Context, int64) (bool, error) {
			return true, nil
		},
	}

	service := NewOrderService(storage)

	assert.NoError(t, service.CancelOrder(context.Background(), 4, 5))
	assert.ErrorIs(t, service.CancelOrder(context.Background(), 4, 99), ErrOrderNotFound)
	assert.ErrorIs(t, service.CancelOrder(context.Background(), 7, 5), ErrOrderAccessDenied)
}

func float64Ptr(v float64) *float64 {
	return &v
}
