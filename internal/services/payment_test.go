package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// stubPaymentStorage подменяет хранилище платежей в тестах.
type stubPaymentStorage struct {
	createInstallment         func(ctx context.Context, orderID int64, montant float64, dateVersement time.Time) (*database.VersementDB, error)
	findInstallments          func(ctx context.Context, orderID int64) ([]database.VersementDB, error)
	sumInstallments           func(ctx context.Context, orderID int64) (float64, error)
	findOrderIncludingDeleted func(ctx context.Context, orderID int64) (*database.OrderDB, error)
}

func (s *stubPaymentStorage) CreateInstallment(ctx context.Context, orderID int64, montant float64, dateVersement time.Time) (*database.VersementDB, error) {
	return s.createInstallment(ctx, orderID, montant, dateVersement)
}

func (s *stubPaymentStorage) FindInstallments(ctx context.Context, orderID int64) ([]database.VersementDB, error) {
	return s.findInstallments(ctx, orderID)
}

func (s *stubPaymentStorage) SumInstallments(ctx context.Context, orderID int64) (float64, error) {
	return s.sumInstallments(ctx, orderID)
}

func (s *stubPaymentStorage) FindOrderIncludingDeleted(ctx context.Context, orderID int64) (*database.OrderDB, error) {
	return s.findOrderIncludingDeleted(ctx, orderID)
}

// Платёж без даты должен получить дату обработки запроса.
func TestRegisterPaymentDefaultsDate(t *testing.T) {
	var receivedDate time.Time

	storage := &stubPaymentStorage{
		createInstallment: func(_ context.Context, orderID int64, montant float64, dateVersement time.Time) (*database.VersementDB, error) {
			receivedDate = dateVersement
			return &database.VersementDB{
				ID:              1,
				CommandeID:      orderID,
				Montant:         montant,
				DateVersement:   dateVersement,
				NumeroVersement: 1,
			}, nil
		},
	}

	service := NewPaymentService(storage)

	before := time.Now()
	payment, err := service.RegisterPayment(context.Background(), 5, 500, nil)
	after := time.Now()

	require.NoError(t, err)
	assert.Equal(t, int64(5), payment.CommandeID)
	assert.Equal(t, 1, payment.NumeroVersement)
	assert.False(t, receivedDate.Before(before))
	assert.False(t, receivedDate.After(after))
}

// Явная дата платежа передаётся в хранилище без изменений.
func TestRegisterPaymentKeepsExplicitDate(t *testing.T) {
	date, _ := time.Parse(time.RFC3339, "2024-07-22T10:00:00Z")

	storage := &stubPaymentStorage{
		createInstallment: func(_ context.Context, orderID int64, montant float64, dateVersement time.Time) (*database.VersementDB, error) {
			assert.True(t, dateVersement.Equal(date))
			return &database.VersementDB{
				ID:              2,
				CommandeID:      orderID,
				Montant:         montant,
				DateVersement:   dateVersement,
				NumeroVersement: 3,
			}, nil
		},
	}

	service := NewPaymentService(storage)

	payment, err := service.RegisterPayment(context.Background(), 5, 100, &date)

	require.NoError(t, err)
	assert.Equal(t, 3, payment.NumeroVersement)
	assert.True(t, payment.DateVersement.Equal(date))
}

// Ошибки хранилища переводятся в ошибки сервиса.
func TestRegisterPaymentTranslatesErrors(t *testing.T) {
	testCases := []struct {
		testName    string
		storageErr  error
		expectedErr error
	}{
		{
			testName:    "несуществующий заказ",
			storageErr:  database.ErrOrderNotFound,
			expectedErr: ErrOrderNotFound,
		},
		{
			testName:    "недоставленный заказ",
			storageErr:  database.ErrOrderNotDeliverable,
			expectedErr: ErrOrderNotDeliverable,
		},
		{
			testName:    "четвёртый платёж",
			storageErr:  database.ErrInstallmentLimit,
			expectedErr: ErrInstallmentLimitExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			storage := &stubPaymentStorage{
				createInstallment: func(context.Context, int64, float64, time.Time) (*database.VersementDB, error) {
					return nil, tc.storageErr
				},
			}

			_, err := NewPaymentService(storage).RegisterPayment(context.Background(), 5, 500, nil)

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

// История платежей сохраняет порядок хранилища и номера платежей.
func TestGetHistory(t *testing.T) {
	date, _ := time.Parse(time.RFC3339, "2024-07-22T10:00:00Z")

	storage := &stubPaymentStorage{
		findInstallments: func(context.Context, int64) ([]database.VersementDB, error) {
			return []database.VersementDB{
				{ID: 1, CommandeID: 5, Montant: 500, DateVersement: date, NumeroVersement: 1},
				{ID: 2, CommandeID: 5, Montant: 500, DateVersement: date.Add(time.Hour), NumeroVersement: 2},
				{ID: 3, CommandeID: 5, Montant: 500, DateVersement: date.Add(2 * time.Hour), NumeroVersement: 3},
			}, nil
		},
	}

	history, err := NewPaymentService(storage).GetHistory(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, item := range history {
		assert.Equal(t, i+1, item.NumeroVersement)
	}
}

// История по заказу без платежей — пустой список, а не ошибка.
func TestGetHistoryUnknownOrder(t *testing.T) {
	storage := &stubPaymentStorage{
		findInstallments: func(context.Context, int64) ([]database.VersementDB, error) {
			return nil, nil
		},
	}

	history, err := NewPaymentService(storage).GetHistory(context.Background(), 99)

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

// Остаток к оплате: сумма заказа минус сумма платежей.
func TestGetRemainingBalance(t *testing.T) {
	testCases := []struct {
		testName     string
		montantTotal float64
		paid         float64
		expected     float64
	}{
		{
			testName:     "частично оплаченный заказ",
			montantTotal: 1500.50,
			paid:         1500.00,
			expected:     0.50,
		},
		{
			testName:     "неоплаченный заказ",
			montantTotal: 1000,
			paid:         0,
			expected:     1000,
		},
		{
			testName:     "переплаченный заказ даёт отрицательный остаток",
			montantTotal: 1000,
			paid:         1200,
			expected:     -200,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			storage := &stubPaymentStorage{
				findOrderIncludingDeleted: func(_ context.Context, orderID int64) (*database.OrderDB, error) {
					return &database.OrderDB{
						ID:           orderID,
						MontantTotal: tc.montantTotal,
						Etat:         models.StatusDelivered,
					}, nil
				},
				sumInstallments: func(context.Context, int64) (float64, error) {
					return tc.paid, nil
				},
			}

			restant, err := NewPaymentService(storage).GetRemainingBalance(context.Background(), 5)

			require.NoError(t, err)
			assert.InDelta(t, tc.expected, restant, 1e-9)
		})
	}
}

// Остаток по несуществующему заказу недоступен.
func TestGetRemainingBalanceOrderNotFound(t *testing.T) {
	storage := &stubPaymentStorage{
		findOrderIncludingDeleted: func(context.Context, int64) (*database.OrderDB, error) {
			return nil, nil
		},
	}

	_, err := NewPaymentService(storage).GetRemainingBalance(context.Background(), 99)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
