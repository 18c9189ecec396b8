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

// stubStatsStorage подменяет хранилище показателей в тестах.
type stubStatsStorage struct {
	balances []database.OrderBalanceDB

	pendingCount   int
	deliveryCount  int
	paymentsTotal  float64
	receivedWindow [2]time.Time
}

func (s *stubStatsStorage) FindOrderBalances(context.Context) ([]database.OrderBalanceDB, error) {
	return s.balances, nil
}

func (s *stubStatsStorage) CountOrdersByState(context.Context, models.OrderStatus) (int, error) {
	return s.pendingCount, nil
}

func (s *stubStatsStorage) CountDeliveriesBetween(_ context.Context, from, to time.Time) (int, error) {
	s.receivedWindow = [2]time.Time{from, to}
	return s.deliveryCount, nil
}

func (s *stubStatsStorage) SumPaymentsBetween(context.Context, time.Time, time.Time) (float64, error) {
	return s.paymentsTotal, nil
}

// Долг по поставщику: положительные остатки по всем заказам без учёта состояния.
func TestGetDebtBySupplier(t *testing.T) {
	storage := &stubStatsStorage{
		balances: []database.OrderBalanceDB{
			// Два заказа одного поставщика с долгом.
			{ID: 1, UserID: 3, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 500},
			{ID: 2, UserID: 3, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 0},
			// Полностью оплаченный заказ долга не даёт.
			{ID: 3, UserID: 3, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 1000},
			// Переплата долг других заказов не уменьшает.
			{ID: 4, UserID: 8, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 1200},
			// Недоставленный заказ входит в долг всей суммой.
			{ID: 5, UserID: 8, Etat: models.StatusPending, MontantTotal: 700, MontantVerse: 0},
			{ID: 6, UserID: 8, Etat: models.StatusPaid, MontantTotal: 700, MontantVerse: 0},
		},
	}

	debts, err := NewStatsService(storage).GetDebtBySupplier(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]float64{3: 1500, 8: 1400}, debts)
}

// Поставщик только с недоставленным заказом всё равно числится в должниках.
func TestGetDebtBySupplierPendingOnly(t *testing.T) {
	storage := &stubStatsStorage{
		balances: []database.OrderBalanceDB{
			{ID: 1, UserID: 7, Etat: models.StatusPending, MontantTotal: 700, MontantVerse: 0},
		},
	}

	debts, err := NewStatsService(storage).GetDebtBySupplier(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]float64{7: 700}, debts)
}

// Заказы в работе: доставленные и не полностью оплаченные.
func TestGetOrdersInProgress(t *testing.T) {
	storage := &stubStatsStorage{
		balances: []database.OrderBalanceDB{
			{ID: 1, UserID: 3, Etat: models.StatusDelivered, MontantTotal: 1500.5, MontantVerse: 1000},
			{ID: 2, UserID: 3, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 1000},
			{ID: 3, UserID: 8, Etat: models.StatusPending, MontantTotal: 700, MontantVerse: 0},
		},
	}

	orders, err := NewStatsService(storage).GetOrdersInProgress(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderInProgress{
		CommandeID:     1,
		FournisseurID:  3,
		MontantTotal:   1500.5,
		MontantVerse:   1000,
		MontantRestant: 500.5,
	}, orders[0])
}

// Сводные показатели за день складываются из четырёх выборок.
func TestGetDailyStats(t *testing.T) {
	storage := &stubStatsStorage{
		balances: []database.OrderBalanceDB{
			{ID: 1, UserID: 3, Etat: models.StatusDelivered, MontantTotal: 2000, MontantVerse: 500},
			{ID: 2, UserID: 8, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 0},
			{ID: 3, UserID: 8, Etat: models.StatusDelivered, MontantTotal: 1000, MontantVerse: 1000},
			// Недоставленный заказ входит в суммарный долг.
			{ID: 4, UserID: 9, Etat: models.StatusPending, MontantTotal: 700, MontantVerse: 0},
		},
		pendingCount:  2,
		deliveryCount: 1,
		paymentsTotal: 500,
	}

	now, _ := time.Parse(time.RFC3339, "2024-07-22T15:30:00Z")

	stats, err := NewStatsService(storage).GetDailyStats(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, models.DailyStats{
		NbCommandesEncours:       2,
		NbCommandesLivraisonJour: 1,
		DetteTotale:              3200,
		TotalVersementsJour:      500,
	}, stats)
}

// Окно дня: полуинтервал от полуночи до полуночи следующего дня.
func TestGetDailyStatsWindowBoundaries(t *testing.T) {
	testCases := []struct {
		testName     string
		now          string
		expectedFrom string
		expectedTo   string
	}{
		{
			testName:     "секунда до полуночи относится к текущему дню",
			now:          "2024-07-22T23:59:59Z",
			expectedFrom: "2024-07-22T00:00:00Z",
			expectedTo:   "2024-07-23T00:00:00Z",
		},
		{
			testName:     "секунда после полуночи относится к новому дню",
			now:          "2024-07-23T00:00:01Z",
			expectedFrom: "2024-07-23T00:00:00Z",
			expectedTo:   "2024-07-24T00:00:00Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			storage := &stubStatsStorage{}

			now, _ := time.Parse(time.RFC3339, tc.now)
			expectedFrom, _ := time.Parse(time.RFC3339, tc.expectedFrom)
			expectedTo, _ := time.Parse(time.RFC3339, tc.expectedTo)

			_, err := NewStatsService(storage).GetDailyStats(context.Background(), now)

			require.NoError(t, err)
			assert.True(t, storage.receivedWindow[0].Equal(expectedFrom))
			assert.True(t, storage.receivedWindow[1].Equal(expectedTo))
		})
	}
}

// Окно дня считается в часовом поясе переданного момента.
func TestDayWindowUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, 7, 22, 1, 30, 0, 0, loc)

	from, to := dayWindow(now)

	assert.Equal(t, time.Date(2024, 7, 22, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 7, 23, 0, 0, 0, 0, loc), to)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}
