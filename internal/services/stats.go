package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// StatsService сервис сводных показателей по долгам и платежам.
// Долгом считается положительный остаток по любому неудалённому заказу
// независимо от его состояния; переплаченные заказы долг не уменьшают.
type StatsService struct {
	storage StatsStorage
}

// StatsStorage определяет интерфейс для взаимодействия с хранилищем показателей
type StatsStorage interface {
	FindOrderBalances(ctx context.Context) ([]database.OrderBalanceDB, error)
	CountOrdersByState(ctx context.Context, etat models.OrderStatus) (int, error)
	CountDeliveriesBetween(ctx context.Context, from, to time.Time) (int, error)
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error)
}

// NewStatsService создает новый экземпляр StatsService с заданным хранилищем
func NewStatsService(storage StatsStorage) *StatsService {
	return &StatsService{storage: storage}
}

// GetDebtBySupplier возвращает суммарный долг по каждому поставщику:
// сумму положительных остатков по всем его заказам, включая ещё не
// доставленные.
func (s *StatsService) GetDebtBySupplier(ctx context.Context) (map[int64]float64, error) {
	balances, err := s.storage.FindOrderBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении балансов заказов: %w", err)
	}

	result := make(map[int64]float64)
	for _, balance := range balances {
		if restant := balance.MontantTotal - balance.MontantVerse; restant > 0 {
			result[balance.UserID] += restant
		}
	}

	return result, nil
}

// GetOrdersInProgress возвращает доставленные, но не полностью оплаченные заказы.
func (s *StatsService) GetOrdersInProgress(ctx context.Context) ([]models.OrderInProgress, error) {
	balances, err := s.storage.FindOrderBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении балансов заказов: %w", err)
	}

	result := make([]models.OrderInProgress, 0)
	for _, balance := range balances {
		if balance.Etat != models.StatusDelivered {
			continue
		}
		restant := balance.MontantTotal - balance.MontantVerse
		if restant <= 0 {
			continue
		}
		result = append(result, models.OrderInProgress{
			CommandeID:     balance.ID,
			FournisseurID:  balance.UserID,
			MontantTotal:   balance.MontantTotal,
			MontantVerse:   balance.MontantVerse,
			MontantRestant: restant,
		})
	}

	return result, nil
}

// GetDailyStats возвращает показатели за календарный день момента now:
// число заказов в ожидании, число доставок за день, суммарный долг
// и сумму платежей за день.
func (s *StatsService) GetDailyStats(ctx context.Context, now time.Time) (models.DailyStats, error) {
	from, to := dayWindow(now)

	stats := models.DailyStats{}

	pending, err := s.storage.CountOrdersByState(ctx, models.StatusPending)
	if err != nil {
		return stats, fmt.Errorf("ошибка при подсчёте заказов в ожидании: %w", err)
	}
	stats.NbCommandesEncours = pending

	deliveries, err := s.storage.CountDeliveriesBetween(ctx, from, to)
	if err != nil {
		return stats, fmt.Errorf("ошибка при подсчёте доставок за день: %w", err)
	}
	stats.NbCommandesLivraisonJour = deliveries

	balances, err := s.storage.FindOrderBalances(ctx)
	if err != nil {
		return stats, fmt.Errorf("ошибка при получении балансов заказов: %w", err)
	}
	for _, balance := range balances {
		if restant := balance.MontantTotal - balance.MontantVerse; restant > 0 {
			stats.DetteTotale += restant
		}
	}

	payments, err := s.storage.SumPaymentsBetween(ctx, from, to)
	if err != nil {
		return stats, fmt.Errorf("ошибка при суммировании платежей за день: %w", err)
	}
	stats.TotalVersementsJour = payments

	return stats, nil
}

// dayWindow возвращает полуинтервал [полночь; полночь следующего дня)
// в часовом поясе момента now.
func dayWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}
