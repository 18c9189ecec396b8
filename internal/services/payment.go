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
	ErrOrderNotDeliverable      = errors.New("заказ не доставлен")
	ErrInstallmentLimitExceeded = errors.New("превышен лимит из трёх платежей по заказу")
)

// PaymentService сервис регистрации платежей по заказам. Платежи по заказу
// нумеруются подряд начиная с единицы, не более трёх на заказ, и принимаются
// только по доставленным заказам.
type PaymentService struct {
	storage PaymentStorage
}

// PaymentStorage определяет интерфейс для взаимодействия с хранилищем платежей
type PaymentStorage interface {
	CreateInstallment(ctx context.Context, orderID int64, montant float64, dateVersement time.Time) (*database.VersementDB, error)
	FindInstallments(ctx context.Context, orderID int64) ([]database.VersementDB, error)
	SumInstallments(ctx context.Context, orderID int64) (float64, error)
	FindOrderIncludingDeleted(ctx context.Context, orderID int64) (*database.OrderDB, error)
}

// NewPaymentService создает новый экземпляр PaymentService с заданным хранилищем
func NewPaymentService(storage PaymentStorage) *PaymentService {
	return &PaymentService{storage: storage}
}

// RegisterPayment регистрирует платёж по доставленному заказу. Дата платежа
// необязательна: по умолчанию берётся момент обработки запроса. Сумма не
// проверяется против остатка, переплата допускается.
func (p *PaymentService) RegisterPayment(ctx context.Context, orderID int64, montant float64, dateVersement *time.Time) (*models.Payment, error) {
	date := time.Now()
	if dateVersement != nil {
		date = *dateVersement
	}

	payment, err := p.storage.CreateInstallment(ctx, orderID, montant, date)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrOrderNotFound):
			return nil, ErrOrderNotFound
		case errors.Is(err, database.ErrOrderNotDeliverable):
			return nil, ErrOrderNotDeliverable
		case errors.Is(err, database.ErrInstallmentLimit):
			return nil, ErrInstallmentLimitExceeded
		}
		return nil, fmt.Errorf("ошибка при регистрации платежа: %w", err)
	}

	return &models.Payment{
		ID:              payment.ID,
		CommandeID:      payment.CommandeID,
		Montant:         payment.Montant,
		DateVersement:   utils.RFC3339Date{Time: payment.DateVersement},
		NumeroVersement: payment.NumeroVersement,
	}, nil
}

// GetHistory возвращает платежи по заказу по возрастанию номера.
// Существование заказа не проверяется: по неизвестному заказу история пуста.
func (p *PaymentService) GetHistory(ctx context.Context, orderID int64) ([]models.PaymentHistoryItem, error) {
	payments, err := p.storage.FindInstallments(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении платежей: %w", err)
	}

	result := make([]models.PaymentHistoryItem, 0, len(payments))
	for _, payment := range payments {
		result = append(result, models.PaymentHistoryItem{
			NumeroVersement: payment.NumeroVersement,
			DateVersement:   utils.RFC3339Date{Time: payment.DateVersement},
			Montant:         payment.Montant,
		})
	}

	return result, nil
}

// GetRemainingBalance возвращает остаток к оплате: сумма заказа минус сумма
// платежей. Заказ ищется без фильтра мягкого удаления, как в исходной
// реализации. Остаток может быть отрицательным при переплате.
func (p *PaymentService) GetRemainingBalance(ctx context.Context, orderID int64) (float64, error) {
	order, err := p.storage.FindOrderIncludingDeleted(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при поиске заказа: %w", err)
	}
	if order == nil {
		return 0, ErrOrderNotFound
	}

	paid, err := p.storage.SumInstallments(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при суммировании платежей: %w", err)
	}

	return order.MontantTotal - paid, nil
}
