package models

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Register(ctx context.Context, user UnknownUser) error

	Login(ctx context.Context, user UnknownUser) error

	GetUser(ctx context.Context, email string) (*User, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string, role Role) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, order UnknownOrder) (*Order, error)

	GetOwnerOrders(ctx context.Context, userID int64, filter OrderFilter) ([]Order, error)

	CancelOrder(ctx context.Context, userID, orderID int64) error
}

//go:generate mockgen -destination=mocks/mock_payment.go . PaymentService
type PaymentService interface {
	RegisterPayment(ctx context.Context, orderID int64, montant float64, dateVersement *time.Time) (*Payment, error)

	GetHistory(ctx context.Context, orderID int64) ([]PaymentHistoryItem, error)

	GetRemainingBalance(ctx context.Context, orderID int64) (float64, error)
}

//go:generate mockgen -destination=mocks/mock_stats.go . StatsService
type StatsService interface {
	GetDebtBySupplier(ctx context.Context) (map[int64]float64, error)

	GetOrdersInProgress(ctx context.Context) ([]OrderInProgress, error)

	GetDailyStats(ctx context.Context, now time.Time) (DailyStats, error)
}

//go:generate mockgen -destination=mocks/mock_supplier.go . SupplierService
type SupplierService interface {
	GetSuppliers(ctx context.Context) ([]Supplier, error)

	GetSupplier(ctx context.Context, id int64) (*Supplier, error)

	CreateSupplier(ctx context.Context, supplier UnknownSupplier) (*Supplier, error)

	UpdateSupplier(ctx context.Context, id int64, supplier UnknownSupplier) (*Supplier, error)

	DeleteSupplier(ctx context.Context, id int64) error
}

// CRUDService обобщённый сервис справочников каталога. Не мокается
// mockgen'ом: обобщённые интерфейсы им не поддерживаются.
type CRUDService[Model any] interface {
	GetAll(ctx context.Context) ([]Model, error)

	GetByID(ctx context.Context, id int64) (*Model, error)

	Create(ctx context.Context, item Model) (*Model, error)

	Update(ctx context.Context, id int64, item Model) (*Model, error)

	Delete(ctx context.Context, id int64) error
}
