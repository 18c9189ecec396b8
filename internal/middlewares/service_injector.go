package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

type Key int

const (
	AuthServiceKey Key = iota
	JwtServiceKey
	OrderServiceKey
	PaymentServiceKey
	StatsServiceKey
	CategoryServiceKey
	SubCategoryServiceKey
	ProductServiceKey
	SupplierServiceKey
)

// ServiceInjectorMiddleware кладёт сервисы приложения в контекст запроса,
// чтобы обработчики получали зависимости без глобальных переменных.
func ServiceInjectorMiddleware(
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	paymentService models.PaymentService,
	statsService models.StatsService,
	categoryService models.CRUDService[models.Category],
	subCategoryService models.CRUDService[models.SubCategory],
	productService models.CRUDService[models.Product],
	supplierService models.SupplierService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, authService)
			ctx = context.WithValue(ctx, JwtServiceKey, jwtService)
			ctx = context.WithValue(ctx, OrderServiceKey, orderService)
			ctx = context.WithValue(ctx, PaymentServiceKey, paymentService)
			ctx = context.WithValue(ctx, StatsServiceKey, statsService)
			ctx = context.WithValue(ctx, CategoryServiceKey, categoryService)
			ctx = context.WithValue(ctx, SubCategoryServiceKey, subCategoryService)
			ctx = context.WithValue(ctx, ProductServiceKey, productService)
			ctx = context.WithValue(ctx, SupplierServiceKey, supplierService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetServiceFromContext извлекает сервис из контекста запроса по ключу.
// В случае ошибки возвращает HTTP 500 и nil.
func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey Key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
