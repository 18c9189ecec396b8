package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sdiallo/quincaillerie-api/internal/logger"
	"github.com/sdiallo/quincaillerie-api/internal/middlewares"
	"github.com/sdiallo/quincaillerie-api/internal/models"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер будет слушать входящие запросы.
	Endpoint string
}

// Services зависимости роутера.
type Services struct {
	Auth        models.AuthService
	Jwt         models.JWTService
	Order       models.OrderService
	Payment     models.PaymentService
	Stats       models.StatsService
	Category    models.CRUDService[models.Category]
	SubCategory models.CRUDService[models.SubCategory]
	Product     models.CRUDService[models.Product]
	Supplier    models.SupplierService
}

type Router struct {
	config   Config
	services Services
}

// New создает новый экземпляр Router с заданными зависимостями.
func New(config Config, services Services) *Router {
	return &Router{
		config:   config,
		services: services,
	}
}

// get возвращает настроенный роутер.
func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	// Настройка промежуточного ПО (middleware) для роутера.
	r.Use(
		// Инжектор сервисов для предоставления сервисов в обработчиках.
		middlewares.ServiceInjectorMiddleware(
			router.services.Auth,
			router.services.Jwt,
			router.services.Order,
			router.services.Payment,
			router.services.Stats,
			router.services.Category,
			router.services.SubCategory,
			router.services.Product,
			router.services.Supplier,
		),
		// Логгер для регистрации запросов.
		logger.RequestLogger,
		// Счётчики и гистограммы обработки запросов.
		MetricsMiddleware,
		// Middleware для проверки аутентификации, исключая указанные пути.
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/api/auth/register",
			"/api/auth/login",
			"/metrics",
		).Middleware,
	)

	// Регистрация и вход.
	r.Route("/api/auth", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/register", Register)
		r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/login", Login)
	})

	// Справочники каталога: один набор обработчиков на все три сущности.
	registerCatalogRoutes[models.Category](r, "/api/categories", middlewares.CategoryServiceKey)
	registerCatalogRoutes[models.SubCategory](r, "/api/sousCategories", middlewares.SubCategoryServiceKey)
	registerCatalogRoutes[models.Product](r, "/api/produits", middlewares.ProductServiceKey)

	// Поставщики.
	r.Route("/api/fournisseurs", func(r chi.Router) {
		r.Get("/", GetSuppliers)
		r.Get("/{id}", GetSupplier)
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireCapability(models.CapManageSuppliers))
			r.With(middlewares.JSONMiddleware[models.UnknownSupplier]).Post("/", CreateSupplier)
			r.With(middlewares.JSONMiddleware[models.UnknownSupplier]).Put("/{id}", UpdateSupplier)
			r.Delete("/{id}", DeleteSupplier)
		})
	})

	// Заказы ответственного по закупкам.
	r.Route("/api/commandes", func(r chi.Router) {
		r.Use(middlewares.RequireCapability(models.CapManageOrders))
		r.With(middlewares.JSONMiddleware[models.UnknownOrder]).Post("/", CreateOrder)
		r.Get("/", GetOrders)
		r.Delete("/{id}", CancelOrder)
	})

	// Платежи и сводные показатели ответственного по оплатам.
	r.Route("/api/versements", func(r chi.Router) {
		r.Use(middlewares.RequireCapability(models.CapRegisterPayments))
		r.With(middlewares.JSONMiddleware[models.UnknownPayment]).Post("/", RegisterPayment)
		r.Get("/commande/{id}", GetPaymentHistory)
		r.Get("/montant-restant/{id}", GetRemainingBalance)
		r.Get("/dette-fournisseurs", GetDebtBySupplier)
		r.Get("/commandes-encours", GetOrdersInProgress)
		r.Get("/statistiques-jour", GetDailyStats)
	})

	// Показатели для мониторинга.
	r.Handle("/metrics", MetricsHandler())

	return r
}

// Run запускает HTTP сервер на заданном endpoint и начинает принимать запросы.
func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
