package main

import (
	"context"
	"log"

	router "github.com/sdiallo/quincaillerie-api/internal/app"
	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/logger"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/services"
	"github.com/sdiallo/quincaillerie-api/internal/utils"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	db, err := database.New(ctx, config.dsn)

	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	log.Printf("Running server on %s\n", config.endpoint)

	utils.HandleTerminationProcess(func() {
		db.Close()
	})

	categoryService := services.NewCatalogService(
		database.NewCategoryStore(db),
		func(item *models.Category, id int64) { item.ID = id },
	)
	subCategoryService := services.NewCatalogService(
		database.NewSubCategoryStore(db),
		func(item *models.SubCategory, id int64) { item.ID = id },
	)
	productService := services.NewCatalogService(
		database.NewProductStore(db),
		func(item *models.Product, id int64) { item.ID = id },
	)

	router.New(
		router.Config{Endpoint: config.endpoint},
		router.Services{
			Auth:        services.NewAuthService(db),
			Jwt:         services.NewJWTService(config.authSecretKey),
			Order:       services.NewOrderService(db),
			Payment:     services.NewPaymentService(db),
			Stats:       services.NewStatsService(db),
			Category:    categoryService,
			SubCategory: subCategoryService,
			Product:     productService,
			Supplier:    services.NewSupplierService(db),
		},
	).Run()
}
