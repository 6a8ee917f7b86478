package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stockflow/internal/caching"
	"stockflow/internal/config"
	"stockflow/internal/handlers"
	"stockflow/internal/jobs"
	"stockflow/internal/jobs/background"
	"stockflow/internal/middleware"
	"stockflow/internal/repositories"
	"stockflow/internal/services"
	"stockflow/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cacheSvc.Close()

	// Create repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	productTypeRepo := repositories.NewProductTypeRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	inventoryTxnRepo := repositories.NewInventoryTxnRepository(pool)
	thresholdRepo := repositories.NewThresholdRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)

	// Create services
	thresholdResolver := services.NewThresholdResolver(thresholdRepo, productRepo, productTypeRepo)
	velocitySvc := services.NewVelocityService(orderRepo)
	recommender := services.NewSupplierRecommender(supplierRepo)
	alertSvc := services.NewAlertService(inventoryRepo, thresholdResolver, velocitySvc, recommender, cacheSvc, cfg.DefaultLookbackDays)
	productSvc := services.NewProductService(productRepo, warehouseRepo, cacheSvc)
	inventorySvc := services.NewInventoryService(inventoryRepo, inventoryTxnRepo, warehouseRepo, cacheSvc)
	warehouseSvc := services.NewWarehouseService(warehouseRepo)
	supplierSvc := services.NewSupplierService(supplierRepo)
	companySvc := services.NewCompanyService(companyRepo)

	// Create handlers
	alertHandlers := handlers.NewAlertHandlers(alertSvc, cfg.DefaultLookbackDays)
	productHandlers := handlers.NewProductHandlers(productSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc)
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc, recommender)
	companyHandlers := handlers.NewCompanyHandlers(companySvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, version)

	// Background low-stock sweep
	sweep := jobs.NewLowStockSweep(companyRepo, alertSvc, cfg.DefaultLookbackDays)
	scheduler, err := background.NewJobScheduler(sweep, cfg.SweepInterval)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.VersionHeader(version))

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	api := e.Group("/api")
	api.GET("/companies", companyHandlers.ListCompanies)
	api.GET("/companies/:company_id", companyHandlers.GetCompany)
	api.GET("/companies/:company_id/alerts/low-stock", alertHandlers.ListLowStockAlerts)
	api.GET("/companies/:company_id/inventory", inventoryHandlers.ListCompanyInventory)
	api.GET("/companies/:company_id/warehouses", warehouseHandlers.ListCompanyWarehouses)
	api.GET("/companies/:company_id/suppliers", supplierHandlers.ListCompanySuppliers)
	api.GET("/companies/:company_id/products/:product_id/recommended-supplier", supplierHandlers.RecommendSupplier)

	api.POST("/products", productHandlers.CreateProduct)
	api.GET("/products", productHandlers.ListProducts)
	api.GET("/products/:id", productHandlers.GetProductByID)
	api.GET("/products/:id/components", productHandlers.GetProductComponents)

	api.POST("/inventory/adjust", inventoryHandlers.AdjustStock)
	api.GET("/inventory", inventoryHandlers.GetInventory)

	api.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("stockflow server v%s starting on port %d", version, cfg.Port)
	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
