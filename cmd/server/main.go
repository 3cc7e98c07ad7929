package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fara3/fara3-backend/config"
	"github.com/fara3/fara3-backend/internal/app/controller"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/internal/app/service"
	"github.com/fara3/fara3-backend/internal/db"
	"github.com/fara3/fara3-backend/internal/router"
	"github.com/fara3/fara3-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Fara3 Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed catalog data (skipped when collections already exist)
	if err := db.Seed(database); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	collectionRepo := repository.NewCollectionRepository(database)
	productRepo := repository.NewProductRepository(database)
	cartRepo := repository.NewCartRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	contactRepo := repository.NewContactRepository(database)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	collectionService := service.NewCollectionService(collectionRepo, productRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, database)
	contactService := service.NewContactService(contactRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	collectionController := controller.NewCollectionController(collectionService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	contactController := controller.NewContactController(contactService)

	// Setup router
	r := router.NewRouter(
		authController,
		collectionController,
		productController,
		cartController,
		orderController,
		contactController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
