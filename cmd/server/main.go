package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scentscape/scentscape-backend/config"
	"github.com/scentscape/scentscape-backend/internal/app/controller"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/app/service"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/scentscape/scentscape-backend/internal/middleware"
	"github.com/scentscape/scentscape-backend/internal/router"
	"github.com/scentscape/scentscape-backend/internal/scheduler"
	"github.com/scentscape/scentscape-backend/internal/storage"
	"github.com/scentscape/scentscape-backend/internal/ws"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"github.com/scentscape/scentscape-backend/pkg/redis"
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

	logger.Info("Starting ScentScape Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations and seed the baseline data
	if err := db.Migrate(&cfg.Admin); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Token revocation store. The server still runs without it; logout
	// then skips blacklisting.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Failed to connect to Redis, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer redis.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())
	wishlistRepo := repository.NewWishlistRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	contentRepo := repository.NewContentRepository(db.GetDB())
	subscriberRepo := repository.NewSubscriberRepository(db.GetDB())

	// Live order feed for the back office
	hub := ws.NewHub()
	go hub.Run()

	// Initialize services
	authService := service.NewAuthService(userRepo, &cfg.JWT)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, userRepo, hub)
	contentService := service.NewContentService(contentRepo)
	subscriberService := service.NewSubscriberService(subscriberRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	wishlistController := controller.NewWishlistController(wishlistService)
	orderController := controller.NewOrderController(orderService)
	contentController := controller.NewContentController(contentService)
	subscriberController := controller.NewSubscriberController(subscriberService)
	uploadController := controller.NewUploadController(storage.NewS3Storage(&cfg.S3))
	feedController := controller.NewFeedController(hub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Abandoned cart cleanup
	cartCleanup := scheduler.NewCartCleanupScheduler(cartService)
	if err := cartCleanup.Start(); err != nil {
		logger.Warn("Failed to start cart cleanup scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer cartCleanup.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		cartController,
		wishlistController,
		orderController,
		contentController,
		subscriberController,
		uploadController,
		feedController,
		authMiddleware,
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
