package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalog-importer/internal/config"
	"catalog-importer/internal/domain"
	"catalog-importer/internal/errlog"
	"catalog-importer/internal/handler"
	"catalog-importer/internal/infrastructure/database"
	"catalog-importer/internal/infrastructure/redisconn"
	"catalog-importer/internal/logger"
	"catalog-importer/internal/metrics"
	"catalog-importer/internal/middleware"
	"catalog-importer/internal/progress"
	"catalog-importer/internal/queue"
	"catalog-importer/internal/ratelimit"
	"catalog-importer/internal/repository"
	"catalog-importer/internal/service"
	"catalog-importer/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	// Apply schema migrations before taking traffic
	if err := database.Migrate(poolCfg, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Connect to Redis (queue, progress, error log, rate limiting)
	redisClient, err := redisconn.New(context.Background(), redisconn.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Fatal("Failed to connect to redis",
			slog.String("error", err.Error()))
	}
	defer redisClient.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	productRepo := repository.NewPostgresProductRepository(pool)
	webhookRepo := repository.NewPostgresWebhookRepository(pool)

	// Shared job queue and key-value helpers
	jobQueue := queue.New(redisClient, "jobs", cfg.WorkerPoolSize, cfg.WebhookMaxRetries)
	tracker := progress.NewTracker(redisClient, cfg.ProgressTTL)
	errorLog := errlog.NewLog(redisClient, cfg.ProgressTTL)
	limiter := ratelimit.NewFixedWindow(redisClient)

	// Initialize services
	webhookService := service.NewWebhookService(
		webhookRepo,
		limiter,
		jobQueue,
		cfg.WebhookTimeout,
		cfg.WebhookMaxRetries,
		cfg.WebhookRateLimit,
		cfg.WebhookRateWindow,
	)

	importService := service.NewImportService(
		productRepo,
		validator.NewValidator(),
		tracker,
		errorLog,
		jobQueue,
		webhookService,
		cfg.UploadDir,
	)

	// Register job handlers and start the workers
	jobQueue.Register(domain.JobKindImport, importService.HandleImport)
	jobQueue.Register(domain.JobKindWebhookDelivery, webhookService.HandleDelivery)
	if err := jobQueue.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start job queue",
			slog.String("error", err.Error()))
	}

	// Initialize handlers
	uploadHandler := handler.NewUploadHandler(importService)
	productHandler := handler.NewProductHandler(productRepo, webhookService)
	webhookHandler := handler.NewWebhookHandler(webhookRepo, webhookService)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		uploads := v1.Group("/uploads")
		{
			uploads.POST("/csv", uploadHandler.CreateUpload)
			uploads.GET("/:id/progress", uploadHandler.GetProgress)
			uploads.GET("/:id/progress/stream", uploadHandler.StreamProgress)
			uploads.GET("/:id/errors", uploadHandler.ListErrors)
		}

		products := v1.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.DELETE("", productHandler.DeleteAllProducts)
		}

		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("", webhookHandler.CreateWebhook)
			webhooks.GET("", webhookHandler.ListWebhooks)
			webhooks.GET("/:id", webhookHandler.GetWebhook)
			webhooks.PUT("/:id", webhookHandler.UpdateWebhook)
			webhooks.DELETE("/:id", webhookHandler.DeleteWebhook)
			webhooks.POST("/:id/test", webhookHandler.TestWebhook)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop the workers first so in-flight jobs finish or requeue cleanly
	logger.Info("Stopping job queue")
	jobQueue.Stop()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
