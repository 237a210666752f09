package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jenniferhuangg/ConcertCloud/internal/di"
	"github.com/jenniferhuangg/ConcertCloud/internal/middleware"
	"github.com/jenniferhuangg/ConcertCloud/internal/ranking"
	"github.com/jenniferhuangg/ConcertCloud/internal/worker"
	"github.com/jenniferhuangg/ConcertCloud/pkg/config"
	"github.com/jenniferhuangg/ConcertCloud/pkg/database"
	"github.com/jenniferhuangg/ConcertCloud/pkg/logger"
	"github.com/jenniferhuangg/ConcertCloud/pkg/redis"
	"github.com/jenniferhuangg/ConcertCloud/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting ConcertCloud...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info("Database connected")

	// Initialize Redis connection (optional; caching is disabled without it)
	var redisClient *redis.Client
	redisCfg := &redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}
	redisClient, err = redis.NewClient(ctx, redisCfg)
	if err != nil {
		appLog.Warn(fmt.Sprintf("Redis connection failed (caching disabled): %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:      db,
		Redis:   redisClient,
		Weights: ranking.DefaultWeights(),
		ScanWorker: &worker.WatchScanWorkerConfig{
			ScanInterval: cfg.Scanner.Interval,
		},
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(appLog))

	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
		router.Use(telemetry.TraceHeaderMiddleware())
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	auth := middleware.Auth(cfg.JWT.Secret)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Public browse endpoints
		events := v1.Group("/events")
		{
			events.GET("", container.EventHandler.List)
			events.GET("/:id", container.EventHandler.GetByID)
			events.GET("/:id/listings", container.EventHandler.GetListings)
			events.GET("/:id/map", container.EventHandler.GetSeatMap)
		}
		v1.GET("/artists", container.EventHandler.ListArtists)

		// Identity-scoped watchlist endpoints
		watchlist := v1.Group("/watchlists")
		watchlist.Use(auth)
		{
			watchlist.POST("", container.WatchHandler.Create)
			watchlist.GET("", container.WatchHandler.List)
			watchlist.DELETE("/:id", container.WatchHandler.Delete)
			watchlist.POST("/scan", container.WatchHandler.TriggerScan)
		}
		notifications := v1.Group("/notifications")
		notifications.Use(auth)
		{
			notifications.GET("", container.WatchHandler.Notifications)
		}

		// Ingestion endpoints
		admin := v1.Group("/admin")
		admin.Use(auth)
		if redisClient != nil {
			admin.Use(middleware.Idempotency(redisClient.Client()))
		}
		{
			admin.POST("/venues", container.AdminHandler.CreateVenue)
			admin.GET("/venues/:id", container.AdminHandler.GetVenue)
			admin.POST("/artists", container.AdminHandler.CreateArtist)
			admin.POST("/events", container.AdminHandler.CreateEvent)
			admin.POST("/events/:id/listings", container.AdminHandler.IngestListings)
		}
	}

	// Start the watchlist scan worker
	if cfg.Scanner.Enabled {
		if err := container.ScanWorker.Start(ctx); err != nil {
			appLog.Fatal(fmt.Sprintf("Failed to start scan worker: %v", err))
		}
		defer container.ScanWorker.Stop()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("ConcertCloud listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited")
}
