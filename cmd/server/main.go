package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	orderingapp "github.com/storefront/backend/internal/application/ordering"
	storeapp "github.com/storefront/backend/internal/application/store"
	storefrontapp "github.com/storefront/backend/internal/application/storefront"
	uploadapp "github.com/storefront/backend/internal/application/upload"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
		log.Info("Database schema migrated")
	}

	// Repositories
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Storefront projection cache (Redis or in-memory)
	projectionCache, err := cache.NewProjectionCache(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storefront cache", zap.Error(err))
	}
	log.Info("Storefront cache initialized",
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Duration("ttl", cfg.Cache.StorefrontTTL),
	)

	// Object storage for image uploads
	objectStorage, err := storage.NewObjectStorage(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if s3Storage, ok := objectStorage.(*storage.S3ObjectStorage); ok {
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
	}
	log.Info("Object storage initialized", zap.String("backend", cfg.Storage.Backend))

	// Application services
	storeService := storeapp.NewService(storeRepo, log)
	productService := catalogapp.NewProductService(productRepo, storeRepo, projectionCache, log)
	orderService := orderingapp.NewService(orderRepo, productRepo, storeRepo, log)
	storefrontService := storefrontapp.NewService(storeRepo, productRepo, projectionCache, log)
	uploadService := uploadapp.NewService(storeRepo, objectStorage, log)

	// HTTP handlers
	healthHandler := handler.NewHealthHandler(cfg.App.Name, db.Ping)
	storeHandler := handler.NewStoreHandler(storeService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	storefrontHandler := handler.NewStorefrontHandler(storefrontService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body limit, optional rate limiting
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Serve locally stored uploads directly
	if localStorage, ok := objectStorage.(*storage.LocalObjectStorage); ok {
		engine.Static("/uploads", localStorage.Dir())
	}

	r := router.NewRouter(engine)
	r.Register(healthHandler)
	r.Register(storeHandler)
	r.Register(productHandler)
	r.Register(orderHandler)
	r.Register(storefrontHandler)
	r.Register(uploadHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
