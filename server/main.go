package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinepulse/api/routes"
	"cinepulse/internal/catalogevents"
	"cinepulse/internal/shared/config"
	"cinepulse/internal/shared/database"
	"cinepulse/internal/shared/middleware"
	"cinepulse/pkg/cache"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title			Cinepulse Catalog API
// @version		1.0
// @description	Movie and cinema hall catalog service.
// @BasePath		/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Rebuild the logger now that LOG_LEVEL and the gin mode are known
	logger.SetDefault(logger.New())
	appLogger = logger.GetDefault()

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// nil when redis is unavailable, which turns catalog caching off
	cacheService := cache.NewService(db.GetRedisClient())

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.Redis != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), cfg.RateLimit)
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	publisher := setupCatalogEvents(consumerCtx, cfg, cacheService, appLogger)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing catalog event publisher", slog.Any("error", err))
		}
	}()

	router := setupRouter(cfg, db, cacheService, publisher, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.Bool("redis_cache", cacheService != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("catalog_events", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// setupCatalogEvents returns the publisher used by the catalog services and,
// when both kafka and the cache are available, starts the invalidation consumer.
// Any kafka failure degrades to a no-op publisher.
func setupCatalogEvents(ctx context.Context, cfg *config.Config, cacheService cache.Service, appLogger *logger.Logger) catalogevents.Publisher {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Catalog events disabled")
		return catalogevents.NoopPublisher{}
	}

	publisher, err := catalogevents.NewKafkaPublisher(cfg.Kafka)
	if err != nil {
		appLogger.Error("Failed to initialize catalog event publisher", slog.Any("error", err))
		return catalogevents.NoopPublisher{}
	}

	if cacheService == nil {
		return publisher
	}

	invalidator, err := catalogevents.NewCacheInvalidator(cfg.Kafka, cacheService)
	if err != nil {
		appLogger.Error("Failed to initialize cache invalidator", slog.Any("error", err))
		return publisher
	}

	go func() {
		invalidator.Run(ctx)
		if err := invalidator.Close(); err != nil {
			appLogger.Error("Error closing cache invalidator", slog.Any("error", err))
		}
	}()
	appLogger.Info("Cache invalidator started",
		slog.String("topic", cfg.Kafka.CatalogTopic),
		slog.String("group", cfg.Kafka.ConsumerGroup),
	)

	return publisher
}

func setupRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher catalogevents.Publisher, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// Only the configured frontend origin may call the API from a browser
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	routes.NewRouter(cfg, db, cacheService, publisher).SetupRoutes(engine)

	return engine
}

const requestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware logs every request tagged with its request id and,
// once JWTAuth has run, the caller's user id.
func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		requestLog := l.WithRequestID(requestID)
		if userID := c.GetString(middleware.ContextUserID); userID != "" {
			requestLog = requestLog.WithUserID(userID)
		}
		requestLog.LogHTTPRequest(c, time.Since(start))
	}
}
