package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/onestop/internal/pkg/circuitbreaker"
	"github.com/piresc/onestop/internal/pkg/config"
	"github.com/piresc/onestop/internal/pkg/database"
	"github.com/piresc/onestop/internal/pkg/health"
	httpclient "github.com/piresc/onestop/internal/pkg/http"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/metrics"
	"github.com/piresc/onestop/internal/pkg/middleware"
	natspkg "github.com/piresc/onestop/internal/pkg/nats"
	"github.com/piresc/onestop/internal/pkg/retry"
	"github.com/piresc/onestop/internal/pkg/server"
	"github.com/piresc/onestop/services/transit"
	"github.com/piresc/onestop/services/transit/gateway"
	"github.com/piresc/onestop/services/transit/handler"
	httpHandler "github.com/piresc/onestop/services/transit/handler/http"
	"github.com/piresc/onestop/services/transit/repository"
	"github.com/piresc/onestop/services/transit/usecase"
	"go.uber.org/zap"
)

const (
	appName      = "transit-service"
	maxBodyBytes = "1M"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config/transit.env")
	configs := config.InitConfig(configPath)
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	ctx := context.Background()
	starter := retry.New(retry.StartupConfig(
		configs.Startup.MaxRetries,
		time.Duration(configs.Startup.RetryDelayMs)*time.Millisecond,
	), zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := retry.Connect(ctx, starter, "postgres", func(context.Context) (*database.PostgresClient, error) {
		return database.NewPostgresClient(configs.Database)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	if err := postgresClient.EnsureSchema(ctx); err != nil {
		zapLogger.Fatal("Failed to prepare schema", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := retry.Connect(ctx, starter, "redis", func(context.Context) (*database.RedisClient, error) {
		return database.NewRedisClient(configs.Redis)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	collector := metrics.NewCollector()

	// Initialize NATS when configured
	var natsClient *natspkg.Client
	var trackingGW transit.TrackingGW
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Warn("NATS unavailable, tracking events disabled", zap.Error(err))
			natsClient = nil
		} else {
			trackingGW = gateway.NewTrackingGW(natsClient, collector)
		}
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	stopRepo := repository.NewStopRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	geoIndex := repository.NewGeoIndexRepository(redisClient)
	approachRepo := repository.NewApproachRepository(redisClient)

	// Initialize gateways
	breakerCfg := circuitbreaker.DefaultConfig("distance-api")
	distanceClient := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.DistanceAPI.URL,
		APIKey:  configs.DistanceAPI.APIKey,
		Timeout: time.Duration(configs.DistanceAPI.TimeoutMs) * time.Millisecond,
		Breaker: circuitbreaker.New(breakerCfg, zapLogger),
	})
	distanceGW := gateway.NewDistanceGW(distanceClient)

	// Initialize UseCase
	transitUC := usecase.NewTransitUC(stopRepo, geoIndex, routeRepo, approachRepo, distanceGW, trackingGW, collector, configs)

	if n, err := transitUC.SyncGeoIndex(ctx); err != nil {
		zapLogger.Warn("Failed to rebuild stop geo index", zap.Error(err), zap.Int("indexed", n))
	} else {
		zapLogger.Info("Stop geo index rebuilt", zap.Int("stops", n))
	}

	// Initialize handlers
	transitHandler := httpHandler.NewTransitHandler(transitUC)
	h := handler.NewHandler(transitHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.LoggerMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware(collector))
	e.Use(middleware.IPRateLimiter(
		configs.RateLimit.Limit,
		time.Duration(configs.RateLimit.WindowSeconds)*time.Second,
		redisClient,
		collector,
	))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomw.BodyLimit(maxBodyBytes))

	// Register health endpoints
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	if natsClient != nil {
		healthService.AddChecker("nats", health.ConnChecker("nats", natsClient.IsConnected))
	}
	health.RegisterHealthEndpoints(e, appName, healthService)
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	components := srv.Components()
	components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	components.Register("redis", func(context.Context) error { return redisClient.Close() })
	if natsClient != nil {
		components.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
	zapLogger.Info("Server stopped", zap.String("app", appName))
}
