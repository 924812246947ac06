package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/piresc/onestop/internal/pkg/config"
	"github.com/piresc/onestop/internal/pkg/database"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/retry"
	"github.com/piresc/onestop/internal/pkg/seed"
	"github.com/piresc/onestop/services/transit/repository"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.GetEnv("CONFIG_PATH", "config/transit.env"), "path to the env file")
	file := flag.String("file", "", "dataset YAML, defaults to SEED_FILE or the embedded dataset")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	path := *file
	if path == "" {
		path = configs.Transit.SeedFile
	}
	dataset, err := seed.LoadFile(path)
	if err != nil {
		zapLogger.Fatal("Failed to load dataset", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	starter := retry.New(retry.StartupConfig(
		configs.Startup.MaxRetries,
		time.Duration(configs.Startup.RetryDelayMs)*time.Millisecond,
	), zapLogger)

	postgresClient, err := retry.Connect(ctx, starter, "postgres", func(context.Context) (*database.PostgresClient, error) {
		return database.NewPostgresClient(configs.Database)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	if err := postgresClient.EnsureSchema(ctx); err != nil {
		zapLogger.Fatal("Failed to prepare schema", zap.Error(err))
	}

	redisClient, err := retry.Connect(ctx, starter, "redis", func(context.Context) (*database.RedisClient, error) {
		return database.NewRedisClient(configs.Redis)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	db := postgresClient.GetDB()
	res, err := seed.Apply(ctx, dataset,
		repository.NewStopRepository(db),
		repository.NewRouteRepository(db),
		repository.NewGeoIndexRepository(redisClient),
	)
	if err != nil {
		zapLogger.Fatal("Failed to seed dataset", zap.Error(err))
	}

	zapLogger.Info("Dataset seeded",
		zap.Int("stops_created", res.StopsCreated),
		zap.Int("routes_created", res.RoutesCreated),
		zap.Int("stops_indexed", res.StopsIndexed),
	)
}
