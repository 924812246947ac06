package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/piresc/onestop/internal/pkg/models"
)

// InitConfig loads the .env file at configPath when running locally and builds the
// configuration from environment variables.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

// Validate checks that every externally supplied option the service needs is present
func Validate(configs *models.Config) error {
	v := validator.New()
	sections := []interface{}{
		configs.Server,
		configs.Database,
		configs.Redis,
		configs.RateLimit,
		configs.DistanceAPI,
		configs.Transit,
		configs.Startup,
	}
	for _, section := range sections {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "onestop")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.URL = GetEnv("DB_URL", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Rate limiter config
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT", 0)
	configs.RateLimit.WindowSeconds = GetEnvAsInt("RATE_LIMIT_WINDOW_IN_SECONDS", 0)

	// Distance API config
	configs.DistanceAPI.URL = GetEnv("DISTANCE_API_URL", "")
	configs.DistanceAPI.APIKey = GetEnv("GCP_API_KEY", "")
	configs.DistanceAPI.TimeoutMs = GetEnvAsInt("DISTANCE_API_TIMEOUT_MS", 0)

	// Transit config
	configs.Transit.NearestStopRadiusMeters = GetEnvAsFloat("NEAREST_STOP_RADIUS_METERS", 0)
	configs.Transit.SeedFile = GetEnv("SEED_FILE", "")

	// Startup config
	configs.Startup.MaxRetries = GetEnvAsInt("MAX_START_RETRIES", 0)
	configs.Startup.RetryDelayMs = GetEnvAsInt("START_RETRY_DELAY_MS", 0)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
