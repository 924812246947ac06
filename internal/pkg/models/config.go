package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	RateLimit   RateLimitConfig
	DistanceAPI DistanceAPIConfig
	Transit     TransitConfig
	Startup     StartupConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int `validate:"required,gt=0"`
	ShutdownTimeout int // seconds
}

// DatabaseConfig contains PostgreSQL connection configuration
type DatabaseConfig struct {
	URL       string `validate:"required"`
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,gt=0"`
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration. An empty URL disables publishing.
type NATSConfig struct {
	URL string
}

// RateLimitConfig bounds requests per client over a fixed window
type RateLimitConfig struct {
	Limit         int `validate:"required,gt=0"`
	WindowSeconds int `validate:"required,gt=0"`
}

// DistanceAPIConfig configures the upstream routing distance API
type DistanceAPIConfig struct {
	URL       string `validate:"required,url"`
	APIKey    string `validate:"required"`
	TimeoutMs int    `validate:"required,gt=0"`
}

// TransitConfig holds bus-domain tunables
type TransitConfig struct {
	NearestStopRadiusMeters float64 `validate:"required,gt=0"`
	SeedFile                string
}

// StartupConfig controls how hard startup retries its dependencies
type StartupConfig struct {
	MaxRetries   int `validate:"required,gt=0"`
	RetryDelayMs int `validate:"required,gt=0"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
