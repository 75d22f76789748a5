package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yangliu6605/react-ems/pkg/database"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds the process configuration, read from the environment
type Config struct {
	ServiceName  string
	Environment  string
	LogLevel     string
	HTTPPort     string
	Storage      string
	Database     database.Config
	KafkaBrokers []string
	RedisAddr    string
	Seed         bool
	Tracing      bool
}

// Load reads configuration from a local .env file (if present) and the
// environment, with development defaults
func Load() Config {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "erp-backend"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Storage:     getEnv("STORAGE", StorageMemory),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "erpdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Seed:      getEnv("SEED", "false") == "true",
		Tracing:   getEnv("TRACING_ENABLED", "false") == "true",
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

// IsDevelopment reports whether the process runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
