package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file into the process environment when one exists.
func LoadEnv(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// GetEnv retrieves an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as time.Duration with a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
