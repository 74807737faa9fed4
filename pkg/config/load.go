package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among envFilePath (searched upward from the
// working directory), falling back to ./.env, then processes the environment.
// A missing env file is not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		LoadEnv(logger)
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using default .env")
	LoadEnv(logger)
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if _, err := cfg.Ledger.Location(); err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", cfg.Ledger.Timezone, err)
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"log_format", cfg.Log.Format,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"ledger_timezone", cfg.Ledger.Timezone,
	)
	return &cfg, nil
}
