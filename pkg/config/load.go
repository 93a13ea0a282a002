package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads an optional .env file and then the process environment into an
// App tree. Missing .env is not an error; the system environment wins.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()

	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found, using system environment variables")
		}
	} else {
		for _, path := range envFiles {
			if err := godotenv.Load(path); err != nil {
				logger.Debug("Environment file not loaded", "path", path, "error", err)
			}
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"countrylayer_key", maskValue(cfg.Providers.Countrylayer.ApiKey),
		"exchangerate_key", maskValue(cfg.Providers.ExchangeRate.ApiKey),
		"news_key", maskValue(cfg.Providers.News.ApiKey),
	)
	return &cfg, nil
}

// maskValue hides all but the edges of a secret for log output.
func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
