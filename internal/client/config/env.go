package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is a DTO filled from INFOWISE_* environment variables.
type EnvConfig struct {
	UserAPIURL     string        `env:"INFOWISE_API_URL"`
	NewsAPIURL     string        `env:"INFOWISE_NEWS_API_URL"`
	DatabasePath   string        `env:"INFOWISE_DB_PATH"`
	RequestTimeout time.Duration `env:"INFOWISE_REQUEST_TIMEOUT"`
	Locale         string        `env:"INFOWISE_LOCALE"`
	LogLevel       string        `env:"INFOWISE_LOG_LEVEL"`
}

// parseEnv overlays cfg with every variable that is set. Panics when a
// variable cannot be parsed.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	setString(&cfg.UserAPIURL, ec.UserAPIURL)
	setString(&cfg.NewsAPIURL, ec.NewsAPIURL)
	setString(&cfg.DatabasePath, ec.DatabasePath)
	setDuration(&cfg.RequestTimeout, ec.RequestTimeout)
	setString(&cfg.Locale, ec.Locale)
	setString(&cfg.LogLevel, ec.LogLevel)
}
