// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the listen address.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Cors holds the allowed origin for cross-origin requests.
type Cors struct {
	Origin string `envconfig:"ORIGIN" default:"*"`
}

// RateLimit holds the per-IP request ceiling.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"15m"`
}

// Transfer holds the business thresholds of the transfer engine.
type Transfer struct {
	NonFavoredCap float64 `envconfig:"NON_FAVORED_CAP" default:"5000"`
}

// App is the root configuration.
type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development"`
	Server    Server    `envconfig:"SERVER"`
	Cors      Cors      `envconfig:"CORS"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Transfer  Transfer  `envconfig:"TRANSFER"`
}

// Load reads the optional .env file, then fills the config from the
// environment, applying struct-tag defaults.
func Load(logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"transfer_non_favored_cap", cfg.Transfer.NonFavoredCap,
	)
	return &cfg, nil
}
