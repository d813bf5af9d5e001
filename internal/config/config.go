package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment with an
// optional .env file for local development.
type Config struct {
	Addr             string `env:"WINEY_ADDR" envDefault:":8080"`
	BaseURL          string `env:"WINEY_BASE_URL" envDefault:"http://localhost:8080"`
	CountdownSeconds int    `env:"WINEY_COUNTDOWN_SECONDS" envDefault:"30"`
	ArchivePath      string `env:"WINEY_ARCHIVE_PATH" envDefault:"winey.db"`
	Debug            bool   `env:"WINEY_DEBUG"`
}

// Load reads the .env file if present and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CountdownSeconds <= 0 {
		return Config{}, fmt.Errorf("countdown must be positive, got %d", cfg.CountdownSeconds)
	}
	return cfg, nil
}

// Countdown returns the configured countdown as a duration.
func (c Config) Countdown() time.Duration {
	return time.Duration(c.CountdownSeconds) * time.Second
}
