package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            int    `env:"PORT" envDefault:"5000"`
	DatabaseURL     string `env:"DATABASE_URL,required"`
	RedisURL        string `env:"REDIS_URL"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"/app/static/images"`
	ImageURLPrefix  string `env:"IMAGE_URL_PREFIX" envDefault:"/images"`
	RateLimitPerMin int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ImageURL turns a materialized file path into the public URL it is served under.
func (c *Config) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(c.ImageURLPrefix, "/") + "/" + filepath.Base(path)
}

func (c *Config) Validate() error {
	if c.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if c.RateLimitPerMin < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.RedisURL == "" {
		log.Warn().Msg("REDIS_URL is empty: rate limiting falls back to per-process memory")
	}
	return nil
}

// Load reads the environment. Outside Railway a local .env file is honored first.
func Load() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to read .env file")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
