package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("Addr returns formatted port", func(t *testing.T) {
		cfg := &Config{Port: 3000}
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("ImageURL uses file name under prefix", func(t *testing.T) {
		cfg := &Config{ImageURLPrefix: "/images/"}
		assert.Equal(t, "/images/SKU1_7.png", cfg.ImageURL("/app/static/images/SKU1_7.png"))
	})

	t.Run("ImageURL keeps empty path empty", func(t *testing.T) {
		cfg := &Config{ImageURLPrefix: "/images"}
		assert.Equal(t, "", cfg.ImageURL(""))
	})

	t.Run("Validate rejects empty upload dir", func(t *testing.T) {
		cfg := &Config{UploadDir: ""}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Validate rejects negative rate limit", func(t *testing.T) {
		cfg := &Config{UploadDir: "/tmp", RateLimitPerMin: -1}
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	keys := []string{
		"PORT", "DATABASE_URL", "REDIS_URL", "LOG_LEVEL",
		"UPLOAD_DIR", "IMAGE_URL_PREFIX", "RATE_LIMIT_PER_MINUTE", "RAILWAY_ENVIRONMENT",
	}
	originalEnv := make(map[string]string, len(keys))
	for _, k := range keys {
		originalEnv[k] = os.Getenv(k)
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	// skip .env lookup so the tests only see what they set
	os.Setenv("RAILWAY_ENVIRONMENT", "test")

	t.Run("loads config with defaults", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Unsetenv("PORT")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("UPLOAD_DIR")
		os.Unsetenv("IMAGE_URL_PREFIX")
		os.Unsetenv("RATE_LIMIT_PER_MINUTE")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		assert.Equal(t, "", cfg.RedisURL)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "/app/static/images", cfg.UploadDir)
		assert.Equal(t, "/images", cfg.ImageURLPrefix)
		assert.Equal(t, 120, cfg.RateLimitPerMin)
	})

	t.Run("loads custom values", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Setenv("REDIS_URL", "redis://localhost:6379")
		os.Setenv("PORT", "3000")
		os.Setenv("UPLOAD_DIR", "/var/images")
		os.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
		assert.Equal(t, "/var/images", cfg.UploadDir)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("fails without required DATABASE_URL", func(t *testing.T) {
		os.Unsetenv("DATABASE_URL")

		_, err := Load()
		assert.Error(t, err)
	})
}
