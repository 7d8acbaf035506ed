package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cleanup := func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("RABBIT_URL")
		os.Unsetenv("RABBIT_EXCHANGE")
		os.Unsetenv("RL_ENABLED")
		os.Unsetenv("HTTP_READ_TIMEOUT")
	}

	t.Run("should_return_error_if_database_url_is_missing", func(t *testing.T) {
		cleanup()
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Equal(t, "missing DATABASE_URL", err.Error())
	})

	t.Run("should_load_successfully_with_valid_env", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "dev", cfg.AppEnv)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "shopping.behavior", cfg.RabbitExchange)
		assert.True(t, cfg.RLEnabled)
		assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	})

	t.Run("should_honor_overrides", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		os.Setenv("RL_ENABLED", "false")
		os.Setenv("HTTP_READ_TIMEOUT", "3s")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.False(t, cfg.RLEnabled)
		assert.Equal(t, 3*time.Second, cfg.HTTPReadTimeout)
	})

	t.Run("bad_duration_falls_back_to_default", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		os.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	})

	cleanup()
}
