package config_test

import (
	"testing"

	"storefront/internal/config"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr)
	assert.Equal(t, config.StoreMemory, cfg.StoreDriver)
	assert.Equal(t, log.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "resource_events", cfg.RabbitMQQueue)
	assert.False(t, cfg.RabbitMQConsume)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, "GET,POST,PUT,DELETE", cfg.CORSAllowMethods)
	assert.Equal(t, "Authorization,Accept,Content-Type", cfg.CORSAllowHeaders)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", "127.0.0.1:8081")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RABBITMQ_CONSUME", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Addr)
	assert.Equal(t, config.StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.RabbitMQConsume)
}

func TestInvalidValues(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("STORE_DRIVER", "redis")
	_, err := config.FromViper(v)
	assert.ErrorContains(t, err, "STORE_DRIVER")

	v = viper.New()
	config.SetDefaults(v)
	v.Set("LOG_LEVEL", "loud")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"trace":   log.LevelTrace,
		"DEBUG":   log.LevelDebug,
		"":        log.LevelInfo,
		"warning": log.LevelWarn,
		"error":   log.LevelError,
	}
	for in, want := range cases {
		got, err := config.ParseLevel(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
