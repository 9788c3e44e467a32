package config

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config is the runtime configuration of the service.
type Config struct {
	AppName  string
	Addr     string
	LogLevel log.Level

	StoreDriver string
	DatabaseDSN string

	RabbitMQURL     string
	RabbitMQQueue   string
	RabbitMQConsume bool

	CORSAllowOrigins string
	CORSAllowMethods string
	CORSAllowHeaders string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "storefront")
	v.SetDefault("APP_ADDR", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "resource_events")
	v.SetDefault("RABBITMQ_CONSUME", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("CORS_ALLOW_METHODS", "GET,POST,PUT,DELETE")
	v.SetDefault("CORS_ALLOW_HEADERS", "Authorization,Accept,Content-Type")
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName:          v.GetString("APP_NAME"),
		Addr:             v.GetString("APP_ADDR"),
		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:    v.GetString("RABBITMQ_QUEUE"),
		RabbitMQConsume:  v.GetBool("RABBITMQ_CONSUME"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		CORSAllowMethods: v.GetString("CORS_ALLOW_METHODS"),
		CORSAllowHeaders: v.GetString("CORS_ALLOW_HEADERS"),
	}

	level, err := ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	switch cfg.StoreDriver {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q (want memory, sqlite or postgres)", cfg.StoreDriver)
	}
	return cfg, nil
}

// ParseLevel maps a LOG_LEVEL value to a fiber log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return log.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", s)
	}
}
