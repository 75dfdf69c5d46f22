package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// StorageConfig selects the key-value backend. "memory" keeps everything
// in-process and is lost on restart; "sqlite" persists to a local file;
// "redis" uses an external server.
type StorageConfig struct {
	Backend       string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath    string `env:"STORAGE_SQLITE_PATH" envDefault:"storefront.db"`
	RedisAddr     string `env:"STORAGE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"STORAGE_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"STORAGE_REDIS_DB" envDefault:"0"`
}

// CatalogConfig points at the seed catalog. When BaseURL is set the
// catalog is fetched over HTTP, otherwise it is read from Dir.
type CatalogConfig struct {
	Dir     string `env:"CATALOG_DIR" envDefault:"data"`
	BaseURL string `env:"CATALOG_BASE_URL" envDefault:""`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
