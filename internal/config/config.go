package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"port"`
	DBDriver          string        `mapstructure:"db_driver"`
	DBPath            string        `mapstructure:"db_path"`
	DatabaseURL       string        `mapstructure:"database_url"`
	CatalogDir        string        `mapstructure:"catalog_dir"`
	SeedPath          string        `mapstructure:"seed_path"`
	RouteTTL          time.Duration `mapstructure:"route_ttl"`
	RouteAlternatives int           `mapstructure:"route_alternatives"`
	GenerateWorkers   int           `mapstructure:"generate_workers"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

var defaults = map[string]any{
	"port":               "8080",
	"db_driver":          "sqlite",
	"db_path":            "data/app.db",
	"database_url":       "",
	"catalog_dir":        "",
	"seed_path":          "",
	"route_ttl":          "30m",
	"route_alternatives": 3,
	"generate_workers":   4,
	"read_timeout":       "10s",
	"write_timeout":      "30s",
}

// Load reads .env (if present), then the optional config file at path, then
// environment variables, which win over both.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	var cfg Config
	hook := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case "sqlite":
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.RouteAlternatives < 1 {
		return fmt.Errorf("ROUTE_ALTERNATIVES must be at least 1, got %d", c.RouteAlternatives)
	}
	if c.GenerateWorkers < 1 {
		return fmt.Errorf("GENERATE_WORKERS must be at least 1, got %d", c.GenerateWorkers)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
