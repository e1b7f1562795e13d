// Package config loads storefront settings from defaults, an optional config
// file, GRILLAWAY_* environment variables and command-line flags, in rising
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRILLAWAY"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Shipping  ShippingConfig  `mapstructure:"shipping"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects the key-value backend holding catalog, cart and orders.
type StorageConfig struct {
	Driver      string `mapstructure:"driver"` // memory, file, sqlite, postgres, redis, s3
	Prefix      string `mapstructure:"prefix"`
	Path        string `mapstructure:"path"` // data directory for the file and sqlite drivers
	DSN         string `mapstructure:"dsn"`
	RedisAddr   string `mapstructure:"redis_addr"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Region    string `mapstructure:"s3_region"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3PathStyle bool   `mapstructure:"s3_path_style"`
}

// ShippingConfig prices delivery methods. External courier shipping is only
// added to order totals when PriceExternal is set.
type ShippingConfig struct {
	InternalCost     int64  `mapstructure:"internal_cost"`
	ExternalCost     int64  `mapstructure:"external_cost"`
	PriceExternal    bool   `mapstructure:"price_external"`
	ExternalEstimate string `mapstructure:"external_estimate"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

var Drivers = []string{"memory", "file", "sqlite", "postgres", "redis", "s3"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.prefix", "grillaway_")
	v.SetDefault("storage.path", "data")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.redis_addr", "")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.s3_endpoint", "")
	v.SetDefault("storage.s3_path_style", false)

	v.SetDefault("shipping.internal_cost", 20000)
	v.SetDefault("shipping.external_cost", 20000)
	v.SetDefault("shipping.price_external", false)
	v.SetDefault("shipping.external_estimate", "Estimasi Rp 15rb-25rb")

	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 10)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load parses args (without the program name) and builds the configuration.
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet("grillaway", pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("addr", ":8080", "listen address")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("storage", "file", "storage driver: "+strings.Join(Drivers, ", "))
	fs.String("data", "data", "data directory for the file and sqlite drivers")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	bindings := map[string]string{
		"server.addr":    "addr",
		"log.level":      "log-level",
		"storage.driver": "storage",
		"storage.path":   "data",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	known := false
	for _, d := range Drivers {
		if c.Storage.Driver == d {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown storage driver %q (must be one of %s)", c.Storage.Driver, strings.Join(Drivers, ", "))
	}
	if c.Storage.Driver == "s3" && c.Storage.S3Bucket == "" {
		return errors.New("storage.s3_bucket is required for the s3 driver")
	}

	if c.Shipping.InternalCost < 0 || c.Shipping.ExternalCost < 0 {
		return errors.New("shipping costs cannot be negative")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must be greater than zero")
	}
	return nil
}
