package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Storefront    StorefrontConfig    `mapstructure:"storefront"`
	RecordService RecordServiceConfig `mapstructure:"record_service"`
	Publish       PublishConfig       `mapstructure:"publish"`
	Telemetry     TelemetryConfig     `mapstructure:"telemetry"`
}

type StorefrontConfig struct {
	Addr           string        `mapstructure:"addr"`
	StateDir       string        `mapstructure:"state_dir"`
	Backend        string        `mapstructure:"backend"` // "file" or "redis"
	RedisAddr      string        `mapstructure:"redis_addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type RecordServiceConfig struct {
	Addr string `mapstructure:"addr"`
}

// PublishConfig controls forwarding of finished records to the record
// service. Disabled by default: the storefront persists locally only.
type PublishConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Addr    string        `mapstructure:"addr"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads config.yaml (optional) and TECHSTORE_-prefixed environment
// variables on top of the built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/techstore/")

	v.SetEnvPrefix("TECHSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storefront.addr", ":8080")
	v.SetDefault("storefront.state_dir", "./state")
	v.SetDefault("storefront.backend", "file")
	v.SetDefault("storefront.redis_addr", "localhost:6379")
	v.SetDefault("storefront.request_timeout", 30*time.Second)
	v.SetDefault("record_service.addr", ":3001")
	v.SetDefault("publish.enabled", false)
	v.SetDefault("publish.addr", "http://localhost:3001")
	v.SetDefault("publish.timeout", 5*time.Second)
	v.SetDefault("telemetry.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storefront.Backend != "file" && cfg.Storefront.Backend != "redis" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storefront.Backend)
	}
	return &cfg, nil
}
