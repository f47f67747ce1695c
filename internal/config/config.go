package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration surface. Everything is
// overridable from the environment; a .env file is honored when present.
type Config struct {
	// Server
	Port string `mapstructure:"PORT"`

	// Fetching
	FetchDelay    time.Duration `mapstructure:"FETCH_DELAY"`
	APIDelay      time.Duration `mapstructure:"API_DELAY"`
	MaxRetries    int           `mapstructure:"MAX_RETRIES"`
	FetchStrategy string        `mapstructure:"FETCH_STRATEGY"` // "http" or "browser"

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("PORT", "8080")
	// Basketball Reference limits clients to 20 requests per minute.
	viper.SetDefault("FETCH_DELAY", "3100ms")
	viper.SetDefault("API_DELAY", "600ms")
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("FETCH_STRATEGY", "http")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.FetchStrategy != "http" && cfg.FetchStrategy != "browser" {
		return nil, fmt.Errorf("unknown fetch strategy %q (want http or browser)", cfg.FetchStrategy)
	}
	if cfg.MaxRetries < 1 {
		return nil, fmt.Errorf("MAX_RETRIES must be at least 1, got %d", cfg.MaxRetries)
	}

	return &cfg, nil
}
