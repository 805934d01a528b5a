package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. Values come from config.yaml
// (working directory or ./config), overridden by environment variables,
// with sane defaults for everything.
type Config struct {
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	APIBaseURL      string        `mapstructure:"API_BASE_URL"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`
	SuggestDebounce time.Duration `mapstructure:"SUGGEST_DEBOUNCE"`
}

// Load reads configuration via viper. A missing config file is fine;
// environment variables and defaults cover everything.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", "60s")
	v.SetDefault("SUGGEST_DEBOUNCE", "200ms")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with the production profile.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
