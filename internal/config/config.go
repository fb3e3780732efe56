package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string `mapstructure:"PORT"`
	Env             string `mapstructure:"ENV"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32  `mapstructure:"DB_MIN_CONNS"`
	RateLimitMax    int    `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow int    `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("RATE_LIMIT_MAX")
	v.BindEnv("RATE_LIMIT_WINDOW_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Window returns the rate limit window as a duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.RateLimitWindow) * time.Second
}

// Validate checks that the configuration is usable. The environment name
// only affects the reported label and log format, so any value is accepted.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %d", c.RateLimitWindow)
	}
	return nil
}
