package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	Env               string        `mapstructure:"ENV"`
	UpstreamBaseURL   string        `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamTimeout   time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	EnrichConcurrency int           `mapstructure:"ENRICH_CONCURRENCY"`
	SessionPath       string        `mapstructure:"SESSION_PATH"`
	SessionKeyPrefix  string        `mapstructure:"SESSION_KEY_PREFIX"`
	FallbackSeed      int64         `mapstructure:"FALLBACK_SEED"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("UPSTREAM_TIMEOUT", "15s")
	v.SetDefault("ENRICH_CONCURRENCY", 8)
	v.SetDefault("SESSION_PATH", ".caredash")
	v.SetDefault("SESSION_KEY_PREFIX", "caredash")
	v.SetDefault("FALLBACK_SEED", 1)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("UPSTREAM_BASE_URL")
	v.BindEnv("UPSTREAM_TIMEOUT")
	v.BindEnv("ENRICH_CONCURRENCY")
	v.BindEnv("SESSION_PATH")
	v.BindEnv("SESSION_KEY_PREFIX")
	v.BindEnv("FALLBACK_SEED")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("LOG_LEVEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. UPSTREAM_BASE_URL
// is required and must be an absolute http(s) URL; the enrichment
// concurrency bound must be positive.
func (c *Config) Validate() error {
	if c.UpstreamBaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	u, err := url.Parse(c.UpstreamBaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute http(s) URL, got %q", c.UpstreamBaseURL)
	}
	if c.EnrichConcurrency <= 0 {
		return fmt.Errorf("ENRICH_CONCURRENCY must be positive, got %d", c.EnrichConcurrency)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout)
	}
	return nil
}
