package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Errorf("UpstreamTimeout = %s", cfg.UpstreamTimeout)
	}
	if cfg.EnrichConcurrency != 8 {
		t.Errorf("EnrichConcurrency = %d", cfg.EnrichConcurrency)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.org")
	t.Setenv("CORS_ORIGINS", "https://a.example.org,https://b.example.org")
	t.Setenv("ENRICH_CONCURRENCY", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.UpstreamBaseURL != "https://api.example.org" {
		t.Errorf("UpstreamBaseURL = %q", cfg.UpstreamBaseURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.org" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.EnrichConcurrency != 3 {
		t.Errorf("EnrichConcurrency = %d", cfg.EnrichConcurrency)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		UpstreamBaseURL:   "https://api.example.org",
		UpstreamTimeout:   15 * time.Second,
		EnrichConcurrency: 8,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base url", func(c *Config) { c.UpstreamBaseURL = "" }},
		{"relative base url", func(c *Config) { c.UpstreamBaseURL = "api.example.org/v1" }},
		{"bad scheme", func(c *Config) { c.UpstreamBaseURL = "ftp://api.example.org" }},
		{"zero concurrency", func(c *Config) { c.EnrichConcurrency = 0 }},
		{"zero timeout", func(c *Config) { c.UpstreamTimeout = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("want validation error")
			}
		})
	}
}
