package cliconfig

import (
	"errors"
	"testing"

	"github.com/bft-labs/paycalc/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultPercent != "5" {
		t.Errorf("DefaultPercent = %v, want 5", cfg.DefaultPercent)
	}
	if cfg.DefaultTier != "Junior" {
		t.Errorf("DefaultTier = %v, want Junior", cfg.DefaultTier)
	}
	if cfg.ExportPath != DefaultExportPath {
		t.Errorf("ExportPath = %v, want %v", cfg.ExportPath, DefaultExportPath)
	}
	if len(cfg.PercentPresets) != 4 {
		t.Errorf("PercentPresets = %v, want 4 presets", cfg.PercentPresets)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		wantTier string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "comma percent", mutate: func(c *Config) { c.DefaultPercent = "7,5" }},
		{name: "empty percent is zero", mutate: func(c *Config) { c.DefaultPercent = "" }},
		{name: "negative percent", mutate: func(c *Config) { c.DefaultPercent = "-1" }, wantErr: true},
		{name: "text percent", mutate: func(c *Config) { c.DefaultPercent = "five" }, wantErr: true},
		{name: "bad preset", mutate: func(c *Config) { c.PercentPresets = []string{"5", "x"} }, wantErr: true},
		{name: "tier normalized", mutate: func(c *Config) { c.DefaultTier = "senior" }, wantTier: "Senior"},
		{name: "unknown tier", mutate: func(c *Config) { c.DefaultTier = "Lead" }, wantErr: true},
		{name: "missing export path", mutate: func(c *Config) { c.ExportPath = "" }, wantErr: true},
		{name: "spanish locale", mutate: func(c *Config) { c.Locale = "es-AR" }},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "??" }, wantErr: true},
		{name: "log level case", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			if tt.wantTier != "" && cfg.DefaultTier != tt.wantTier {
				t.Errorf("DefaultTier = %v, want %v", cfg.DefaultTier, tt.wantTier)
			}
		})
	}
}

func TestConfig_Tier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultTier = "Senior"
	if cfg.Tier() != domain.Senior {
		t.Errorf("Tier() = %v, want Senior", cfg.Tier())
	}
}
