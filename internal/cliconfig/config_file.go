package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML keys.
type FileConfig struct {
	DefaultPercent string   `toml:"default_percent"`
	PercentPresets []string `toml:"percent_presets"`
	DefaultTier    string   `toml:"default_tier"`
	ExportPath     string   `toml:"export_path"`
	Locale         string   `toml:"locale"`
	LogLevel       string   `toml:"log_level"`
	EnvFile        string   `toml:"env_file"`
	Watch          *bool    `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.paycalc/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".paycalc", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("default-percent", fc.DefaultPercent, &cfg.DefaultPercent)
	s.setStrings("percent-presets", fc.PercentPresets, &cfg.PercentPresets)
	s.setString("default-tier", fc.DefaultTier, &cfg.DefaultTier)
	s.setString("export-path", fc.ExportPath, &cfg.ExportPath)
	s.setString("locale", fc.Locale, &cfg.Locale)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("env-file", fc.EnvFile, &cfg.EnvFile)
	s.setBool("watch", fc.Watch, &cfg.Watch)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
