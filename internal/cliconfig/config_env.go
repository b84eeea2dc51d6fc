package cliconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a dotenv file into the process
// environment. Variables already set are kept. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" || !FileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (PAYCALC_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("default-percent", os.Getenv("PAYCALC_DEFAULT_PERCENT"), &cfg.DefaultPercent)
	s.setStrings("percent-presets", splitList(os.Getenv("PAYCALC_PERCENT_PRESETS")), &cfg.PercentPresets)
	s.setString("default-tier", os.Getenv("PAYCALC_DEFAULT_TIER"), &cfg.DefaultTier)
	s.setString("export-path", os.Getenv("PAYCALC_EXPORT_PATH"), &cfg.ExportPath)
	s.setString("locale", os.Getenv("PAYCALC_LOCALE"), &cfg.Locale)
	s.setString("log-level", os.Getenv("PAYCALC_LOG_LEVEL"), &cfg.LogLevel)

	s.setBoolFromString("watch", os.Getenv("PAYCALC_WATCH"), &cfg.Watch)
}
