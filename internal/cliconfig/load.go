package cliconfig

import "fmt"

// Loader resolves a Config. Base carries the flag values (over the
// defaults) and Changed names the flags the user set explicitly.
type Loader struct {
	Path    string
	Base    Config
	Changed map[string]bool
}

// Load applies the file (if present), the dotenv file and the environment
// over Base, then validates. It can be called again to pick up file edits.
func (l Loader) Load() (Config, error) {
	cfg := l.Base
	cfg.PercentPresets = append([]string(nil), l.Base.PercentPresets...)

	if l.Path != "" && FileExists(l.Path) {
		fc, err := LoadFileConfig(l.Path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(&cfg, fc, l.Changed)
	}

	if err := LoadDotEnv(cfg.EnvFile); err != nil {
		return Config{}, err
	}
	ApplyEnvConfig(&cfg, l.Changed)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
