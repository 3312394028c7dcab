package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. WHACK_GAME_DURATION.
const EnvPrefix = "WHACK_"

// Load loads the game configuration.
// Search order: customPath -> ~/.whack/configs/whack.yaml -> ./configs/whack.yaml -> embedded default.
// Environment overrides are applied on top and the result is validated.
func Load(customPath string) (WhackConfig, error) {
	cfg, err := loadYAML(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(customPath string) (WhackConfig, error) {
	// Files only need to set the keys they change.
	cfg := DefaultWhackConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("whack.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultWhackConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/whack.yaml"); err == nil {
		candidate := DefaultWhackConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWhackYAML, &cfg); err != nil {
		return DefaultWhackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any WHACK_* environment variables that are set.
func ApplyEnv(cfg *WhackConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// ApplyPreset switches cfg to the named difficulty level.
// An empty name leaves the configured level unchanged.
func ApplyPreset(cfg *WhackConfig, name string) error {
	if name == "" {
		return nil
	}
	d, err := ParseDifficulty(name)
	if err != nil {
		return err
	}
	cfg.Difficulty.Level = d
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".whack", "configs", filename)
}
