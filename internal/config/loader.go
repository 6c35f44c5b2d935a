package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snaze.yaml
var defaultYAML []byte

// Load reads the simulation config.
// Search order: customPath -> ~/.snaze/config.yaml -> ./snaze.yaml -> embedded default.
// Only a config named explicitly with customPath reports read or parse
// failures; the fallback locations are best-effort.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return applyDefaults(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyDefaults(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("snaze.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyDefaults(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fall back to hardcoded values if the embed is broken.
	}
	return applyDefaults(cfg), nil
}

// applyDefaults fills zero-valued fields so partial config files work.
func applyDefaults(cfg Config) Config {
	def := Default()
	if cfg.FPS == 0 {
		cfg.FPS = def.FPS
	}
	if cfg.Lives == 0 {
		cfg.Lives = def.Lives
	}
	if cfg.Food == 0 {
		cfg.Food = def.Food
	}
	if cfg.AI == "" {
		cfg.AI = def.AI
	}
	return cfg
}

// userConfigPath returns ~/.snaze/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaze", "config.yaml")
}
