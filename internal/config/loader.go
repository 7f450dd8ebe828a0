package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.pasha/config.yaml -> ./configs/config.yaml -> embedded default
func Load(customPath string) (AppConfig, error) {
	var cfg AppConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withFallbacks(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withFallbacks(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withFallbacks(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAppYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return withFallbacks(cfg), nil
}

// withFallbacks fills zero-valued fields from the built-in defaults, so a
// partial config file stays usable.
func withFallbacks(cfg AppConfig) AppConfig {
	def := DefaultConfig()
	if cfg.Database.Path == "" {
		cfg.Database.Path = def.Database.Path
	}
	if cfg.Game.FPS <= 0 {
		cfg.Game.FPS = def.Game.FPS
	}
	if cfg.SSH.Host == "" {
		cfg.SSH.Host = def.SSH.Host
	}
	if cfg.SSH.Port <= 0 {
		cfg.SSH.Port = def.SSH.Port
	}
	if cfg.SSH.HostKeyPath == "" {
		cfg.SSH.HostKeyPath = def.SSH.HostKeyPath
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pasha", filename)
}
