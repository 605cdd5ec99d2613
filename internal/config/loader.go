package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const eaterFile = "eater.yaml"

// LoadEater loads the maze game configuration.
// Search order: customPath -> ~/.eaterai/configs/eater.yaml -> ./configs/eater.yaml -> embedded default
func LoadEater(customPath string) (EaterConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultEaterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(eaterFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", eaterFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultEaterYAML, &cfg); err != nil {
		return DefaultEaterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are skipped.
func tryLoad(path string) (EaterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EaterConfig{}, false
	}
	cfg := DefaultEaterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EaterConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eaterai", "configs", filename)
}
