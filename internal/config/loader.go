package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in config directories.
const FileName = "raycaster.yaml"

// LoadRaycaster loads engine configuration.
// Search order: customPath -> ~/.raycaster/configs/raycaster.yaml ->
// ./configs/raycaster.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
func LoadRaycaster(customPath string) (RaycasterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RaycasterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RaycasterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRaycasterYAML)
	if err != nil {
		return DefaultRaycasterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hard-coded defaults, applies the quality
// preset if one is named and validates the result.
func parse(data []byte) (RaycasterConfig, error) {
	cfg := DefaultRaycasterConfig()

	// The preset seeds the defaults; fields set in the file still win.
	var head struct {
		Quality string `yaml:"quality"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return cfg, err
	}
	if head.Quality != "" {
		if err := ApplyQualityPreset(&cfg, QualityPreset(head.Quality)); err != nil {
			return cfg, err
		}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raycaster", "configs", filename)
}
