package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGemswap loads Gem Swap configuration.
// Search order: customPath -> ~/.gemfall/configs/gemswap.yaml -> ./configs/gemswap.yaml -> embedded default
func LoadGemswap(customPath string) (GemswapConfig, error) {
	var cfg GemswapConfig

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
	if userCfgPath := userConfigPath("gemswap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/gemswap.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGemswapYAML, &cfg); err != nil {
		return DefaultGemswapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemfall", "configs", filename)
}

// ApplyGemswapPreset modifies the config based on a difficulty preset.
func ApplyGemswapPreset(cfg *GemswapConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Board variety tracks the preset directly
	switch preset {
	case DifficultyEasy:
		cfg.Board.Kinds = 4
	case DifficultyNormal:
		cfg.Board.Kinds = 5
	case DifficultyHard:
		cfg.Board.Kinds = 6
	}
}
