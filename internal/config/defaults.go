package config

import (
	_ "embed"
)

//go:embed defaults/gemswap.yaml
var defaultGemswapYAML []byte

// DefaultGemswapConfig returns the default Gem Swap configuration.
func DefaultGemswapConfig() GemswapConfig {
	return GemswapConfig{
		Board: GemswapBoard{
			Rows:  9,
			Cols:  9,
			Kinds: 5,
		},
		Rules: GemswapRules{
			RevertDelayTicks: 18,
			CascadeTicks:     6,
			MovesLimit:       30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MinKinds:     4,
			MaxKinds:     6,
			ProgressAt:   200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gemswap", "gemswap_zen":
		return defaultGemswapYAML
	default:
		return nil
	}
}
