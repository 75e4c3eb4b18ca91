// Package config provides YAML-based game configuration loading and
// difficulty management for the gemfall platform.
package config

// GemswapConfig contains all configuration for the Gem Swap game.
type GemswapConfig struct {
	Board      GemswapBoard     `yaml:"board"`
	Rules      GemswapRules     `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GemswapBoard defines the playing grid dimensions and gem variety.
type GemswapBoard struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Kinds int `yaml:"kinds"` // Number of distinct gem kinds in play (3..6)
}

// GemswapRules defines gameplay pacing parameters.
type GemswapRules struct {
	RevertDelayTicks int `yaml:"revert_delay_ticks"` // Ticks a failed swap stays visible before reverting
	CascadeTicks     int `yaml:"cascade_ticks"`      // Ticks between cascade resolution steps
	MovesLimit       int `yaml:"moves_limit"`        // Accepted swaps per game in classic mode (0 = unlimited)
}

// DifficultyConfig defines the difficulty system for Gem Swap.
// A higher level puts more gem kinds in play, making matches rarer.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MinKinds     int     `yaml:"min_kinds"`     // Kinds in play at level 0.0
	MaxKinds     int     `yaml:"max_kinds"`     // Kinds in play at level 1.0
	ProgressAt   int     `yaml:"progress_at"`   // Score at which level reaches 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables difficulty scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// KindsForLevel maps a difficulty level to the number of gem kinds in play.
func (d DifficultyConfig) KindsForLevel(level float64) int {
	if !d.Enabled {
		return d.MinKinds
	}
	level = clampF(level, 0.0, 1.0)
	span := float64(d.MaxKinds - d.MinKinds)
	return d.MinKinds + int(level*span+0.5)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
