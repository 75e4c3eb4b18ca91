package config

// DifficultyManager calculates the gem variety in play based on score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.MaxKinds > d.cfg.MinKinds
}

// Level returns the current difficulty level (0.0 to 1.0) based on score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	progressAt := float64(d.cfg.ProgressAt)
	if progressAt <= 0 {
		progressAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(score)/progressAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Kinds returns the number of gem kinds in play at the given score.
func (d *DifficultyManager) Kinds(score int) int {
	return d.cfg.KindsForLevel(d.Level(score))
}
