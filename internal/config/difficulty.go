package config

import "time"

// Progression types for DifficultyConfig.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// minSpawnInterval is the shortest survival wave gap the ramp produces.
const minSpawnInterval = time.Second

// DifficultyManager ramps enemy pressure from the configured initial level
// up to 1.0 as score or ticks approach max_at.
type DifficultyManager struct {
	initial  float64
	progress func(score, ticks int) float64
	scaling  ScalingConfig
}

// NewDifficultyManager builds a manager from config. A disabled config or
// an unknown progression type keeps the level fixed at initial_level.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{
		initial: unit(cfg.InitialLevel),
		scaling: cfg.Scaling,
	}

	maxAt := float64(max(cfg.Progression.MaxAt, 1))
	switch {
	case !cfg.Enabled:
	case cfg.Progression.Type == ProgressScore:
		d.progress = func(score, _ int) float64 { return float64(score) / maxAt }
	case cfg.Progression.Type == ProgressTime:
		d.progress = func(_, ticks int) float64 { return float64(ticks) / maxAt }
	}
	return d
}

// Ramping reports whether the level changes during a run.
func (d *DifficultyManager) Ramping() bool {
	return d.progress != nil
}

// Level returns the difficulty in [initial, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if d.progress == nil {
		return d.initial
	}
	p := unit(d.progress(score, ticks))
	return d.initial + p*(1-d.initial)
}

// Speed scales a base speed by up to 1 + speed_multiplier.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.scaling.SpeedMultiplier)
}

// SpawnInterval shortens the survival wave gap by up to spawn_reduction
// (capped at 90%). Gaps of a second or more never drop below a second.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score, ticks int) time.Duration {
	cut := min(max(d.Level(score, ticks)*d.scaling.SpawnReduction, 0), 0.9)
	gap := time.Duration(float64(base) * (1 - cut))
	if base >= minSpawnInterval {
		gap = max(gap, minSpawnInterval)
	}
	return gap
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
