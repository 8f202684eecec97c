package config

import "math"

// DifficultyManager turns the number of completed gaps into a pipe speed multiplier.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Rate > 0
}

// Multiplier returns min(max, 1 + rate*pipesPassed), or 1 when progression is off.
func (d *DifficultyManager) Multiplier(pipesPassed int) float64 {
	if !d.IsEnabled() || pipesPassed <= 0 {
		return 1.0
	}
	return math.Min(d.maxMultiplier(), 1.0+d.cfg.Rate*float64(pipesPassed))
}

// MaxedAt returns the number of completed gaps at which the cap is reached,
// or -1 if the ramp never reaches it.
func (d *DifficultyManager) MaxedAt() int {
	if !d.IsEnabled() {
		return -1
	}
	return int(math.Ceil((d.maxMultiplier() - 1.0) / d.cfg.Rate))
}

func (d *DifficultyManager) maxMultiplier() float64 {
	return math.Max(1.0, d.cfg.MaxMultiplier)
}
