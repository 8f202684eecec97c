// Package config provides YAML-based tuning for the flappy simulation,
// difficulty presets, and a file watcher for hot reload.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a config fails validation.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains every tunable constant of the simulation.
// Units are world units (the visible playfield is 800x600, origin centered,
// y pointing up) and seconds.
type FlappyConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipesConfig      `yaml:"pipes"`
	World      WorldConfig      `yaml:"world"`
	Collision  CollisionConfig  `yaml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines bird physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // units/s^2, negative pulls down
	JumpImpulse float64 `yaml:"jump_impulse"` // units/s, velocity set on jump
}

// BirdConfig defines the bird's placement and animation.
type BirdConfig struct {
	X               float64 `yaml:"x"`
	StartY          float64 `yaml:"start_y"`
	HalfHeight      float64 `yaml:"half_height"`
	AnimationFPS    float64 `yaml:"animation_fps"`
	AnimationFrames int     `yaml:"animation_frames"`
}

// PipesConfig defines pipe spawning and movement.
type PipesConfig struct {
	Speed         float64 `yaml:"speed"`          // base leftward speed, units/s
	Gap           float64 `yaml:"gap"`            // vertical opening between the pair
	HalfWidth     float64 `yaml:"half_width"`     // drawing extent
	HalfHeight    float64 `yaml:"half_height"`    // drawing extent and spawn offset
	SpawnX        float64 `yaml:"spawn_x"`        // x of newly spawned pairs
	DespawnX      float64 `yaml:"despawn_x"`      // pipes left of this are removed
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds between pairs
	GapMin        float64 `yaml:"gap_min"`        // lowest gap center
	GapMax        float64 `yaml:"gap_max"`        // highest gap center
}

// WorldConfig defines the static playfield.
type WorldConfig struct {
	GroundY      float64 `yaml:"ground_y"`
	CeilingY     float64 `yaml:"ceiling_y"`
	GroundWidth  float64 `yaml:"ground_width"`
	GroundHeight float64 `yaml:"ground_height"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// CollisionConfig defines the bird-vs-pipe reach thresholds.
// A pipe hits the bird when |bx-px| < ReachX and |by-py| < ReachY.
type CollisionConfig struct {
	PipeReachX float64 `yaml:"pipe_reach_x"`
	PipeReachY float64 `yaml:"pipe_reach_y"`
}

// ScoringConfig defines the pass-detection window.
type ScoringConfig struct {
	Window float64 `yaml:"window"` // a pipe scores while px <= bx < px+Window
}

// DifficultyConfig defines the speed ramp:
// multiplier = min(MaxMultiplier, 1 + Rate*pipesPassed).
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Rate          float64 `yaml:"rate"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// An empty string means "use the config file as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the difficulty section for a preset.
// Normal keeps the configured ramp.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Rate /= 2
		cfg.Difficulty.MaxMultiplier = 1 + (cfg.Difficulty.MaxMultiplier-1)/2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Rate *= 2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Validate checks the config for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity < 0, "physics.gravity must be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse > 0, "physics.jump_impulse must be positive, got %v", c.Physics.JumpImpulse)
	check(c.Bird.AnimationFPS > 0, "bird.animation_fps must be positive, got %v", c.Bird.AnimationFPS)
	check(c.Bird.AnimationFrames > 0, "bird.animation_frames must be positive, got %d", c.Bird.AnimationFrames)
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %v", c.Pipes.Speed)
	check(c.Pipes.Gap > 0, "pipes.gap must be positive, got %v", c.Pipes.Gap)
	check(c.Pipes.HalfWidth > 0 && c.Pipes.HalfHeight > 0, "pipes half extents must be positive")
	check(c.Pipes.SpawnInterval > 0, "pipes.spawn_interval must be positive, got %v", c.Pipes.SpawnInterval)
	check(c.Pipes.GapMin <= c.Pipes.GapMax, "pipes.gap_min (%v) must not exceed gap_max (%v)", c.Pipes.GapMin, c.Pipes.GapMax)
	check(c.Pipes.DespawnX < c.Pipes.SpawnX, "pipes.despawn_x must be left of spawn_x")
	check(c.World.GroundY < c.World.CeilingY, "world.ground_y must be below ceiling_y")
	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.Collision.PipeReachX > 0 && c.Collision.PipeReachY > 0, "collision reach must be positive")
	check(c.Scoring.Window > 0, "scoring.window must be positive, got %v", c.Scoring.Window)
	check(c.Difficulty.Rate >= 0, "difficulty.rate must not be negative, got %v", c.Difficulty.Rate)
	check(c.Difficulty.MaxMultiplier >= 1, "difficulty.max_multiplier must be at least 1, got %v", c.Difficulty.MaxMultiplier)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
