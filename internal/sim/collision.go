package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Collision names what the bird hit.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionCeiling
	CollisionPipe
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionGround:
		return "Ground"
	case CollisionCeiling:
		return "Ceiling"
	case CollisionPipe:
		return "Pipe"
	default:
		return "Unknown"
	}
}

// CollisionDetector tests the bird against the ground, the ceiling and the pipes.
// The pipe test is a loose center-distance box check, not a sprite-shape test.
type CollisionDetector struct {
	GroundY        float64
	CeilingY       float64
	BirdHalfHeight float64
	PipeReachX     float64
	PipeReachY     float64
}

// NewCollisionDetector builds a detector from the config.
func NewCollisionDetector(cfg config.FlappyConfig) CollisionDetector {
	return CollisionDetector{
		GroundY:        cfg.World.GroundY,
		CeilingY:       cfg.World.CeilingY,
		BirdHalfHeight: cfg.Bird.HalfHeight,
		PipeReachX:     cfg.Collision.PipeReachX,
		PipeReachY:     cfg.Collision.PipeReachY,
	}
}

// Check runs ground, ceiling, then pipes in order; the first hit wins.
func (d CollisionDetector) Check(bird core.Vec2, pipes []Pipe) Collision {
	if bird.Y < d.GroundY+d.BirdHalfHeight {
		return CollisionGround
	}
	if bird.Y > d.CeilingY {
		return CollisionCeiling
	}
	for _, p := range pipes {
		if core.WithinReach(bird, p.Pos, d.PipeReachX, d.PipeReachY) {
			return CollisionPipe
		}
	}
	return CollisionNone
}
