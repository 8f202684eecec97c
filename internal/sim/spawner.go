package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RNG is the randomness source for gap placement.
// *math/rand.Rand satisfies it; tests pass a scripted source.
type RNG interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// PipePair describes a freshly spawned pair.
type PipePair struct {
	GapCenter float64
	Top       EntityID
	Bottom    EntityID
}

// Spawner creates a pipe pair every spawn interval.
type Spawner struct {
	cfg   config.PipesConfig
	timer Timer
	rng   RNG
}

// NewSpawner creates a spawner that draws gap centers from rng.
func NewSpawner(cfg config.PipesConfig, rng RNG) *Spawner {
	return &Spawner{
		cfg:   cfg,
		timer: NewTimer(cfg.SpawnInterval),
		rng:   rng,
	}
}

// Update advances the spawn timer by dt and spawns one pair per completed period.
func (s *Spawner) Update(w *World, dt float64) []PipePair {
	n := s.timer.Tick(dt)
	if n == 0 {
		return nil
	}
	pairs := make([]PipePair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, s.SpawnPair(w))
	}
	return pairs
}

// SpawnPair immediately creates one pair at the spawn x with a random gap center.
func (s *Spawner) SpawnPair(w *World) PipePair {
	center := s.gapCenter()
	offset := s.cfg.Gap/2 + s.cfg.HalfHeight
	half := core.V(s.cfg.HalfWidth, s.cfg.HalfHeight)

	top := w.SpawnPipe(Pipe{
		Pos:       core.V(s.cfg.SpawnX, center+offset),
		VelocityX: -s.cfg.Speed,
		Half:      half,
	})
	bottom := w.SpawnPipe(Pipe{
		Pos:       core.V(s.cfg.SpawnX, center-offset),
		VelocityX: -s.cfg.Speed,
		Half:      half,
	})
	return PipePair{GapCenter: center, Top: top, Bottom: bottom}
}

// gapCenter draws uniformly from [GapMin, GapMax).
func (s *Spawner) gapCenter() float64 {
	return s.cfg.GapMin + s.rng.Float64()*(s.cfg.GapMax-s.cfg.GapMin)
}

// Reset restarts the spawn period without touching existing pipes.
func (s *Spawner) Reset() {
	s.timer.Reset()
}

// UntilNext returns the seconds left before the next pair spawns.
func (s *Spawner) UntilNext() float64 {
	return s.timer.Period() - s.timer.Elapsed()
}
