package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Score holds the scoring and difficulty counters of a run.
type Score struct {
	Raw             int     // +1 per pipe passed, so +2 per gap
	PipesPassed     int     // completed gaps
	SpeedMultiplier float64 // scales pipe speed
}

// Displayed returns the score shown to the player: completed gaps.
func (s Score) Displayed() int {
	return s.Raw / 2
}

// ScoreTracker detects pipe passes and drives the difficulty ramp.
type ScoreTracker struct {
	window     float64
	difficulty *config.DifficultyManager
	score      Score
}

// NewScoreTracker creates a tracker with a zeroed score.
func NewScoreTracker(window float64, difficulty *config.DifficultyManager) *ScoreTracker {
	t := &ScoreTracker{window: window, difficulty: difficulty}
	t.Reset()
	return t
}

// Score returns the current counters.
func (t *ScoreTracker) Score() Score {
	return t.score
}

// Reset zeroes the score and the multiplier.
func (t *ScoreTracker) Reset() {
	t.score = Score{SpeedMultiplier: 1.0}
}

// Update scores every pipe the bird is passing this frame: a pipe at px
// scores when px <= birdX < px+window. Each pipe scores at most once.
// It returns the number of pipes scored and whether the multiplier changed.
func (t *ScoreTracker) Update(w *World, birdX float64) (scored int, rampChanged bool) {
	pipes := w.Pipes()
	for i := range pipes {
		p := &pipes[i]
		if p.Scored {
			continue
		}
		if birdX >= p.Pos.X && birdX < p.Pos.X+t.window {
			p.Scored = true
			scored++
			if t.increment() {
				rampChanged = true
			}
		}
	}
	return scored, rampChanged
}

// increment adds one to the raw score and, on every completed gap,
// advances the difficulty. It reports whether the multiplier changed.
func (t *ScoreTracker) increment() bool {
	t.score.Raw++
	if t.score.Raw%2 != 0 {
		return false
	}
	t.score.PipesPassed++
	prev := t.score.SpeedMultiplier
	t.score.SpeedMultiplier = t.difficulty.Multiplier(t.score.PipesPassed)
	return t.score.SpeedMultiplier != prev
}

// ScoreText formats the live score label.
func ScoreText(displayed int) string {
	return fmt.Sprintf("Score: %d", displayed)
}
