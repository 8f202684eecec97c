// Package sim is the flappy simulation engine: the game state machine,
// bird physics, the pipe spawner, mover and reaper, collision detection,
// and the score-driven difficulty ramp.
//
// The engine is single-threaded and has no I/O. A host calls Step once per
// rendered frame with the just-pressed input and the frame delta, then reads
// a Snapshot to draw.
package sim

// GameState is the active phase of the game. Exactly one is active at a time.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
