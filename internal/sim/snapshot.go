package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// BirdView is the drawable state of the bird.
type BirdView struct {
	Present   bool
	Alive     bool // drives the wing animation; false once the run is over
	Pos       core.Vec2
	VelocityY float64
	Frame     int
}

// PipeView is the drawable state of one pipe.
type PipeView struct {
	ID     EntityID
	Box    core.Box
	Scored bool
}

// GroundView is the drawable state of the ground strip.
type GroundView struct {
	Present bool
	Box     core.Box
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	State   GameState
	Score   Score
	Bird    BirdView
	Ground  GroundView
	Pipes   []PipeView
	Labels  []Label
	Elapsed float64
	World   core.Vec2 // playfield size in world units
}

// Snapshot copies the current frame out of the simulation.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Score:   s.tracker.Score(),
		Elapsed: s.elapsed,
		World:   core.V(s.cfg.World.Width, s.cfg.World.Height),
	}

	if b := s.world.Bird(); b != nil {
		snap.Bird = BirdView{
			Present:   true,
			Alive:     s.state == StatePlaying || s.state == StatePaused,
			Pos:       b.Pos,
			VelocityY: b.VelocityY,
			Frame:     b.Anim.Frame,
		}
	}

	if g := s.world.Ground(); g != nil {
		snap.Ground = GroundView{Present: true, Box: g.Box()}
	}

	pipes := s.world.Pipes()
	snap.Pipes = make([]PipeView, len(pipes))
	for i, p := range pipes {
		snap.Pipes[i] = PipeView{ID: p.ID, Box: p.Box(), Scored: p.Scored}
	}

	snap.Labels = append([]Label(nil), s.world.Labels()...)
	return snap
}

// Label returns the text of the first label of the given kind.
func (s Snapshot) Label(kind LabelKind) (string, bool) {
	for _, l := range s.Labels {
		if l.Kind == kind {
			return l.Text, true
		}
	}
	return "", false
}
