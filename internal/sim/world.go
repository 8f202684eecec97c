package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EntityID identifies an entity for its whole lifetime. IDs are never reused.
type EntityID uint64

// Bird is the player-controlled entity. Its x never changes.
type Bird struct {
	ID        EntityID
	Pos       core.Vec2
	VelocityY float64
	Anim      Animation
}

// Pipe is one half of a pipe pair. Pairs are not linked; the two halves
// share their spawn x and are otherwise independent.
type Pipe struct {
	ID        EntityID
	Pos       core.Vec2
	VelocityX float64   // negative: pipes scroll left
	Half      core.Vec2 // drawing extents
	Scored    bool      // set once the bird has passed this pipe
}

// Box returns the pipe's drawing box.
func (p Pipe) Box() core.Box {
	return core.Box{Center: p.Pos, Half: p.Half}
}

// Ground is the static floor strip.
type Ground struct {
	ID   EntityID
	Pos  core.Vec2
	Half core.Vec2
}

// Box returns the ground's drawing box.
func (g Ground) Box() core.Box {
	return core.Box{Center: g.Pos, Half: g.Half}
}

// LabelKind says what a text label is for. At most one label of each kind is expected.
type LabelKind int

const (
	LabelPrompt LabelKind = iota
	LabelScore
	LabelPause
	LabelGameOver
)

// String returns a human-readable name for the label kind.
func (k LabelKind) String() string {
	switch k {
	case LabelPrompt:
		return "Prompt"
	case LabelScore:
		return "Score"
	case LabelPause:
		return "Pause"
	case LabelGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Label is a line (or lines, separated by '\n') of on-screen text.
type Label struct {
	ID   EntityID
	Kind LabelKind
	Text string
}

// World owns every live entity, grouped into typed collections.
// Entities refer to nothing; relations such as pipe pairs are
// computed from values each frame.
type World struct {
	nextID EntityID
	bird   *Bird
	ground *Ground
	pipes  []Pipe
	labels []Label
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		pipes:  make([]Pipe, 0, 8),
		labels: make([]Label, 0, 4),
	}
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// SpawnBird places the bird, replacing any existing one.
func (w *World) SpawnBird(pos core.Vec2, anim Animation) EntityID {
	id := w.allocID()
	w.bird = &Bird{ID: id, Pos: pos, Anim: anim}
	return id
}

// Bird returns the bird, or nil if none is present.
func (w *World) Bird() *Bird {
	return w.bird
}

// SpawnGround places the ground strip, replacing any existing one.
func (w *World) SpawnGround(pos, half core.Vec2) EntityID {
	id := w.allocID()
	w.ground = &Ground{ID: id, Pos: pos, Half: half}
	return id
}

// Ground returns the ground, or nil if none is present.
func (w *World) Ground() *Ground {
	return w.ground
}

// SpawnPipe adds a pipe and returns its ID. The ID field of p is ignored.
func (w *World) SpawnPipe(p Pipe) EntityID {
	p.ID = w.allocID()
	w.pipes = append(w.pipes, p)
	return p.ID
}

// Pipes returns the live pipes. Callers may modify elements in place but
// must not append to or reslice the returned slice.
func (w *World) Pipes() []Pipe {
	return w.pipes
}

// Pipe returns the pipe with the given ID.
func (w *World) Pipe(id EntityID) (Pipe, bool) {
	for _, p := range w.pipes {
		if p.ID == id {
			return p, true
		}
	}
	return Pipe{}, false
}

// RetainPipes keeps only pipes for which keep returns true and reports how many were removed.
func (w *World) RetainPipes(keep func(Pipe) bool) int {
	kept := w.pipes[:0]
	for _, p := range w.pipes {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	removed := len(w.pipes) - len(kept)
	w.pipes = kept
	return removed
}

// SpawnLabel adds a text label and returns its ID.
func (w *World) SpawnLabel(kind LabelKind, text string) EntityID {
	id := w.allocID()
	w.labels = append(w.labels, Label{ID: id, Kind: kind, Text: text})
	return id
}

// Labels returns the live labels in spawn order.
func (w *World) Labels() []Label {
	return w.labels
}

// FindLabel returns the first label of the given kind.
func (w *World) FindLabel(kind LabelKind) (Label, bool) {
	for _, l := range w.labels {
		if l.Kind == kind {
			return l, true
		}
	}
	return Label{}, false
}

// SetLabelText updates the text of every label of the given kind and
// reports how many were updated. Zero matches is not an error.
func (w *World) SetLabelText(kind LabelKind, text string) int {
	n := 0
	for i := range w.labels {
		if w.labels[i].Kind == kind {
			w.labels[i].Text = text
			n++
		}
	}
	return n
}

// RemoveLabels deletes every label of the given kind and reports how many were removed.
func (w *World) RemoveLabels(kind LabelKind) int {
	kept := w.labels[:0]
	for _, l := range w.labels {
		if l.Kind != kind {
			kept = append(kept, l)
		}
	}
	removed := len(w.labels) - len(kept)
	w.labels = kept
	return removed
}

// Clear removes every entity. IDs keep increasing afterwards.
func (w *World) Clear() {
	w.bird = nil
	w.ground = nil
	w.pipes = w.pipes[:0]
	w.labels = w.labels[:0]
}

// Len returns the number of live entities.
func (w *World) Len() int {
	n := len(w.pipes) + len(w.labels)
	if w.bird != nil {
		n++
	}
	if w.ground != nil {
		n++
	}
	return n
}
