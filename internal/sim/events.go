package sim

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventTransition          EventKind = iota // state changed From -> To
	EventCollision                            // the bird hit something; Collision is set
	EventScored                               // one or more pipes passed; Score is the displayed score
	EventDifficulty                           // the speed multiplier changed; Multiplier is set
	EventPipesSpawned                         // a pipe pair appeared; GapCenter is set
	EventScreenshotRequested                  // the host should capture the current frame
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTransition:
		return "Transition"
	case EventCollision:
		return "Collision"
	case EventScored:
		return "Scored"
	case EventDifficulty:
		return "Difficulty"
	case EventPipesSpawned:
		return "PipesSpawned"
	case EventScreenshotRequested:
		return "ScreenshotRequested"
	default:
		return "Unknown"
	}
}

// Event is a notable occurrence during a step, reported to the host.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind       EventKind
	From, To   GameState
	Collision  Collision
	Score      int
	Multiplier float64
	GapCenter  float64
}

// StepResult is returned by Simulation.Step.
type StepResult struct {
	State  GameState
	Score  int // displayed score
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
