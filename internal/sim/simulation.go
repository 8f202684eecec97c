package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Label texts.
const (
	PromptText = "Press SPACE to Start"
	PauseText  = "PAUSED\nPress P to Resume"
)

// GameOverText formats the summary label shown after a crash.
func GameOverText(displayed int) string {
	return fmt.Sprintf("Game Over! Score: %d\nPress R to Restart", displayed)
}

// frame is the per-step context threaded through the systems.
type frame struct {
	in     core.InputFrame
	dt     float64
	events []Event
}

func (f *frame) emit(e Event) {
	f.events = append(f.events, e)
}

// system is one stage of the per-frame pipeline.
type system struct {
	name string
	run  func(s *Simulation, f *frame)
}

// Simulation owns the whole game: state, world, and the per-state system pipelines.
// It is not safe for concurrent use; a host hands Snapshots to its renderer instead.
type Simulation struct {
	cfg      config.FlappyConfig
	pending  *config.FlappyConfig
	state    GameState
	world    *World
	physics  Physics
	spawner  *Spawner
	detector CollisionDetector
	tracker  *ScoreTracker
	rng      RNG
	dispatch map[GameState][]system
	elapsed  float64 // seconds of Playing time in the current run
}

// New creates a simulation in the Menu state with the prompt label shown.
// A nil rng seeds math/rand from the current time.
func New(cfg config.FlappyConfig, rng RNG) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		state:    StateMenu,
		world:    NewWorld(),
		rng:      rng,
		dispatch: defaultDispatch(),
	}
	s.configure(cfg)
	s.world.SpawnLabel(LabelPrompt, PromptText)
	return s
}

// configure rebuilds every config-derived component.
func (s *Simulation) configure(cfg config.FlappyConfig) {
	s.cfg = cfg
	s.physics = Physics{Gravity: cfg.Physics.Gravity, JumpImpulse: cfg.Physics.JumpImpulse}
	s.spawner = NewSpawner(cfg.Pipes, s.rng)
	s.detector = NewCollisionDetector(cfg)
	s.tracker = NewScoreTracker(cfg.Scoring.Window, config.NewDifficultyManager(cfg.Difficulty))
}

// defaultDispatch maps each state to the ordered systems that run in it.
// Input-only systems come first; a system that changes the state ends the frame.
func defaultDispatch() map[GameState][]system {
	screenshot := system{"screenshot", (*Simulation).screenshotSystem}
	return map[GameState][]system{
		StateMenu: {
			screenshot,
			{"start", (*Simulation).startSystem},
		},
		StatePlaying: {
			screenshot,
			{"pause", (*Simulation).pauseSystem},
			{"physics", (*Simulation).physicsSystem},
			{"jump", (*Simulation).jumpSystem},
			{"spawn", (*Simulation).spawnSystem},
			{"move", (*Simulation).moveSystem},
			{"collision", (*Simulation).collisionSystem},
			{"score", (*Simulation).scoreSystem},
			{"animate", (*Simulation).animateSystem},
		},
		StatePaused: {
			screenshot,
			{"resume", (*Simulation).resumeSystem},
		},
		StateGameOver: {
			screenshot,
			{"restart", (*Simulation).restartSystem},
		},
	}
}

// Systems returns the names of the systems that run in a state, in order.
func (s *Simulation) Systems(state GameState) []string {
	systems := s.dispatch[state]
	names := make([]string, len(systems))
	for i, sys := range systems {
		names[i] = sys.name
	}
	return names
}

// Step advances the simulation by one frame of dt seconds.
// Input is the set of actions pressed since the previous frame.
func (s *Simulation) Step(in core.InputFrame, dt float64) StepResult {
	if dt < 0 {
		dt = 0
	}
	f := &frame{in: in, dt: dt}

	start := s.state
	for _, sys := range s.dispatch[start] {
		sys.run(s, f)
		if s.state != start {
			break
		}
	}

	return StepResult{
		State:  s.state,
		Score:  s.tracker.Score().Displayed(),
		Events: f.events,
	}
}

// State returns the active game state.
func (s *Simulation) State() GameState {
	return s.state
}

// Score returns the scoring and difficulty counters.
func (s *Simulation) Score() Score {
	return s.tracker.Score()
}

// World exposes the entity store. Hosts should prefer Snapshot.
func (s *Simulation) World() *World {
	return s.world
}

// Config returns the config the current run uses.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}

// UntilNextSpawn returns the seconds left before the next pipe pair.
func (s *Simulation) UntilNextSpawn() float64 {
	return s.spawner.UntilNext()
}

// Reconfigure schedules a new config. It takes effect when the next run
// starts so that a run in progress never changes its rules.
func (s *Simulation) Reconfigure(cfg config.FlappyConfig) {
	s.pending = &cfg
}

// transition switches state and applies the entity changes tied to it.
func (s *Simulation) transition(to GameState, f *frame) {
	from := s.state
	s.state = to

	switch {
	case from == StateMenu && to == StatePlaying:
		s.startRun()
	case from == StatePlaying && to == StatePaused:
		s.world.SpawnLabel(LabelPause, PauseText)
	case from == StatePaused && to == StatePlaying:
		s.world.RemoveLabels(LabelPause)
	case from == StatePlaying && to == StateGameOver:
		if _, ok := s.world.FindLabel(LabelGameOver); !ok {
			s.world.SpawnLabel(LabelGameOver, GameOverText(s.tracker.Score().Displayed()))
		}
	case from == StateGameOver && to == StateMenu:
		s.resetToMenu()
	}

	f.emit(Event{Kind: EventTransition, From: from, To: to})
}

// startRun clears the menu and spawns the bird, the ground and the score label.
func (s *Simulation) startRun() {
	if s.pending != nil {
		s.configure(*s.pending)
		s.pending = nil
	}

	s.world.RemoveLabels(LabelPrompt)

	anim := NewAnimation(s.cfg.Bird.AnimationFrames, s.cfg.Bird.AnimationFPS)
	s.world.SpawnBird(core.V(s.cfg.Bird.X, s.cfg.Bird.StartY), anim)
	s.world.SpawnGround(
		core.V(0, s.cfg.World.GroundY),
		core.V(s.cfg.World.GroundWidth/2, s.cfg.World.GroundHeight/2),
	)
	s.world.SpawnLabel(LabelScore, ScoreText(s.tracker.Score().Displayed()))
	s.elapsed = 0
}

// resetToMenu destroys every entity, zeroes the run counters and shows the prompt.
func (s *Simulation) resetToMenu() {
	s.world.Clear()
	s.tracker.Reset()
	s.spawner.Reset()
	s.elapsed = 0
	s.world.SpawnLabel(LabelPrompt, PromptText)
}

func (s *Simulation) screenshotSystem(f *frame) {
	if f.in.Has(core.ActionScreenshot) {
		f.emit(Event{Kind: EventScreenshotRequested})
	}
}

func (s *Simulation) startSystem(f *frame) {
	if f.in.Has(core.ActionStart) {
		s.transition(StatePlaying, f)
	}
}

func (s *Simulation) pauseSystem(f *frame) {
	if f.in.Has(core.ActionPause) {
		s.transition(StatePaused, f)
	}
}

func (s *Simulation) resumeSystem(f *frame) {
	if f.in.Has(core.ActionPause) {
		s.transition(StatePlaying, f)
	}
}

func (s *Simulation) restartSystem(f *frame) {
	if f.in.Has(core.ActionRestart) {
		s.transition(StateMenu, f)
	}
}

func (s *Simulation) physicsSystem(f *frame) {
	if b := s.world.Bird(); b != nil {
		s.physics.Integrate(b, f.dt)
	}
}

// jumpSystem runs after integration so the impulse frame ends with the
// velocity exactly at the jump impulse.
func (s *Simulation) jumpSystem(f *frame) {
	if !f.in.Has(core.ActionJump) {
		return
	}
	if b := s.world.Bird(); b != nil {
		s.physics.Jump(b)
	}
}

func (s *Simulation) spawnSystem(f *frame) {
	for _, pair := range s.spawner.Update(s.world, f.dt) {
		f.emit(Event{Kind: EventPipesSpawned, GapCenter: pair.GapCenter})
	}
}

func (s *Simulation) moveSystem(f *frame) {
	MovePipes(s.world, f.dt, s.tracker.Score().SpeedMultiplier, s.cfg.Pipes.DespawnX)
}

func (s *Simulation) collisionSystem(f *frame) {
	b := s.world.Bird()
	if b == nil {
		return
	}
	if c := s.detector.Check(b.Pos, s.world.Pipes()); c != CollisionNone {
		f.emit(Event{Kind: EventCollision, Collision: c})
		s.transition(StateGameOver, f)
	}
}

func (s *Simulation) scoreSystem(f *frame) {
	b := s.world.Bird()
	if b == nil {
		return
	}
	scored, rampChanged := s.tracker.Update(s.world, b.Pos.X)
	if scored == 0 {
		return
	}

	score := s.tracker.Score()
	s.world.SetLabelText(LabelScore, ScoreText(score.Displayed()))
	f.emit(Event{Kind: EventScored, Score: score.Displayed()})
	if rampChanged {
		f.emit(Event{Kind: EventDifficulty, Multiplier: score.SpeedMultiplier})
	}
}

func (s *Simulation) animateSystem(f *frame) {
	if b := s.world.Bird(); b != nil {
		b.Anim.Advance(f.dt)
	}
	s.elapsed += f.dt
}
