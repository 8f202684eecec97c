package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frameDT = 1.0 / 60

func newTestSim() *Simulation {
	return New(testConfig(), fixedRNG(0.5))
}

func none() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	return core.InputOf(actions...)
}

// startedSim returns a simulation that has just entered Playing.
func startedSim(t *testing.T) *Simulation {
	t.Helper()
	s := newTestSim()
	if res := s.Step(press(core.ActionStart, core.ActionJump), frameDT); res.State != StatePlaying {
		t.Fatalf("Start left state %v, expected Playing", res.State)
	}
	return s
}

// crash drives a started simulation into GameOver by dropping the bird below the ground.
func crash(t *testing.T, s *Simulation) StepResult {
	t.Helper()
	s.World().Bird().Pos.Y = -1000
	res := s.Step(none(), frameDT)
	if res.State != StateGameOver {
		t.Fatalf("crash left state %v, expected GameOver", res.State)
	}
	return res
}

func labelKinds(s *Simulation) []LabelKind {
	var kinds []LabelKind
	for _, l := range s.World().Labels() {
		kinds = append(kinds, l.Kind)
	}
	return kinds
}

func TestDispatchTable(t *testing.T) {
	s := newTestSim()

	tests := []struct {
		state    GameState
		expected []string
	}{
		{StateMenu, []string{"screenshot", "start"}},
		{StatePlaying, []string{"screenshot", "pause", "physics", "jump", "spawn", "move", "collision", "score", "animate"}},
		{StatePaused, []string{"screenshot", "resume"}},
		{StateGameOver, []string{"screenshot", "restart"}},
	}

	for _, tc := range tests {
		if got := s.Systems(tc.state); !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("Systems(%v) = %v, expected %v", tc.state, got, tc.expected)
		}
	}
}

func TestInitialMenu(t *testing.T) {
	s := newTestSim()

	if s.State() != StateMenu {
		t.Errorf("initial state = %v, expected Menu", s.State())
	}
	labels := s.World().Labels()
	if len(labels) != 1 || labels[0].Kind != LabelPrompt || labels[0].Text != "Press SPACE to Start" {
		t.Errorf("initial labels = %+v", labels)
	}
	if s.World().Bird() != nil {
		t.Error("no bird should exist in the menu")
	}
}

func TestMenuIgnoresGameplayInput(t *testing.T) {
	s := newTestSim()

	for _, a := range []core.Action{core.ActionJump, core.ActionPause, core.ActionRestart} {
		res := s.Step(press(a), 0.5)
		if res.State != StateMenu {
			t.Errorf("%v in Menu moved to %v", a, res.State)
		}
	}
	if s.World().Len() != 1 {
		t.Errorf("menu world has %d entities, expected only the prompt", s.World().Len())
	}
}

func TestStartSpawnsRun(t *testing.T) {
	s := newTestSim()
	res := s.Step(press(core.ActionStart, core.ActionJump), 0.1)

	if res.State != StatePlaying {
		t.Fatalf("state = %v, expected Playing", res.State)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventTransition ||
		res.Events[0].From != StateMenu || res.Events[0].To != StatePlaying {
		t.Errorf("events = %+v, expected one Menu->Playing transition", res.Events)
	}

	b := s.World().Bird()
	if b == nil {
		t.Fatal("Start should spawn the bird")
	}
	if b.Pos != core.V(-100, 0) || b.VelocityY != 0 {
		t.Errorf("bird = %+v, expected at (-100, 0) at rest", b)
	}
	g := s.World().Ground()
	if g == nil || g.Pos != core.V(0, -250) || g.Half != core.V(500, 25) {
		t.Errorf("ground = %+v", g)
	}
	if !reflect.DeepEqual(labelKinds(s), []LabelKind{LabelScore}) {
		t.Errorf("labels = %v, expected only the score", labelKinds(s))
	}
	if l, _ := s.World().FindLabel(LabelScore); l.Text != "Score: 0" {
		t.Errorf("score label = %q", l.Text)
	}
}

func TestFirstFrameAfterStart(t *testing.T) {
	s := newTestSim()
	s.Step(press(core.ActionStart), 0)

	s.Step(none(), 0.1)

	b := s.World().Bird()
	if !approxEqual(b.VelocityY, -50) || !approxEqual(b.Pos.Y, -5) {
		t.Errorf("after 0.1s: vel=%v y=%v, expected -50 and -5", b.VelocityY, b.Pos.Y)
	}
}

func TestJumpFrameEndsAtImpulse(t *testing.T) {
	s := startedSim(t)
	s.Step(none(), 0.2)

	s.Step(press(core.ActionJump), frameDT)

	if v := s.World().Bird().VelocityY; v != 300 {
		t.Errorf("VelocityY = %v on the jump frame, expected 300", v)
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	s := startedSim(t)
	s.Step(press(core.ActionJump), 0.5)
	before := *s.World().Bird()
	untilSpawn := s.UntilNextSpawn()

	res := s.Step(press(core.ActionPause, core.ActionJump), 0.1)
	if res.State != StatePaused {
		t.Fatalf("state = %v, expected Paused", res.State)
	}
	if l, ok := s.World().FindLabel(LabelPause); !ok || l.Text != "PAUSED\nPress P to Resume" {
		t.Errorf("pause label = %+v, %v", l, ok)
	}

	for i := 0; i < 20; i++ {
		s.Step(press(core.ActionJump), 0.5)
	}

	if after := *s.World().Bird(); after.Pos != before.Pos || after.VelocityY != before.VelocityY {
		t.Errorf("bird moved while paused: %+v -> %+v", before, after)
	}
	if got := s.UntilNextSpawn(); got != untilSpawn {
		t.Errorf("spawn timer moved while paused: %v -> %v", untilSpawn, got)
	}
	if len(s.World().Pipes()) != 0 {
		t.Error("pipes spawned while paused")
	}

	res = s.Step(press(core.ActionPause), 0.1)
	if res.State != StatePlaying {
		t.Fatalf("state = %v, expected Playing after resume", res.State)
	}
	if _, ok := s.World().FindLabel(LabelPause); ok {
		t.Error("pause label should be removed on resume")
	}
	if pairs := len(s.World().Pipes()); pairs != 0 {
		t.Error("resume should not fire a spawn backlog")
	}
}

func TestCollisionEndsRun(t *testing.T) {
	s := startedSim(t)
	res := crash(t, s)

	var collision Collision
	for _, e := range res.Events {
		if e.Kind == EventCollision {
			collision = e.Collision
		}
	}
	if collision != CollisionGround {
		t.Errorf("collision = %v, expected Ground", collision)
	}
	if s.World().Bird() == nil {
		t.Error("the bird stays on screen after a crash")
	}
	if snap := s.Snapshot(); snap.Bird.Alive {
		t.Error("snapshot should report the bird as not alive after a crash")
	}
}

func TestGameOverLabelOnce(t *testing.T) {
	s := startedSim(t)
	crash(t, s)

	for i := 0; i < 30; i++ {
		s.Step(press(core.ActionJump, core.ActionPause, core.ActionStart), frameDT)
	}

	count := 0
	for _, l := range s.World().Labels() {
		if l.Kind == LabelGameOver {
			count++
			if l.Text != "Game Over! Score: 0\nPress R to Restart" {
				t.Errorf("game over text = %q", l.Text)
			}
		}
	}
	if count != 1 {
		t.Errorf("found %d game over labels, expected 1", count)
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, expected GameOver", s.State())
	}
}

func TestScoringThroughSimulation(t *testing.T) {
	s := startedSim(t)
	w := s.World()
	for i := 0; i < 3; i++ {
		w.SpawnPipe(Pipe{Pos: core.V(-101, 1000), VelocityX: -150})
		w.SpawnPipe(Pipe{Pos: core.V(-101, -1000), VelocityX: -150})
	}

	res := s.Step(none(), 0.001)

	if !res.Has(EventScored) || res.Score != 3 {
		t.Errorf("result = %+v, expected displayed score 3", res)
	}
	if !res.Has(EventDifficulty) {
		t.Error("passing gaps should raise the speed multiplier")
	}
	if l, _ := w.FindLabel(LabelScore); l.Text != "Score: 3" {
		t.Errorf("score label = %q, expected %q", l.Text, "Score: 3")
	}

	for i := 0; i < 5; i++ {
		s.Step(none(), 0.001)
	}
	if raw := s.Score().Raw; raw != 6 {
		t.Errorf("Raw = %d after lingering in the window, expected 6", raw)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	s := startedSim(t)
	w := s.World()
	for i := 0; i < 3; i++ {
		w.SpawnPipe(Pipe{Pos: core.V(-101, 1000)})
		w.SpawnPipe(Pipe{Pos: core.V(-101, -1000)})
	}
	s.Step(none(), 0.001)
	crash(t, s)

	if got := s.Score(); got.Raw != 6 || got.Displayed() != 3 {
		t.Fatalf("score before restart = %+v", got)
	}
	if l, _ := w.FindLabel(LabelGameOver); l.Text != "Game Over! Score: 3\nPress R to Restart" {
		t.Errorf("game over text = %q", l.Text)
	}

	res := s.Step(press(core.ActionRestart), frameDT)

	if res.State != StateMenu {
		t.Fatalf("state = %v, expected Menu", res.State)
	}
	score := s.Score()
	if score.Raw != 0 || score.PipesPassed != 0 || score.SpeedMultiplier != 1.0 {
		t.Errorf("score after restart = %+v", score)
	}
	labels := w.Labels()
	if w.Len() != 1 || len(labels) != 1 || labels[0].Text != "Press SPACE to Start" {
		t.Errorf("world after restart has %d entities, labels %+v", w.Len(), labels)
	}
	if !approxEqual(s.UntilNextSpawn(), 2.0) {
		t.Errorf("spawn timer not reset: %v", s.UntilNextSpawn())
	}
}

func TestPlayAgainAfterRestart(t *testing.T) {
	s := startedSim(t)
	crash(t, s)
	s.Step(press(core.ActionRestart), frameDT)

	res := s.Step(press(core.ActionStart), frameDT)

	if res.State != StatePlaying {
		t.Fatalf("state = %v, expected Playing", res.State)
	}
	if b := s.World().Bird(); b == nil || b.Pos != core.V(-100, 0) {
		t.Errorf("bird after second start = %+v", b)
	}
}

func TestScreenshotInEveryState(t *testing.T) {
	s := newTestSim()
	check := func(expected GameState) {
		t.Helper()
		res := s.Step(press(core.ActionScreenshot), 0)
		if !res.Has(EventScreenshotRequested) {
			t.Errorf("%v: no screenshot event", expected)
		}
		if res.State != expected {
			t.Errorf("screenshot changed state %v -> %v", expected, res.State)
		}
	}

	check(StateMenu)
	s.Step(press(core.ActionStart), 0)
	check(StatePlaying)
	s.Step(press(core.ActionPause), 0)
	check(StatePaused)
	s.Step(press(core.ActionPause), 0)
	crash(t, s)
	check(StateGameOver)
}

func TestSpawnsDuringPlay(t *testing.T) {
	s := startedSim(t)

	var spawned int
	for i := 0; i < 4; i++ {
		res := s.Step(press(core.ActionJump), 0.5)
		for _, e := range res.Events {
			if e.Kind == EventPipesSpawned {
				spawned++
				if e.GapCenter != 0 {
					t.Errorf("GapCenter = %v, expected 0 for a 0.5 draw", e.GapCenter)
				}
			}
		}
	}

	if spawned != 1 {
		t.Errorf("spawned %d pairs in 2s, expected 1", spawned)
	}
	if got := len(s.World().Pipes()); got != 2 {
		t.Errorf("world has %d pipes, expected 2", got)
	}
}

func TestReconfigureAppliesOnNextRun(t *testing.T) {
	s := startedSim(t)
	cfg := testConfig()
	cfg.Physics.Gravity = -1000
	s.Reconfigure(cfg)

	s.Step(none(), 0.1)
	if v := s.World().Bird().VelocityY; !approxEqual(v, -50) {
		t.Errorf("running config changed mid-run: vel = %v", v)
	}

	crash(t, s)
	s.Step(press(core.ActionRestart), 0)
	s.Step(press(core.ActionStart), 0)
	s.Step(none(), 0.1)

	if v := s.World().Bird().VelocityY; !approxEqual(v, -100) {
		t.Errorf("new config not applied: vel = %v, expected -100", v)
	}
	if s.Config().Physics.Gravity != -1000 {
		t.Errorf("Config().Physics.Gravity = %v", s.Config().Physics.Gravity)
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	s := startedSim(t)
	before := *s.World().Bird()

	s.Step(none(), -1)

	if after := *s.World().Bird(); after.Pos != before.Pos || after.VelocityY != before.VelocityY {
		t.Errorf("negative dt moved the bird: %+v -> %+v", before, after)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := startedSim(t)
	s.World().SpawnPipe(Pipe{Pos: core.V(200, 300), Half: core.V(30, 200)})

	snap := s.Snapshot()
	if text, ok := snap.Label(LabelScore); !ok || text != "Score: 0" {
		t.Errorf("snap.Label(Score) = %q, %v", text, ok)
	}

	snap.Pipes[0].Box.Center.X = 0
	snap.Labels[0].Text = "changed"

	if s.World().Pipes()[0].Pos.X != 200 {
		t.Error("editing the snapshot changed a pipe")
	}
	if l, _ := s.World().FindLabel(LabelScore); l.Text != "Score: 0" {
		t.Error("editing the snapshot changed a label")
	}
	if !snap.Bird.Present || !snap.Bird.Alive || !snap.Ground.Present {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.World != core.V(800, 600) {
		t.Errorf("snapshot world size = %v", snap.World)
	}
	if text, ok := s.Snapshot().Label(LabelScore); !ok || text != "Score: 0" {
		t.Errorf("fresh snapshot label = %q, %v", text, ok)
	}
}

func TestNilRNGIsSeeded(t *testing.T) {
	s := New(testConfig(), nil)
	s.Step(press(core.ActionStart), 0)
	s.Step(press(core.ActionJump), 2.0)

	for _, p := range s.World().Pipes() {
		if p.Pos.X > 500 {
			t.Errorf("pipe spawned past the spawn x: %+v", p)
		}
	}
}
