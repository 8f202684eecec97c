// Package flappy hosts the flappy simulation on a character screen.
// It owns config loading and seeding, and projects the world onto terminal cells.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// configPath and difficultyPreset are set from CLI flags before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the loaded config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig loads the config using the CLI-provided path and preset.
// It also returns the path the config came from.
func LoadConfig() (config.FlappyConfig, string, error) {
	cfg, source, err := config.Load(configPath)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, source, nil
}

// ReloadConfig re-reads a config file and applies the CLI preset again.
func ReloadConfig(path string) (config.FlappyConfig, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game wraps a simulation for a terminal host.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	sim     *sim.Simulation
	last    sim.StepResult
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset creates a fresh simulation in the Menu state.
// A zero seed draws one from the current time.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.sim = sim.New(g.cfg, rand.New(rand.NewSource(rc.Seed)))
	g.last = sim.StepResult{State: g.sim.State()}
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) sim.StepResult {
	g.last = g.sim.Step(in, dt)
	return g.last
}

// Reconfigure schedules new tuning; the simulation applies it when the next run starts.
func (g *Game) Reconfigure(cfg config.FlappyConfig) {
	g.cfg = cfg
	g.sim.Reconfigure(cfg)
}

// State returns the active game state.
func (g *Game) State() sim.GameState {
	return g.sim.State()
}

// Score returns the scoring and difficulty counters.
func (g *Game) Score() sim.Score {
	return g.sim.Score()
}

// Snapshot returns a read-only copy of the current frame.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Config returns the tuning of the current run.
func (g *Game) Config() config.FlappyConfig {
	return g.sim.Config()
}

// Seed returns the seed the current simulation was created with.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}
