package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Options configures the host around a game.
type Options struct {
	// Logger receives state transitions, screenshots and reloads. Nil discards.
	Logger *log.Logger

	// ScreenshotDir is where screenshots are written. Empty disables them.
	ScreenshotDir string

	// Watcher, if set, delivers config file changes for hot reload.
	Watcher *config.Watcher
}

// ConfigChangedMsg carries a freshly loaded config from the watcher.
type ConfigChangedMsg struct {
	Path   string
	Config config.FlappyConfig
	Err    error
}

// Model is the Bubble Tea model for one flappy session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	clock      *sim.FrameClock
	inputFrame core.InputFrame
	state      sim.GameState
	opts       Options
	logger     *log.Logger
	quitting   bool
}

// helpStyle is the footer line under the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a model for the given game. The game is reset in Init.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		clock:      sim.NewFrameClock(),
		inputFrame: core.NewInputFrame(),
		state:      sim.StateMenu,
		opts:       opts,
		logger:     logger,
	}
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "seed", m.game.Seed())

	cmds := []tea.Cmd{tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForConfig(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigChangedMsg:
		return m.handleConfig(msg)
	}

	return m, nil
}

// handleKey records actions for the next frame; they are consumed on tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize only changes the picture; world coordinates do not depend on the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Sample(now)
	result := m.game.Step(m.inputFrame, dt)
	m.state = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		switch e.Kind {
		case sim.EventTransition:
			m.logger.Debug("state changed", "from", e.From, "to", e.To, "score", result.Score)
		case sim.EventCollision:
			m.logger.Debug("crashed", "into", e.Collision)
		case sim.EventDifficulty:
			m.logger.Debug("speed up", "multiplier", e.Multiplier)
		case sim.EventScreenshotRequested:
			m.saveScreenshot(now)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// handleConfig applies a reloaded config to the next run and waits for the next change.
func (m Model) handleConfig(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed, keeping the current config", "path", msg.Path, "error", msg.Err)
	} else {
		m.game.Reconfigure(msg.Config)
		m.logger.Info("config reloaded, applies on the next run", "path", msg.Path)
	}

	if m.opts.Watcher == nil {
		return m, nil
	}
	return m, waitForConfig(m.opts.Watcher)
}

// waitForConfig blocks until the watcher reports a change, then loads the file.
// It returns nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := flappy.ReloadConfig(path)
			return ConfigChangedMsg{Path: path, Config: cfg, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: w.Path(), Err: err}
		}
	}
}

// saveScreenshot renders the current frame and writes it as a PNG.
// Failures are logged; the game continues regardless.
func (m *Model) saveScreenshot(now time.Time) {
	if m.opts.ScreenshotDir == "" {
		m.logger.Debug("screenshot requested but screenshots are disabled")
		return
	}

	m.game.Render(m.screen)
	path, err := SaveScreenshot(m.opts.ScreenshotDir, m.screen, now)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield with the help footer below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys.Keys(m.state)),
	)
}

// State returns the game state seen on the last tick.
func (m Model) State() sim.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given game and blocks until it exits.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
