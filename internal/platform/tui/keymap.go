package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Start      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Jump, k.Pause, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Space both starts and flaps.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, with help entries enabled for the given state.
func (km *KeyMapper) Keys(state sim.GameState) KeyMap {
	k := km.keys
	k.Start.SetEnabled(state == sim.StateMenu)
	k.Jump.SetEnabled(state == sim.StatePlaying)
	k.Pause.SetEnabled(state == sim.StatePlaying || state == sim.StatePaused)
	if state == sim.StatePaused {
		k.Pause.SetHelp("p", "resume")
	}
	k.Restart.SetEnabled(state == sim.StateGameOver)
	return k
}

// MapKey returns every action bound to the key.
// A key can map to several actions, the simulation ignores those its state does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{km.keys.Quit, core.ActionQuit},
		{km.keys.Start, core.ActionStart},
		{km.keys.Jump, core.ActionJump},
		{km.keys.Pause, core.ActionPause},
		{km.keys.Restart, core.ActionRestart},
		{km.keys.Screenshot, core.ActionScreenshot},
	}

	var actions []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// MapKeyToFrame records the key's actions in the input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	for _, a := range km.MapKey(msg) {
		if a == core.ActionQuit {
			return true
		}
		frame.Set(a)
	}
	return false
}
