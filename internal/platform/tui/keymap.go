package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whack-arcade/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Holes []key.Binding // One binding per numbered hole
	Start key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Holes,
		{k.Start, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: digits 1-9 whack the
// matching hole.
func DefaultKeyMap() KeyMap {
	holes := make([]key.Binding, 9)
	for i := range holes {
		digit := string(rune('1' + i))
		holes[i] = key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp(digit, "whack hole "+digit),
		)
	}
	return KeyMap{
		Holes: holes,
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Start):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	default:
		for i, b := range k.Holes {
			if key.Matches(msg, b) {
				frame.Select(i)
				break
			}
		}
	}
	return false
}
