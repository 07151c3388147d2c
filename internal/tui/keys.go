package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal view.
type KeyMap struct {
	Submit    key.Binding
	Prev      key.Binding
	Next      key.Binding
	Interrupt key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
	}
}

// HelpText returns a one-line key reference shown under the input.
func (k KeyMap) HelpText() string {
	return "↑/↓ history • ctrl+c abort line • ctrl+d quit"
}
