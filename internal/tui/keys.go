package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings
type KeyMap struct {
	Home        key.Binding
	Missions    key.Binding
	Leaderboard key.Binding
	Profile     key.Binding
	Quit        key.Binding
	Help        key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Missions: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "missions"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "leaderboard"),
		),
		Profile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "profile"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
