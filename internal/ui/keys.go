package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Place key.Binding
	Reset key.Binding
	Chat  key.Binding
	Close key.Binding
	Send  key.Binding
	Quit  key.Binding
	Force key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Place: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Chat:  key.NewBinding(key.WithKeys("c", "tab"), key.WithHelp("c", "AI chat")),
		Close: key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "close")),
		Send:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// cellForKey maps the digits 1-9 to cells 0-8.
func cellForKey(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
