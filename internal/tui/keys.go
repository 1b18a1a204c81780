package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send     key.Binding
	copy     key.Binding
	quit     key.Binding
	scrollUp key.Binding
	scrollDn key.Binding
}

var keys = keyMap{
	send:     key.NewBinding(key.WithKeys("enter")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	scrollUp: key.NewBinding(key.WithKeys("pgup")),
	scrollDn: key.NewBinding(key.WithKeys("pgdown")),
}
