package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Interrupt key.Binding
	Quit      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Complete  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

var keys = keyMap{
	Submit:    key.NewBinding(key.WithKeys("enter")),
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+d")),
	Prev:      key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Next:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Complete:  key.NewBinding(key.WithKeys("tab")),
	PageUp:    key.NewBinding(key.WithKeys("pgup")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown")),
}
