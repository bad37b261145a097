package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	refresh key.Binding
	compose key.Binding
	edit    key.Binding
	copy    key.Binding
	nav1    key.Binding
	nav2    key.Binding
	nav3    key.Binding
	nav4    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("ctrl+l")),
	refresh: key.NewBinding(key.WithKeys("r")),
	compose: key.NewBinding(key.WithKeys("n")),
	edit:    key.NewBinding(key.WithKeys("e")),
	copy:    key.NewBinding(key.WithKeys("c")),
	nav1:    key.NewBinding(key.WithKeys("1")),
	nav2:    key.NewBinding(key.WithKeys("2")),
	nav3:    key.NewBinding(key.WithKeys("3")),
	nav4:    key.NewBinding(key.WithKeys("4")),
}
