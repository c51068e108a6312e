package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	filter    key.Binding
	tag       key.Binding
	clear     key.Binding
	reload    key.Binding
	delete    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	quit      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h", "p")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l", "n")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	filter:    key.NewBinding(key.WithKeys("/")),
	tag:       key.NewBinding(key.WithKeys("t")),
	clear:     key.NewBinding(key.WithKeys("x")),
	reload:    key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d", "ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
