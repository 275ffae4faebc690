package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/plus3/tetra/engine"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Down     key.Binding
	RotateL  key.Binding
	RotateR  key.Binding
	Restart  key.Binding
	Quit     key.Binding
	ShowHelp key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		RotateL:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate ccw")),
		RotateR:  key.NewBinding(key.WithKeys("x", "up", "k"), key.WithHelp("x/↑", "rotate cw")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		ShowHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateR, k.Restart, k.Quit, k.ShowHelp}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.RotateL, k.RotateR},
		{k.Restart, k.Quit, k.ShowHelp},
	}
}

// gameKeys pairs each movement binding with its engine key.
func (k keyMap) gameKeys() []struct {
	binding key.Binding
	key     engine.Key
} {
	return []struct {
		binding key.Binding
		key     engine.Key
	}{
		{k.Left, engine.KeyLeft},
		{k.Right, engine.KeyRight},
		{k.Down, engine.KeyDown},
		{k.RotateL, engine.KeyRotateCCW},
		{k.RotateR, engine.KeyRotateCW},
	}
}
