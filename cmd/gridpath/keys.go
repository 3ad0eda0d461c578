package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Obstacle key.Binding
	Start    key.Binding
	End      key.Binding
	Search   key.Binding
	Pause    key.Binding
	Step     key.Binding
	Save     key.Binding
	Edit     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Obstacle: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "toggle obstacle"),
	),
	Start: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "move start"),
	),
	End: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "move end"),
	),
	Search: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Step: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "single step"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save grid"),
	),
	Edit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to edit"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear obstacles"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Pause, k.Edit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Obstacle, k.Start, k.End, k.Clear},
		{k.Search, k.Pause, k.Step, k.Edit},
		{k.Save, k.Help, k.Quit},
	}
}
