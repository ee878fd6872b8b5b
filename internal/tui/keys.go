package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Quit       key.Binding
	Help       key.Binding
	Up         key.Binding
	Down       key.Binding
	Less       key.Binding
	More       key.Binding
	LessCoarse key.Binding
	MoreCoarse key.Binding
	ToggleMode key.Binding
	Small      key.Binding
	Medium     key.Binding
	Large      key.Binding
	Feed       key.Binding
	Edit       key.Binding
	Cancel     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Less, k.More, k.LessCoarse, k.MoreCoarse, k.ToggleMode, k.Small, k.Medium, k.Large, k.Feed},
		{k.Up, k.Down, k.Edit, k.Cancel},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Less: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "less food"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "more food"),
		),
		LessCoarse: key.NewBinding(
			key.WithKeys("pgdown", "H"),
			key.WithHelp("H", "−10 g"),
		),
		MoreCoarse: key.NewBinding(
			key.WithKeys("pgup", "L"),
			key.WithHelp("L", "+10 g"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mode"),
		),
		Small: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "small"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Large: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "large"),
		),
		Feed: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f", "feed"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit time"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
	}
}
