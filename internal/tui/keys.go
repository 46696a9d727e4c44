package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Credit    key.Binding
	Add       key.Binding
	Remove    key.Binding
	Calculate key.Binding
	Theme     key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "grade")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "credit")),
		Next:      key.NewBinding(key.WithKeys("+", "=", "tab"), key.WithHelp("+", "next option")),
		Prev:      key.NewBinding(key.WithKeys("-", "shift+tab"), key.WithHelp("-", "prev option")),
		Credit:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7"), key.WithHelp("0-7", "set credit")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove row")),
		Calculate: key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "calculate")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Calculate, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Next, k.Prev, k.Credit},
		{k.Add, k.Remove, k.Reset},
		{k.Calculate, k.Theme, k.Help, k.Quit},
	}
}
