package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds every grid adjustment the TUI offers.
type keyMap struct {
	ColumnsUp   key.Binding
	ColumnsDown key.Binding
	RowsUp      key.Binding
	RowsDown    key.Binding
	BorderUp    key.Binding
	BorderDown  key.Binding
	LineUp      key.Binding
	LineDown    key.Binding
	Uniform     key.Binding
	Theme       key.Binding
	Preset      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ColumnsUp:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "+col")),
		ColumnsDown: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "-col")),
		RowsUp:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "+row")),
		RowsDown:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "-row")),
		BorderUp:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b/B", "border ±")),
		BorderDown:  key.NewBinding(key.WithKeys("B")),
		LineUp:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "line ±")),
		LineDown:    key.NewBinding(key.WithKeys("G")),
		Uniform:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uniform")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Preset:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ColumnsUp, k.RowsUp, k.Uniform, k.Theme, k.Preset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ColumnsUp, k.ColumnsDown, k.RowsUp, k.RowsDown},
		{k.BorderUp, k.LineUp, k.Uniform, k.Theme, k.Preset},
		{k.Help, k.Quit},
	}
}
