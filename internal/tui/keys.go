package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Switch key.Binding
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Cancel key.Binding
	Quit   key.Binding
	Force  key.Binding
	Help   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "form/table")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Switch, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.Switch},
		{k.Up, k.Down, k.Edit, k.Delete},
		{k.Help, k.Quit, k.Force},
	}
}
