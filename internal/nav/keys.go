package nav

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the keybinding table. Up, Down, Select and Focus are delegated to
// the display surface; the rest map onto controller operations through the
// Dispatcher.
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Basic        key.Binding
	Intermediate key.Binding
	Advanced     key.Binding
	Back         key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Focus        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Help:         key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "Help")),
		Basic:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Basic Topics")),
		Intermediate: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Intermediate Topics")),
		Advanced:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Advanced Topics")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Back")),
		Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "Move up")),
		Down:         key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "Move down")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Select")),
		Focus:        key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "Switch pane")),
	}
}

func (k KeyMap) table() []key.Binding {
	return []key.Binding{k.Quit, k.Help, k.Basic, k.Intermediate, k.Advanced, k.Back, k.Up, k.Down, k.Select}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help, k.Back, k.Select, k.Focus}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help, k.Back},
		{k.Basic, k.Intermediate, k.Advanced},
		{k.Up, k.Down, k.Select, k.Focus},
	}
}

// Rows returns the keybinding table as key/description pairs in display
// order.
func (k KeyMap) Rows() [][]string {
	bindings := k.table()
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, []string{h.Key, h.Desc})
	}
	return rows
}
