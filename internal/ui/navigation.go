package ui

import (
	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/atomicstack/linux-ref-guide/internal/nav"
	uistate "github.com/atomicstack/linux-ref-guide/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.dispatcher.Dispatch(keyMsg.String()) {
	case nav.Quit:
		return m.quit()
	case nav.Delegated:
		return m.handleDelegatedKey(keyMsg)
	}
	return nil
}

// handleDelegatedKey applies focus movement, activation and scrolling, which
// the controller leaves to the display.
func (m *Model) handleDelegatedKey(msg tea.KeyMsg) tea.Cmd {
	name := msg.String()
	if name == "tab" || name == "shift+tab" {
		m.toggleFocus()
		return nil
	}
	if m.focus == focusContent {
		switch name {
		case "home":
			m.viewport.GotoTop()
			return nil
		case "end":
			m.viewport.GotoBottom()
			return nil
		case "enter":
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	current := m.sidebar
	moved := false
	switch name {
	case "up":
		moved = current.MoveCursor(-1)
	case "down":
		moved = current.MoveCursor(1)
	case "home":
		moved = current.MoveCursorHome()
	case "end":
		moved = current.MoveCursorEnd()
	case "pgup":
		moved = current.MoveCursorPageUp(m.maxVisibleItems())
	case "pgdown":
		moved = current.MoveCursorPageDown(m.maxVisibleItems())
	case "enter":
		return m.activateCurrent()
	}
	if moved {
		current.EnsureCursorVisible(m.maxVisibleItems())
		events.UI.Cursor(current.ID, current.Cursor)
	}
	return nil
}

func (m *Model) activateCurrent() tea.Cmd {
	item, ok := m.sidebar.Current()
	if !ok {
		return nil
	}
	events.UI.Activate(item.ID, item.Label)
	if m.dispatcher.Dispatch(item.ID) == nav.Quit {
		return m.quit()
	}
	return nil
}

func (m *Model) toggleFocus() {
	if m.focus == focusSidebar {
		m.focus = focusContent
	} else {
		m.focus = focusSidebar
	}
	events.UI.Focus(m.focus.String())
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

// applyView rebuilds the sidebar for v. The cursor stays where it was when
// the listed menu is unchanged, lands on the open topic in a topic view, and
// lands on the submenu just left when returning to the main menu.
func (m *Model) applyView(v nav.View) {
	prev := m.view
	m.view = v

	items := v.Items
	if v.Menu.Kind != menu.KindMainMenu {
		items = append([]menu.Item{backItem}, items...)
	}
	next := uistate.NewLevel(v.Menu.String(), v.MenuTitle, items)
	switch {
	case m.sidebar != nil && m.sidebar.ID == next.ID && len(m.sidebar.Items) == len(next.Items):
		next.Cursor = m.sidebar.Cursor
		next.ViewportOffset = m.sidebar.ViewportOffset
	case v.Menu.Kind == menu.KindMainMenu && prev.Menu.IsSubmenu():
		next.Focus(prev.Menu.Level.String())
	case v.Menu.Kind != menu.KindMainMenu && len(next.Items) > 1:
		next.Cursor = 1
	}
	if v.State.Kind == menu.KindTopicView && !v.Help {
		next.Focus(nav.TopicItemID(v.State.Level, v.State.Topic))
	}
	next.EnsureCursorVisible(m.maxVisibleItems())
	m.sidebar = next
}
