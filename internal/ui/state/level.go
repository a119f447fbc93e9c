// Package state holds the sidebar's per-menu cursor and scroll state.
package state

import "github.com/atomicstack/linux-ref-guide/internal/menu"

// Level is the sidebar state for one menu: its entries, the focused entry and
// the first visible row.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []menu.Item) *Level {
	return &Level{
		ID:    id,
		Title: title,
		Items: menu.CloneItems(items),
	}
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	return menu.IndexOf(l.Items, id)
}

// Current returns the focused item.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// Focus moves the cursor to id when it is present.
func (l *Level) Focus(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}
