package menu

import (
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/content"
)

type entry struct {
	title string
	items []Item
}

// Catalog maps each menu state to its title and ordered entries. It is built
// once and never changes.
type Catalog struct {
	entries map[Kind]entry
	owners  map[string]State
}

// BuildCatalog constructs the catalog from the static menu definitions.
func BuildCatalog() *Catalog {
	c := &Catalog{
		entries: make(map[Kind]entry, 4),
		owners:  make(map[string]State),
	}
	c.add(MainMenu(), DefaultTitle, RootItems())
	c.add(Submenu(content.Basic), "Basic Topics", BasicItems())
	c.add(Submenu(content.Intermediate), "Intermediate Topics", IntermediateItems())
	c.add(Submenu(content.Advanced), "Advanced Topics", AdvancedItems())
	return c
}

func (c *Catalog) add(state State, title string, items []Item) {
	c.entries[state.Kind] = entry{title: title, items: CloneItems(items)}
	for _, item := range items {
		if _, seen := c.owners[item.ID]; !seen {
			c.owners[item.ID] = state
		}
	}
}

// Title returns the display title for state. Non-menu states get
// DefaultTitle.
func (c *Catalog) Title(state State) string {
	if !state.IsMenu() {
		return DefaultTitle
	}
	if e, ok := c.entries[state.Kind]; ok {
		return e.title
	}
	return DefaultTitle
}

// Items returns a copy of the entries for state in display order. Non-menu
// states have no entries.
func (c *Catalog) Items(state State) []Item {
	if !state.IsMenu() {
		return []Item{}
	}
	e, ok := c.entries[state.Kind]
	if !ok {
		return []Item{}
	}
	return CloneItems(e.items)
}

// Find locates an item by id, ignoring case and surrounding whitespace, and
// returns it with the menu state that lists it.
func (c *Catalog) Find(id string) (Item, State, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	state, ok := c.owners[key]
	if !ok {
		return Item{}, State{}, false
	}
	items := c.entries[state.Kind].items
	return items[IndexOf(items, key)], state, true
}

// IDs returns every item id in catalog order: main menu first, then each
// submenu.
func (c *Catalog) IDs() []string {
	var ids []string
	for _, kind := range []Kind{KindMainMenu, KindBasicSubmenu, KindIntermediateSubmenu, KindAdvancedSubmenu} {
		for _, item := range c.entries[kind].items {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
