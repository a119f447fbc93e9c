// Package nav owns the navigation state machine and the routing of input
// commands onto it.
//
// The Controller holds the single piece of mutable state: the committed
// menu.State plus one saved-state slot used while the Help overlay is shown.
// Every operation commits a state, resolves the text for it, renders it on the
// Surface, resets the scroll position and then notifies subscribers. There is
// no partial update path and no operation can fail; unknown content resolves
// to placeholders in the content package.
//
// The Dispatcher decodes command ids (button ids and key names) into
// Controller calls. Ids that match nothing are ignored.
//
// Neither type is safe for concurrent use. They are driven from the Bubble Tea
// update loop, which delivers one message at a time.
package nav

import (
	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
)

// HelpTitle is the view title while the Help overlay is shown.
const HelpTitle = "Help"

// Surface is the display the controller renders into.
type Surface interface {
	Render(text string)
	ResetScrollPosition()
}

// Catalog supplies menu titles and entries.
type Catalog interface {
	Title(menu.State) string
	Items(menu.State) []menu.Item
}

// Content supplies the text bodies.
type Content interface {
	Resolve(level content.Level, topicID string) string
	Welcome() string
	Help() string
}

// View is what is on screen after a transition.
type View struct {
	// State is the committed navigation state. While Help is shown it is the
	// state the overlay will restore.
	State     menu.State
	Help      bool
	Title     string
	Menu      menu.State
	MenuTitle string
	Items     []menu.Item
	// Text is exactly the string passed to Surface.Render.
	Text string
}

// Listener receives the view after every transition.
type Listener func(View)

type subscription struct {
	id int
	fn Listener
}

// Controller is the navigation state machine.
type Controller struct {
	catalog  Catalog
	content  Content
	surface  Surface
	state    menu.State
	saved    *menu.State
	view     View
	quitting bool

	listeners []subscription
	nextID    int
}

// NewController returns a controller in the main menu state. Nothing is
// rendered until Start is called.
func NewController(catalog Catalog, content Content, surface Surface) *Controller {
	return &Controller{
		catalog: catalog,
		content: content,
		surface: surface,
		state:   menu.MainMenu(),
	}
}

// Start renders the initial state.
func (c *Controller) Start() {
	c.refresh()
}

// State returns the committed navigation state.
func (c *Controller) State() menu.State {
	return c.state
}

// HelpActive reports whether the Help overlay is shown.
func (c *Controller) HelpActive() bool {
	return c.saved != nil
}

// View returns the current view.
func (c *Controller) View() View {
	v := c.view
	v.Items = menu.CloneItems(v.Items)
	return v
}

// Quitting reports whether exit has been requested.
func (c *Controller) Quitting() bool {
	return c.quitting
}

// Subscribe registers fn to run after every transition and returns a function
// that removes it.
func (c *Controller) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// SelectLevel shows the submenu for level. It dismisses the Help overlay.
func (c *Controller) SelectLevel(level content.Level) {
	c.commit(menu.Submenu(level))
}

// Back returns to the main menu, or closes the Help overlay when it is shown.
func (c *Controller) Back() {
	if c.saved != nil {
		c.closeHelp()
		return
	}
	c.commit(menu.MainMenu())
}

// Escape moves one level up: a topic returns to its submenu, a submenu to the
// main menu. While Help is shown it closes the overlay instead.
func (c *Controller) Escape() {
	if c.saved != nil {
		c.closeHelp()
		return
	}
	c.commit(c.state.Parent())
}

// ShowTopic opens topicID at level. The request is accepted only when level's
// menu is the one on screen; otherwise nothing changes and false is returned.
func (c *Controller) ShowTopic(level content.Level, topicID string) bool {
	if !level.Valid() || c.state.Level != level || c.state.Kind == menu.KindMainMenu {
		events.Nav.TopicRejected(level.String(), topicID, c.state.String())
		return false
	}
	c.commit(menu.TopicView(level, topicID))
	return true
}

// Jump commits target directly. It is used to honour a requested start
// location.
func (c *Controller) Jump(target menu.State) {
	c.commit(target)
}

// ToggleHelp opens the Help overlay, remembering the current state, or closes
// it and restores that state.
func (c *Controller) ToggleHelp() {
	if c.saved != nil {
		c.closeHelp()
		return
	}
	saved := c.state
	c.saved = &saved
	events.Nav.HelpOpen(saved.String())
	c.refresh()
}

// Quit marks the controller as exiting. It is terminal and renders nothing.
func (c *Controller) Quit() {
	if c.quitting {
		return
	}
	c.quitting = true
	events.Nav.Transition(c.state.String(), "exit")
}

func (c *Controller) closeHelp() {
	restored := *c.saved
	c.saved = nil
	c.state = restored
	events.Nav.HelpClose(restored.String())
	c.refresh()
}

func (c *Controller) commit(next menu.State) {
	from := c.state
	if c.saved != nil {
		c.saved = nil
		events.Nav.HelpClose(from.String())
	}
	c.state = next
	events.Nav.Transition(from.String(), next.String())
	c.refresh()
}

func (c *Controller) refresh() {
	v := c.buildView()
	c.view = v
	if c.surface != nil {
		c.surface.Render(v.Text)
		c.surface.ResetScrollPosition()
	}
	for _, sub := range append([]subscription(nil), c.listeners...) {
		sub.fn(c.View())
	}
}

func (c *Controller) buildView() View {
	listed := c.state.MenuState()
	v := View{
		State:     c.state,
		Help:      c.saved != nil,
		Title:     c.catalog.Title(c.state),
		Menu:      listed,
		MenuTitle: c.catalog.Title(listed),
		Items:     c.catalog.Items(listed),
	}
	if v.Help {
		v.Title = HelpTitle
		v.Text = c.content.Help()
		return v
	}
	switch {
	case c.state.Kind == menu.KindMainMenu:
		v.Text = c.content.Welcome()
	case c.state.IsSubmenu():
		v.Text = c.content.Resolve(c.state.Level, "")
	default:
		v.Text = c.content.Resolve(c.state.Level, c.state.Topic)
	}
	return v
}
