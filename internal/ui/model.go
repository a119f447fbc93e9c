package ui

import (
	"reflect"

	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/atomicstack/linux-ref-guide/internal/nav"
	"github.com/atomicstack/linux-ref-guide/internal/theme"
	uistate "github.com/atomicstack/linux-ref-guide/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type level = uistate.Level

type focus int

const (
	focusSidebar focus = iota
	focusContent
)

func (f focus) String() string {
	if f == focusContent {
		return "content"
	}
	return "sidebar"
}

const (
	// Subtitle is shown next to the breadcrumb in the header.
	Subtitle = "Interactive Terminal-Based Linux Learning"

	DefaultSidebarWidth = 30
	MinSidebarWidth     = 25
	MaxSidebarWidth     = 40

	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

var backItem = menu.Item{ID: menu.IDBack, Label: "← Back", Description: "Return to the main menu"}

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	SidebarWidth int
	Style        string
	Wrap         int
	Keys         nav.KeyMap
}

// Model implements the Bubble Tea model for the reference guide.
type Model struct {
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	sidebarWidth int
	style        string
	wrap         int

	ctrl        *nav.Controller
	dispatcher  *nav.Dispatcher
	unsubscribe func()
	view        nav.View
	sidebar     *level
	focus       focus
	quitting    bool

	viewport   viewport.Model
	raw        string
	md         *glamour.TermRenderer
	mdWidth    int
	keys       nav.KeyMap
	help       help.Model
	handlers   map[reflect.Type]msgHandler
	renderErrs int
}

// NewModel builds an unbound model. Call Bind before handing it to Bubble Tea.
func NewModel(opts Options) *Model {
	m := &Model{
		showFooter:   opts.ShowFooter,
		sidebarWidth: opts.SidebarWidth,
		style:        opts.Style,
		wrap:         opts.Wrap,
		keys:         opts.Keys,
		help:         help.New(),
		sidebar:      uistate.NewLevel(menu.MainMenu().String(), menu.DefaultTitle, nil),
	}
	if m.sidebarWidth <= 0 {
		m.sidebarWidth = DefaultSidebarWidth
	}
	if m.style == "" {
		m.style = StyleAuto
	}
	if len(m.keys.Quit.Keys()) == 0 {
		m.keys = nav.DefaultKeyMap()
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.viewport = viewport.New(m.contentWidth(), m.bodyHeight())
	m.registerHandlers()
	return m
}

// Bind attaches the navigation controller and dispatcher and renders the
// initial state.
func (m *Model) Bind(ctrl *nav.Controller, d *nav.Dispatcher) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.ctrl = ctrl
	m.dispatcher = d
	m.unsubscribe = ctrl.Subscribe(m.applyView)
	ctrl.Start()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(menu.DefaultTitle)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Render implements nav.Surface.
func (m *Model) Render(text string) {
	m.raw = text
	m.viewport.SetContent(m.renderMarkdown(text))
}

// ResetScrollPosition implements nav.Surface.
func (m *Model) ResetScrollPosition() {
	m.viewport.GotoTop()
}

// Quitting reports whether the model has requested program exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
