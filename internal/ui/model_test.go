package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/atomicstack/linux-ref-guide/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestHarness(t *testing.T, opts Options) (*Harness, *nav.Controller) {
	t.Helper()
	if opts.Style == "" {
		opts.Style = StyleNoTTY
	}
	reg, err := content.New()
	if err != nil {
		t.Fatalf("content.New: %v", err)
	}
	m := NewModel(opts)
	ctrl := nav.NewController(menu.BuildCatalog(), reg, m)
	m.Bind(ctrl, nav.NewDispatcher(ctrl))
	return NewHarness(m), ctrl
}

func fixedOptions() Options {
	return Options{Width: 100, Height: 20, ShowFooter: true}
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestInitialViewShowsMainMenu(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	if ctrl.State() != menu.MainMenu() {
		t.Fatalf("expected main menu, got %s", ctrl.State())
	}
	out := plainView(h)
	for _, want := range []string{menu.DefaultTitle, Subtitle, "Basic Topics", "Advanced Topics", "Exit", "Quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	if strings.Contains(out, "← Back") {
		t.Fatalf("main menu must not offer a back entry")
	}
	if h.Model().Init() == nil {
		t.Fatalf("expected init command")
	}
}

func TestQuickSelectShowsSubmenu(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	h.Press("1")
	if ctrl.State() != menu.Submenu(content.Basic) {
		t.Fatalf("unexpected state %s", ctrl.State())
	}
	m := h.Model()
	if got := m.menuHeader(); got != "Linux Ref. Guide → Basic Topics" {
		t.Fatalf("unexpected header %q", got)
	}
	if m.sidebar.Items[0].ID != menu.IDBack {
		t.Fatalf("expected back entry first, got %#v", m.sidebar.Items[0])
	}
	if m.sidebar.Cursor != 1 {
		t.Fatalf("expected cursor on first topic, got %d", m.sidebar.Cursor)
	}
	out := plainView(h)
	if !strings.Contains(out, "← Back") || !strings.Contains(out, "File Commands") {
		t.Fatalf("expected submenu entries in view:\n%s", out)
	}
}

func TestEnterOpensFocusedTopic(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	h.Press("1", "down", "enter")
	if ctrl.State() != menu.TopicView(content.Basic, "nav") {
		t.Fatalf("unexpected state %s", ctrl.State())
	}
	if got := h.Model().menuHeader(); !strings.HasSuffix(got, "Directory Navigation") {
		t.Fatalf("expected topic label in header, got %q", got)
	}
	if h.Model().raw != content.MustNew().Resolve(content.Basic, "nav") {
		t.Fatalf("surface received different text from the registry body")
	}
}

func TestEscapeResetsScrollAndKeepsCursor(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	h.Press("1", "enter", "tab", "down", "down", "down")
	m := h.Model()
	if m.focus != focusContent {
		t.Fatalf("expected content focus after tab")
	}
	if m.viewport.YOffset == 0 {
		t.Fatalf("expected content to scroll")
	}
	if ctrl.State() != menu.TopicView(content.Basic, "files") {
		t.Fatalf("scrolling must not change state, got %s", ctrl.State())
	}
	h.Press("esc")
	if ctrl.State() != menu.Submenu(content.Basic) {
		t.Fatalf("expected basic submenu, got %s", ctrl.State())
	}
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected scroll reset, got offset %d", m.viewport.YOffset)
	}
	if item, _ := m.sidebar.Current(); item.ID != "basic-files" {
		t.Fatalf("expected cursor to stay on the topic, got %q", item.ID)
	}
}

func TestBackEntryReturnsToMainMenu(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	h.Press("2", "up", "enter")
	if ctrl.State() != menu.MainMenu() {
		t.Fatalf("expected main menu, got %s", ctrl.State())
	}
	if item, _ := h.Model().sidebar.Current(); item.ID != menu.IDIntermediate {
		t.Fatalf("expected cursor on the submenu just left, got %q", item.ID)
	}
}

func TestHelpOverlayFromTopic(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	h.Press("3", "enter", "h")
	if !ctrl.HelpActive() {
		t.Fatalf("expected help overlay")
	}
	if got := h.Model().menuHeader(); !strings.HasSuffix(got, "→ Help") {
		t.Fatalf("expected help crumb, got %q", got)
	}
	h.Press("esc")
	if ctrl.HelpActive() || ctrl.State() != menu.TopicView(content.Advanced, "kernel") {
		t.Fatalf("expected topic restored, got %s", ctrl.State())
	}
}

func TestQuitKeyAndExitEntry(t *testing.T) {
	h, _ := newTestHarness(t, fixedOptions())
	h.Press("q")
	if !h.Quit() || h.View() != "" {
		t.Fatalf("expected quit with empty view")
	}

	h, ctrl := newTestHarness(t, fixedOptions())
	h.Press("end", "enter")
	if !h.Quit() || !ctrl.Quitting() {
		t.Fatalf("expected exit entry to quit")
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	before := h.View()
	h.Press("z")
	if ctrl.State() != menu.MainMenu() || h.View() != before {
		t.Fatalf("unknown key changed the view")
	}
}

func TestMouseClickActivatesRow(t *testing.T) {
	h, ctrl := newTestHarness(t, fixedOptions())
	h.Send(tea.MouseMsg{X: 3, Y: headerRows + sidebarChromeRows + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if ctrl.State() != menu.Submenu(content.Intermediate) {
		t.Fatalf("expected click to open intermediate, got %s", ctrl.State())
	}
	h.Send(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if ctrl.State() != menu.Submenu(content.Intermediate) {
		t.Fatalf("header click must not navigate")
	}
	h.Send(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if h.Model().focus != focusContent {
		t.Fatalf("expected content focus after clicking the content pane")
	}
}

func TestWindowSizeRelayout(t *testing.T) {
	h, _ := newTestHarness(t, Options{SidebarWidth: 26})
	h.Send(tea.WindowSizeMsg{Width: 70, Height: 16})
	m := h.Model()
	if m.width != 70 || m.height != 16 {
		t.Fatalf("expected size to follow the terminal, got %dx%d", m.width, m.height)
	}
	if m.viewport.Width != 70-26-2 || m.viewport.Height != 15 {
		t.Fatalf("unexpected viewport %dx%d", m.viewport.Width, m.viewport.Height)
	}
	for i, line := range strings.Split(plainView(h), "\n") {
		if w := ansi.StringWidth(line); w > 70 {
			t.Fatalf("line %d is %d cells wide", i, w)
		}
	}

	fixed, _ := newTestHarness(t, fixedOptions())
	fixed.Send(tea.WindowSizeMsg{Width: 50, Height: 10})
	if fixed.Model().width != 100 || fixed.Model().height != 20 {
		t.Fatalf("fixed dimensions must not follow the terminal")
	}
}

func TestValidStyle(t *testing.T) {
	for _, name := range StyleNames() {
		if !ValidStyle(name) {
			t.Fatalf("expected %q to be valid", name)
		}
	}
	if ValidStyle("neon") {
		t.Fatalf("unexpected style accepted")
	}
}
