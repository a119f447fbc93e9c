package nav

import (
	"strings"
	"testing"

	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
)

type fakeSurface struct {
	renders []string
	resets  int
}

func (f *fakeSurface) Render(text string) { f.renders = append(f.renders, text) }

func (f *fakeSurface) ResetScrollPosition() { f.resets++ }

func (f *fakeSurface) last() string {
	if len(f.renders) == 0 {
		return ""
	}
	return f.renders[len(f.renders)-1]
}

func newTestController(t *testing.T) (*Controller, *fakeSurface, *content.Registry) {
	t.Helper()
	reg, err := content.New()
	if err != nil {
		t.Fatalf("content.New: %v", err)
	}
	surface := &fakeSurface{}
	ctrl := NewController(menu.BuildCatalog(), reg, surface)
	ctrl.Start()
	return ctrl, surface, reg
}

func TestStartRendersWelcome(t *testing.T) {
	ctrl, surface, reg := newTestController(t)
	if ctrl.State() != menu.MainMenu() {
		t.Fatalf("expected main menu, got %s", ctrl.State())
	}
	if surface.last() != reg.Welcome() {
		t.Fatalf("expected welcome text to be rendered")
	}
	if surface.resets != 1 {
		t.Fatalf("expected one scroll reset, got %d", surface.resets)
	}
	v := ctrl.View()
	if v.Title != menu.DefaultTitle || v.Help {
		t.Fatalf("unexpected view %#v", v)
	}
}

func TestSelectLevelShowsOverview(t *testing.T) {
	ctrl, surface, reg := newTestController(t)
	ctrl.SelectLevel(content.Intermediate)
	if ctrl.State() != menu.Submenu(content.Intermediate) {
		t.Fatalf("unexpected state %s", ctrl.State())
	}
	if surface.last() != reg.Resolve(content.Intermediate, "") {
		t.Fatalf("expected intermediate overview")
	}
	v := ctrl.View()
	if v.Title != "Intermediate Topics" || len(v.Items) != 7 {
		t.Fatalf("unexpected view title %q items %d", v.Title, len(v.Items))
	}
}

func TestShowTopicRendersExactContent(t *testing.T) {
	ctrl, surface, reg := newTestController(t)
	ctrl.SelectLevel(content.Basic)
	if !ctrl.ShowTopic(content.Basic, "files") {
		t.Fatalf("expected topic to be accepted")
	}
	if ctrl.State() != menu.TopicView(content.Basic, "files") {
		t.Fatalf("unexpected state %s", ctrl.State())
	}
	if surface.last() != reg.Resolve(content.Basic, "files") {
		t.Fatalf("rendered text differs from registry body")
	}
	if surface.resets != 3 {
		t.Fatalf("expected a scroll reset per transition, got %d", surface.resets)
	}
	v := ctrl.View()
	if v.Menu != menu.Submenu(content.Basic) || v.MenuTitle != "Basic Topics" {
		t.Fatalf("topic view should list its submenu, got %s %q", v.Menu, v.MenuTitle)
	}
}

func TestShowTopicRejectedOutsideLevel(t *testing.T) {
	ctrl, surface, _ := newTestController(t)
	if ctrl.ShowTopic(content.Basic, "files") {
		t.Fatalf("expected rejection from main menu")
	}
	ctrl.SelectLevel(content.Advanced)
	before := len(surface.renders)
	if ctrl.ShowTopic(content.Basic, "files") {
		t.Fatalf("expected rejection from advanced submenu")
	}
	if len(surface.renders) != before {
		t.Fatalf("rejected topic must not render")
	}
	if ctrl.State() != menu.Submenu(content.Advanced) {
		t.Fatalf("state changed on rejection: %s", ctrl.State())
	}
}

func TestShowTopicFromSiblingTopic(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctrl.Jump(menu.TopicView(content.Advanced, "kernel"))
	if !ctrl.ShowTopic(content.Advanced, "ha") {
		t.Fatalf("expected sibling topic to be accepted")
	}
	if ctrl.State() != menu.TopicView(content.Advanced, "ha") {
		t.Fatalf("unexpected state %s", ctrl.State())
	}
}

func TestEscapeFromTopicReturnsToSubmenu(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctrl.Jump(menu.TopicView(content.Basic, "files"))
	ctrl.Escape()
	if ctrl.State() != menu.Submenu(content.Basic) {
		t.Fatalf("expected basic submenu, got %s", ctrl.State())
	}
	ctrl.Escape()
	if ctrl.State() != menu.MainMenu() {
		t.Fatalf("expected main menu, got %s", ctrl.State())
	}
}

func TestBackAlwaysReturnsToMainMenu(t *testing.T) {
	ctrl, surface, reg := newTestController(t)
	ctrl.Jump(menu.TopicView(content.Intermediate, "shell"))
	ctrl.Back()
	if ctrl.State() != menu.MainMenu() {
		t.Fatalf("expected main menu, got %s", ctrl.State())
	}
	if surface.last() != reg.Welcome() {
		t.Fatalf("expected welcome after back")
	}
}

func TestHelpOverlayRestoresState(t *testing.T) {
	ctrl, surface, reg := newTestController(t)
	start := menu.TopicView(content.Advanced, "security")
	ctrl.Jump(start)
	ctrl.ToggleHelp()
	if !ctrl.HelpActive() {
		t.Fatalf("expected help overlay")
	}
	if surface.last() != reg.Help() {
		t.Fatalf("expected help text")
	}
	if v := ctrl.View(); v.Title != HelpTitle || !v.Help || v.State != start {
		t.Fatalf("unexpected help view %#v", v)
	}
	ctrl.Escape()
	if ctrl.HelpActive() || ctrl.State() != start {
		t.Fatalf("expected %s restored, got %s (help=%v)", start, ctrl.State(), ctrl.HelpActive())
	}
	if surface.last() != reg.Resolve(content.Advanced, "security") {
		t.Fatalf("expected restored topic to be re-rendered")
	}
}

func TestHelpToggleAndBack(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctrl.SelectLevel(content.Basic)
	ctrl.ToggleHelp()
	ctrl.ToggleHelp()
	if ctrl.HelpActive() || ctrl.State() != menu.Submenu(content.Basic) {
		t.Fatalf("second toggle should close help")
	}
	ctrl.ToggleHelp()
	ctrl.Back()
	if ctrl.HelpActive() || ctrl.State() != menu.Submenu(content.Basic) {
		t.Fatalf("back should close help and restore, got %s", ctrl.State())
	}
}

func TestQuickSelectDismissesHelp(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctrl.Jump(menu.TopicView(content.Basic, "perms"))
	ctrl.ToggleHelp()
	ctrl.SelectLevel(content.Advanced)
	if ctrl.HelpActive() {
		t.Fatalf("expected help slot to be cleared")
	}
	if ctrl.State() != menu.Submenu(content.Advanced) {
		t.Fatalf("unexpected state %s", ctrl.State())
	}
	ctrl.Escape()
	if ctrl.State() != menu.MainMenu() {
		t.Fatalf("saved state must not leak after dismissal, got %s", ctrl.State())
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	ctrl, surface, _ := newTestController(t)
	var seen []View
	cancel := ctrl.Subscribe(func(v View) {
		seen = append(seen, v)
	})
	ctrl.SelectLevel(content.Basic)
	if len(seen) != 1 {
		t.Fatalf("expected one notification, got %d", len(seen))
	}
	if seen[0].Text != surface.last() {
		t.Fatalf("listener text differs from rendered text")
	}
	cancel()
	ctrl.SelectLevel(content.Advanced)
	if len(seen) != 1 {
		t.Fatalf("expected no notification after unsubscribe")
	}
}

func TestQuitIsTerminal(t *testing.T) {
	ctrl, surface, _ := newTestController(t)
	before := len(surface.renders)
	ctrl.Quit()
	ctrl.Quit()
	if !ctrl.Quitting() {
		t.Fatalf("expected quitting")
	}
	if len(surface.renders) != before {
		t.Fatalf("quit must not render")
	}
}

func TestViewItemsAreCopies(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	v := ctrl.View()
	v.Items[0].Label = "mutated"
	if ctrl.View().Items[0].Label == "mutated" {
		t.Fatalf("view items must not alias controller state")
	}
}

func TestUnknownTopicRendersPlaceholder(t *testing.T) {
	ctrl, surface, _ := newTestController(t)
	ctrl.SelectLevel(content.Basic)
	ctrl.ShowTopic(content.Basic, "unknownxyz")
	if !strings.Contains(surface.last(), "unknownxyz") || !strings.Contains(surface.last(), "coming soon") {
		t.Fatalf("expected placeholder, got %q", surface.last())
	}
}
