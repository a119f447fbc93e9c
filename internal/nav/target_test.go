package nav

import (
	"strings"
	"testing"

	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
)

func TestParseTarget(t *testing.T) {
	catalog := menu.BuildCatalog()
	cases := map[string]menu.State{
		"":              menu.MainMenu(),
		"main":          menu.MainMenu(),
		"Basic":         menu.Submenu(content.Basic),
		" advanced ":    menu.Submenu(content.Advanced),
		"inter-shell":   menu.TopicView(content.Intermediate, "shell"),
		"ADV-internals": menu.TopicView(content.Advanced, "internals"),
	}
	for in, want := range cases {
		got, err := ParseTarget(catalog, in)
		if err != nil {
			t.Fatalf("ParseTarget(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTarget(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseTargetRejectsUnknown(t *testing.T) {
	catalog := menu.BuildCatalog()
	if _, err := ParseTarget(catalog, "basic-unknownxyz"); err == nil {
		t.Fatalf("expected error for topic missing from the catalog")
	}
	if _, err := ParseTarget(catalog, "exit"); err == nil {
		t.Fatalf("exit is not a start location")
	}
	_, err := ParseTarget(catalog, "shel")
	if err == nil || !strings.Contains(err.Error(), "inter-shell") {
		t.Fatalf("expected suggestion naming inter-shell, got %v", err)
	}
}
