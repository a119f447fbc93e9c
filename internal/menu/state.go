package menu

import (
	"fmt"

	"github.com/atomicstack/linux-ref-guide/internal/content"
)

// Kind tags a navigation state.
type Kind uint8

const (
	KindMainMenu Kind = iota
	KindBasicSubmenu
	KindIntermediateSubmenu
	KindAdvancedSubmenu
	KindTopicView
)

func (k Kind) String() string {
	switch k {
	case KindMainMenu:
		return "main"
	case KindBasicSubmenu, KindIntermediateSubmenu, KindAdvancedSubmenu:
		return "submenu"
	case KindTopicView:
		return "topic"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// State is one member of the closed set of navigation states. The zero value
// is the main menu. States are comparable.
type State struct {
	Kind  Kind
	Level content.Level
	Topic string
}

// MainMenu returns the initial state.
func MainMenu() State {
	return State{Kind: KindMainMenu}
}

// Submenu returns the submenu state for level. Invalid levels yield the main
// menu.
func Submenu(level content.Level) State {
	switch level {
	case content.Basic:
		return State{Kind: KindBasicSubmenu, Level: level}
	case content.Intermediate:
		return State{Kind: KindIntermediateSubmenu, Level: level}
	case content.Advanced:
		return State{Kind: KindAdvancedSubmenu, Level: level}
	default:
		return MainMenu()
	}
}

// TopicView returns the state that shows topic at level.
func TopicView(level content.Level, topic string) State {
	return State{Kind: KindTopicView, Level: level, Topic: topic}
}

// IsMenu reports whether s lists menu entries (main menu or a submenu).
func (s State) IsMenu() bool {
	return s.Kind <= KindAdvancedSubmenu
}

// IsSubmenu reports whether s is one of the level submenus.
func (s State) IsSubmenu() bool {
	return s.Kind >= KindBasicSubmenu && s.Kind <= KindAdvancedSubmenu
}

// Parent returns the state one level up: the level's submenu for a topic view
// and the main menu for everything else.
func (s State) Parent() State {
	if s.Kind == KindTopicView {
		return Submenu(s.Level)
	}
	return MainMenu()
}

// MenuState returns the menu whose entries are on screen while s is active.
// For a topic view that is its submenu.
func (s State) MenuState() State {
	if s.Kind == KindTopicView {
		return Submenu(s.Level)
	}
	return s
}

func (s State) String() string {
	switch s.Kind {
	case KindMainMenu:
		return "main"
	case KindTopicView:
		return fmt.Sprintf("topic(%s,%s)", s.Level, s.Topic)
	default:
		if s.IsSubmenu() {
			return fmt.Sprintf("submenu(%s)", s.Level)
		}
		return s.Kind.String()
	}
}
