package nav

import (
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
)

// Outcome reports what the dispatcher did with a command.
type Outcome int

const (
	// Ignored means the command matched nothing or was not valid in the
	// current state. Nothing changed.
	Ignored Outcome = iota
	// Handled means the command was applied to the controller.
	Handled
	// Delegated means the command belongs to the display surface (focus
	// movement, activation, scrolling).
	Delegated
	// Quit means exit was requested.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Handled:
		return "handled"
	case Delegated:
		return "delegated"
	case Quit:
		return "quit"
	default:
		return "outcome(?)"
	}
}

type topicPrefix struct {
	prefix string
	level  content.Level
}

// topicPrefixes is consulted in order; the first match wins.
var topicPrefixes = []topicPrefix{
	{prefix: "basic-", level: content.Basic},
	{prefix: "inter-", level: content.Intermediate},
	{prefix: "adv-", level: content.Advanced},
}

// SplitTopicID maps a menu item id such as "inter-shell" to its level and
// topic id. The remainder must be non-empty.
func SplitTopicID(id string) (content.Level, string, bool) {
	for _, p := range topicPrefixes {
		if rest, ok := strings.CutPrefix(id, p.prefix); ok {
			if rest == "" {
				return content.LevelUnknown, "", false
			}
			return p.level, rest, true
		}
	}
	return content.LevelUnknown, "", false
}

// TopicItemID is the inverse of SplitTopicID.
func TopicItemID(level content.Level, topic string) string {
	for _, p := range topicPrefixes {
		if p.level == level {
			return p.prefix + topic
		}
	}
	return topic
}

// delegatedKeys are handled by the display surface's own focus management.
var delegatedKeys = map[string]struct{}{
	"up":        {},
	"down":      {},
	"enter":     {},
	"tab":       {},
	"shift+tab": {},
	"pgup":      {},
	"pgdown":    {},
	"home":      {},
	"end":       {},
}

// Dispatcher routes command ids and key names to a Controller.
type Dispatcher struct {
	ctrl     *Controller
	reserved map[string]func(*Controller) Outcome
	keys     map[string]func(*Controller) Outcome
}

// NewDispatcher builds the routing tables for ctrl.
func NewDispatcher(ctrl *Controller) *Dispatcher {
	level := func(l content.Level) func(*Controller) Outcome {
		return func(c *Controller) Outcome {
			c.SelectLevel(l)
			return Handled
		}
	}
	quit := func(c *Controller) Outcome {
		c.Quit()
		return Quit
	}
	back := func(c *Controller) Outcome {
		c.Back()
		return Handled
	}
	escape := func(c *Controller) Outcome {
		c.Escape()
		return Handled
	}
	help := func(c *Controller) Outcome {
		c.ToggleHelp()
		return Handled
	}

	return &Dispatcher{
		ctrl: ctrl,
		reserved: map[string]func(*Controller) Outcome{
			menu.IDBasic:        level(content.Basic),
			menu.IDIntermediate: level(content.Intermediate),
			menu.IDAdvanced:     level(content.Advanced),
			menu.IDExit:         quit,
			menu.IDBack:         back,
		},
		keys: map[string]func(*Controller) Outcome{
			"q":      quit,
			"ctrl+c": quit,
			"h":      help,
			"1":      level(content.Basic),
			"2":      level(content.Intermediate),
			"3":      level(content.Advanced),
			"esc":    escape,
			"escape": escape,
		},
	}
}

// Dispatch applies id. Reserved menu ids are matched first, then topic
// prefixes, then key names. Keys owned by the display surface are reported as
// Delegated without touching the controller.
func (d *Dispatcher) Dispatch(id string) Outcome {
	if d == nil || d.ctrl == nil {
		return Ignored
	}
	if d.ctrl.Quitting() {
		return Quit
	}
	if fn, ok := d.reserved[id]; ok {
		events.Dispatch.Command(id)
		return fn(d.ctrl)
	}
	if level, topic, ok := SplitTopicID(id); ok {
		events.Dispatch.Command(id)
		if d.ctrl.ShowTopic(level, topic) {
			return Handled
		}
		return Ignored
	}
	if fn, ok := d.keys[id]; ok {
		events.Dispatch.Command(id)
		return fn(d.ctrl)
	}
	if _, ok := delegatedKeys[id]; ok {
		events.Dispatch.Delegated(id)
		return Delegated
	}
	events.Dispatch.Ignored(id, d.ctrl.State().String())
	return Ignored
}
