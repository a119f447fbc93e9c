package events

import "github.com/atomicstack/linux-ref-guide/internal/logging"

// NavTracer records navigation state transitions. States are passed in their
// String form so this package stays free of navigation types.
type NavTracer struct{}

type DispatchTracer struct{}

type ContentTracer struct{}

var (
	Nav      = NavTracer{}
	Dispatch = DispatchTracer{}
	Content  = ContentTracer{}
)

func (NavTracer) Transition(from, to string) {
	logging.Trace("nav.transition", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) HelpOpen(saved string) {
	logging.Trace("nav.help.open", map[string]interface{}{"saved": saved})
}

func (NavTracer) HelpClose(restored string) {
	logging.Trace("nav.help.close", map[string]interface{}{"restored": restored})
}

func (NavTracer) TopicRejected(level, topic, state string) {
	logging.Trace("nav.topic.rejected", map[string]interface{}{"level": level, "topic": topic, "state": state})
}

func (DispatchTracer) Command(id string) {
	logging.Trace("dispatch.command", map[string]interface{}{"id": id})
}

func (DispatchTracer) Ignored(id, state string) {
	logging.Trace("dispatch.ignored", map[string]interface{}{"id": id, "state": state})
}

func (DispatchTracer) Delegated(key string) {
	logging.Trace("dispatch.delegated", map[string]interface{}{"key": key})
}

func (ContentTracer) Fallback(level, topic string) {
	logging.Trace("content.fallback", map[string]interface{}{"level": level, "topic": topic})
}
