package events

import "github.com/atomicstack/linux-ref-guide/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Cursor(menu string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"menu": menu, "cursor": cursor})
}

func (UITracer) Activate(id, label string) {
	logging.Trace("ui.activate", map[string]interface{}{"id": id, "label": label})
}

func (UITracer) Focus(pane string) {
	logging.Trace("ui.focus", map[string]interface{}{"pane": pane})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) RenderError(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.render.error", map[string]interface{}{"error": err.Error()})
}
