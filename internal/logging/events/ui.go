package events

import "github.com/atomicstack/cmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuChanged(menuID string) {
	logging.Trace("ui.menu-changed", map[string]interface{}{"menu": menuID})
}

func (UITracer) MenuFocus(menuID string) {
	logging.Trace("ui.focus", map[string]interface{}{"menu": menuID})
}

func (UITracer) MenuCursor(menuID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (UITracer) Click(menuID string, x, y, item int) {
	logging.Trace("ui.click", map[string]interface{}{"menu": menuID, "x": x, "y": y, "item": item})
}

func (UITracer) MenuSelect(menuID, itemID, label, filter string) {
	logging.Trace("ui.select", map[string]interface{}{
		"menu":   menuID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (ActionTracer) Error(menuID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"menu": menuID, "error": err.Error()})
}

func (ActionTracer) Success(menuID, info string) {
	logging.Trace("action.success", map[string]interface{}{"menu": menuID, "info": info})
}

func (FilterTracer) Cleared(menuID string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": menuID})
}

func (FilterTracer) Append(menuID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) Backspace(menuID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (CommandTracer) Queue(menuID, id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"menu": menuID, "id": id, "label": label})
}

func (CommandTracer) Skip(menuID, id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"menu": menuID, "id": id, "label": label})
}

func (CommandTracer) NoOp(menuID, id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"menu": menuID, "id": id, "label": label})
}

func (CommandTracer) Result(menuID, id, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"menu": menuID, "id": id, "msg": msgType})
}
