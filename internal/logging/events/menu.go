package events

import "github.com/atomicstack/cmenu/internal/logging"

type MenuTracer struct{}

type ChainTracer struct{}

type RegistryTracer struct{}

var (
	Menu     = MenuTracer{}
	Chain    = ChainTracer{}
	Registry = RegistryTracer{}
)

func (MenuTracer) Open(id, x, y string, overwrite bool, token uint64) {
	logging.Trace("menu.open", map[string]interface{}{
		"id":        id,
		"x":         x,
		"y":         y,
		"overwrite": overwrite,
		"token":     token,
	})
}

func (MenuTracer) Close(id string, overwrite bool, token uint64) {
	logging.Trace("menu.close", map[string]interface{}{"id": id, "overwrite": overwrite, "token": token})
}

func (MenuTracer) Interact(id string, button, expected string) {
	logging.Trace("menu.interact", map[string]interface{}{"id": id, "button": button, "expected": expected})
}

func (ChainTracer) Append(id, action string, length int) {
	logging.Trace("chain.append", map[string]interface{}{"id": id, "action": action, "length": length})
}

func (ChainTracer) Clear(id string, token uint64) {
	logging.Trace("chain.clear", map[string]interface{}{"id": id, "token": token})
}

func (ChainTracer) Start(id string, token uint64, steps int) {
	logging.Trace("chain.start", map[string]interface{}{"id": id, "token": token, "steps": steps})
}

func (ChainTracer) Step(id string, token uint64, index int, action string) {
	logging.Trace("chain.step", map[string]interface{}{"id": id, "token": token, "index": index, "action": action})
}

func (ChainTracer) Superseded(id string, token, current uint64, index int) {
	logging.Trace("chain.superseded", map[string]interface{}{
		"id":      id,
		"token":   token,
		"current": current,
		"index":   index,
	})
}

func (ChainTracer) Done(id string, token uint64) {
	logging.Trace("chain.done", map[string]interface{}{"id": id, "token": token})
}

func (RegistryTracer) Register(id string) {
	logging.Trace("registry.register", map[string]interface{}{"id": id})
}

func (RegistryTracer) Duplicate(id string) {
	logging.Trace("registry.duplicate", map[string]interface{}{"id": id})
}

func (RegistryTracer) Unregister(id string, present bool) {
	logging.Trace("registry.unregister", map[string]interface{}{"id": id, "present": present})
}

func (RegistryTracer) Miss(id string) {
	logging.Warn("menu not found", "id", id)
	logging.Trace("registry.miss", map[string]interface{}{"id": id})
}
