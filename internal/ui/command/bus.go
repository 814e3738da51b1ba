package command

import (
	"fmt"
	"sync"

	"github.com/atomicstack/cmenu/internal/logging/events"
	"github.com/atomicstack/cmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request is one item selected from a menu.
type Request struct {
	Context menu.Context
	Item    menu.Item
	Action  menu.Action
}

func (r Request) key() string {
	return r.Context.MenuID + "\x00" + r.Item.ID
}

// Bus runs item actions as Bubble Tea commands. An item is in flight from
// Execute until its command returns; selecting it again meanwhile is dropped.
type Bus struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New returns an idle bus.
func New() *Bus {
	return &Bus{inFlight: make(map[string]struct{})}
}

// Execute queues req and returns the command that runs it, or nil when req
// has no action or the same item of the same menu is still running.
func (b *Bus) Execute(req Request) tea.Cmd {
	menuID := req.Context.MenuID
	if req.Action == nil || !b.claim(req.key()) {
		events.Command.Skip(menuID, req.Item.ID, req.Item.Label)
		return nil
	}
	events.Command.Queue(menuID, req.Item.ID, req.Item.Label)
	return func() tea.Msg {
		defer b.release(req.key())
		cmd := req.Action(req.Context, req.Item)
		if cmd == nil {
			events.Command.NoOp(menuID, req.Item.ID, req.Item.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(menuID, req.Item.ID, fmt.Sprintf("%T", msg))
		return msg
	}
}

// InFlight reports how many items are queued or running.
func (b *Bus) InFlight() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.inFlight)
}

func (b *Bus) claim(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.inFlight[key]; busy {
		return false
	}
	b.inFlight[key] = struct{}{}
	return true
}

func (b *Bus) release(key string) {
	b.mu.Lock()
	delete(b.inFlight, key)
	b.mu.Unlock()
}
