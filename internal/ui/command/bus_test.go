package command

import (
	"testing"

	"github.com/atomicstack/cmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func request(menuID, itemID string, action menu.Action) Request {
	return Request{
		Context: menu.Context{MenuID: menuID},
		Item:    menu.Item{ID: itemID, Label: itemID},
		Action:  action,
	}
}

func reportSelected(ctx menu.Context, item menu.Item) tea.Cmd {
	return func() tea.Msg {
		return menu.ActionResult{MenuID: ctx.MenuID, Info: "ran " + item.ID}
	}
}

func TestExecuteReturnsActionResult(t *testing.T) {
	bus := New()
	cmd := bus.Execute(request("main", "copy", reportSelected))
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	result, ok := cmd().(menu.ActionResult)
	if !ok || result.MenuID != "main" || result.Info != "ran copy" {
		t.Fatalf("unexpected result %#v", result)
	}
	if n := bus.InFlight(); n != 0 {
		t.Fatalf("expected nothing in flight after the command returned, got %d", n)
	}
}

func TestExecuteDropsRepeatWhileInFlight(t *testing.T) {
	bus := New()
	first := bus.Execute(request("main", "copy", reportSelected))
	if first == nil {
		t.Fatalf("expected first selection to queue")
	}
	if again := bus.Execute(request("main", "copy", reportSelected)); again != nil {
		t.Fatalf("expected repeat selection to be dropped while in flight")
	}
	if other := bus.Execute(request("flash", "copy", reportSelected)); other == nil {
		t.Fatalf("expected the same item id in another menu to queue")
	}
	if n := bus.InFlight(); n != 2 {
		t.Fatalf("expected 2 items in flight, got %d", n)
	}

	first()
	if again := bus.Execute(request("main", "copy", reportSelected)); again == nil {
		t.Fatalf("expected item to queue again once its run returned")
	}
}

func TestExecuteWithoutActionOrCommand(t *testing.T) {
	bus := New()
	if cmd := bus.Execute(request("main", "copy", nil)); cmd != nil {
		t.Fatalf("expected nil command without an action")
	}
	noop := func(menu.Context, menu.Item) tea.Cmd { return nil }
	cmd := bus.Execute(request("main", "copy", noop))
	if cmd == nil {
		t.Fatalf("expected a command for a no-op action")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message from a no-op action, got %#v", msg)
	}
	if n := bus.InFlight(); n != 0 {
		t.Fatalf("expected no-op run released, got %d in flight", n)
	}
}
