package cmenu

import (
	"testing"
	"time"
)

func TestInteractMismatchedButtonCloses(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(time.Second).CloseC()
	c.Open(1, 1, false)
	before := c.Token()

	if done := c.Interact(MouseEvent{Button: MouseLeft, X: 5, Y: 6}, MouseRight); done != nil {
		t.Fatalf("expected no run on mismatched button")
	}
	if c.Visible() {
		t.Fatalf("expected mismatched button to close the menu")
	}
	if c.Token() != before {
		t.Fatalf("expected token untouched, got %d -> %d", before, c.Token())
	}
	if clock.Waiters() != 0 {
		t.Fatalf("expected no chain to start")
	}
}

func TestInteractMismatchDoesNotCancelPendingRun(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(time.Second).OpenC()
	done := c.Execute(1, 1)
	c.Interact(MouseEvent{Button: MouseMiddle}, MouseRight)
	clock.Advance(time.Second)
	waitDone(t, done)
	if !c.Visible() {
		t.Fatalf("expected pending run to reopen after mismatched click")
	}
}

func TestInteractMatchingButtonRunsAtClick(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(time.Second).CloseC()
	done := c.Interact(MouseEvent{Button: MouseRight, X: 40, Y: 12.5}, MouseRight)
	if done == nil {
		t.Fatalf("expected run to start")
	}
	if !c.Visible() {
		t.Fatalf("expected menu visible after matching click")
	}
	if pos := c.Position(); pos.X != "40px" || pos.Y != "12.5px" {
		t.Fatalf("unexpected position %#v", pos)
	}
	clock.Advance(time.Second)
	waitDone(t, done)
	if c.Visible() {
		t.Fatalf("expected chain to close the menu")
	}
}

func TestParseMouseButton(t *testing.T) {
	for name, want := range map[string]MouseButton{"left": MouseLeft, "middle": MouseMiddle, "right": MouseRight} {
		got, err := ParseMouseButton(name)
		if err != nil || got != want {
			t.Fatalf("%s: expected %v, got %v (%v)", name, want, got, err)
		}
		if got.String() != name {
			t.Fatalf("expected String %q, got %q", name, got.String())
		}
	}
	if _, err := ParseMouseButton("thumb"); err == nil {
		t.Fatalf("expected error for unknown button")
	}
}
