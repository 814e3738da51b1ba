package cmenu

import (
	"fmt"

	"github.com/atomicstack/cmenu/internal/logging/events"
)

// MouseButton follows DOM numbering.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseNone MouseButton = -1
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	case MouseNone:
		return "none"
	default:
		return fmt.Sprintf("button%d", int(b))
	}
}

// ParseMouseButton maps "left", "middle" and "right" to buttons.
func ParseMouseButton(s string) (MouseButton, error) {
	switch s {
	case "left":
		return MouseLeft, nil
	case "middle":
		return MouseMiddle, nil
	case "right":
		return MouseRight, nil
	}
	return MouseNone, fmt.Errorf("unknown mouse button %q", s)
}

// MouseEvent is the platform-neutral click a host hands to Interact. X and Y
// are client-area coordinates.
type MouseEvent struct {
	Button MouseButton
	X      float64
	Y      float64
}

// Interact runs the chain at the click when ev uses the expected button, and
// otherwise closes the menu without superseding a pending run. The returned
// channel is nil on a mismatch and is never needed for correctness.
func (c *Controller) Interact(ev MouseEvent, expected MouseButton) <-chan struct{} {
	events.Menu.Interact(c.id, ev.Button.String(), expected.String())
	if ev.Button != expected {
		c.Close(false)
		return nil
	}
	return c.Execute(ev.X, ev.Y)
}
