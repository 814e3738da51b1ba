package cmenu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ActionKind tags a chain step.
type ActionKind int

const (
	ActionOpen ActionKind = iota
	ActionClose
	ActionHold
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionClose:
		return "close"
	case ActionHold:
		return "hold"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one step of a chain. Hold is only meaningful for ActionHold.
type Action struct {
	Kind ActionKind
	Hold time.Duration
}

// Open returns an open step.
func Open() Action { return Action{Kind: ActionOpen} }

// Close returns a close step.
func Close() Action { return Action{Kind: ActionClose} }

// Hold returns a hold step. Negative durations are clamped to zero.
func Hold(d time.Duration) Action {
	if d < 0 {
		d = 0
	}
	return Action{Kind: ActionHold, Hold: d}
}

func (a Action) String() string {
	if a.Kind == ActionHold {
		return "hold " + a.Hold.String()
	}
	return a.Kind.String()
}

// ErrInvalidAction reports a chain script entry that cannot be parsed.
var ErrInvalidAction = errors.New("invalid chain action")

// ParseAction parses a script entry: "open", "close", or "hold <duration>".
// A bare number after hold is read as milliseconds.
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty", ErrInvalidAction)
	}
	switch fields[0] {
	case "open":
		if len(fields) == 1 {
			return Open(), nil
		}
	case "close":
		if len(fields) == 1 {
			return Close(), nil
		}
	case "hold":
		if len(fields) != 2 {
			break
		}
		if ms, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			if ms < 0 {
				return Action{}, fmt.Errorf("%w: negative hold %q", ErrInvalidAction, s)
			}
			return Hold(time.Duration(ms) * time.Millisecond), nil
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			return Action{}, fmt.Errorf("%w: %q: %v", ErrInvalidAction, s, err)
		}
		if d < 0 {
			return Action{}, fmt.Errorf("%w: negative hold %q", ErrInvalidAction, s)
		}
		return Hold(d), nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// ParseChain parses every entry of script in order.
func ParseChain(script []string) ([]Action, error) {
	actions := make([]Action, 0, len(script))
	for i, entry := range script {
		action, err := ParseAction(entry)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
