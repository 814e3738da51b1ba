package menu

import (
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
	// Run is a shell command, or a tmux command when prefixed with "tmux:".
	Run string
}

// Context carries runtime data needed by item actions.
type Context struct {
	SocketPath string
	MenuID     string
}

// Action executes a selected item.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	MenuID string
	Info   string
	Err    error
}

var runShellFn = func(command string) ([]byte, error) {
	return exec.Command("sh", "-c", command).CombinedOutput()
}

// RunItemAction executes the item's Run command. Items without a command
// report their label so the host can show what was chosen.
func RunItemAction(ctx Context, item Item) tea.Cmd {
	run := strings.TrimSpace(item.Run)
	return func() tea.Msg {
		if run == "" {
			return ActionResult{MenuID: ctx.MenuID, Info: fmt.Sprintf("Selected %s", item.Label)}
		}
		if args, ok, err := parseTmuxItem(run); ok {
			return runTmuxItem(ctx, item, args, err)
		}
		output, err := runShellFn(run)
		if err != nil {
			return ActionResult{MenuID: ctx.MenuID, Err: fmt.Errorf("%s failed: %w (output: %s)", item.Label, err, strings.TrimSpace(string(output)))}
		}
		info := strings.TrimSpace(firstLine(string(output)))
		if info == "" {
			info = fmt.Sprintf("Ran %s", item.Label)
		}
		return ActionResult{MenuID: ctx.MenuID, Info: info}
	}
}

func runTmuxItem(ctx Context, item Item, args []string, parseErr error) ActionResult {
	if parseErr != nil {
		return ActionResult{MenuID: ctx.MenuID, Err: fmt.Errorf("%s: %w", item.Label, parseErr)}
	}
	if len(args) == 0 {
		return ActionResult{MenuID: ctx.MenuID, Err: fmt.Errorf("empty tmux command for %s", item.Label)}
	}
	output, err := runTmuxFn(ctx.SocketPath, args...)
	if err != nil {
		if msg := strings.TrimSpace(firstLine(string(output))); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return ActionResult{MenuID: ctx.MenuID, Err: fmt.Errorf("tmux %s: %w", args[0], err)}
	}
	return ActionResult{MenuID: ctx.MenuID, Info: fmt.Sprintf("Ran tmux %s", args[0])}
}

// ItemsFromLabels builds items whose ids are derived from their labels.
func ItemsFromLabels(labels ...string) []Item {
	items := make([]Item, 0, len(labels))
	for _, label := range labels {
		items = append(items, Item{ID: itemID(label), Label: label})
	}
	return items
}

func itemID(label string) string {
	fields := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}

// EnsureIDs fills in missing item ids from their labels.
func EnsureIDs(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = itemID(item.Label)
		}
		out[i] = item
	}
	return out
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
