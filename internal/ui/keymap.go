package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	up          key.Binding
	down        key.Binding
	home        key.Binding
	end         key.Binding
	selectItem  key.Binding
	closeAll    key.Binding
	backspace   key.Binding
	clearFilter key.Binding
	// quitIdle only applies while no menu is open; otherwise "q" filters
	// and esc closes the menus.
	quitIdle key.Binding
	quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		up:          key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		down:        key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		end:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		selectItem:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		closeAll:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menus")),
		backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "edit filter")),
		clearFilter: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear filter")),
		quitIdle:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// footerHelp renders the bindings that make sense in the current state.
func (k keyMap) footerHelp(menuOpen bool) string {
	bindings := []key.Binding{k.quitIdle}
	if menuOpen {
		bindings = []key.Binding{k.up, k.down, k.selectItem, k.closeAll, k.quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
