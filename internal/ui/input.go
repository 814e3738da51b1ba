package ui

import (
	"unicode"

	"github.com/atomicstack/cmenu/internal/cmenu"
	"github.com/atomicstack/cmenu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// mouseButton maps terminal buttons onto DOM numbering. Wheel and extra
// buttons have no equivalent.
func mouseButton(b tea.MouseButton) (cmenu.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return cmenu.MouseLeft, true
	case tea.MouseButtonMiddle:
		return cmenu.MouseMiddle, true
	case tea.MouseButtonRight:
		return cmenu.MouseRight, true
	default:
		return cmenu.MouseNone, false
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || ev.Action != tea.MouseActionPress {
		return nil
	}
	button, ok := mouseButton(ev.Button)
	if !ok {
		return nil
	}
	if button == cmenu.MouseLeft {
		if h, item, hit := m.hitTest(ev.X, ev.Y); hit {
			events.UI.Click(h.id(), ev.X, ev.Y, item)
			if item < 0 {
				return nil
			}
			h.panel.SetCursor(item)
			return m.runSelection(h)
		}
	}

	click := cmenu.MouseEvent{Button: button, X: float64(ev.X), Y: float64(ev.Y)}
	for _, h := range m.menus {
		h.Controller.Interact(click, h.Button)
	}
	m.syncMenus()
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.quit) {
		return tea.Quit
	}
	focused := m.focusedMenu()
	if focused == nil {
		if key.Matches(keyMsg, m.keys.quitIdle) {
			return tea.Quit
		}
		return nil
	}

	panel := focused.panel
	switch {
	case key.Matches(keyMsg, m.keys.closeAll):
		m.closeAll()
		return nil
	case key.Matches(keyMsg, m.keys.selectItem):
		return m.runSelection(focused)
	case key.Matches(keyMsg, m.keys.up):
		m.noteCursor(focused, panel.MoveCursorUp())
		return nil
	case key.Matches(keyMsg, m.keys.down):
		m.noteCursor(focused, panel.MoveCursorDown())
		return nil
	case key.Matches(keyMsg, m.keys.home):
		m.noteCursor(focused, panel.MoveCursorHome())
		return nil
	case key.Matches(keyMsg, m.keys.end):
		m.noteCursor(focused, panel.MoveCursorEnd())
		return nil
	case key.Matches(keyMsg, m.keys.clearFilter):
		if panel.Filter == "" {
			return nil
		}
		panel.SetFilter("")
		m.clearStatus()
		events.Filter.Cleared(focused.id())
		return nil
	case key.Matches(keyMsg, m.keys.backspace):
		if panel.DeleteFilterRuneBackward() {
			m.clearStatus()
			events.Filter.Backspace(focused.id(), panel.Filter)
		}
		return nil
	}
	m.handleFilterInput(focused, keyMsg)
	return nil
}

func (m *Model) handleFilterInput(h *hostedMenu, msg tea.KeyMsg) {
	var text string
	switch msg.Type {
	case tea.KeySpace:
		text = " "
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return
			}
		}
		text = string(msg.Runes)
	default:
		return
	}
	if h.panel.AppendFilter(text) {
		m.clearStatus()
		events.Filter.Append(h.id(), h.panel.Filter)
	}
}

func (m *Model) noteCursor(h *hostedMenu, moved bool) {
	if moved {
		events.UI.MenuCursor(h.id(), h.panel.Cursor)
	}
}

func (m *Model) clearStatus() {
	m.errMsg = ""
	m.infoMsg = ""
}
