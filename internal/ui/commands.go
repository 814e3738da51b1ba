package ui

import (
	"github.com/atomicstack/cmenu/internal/logging/events"
	"github.com/atomicstack/cmenu/internal/menu"
	"github.com/atomicstack/cmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// runSelection closes the menu, cancelling whatever its chain still had
// pending, and queues the selected item's command.
func (m *Model) runSelection(h *hostedMenu) tea.Cmd {
	item, ok := h.panel.Selected()
	if !ok {
		return nil
	}
	events.UI.MenuSelect(h.id(), item.ID, item.Label, h.panel.Filter)
	h.Controller.Close(true)
	m.syncMenus()
	m.clearStatus()
	return m.bus.Execute(command.Request{
		Context: m.menuContext(h),
		Item:    item,
		Action:  menu.RunItemAction,
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.infoMsg = ""
		events.Action.Error(result.MenuID, result.Err)
		return nil
	}
	m.errMsg = ""
	m.infoMsg = ""
	if m.verbose {
		m.infoMsg = result.Info
	}
	events.Action.Success(result.MenuID, result.Info)
	return nil
}

func (m *Model) menuContext(h *hostedMenu) menu.Context {
	return menu.Context{SocketPath: m.socketPath, MenuID: h.id()}
}
