package ui

import (
	"sort"
	"sync"

	"github.com/atomicstack/cmenu/internal/cmenu"
	"github.com/atomicstack/cmenu/internal/logging/events"
	uistate "github.com/atomicstack/cmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const changeFeedSize = 64

type hostedMenu struct {
	Menu
	panel *uistate.Panel
	shown bool
	at    cmenu.Position
	// order is the open sequence number; higher values stack on top.
	order uint64
}

func (h *hostedMenu) id() string {
	return h.Controller.ID()
}

// changeFeed carries menu ids from cell subscribers to the Bubble Tea loop.
// Sends never block: a dropped id only delays focus bookkeeping until the
// next change, since View reads controller state directly.
type changeFeed struct {
	mu     sync.Mutex
	ch     chan string
	closed bool
}

func newChangeFeed() *changeFeed {
	return &changeFeed{ch: make(chan string, changeFeedSize)}
}

func (f *changeFeed) notify(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	select {
	case f.ch <- id:
	default:
	}
}

func (f *changeFeed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.ch)
}

type menuChangedMsg struct {
	id string
}

type menuFeedDoneMsg struct{}

func waitForMenuChange(f *changeFeed) tea.Cmd {
	return func() tea.Msg {
		id, ok := <-f.ch
		if !ok {
			return menuFeedDoneMsg{}
		}
		return menuChangedMsg{id: id}
	}
}

func (m *Model) addMenu(spec Menu) {
	if spec.Controller == nil {
		return
	}
	id := spec.Controller.ID()
	if _, exists := m.byID[id]; exists {
		return
	}
	title := spec.Title
	if title == "" {
		title = id
	}
	h := &hostedMenu{Menu: spec, panel: uistate.NewPanel(id, title, spec.Items)}
	m.menus = append(m.menus, h)
	m.byID[id] = h

	m.unsubscribe = append(m.unsubscribe,
		spec.Controller.VisibleCell().Subscribe(func(bool) { m.feed.notify(id) }),
		spec.Controller.PositionCell().Subscribe(func(cmenu.Position) { m.feed.notify(id) }),
	)
}

func (m *Model) handleMenuChangedMsg(msg tea.Msg) tea.Cmd {
	if changed, ok := msg.(menuChangedMsg); ok {
		events.UI.MenuChanged(changed.id)
	}
	m.syncMenus()
	if m.listen {
		return waitForMenuChange(m.feed)
	}
	return nil
}

func (m *Model) handleMenuFeedDoneMsg(tea.Msg) tea.Cmd {
	m.listen = false
	return nil
}

// syncMenus reconciles panel state with controller visibility. A menu that
// became visible gets a fresh panel and the focus; a menu that was reopened
// at a new position while already visible is raised as well.
func (m *Model) syncMenus() {
	for _, h := range m.menus {
		visible := h.Controller.Visible()
		pos := h.Controller.Position()
		switch {
		case visible && (!h.shown || pos != h.at):
			h.panel.Reset()
			m.raise(h)
		case !visible && h.shown && m.focus == h.id():
			m.focus = ""
		}
		h.shown = visible
		h.at = pos
	}
	if m.focus == "" {
		if top := m.topMenu(); top != nil {
			m.focus = top.id()
		}
	}
}

func (m *Model) raise(h *hostedMenu) {
	m.seq++
	h.order = m.seq
	m.focus = h.id()
	events.UI.MenuFocus(h.id())
}

// visibleMenus returns the visible menus from bottom to top.
func (m *Model) visibleMenus() []*hostedMenu {
	out := make([]*hostedMenu, 0, len(m.menus))
	for _, h := range m.menus {
		if h.Controller.Visible() {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}

func (m *Model) topMenu() *hostedMenu {
	visible := m.visibleMenus()
	if len(visible) == 0 {
		return nil
	}
	return visible[len(visible)-1]
}

// focusedMenu returns the menu receiving keyboard input, if it is visible.
func (m *Model) focusedMenu() *hostedMenu {
	h, ok := m.byID[m.focus]
	if !ok || !h.Controller.Visible() {
		return nil
	}
	return h
}

func (m *Model) closeAll() {
	// hidden menus are closed too so their pending chains are cancelled
	for _, h := range m.menus {
		h.Controller.Close(true)
	}
	m.syncMenus()
}
