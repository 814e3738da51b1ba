package ui

import (
	"reflect"

	"github.com/atomicstack/cmenu/internal/cmenu"
	"github.com/atomicstack/cmenu/internal/menu"
	"github.com/atomicstack/cmenu/internal/theme"
	"github.com/atomicstack/cmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Menu is one hosted context menu.
type Menu struct {
	Controller *cmenu.Controller
	Title      string
	// Button is the trigger passed to Interact for every mouse press.
	Button cmenu.MouseButton
	// Pivot is subtracted from the menu position when the panel is placed.
	Pivot cmenu.Position
	Items []menu.Item
}

// Options configures a Model.
type Options struct {
	Registry   *cmenu.Registry
	Menus      []Menu
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Listen subscribes the model to controller changes made outside Update,
	// such as a chain finishing a hold. Harness-driven tests leave it off.
	Listen bool
}

// Model implements the Bubble Tea model hosting the context menus.
type Model struct {
	registry *cmenu.Registry
	menus    []*hostedMenu
	byID     map[string]*hostedMenu
	focus    string
	seq      uint64

	feed        *changeFeed
	listen      bool
	unsubscribe []func()

	errMsg      string
	infoMsg     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	socketPath  string
	keys        keyMap

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel builds the host model and subscribes to each menu's cells.
func NewModel(opts Options) *Model {
	reg := opts.Registry
	if reg == nil {
		reg = cmenu.NewRegistry()
	}
	m := &Model{
		registry:   reg,
		byID:       make(map[string]*hostedMenu, len(opts.Menus)),
		feed:       newChangeFeed(),
		listen:     opts.Listen,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		socketPath: opts.SocketPath,
		keys:       defaultKeyMap(),
		bus:        command.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	for _, spec := range opts.Menus {
		m.addMenu(spec)
	}
	m.syncMenus()
	m.registerHandlers()
	return m
}

// Registry exposes the registry the hosted controllers belong to.
func (m *Model) Registry() *cmenu.Registry {
	return m.registry
}

// Close detaches the model from its controllers.
func (m *Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
	m.feed.close()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if !m.listen {
		return nil
	}
	return waitForMenuChange(m.feed)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menuChangedMsg{}):    m.handleMenuChangedMsg,
		reflect.TypeOf(menuFeedDoneMsg{}):   m.handleMenuFeedDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}
