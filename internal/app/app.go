package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/cmenu/internal/cmenu"
	"github.com/atomicstack/cmenu/internal/logging"
	"github.com/atomicstack/cmenu/internal/logging/events"
	"github.com/atomicstack/cmenu/internal/menu"
	"github.com/atomicstack/cmenu/internal/tmux"
	"github.com/atomicstack/cmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// AtMouse opens a menu at the tmux mouse position on startup: OpenID when
	// set, otherwise the first configured menu.
	AtMouse bool
	OpenID  string
	Menus   []MenuSpec
	// Registry holds the hosted controllers. Nil means cmenu.Default.
	Registry *cmenu.Registry
}

// MenuSpec declares one context menu hosted by the program.
type MenuSpec struct {
	ID     string
	Title  string
	Button cmenu.MouseButton
	Chain  []cmenu.Action
	Pivot  cmenu.Position
	Items  []menu.Item
}

var (
	mousePosition = tmux.MousePosition
	clientSize    = tmux.ClientSize
)

var runProgram = func(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

// Run registers the configured menus and executes the Bubble Tea program.
func Run(cfg Config) error {
	reg := cfg.Registry
	if reg == nil {
		reg = cmenu.Default
	}
	menus, err := Register(reg, cfg.Menus)
	if err != nil {
		return err
	}
	defer Unregister(reg, cfg.Menus)

	socketPath := cfg.SocketPath
	if cfg.AtMouse {
		socketPath, err = tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return fmt.Errorf("resolve socket path: %w", err)
		}
	}

	model := ui.NewModel(ui.Options{
		Registry:   reg,
		Menus:      menus,
		SocketPath: socketPath,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Listen:     true,
	})
	defer model.Close()

	if cfg.AtMouse && len(menus) > 0 {
		if cfg.Width <= 0 || cfg.Height <= 0 {
			seedClientSize(socketPath, model)
		}
		id := cfg.OpenID
		if id == "" {
			id = menus[0].Controller.ID()
		}
		if ctrl, ok := reg.Lookup(id); ok {
			openAtMouse(socketPath, ctrl)
		}
	}

	err = runProgram(model)
	events.App.Stop(fmt.Sprint(err))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Register creates a controller per spec in reg, loading each spec's chain.
// Menus registered before a failure are unregistered again.
func Register(reg *cmenu.Registry, specs []MenuSpec) ([]ui.Menu, error) {
	menus := make([]ui.Menu, 0, len(specs))
	for i, spec := range specs {
		ctrl, err := reg.New(spec.ID)
		if err != nil {
			Unregister(reg, specs[:i])
			return nil, fmt.Errorf("register menu: %w", err)
		}
		ctrl.Append(spec.Chain...)
		menus = append(menus, ui.Menu{
			Controller: ctrl,
			Title:      spec.Title,
			Button:     spec.Button,
			Pivot:      spec.Pivot,
			Items:      menu.EnsureIDs(spec.Items),
		})
	}
	return menus, nil
}

// Unregister removes every spec's id from reg.
func Unregister(reg *cmenu.Registry, specs []MenuSpec) {
	for _, spec := range specs {
		reg.Unregister(spec.ID)
	}
}

// seedClientSize sizes the model from the tmux client so percentage lengths
// resolve before the first WindowSizeMsg arrives.
func seedClientSize(socketPath string, model *ui.Model) {
	w, h, err := clientSize(socketPath)
	if err != nil {
		logging.Error(fmt.Errorf("client size: %w", err))
		return
	}
	model.Update(tea.WindowSizeMsg{Width: w, Height: h})
}

func openAtMouse(socketPath string, ctrl *cmenu.Controller) {
	x, y, err := mousePosition(socketPath)
	if err != nil {
		logging.Error(fmt.Errorf("open at mouse: %w", err))
		return
	}
	ctrl.Execute(x, y)
}
