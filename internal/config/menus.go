package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/cmenu/internal/app"
	"github.com/atomicstack/cmenu/internal/cmenu"
	"github.com/atomicstack/cmenu/internal/cssunit"
	"github.com/atomicstack/cmenu/internal/menu"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

type menuFile struct {
	Menus []menuEntry `toml:"menu"`
}

type menuEntry struct {
	ID     string      `toml:"id"`
	Title  string      `toml:"title"`
	Button string      `toml:"button"` // left | middle | right
	Chain  []string    `toml:"chain"`
	Pivot  pivotEntry  `toml:"pivot"`
	Items  []itemEntry `toml:"item"`
}

type pivotEntry struct {
	X string `toml:"x"`
	Y string `toml:"y"`
}

type itemEntry struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Run   string `toml:"run"`
}

var newMenuID = func() string {
	return "menu-" + uuid.NewString()
}

// LoadMenuFile reads menu definitions from a TOML file.
func LoadMenuFile(path string) ([]app.MenuSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menus file: %w", err)
	}
	specs, err := ParseMenus(data)
	if err != nil {
		return nil, fmt.Errorf("menus file %s: %w", path, err)
	}
	return specs, nil
}

// ParseMenus decodes TOML menu definitions. Missing ids are generated,
// missing buttons default to right and missing chains to ["open"].
func ParseMenus(data []byte) ([]app.MenuSpec, error) {
	var file menuFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if len(file.Menus) == 0 {
		return nil, fmt.Errorf("no [[menu]] tables defined")
	}
	specs := make([]app.MenuSpec, 0, len(file.Menus))
	for i, entry := range file.Menus {
		spec, err := entry.spec()
		if err != nil {
			return nil, fmt.Errorf("menu %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (e menuEntry) spec() (app.MenuSpec, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		id = newMenuID()
	}
	button := cmenu.MouseRight
	if b := strings.TrimSpace(strings.ToLower(e.Button)); b != "" {
		parsed, err := cmenu.ParseMouseButton(b)
		if err != nil {
			return app.MenuSpec{}, err
		}
		button = parsed
	}
	script := e.Chain
	if len(script) == 0 {
		script = []string{"open"}
	}
	chain, err := cmenu.ParseChain(script)
	if err != nil {
		return app.MenuSpec{}, err
	}
	pivot, err := parsePivot(e.Pivot)
	if err != nil {
		return app.MenuSpec{}, err
	}
	items := make([]menu.Item, 0, len(e.Items))
	for _, it := range e.Items {
		if strings.TrimSpace(it.Label) == "" {
			return app.MenuSpec{}, fmt.Errorf("item without label")
		}
		items = append(items, menu.Item{ID: it.ID, Label: it.Label, Run: it.Run})
	}
	title := e.Title
	if title == "" {
		title = id
	}
	return app.MenuSpec{
		ID:     id,
		Title:  title,
		Button: button,
		Chain:  chain,
		Pivot:  pivot,
		Items:  menu.EnsureIDs(items),
	}, nil
}

func parsePivot(p pivotEntry) (cmenu.Position, error) {
	pos := cmenu.Position{X: cssunit.Zero, Y: cssunit.Zero}
	if p.X != "" {
		if _, _, err := cssunit.Parse(p.X); err != nil {
			return pos, fmt.Errorf("pivot x: %w", err)
		}
		pos.X = cssunit.Length(p.X)
	}
	if p.Y != "" {
		if _, _, err := cssunit.Parse(p.Y); err != nil {
			return pos, fmt.Errorf("pivot y: %w", err)
		}
		pos.Y = cssunit.Length(p.Y)
	}
	return pos, nil
}

// DefaultMenus is used when no menus file is configured: a right-click menu
// that stays open and a middle-click menu that closes itself after a pause.
func DefaultMenus() []app.MenuSpec {
	return []app.MenuSpec{
		{
			ID:     "main",
			Title:  "actions",
			Button: cmenu.MouseRight,
			Chain:  []cmenu.Action{cmenu.Open()},
			Pivot:  cmenu.Position{X: cssunit.Zero, Y: cssunit.Zero},
			Items: menu.EnsureIDs([]menu.Item{
				{Label: "New window", Run: "tmux: new-window"},
				{Label: "Split horizontally", Run: "tmux: split-window -h"},
				{Label: "Split vertically", Run: "tmux: split-window -v"},
				{Label: "Show date", Run: "date"},
			}),
		},
		{
			ID:     "flash",
			Title:  "notice",
			Button: cmenu.MouseMiddle,
			Chain:  []cmenu.Action{cmenu.Open(), cmenu.Hold(1500 * time.Millisecond), cmenu.Close()},
			Pivot:  cmenu.Position{X: "50%", Y: "0px"},
			Items:  menu.ItemsFromLabels("middle click again to restart the timer"),
		},
	}
}
