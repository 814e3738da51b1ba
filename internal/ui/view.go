package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minPanelWidth = 12
	maxPanelWidth = 48
	appTitle      = "cmenu"
	itemMarker    = "› "
	itemPadding   = "  "
	filterMarker  = "» "
)

// placement is where a visible menu's panel lands on screen. Coordinates are
// zero-based cells; width and height include the border.
type placement struct {
	menu    *hostedMenu
	x       int
	y       int
	width   int
	height  int
	itemTop int
	offset  int
	rows    int
	body    string
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.screenSize()
	rows := make([]string, height)
	rows[0] = render(styles.Header, truncate.String(m.headerText(), uint(width)))

	bottom := height - 1
	if m.showFooter && bottom > 0 {
		footer := m.keys.footerHelp(m.focusedMenu() != nil)
		rows[bottom] = render(styles.Footer, truncate.String(footer, uint(width)))
		bottom--
	}
	if bottom > 0 {
		switch {
		case m.errMsg != "":
			rows[bottom] = render(styles.Error, truncate.String("Error: "+m.errMsg, uint(width)))
		case m.infoMsg != "":
			rows[bottom] = render(styles.Info, truncate.String(m.infoMsg, uint(width)))
		}
	}

	for _, p := range m.layout() {
		for i, line := range strings.Split(p.body, "\n") {
			row := p.y + i
			if row < 0 || row >= height {
				continue
			}
			rows[row] = spliceRow(rows[row], line, p.x)
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) screenSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) headerText() string {
	parts := make([]string, 0, len(m.menus))
	for _, h := range m.menus {
		parts = append(parts, fmt.Sprintf("%s click: %s", h.Button, h.panel.Title))
	}
	if len(parts) == 0 {
		return appTitle
	}
	return appTitle + "  " + strings.Join(parts, "  ")
}

// layout places every visible menu, bottom to top. Both View and mouse hit
// testing use it so what is drawn is what is clicked.
func (m *Model) layout() []placement {
	screenW, screenH := m.screenSize()
	visible := m.visibleMenus()
	out := make([]placement, 0, len(visible))
	for _, h := range visible {
		out = append(out, m.place(h, screenW, screenH))
	}
	return out
}

func (m *Model) place(h *hostedMenu, screenW, screenH int) placement {
	panel := h.panel
	chrome := 3 // border and title
	if panel.Filter != "" {
		chrome++
	}
	maxRows := screenH - chrome
	if maxRows < 1 {
		maxRows = 1
	}
	panel.EnsureCursorVisible(maxRows)

	emptyMsg := ""
	if len(panel.Items) == 0 {
		emptyMsg = "(no entries)"
		if panel.Filter != "" {
			emptyMsg = fmt.Sprintf("No matches for %q", panel.Filter)
		}
	}
	innerW := max(lipgloss.Width(panel.Title), lipgloss.Width(emptyMsg))
	for _, item := range panel.Items {
		if w := lipgloss.Width(item.Label) + lipgloss.Width(itemMarker); w > innerW {
			innerW = w
		}
	}
	if w := lipgloss.Width(filterMarker + panel.Filter); panel.Filter != "" && w > innerW {
		innerW = w
	}
	if innerW < minPanelWidth {
		innerW = minPanelWidth
	}
	if innerW > maxPanelWidth {
		innerW = maxPanelWidth
	}
	if innerW > screenW-2 {
		innerW = screenW - 2
	}
	if innerW < 1 {
		innerW = 1
	}

	lines := []string{fitStyled(styles.PanelTitle, panel.Title, innerW)}
	start, end := panel.ViewportOffset, panel.ViewportOffset+maxRows
	if end > len(panel.Items) {
		end = len(panel.Items)
	}
	if emptyMsg != "" {
		lines = append(lines, fitStyled(styles.Empty, emptyMsg, innerW))
	} else {
		for i := start; i < end; i++ {
			label := panel.Items[i].Label
			if i == panel.Cursor {
				lines = append(lines, fitStyled(styles.SelectedItem, itemMarker+label, innerW))
				continue
			}
			lines = append(lines, fitStyled(styles.Item, itemPadding+label, innerW))
		}
	}
	if panel.Filter != "" {
		prompt := render(styles.FilterPrompt, filterMarker)
		text := fitStyled(styles.Filter, panel.Filter, innerW-lipgloss.Width(filterMarker))
		lines = append(lines, prompt+text)
	}

	body := render(styles.Panel, strings.Join(lines, "\n"))
	width, height := lipgloss.Width(body), lipgloss.Height(body)

	pos := h.Controller.Position()
	x := pos.X.Cells(screenW) - h.Pivot.X.Cells(width)
	y := pos.Y.Cells(screenH) - h.Pivot.Y.Cells(height)
	x = clamp(x, 0, screenW-width)
	y = clamp(y, 0, screenH-height)

	return placement{
		menu:    h,
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		itemTop: y + 2,
		offset:  start,
		rows:    end - start,
		body:    body,
	}
}

// hitTest finds the topmost panel under the cell. item is -1 when the cell is
// on the panel chrome rather than an item row.
func (m *Model) hitTest(x, y int) (h *hostedMenu, item int, ok bool) {
	placements := m.layout()
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		if x < p.x || x >= p.x+p.width || y < p.y || y >= p.y+p.height {
			continue
		}
		item = -1
		if x > p.x && x < p.x+p.width-1 && y >= p.itemTop && y < p.itemTop+p.rows {
			item = p.offset + (y - p.itemTop)
		}
		return p.menu, item, true
	}
	return nil, -1, false
}

// fitStyled truncates or pads text to exactly width cells, then styles it.
func fitStyled(style *lipgloss.Style, text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = truncate.String(text, uint(width))
	if w := lipgloss.Width(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return render(style, text)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// spliceRow draws over on top of base starting at column x.
func spliceRow(base, over string, x int) string {
	baseW := xansi.StringWidth(base)
	if baseW < x {
		base += strings.Repeat(" ", x-baseW)
		baseW = x
	}
	overW := xansi.StringWidth(over)
	out := xansi.Cut(base, 0, x) + over
	if end := x + overW; end < baseW {
		out += xansi.Cut(base, end, baseW)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
