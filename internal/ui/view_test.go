package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/cmenu/internal/cmenu"
	"github.com/atomicstack/cmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func viewRows(h *Harness) []string {
	return strings.Split(h.View(), "\n")
}

func TestViewFillsScreen(t *testing.T) {
	f := newFixture(t, Options{ShowFooter: true}, mainMenu())
	rows := viewRows(f.h)
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[0], "cmenu  right click: main") {
		t.Fatalf("expected header listing triggers, got %q", rows[0])
	}
	if !strings.Contains(rows[11], "q/esc quit") {
		t.Fatalf("expected idle footer, got %q", rows[11])
	}
}

func TestViewPlacesPanelAtPositionWithPivot(t *testing.T) {
	def := mainMenu()
	def.pivot = cmenu.Position{X: "100%", Y: "0"}
	f := newFixture(t, Options{}, def)
	f.ctrl(t, "main").Open(30, 4, false)
	f.h.Send(menuChangedMsg{id: "main"})

	placements := f.h.Model().layout()
	if len(placements) != 1 {
		t.Fatalf("expected one placement, got %d", len(placements))
	}
	p := placements[0]
	if p.width != 14 || p.height != 6 {
		t.Fatalf("expected 14x6 panel, got %dx%d", p.width, p.height)
	}
	if p.x != 16 || p.y != 4 {
		t.Fatalf("expected panel at 16,4, got %d,%d", p.x, p.y)
	}

	rows := viewRows(f.h)
	if !strings.HasPrefix(rows[5], strings.Repeat(" ", 16)+"│main") {
		t.Fatalf("expected title row at column 16, got %q", rows[5])
	}
	if !strings.Contains(rows[6], "› Copy") {
		t.Fatalf("expected cursor on first item, got %q", rows[6])
	}
}

func TestViewClampsPanelToScreen(t *testing.T) {
	f := newFixture(t, Options{}, mainMenu())
	cases := []struct {
		x, y   interface{}
		wx, wy int
	}{
		{39, 11, 26, 6},
		{"50%", "50%", 20, 6},
		{-5, -5, 0, 0},
	}
	for _, tc := range cases {
		f.ctrl(t, "main").Open(tc.x, tc.y, false)
		p := f.h.Model().layout()[0]
		if p.x != tc.wx || p.y != tc.wy {
			t.Fatalf("open at %v,%v: expected %d,%d got %d,%d", tc.x, tc.y, tc.wx, tc.wy, p.x, p.y)
		}
	}
}

func TestViewHidesClosedMenu(t *testing.T) {
	f := newFixture(t, Options{}, mainMenu())
	f.h.Press(tea.MouseButtonRight, 2, 2)
	if !strings.Contains(f.h.View(), "Paste") {
		t.Fatalf("expected open menu to render items")
	}
	f.h.Key(tea.KeyEsc)
	if strings.Contains(f.h.View(), "Paste") {
		t.Fatalf("expected closed menu to disappear")
	}
}

func TestViewShowsFilterAndEmptyState(t *testing.T) {
	f := newFixture(t, Options{}, mainMenu())
	f.h.Press(tea.MouseButtonRight, 2, 2)
	f.h.Type("zz")
	view := f.h.View()
	if !strings.Contains(view, "» zz") {
		t.Fatalf("expected filter line, got:\n%s", view)
	}
	if !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected empty state, got:\n%s", view)
	}
}

func TestViewShowsError(t *testing.T) {
	f := newFixture(t, Options{}, mainMenu())
	f.h.Send(menu.ActionResult{MenuID: "main", Err: errBoom})
	rows := viewRows(f.h)
	if !strings.Contains(rows[len(rows)-1], "Error: boom") {
		t.Fatalf("expected error on the bottom row, got %q", rows[len(rows)-1])
	}
}

func TestSpliceRow(t *testing.T) {
	cases := []struct {
		base, over string
		x          int
		want       string
	}{
		{"abcdef", "XY", 2, "abXYef"},
		{"ab", "XY", 4, "ab  XY"},
		{"abc", "XYZW", 1, "aXYZW"},
		{"", "XY", 0, "XY"},
	}
	for _, tc := range cases {
		if got := spliceRow(tc.base, tc.over, tc.x); got != tc.want {
			t.Fatalf("splice %q over %q at %d: expected %q, got %q", tc.over, tc.base, tc.x, tc.want, got)
		}
	}
}

func TestFooterFollowsFocus(t *testing.T) {
	keys := defaultKeyMap()
	if got := keys.footerHelp(false); got != "q/esc quit" {
		t.Fatalf("unexpected idle footer %q", got)
	}
	if got := keys.footerHelp(true); !strings.Contains(got, "enter run") || !strings.Contains(got, "esc close menus") {
		t.Fatalf("unexpected menu footer %q", got)
	}
}
