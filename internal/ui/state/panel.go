package state

import "github.com/atomicstack/cmenu/internal/menu"

// Panel tracks the interactive state of one open context menu: its items, the
// type-to-filter query and the highlighted row.
type Panel struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	Cursor         int
	ViewportOffset int
}

// NewPanel constructs a Panel for the provided items.
func NewPanel(id, title string, items []menu.Item) *Panel {
	p := &Panel{ID: id, Title: title}
	p.UpdateItems(items)
	return p
}

// Reset clears the filter and moves the cursor to the first item. Called
// whenever the menu is reopened.
func (p *Panel) Reset() {
	p.Filter = ""
	p.Cursor = 0
	p.ViewportOffset = 0
	p.applyFilter()
}

// Selected returns the item under the cursor.
func (p *Panel) Selected() (menu.Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return menu.Item{}, false
	}
	return p.Items[p.Cursor], true
}

// IndexOf returns the index for a given item identifier.
func (p *Panel) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the item set, keeping the viewport when it still fits.
func (p *Panel) UpdateItems(items []menu.Item) {
	prevOffset := p.ViewportOffset
	p.Full = CloneItems(items)
	p.applyFilter()
	if len(p.Items) == 0 || prevOffset < 0 || prevOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}
