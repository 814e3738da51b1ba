package state

// MoveCursorUp moves the cursor one row up, wrapping to the last item.
func (p *Panel) MoveCursorUp() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor--
	if p.Cursor < 0 {
		p.Cursor = n - 1
	}
	return old != p.Cursor
}

// MoveCursorDown moves the cursor one row down, wrapping to the first item.
func (p *Panel) MoveCursorDown() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor++
	if p.Cursor >= n {
		p.Cursor = 0
	}
	return old != p.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (p *Panel) MoveCursorHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (p *Panel) MoveCursorEnd() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// SetCursor places the cursor on idx when it is in range.
func (p *Panel) SetCursor(idx int) bool {
	if idx < 0 || idx >= len(p.Items) {
		return false
	}
	old := p.Cursor
	p.Cursor = idx
	return old != p.Cursor
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Panel) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if upper := p.ViewportOffset + maxVisible - 1; p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
	}
}
