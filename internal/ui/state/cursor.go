package state

// Step moves the cursor delta rows, wrapping past either end.
func (l *Level) Step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	return l.moveTo(((l.Cursor+delta)%n + n) % n)
}

// MoveCursorHome selects the first row.
func (l *Level) MoveCursorHome() bool {
	return l.moveTo(0)
}

// MoveCursorEnd selects the last row.
func (l *Level) MoveCursorEnd() bool {
	return l.moveTo(len(l.Items) - 1)
}

// MoveCursorPageUp moves up one page of rows. A non-positive page size means
// the whole list.
func (l *Level) MoveCursorPageUp(rows int) bool {
	return l.moveTo(l.Cursor - l.page(rows))
}

// MoveCursorPageDown moves down one page of rows.
func (l *Level) MoveCursorPageDown(rows int) bool {
	return l.moveTo(l.Cursor + l.page(rows))
}

func (l *Level) moveTo(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	return l.Cursor != old
}

func (l *Level) page(rows int) int {
	if rows <= 0 || rows > len(l.Items) {
		return len(l.Items)
	}
	return rows
}

// EnsureCursorVisible scrolls the viewport so the cursor falls within the
// rows shown.
func (l *Level) EnsureCursorVisible(rows int) {
	if len(l.Items) == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if rows <= 0 {
		l.ViewportOffset = 0
		return
	}
	switch {
	case l.Cursor < l.ViewportOffset:
		l.ViewportOffset = l.Cursor
	case l.Cursor >= l.ViewportOffset+rows:
		l.ViewportOffset = l.Cursor - rows + 1
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, max(len(l.Items)-rows, 0))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
