package screen

import "fmt"

// Window is a rectangular region of a Screen. Each edge is given as an
// offset: a non-negative offset counts from the near edge of the screen, a
// negative one counts inward from the far edge, -1 being flush against it.
//
// Coordinates passed to a window are local and 0-based.
type Window struct {
	scr *Screen

	xMinOff, xMaxOff int
	yMinOff, yMaxOff int

	xMin, xMax int
	yMin, yMax int

	x, y int

	wrap    bool
	refresh bool
}

// OpenWindow creates a window on s, resolves its geometry, clears its area
// and registers it for resize updates.
func (s *Screen) OpenWindow(xMinOff, xMaxOff, yMinOff, yMaxOff int, wrap bool) *Window {
	w := &Window{
		scr:     s,
		xMinOff: xMinOff,
		xMaxOff: xMaxOff,
		yMinOff: yMinOff,
		yMaxOff: yMaxOff,
		wrap:    wrap,
		refresh: true,
	}
	w.UpdateGeometry()
	w.ClearArea()
	s.register(w)
	return w
}

// ResolveMin resolves a near edge offset against an axis of the given size.
func ResolveMin(off, size int) int {
	if off >= 0 {
		return off
	}
	return size + off
}

// ResolveMax resolves a far edge offset against an axis of the given size.
func ResolveMax(off, size int) int {
	if off >= 0 {
		return size - off - 1
	}
	return -off - 1
}

// UpdateGeometry re-resolves the offsets against the current screen size.
// The window cursor is left untouched; owners revalidate it.
func (w *Window) UpdateGeometry() {
	s := w.scr
	w.xMin = ResolveMin(w.xMinOff, s.width)
	w.xMax = ResolveMax(w.xMaxOff, s.width)
	w.yMin = ResolveMin(w.yMinOff, s.height)
	w.yMax = ResolveMax(w.yMaxOff, s.height)

	if w.xMin > w.xMax || w.yMin > w.yMax {
		s.fatal(fmt.Sprintf("window geometry x %d..%d y %d..%d on %dx%d screen",
			w.xMin, w.xMax, w.yMin, w.yMax, s.width, s.height))
	}
}

// Screen returns the screen the window draws into.
func (w *Window) Screen() *Screen { return w.scr }

// Bounds returns the resolved absolute bounds, inclusive.
func (w *Window) Bounds() (xMin, xMax, yMin, yMax int) {
	return w.xMin, w.xMax, w.yMin, w.yMax
}

// Width returns the number of columns.
func (w *Window) Width() int { return w.xMax - w.xMin + 1 }

// Height returns the number of rows.
func (w *Window) Height() int { return w.yMax - w.yMin + 1 }

// Cursor returns the local cursor position.
func (w *Window) Cursor() (x, y int) { return w.x, w.y }

// Wrap reports whether the window was opened in line wrap mode.
func (w *Window) Wrap() bool { return w.wrap }

// SetRefresh enables or disables flushing on Refresh.
func (w *Window) SetRefresh(enabled bool) { w.refresh = enabled }

// SetCursor moves the local cursor. Positions outside the window are
// rejected and leave the cursor unchanged.
func (w *Window) SetCursor(x, y int) bool {
	if x < 0 || y < 0 || x > w.Width()-1 || y > w.Height()-1 {
		w.scr.logger.Debug("cursor outside window", "x", x, "y", y)
		return false
	}
	w.x = x
	w.y = y
	return true
}

// WriteStr writes str at the cursor in the default color. The cursor does
// not move. See WriteStrColored.
func (w *Window) WriteStr(str string) int {
	return w.WriteStrColored(str, ColorDefault)
}

// WriteStrColored writes str at the cursor using color. Characters may run
// one column past the right edge; anything further is dropped. The cursor
// does not move. It returns len(str).
func (w *Window) WriteStrColored(str string, color Color) int {
	limit := w.Width()
	for i := 0; i < len(str); i++ {
		col := w.x + i
		if col > limit {
			break
		}
		if idx, ok := w.scr.index(w, col, w.y); ok {
			w.scr.cells[idx] = Cell{Ch: Displayable(str[i]), Color: color}
		}
	}
	return len(str)
}

// ClearArea empties every row of the window, including the extra column.
func (w *Window) ClearArea() {
	for y := range w.Height() {
		w.clearRow(y)
	}
}

// ClearRow empties the cursor row, including the extra column.
func (w *Window) ClearRow() {
	w.clearRow(w.y)
}

func (w *Window) clearRow(y int) {
	for x := 0; x <= w.Width(); x++ {
		if idx, ok := w.scr.index(w, x, y); ok {
			w.scr.cells[idx] = Cell{}
		}
	}
}

// IsInside reports whether the cursor lies inside the window.
func (w *Window) IsInside() bool {
	return w.x >= 0 && w.y >= 0 && w.x <= w.Width()-1 && w.y <= w.Height()-1
}

// AtBottomEdge reports whether the cursor is on the last row. A cursor
// below the window is a fatal error.
func (w *Window) AtBottomEdge() bool {
	last := w.Height() - 1
	switch {
	case w.y == last:
		return true
	case w.y > last:
		w.scr.fatal(fmt.Sprintf("cursor row %d below window bottom %d", w.y, last))
	}
	return false
}

// AtTopEdge reports whether the cursor is on the first row. A cursor above
// the window is a fatal error.
func (w *Window) AtTopEdge() bool {
	switch {
	case w.y == 0:
		return true
	case w.y < 0:
		w.scr.fatal(fmt.Sprintf("cursor row %d above window top", w.y))
	}
	return false
}

// Refresh flushes the whole screen buffer to the device and places the
// terminal cursor on this window's cursor.
func (w *Window) Refresh() {
	if !w.refresh {
		return
	}
	dev := w.scr.dev
	dev.Clear()
	w.scr.dump()
	dev.SetCursor(w.xMin+w.x, w.yMin+w.y)
	dev.Present()
}

// Close unregisters the window from resize updates.
func (w *Window) Close() {
	w.scr.unregister(w)
}
