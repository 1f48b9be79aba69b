package terminal

import (
	"strings"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// DefaultWidth and DefaultHeight size a headless device when no size is
// given.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

type queued struct {
	event         screen.Event
	width, height int
}

// Headless is an in-memory terminal. Events are replayed from a queue and
// once the queue is empty the device reports itself closed, which makes
// every interaction loop cancel.
type Headless struct {
	width, height int
	color         bool

	queue []queued
	cells []screen.Cell

	cursorX, cursorY int
	frames           int
	closed           bool
}

// NewHeadless creates a device of the given size.
func NewHeadless(width, height int) *Headless {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	h := &Headless{width: width, height: height, color: true}
	h.cells = make([]screen.Cell, width*height)
	return h
}

// SetColor sets what HasColor reports.
func (h *Headless) SetColor(enabled bool) {
	h.color = enabled
}

// QueueKeys appends key events.
func (h *Headless) QueueKeys(keys ...screen.Key) {
	for _, k := range keys {
		h.queue = append(h.queue, queued{event: screen.Event{Kind: screen.EventKey, Key: k}})
	}
}

// QueueString appends one key event per byte of s.
func (h *Headless) QueueString(s string) {
	for i := 0; i < len(s); i++ {
		h.QueueKeys(screen.Key(s[i]))
	}
}

// QueueResize appends a resize to width x height.
func (h *Headless) QueueResize(width, height int) {
	h.queue = append(h.queue, queued{
		event:  screen.Event{Kind: screen.EventResize},
		width:  width,
		height: height,
	})
}

// Pending returns the number of queued events.
func (h *Headless) Pending() int {
	return len(h.queue)
}

// Size returns the current device size.
func (h *Headless) Size() (int, int) {
	return h.width, h.height
}

// HasColor reports the configured color capability.
func (h *Headless) HasColor() bool {
	return h.color
}

// PollEvent pops the next queued event.
func (h *Headless) PollEvent() screen.Event {
	if h.closed || len(h.queue) == 0 {
		return screen.Event{Kind: screen.EventClosed}
	}
	next := h.queue[0]
	h.queue = h.queue[1:]
	if next.event.Kind == screen.EventResize {
		h.width, h.height = next.width, next.height
		h.cells = make([]screen.Cell, max(h.width*h.height, 0))
	}
	return next.event
}

// SetCell stores one cell. Positions outside the device are ignored.
func (h *Headless) SetCell(x, y int, ch byte, color screen.Color) {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return
	}
	h.cells[y*h.width+x] = screen.Cell{Ch: ch, Color: color}
}

// SetCursor records the cursor position.
func (h *Headless) SetCursor(x, y int) {
	h.cursorX, h.cursorY = x, y
}

// Present counts a frame.
func (h *Headless) Present() {
	h.frames++
}

// Clear empties all cells.
func (h *Headless) Clear() {
	clear(h.cells)
}

// Close marks the device closed and drops pending events.
func (h *Headless) Close() {
	h.closed = true
	h.queue = nil
}

// Closed reports whether Close was called.
func (h *Headless) Closed() bool {
	return h.closed
}

// Frames returns how many times Present was called.
func (h *Headless) Frames() int {
	return h.frames
}

// Cursor returns the last cursor position.
func (h *Headless) Cursor() (x, y int) {
	return h.cursorX, h.cursorY
}

// Cell returns the cell at (x, y).
func (h *Headless) Cell(x, y int) screen.Cell {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return screen.Cell{}
	}
	return h.cells[y*h.width+x]
}

// Row returns row y as text with trailing blanks removed.
func (h *Headless) Row(y int) string {
	if y < 0 || y >= h.height {
		return ""
	}
	var b strings.Builder
	for x := range h.width {
		ch := h.cells[y*h.width+x].Ch
		if ch == 0 {
			ch = ' '
		}
		b.WriteByte(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// Text returns all rows joined by newlines.
func (h *Headless) Text() string {
	rows := make([]string, h.height)
	for y := range rows {
		rows[y] = h.Row(y)
	}
	return strings.Join(rows, "\n")
}
