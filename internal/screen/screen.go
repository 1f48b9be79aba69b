// Package screen implements take's off-screen character buffer and the
// rectangular windows drawn into it.
//
// A Screen mirrors the terminal size. Windows are addressed by edge offsets
// and are re-resolved against the screen whenever the terminal is resized.
// Nothing reaches the terminal until a window is refreshed.
package screen

import (
	"errors"
	"fmt"
	"slices"

	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/take/internal/logging"
)

// ErrNoSpace is returned by Open when the device reports an empty terminal.
var ErrNoSpace = errors.New("terminal has no drawable area")

// Screen owns the off-screen buffer and the live windows drawn into it.
type Screen struct {
	dev    Device
	logger *log.Logger

	width  int
	height int
	cells  []Cell
	color  bool

	windows []*Window

	// PreResize runs before the geometry of a resize is applied.
	PreResize func()
	// PostResize runs after the screen and every window were recomputed.
	// It is expected to repaint.
	PostResize func()
	// OnFatal receives unrecoverable geometry errors. A nil hook panics.
	OnFatal func(msg string)
}

// Option configures a Screen.
type Option func(*Screen)

// WithLogger sets the debug logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

// WithColor forces color output on or off regardless of what the device
// reports.
func WithColor(enabled bool) Option {
	return func(s *Screen) {
		s.color = enabled
	}
}

// Open creates a screen sized to dev and clears it.
func Open(dev Device, opts ...Option) (*Screen, error) {
	s := &Screen{
		dev:    dev,
		logger: logging.Discard(),
		color:  dev.HasColor(),
	}
	for _, opt := range opts {
		opt(s)
	}

	w, h := dev.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("could not open screen %dx%d: %w", w, h, ErrNoSpace)
	}
	s.resize(w, h)
	return s, nil
}

// Width returns the screen width in columns.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in rows.
func (s *Screen) Height() int { return s.height }

// HasColor reports whether cell colors are sent to the device.
func (s *Screen) HasColor() bool { return s.color }

// Logger returns the screen's debug logger.
func (s *Screen) Logger() *log.Logger { return s.logger }

// Cell returns the buffered cell at absolute position (x, y).
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

// UpdateGeometry re-reads the device size and reallocates a cleared buffer.
// It must run before any window geometry is recomputed.
func (s *Screen) UpdateGeometry() {
	w, h := s.dev.Size()
	if w <= 0 || h <= 0 {
		s.fatal(fmt.Sprintf("screen size %dx%d", w, h))
		return
	}
	s.resize(w, h)
}

func (s *Screen) resize(w, h int) {
	s.width = w
	s.height = h
	s.cells = make([]Cell, w*h)
}

// Clear zeroes the whole buffer.
func (s *Screen) Clear() {
	clear(s.cells)
}

// Close drops the buffer and releases the device.
func (s *Screen) Close() {
	s.cells = nil
	s.windows = nil
	s.dev.Close()
}

// PollKey blocks until a key arrives. Resize events are handled here and
// never returned: the pre-resize hook runs, the screen and every live window
// are recomputed, and the post-resize hook repaints. Enter is reported as
// KeyNewline.
func (s *Screen) PollKey() Key {
	for {
		ev := s.dev.PollEvent()
		switch ev.Kind {
		case EventResize:
			s.handleResize()
		case EventClosed:
			s.logger.Debug("device closed")
			return KeyClosed
		default:
			key := ev.Key
			if key == KeyEnter {
				key = KeyNewline
			}
			if key.IsPrintable() {
				s.logger.Debug("key", "code", int(key), "char", string(rune(key)))
			} else {
				s.logger.Debug("key", "code", int(key))
			}
			return key
		}
	}
}

func (s *Screen) handleResize() {
	if s.PreResize != nil {
		s.PreResize()
	}
	s.dev.Clear()
	s.UpdateGeometry()
	for _, w := range s.windows {
		w.UpdateGeometry()
	}
	s.logger.Debug("resize", "width", s.width, "height", s.height)
	if s.PostResize != nil {
		s.PostResize()
	}
}

// dump copies the whole buffer to the device.
func (s *Screen) dump() {
	for y := range s.height {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x, c := range row {
			color := c.Color
			if !s.color {
				color = ColorDefault
			}
			s.dev.SetCell(x, y, c.Ch, color)
		}
	}
}

func (s *Screen) fatal(msg string) {
	s.logger.Error("fatal", "reason", msg)
	if s.OnFatal == nil {
		panic("screen: " + msg)
	}
	s.OnFatal(msg)
}

func (s *Screen) register(w *Window) {
	s.windows = append(s.windows, w)
}

func (s *Screen) unregister(w *Window) {
	s.windows = slices.DeleteFunc(s.windows, func(other *Window) bool {
		return other == w
	})
}

// index maps window local coordinates to the flat buffer index. Positions
// outside the terminal grid report false.
func (s *Screen) index(w *Window, x, y int) (int, bool) {
	gx := w.xMin + x
	gy := w.yMin + y
	if gx < 0 || gy < 0 || gx >= s.width || gy >= s.height {
		return 0, false
	}
	return gy*s.width + gx, true
}
