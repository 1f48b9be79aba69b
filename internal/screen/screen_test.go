package screen

import (
	"strings"
	"testing"
)

// fakeDevice records what reaches the terminal and replays queued events.
type fakeDevice struct {
	width, height int
	color         bool
	events        []Event
	cells         map[[2]int]fakeCell
	cursorX       int
	cursorY       int
	presents      int
	clears        int
	closed        bool
}

type fakeCell struct {
	ch    byte
	color Color
}

func newFakeDevice(w, h int) *fakeDevice {
	return &fakeDevice{width: w, height: h, color: true, cells: map[[2]int]fakeCell{}}
}

func (d *fakeDevice) Size() (int, int) { return d.width, d.height }
func (d *fakeDevice) HasColor() bool   { return d.color }

func (d *fakeDevice) PollEvent() Event {
	if len(d.events) == 0 {
		return Event{Kind: EventClosed}
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev
}

func (d *fakeDevice) SetCell(x, y int, ch byte, color Color) {
	d.cells[[2]int{x, y}] = fakeCell{ch, color}
}

func (d *fakeDevice) SetCursor(x, y int) { d.cursorX, d.cursorY = x, y }
func (d *fakeDevice) Present()           { d.presents++ }

func (d *fakeDevice) Clear() {
	d.clears++
	d.cells = map[[2]int]fakeCell{}
}

func (d *fakeDevice) Close() { d.closed = true }

func (d *fakeDevice) row(y int) string {
	var b strings.Builder
	for x := range d.width {
		c := d.cells[[2]int{x, y}]
		if c.ch == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(c.ch)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func openScreen(t *testing.T, w, h int) (*Screen, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice(w, h)
	s, err := Open(dev)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, dev
}

func (s *Screen) rowText(y int) string {
	var b strings.Builder
	for x := range s.width {
		c := s.Cell(x, y)
		if c.Ch == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(c.Ch)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// =============================================================================
// Geometry
// =============================================================================

func TestOpenRejectsEmptyTerminal(t *testing.T) {
	if _, err := Open(newFakeDevice(0, 10)); err == nil {
		t.Fatal("Open() on zero width device succeeded")
	}
}

func TestResolveNonNegativeOffsets(t *testing.T) {
	for size := 1; size <= 40; size++ {
		for lo := 0; lo < size; lo++ {
			for hi := 0; lo+hi < size; hi++ {
				minEdge := ResolveMin(lo, size)
				maxEdge := ResolveMax(hi, size)
				if got, want := maxEdge-minEdge+1, size-lo-hi; got != want {
					t.Fatalf("size %d offsets (%d,%d): span %d, want %d", size, lo, hi, got, want)
				}
			}
		}
	}
}

func TestResolveNegativeOffsets(t *testing.T) {
	tests := []struct {
		off, size        int
		wantMin, wantMax int
	}{
		{-1, 24, 23, 0},
		{-4, 80, 76, 3},
		{-14, 80, 66, 13},
	}

	for _, tt := range tests {
		if got := ResolveMin(tt.off, tt.size); got != tt.wantMin {
			t.Errorf("ResolveMin(%d, %d) = %d, want %d", tt.off, tt.size, got, tt.wantMin)
		}
		if got := ResolveMax(tt.off, tt.size); got != tt.wantMax {
			t.Errorf("ResolveMax(%d, %d) = %d, want %d", tt.off, tt.size, got, tt.wantMax)
		}
	}
}

func TestListWindowGeometry(t *testing.T) {
	s, _ := openScreen(t, 80, 24)
	w := s.OpenWindow(0, 1, 0, 1, false)

	xMin, xMax, yMin, yMax := w.Bounds()
	if xMin != 0 || xMax != 78 || yMin != 0 || yMax != 22 {
		t.Errorf("Bounds() = %d,%d,%d,%d want 0,78,0,22", xMin, xMax, yMin, yMax)
	}
	if w.Width() != 79 || w.Height() != 23 {
		t.Errorf("size = %dx%d, want 79x23", w.Width(), w.Height())
	}
}

func TestBottomRowWindowGeometry(t *testing.T) {
	s, _ := openScreen(t, 80, 24)
	w := s.OpenWindow(-14, 5, -1, 0, false)

	xMin, xMax, yMin, yMax := w.Bounds()
	if xMin != 66 || xMax != 74 || yMin != 23 || yMax != 23 {
		t.Errorf("Bounds() = %d,%d,%d,%d want 66,74,23,23", xMin, xMax, yMin, yMax)
	}
}

func TestInvalidGeometryIsFatal(t *testing.T) {
	s, _ := openScreen(t, 10, 5)
	var reason string
	s.OnFatal = func(msg string) { reason = msg }

	s.OpenWindow(8, 8, 0, 0, false)

	if reason == "" {
		t.Fatal("expected fatal callback for crossed edges")
	}
}

func TestInvalidGeometryPanicsWithoutHook(t *testing.T) {
	s, _ := openScreen(t, 10, 5)
	defer func() {
		if recover() == nil {
			t.Error("expected panic without OnFatal hook")
		}
	}()
	s.OpenWindow(0, 0, 4, 4, false)
}

// =============================================================================
// Cursor and writes
// =============================================================================

func TestSetCursorBounds(t *testing.T) {
	s, _ := openScreen(t, 20, 10)
	w := s.OpenWindow(2, 2, 1, 1, false)

	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{15, 7, true},
		{16, 0, false},
		{0, 8, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		w.SetCursor(3, 3)
		if got := w.SetCursor(tt.x, tt.y); got != tt.ok {
			t.Errorf("SetCursor(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.ok)
		}
		x, y := w.Cursor()
		if !tt.ok && (x != 3 || y != 3) {
			t.Errorf("failed SetCursor(%d, %d) moved cursor to %d,%d", tt.x, tt.y, x, y)
		}
	}
}

func TestWriteClipsOneColumnPastEdge(t *testing.T) {
	s, _ := openScreen(t, 20, 3)
	w := s.OpenWindow(0, 10, 0, 0, false) // columns 0..9

	for col := range 10 {
		s.Clear()
		w.SetCursor(col, 0)
		n := w.WriteStr(strings.Repeat("x", 30))
		if n != 30 {
			t.Errorf("WriteStr() = %d, want 30", n)
		}
		for x := w.Width() + 1; x < s.Width(); x++ {
			if s.Cell(x, 0).Ch != 0 {
				t.Fatalf("col %d: cell %d written past window width", col, x)
			}
		}
		if s.Cell(w.Width(), 0).Ch != 'x' {
			t.Errorf("col %d: extra column not written", col)
		}
	}
}

func TestWriteMapsNonTextBytes(t *testing.T) {
	s, _ := openScreen(t, 20, 3)
	w := s.OpenWindow(0, 0, 0, 0, false)

	w.WriteStrColored("a\tb\x01c\xff", ColorRed)

	if got := s.rowText(0); got != "a b c" {
		t.Errorf("row = %q, want %q", got, "a b c")
	}
	if got := s.Cell(0, 0).Color; got != ColorRed {
		t.Errorf("color = %v, want red", got)
	}
}

func TestWriteDoesNotMoveCursor(t *testing.T) {
	s, _ := openScreen(t, 20, 3)
	w := s.OpenWindow(0, 0, 0, 0, false)
	w.SetCursor(2, 1)

	w.WriteStr("hello")

	if x, y := w.Cursor(); x != 2 || y != 1 {
		t.Errorf("cursor = %d,%d, want 2,1", x, y)
	}
}

func TestClearRowIncludesExtraColumn(t *testing.T) {
	s, _ := openScreen(t, 20, 3)
	w := s.OpenWindow(0, 10, 0, 0, false)
	w.WriteStr(strings.Repeat("x", 20))

	w.ClearRow()

	if got := s.rowText(0); got != "" {
		t.Errorf("row after ClearRow = %q", got)
	}
}

func TestClearAreaLeavesOtherWindows(t *testing.T) {
	s, _ := openScreen(t, 20, 4)
	list := s.OpenWindow(0, 1, 0, 1, false)
	status := s.OpenWindow(0, 0, -1, 0, false)

	status.WriteStr("status")
	list.SetCursor(0, 1)
	list.WriteStr("line")
	list.ClearArea()

	if got := s.rowText(1); got != "" {
		t.Errorf("list row = %q after ClearArea", got)
	}
	if got := s.rowText(3); got != "status" {
		t.Errorf("status row = %q, want status", got)
	}
}

// =============================================================================
// Edge predicates
// =============================================================================

func TestEdgePredicates(t *testing.T) {
	s, _ := openScreen(t, 10, 6)
	w := s.OpenWindow(0, 0, 0, 1, false) // 5 rows

	w.SetCursor(0, 0)
	if !w.AtTopEdge() || w.AtBottomEdge() {
		t.Error("row 0: want top edge only")
	}
	w.SetCursor(0, 4)
	if w.AtTopEdge() || !w.AtBottomEdge() {
		t.Error("row 4: want bottom edge only")
	}
	w.SetCursor(0, 2)
	if w.AtTopEdge() || w.AtBottomEdge() || !w.IsInside() {
		t.Error("row 2: want inside without edges")
	}
}

func TestEdgePredicateOutOfBoundsIsFatal(t *testing.T) {
	dev := newFakeDevice(10, 10)
	s, _ := Open(dev)
	w := s.OpenWindow(0, 0, 0, 0, false)
	w.SetCursor(0, 9)

	var reason string
	s.OnFatal = func(msg string) { reason = msg }
	dev.height = 5
	s.UpdateGeometry()
	w.UpdateGeometry()

	if w.IsInside() {
		t.Error("cursor should be outside after shrink")
	}
	if w.AtBottomEdge() {
		t.Error("AtBottomEdge() = true for out of bounds cursor")
	}
	if reason == "" {
		t.Error("expected fatal callback")
	}
}

// =============================================================================
// Refresh and polling
// =============================================================================

func TestRefreshFlushesBuffer(t *testing.T) {
	s, dev := openScreen(t, 20, 4)
	w := s.OpenWindow(2, 0, 1, 0, false)
	w.SetCursor(3, 1)
	w.WriteStrColored("hi", ColorGreen)

	w.Refresh()

	if dev.presents != 1 {
		t.Errorf("presents = %d, want 1", dev.presents)
	}
	if got := dev.row(2); got != "     hi" {
		t.Errorf("device row = %q", got)
	}
	if dev.cells[[2]int{5, 2}].color != ColorGreen {
		t.Error("color not forwarded")
	}
	if dev.cursorX != 5 || dev.cursorY != 2 {
		t.Errorf("cursor = %d,%d, want 5,2", dev.cursorX, dev.cursorY)
	}
}

func TestRefreshWithoutColor(t *testing.T) {
	dev := newFakeDevice(10, 2)
	s, _ := Open(dev, WithColor(false))
	w := s.OpenWindow(0, 0, 0, 0, false)
	w.WriteStrColored("x", ColorRed)

	w.Refresh()

	if dev.cells[[2]int{0, 0}].color != ColorDefault {
		t.Error("color sent to monochrome screen")
	}
}

func TestRefreshDisabled(t *testing.T) {
	s, dev := openScreen(t, 10, 2)
	w := s.OpenWindow(0, 0, 0, 0, false)
	w.SetRefresh(false)

	w.Refresh()

	if dev.presents != 0 {
		t.Error("disabled window flushed")
	}
}

func TestPollKeyHandlesResize(t *testing.T) {
	s, dev := openScreen(t, 80, 24)
	w := s.OpenWindow(0, 1, 0, 1, false)

	var order []string
	s.PreResize = func() { order = append(order, "pre") }
	s.PostResize = func() {
		order = append(order, "post")
		if _, xMax, _, yMax := w.Bounds(); xMax != 38 || yMax != 8 {
			t.Errorf("post hook saw bounds %d,%d", xMax, yMax)
		}
	}

	dev.events = []Event{
		{Kind: EventResize},
		{Kind: EventKey, Key: KeyEnter},
	}
	dev.width, dev.height = 40, 10

	if got := s.PollKey(); got != KeyNewline {
		t.Errorf("PollKey() = %d, want newline", got)
	}
	if strings.Join(order, ",") != "pre,post" {
		t.Errorf("hook order = %v", order)
	}
	if s.Width() != 40 || s.Height() != 10 {
		t.Errorf("screen = %dx%d, want 40x10", s.Width(), s.Height())
	}
}

func TestPollKeyClosed(t *testing.T) {
	s, _ := openScreen(t, 10, 2)
	if got := s.PollKey(); got != KeyClosed {
		t.Errorf("PollKey() = %d, want KeyClosed", got)
	}
}

func TestClosedWindowSkipsResize(t *testing.T) {
	s, dev := openScreen(t, 20, 10)
	w := s.OpenWindow(0, 0, 0, 0, false)
	w.Close()

	dev.events = []Event{{Kind: EventResize}, {Kind: EventKey, Key: 'a'}}
	dev.width = 30
	s.PollKey()

	if _, xMax, _, _ := w.Bounds(); xMax != 19 {
		t.Errorf("closed window updated: xMax = %d", xMax)
	}
}

func TestScreenClose(t *testing.T) {
	s, dev := openScreen(t, 10, 2)
	s.Close()
	if !dev.closed {
		t.Error("device not closed")
	}
}

// =============================================================================
// Keys and character classes
// =============================================================================

func TestCtrl(t *testing.T) {
	tests := map[byte]Key{
		'a': KeyCtrlA,
		'E': KeyCtrlE,
		'g': KeyCtrlG,
		'k': KeyCtrlK,
		'1': KeyClosed,
	}
	for letter, want := range tests {
		if got := Ctrl(letter); got != want {
			t.Errorf("Ctrl(%q) = %d, want %d", letter, got, want)
		}
	}
}

func TestCharClasses(t *testing.T) {
	for b := range 256 {
		want := ClassCode
		switch {
		case b >= 32 && b <= 126:
			want = ClassText
		case b == '\t':
			want = ClassTab
		case b == '\n':
			want = ClassNewline
		}
		if got := ClassOf(byte(b)); got != want {
			t.Errorf("ClassOf(%d) = %d, want %d", b, got, want)
		}
	}
}
