package editor

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func checkVisible(t *testing.T, v *Viewport, b *Buffer) {
	t.Helper()
	rows, cols := v.Size()
	sr, sc := v.Scroll()
	row, col := b.Cursor()
	if row < sr || row >= sr+rows {
		t.Fatalf("cursor row %d outside [%d, %d)", row, sr, sr+rows)
	}
	if col < sc || col >= sc+cols {
		t.Fatalf("cursor col %d outside [%d, %d)", col, sc, sc+cols)
	}
}

func TestNewViewportClampsSize(t *testing.T) {
	v := NewViewport(NewBuffer(), 0, -3)
	rows, cols := v.Size()
	if rows != 1 || cols != 1 {
		t.Errorf("size = %dx%d, want 1x1", rows, cols)
	}
	if !v.IsDirty() {
		t.Error("new viewport should be dirty")
	}
}

func TestScrollStepsOneRowPerMove(t *testing.T) {
	b := newBufferWith(numberedLines(10), 0, 0)
	v := NewViewport(b, 5, 20)

	wantScroll := []int{0, 0, 0, 0, 1, 2, 3, 4, 5}
	for i, want := range wantScroll {
		b.MoveDown()
		v.CursorMoved()
		sr, _ := v.Scroll()
		if sr != want {
			t.Errorf("after move %d (cursor row %d): scroll row = %d, want %d", i+1, i+1, sr, want)
		}
	}
	sr, _ := v.Scroll()
	if sr != 5 {
		t.Errorf("final scroll row = %d, want 5", sr)
	}
}

func TestScrollUpStepsOneRow(t *testing.T) {
	b := newBufferWith(numberedLines(10), 9, 0)
	v := NewViewport(b, 5, 20)
	if sr, _ := v.Scroll(); sr != 5 {
		t.Fatalf("initial scroll row = %d, want 5", sr)
	}
	for i := 0; i < 4; i++ {
		b.MoveUp()
		v.CursorMoved()
	}
	if sr, _ := v.Scroll(); sr != 5 {
		t.Errorf("cursor inside window should not scroll, got %d", sr)
	}
	b.MoveUp()
	v.CursorMoved()
	if sr, _ := v.Scroll(); sr != 4 {
		t.Errorf("scroll row = %d, want 4", sr)
	}
}

func TestJumpScrollsJustEnough(t *testing.T) {
	b := newBufferWith(numberedLines(50), 0, 0)
	v := NewViewport(b, 10, 20)
	b.MoveCursor(30, 0)
	v.CursorMoved()
	if sr, _ := v.Scroll(); sr != 21 {
		t.Errorf("scroll row = %d, want 21", sr)
	}
	b.MoveCursor(3, 0)
	v.CursorMoved()
	if sr, _ := v.Scroll(); sr != 3 {
		t.Errorf("scroll row = %d, want 3", sr)
	}
}

func TestHorizontalScrollRecenters(t *testing.T) {
	b := newBufferWith(strings.Repeat("x", 100), 0, 0)
	v := NewViewport(b, 3, 10)

	for i := 0; i < 9; i++ {
		b.MoveRight()
		v.CursorMoved()
	}
	if _, sc := v.Scroll(); sc != 0 {
		t.Fatalf("cursor inside window should not scroll, got %d", sc)
	}

	b.MoveRight() // col 10 leaves the window
	v.CursorMoved()
	if _, sc := v.Scroll(); sc != 5 {
		t.Errorf("scroll col = %d, want 5 (cursor centred)", sc)
	}
	if _, col := v.ScreenCursor(); col != 5 {
		t.Errorf("screen col = %d, want 5", col)
	}

	b.MoveCursor(0, 2)
	v.CursorMoved()
	if _, sc := v.Scroll(); sc != 0 {
		t.Errorf("scroll col = %d, want 0", sc)
	}
}

func TestShortLineResetsColumnScroll(t *testing.T) {
	b := newBufferWith(strings.Repeat("y", 40)+"\nab", 0, 40)
	v := NewViewport(b, 5, 10)
	if _, sc := v.Scroll(); sc == 0 {
		t.Fatal("expected horizontal scroll on long line")
	}
	b.MoveDown()
	v.CursorMoved()
	if _, sc := v.Scroll(); sc != 0 {
		t.Errorf("scroll col = %d, want 0 on a line that fits", sc)
	}
}

func TestResize(t *testing.T) {
	b := newBufferWith(numberedLines(20), 15, 0)
	v := NewViewport(b, 5, 20)
	v.ClearDirty()

	if v.Resize(5, 20) {
		t.Error("same size should report no change")
	}
	if v.IsDirty() {
		t.Error("same size should not mark dirty")
	}

	if !v.Resize(3, 20) {
		t.Error("new size should report change")
	}
	if !v.IsDirty() {
		t.Error("resize should mark dirty")
	}
	checkVisible(t, v, b)

	v.Resize(30, 20)
	if sr, _ := v.Scroll(); sr != 0 {
		t.Errorf("window taller than buffer should reset scroll, got %d", sr)
	}
}

func TestVisibleLines(t *testing.T) {
	b := newBufferWith("abcdefgh\nij\nklmnopqr\nst", 0, 0)
	v := NewViewport(b, 3, 4)
	got := slices.Collect(v.VisibleLines())
	want := []string{"abcd", "ij", "klmn"}
	if !slices.Equal(got, want) {
		t.Errorf("visible = %q, want %q", got, want)
	}

	// Restartable.
	again := slices.Collect(v.VisibleLines())
	if !slices.Equal(again, want) {
		t.Errorf("second pass = %q, want %q", again, want)
	}

	b.MoveCursor(2, 8)
	v.CursorMoved()
	got = slices.Collect(v.VisibleLines())
	want = []string{"gh", "", "qr"}
	if !slices.Equal(got, want) {
		t.Errorf("scrolled visible = %q, want %q", got, want)
	}
}

func TestVisibleLinesStopsEarly(t *testing.T) {
	b := newBufferWith(numberedLines(10), 0, 0)
	v := NewViewport(b, 5, 20)
	n := 0
	for range v.VisibleLines() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("n = %d", n)
	}
}

func TestScreenCursor(t *testing.T) {
	b := newBufferWith(numberedLines(10), 0, 0)
	v := NewViewport(b, 4, 20)
	b.MoveCursor(6, 3)
	v.CursorMoved()
	row, col := v.ScreenCursor()
	if row != 3 || col != 3 {
		t.Errorf("screen cursor = (%d, %d), want (3, 3)", row, col)
	}
}

func TestDirtyTracksCursor(t *testing.T) {
	b := newBufferWith("abc", 0, 0)
	v := NewViewport(b, 3, 10)
	v.ClearDirty()

	v.CursorMoved()
	if v.IsDirty() {
		t.Error("no change should leave viewport clean")
	}
	b.MoveRight()
	v.CursorMoved()
	if !v.IsDirty() {
		t.Error("cursor move should mark dirty")
	}
}

func TestTwoViewportsShareBuffer(t *testing.T) {
	b := newBufferWith(numberedLines(10), 8, 0)
	tall := NewViewport(b, 10, 20)
	short := NewViewport(b, 2, 20)
	if sr, _ := tall.Scroll(); sr != 0 {
		t.Errorf("tall scroll = %d", sr)
	}
	if sr, _ := short.Scroll(); sr != 7 {
		t.Errorf("short scroll = %d, want 7", sr)
	}
}

func TestViewportInvariantUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBuffer()
	v := NewViewport(b, 4, 6)
	for i := 0; i < 5000; i++ {
		switch rng.Intn(10) {
		case 0:
			v.Resize(rng.Intn(8)+1, rng.Intn(12)+1)
		case 1:
			b.InsertChar('\n')
		case 2:
			b.Backspace()
		case 3:
			b.Delete()
		case 4:
			b.MoveUp()
		case 5:
			b.MoveDown()
		case 6:
			b.MoveLeft()
		case 7:
			b.MoveRight()
		case 8:
			b.MoveCursor(rng.Intn(40), rng.Intn(40))
		default:
			b.InsertString(strings.Repeat("w", rng.Intn(15)))
		}
		v.CursorMoved()
		checkVisible(t, v, b)
	}
}

// twoCells treats every non-ASCII rune as double width.
func twoCells(r rune) int {
	if r < 0x80 {
		return 1
	}
	return 2
}

func TestWideRunesScrollByCells(t *testing.T) {
	b := NewBuffer()
	v := NewViewport(b, 3, 10)
	v.SetRuneWidth(twoCells)

	for i := 0; i < 4; i++ {
		b.InsertChar('日')
		v.CursorMoved()
	}
	// Eight cells of text plus the caret cell still fit.
	if _, sc := v.Scroll(); sc != 0 {
		t.Fatalf("scroll col = %d, want 0", sc)
	}
	if _, col := v.ScreenCursor(); col != 8 {
		t.Errorf("screen col = %d, want 8", col)
	}

	b.InsertChar('日')
	v.CursorMoved()
	_, sc := v.Scroll()
	if sc != 3 {
		t.Errorf("scroll col = %d, want 3", sc)
	}
	if _, col := v.ScreenCursor(); col != 4 {
		t.Errorf("screen col = %d, want 4", col)
	}
	got := slices.Collect(v.VisibleLines())
	if !slices.Equal(got, []string{"日日"}) {
		t.Errorf("visible = %q", got)
	}
}

func TestWideRuneNotSplitAtEdge(t *testing.T) {
	b := newBufferWith("abc日日日", 0, 0)
	v := NewViewport(b, 1, 6)
	v.SetRuneWidth(twoCells)
	got := slices.Collect(v.VisibleLines())
	// A fifth cell is free but the next wide rune needs two.
	if !slices.Equal(got, []string{"abc日"}) {
		t.Errorf("visible = %q, want [abc日]", got)
	}
}

func TestWideCursorInvariantUnderRandomMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := newBufferWith(strings.Repeat("a日b本", 20)+"\n"+strings.Repeat("語", 30), 0, 0)
	v := NewViewport(b, 2, 7)
	v.SetRuneWidth(twoCells)
	for i := 0; i < 2000; i++ {
		b.MoveCursor(rng.Intn(2), rng.Intn(90))
		v.CursorMoved()
		_, col := v.ScreenCursor()
		row, c := b.Cursor()
		w := 1
		if c < b.LineLen(row) {
			w = twoCells([]rune(b.Line(row))[c])
		}
		if col < 0 || col+w > 7 {
			t.Fatalf("step %d: cursor (%d, %d) at cell %d (width %d) outside 7 cells", i, row, c, col, w)
		}
	}
}

func TestShrinkPullsScrollBack(t *testing.T) {
	b := newBufferWith(strings.Repeat("\n", 9), 9, 0)
	v := NewViewport(b, 5, 20)
	if sr, _ := v.Scroll(); sr != 5 {
		t.Fatalf("initial scroll row = %d, want 5", sr)
	}
	for i := 0; i < 3; i++ {
		b.Backspace()
		v.CursorMoved()
	}
	checkCursor(t, b, 6, 0)
	if sr, _ := v.Scroll(); sr != 2 {
		t.Errorf("scroll row = %d, want 2", sr)
	}
	if n := len(slices.Collect(v.VisibleLines())); n != 5 {
		t.Errorf("visible rows = %d, want 5", n)
	}
}
