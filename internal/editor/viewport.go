package editor

import "iter"

// Document is the read-only view of a Buffer that a Viewport needs.
// Several viewports may share one document; none of them can edit it.
type Document interface {
	Cursor() (row, col int)
	LineCount() int
	Line(idx int) string
	LineLen(idx int) int
}

// Viewport manages the visible window into a document and the scroll
// offset that keeps the cursor inside it.
type Viewport struct {
	doc Document

	rows int
	cols int

	scrollRow int
	scrollCol int

	// Last cursor seen by CursorMoved, used to decide whether a repaint is due.
	cursorRow int
	cursorCol int

	dirty bool

	// runeWidth gives the number of terminal cells a rune occupies.
	runeWidth func(rune) int
}

func oneCell(rune) int { return 1 }

func NewViewport(doc Document, rows, cols int) *Viewport {
	v := &Viewport{
		doc:   doc,
		rows:  max(rows, 1),
		cols:  max(cols, 1),
		dirty: true,

		runeWidth: oneCell,
	}
	v.cursorRow, v.cursorCol = doc.Cursor()
	v.CursorMoved()
	return v
}

// Size returns the window size as (rows, cols).
func (v *Viewport) Size() (rows, cols int) {
	return v.rows, v.cols
}

// Scroll returns the top-left document coordinate currently shown.
func (v *Viewport) Scroll() (row, col int) {
	return v.scrollRow, v.scrollCol
}

// Resize updates the window size. Sizes below one are raised to one.
// Returns true if the size changed.
func (v *Viewport) Resize(rows, cols int) bool {
	rows, cols = max(rows, 1), max(cols, 1)
	if rows == v.rows && cols == v.cols {
		return false
	}
	v.rows, v.cols = rows, cols
	v.dirty = true
	v.CursorMoved()
	return true
}

// SetRuneWidth changes how many cells each rune takes on screen, for
// example runewidth.RuneWidth for East Asian wide characters. Nil restores
// one cell per rune.
func (v *Viewport) SetRuneWidth(fn func(rune) int) {
	if fn == nil {
		fn = oneCell
	}
	v.runeWidth = fn
	v.dirty = true
	v.CursorMoved()
}

// CursorMoved recomputes the scroll offset after an edit or cursor move.
// Vertical scrolling moves just far enough to reveal the cursor, which is a
// single row for a single-line step. Horizontal scrolling re-centers the
// cursor once it leaves the window.
func (v *Viewport) CursorMoved() {
	row, col := v.doc.Cursor()
	sr, sc := v.scrollRow, v.scrollCol

	switch {
	case v.doc.LineCount() <= v.rows:
		sr = 0
	case row < sr:
		sr = row
	case row >= sr+v.rows:
		sr = row - v.rows + 1
	}
	// Never leave blank rows below the last line after the document shrinks.
	sr = min(sr, max(v.doc.LineCount()-v.rows, 0))

	sc = v.horizontalScroll([]rune(v.doc.Line(row)), col, sc)

	if sr != v.scrollRow || sc != v.scrollCol || row != v.cursorRow || col != v.cursorCol {
		v.dirty = true
	}
	v.scrollRow, v.scrollCol = sr, sc
	v.cursorRow, v.cursorCol = row, col
}

// horizontalScroll returns the rune offset of the first visible column so
// that the cursor cell at col fits in the window. Widths are in cells.
func (v *Viewport) horizontalScroll(line []rune, col, sc int) int {
	if v.cells(line) < v.cols {
		return 0
	}
	cursor := v.cursorCells(line, col)
	if col >= sc && sc <= len(line) && v.cells(line[sc:col])+cursor <= v.cols {
		return sc
	}

	// Re-center: put the cursor about half a window from the left edge.
	budget := max(min(v.cols/2, v.cols-cursor), 0)
	sc, used := col, 0
	for sc > 0 {
		w := v.runeWidth(line[sc-1])
		if used+w > budget {
			break
		}
		used += w
		sc--
	}
	return sc
}

// cursorCells is the width of the cell under the cursor. The cell past the
// end of the line is one wide.
func (v *Viewport) cursorCells(line []rune, col int) int {
	if col >= len(line) {
		return 1
	}
	return max(v.runeWidth(line[col]), 1)
}

func (v *Viewport) cells(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += v.runeWidth(r)
	}
	return n
}

// VisibleLines yields at most rows lines starting at the scroll row, each
// cut to the runes that fit in cols cells. The sequence can be ranged over
// any number of times.
func (v *Viewport) VisibleLines() iter.Seq[string] {
	return func(yield func(string) bool) {
		end := min(v.scrollRow+v.rows, v.doc.LineCount())
		for i := v.scrollRow; i < end; i++ {
			if !yield(v.clip(v.doc.Line(i))) {
				return
			}
		}
	}
}

// ScreenCursor returns the cursor position relative to the window. The
// column is counted in cells.
func (v *Viewport) ScreenCursor() (row, col int) {
	r, c := v.doc.Cursor()
	line := []rune(v.doc.Line(r))
	if c < v.scrollCol || v.scrollCol > len(line) {
		return r - v.scrollRow, c - v.scrollCol
	}
	return r - v.scrollRow, v.cells(line[v.scrollCol:min(c, len(line))])
}

// IsDirty reports whether the window needs a repaint.
func (v *Viewport) IsDirty() bool { return v.dirty }

// MarkDirty flags a repaint, e.g. after an edit that left the cursor in place.
func (v *Viewport) MarkDirty() { v.dirty = true }

// ClearDirty is called by the painter once the window has been drawn.
func (v *Viewport) ClearDirty() { v.dirty = false }

// clip returns the part of s from the scroll column that fits in the
// window. A wide rune that would straddle the right edge is left out.
func (v *Viewport) clip(s string) string {
	runes := []rune(s)
	if v.scrollCol >= len(runes) {
		return ""
	}
	runes = runes[v.scrollCol:]
	used := 0
	for i, r := range runes {
		used += v.runeWidth(r)
		if used > v.cols {
			return string(runes[:i])
		}
	}
	return string(runes)
}
