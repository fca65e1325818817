package terminal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Frame accumulates one screen update so it can be written in a single call.
// Rows and columns are 0-based.
type Frame struct {
	buf strings.Builder
}

// Begin hides the cursor and clears the screen.
func (f *Frame) Begin() {
	f.buf.WriteString("\x1b[?25l\x1b[2J\x1b[H")
}

// MoveTo positions the cursor.
func (f *Frame) MoveTo(row, col int) {
	fmt.Fprintf(&f.buf, "\x1b[%d;%dH", row+1, col+1)
}

// Text writes s at (row, col), clipped to width terminal cells. Grapheme
// clusters are kept whole; a wide cluster that would straddle the edge is
// dropped.
func (f *Frame) Text(row, col int, s string, width int) {
	f.MoveTo(row, col)
	f.buf.WriteString(Clip(s, width))
}

// Bold writes s in bold at (row, col), clipped to width cells.
func (f *Frame) Bold(row, col int, s string, width int) {
	f.MoveTo(row, col)
	f.buf.WriteString("\x1b[1m")
	f.buf.WriteString(Clip(s, width))
	f.buf.WriteString("\x1b[0m")
}

// Box draws a single-line border of rows x cols with its top-left corner at
// (row, col).
func (f *Frame) Box(row, col, rows, cols int) {
	if rows < 2 || cols < 2 {
		return
	}
	horiz := strings.Repeat("─", cols-2)
	f.MoveTo(row, col)
	f.buf.WriteString("┌" + horiz + "┐")
	for r := row + 1; r < row+rows-1; r++ {
		f.MoveTo(r, col)
		f.buf.WriteString("│")
		f.MoveTo(r, col+cols-1)
		f.buf.WriteString("│")
	}
	f.MoveTo(row+rows-1, col)
	f.buf.WriteString("└" + horiz + "┘")
}

// End places the visible cursor at (row, col).
func (f *Frame) End(row, col int) {
	f.MoveTo(row, col)
	f.buf.WriteString("\x1b[?25h")
}

// String returns the accumulated escape sequence.
func (f *Frame) String() string {
	return f.buf.String()
}

// Reset discards the accumulated frame.
func (f *Frame) Reset() {
	f.buf.Reset()
}

// Clip truncates s to at most width terminal cells without splitting a
// grapheme cluster.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > width {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	return sb.String()
}
