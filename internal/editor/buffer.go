package editor

import (
	"strings"
	"unicode"
)

// Buffer holds the text as a slice of hard lines plus a single cursor.
// Columns are rune offsets; the cursor may sit one past the last rune.
type Buffer struct {
	lines []string
	row   int
	col   int
}

func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Clear empties the buffer and puts the cursor back at the origin.
func (b *Buffer) Clear() {
	b.lines = []string{""}
	b.row, b.col = 0, 0
}

// Cursor returns the cursor location as (row, col).
func (b *Buffer) Cursor() (row, col int) {
	return b.row, b.col
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a line, or "" when idx is out of range.
func (b *Buffer) Line(idx int) string {
	if idx < 0 || idx >= len(b.lines) {
		return ""
	}
	return b.lines[idx]
}

// LineLen returns the rune-length of a given line.
func (b *Buffer) LineLen(idx int) int {
	if idx < 0 || idx >= len(b.lines) {
		return 0
	}
	return len([]rune(b.lines[idx]))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Contents joins the lines with newlines.
func (b *Buffer) Contents() string {
	return strings.Join(b.lines, "\n")
}

// MoveCursor sets the cursor, clamping the row first and then the column
// against the length of the clamped row.
func (b *Buffer) MoveCursor(row, col int) {
	maxRow := len(b.lines) - 1
	row = max(0, min(row, maxRow))
	col = max(0, min(col, b.LineLen(row)))
	b.row, b.col = row, col
}

func (b *Buffer) MoveUp() {
	b.MoveCursor(b.row-1, b.col)
}

func (b *Buffer) MoveDown() {
	b.MoveCursor(b.row+1, b.col)
}

// MoveLeft steps one rune left, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft() {
	switch {
	case b.col > 0:
		b.MoveCursor(b.row, b.col-1)
	case b.row > 0:
		b.MoveCursor(b.row-1, b.LineLen(b.row-1))
	}
}

// MoveRight steps one rune right, wrapping to the start of the next line.
func (b *Buffer) MoveRight() {
	switch {
	case b.col < b.LineLen(b.row):
		b.MoveCursor(b.row, b.col+1)
	case b.row < len(b.lines)-1:
		b.MoveCursor(b.row+1, 0)
	}
}

func (b *Buffer) MoveHome() {
	b.MoveCursor(b.row, 0)
}

func (b *Buffer) MoveEnd() {
	b.MoveCursor(b.row, b.LineLen(b.row))
}

// InsertChar inserts a character at the cursor. A newline splits the line;
// control and format runes such as tab are ignored.
func (b *Buffer) InsertChar(ch rune) {
	if ch == '\n' {
		b.SplitLine()
		return
	}
	if !unicode.IsGraphic(ch) {
		return
	}
	b.insertRun([]rune{ch})
}

// InsertString inserts s at the cursor, splitting lines at every newline.
// Each run between newlines is spliced in a single step.
func (b *Buffer) InsertString(s string) {
	run := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.insertRun(run)
			run = run[:0]
			b.SplitLine()
		case unicode.IsGraphic(r):
			run = append(run, r)
		}
	}
	b.insertRun(run)
}

// insertRun splices runes into the current line. Assumes no newlines.
func (b *Buffer) insertRun(run []rune) {
	if len(run) == 0 {
		return
	}
	runes := []rune(b.lines[b.row])
	newRunes := make([]rune, 0, len(runes)+len(run))
	newRunes = append(newRunes, runes[:b.col]...)
	newRunes = append(newRunes, run...)
	newRunes = append(newRunes, runes[b.col:]...)
	b.lines[b.row] = string(newRunes)
	b.MoveCursor(b.row, b.col+len(run))
}

// SplitLine breaks the current line at the cursor. The right half becomes
// a new line below and the cursor moves to its start.
func (b *Buffer) SplitLine() {
	runes := []rune(b.lines[b.row])
	before := string(runes[:b.col])
	after := string(runes[b.col:])
	b.lines[b.row] = before
	// Insert new line after.
	newLines := make([]string, 0, len(b.lines)+1)
	newLines = append(newLines, b.lines[:b.row+1]...)
	newLines = append(newLines, after)
	newLines = append(newLines, b.lines[b.row+1:]...)
	b.lines = newLines
	b.MoveCursor(b.row+1, 0)
}

// Backspace deletes the rune before the cursor. At the start of a line the
// line is joined onto the previous one.
func (b *Buffer) Backspace() {
	if b.col > 0 {
		runes := []rune(b.lines[b.row])
		b.lines[b.row] = string(runes[:b.col-1]) + string(runes[b.col:])
		b.MoveCursor(b.row, b.col-1)
		return
	}
	if b.row == 0 {
		return
	}
	prevLen := b.LineLen(b.row - 1)
	b.joinLines(b.row - 1)
	b.MoveCursor(b.row-1, prevLen)
}

// Delete removes the rune under the cursor. At the end of a line the next
// line is pulled up onto the current one.
func (b *Buffer) Delete() {
	runes := []rune(b.lines[b.row])
	if b.col < len(runes) {
		b.lines[b.row] = string(runes[:b.col]) + string(runes[b.col+1:])
		return
	}
	b.joinLines(b.row)
}

// joinLines joins line[idx] with line[idx+1].
func (b *Buffer) joinLines(idx int) {
	if idx < 0 || idx+1 >= len(b.lines) {
		return
	}
	b.lines[idx] += b.lines[idx+1]
	b.lines = append(b.lines[:idx+1], b.lines[idx+2:]...)
}
