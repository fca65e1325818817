package editor

import (
	"log/slog"
	"strings"
)

// EditBox pairs a Buffer with a Viewport over it and the set of events
// that end an edit session. The main editor and the one-line prompt are
// both EditBoxes that differ only in geometry and terminators.
type EditBox struct {
	buf         *Buffer
	view        *Viewport
	terminators map[EventType]bool
	logger      *slog.Logger
}

// Option configures an EditBox.
type Option func(*EditBox)

// WithLogger sends a debug record for every handled event to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *EditBox) { e.logger = logger }
}

// WithRuneWidth measures runes in terminal cells with fn when scrolling and
// clipping, so wide characters stay inside the window.
func WithRuneWidth(fn func(rune) int) Option {
	return func(e *EditBox) { e.view.SetRuneWidth(fn) }
}

// NewEditBox creates an empty box with a rows x cols window.
func NewEditBox(rows, cols int, terminators []EventType, opts ...Option) *EditBox {
	buf := NewBuffer()
	e := &EditBox{
		buf:         buf,
		view:        NewViewport(buf, rows, cols),
		terminators: make(map[EventType]bool, len(terminators)),
	}
	for _, t := range terminators {
		e.terminators[t] = true
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEditor creates the main document box. Escape hands control back to
// the caller.
func NewEditor(rows, cols int, opts ...Option) *EditBox {
	return NewEditBox(rows, cols, []EventType{EventEscape, EventInterrupt}, opts...)
}

// NewPrompt creates a single-line command box. Enter and Escape both end it.
func NewPrompt(cols int, opts ...Option) *EditBox {
	return NewEditBox(1, cols, []EventType{EventEscape, EventNewline, EventInterrupt}, opts...)
}

func (e *EditBox) Buffer() *Buffer { return e.buf }

func (e *EditBox) Viewport() *Viewport { return e.view }

// Contents returns the box text as a single string.
func (e *EditBox) Contents() string {
	return e.buf.Contents()
}

// Clear empties the box and schedules a repaint.
func (e *EditBox) Clear() {
	e.buf.Clear()
	e.view.CursorMoved()
	e.view.MarkDirty()
}

// IsTerminator reports whether t ends an edit session in this box.
func (e *EditBox) IsTerminator(t EventType) bool {
	return e.terminators[t]
}

// Handle applies one event. It returns true, without touching the buffer,
// when the event is one of the box's terminators.
func (e *EditBox) Handle(ev Event) bool {
	if e.logger != nil {
		e.logger.Debug("event", "type", ev.Type.String(), "code", int(ev.Rune))
	}
	if e.terminators[ev.Type] {
		return true
	}

	edited := false
	switch ev.Type {
	case EventChar:
		edited = e.insert(func() { e.buf.InsertChar(ev.Rune) })
	case EventPaste:
		text := ev.Text
		if e.terminators[EventNewline] {
			// Single-line box: a pasted line break must not split it.
			text = strings.ReplaceAll(text, "\n", "")
		}
		edited = e.insert(func() { e.buf.InsertString(text) })
	case EventNewline:
		e.buf.InsertChar('\n')
		edited = true
	case EventBackspace:
		e.buf.Backspace()
		edited = true
	case EventDelete:
		e.buf.Delete()
		edited = true
	case EventMove:
		e.move(ev.Dir)
	case EventResize:
		e.view.Resize(ev.Rows, ev.Cols)
		return false
	default:
		// Tab and anything unrecognised.
		return false
	}

	e.view.CursorMoved()
	if edited {
		e.view.MarkDirty()
	}
	return false
}

// insert runs an insertion and reports whether it changed the buffer.
// Insertions only grow the buffer, so a cursor that did not move means
// every rune was dropped.
func (e *EditBox) insert(fn func()) bool {
	row, col := e.buf.Cursor()
	fn()
	r, c := e.buf.Cursor()
	return r != row || c != col
}

func (e *EditBox) move(d Direction) {
	switch d {
	case DirUp:
		e.buf.MoveUp()
	case DirDown:
		e.buf.MoveDown()
	case DirLeft:
		e.buf.MoveLeft()
	case DirRight:
		e.buf.MoveRight()
	case DirHome:
		e.buf.MoveHome()
	case DirEnd:
		e.buf.MoveEnd()
	}
}
