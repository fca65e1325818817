package editor

import "fmt"

// EventType identifies a discrete input event.
type EventType int

const (
	EventUnknown   EventType = iota // Unrecognised input, ignored
	EventChar                       // Printable character in Rune
	EventNewline                    // Enter/Return
	EventTab                        // Tab, currently ignored
	EventBackspace                  // Delete backward
	EventDelete                     // Delete forward
	EventMove                       // Cursor move in Dir
	EventResize                     // Window resized to Rows x Cols
	EventEscape                     // Escape key
	EventInterrupt                  // Ctrl+C
	EventPaste                      // Several characters at once in Text
)

func (t EventType) String() string {
	switch t {
	case EventChar:
		return "char"
	case EventNewline:
		return "newline"
	case EventTab:
		return "tab"
	case EventBackspace:
		return "backspace"
	case EventDelete:
		return "delete"
	case EventMove:
		return "move"
	case EventResize:
		return "resize"
	case EventEscape:
		return "escape"
	case EventInterrupt:
		return "interrupt"
	case EventPaste:
		return "paste"
	}
	return "unknown"
}

// Direction is the target of an EventMove.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirHome
	DirEnd
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Event is a single input event delivered to an EditBox.
type Event struct {
	Type EventType
	Rune rune      // EventChar
	Dir  Direction // EventMove
	Rows int       // EventResize
	Cols int       // EventResize
	Text string    // EventPaste
}

// Char returns a character event.
func Char(r rune) Event { return Event{Type: EventChar, Rune: r} }

// Paste returns an event that inserts text, which may span several lines.
func Paste(text string) Event { return Event{Type: EventPaste, Text: text} }

// Move returns a cursor move event.
func Move(d Direction) Event { return Event{Type: EventMove, Dir: d} }

// Resize returns a resize event.
func Resize(rows, cols int) Event { return Event{Type: EventResize, Rows: rows, Cols: cols} }
