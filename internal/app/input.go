package app

import (
	"github.com/JackWReid/evdoc/internal/editor"
	"github.com/JackWReid/evdoc/internal/terminal"
)

// translateKey maps a decoded keypress onto the editor's event vocabulary.
func translateKey(k terminal.Key) editor.Event {
	switch k.Type {
	case terminal.KeyRune:
		return editor.Char(k.Rune)
	case terminal.KeyPaste:
		return editor.Paste(k.Text)
	case terminal.KeyEnter:
		return editor.Event{Type: editor.EventNewline}
	case terminal.KeyTab:
		return editor.Event{Type: editor.EventTab}
	case terminal.KeyBackspace:
		return editor.Event{Type: editor.EventBackspace}
	case terminal.KeyDelete:
		return editor.Event{Type: editor.EventDelete}
	case terminal.KeyEscape:
		return editor.Event{Type: editor.EventEscape}
	case terminal.KeyCtrlC:
		return editor.Event{Type: editor.EventInterrupt}
	case terminal.KeyUp:
		return editor.Move(editor.DirUp)
	case terminal.KeyDown:
		return editor.Move(editor.DirDown)
	case terminal.KeyLeft:
		return editor.Move(editor.DirLeft)
	case terminal.KeyRight:
		return editor.Move(editor.DirRight)
	case terminal.KeyHome:
		return editor.Move(editor.DirHome)
	case terminal.KeyEnd:
		return editor.Move(editor.DirEnd)
	}
	return editor.Event{Type: editor.EventUnknown}
}
