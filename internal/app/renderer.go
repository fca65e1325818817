package app

import (
	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/evdoc/internal/editor"
	"github.com/JackWReid/evdoc/internal/terminal"
)

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	frame terminal.Frame
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: title, bordered editor, prompt row and
// the caret of the focused box.
func (r *Renderer) RenderFrame(
	l Layout,
	title string,
	status string,
	ed *editor.EditBox,
	pr *editor.EditBox,
	focus Focus,
) string {
	r.frame.Reset()
	r.frame.Begin()

	titleCol := max((l.Title.Cols-runewidth.StringWidth(title))/2, 0)
	r.frame.Bold(l.Title.Row, titleCol, title, l.Title.Cols-titleCol)

	r.frame.Box(l.Frame.Row, l.Frame.Col, l.Frame.Rows, l.Frame.Cols)
	r.drawBox(l.Editor, ed)

	// The prompt row doubles as the status line while it is not in use.
	if status != "" && focus != FocusPrompt {
		r.frame.Text(l.Prompt.Row, l.Prompt.Col, status, l.Prompt.Cols)
	} else {
		r.drawBox(l.Prompt, pr)
	}

	switch focus {
	case FocusPrompt:
		r.placeCursor(l.Prompt, pr)
	default:
		r.placeCursor(l.Editor, ed)
	}
	return r.frame.String()
}

// drawBox paints the visible lines of box inside rect.
func (r *Renderer) drawBox(rect Rect, box *editor.EditBox) {
	i := 0
	for line := range box.Viewport().VisibleLines() {
		r.frame.Text(rect.Row+i, rect.Col, line, rect.Cols)
		i++
	}
}

func (r *Renderer) placeCursor(rect Rect, box *editor.EditBox) {
	row, col := box.Viewport().ScreenCursor()
	r.frame.End(rect.Row+row, rect.Col+col)
}
