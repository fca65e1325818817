package app

import (
	"log/slog"

	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/evdoc/internal/editor"
)

// Title is shown centred on the top row.
const Title = "evdoc"

// Focus says which box receives input.
type Focus int

const (
	FocusEditor Focus = iota
	FocusPrompt
)

// App routes input events to the editor or the prompt and owns everything
// needed to paint a frame. It has no terminal of its own; see Session.
type App struct {
	layout Layout
	editor *editor.EditBox
	prompt *editor.EditBox
	focus  Focus

	statusBar *StatusBar
	suggester *CommandSuggester
	renderer  *Renderer
	logger    *slog.Logger

	filename    string // Last path written by the write command.
	chromeDirty bool   // Title, border or status row need repainting.
	quit        bool
}

// NewApp lays out a width x height terminal. logger may be nil, in which
// case nothing is logged.
func NewApp(width, height int, logger *slog.Logger) *App {
	l := NewLayout(width, height)
	opts := []editor.Option{editor.WithRuneWidth(runewidth.RuneWidth)}
	if logger != nil {
		opts = append(opts, editor.WithLogger(logger))
	}
	return &App{
		layout:      l,
		editor:      editor.NewEditor(l.Editor.Rows, l.Editor.Cols, opts...),
		prompt:      editor.NewPrompt(l.Prompt.Cols, opts...),
		focus:       FocusEditor,
		statusBar:   &StatusBar{},
		suggester:   NewCommandSuggester(),
		renderer:    NewRenderer(),
		logger:      logger,
		chromeDirty: true,
	}
}

// Editor returns the main document box.
func (a *App) Editor() *editor.EditBox { return a.editor }

// Prompt returns the command box.
func (a *App) Prompt() *editor.EditBox { return a.prompt }

// Focus returns the box currently receiving input.
func (a *App) Focus() Focus { return a.focus }

// Layout returns the current screen layout.
func (a *App) Layout() Layout { return a.layout }

// Quit reports whether the app has been asked to exit.
func (a *App) Quit() bool { return a.quit }

// HandleEvent processes a single input event to completion.
func (a *App) HandleEvent(ev editor.Event) {
	switch ev.Type {
	case editor.EventInterrupt:
		a.quit = true
		return
	case editor.EventResize:
		a.Resize(ev.Cols, ev.Rows)
		return
	}

	if a.statusBar.ClearMessage() {
		a.chromeDirty = true
	}

	switch a.focus {
	case FocusEditor:
		if a.editor.Handle(ev) && ev.Type == editor.EventEscape {
			a.setFocus(FocusPrompt)
		}
	case FocusPrompt:
		if !a.prompt.Handle(ev) {
			return
		}
		cmd := a.prompt.Contents()
		a.prompt.Clear()
		a.setFocus(FocusEditor)
		if ev.Type == editor.EventNewline {
			a.executeCommand(cmd)
		}
	}
}

// Resize recomputes the layout for a new terminal size and resizes both
// boxes to match.
func (a *App) Resize(width, height int) {
	l := NewLayout(width, height)
	if l == a.layout {
		return
	}
	if a.logger != nil {
		a.logger.Debug("resize", "width", width, "height", height)
	}
	a.layout = l
	a.editor.Handle(editor.Resize(l.Editor.Rows, l.Editor.Cols))
	a.prompt.Handle(editor.Resize(l.Prompt.Rows, l.Prompt.Cols))
	a.chromeDirty = true
}

func (a *App) setFocus(f Focus) {
	if a.focus != f {
		a.focus = f
		a.chromeDirty = true
	}
}

// NeedsRedraw reports whether anything on screen is stale.
func (a *App) NeedsRedraw() bool {
	return a.chromeDirty || a.editor.Viewport().IsDirty() || a.prompt.Viewport().IsDirty()
}

// Render paints a full frame and clears every dirty flag.
func (a *App) Render() string {
	frame := a.renderer.RenderFrame(a.layout, Title, a.statusBar.Message, a.editor, a.prompt, a.focus)
	a.chromeDirty = false
	a.editor.Viewport().ClearDirty()
	a.prompt.Viewport().ClearDirty()
	return frame
}
