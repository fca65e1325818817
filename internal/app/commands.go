package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/sajari/fuzzy"
)

// commandNames are the long forms known to the prompt; the fuzzy model is
// trained on these to suggest a correction for typos.
var commandNames = []string{"quit", "write", "clear", "help"}

const helpText = "commands: quit | write <path> | clear | help"

// CommandSuggester proposes the closest known command for a mistyped one.
type CommandSuggester struct {
	model *fuzzy.Model
}

func NewCommandSuggester() *CommandSuggester {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(commandNames)
	return &CommandSuggester{model: model}
}

// Suggest returns the closest known command, or "" when nothing is close.
func (c *CommandSuggester) Suggest(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	return c.model.SpellCheck(word)
}

// executeCommand runs one line entered at the prompt.
func (a *App) executeCommand(cmd string) {
	cmd = strings.TrimSpace(cmd)
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)

	if a.logger != nil {
		a.logger.Info("command", "name", name, "arg", arg)
	}

	switch name {
	case "":
		return

	case "q", "quit":
		a.quit = true

	case "w", "write":
		a.write(arg)

	case "clear":
		a.editor.Clear()

	case "help":
		a.statusBar.SetMessage(helpText)

	default:
		msg := fmt.Sprintf("unknown command %q", name)
		if s := a.suggester.Suggest(name); s != "" && s != name {
			msg += fmt.Sprintf(", did you mean %q?", s)
		}
		a.statusBar.SetMessage(msg)
	}
}

// write saves the editor contents to path, or to the last path written when
// path is empty.
func (a *App) write(path string) {
	if path == "" {
		path = a.filename
	}
	if path == "" {
		a.statusBar.SetMessage("usage: write <path>")
		return
	}
	buf := a.editor.Buffer()
	content := buf.Contents() + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		if a.logger != nil {
			a.logger.Error("write failed", "path", path, "err", err)
		}
		a.statusBar.SetMessage(fmt.Sprintf("write %s: %v", path, err))
		return
	}
	a.filename = path
	a.statusBar.SetMessage(fmt.Sprintf("wrote %d lines to %s", buf.LineCount(), path))
}
