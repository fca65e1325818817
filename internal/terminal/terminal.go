package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal manages raw mode, alternate screen buffer, and terminal dimensions.
type Terminal struct {
	in       *os.File
	out      io.Writer
	outFd    int
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal
}

// NewTerminal puts stdin into raw mode and switches stdout to the
// alternate screen.
func NewTerminal() (*Terminal, error) {
	t := Open(os.Stdin, os.Stdout, 0, 0)
	t.outFd = int(os.Stdout.Fd())

	// Switch to raw mode.
	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	t.oldState = oldState

	// Enter alternate screen buffer and hide cursor during setup.
	io.WriteString(t.out, "\x1b[?1049h\x1b[?25l")

	// Query size.
	t.width, t.height, err = term.GetSize(t.outFd)
	if err != nil {
		t.Restore()
		return nil, fmt.Errorf("terminal size: %w", err)
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, unix.SIGWINCH)

	return t, nil
}

// Open wraps in and out as a width x height terminal without changing any
// terminal modes or listening for resizes. It suits input that is not a TTY,
// such as a pipe.
func Open(in *os.File, out io.Writer, width, height int) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		outFd:  -1,
		width:  width,
		height: height,
	}
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	if t.outFd < 0 {
		return false
	}
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

// Width returns the current terminal width.
func (t *Terminal) Width() int { return t.width }

// Height returns the current terminal height.
func (t *Terminal) Height() int { return t.height }

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Write sends a complete frame to the terminal.
func (t *Terminal) Write(frame string) error {
	_, err := io.WriteString(t.out, frame)
	return err
}

// Restore returns the terminal to its original state.
func (t *Terminal) Restore() error {
	// Show cursor and leave alternate screen buffer.
	io.WriteString(t.out, "\x1b[?25h\x1b[?1049l")
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
	if t.oldState != nil {
		if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// ReadKey reads a single keypress from stdin in raw mode.
func (t *Terminal) ReadKey() (Key, error) {
	buf := make([]byte, 16)
	n, err := t.in.Read(buf)
	if err != nil {
		return Key{}, err
	}
	return parseKey(buf[:n]), nil
}
