package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JackWReid/evdoc/internal/editor"
	"github.com/JackWReid/evdoc/internal/terminal"
)

// ErrSessionClosed is returned when a session is used after Shutdown.
var ErrSessionClosed = errors.New("session closed")

// Options configures a Session.
type Options struct {
	// Logger receives debug records. Nil disables logging.
	Logger *slog.Logger
}

// Session owns the terminal for the lifetime of one editing run. Start
// returns it, Shutdown consumes it.
type Session struct {
	term   *terminal.Terminal
	app    *App
	logger *slog.Logger
	closed bool
}

// Start puts the terminal into raw mode and lays out the screen.
func Start(opts Options) (*Session, error) {
	t, err := terminal.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return newSession(t, opts), nil
}

func newSession(t *terminal.Terminal, opts Options) *Session {
	if opts.Logger != nil {
		opts.Logger.Info("session started", "width", t.Width(), "height", t.Height())
	}
	return &Session{
		term:   t,
		app:    NewApp(t.Width(), t.Height(), opts.Logger),
		logger: opts.Logger,
	}
}

// App exposes the session's editor state.
func (s *Session) App() *App { return s.app }

// Run reads and processes input one event at a time until the user quits,
// ctx is cancelled, or reading the terminal fails.
func (s *Session) Run(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}

	keys := make(chan terminal.Key)
	readErr := make(chan error, 1)
	go func() {
		for {
			k, err := s.term.ReadKey()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case keys <- k:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := s.paint(); err != nil {
		return err
	}

	for !s.app.Quit() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return fmt.Errorf("read key: %w", err)
		case <-s.term.SigwinchChan():
			if s.term.Resize() {
				s.app.HandleEvent(editor.Resize(s.term.Height(), s.term.Width()))
			}
		case k := <-keys:
			s.app.HandleEvent(translateKey(k))
		}

		if !s.app.Quit() && s.app.NeedsRedraw() {
			if err := s.paint(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) paint() error {
	if err := s.term.Write(s.app.Render()); err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	return nil
}

// Shutdown restores the terminal. It must be called exactly once.
func (s *Session) Shutdown() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	if s.logger != nil {
		s.logger.Info("session stopped")
	}
	return s.term.Restore()
}
