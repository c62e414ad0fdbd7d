// Package rawmode manages raw-mode terminal state: it captures termios
// settings when Raw is called and restores them exactly once, the way
// kylelemons-goat/termios.TermSettings does with NewTermSettings/Raw/Reset
// — but through golang.org/x/term and golang.org/x/sys/unix instead of the
// teacher's cgo <termios.h> binding, so the shell does not need a C
// toolchain to build. golang.org/x/term supplies MakeRaw/Restore/GetSize;
// golang.org/x/sys/unix supplies the VMIN=1, VTIME=0 tweak spec.md §4.5
// requires and x/term's own MakeRaw does not expose.
package rawmode

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Settings holds the terminal state captured by Raw, so it can be
// restored exactly once on Reset.
type Settings struct {
	fd       int
	isTTY    bool
	original *term.State
}

// New examines the terminal at fd (normally os.Stdin's descriptor) and
// records whether it is a tty; its settings are captured later, by Raw.
// If fd is not a tty, IsTTY reports false
// and Raw/Reset are no-ops — matching spec.md §4.5's "if the stream is not
// a tty, the handler becomes inactive" rule.
func New(fd int) (*Settings, error) {
	s := &Settings{fd: fd, isTTY: term.IsTerminal(fd)}
	return s, nil
}

// IsTTY reports whether fd names an interactive terminal.
func (s *Settings) IsTTY() bool { return s.isTTY }

// Raw disables canonical mode and echo and sets VMIN=1, VTIME=0, so every
// byte typed is delivered to the reader immediately. It is idempotent:
// a call while raw mode is already held does nothing, so Reset always
// returns to the state captured by the first call.
func (s *Settings) Raw() error {
	if !s.isTTY {
		return nil
	}
	if s.original != nil {
		return nil
	}
	original, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("rawmode: make raw: %w", err)
	}
	s.original = original

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("rawmode: get termios: %w", err)
	}
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, termios); err != nil {
		return fmt.Errorf("rawmode: set VMIN/VTIME: %w", err)
	}
	return nil
}

// Reset restores the terminal settings captured when Raw was called.
func (s *Settings) Reset() error {
	if !s.isTTY || s.original == nil {
		return nil
	}
	if err := term.Restore(s.fd, s.original); err != nil {
		return fmt.Errorf("rawmode: restore: %w", err)
	}
	s.original = nil
	return nil
}

// GetSize returns the terminal's current (width, height) in columns/rows.
func (s *Settings) GetSize() (width, height int, err error) {
	if !s.isTTY {
		return 0, 0, fmt.Errorf("rawmode: not a tty")
	}
	w, h, err := term.GetSize(s.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("rawmode: get size: %w", err)
	}
	return w, h, nil
}
