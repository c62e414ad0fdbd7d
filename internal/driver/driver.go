// Package driver implements the input driver loop from spec.md §4.6: it
// wraps the terminal handler, turns bytes into completed lines, and
// surfaces exit conditions (EOT/EOF, SIGINT, and the "exit" built-in's
// ExitRequested value — spec.md's Design Notes replace the source's
// global SHOULD_EXIT with this typed return, per SPEC_FULL.md).
package driver

import (
	"bufio"
	"errors"
	"io"
	"sync/atomic"

	"github.com/better-ecosystem/better-shell/internal/terminal"
)

// ErrEOF is returned by Read when the input stream is exhausted (EOT/EOF).
var ErrEOF = errors.New("driver: end of input")

// ExitRequest is returned by Read (detectable via errors.As) when a
// caller-driven exit has been requested mid-read.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string { return "driver: exit requested" }

// Loop drives a Handler over a byte stream, producing complete lines.
type Loop struct {
	handler   *terminal.Handler
	reader    *bufio.Reader
	prompter  func()
	sigint    *atomic.Bool
	shouldEnd *atomic.Bool
}

// New constructs a Loop. prompter is called to display the prompt before
// each read; sigint and shouldExit are process-wide flags the loop polls
// between bytes (spec.md §5: SIGINT and the "exit" built-in).
func New(h *terminal.Handler, in io.Reader, prompter func(), sigint, shouldExit *atomic.Bool) *Loop {
	return &Loop{
		handler:   h,
		reader:    bufio.NewReader(in),
		prompter:  prompter,
		sigint:    sigint,
		shouldEnd: shouldExit,
	}
}

// Read reads and returns the next complete line.
func (l *Loop) Read() (string, error) {
	if l.shouldEnd != nil && l.shouldEnd.Load() {
		return "", &ExitRequest{Code: 0}
	}

	if l.prompter != nil {
		l.prompter()
	}

	var out []byte
	for {
		if l.sigint != nil && l.sigint.CompareAndSwap(true, false) {
			l.handler.Reset()
			return "", errInterrupted
		}

		b, err := l.reader.ReadByte()
		if err != nil {
			if l.handler.IsActive() {
				l.handler.Reset()
			}
			return string(out), ErrEOF
		}

		if !l.handler.IsActive() {
			out = append(out, b)
			if b == '\n' {
				break
			}
			continue
		}

		res, _ := l.handler.Handle(b, l.reader)
		switch res {
		case terminal.Done:
			out = []byte(l.handler.Buffer())
			l.handler.Reset()
			return string(out), nil
		case terminal.Exit:
			l.handler.Reset()
			return "", ErrEOF
		case terminal.None, terminal.Continue:
			// keep reading; Buffer() reflects the handler's current state
		}
	}
	return string(out), nil
}

// errInterrupted signals the caller that SIGINT cancelled the in-progress
// line; the loop continues with a fresh prompt rather than exiting.
var errInterrupted = errors.New("driver: interrupted")

// IsInterrupted reports whether err is the sentinel returned when SIGINT
// cancelled the current line.
func IsInterrupted(err error) bool {
	return errors.Is(err, errInterrupted)
}
