// Package terminal implements the raw-mode terminal input handler from
// spec.md §4.5: a per-byte state machine with cursor tracking, UTF-8
// reassembly, backspace/delete (plain and word-wise), selection
// highlighting, history navigation, and SIGINT handling.
//
// It generalizes kylelemons-goat/term/term_line.go's goroutine-driven
// TTY into a synchronous handler the input driver loop (internal/driver)
// calls one byte at a time: the teacher's hpush/hprev single-line history
// pair becomes internal/history navigation, its linechar insert/backspace
// echoing becomes edit.go, and its lineesc escape-sequence recognition
// becomes ansi.go built on internal/ansiseq.
package terminal

import (
	"io"

	"github.com/better-ecosystem/better-shell/internal/cursor"
	"github.com/better-ecosystem/better-shell/internal/history"
)

// ttyState is the subset of *rawmode.Settings the handler needs: just
// whether the underlying stream is an interactive terminal. Expressed as
// an interface so tests can drive the state machine without a real tty.
type ttyState interface {
	IsTTY() bool
}

// Result is the outcome of handling a single byte.
type Result int

const (
	// Continue means the byte was consumed; keep reading.
	Continue Result = iota
	// None means the handler did not (fully) consume the byte; the
	// caller may fall through to its own default handling.
	None
	// Done means the line is complete and ready to submit.
	Done
	// Exit means EOT/EOF was observed; the driver loop should stop.
	Exit
)

// Handler owns raw-mode setup and the per-line editing state machine.
type Handler struct {
	raw  ttyState
	hist *history.Store
	out  io.Writer

	prompt string
	buf    []byte
	cur    cursor.Cursor

	reassembly         []byte
	reassemblyExpected int

	escapedByBackslash bool
	highlightStart     int // -1 when no selection is active

	scratch       string
	scratchActive bool
}

// New constructs a Handler. raw must already have had Raw() called on it
// if rawmode.Settings.IsTTY() is true; New does not itself acquire or
// release raw mode so callers can control the acquire/release lifetime
// independently of per-line state (spec.md §5: "acquired in the terminal
// handler's constructor; released exactly once on destruction" — here
// expressed as the caller owning a single rawmode.Settings for the
// process lifetime).
func New(raw ttyState, hist *history.Store, out io.Writer) *Handler {
	h := &Handler{raw: raw, hist: hist, out: out}
	h.resetLine()
	return h
}

// IsActive reports whether the handler is backed by a real tty. When
// false, every Handle call returns None and the caller is responsible for
// verbatim byte accumulation (spec.md §4.5).
func (h *Handler) IsActive() bool {
	return h.raw != nil && h.raw.IsTTY()
}

// SetPrompt sets the prompt string used for redraws during history
// navigation and selection highlighting.
func (h *Handler) SetPrompt(prompt string) {
	h.prompt = prompt
}

// Buffer returns the current line buffer as a string.
func (h *Handler) Buffer() string {
	return string(h.buf)
}

// resetLine clears all per-line state, returning the handler to Normal
// for the next submitted line.
func (h *Handler) resetLine() {
	h.buf = h.buf[:0]
	h.cur = cursor.Cursor{}
	h.reassembly = nil
	h.reassemblyExpected = 0
	h.escapedByBackslash = false
	h.highlightStart = -1
	h.scratch = ""
	h.scratchActive = false
}

// Reset clears per-line state. Exported so the driver loop can call it
// between submitted lines (spec.md §4.6).
func (h *Handler) Reset() {
	h.resetLine()
}

func (h *Handler) write(s string) {
	if s == "" || h.out == nil {
		return
	}
	io.WriteString(h.out, s)
}

func isBlank(buf []byte) bool {
	for _, b := range buf {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return false
		}
	}
	return true
}
