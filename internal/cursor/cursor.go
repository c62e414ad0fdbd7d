// Package cursor implements the logical (x, y) position over a displayed
// buffer described in spec.md §4.3: arrow/Home/End handling and mapping an
// (x, y) coordinate to a byte index into a UTF-8 string. It generalizes the
// single-line position tracking kylelemons-goat/term/term_line.go keeps in
// TTY.linepos into a free-standing, multi-line-aware type, emitting the
// same ESC[D/C cursor escapes that file writes by hand during insert and
// delete.
package cursor

import (
	"errors"
	"unicode/utf8"

	"github.com/better-ecosystem/better-shell/internal/ansiseq"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// ErrOutOfRange is returned by GetStringIdx when (x, y) cannot be reached
// within buffer.
var ErrOutOfRange = errors.New("cursor: position out of range")

// Direction is the argument to HandleArrows.
type Direction int

const (
	Left Direction = -1
	Right Direction = 1
)

// HomeEndKind selects which end HandleHomeEnd moves to.
type HomeEndKind int

const (
	Home HomeEndKind = -1
	End  HomeEndKind = 1
)

// Cursor is the logical editing position: x is the column in displayed
// cells (not bytes) within line y of the currently displayed buffer.
type Cursor struct {
	X, Y int
}

// IsZero reports whether the cursor sits at the very beginning of the
// buffer.
func (c *Cursor) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// GetStringIdx scans buffer, advancing one codepoint per column and
// counting '\n' as a new line, and returns the byte offset at which
// (c.X, c.Y) sits.
func (c *Cursor) GetStringIdx(buffer string) (int, error) {
	x, y := 0, 0
	i := 0
	for i < len(buffer) {
		if y == c.Y && x == c.X {
			return i, nil
		}
		r, sz := utf8.DecodeRuneInString(buffer[i:])
		if r == '\n' {
			if y == c.Y {
				// X is beyond the end of this line.
				return 0, ErrOutOfRange
			}
			y++
			x = 0
			i += sz
			continue
		}
		x++
		i += sz
	}
	if y == c.Y && x == c.X {
		return i, nil
	}
	return 0, ErrOutOfRange
}

// HandleArrows implements Left/Right movement (spec.md §4.3). It reports
// whether it handled the direction and the escape sequence to emit; Up/Down
// are not handled here (the terminal handler routes them to history) and
// HandleArrows returns handled=false for any Direction other than Left/Right.
func (c *Cursor) HandleArrows(dir Direction, buffer string, ctrl bool) (handled bool, escape string) {
	idx, err := c.GetStringIdx(buffer)
	if err != nil {
		return false, ""
	}
	_, lineStart, lineEnd := currentLine(buffer, idx)

	switch dir {
	case Right:
		if ctrl {
			newIdx := textutil.MoveIndexToDirection(buffer, idx, 1)
			return true, c.moveTo(buffer, newIdx)
		}
		if idx >= lineEnd {
			if lineEnd >= len(buffer) {
				return true, ""
			}
			// Wrap to the start of the next line.
			c.Y++
			c.X = 0
			return true, ansiseq.CursorColumn(1) + ansiseq.CursorDown(1)
		}
		c.X++
		return true, ansiseq.CursorRight(1)
	case Left:
		if ctrl {
			newIdx := textutil.MoveIndexToDirection(buffer, idx, -1)
			return true, c.moveTo(buffer, newIdx)
		}
		if idx <= lineStart {
			if lineStart == 0 {
				return true, ""
			}
			prevLine, prevStart, _ := currentLine(buffer, lineStart-1)
			c.Y--
			c.X = textutil.LengthInCodepoints(prevLine)
			_ = prevStart
			return true, ansiseq.CursorColumn(c.X+1) + ansiseq.CursorUp(1)
		}
		c.X--
		return true, ansiseq.CursorLeft(1)
	default:
		return false, ""
	}
}

// moveTo recomputes (X, Y) from a new byte index, returning the escape
// sequence to reset the cursor-column and move rows as needed.
func (c *Cursor) moveTo(buffer string, idx int) string {
	lines := textutil.SplitLines(buffer[:idx])
	newY := len(lines) - 1
	newX := textutil.LengthInCodepoints(lines[newY])
	dy := newY - c.Y
	c.X, c.Y = newX, newY
	esc := ansiseq.CursorColumn(newX + 1)
	switch {
	case dy > 0:
		esc += ansiseq.CursorDown(dy)
	case dy < 0:
		esc += ansiseq.CursorUp(-dy)
	}
	return esc
}

// HandleHomeEnd implements Home/End movement (spec.md §4.3). When ctrl is
// true it is a no-op (reserved for future buffer-wide jumps).
func (c *Cursor) HandleHomeEnd(kind HomeEndKind, buffer string, ctrl bool) string {
	if ctrl {
		return ""
	}
	idx, err := c.GetStringIdx(buffer)
	if err != nil {
		return ""
	}
	line, _, _ := currentLine(buffer, idx)
	lineLen := textutil.LengthInCodepoints(line)

	var esc string
	switch kind {
	case Home:
		for ; c.X > 0; c.X-- {
			esc += ansiseq.CursorLeft(1)
		}
	case End:
		for ; c.X < lineLen; c.X++ {
			esc += ansiseq.CursorRight(1)
		}
	}
	return esc
}

// currentLine returns the line containing byte offset idx in buffer, and
// that line's [start, end) byte range (end excludes the newline).
func currentLine(buffer string, idx int) (line string, start, end int) {
	start = 0
	for i := 0; i < idx && i < len(buffer); i++ {
		if buffer[i] == '\n' {
			start = i + 1
		}
	}
	end = len(buffer)
	for i := start; i < len(buffer); i++ {
		if buffer[i] == '\n' {
			end = i
			break
		}
	}
	return buffer[start:end], start, end
}
