package terminal

import (
	"github.com/better-ecosystem/better-shell/internal/ansiseq"
	"github.com/better-ecosystem/better-shell/internal/cursor"
)

// handleANSI dispatches a fully-read CSI sequence: arrows and Home/End go
// through the cursor model (or history, for Up/Down), with Shift routed
// through selection highlighting first.
func (h *Handler) handleANSI(seq string) {
	shift := ansiseq.IsShiftPressed(seq)
	ctrl := ansiseq.IsCtrlPressed(seq)

	if ansiseq.IsArrow(seq) {
		dir := arrowDirection(seq)
		switch dir {
		case 'U', 'D':
			h.clearHighlightIfNoShift(shift)
			h.handleHistoryNav(dir)
			return
		case 'L', 'R':
			if shift {
				h.handleHighlightMove(func() {
					h.moveCursorArrow(dir, ctrl)
				})
				return
			}
			h.clearHighlightIfNoShift(shift)
			h.moveCursorArrow(dir, ctrl)
			return
		}
		return
	}

	if he := ansiseq.IsHomeEnd(seq); he != 0 {
		kind := cursor.Home
		if he > 0 {
			kind = cursor.End
		}
		if shift {
			h.handleHighlightMove(func() {
				h.write(h.cur.HandleHomeEnd(kind, string(h.buf), ctrl))
			})
			return
		}
		h.clearHighlightIfNoShift(shift)
		h.write(h.cur.HandleHomeEnd(kind, string(h.buf), ctrl))
		return
	}
}

func arrowDirection(seq string) byte {
	switch seq[len(seq)-1] {
	case 'A':
		return 'U'
	case 'B':
		return 'D'
	case 'C':
		return 'R'
	case 'D':
		return 'L'
	default:
		return 0
	}
}

func (h *Handler) moveCursorArrow(dir byte, ctrl bool) {
	switch dir {
	case 'R':
		_, esc := h.cur.HandleArrows(cursor.Right, string(h.buf), ctrl)
		h.write(esc)
	case 'L':
		_, esc := h.cur.HandleArrows(cursor.Left, string(h.buf), ctrl)
		h.write(esc)
	}
}
