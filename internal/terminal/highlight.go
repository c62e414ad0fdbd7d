package terminal

import (
	"github.com/better-ecosystem/better-shell/internal/ansiseq"
)

// handleHighlightMove implements spec.md §4.5's handle_highlight: when
// Shift is held with an arrow or Home/End, it records a selection anchor
// on first use, lets move update the cursor normally, then redraws the
// whole line with the selected span in reverse video.
func (h *Handler) handleHighlightMove(move func()) {
	idx, err := h.cur.GetStringIdx(string(h.buf))
	if err != nil {
		idx = len(h.buf)
	}
	if h.highlightStart < 0 {
		h.highlightStart = idx
	}

	move()

	cur, err := h.cur.GetStringIdx(string(h.buf))
	if err != nil {
		cur = len(h.buf)
	}

	start, end := h.highlightStart, cur
	if start > end {
		start, end = end, start
	}
	h.redrawWithHighlight(start, end)
}

// clearHighlightIfNoShift commits and clears an in-progress highlight the
// moment a non-Shift keystroke arrives, per spec.md §9's Open Question
// resolution ("commit highlight, clear state, insert key").
func (h *Handler) clearHighlightIfNoShift(shift bool) {
	if shift || h.highlightStart < 0 {
		return
	}
	h.highlightStart = -1
	h.redrawPlain()
}

// redrawWithHighlight redraws the full line: prompt, then [0,start) plain,
// [start,end) in reverse video, [end,...) plain, restoring the cursor
// position afterward.
func (h *Handler) redrawWithHighlight(start, end int) {
	h.write(ansiseq.SaveCursor)
	h.write("\r")
	h.write(ansiseq.ClearToEOL)
	h.write(h.prompt)
	h.write(string(h.buf[:start]))
	h.write(ansiseq.ReverseVideo())
	h.write(string(h.buf[start:end]))
	h.write(ansiseq.SGRReset)
	h.write(string(h.buf[end:]))
	h.write(ansiseq.RestoreCursor)
}

// redrawPlain redraws the line with no highlighting.
func (h *Handler) redrawPlain() {
	h.write(ansiseq.SaveCursor)
	h.write("\r")
	h.write(ansiseq.ClearToEOL)
	h.write(h.prompt)
	h.write(string(h.buf))
	h.write(ansiseq.RestoreCursor)
}
