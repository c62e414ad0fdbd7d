package terminal

import (
	"github.com/better-ecosystem/better-shell/internal/ansiseq"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// insertByte inserts a single ASCII byte at the cursor and redraws the
// tail of the line, the way kylelemons-goat/term/term_line.go's linechar
// echoes an inserted character and the remainder of output, except here
// the redraw uses save-cursor/restore-cursor so arbitrary mid-line
// insertion (not just end-of-line typing) redraws correctly.
func (h *Handler) insertByte(b byte) {
	h.insertRunes([]byte{b})
}

// insertRunes inserts the (possibly multi-byte) UTF-8 sequence data at the
// cursor's byte offset, redraws from that point to the end of the line,
// and advances the cursor by the number of codepoints inserted.
func (h *Handler) insertRunes(data []byte) {
	idx, err := h.cur.GetStringIdx(string(h.buf))
	if err != nil {
		idx = len(h.buf)
	}

	if len(data) == 1 && data[0] == '\n' {
		h.buf = append(h.buf[:idx], append(append([]byte{}, data...), h.buf[idx:]...)...)
		h.write(ansiseq.SaveCursor)
		h.write("\r\n")
		h.write(string(h.buf[idx+1:]))
		h.write(ansiseq.RestoreCursor)
		return
	}

	tail := append([]byte{}, h.buf[idx:]...)
	h.buf = append(h.buf[:idx], append(append([]byte{}, data...), tail...)...)

	h.write(ansiseq.SaveCursor)
	h.write(string(data))
	h.write(string(tail))
	h.write(ansiseq.RestoreCursor)
	h.write(ansiseq.CursorRight(textutil.LengthInCodepoints(string(data))))

	h.cur.X += textutil.LengthInCodepoints(string(data))
}

// handleBackspace deletes one codepoint (ctrl=false) or one word
// (ctrl=true) immediately to the left of the cursor, echoing the erase the
// way term_line.go's BS/DEL branch does: move left, overwrite the
// vacated cells with spaces, then restore the cursor.
func (h *Handler) handleBackspace(ctrl bool) {
	idx, err := h.cur.GetStringIdx(string(h.buf))
	if err != nil || idx == 0 {
		return
	}

	var first int
	if ctrl {
		first = textutil.MoveIndexToDirection(string(h.buf), idx, -1)
	} else {
		first = prevCodepointStart(h.buf, idx)
	}

	deletedCells := textutil.LengthInCodepoints(string(h.buf[first:idx]))
	tail := append([]byte{}, h.buf[idx:]...)
	h.buf = append(h.buf[:first], tail...)
	h.cur.X -= deletedCells

	h.write(ansiseq.CursorLeft(deletedCells))
	h.write(ansiseq.SaveCursor)
	h.write(string(tail))
	for i := 0; i < deletedCells; i++ {
		h.write(" ")
	}
	h.write(ansiseq.RestoreCursor)
}

func prevCodepointStart(buf []byte, idx int) int {
	if idx == 0 {
		return 0
	}
	i := idx - 1
	for i > 0 && textutil.IsContinuationByte(buf[i]) {
		i--
	}
	return i
}
