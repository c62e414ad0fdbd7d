package terminal

import (
	"github.com/better-ecosystem/better-shell/internal/ansiseq"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// handleHistoryNav implements spec.md §4.5's history navigation: Up walks
// backward via Store.GetPrev, Down walks forward via Store.GetNext, and
// Down past the most recent entry restores the scratch line the user was
// editing before history navigation began.
func (h *Handler) handleHistoryNav(dir byte) {
	if h.hist == nil {
		return
	}

	if !h.scratchActive {
		h.scratch = string(h.buf)
		h.scratchActive = true
	}

	var (
		line string
		ok   bool
	)
	switch dir {
	case 'U':
		line, ok = h.hist.GetPrev()
	case 'D':
		line, ok = h.hist.GetNext()
		if !ok {
			line = h.scratch
			h.scratchActive = false
			ok = true
		}
	}
	if !ok {
		return
	}

	h.replaceLine(line)
}

// replaceLine clears the current input line, reprints the prompt and the
// new line, pads with trailing spaces if the new line is shorter than the
// old one, and parks the cursor at the end of the new line.
func (h *Handler) replaceLine(line string) {
	oldCells := textutil.LengthInCodepoints(string(h.buf))
	newCells := textutil.LengthInCodepoints(line)

	h.write("\r")
	h.write(ansiseq.ClearToEOL)
	h.write(h.prompt)
	h.write(line)
	if oldCells > newCells {
		for i := 0; i < oldCells-newCells; i++ {
			h.write(" ")
		}
		h.write(ansiseq.CursorLeft(oldCells - newCells))
	}

	h.buf = []byte(line)
	h.cur.X = newCells
	h.cur.Y = 0
}
