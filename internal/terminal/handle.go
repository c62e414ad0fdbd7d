package terminal

import (
	"bufio"
	"errors"

	"github.com/better-ecosystem/better-shell/internal/ansiseq"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// Handle processes one byte of input, per the state table in spec.md
// §4.5. stream is consulted only to read the remainder of a CSI escape
// sequence.
func (h *Handler) Handle(b byte, stream *bufio.Reader) (Result, error) {
	if !h.IsActive() {
		return None, nil
	}

	if b != ansiseq.ESC {
		h.clearHighlightIfNoShift(false)
	}

	switch b {
	case '\n':
		return h.handleNewline()
	case ansiseq.EOT:
		return Exit, nil
	case ansiseq.ESC:
		seq, err := h.readCSI(stream)
		if err != nil {
			return Exit, nil
		}
		if len(seq) > 0 && seq[0] == '[' {
			h.handleANSI(seq)
		}
		return Continue, nil
	case ansiseq.DEL:
		h.handleBackspace(false)
		return Continue, nil
	case ansiseq.BS:
		h.handleBackspace(true)
		return Continue, nil
	}

	switch {
	case textutil.IsASCIIByte(b):
		h.insertByte(b)
		h.escapedByBackslash = b == '\\'
		return None, nil
	case textutil.GetExpectedLength(b) > 1:
		h.reassembly = []byte{b}
		h.reassemblyExpected = textutil.GetExpectedLength(b)
		return Continue, nil
	case textutil.IsContinuationByte(b):
		h.reassembly = append(h.reassembly, b)
		if len(h.reassembly) >= h.reassemblyExpected {
			h.insertRunes(h.reassembly)
			h.reassembly = nil
			h.reassemblyExpected = 0
		}
		return Continue, nil
	default:
		h.insertByte(b)
		return None, nil
	}
}

func (h *Handler) handleNewline() (Result, error) {
	if isBlank(h.buf) {
		return Done, nil
	}

	idx, err := h.cur.GetStringIdx(string(h.buf))
	if err == nil && idx > 0 && h.buf[idx-1] == '\\' {
		h.insertByte('\n')
		h.cur.Y++
		h.cur.X = 0
		return Continue, nil
	}

	if h.hist != nil {
		h.hist.PushBack(string(h.buf))
		h.hist.Reset()
	}
	return Done, nil
}

// readCSI reads the remainder of an escape sequence beginning with ESC:
// a '[' followed by bytes until (and including) the first letter or '~'.
// It returns an error (signalling Exit to the caller) only when EOT/EOF
// is observed mid-sequence.
func (h *Handler) readCSI(stream *bufio.Reader) (string, error) {
	first, err := stream.ReadByte()
	if err != nil {
		return "", err
	}
	if first == ansiseq.EOT {
		return "", errEOT
	}
	if first != '[' {
		return string(first), nil
	}

	seq := []byte{first}
	for {
		b, err := stream.ReadByte()
		if err != nil {
			return "", err
		}
		if b == ansiseq.EOT {
			return "", errEOT
		}
		seq = append(seq, b)
		if b >= '@' && b <= '~' {
			break
		}
	}
	return string(seq), nil
}

var errEOT = errors.New("terminal: EOT during escape sequence")
