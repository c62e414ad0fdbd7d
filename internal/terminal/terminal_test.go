package terminal

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/better-ecosystem/better-shell/internal/history"
)

type fakeTTY struct{ active bool }

func (f fakeTTY) IsTTY() bool { return f.active }

func newHandler(t *testing.T) (*Handler, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	h, err := history.Open(t.TempDir()+"/history", nil)
	require.NoError(t, err)
	return New(fakeTTY{active: true}, h, &out), &out
}

func feed(t *testing.T, h *Handler, input string) Result {
	t.Helper()
	r := bufio.NewReader(strings.NewReader(input))
	var last Result
	for {
		b, err := r.ReadByte()
		if err != nil {
			break
		}
		res, _ := h.Handle(b, r)
		last = res
		if res == Done || res == Exit {
			break
		}
	}
	return last
}

func TestInactiveHandlerReturnsNone(t *testing.T) {
	var out bytes.Buffer
	h := New(fakeTTY{active: false}, nil, &out)
	r := bufio.NewReader(strings.NewReader("a"))
	b, _ := r.ReadByte()
	res, err := h.Handle(b, r)
	assert.NoError(t, err)
	assert.Equal(t, None, res)
}

func TestTypeAndEnter(t *testing.T) {
	h, _ := newHandler(t)
	res := feed(t, h, "abc\n")
	assert.Equal(t, Done, res)
	assert.Equal(t, "abc", h.Buffer())
}

func TestBlankLineIsDone(t *testing.T) {
	h, _ := newHandler(t)
	res := feed(t, h, "\n")
	assert.Equal(t, Done, res)
	assert.Equal(t, "", h.Buffer())
}

func TestMoveLeftAndInsert(t *testing.T) {
	h, _ := newHandler(t)
	// "abc" then Left, Left, then "X" then Enter -> "aXbc"
	feed(t, h, "abc")
	feed(t, h, "\x1b[D\x1b[D")
	res := feed(t, h, "X\n")
	assert.Equal(t, Done, res)
	assert.Equal(t, "aXbc", h.Buffer())
}

func TestCtrlBackspaceDeletesWord(t *testing.T) {
	h, _ := newHandler(t)
	feed(t, h, "hello world")
	h.handleBackspace(true)
	assert.Equal(t, "hello ", h.Buffer())
}

func TestPlainBackspaceDeletesOneCodepoint(t *testing.T) {
	h, _ := newHandler(t)
	feed(t, h, "abc")
	h.handleBackspace(false)
	assert.Equal(t, "ab", h.Buffer())
}

func TestCtrlDExits(t *testing.T) {
	h, _ := newHandler(t)
	feed(t, h, "abc")
	res := feed(t, h, "\x04")
	assert.Equal(t, Exit, res)
}

func TestLineContinuation(t *testing.T) {
	h, _ := newHandler(t)
	res := feed(t, h, "echo \\\n")
	assert.Equal(t, Continue, res)
	assert.Contains(t, h.Buffer(), "\n")
}
