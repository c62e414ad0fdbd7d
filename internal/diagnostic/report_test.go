package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/better-ecosystem/better-shell/internal/shellerr"
)

func TestRenderWithoutContext(t *testing.T) {
	err := shellerr.New(shellerr.InvalidCommand, "nope")
	out := Render(err, false)
	assert.Contains(t, out, "invalid command")
	assert.Contains(t, out, "(no further context)")
}

func TestRenderWithContextUnderlinesOffset(t *testing.T) {
	ctx := shellerr.Context{Source: "stdin", Raw: "echo {oops", Offset: 5, Length: 5}
	err := shellerr.At(shellerr.UnclosedBracket, ctx, "unclosed bracket")
	out := Render(err, false)

	require.Contains(t, out, "echo {oops")
	require.Contains(t, out, "^^^^^")
	require.Contains(t, out, "unclosed bracket")
	require.Contains(t, out, "stdin: 1:6")

	lines := strings.Split(out, "\n")
	var contentLine, caretLine int
	for i, l := range lines {
		if strings.Contains(l, "echo {oops") {
			contentLine = i
		}
		if strings.Contains(l, "^^^^^") {
			caretLine = i
		}
	}
	require.NotZero(t, contentLine)
	require.Greater(t, caretLine, contentLine)
}

func TestRenderNoColorSkipsEscapes(t *testing.T) {
	ctx := shellerr.Context{Source: "stdin", Raw: "a", Offset: 0, Length: 1}
	err := shellerr.At(shellerr.EmptyParam, ctx, "bad")
	out := Render(err, false)
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderColorEmitsEscapes(t *testing.T) {
	ctx := shellerr.Context{Source: "stdin", Raw: "a", Offset: 0, Length: 1}
	err := shellerr.At(shellerr.EmptyParam, ctx, "bad")
	out := Render(err, true)
	assert.Contains(t, out, "\x1b[")
}
