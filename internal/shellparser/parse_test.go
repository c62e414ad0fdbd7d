package shellparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/better-ecosystem/better-shell/internal/parsetree"
)

func TestParseNeverFailsOnGarbage(t *testing.T) {
	inputs := []string{"", "   ", "{{{", `"""`, "-", "--", "=value", "|||"}
	for _, in := range inputs {
		tr := Parse("stdin", in)
		assert.Equal(t, in, tr.RootRaw())
	}
}

func TestEchoHello(t *testing.T) {
	tr := Parse("stdin", "echo hello")
	toks := tr.Group(parsetree.Root).Tokens
	require.Len(t, toks, 2)
	assert.Equal(t, parsetree.Command, toks[0].Type)
	assert.Equal(t, "echo", toks[0].Text)
	assert.Equal(t, parsetree.Argument, toks[1].Type)
	assert.Equal(t, "hello", toks[1].Text)
	assert.Equal(t, 5, toks[1].Index)
}

func TestLsColorAutoLA(t *testing.T) {
	tr := Parse("stdin", "ls --color=auto -la")
	toks := tr.Group(parsetree.Root).Tokens

	require.Len(t, toks, 5)
	assert.Equal(t, parsetree.Command, toks[0].Type)
	assert.Equal(t, "ls", toks[0].Text)

	assert.Equal(t, parsetree.Flag, toks[1].Type)
	assert.Equal(t, "--color", toks[1].Text)
	assert.Equal(t, 3, toks[1].Index)

	assert.Equal(t, parsetree.Parameter, toks[2].Type)
	assert.Equal(t, "auto", toks[2].Text)
	assert.Equal(t, 11, toks[2].Index)

	assert.Equal(t, parsetree.Flag, toks[3].Type)
	assert.Equal(t, "-l", toks[3].Text)
	assert.Equal(t, 16, toks[3].Index)

	assert.Equal(t, parsetree.Flag, toks[4].Type)
	assert.Equal(t, "-a", toks[4].Text)
	assert.Equal(t, 16, toks[4].Index)
}

func TestSubstitution(t *testing.T) {
	tr := Parse("stdin", "echo {cat /etc/hostname}")
	toks := tr.Group(parsetree.Root).Tokens
	require.Len(t, toks, 4)

	assert.Equal(t, parsetree.Command, toks[0].Type)
	assert.Equal(t, parsetree.SubBracket, toks[1].Type)
	assert.Equal(t, "{", toks[1].Text)
	assert.Equal(t, 5, toks[1].Index)

	assert.Equal(t, parsetree.SubContent, toks[2].Type)
	assert.Equal(t, parsetree.SubBracket, toks[3].Type)
	assert.Equal(t, "}", toks[3].Text)
	assert.Equal(t, 23, toks[3].Index)

	inner := tr.Group(toks[2].Group).Tokens
	require.Len(t, inner, 2)
	assert.Equal(t, "cat", inner[0].Text)
	assert.Equal(t, parsetree.Parameter, inner[1].Type)
	assert.Equal(t, "/etc/hostname", inner[1].Text)
}

func TestQuotedString(t *testing.T) {
	tr := Parse("stdin", `echo "hi there"`)
	toks := tr.Group(parsetree.Root).Tokens
	require.Len(t, toks, 4)

	assert.Equal(t, parsetree.StringQuote, toks[1].Type)
	assert.Equal(t, 5, toks[1].Index)
	assert.Equal(t, parsetree.StringContent, toks[2].Type)
	assert.Equal(t, "hi there", toks[2].Text)
	assert.Equal(t, 6, toks[2].Index)
	assert.Equal(t, parsetree.StringQuote, toks[3].Type)
	assert.Equal(t, 14, toks[3].Index)
}

func TestUnmatchedOpenBracket(t *testing.T) {
	tr := Parse("stdin", "echo {oops")
	toks := tr.Group(parsetree.Root).Tokens
	require.Len(t, toks, 3)
	assert.Equal(t, parsetree.SubBracket, toks[1].Type)
	assert.Equal(t, parsetree.SubContent, toks[2].Type)

	inner := tr.Group(toks[2].Group).Tokens
	require.Len(t, inner, 1)
	assert.Equal(t, "oops", inner[0].Text)
}

func TestUnterminatedString(t *testing.T) {
	tr := Parse("stdin", `echo "`)
	toks := tr.Group(parsetree.Root).Tokens
	require.Len(t, toks, 3)
	assert.Equal(t, parsetree.StringQuote, toks[1].Type)
	assert.Equal(t, 5, toks[1].Index)
	assert.Equal(t, parsetree.StringContent, toks[2].Type)
	assert.Equal(t, "", toks[2].Text)
}
