package parsetree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func buildSample() *Tree {
	tr := NewTree("stdin", `echo {cat /etc/hostname}`)
	tr.Push(Root, Token{Type: Command, Index: 0, Text: "echo"})
	tr.Push(Root, Token{Type: SubBracket, Index: 5, Text: "{"})

	child := tr.NewGroup(Root, "cat /etc/hostname")
	tr.Push(child, Token{Type: Command, Index: 0, Text: "cat"})
	tr.Push(child, Token{Type: Parameter, Index: 4, Text: "/etc/hostname"})

	tr.Push(Root, Token{Type: SubContent, Index: 6, Group: child})
	tr.Push(Root, Token{Type: SubBracket, Index: 23, Text: "}"})
	return tr
}

func TestRootRawEqualsInput(t *testing.T) {
	tr := buildSample()
	require.Equal(t, `echo {cat /etc/hostname}`, tr.RootRaw())
}

func TestTokenSliceMatchesRaw(t *testing.T) {
	tr := buildSample()
	g := tr.Group(Root)
	tok := g.Tokens[0]
	require.Equal(t, "echo", g.Raw[tok.Index:tok.Index+len(tok.Data())])
}

func TestSubContentParentLinkage(t *testing.T) {
	tr := buildSample()
	var subContent Token
	for _, tok := range tr.Group(Root).Tokens {
		if tok.Type == SubContent {
			subContent = tok
		}
	}
	require.Equal(t, Root, tr.Group(subContent.Group).Parent)
}

func TestComputeRealIndex(t *testing.T) {
	tr := buildSample()
	child := tr.Group(Root).Tokens[2].Group
	paramTok := tr.Group(child).Tokens[1]
	real := tr.ComputeRealIndex(child, paramTok)
	require.Equal(t, 10, real)
	require.Equal(t, "/etc/hostname", tr.RootRaw()[real:real+len("/etc/hostname")])
}

func TestJSONRoundTrip(t *testing.T) {
	tr := buildSample()
	data, err := tr.MarshalGroup(Root)
	require.NoError(t, err)

	tr2, err := UnmarshalTree("stdin", data)
	require.NoError(t, err)

	if diff := cmp.Diff(rawShape(tr, Root), rawShape(tr2, Root)); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

// rawShape strips Index/Parent (reconstructable, excluded from the
// round-trip comparison per spec.md §8) and flattens to plain values
// go-cmp can compare without caring about arena layout.
type shape struct {
	Raw    string
	Tokens []tokShape
}

type tokShape struct {
	Type string
	Text string
	Sub  *shape
}

func rawShape(t *Tree, idx GroupIndex) shape {
	g := t.Group(idx)
	s := shape{Raw: g.Raw}
	for _, tok := range g.Tokens {
		ts := tokShape{Type: tok.Type.String()}
		if tok.IsGroupRef() {
			sub := rawShape(t, tok.Group)
			ts.Sub = &sub
		} else {
			ts.Text = tok.Text
		}
		s.Tokens = append(s.Tokens, ts)
	}
	return s
}
