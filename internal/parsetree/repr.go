package parsetree

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
)

// reprGroup is a plain tree shape (no arena indices) that alecthomas/repr
// can pretty-print directly, used only for debug output (Tree.Repr).
type reprGroup struct {
	Raw    string
	Tokens []reprToken
}

type reprToken struct {
	Type  string
	Index int
	Op    string `repr:",omitempty"`
	Text  string `repr:",omitempty"`
	Group *reprGroup `repr:",omitempty"`
}

// Repr renders the group at idx as an indented Go-literal-like tree,
// grounded on vippsas-sqlcode/sqltest/querydump.go's use of
// alecthomas/repr for structural dumps in tests and debug output.
func (t *Tree) Repr(idx GroupIndex) string {
	rg := t.toReprGroup(idx)
	return repr.String(rg, repr.Indent("  "))
}

func (t *Tree) toReprGroup(idx GroupIndex) *reprGroup {
	g := t.Group(idx)
	rg := &reprGroup{Raw: g.Raw, Tokens: make([]reprToken, 0, len(g.Tokens))}
	for _, tok := range g.Tokens {
		rt := reprToken{Type: tok.Type.String(), Index: tok.Index}
		if tok.Type == Operator {
			rt.Op = tok.OperatorType.String()
		}
		if tok.IsGroupRef() {
			rt.Group = t.toReprGroup(tok.Group)
		} else {
			rt.Text = tok.Text
		}
		rg.Tokens = append(rg.Tokens, rt)
	}
	return rg
}

// String renders a one-line summary, used in error messages and logs
// where a full repr dump would be noisy.
func (g *TokenGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TokenGroup{raw=%q, tokens=%d}", g.Raw, len(g.Tokens))
	return b.String()
}
