// Package shellparser implements the recursive descent tokenizer from
// spec.md §4.7: parsing a line is total and never fails, producing a
// structurally valid parsetree.Tree even for malformed input. Validation
// of that tree is internal/validator's job.
//
// This generalizes kylelemons-goat's lexer style (see goat.go, which
// walks a byte slice with an explicit index and emits tagged tokens) to
// the tree-shaped, offset-tracking token model spec.md §3 requires.
package shellparser

import (
	"strings"

	"github.com/better-ecosystem/better-shell/internal/parsetree"
)

const structuralBytes = "-{\"!|&;:"

func isStructural(b byte) bool {
	return strings.IndexByte(structuralBytes, b) >= 0
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// Parse tokenizes text into a new Tree rooted at a group labelled
// source. It never returns an error.
func Parse(source, text string) *parsetree.Tree {
	tr := parsetree.NewTree(source, text)
	parseGroup(tr, parsetree.Root, text)
	return tr
}

// parseInto tokenizes text as the content of an existing group (used
// when recursing into a substitution), per spec.md §4.7's "recurse into
// the interior with parent = this group".
func parseInto(tr *parsetree.Tree, parent parsetree.GroupIndex, raw string) parsetree.GroupIndex {
	idx := tr.NewGroup(parent, raw)
	parseGroup(tr, idx, raw)
	return idx
}

func parseGroup(tr *parsetree.Tree, idx parsetree.GroupIndex, text string) {
	i := 0
	n := len(text)

	// Step 1: the first whitespace-separated word is the Command token.
	for i < n && isSpace(text[i]) {
		i++
	}
	cmdStart := i
	for i < n && !isSpace(text[i]) {
		i++
	}
	if i > cmdStart {
		tr.Push(idx, parsetree.Token{Type: parsetree.Command, Index: cmdStart, Text: text[cmdStart:i]})
	}

	// Step 2: an immediately following bare word (not flag/structural)
	// becomes a lone Argument before the main loop takes over. Only the
	// root group's command line gets this treatment — a bare word right
	// after Command in a nested substitution group is an ordinary
	// Parameter, produced by the main loop's default case below.
	for i < n && isSpace(text[i]) {
		i++
	}
	if idx == parsetree.Root && i < n && text[i] != '-' && !isStructural(text[i]) {
		start := i
		for i < n && !isSpace(text[i]) && !isStructural(text[i]) {
			i++
		}
		if i > start {
			tr.Push(idx, parsetree.Token{Type: parsetree.Argument, Index: start, Text: text[start:i]})
		}
	}

	for i < n {
		b := text[i]
		switch {
		case isSpace(b):
			i++

		case b == '"':
			i = parseString(tr, idx, text, i)

		case b == '{':
			i = parseSubstitution(tr, idx, text, i)

		case b == '-':
			i = parseFlag(tr, idx, text, i)

		default:
			start := i
			for i < n && !isSpace(text[i]) && !isStructural(text[i]) {
				i++
			}
			if i == start {
				// A structural byte with no other handler (e.g. bare
				// '|', '&', ';') — emit as a single-byte Operator so the
				// loop always makes progress.
				tr.Push(idx, parsetree.Token{Type: parsetree.Operator, Index: i, OperatorType: operatorFor(b), Text: text[i : i+1]})
				i++
				continue
			}
			tr.Push(idx, parsetree.Token{Type: parsetree.Parameter, Index: start, Text: text[start:i]})
		}
	}
}

func operatorFor(b byte) parsetree.OperatorType {
	switch b {
	case '|':
		return parsetree.Pipe
	case ',':
		return parsetree.Comma
	case '*':
		return parsetree.Wildcard
	case '$':
		return parsetree.SubstituteRef
	case ';':
		return parsetree.SequenceSeparator
	case '!':
		return parsetree.LogicalNot
	default:
		return parsetree.None
	}
}

// parseString handles a `"` opening quote starting at i (spec.md §4.7
// step 3's StringQuote/StringContent rule).
func parseString(tr *parsetree.Tree, idx parsetree.GroupIndex, text string, i int) int {
	n := len(text)
	tr.Push(idx, parsetree.Token{Type: parsetree.StringQuote, Index: i, Text: `"`})
	i++

	start := i
	for i < n && text[i] != '"' {
		i++
	}
	tr.Push(idx, parsetree.Token{Type: parsetree.StringContent, Index: start, Text: text[start:i]})

	if i < n && text[i] == '"' {
		tr.Push(idx, parsetree.Token{Type: parsetree.StringQuote, Index: i, Text: `"`})
		i++
	}
	return i
}

// parseSubstitution handles a `{` opening bracket starting at i.
// Bracket-matching increments on '{' and decrements on '}', ignored
// inside an open '"' region.
func parseSubstitution(tr *parsetree.Tree, idx parsetree.GroupIndex, text string, i int) int {
	n := len(text)
	tr.Push(idx, parsetree.Token{Type: parsetree.SubBracket, Index: i, Text: "{"})
	i++

	contentStart := i
	depth := 1
	inQuote := false
	closeIdx := -1
	for j := i; j < n; j++ {
		switch text[j] {
		case '"':
			inQuote = !inQuote
		case '{':
			if !inQuote {
				depth++
			}
		case '}':
			if !inQuote {
				depth--
				if depth == 0 {
					closeIdx = j
				}
			}
		}
		if closeIdx >= 0 {
			break
		}
	}

	if closeIdx >= 0 {
		inner := strings.TrimSpace(text[contentStart:closeIdx])
		childIdx := parseInto(tr, idx, inner)
		tr.Push(idx, parsetree.Token{Type: parsetree.SubContent, Index: contentStart, Group: childIdx})
		tr.Push(idx, parsetree.Token{Type: parsetree.SubBracket, Index: closeIdx, Text: "}"})
		return closeIdx + 1
	}

	// No matching '}': recurse into the rest, emit no closing bracket.
	inner := strings.TrimSpace(text[contentStart:])
	childIdx := parseInto(tr, idx, inner)
	tr.Push(idx, parsetree.Token{Type: parsetree.SubContent, Index: contentStart, Group: childIdx})
	return n
}

// parseFlag handles a '-' starting a long flag, a short flag cluster, or
// (if it doesn't look like a flag, e.g. a bare '-') a Parameter.
func parseFlag(tr *parsetree.Tree, idx parsetree.GroupIndex, text string, i int) int {
	n := len(text)
	start := i

	if i+1 < n && text[i+1] == '-' {
		return parseLongFlag(tr, idx, text, start)
	}

	if i+1 >= n || isSpace(text[i+1]) || isStructural(text[i+1]) {
		// Lone '-': treat as a Parameter.
		tr.Push(idx, parsetree.Token{Type: parsetree.Parameter, Index: start, Text: "-"})
		return i + 1
	}

	return parseShortFlagCluster(tr, idx, text, start)
}

func parseLongFlag(tr *parsetree.Tree, idx parsetree.GroupIndex, text string, start int) int {
	n := len(text)
	i := start
	for i < n && !isSpace(text[i]) && text[i] != '=' && !(isStructural(text[i]) && text[i] != '-') {
		i++
	}
	name := text[start:i]

	if i < n && text[i] == '=' {
		tr.Push(idx, parsetree.Token{Type: parsetree.Flag, Index: start, Text: name})
		valStart := i + 1
		j := valStart
		for j < n && !isSpace(text[j]) && !isStructural(text[j]) {
			j++
		}
		tr.Push(idx, parsetree.Token{Type: parsetree.Parameter, Index: valStart, Text: text[valStart:j]})
		return j
	}

	tr.Push(idx, parsetree.Token{Type: parsetree.Flag, Index: start, Text: name})
	return i
}

func parseShortFlagCluster(tr *parsetree.Tree, idx parsetree.GroupIndex, text string, start int) int {
	n := len(text)
	i := start + 1
	for i < n && text[i] != '=' && !isSpace(text[i]) && !isStructural(text[i]) {
		tr.Push(idx, parsetree.Token{Type: parsetree.Flag, Index: start, Text: "-" + string(text[i])})
		i++
	}

	if i < n && text[i] == '=' {
		valStart := i + 1
		j := valStart
		for j < n && !isSpace(text[j]) && !isStructural(text[j]) {
			j++
		}
		tr.Push(idx, parsetree.Token{Type: parsetree.Parameter, Index: valStart, Text: text[valStart:j]})
		return j
	}
	return i
}
