// Package validator implements spec.md §4.8: walking a parsetree.Tree
// produced by internal/shellparser and checking command existence,
// quote/bracket pairing, and empty-region rules, offering Levenshtein
// "did you mean" suggestions on command-name misses.
//
// The nearest-match logic is grounded on
// opal-lang-opal/runtime/planner/planner.go's findClosestMatch, adapted
// from fuzzy.RankFindFold's case-insensitive ranking to the distance
// bounds and confirmation prompt spec.md §4.8 specifies.
package validator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/better-ecosystem/better-shell/internal/parsetree"
	"github.com/better-ecosystem/better-shell/internal/pathscan"
	"github.com/better-ecosystem/better-shell/internal/shellerr"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// Asker prompts the user with a yes/no question and returns their
// choice, used to confirm a suggested command rewrite (spec.md §4.8's
// ask('y'/'n', default='y')). internal/diagnostic provides the real
// terminal-backed implementation; tests can supply a stub.
type Asker interface {
	AskYesNo(prompt string, defaultYes bool) bool
}

// Validator walks parse trees and reports the first failure found.
type Validator struct {
	builtins map[string]bool
	path     *pathscan.Map
	cwd      string
	ask      Asker
}

// New constructs a Validator. builtins lists recognized built-in command
// names; path is the PATH binary map from internal/pathscan (Design
// Notes §9: passed explicitly rather than consulted as a global); ask
// backs the "did you mean" confirmation prompt.
func New(builtins []string, path *pathscan.Map, ask Asker) *Validator {
	v := &Validator{builtins: make(map[string]bool, len(builtins)), path: path, ask: ask}
	for _, b := range builtins {
		v.builtins[b] = true
	}
	if wd, err := os.Getwd(); err == nil {
		v.cwd = wd
	}
	return v
}

// VerifySyntax runs the validator's checks in order, returning the
// first failure found, or nil if the tree is valid.
func (v *Validator) VerifySyntax(tr *parsetree.Tree) *shellerr.Error {
	return v.verifyGroup(tr, parsetree.Root)
}

func (v *Validator) verifyGroup(tr *parsetree.Tree, idx parsetree.GroupIndex) *shellerr.Error {
	g := tr.Group(idx)

	if len(g.Tokens) > 0 && g.Tokens[0].Type == parsetree.Command {
		if err := v.checkCommand(tr, idx, &g.Tokens[0]); err != nil {
			return err
		}
	}

	var (
		quoteOpenIdx   = -1
		bracketDepth   = 0
		lastBracketTok parsetree.Token
	)

	for i := 1; i < len(g.Tokens); i++ {
		tok := g.Tokens[i]

		switch tok.Type {
		case parsetree.SubContent:
			if err := v.verifyGroup(tr, tok.Group); err != nil {
				return err
			}

		case parsetree.Parameter:
			if tok.Text == "" {
				return v.errAt(tr, idx, tok, shellerr.EmptyParam, "parameter must not be empty")
			}

		case parsetree.StringQuote:
			if quoteOpenIdx < 0 {
				quoteOpenIdx = i
				continue
			}
			// Closing quote: the content between must be non-empty.
			if !hasNonEmptyStringContent(g.Tokens[quoteOpenIdx:i]) {
				return v.errAt(tr, idx, g.Tokens[quoteOpenIdx], shellerr.EmptyString, "string must not be empty")
			}
			quoteOpenIdx = -1

		case parsetree.SubBracket:
			if tok.Text == "{" {
				bracketDepth++
				lastBracketTok = tok
				if i+1 >= len(g.Tokens) || g.Tokens[i+1].Type != parsetree.SubContent {
					return v.errAt(tr, idx, tok, shellerr.EmptySubstitution, "substitution must not be empty")
				}
				if child := g.Tokens[i+1]; len(tr.Group(child.Group).Tokens) == 0 {
					return v.errAt(tr, idx, tok, shellerr.EmptySubstitution, "substitution must not be empty")
				}
				// The parser emits "{", SubContent, "}" for a matched pair, so
				// a "{" without a "}" two tokens later is unclosed; report it
				// before recursing into the unterminated content.
				if i+2 >= len(g.Tokens) || g.Tokens[i+2].Type != parsetree.SubBracket || g.Tokens[i+2].Text != "}" {
					return v.errAt(tr, idx, tok, shellerr.UnclosedBracket, "unclosed bracket")
				}
			} else {
				bracketDepth--
				if bracketDepth < 0 {
					return v.errAt(tr, idx, tok, shellerr.UnclosedBracket, "unmatched closing bracket")
				}
			}
		}
	}

	if bracketDepth > 0 {
		return v.errAt(tr, idx, lastBracketTok, shellerr.UnclosedBracket, "unclosed bracket")
	}
	if quoteOpenIdx >= 0 {
		// An unterminated quote running to end-of-input with no content
		// in between counts as an empty string, not merely unclosed
		// (spec.md §8 scenario 6).
		if !hasNonEmptyStringContent(g.Tokens[quoteOpenIdx:]) {
			return v.errAt(tr, idx, g.Tokens[quoteOpenIdx], shellerr.EmptyString, "string must not be empty")
		}
		return v.errAt(tr, idx, g.Tokens[quoteOpenIdx], shellerr.UnclosedQuote, "unclosed quote")
	}
	return nil
}

func hasNonEmptyStringContent(between []parsetree.Token) bool {
	for _, t := range between {
		if t.Type == parsetree.StringContent && t.Text != "" {
			return true
		}
	}
	return false
}

func (v *Validator) checkCommand(tr *parsetree.Tree, idx parsetree.GroupIndex, tok *parsetree.Token) *shellerr.Error {
	name := tok.Text
	if name == "" {
		return nil
	}

	if strings.HasPrefix(name, "./") {
		return v.checkRelativePath(tr, idx, tok, name)
	}

	if v.builtins[name] {
		return nil
	}
	if v.path != nil {
		if _, ok := v.path.Lookup(name); ok {
			return nil
		}
	}

	candidate, dist := v.nearestKnownName(name)
	if candidate != "" && dist <= 2 {
		if v.confirmRewrite(name, candidate) {
			tok.Text = candidate
			return nil
		}
	}
	return v.errAt(tr, idx, *tok, shellerr.InvalidCommand, "%q is not a recognized command", name)
}

func (v *Validator) checkRelativePath(tr *parsetree.Tree, idx parsetree.GroupIndex, tok *parsetree.Token, name string) *shellerr.Error {
	full := filepath.Join(v.cwd, strings.TrimPrefix(name, "./"))
	info, err := os.Stat(full)
	if err != nil {
		candidate := v.nearestPath(strings.TrimPrefix(name, "./"))
		if candidate != "" && v.confirmRewrite(name, "./"+candidate) {
			tok.Text = "./" + candidate
			return nil
		}
		return v.errAt(tr, idx, *tok, shellerr.InvalidCommand, "%q does not exist", name)
	}
	if !info.Mode().IsRegular() {
		return v.errAt(tr, idx, *tok, shellerr.InvalidCommand, "%q is not a file", name)
	}
	if info.Mode().Perm()&0o100 == 0 {
		return v.errAt(tr, idx, *tok, shellerr.InvalidCommand, "%q is not an executable", name)
	}
	return nil
}

// nearestPath walks each path segment of rel and finds, per segment, the
// child with the lowest Levenshtein distance to the directory's actual
// contents, bounded by distance <= 2 + 2*segments (spec.md §4.8).
func (v *Validator) nearestPath(rel string) string {
	segments := strings.Split(rel, "/")
	bound := 2 + 2*len(segments)

	dir := v.cwd
	rebuilt := make([]string, 0, len(segments))
	for _, seg := range segments {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return ""
		}
		best, bestDist := "", bound+1
		for _, e := range entries {
			d := textutil.Levenshtein(seg, e.Name())
			if d < bestDist {
				best, bestDist = e.Name(), d
			}
		}
		if best == "" || bestDist > bound {
			return ""
		}
		rebuilt = append(rebuilt, best)
		dir = filepath.Join(dir, best)
	}
	return strings.Join(rebuilt, "/")
}

// nearestKnownName finds the smallest Levenshtein distance across
// built-ins and PATH binaries, breaking ties with fuzzy.RankFindNormalizedFold
// to favor case/punctuation-insensitive matches, as
// opal's findClosestMatch does for its own candidate pool.
func (v *Validator) nearestKnownName(name string) (string, int) {
	var names []string
	for b := range v.builtins {
		names = append(names, b)
	}
	if v.path != nil {
		names = append(names, v.path.Names()...)
	}
	if len(names) == 0 {
		return "", -1
	}
	sort.Strings(names)

	best, bestDist := "", -1
	var tied []string
	for _, n := range names {
		d := textutil.Levenshtein(name, n)
		switch {
		case bestDist < 0 || d < bestDist:
			best, bestDist = n, d
			tied = []string{n}
		case d == bestDist:
			tied = append(tied, n)
		}
	}
	if len(tied) > 1 {
		if ranks := fuzzy.RankFindNormalizedFold(name, tied); len(ranks) > 0 {
			best = ranks[0].Target
		}
	}
	return best, bestDist
}

func (v *Validator) confirmRewrite(from, to string) bool {
	if v.ask == nil {
		return false
	}
	return v.ask.AskYesNo("did you mean \""+to+"\" instead of \""+from+"\"?", true)
}

func (v *Validator) errAt(tr *parsetree.Tree, idx parsetree.GroupIndex, tok parsetree.Token, kind shellerr.Kind, format string, args ...any) *shellerr.Error {
	real := tr.ComputeRealIndex(idx, tok)
	length := len(tok.Text)
	if length == 0 {
		length = 1
	}
	ctx := shellerr.Context{
		Source: tr.Group(parsetree.Root).Source,
		Raw:    tr.RootRaw(),
		Offset: real,
		Length: length,
	}
	return shellerr.At(kind, ctx, format, args...)
}
