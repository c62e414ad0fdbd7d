package parsetree

// TokenGroup is one node in the parse tree: an ordered token sequence
// parsed from Raw. Parent is a group index, or -1 on the root (§3).
type TokenGroup struct {
	Tokens []Token
	Raw    string
	Source string // only populated on the root
	Parent GroupIndex
}

const NoParent GroupIndex = -1

// Tree is the arena: every TokenGroup produced while parsing one
// top-level input lives in Groups, addressed by GroupIndex. Root is
// always index 0.
type Tree struct {
	Groups []TokenGroup
}

const Root GroupIndex = 0

// NewTree creates a tree with a single empty root group.
func NewTree(source, raw string) *Tree {
	return &Tree{
		Groups: []TokenGroup{{Raw: raw, Source: source, Parent: NoParent}},
	}
}

// Group returns the group at idx.
func (t *Tree) Group(idx GroupIndex) *TokenGroup {
	return &t.Groups[idx]
}

// NewGroup appends a new, empty group as a child of parent and returns
// its index. The caller is responsible for pushing a SubContent token
// referencing the returned index into parent's token list.
func (t *Tree) NewGroup(parent GroupIndex, raw string) GroupIndex {
	t.Groups = append(t.Groups, TokenGroup{Raw: raw, Parent: parent})
	return GroupIndex(len(t.Groups) - 1)
}

// Push appends a token to the group at idx.
func (t *Tree) Push(idx GroupIndex, tok Token) {
	t.Groups[idx].Tokens = append(t.Groups[idx].Tokens, tok)
}

// RootRaw returns the raw text of the top-level input.
func (t *Tree) RootRaw() string {
	return t.Groups[Root].Raw
}

// ComputeRealIndex walks the parent chain from (groupIdx, token.Index) to
// the byte offset into the top-level input (spec.md §4.9, Design Notes
// §9). Each group's SubContent token records, as its own Index, the byte
// offset in the parent's Raw at which the group's content begins (i.e.
// already past the opening '{' or '"'), so accumulating SubContent.Index
// up the chain is sufficient without a separate "+1 for the bracket"
// adjustment.
func (t *Tree) ComputeRealIndex(groupIdx GroupIndex, tok Token) int {
	offset := tok.Index
	cur := groupIdx
	for cur != Root {
		parent := t.Groups[cur].Parent
		parentGroup := &t.Groups[parent]

		found := false
		for _, pt := range parentGroup.Tokens {
			if pt.Type == SubContent && pt.Group == cur {
				offset += pt.Index
				found = true
				break
			}
		}
		if !found {
			break
		}
		cur = parent
	}
	return offset
}
