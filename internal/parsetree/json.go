package parsetree

import "encoding/json"

// jsonToken mirrors §4.11's token wire shape: { "type", "index", "data" }
// where data is either a string or a recursively serialized group.
type jsonToken struct {
	Type         string          `json:"type"`
	Index        int             `json:"index"`
	Data         json.RawMessage `json:"data"`
	OperatorType string          `json:"operator_type,omitempty"`
}

type jsonGroup struct {
	Raw    string      `json:"raw"`
	Tokens []jsonToken `json:"tokens"`
}

// MarshalGroup serializes the group at idx, recursing into SubContent
// children, per spec.md §4.11.
func (t *Tree) MarshalGroup(idx GroupIndex) ([]byte, error) {
	jg, err := t.toJSONGroup(idx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jg)
}

func (t *Tree) toJSONGroup(idx GroupIndex) (*jsonGroup, error) {
	g := t.Group(idx)
	jg := &jsonGroup{Raw: g.Raw, Tokens: make([]jsonToken, 0, len(g.Tokens))}

	for _, tok := range g.Tokens {
		jt := jsonToken{Type: tok.Type.String(), Index: tok.Index}
		if tok.Type == Operator {
			jt.OperatorType = tok.OperatorType.String()
		}

		if tok.IsGroupRef() {
			child, err := t.toJSONGroup(tok.Group)
			if err != nil {
				return nil, err
			}
			raw, err := json.Marshal(child)
			if err != nil {
				return nil, err
			}
			jt.Data = raw
		} else {
			raw, err := json.Marshal(tok.Text)
			if err != nil {
				return nil, err
			}
			jt.Data = raw
		}
		jg.Tokens = append(jg.Tokens, jt)
	}
	return jg, nil
}

// UnmarshalTree reconstructs a Tree from the JSON produced by
// MarshalGroup, rebuilding Index/Parent links from Raw (§8's round-trip
// property explicitly excludes Index/Parent from the comparison, but
// they are reconstructable, so we rebuild them for a usable tree).
func UnmarshalTree(source string, data []byte) (*Tree, error) {
	var jg jsonGroup
	if err := json.Unmarshal(data, &jg); err != nil {
		return nil, err
	}
	tr := &Tree{}
	tr.Groups = append(tr.Groups, TokenGroup{Raw: jg.Raw, Source: source, Parent: NoParent})
	if err := tr.buildFromJSON(Root, &jg); err != nil {
		return nil, err
	}
	return tr, nil
}

func (t *Tree) buildFromJSON(idx GroupIndex, jg *jsonGroup) error {
	for _, jt := range jg.Tokens {
		typ := parseTokenType(jt.Type)
		tok := Token{Type: typ, Index: jt.Index}
		if typ == Operator {
			tok.OperatorType = parseOperatorType(jt.OperatorType)
		}

		if typ == SubContent {
			var childJG jsonGroup
			if err := json.Unmarshal(jt.Data, &childJG); err != nil {
				return err
			}
			childIdx := t.NewGroup(idx, childJG.Raw)
			tok.Group = childIdx
			t.Groups[idx].Tokens = append(t.Groups[idx].Tokens, tok)
			if err := t.buildFromJSON(childIdx, &childJG); err != nil {
				return err
			}
			continue
		}

		var s string
		if err := json.Unmarshal(jt.Data, &s); err != nil {
			return err
		}
		tok.Text = s
		t.Groups[idx].Tokens = append(t.Groups[idx].Tokens, tok)
	}
	return nil
}

func parseTokenType(s string) TokenType {
	for tt := Command; tt <= StringContent; tt++ {
		if tt.String() == s {
			return tt
		}
	}
	return Unknown
}

func parseOperatorType(s string) OperatorType {
	for ot := None; ot <= MultiSeparator; ot++ {
		if ot.String() == s {
			return ot
		}
	}
	return None
}
