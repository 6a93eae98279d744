package compiler

// Reclassify turns each token into a node. Literals and identifiers get
// their own node types; every other token is wrapped in a TokenNode.
// String payloads are moved out of ts into the nodes.
func Reclassify(ts *TokenStream) ([]Node, error) {
	nodes := make([]Node, 0, ts.Len())
	for i := range ts.Tokens {
		t := &ts.Tokens[i]
		switch t.Type {
		case NUM_INT:
			nodes = append(nodes, &IntLiteral{Value: t.Int(), At: t.Pos})
		case NUM_FLOAT:
			nodes = append(nodes, &FloatLiteral{Value: t.Float(), At: t.Pos})
		case TRUE, FALSE:
			nodes = append(nodes, &BoolLiteral{Value: t.Type == TRUE, At: t.Pos})
		case CHAR_LIT:
			nodes = append(nodes, &CharLiteral{Value: t.Char(), At: t.Pos})
		case IDENTIFIER:
			name, err := ts.TakeString(i)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Identifier{Name: name, At: t.Pos})
		default:
			tok := *t
			if _, ok := t.Text(); ok {
				s, err := ts.TakeString(i)
				if err != nil {
					return nil, err
				}
				tok.payload = textPayload(s)
			}
			nodes = append(nodes, &TokenNode{Tok: tok})
		}
	}
	return nodes, nil
}

var (
	openers = map[TokenType]GroupKind{LPAREN: GroupParen, LBRACKET: GroupSquare, LBRACE: GroupCurly}
	closers = map[TokenType]GroupKind{RPAREN: GroupParen, RBRACKET: GroupSquare, RBRACE: GroupCurly}

	invalidClosing = map[GroupKind]ErrorKind{
		GroupParen:  ErrInvalidClosingParen,
		GroupSquare: ErrInvalidClosingSquare,
		GroupCurly:  ErrInvalidClosingCurly,
	}
	missingClosing = map[GroupKind]ErrorKind{
		GroupParen:  ErrMissingClosingParen,
		GroupSquare: ErrMissingClosingSquare,
		GroupCurly:  ErrMissingClosingCurly,
	}
)

// ResolveGroups replaces every bracketed range with its contents: a paren
// group holding a single expression collapses to that expression, anything
// else becomes a Group. Each level is passed through ResolvePrecedence once
// its brackets are gone. The input slice is not modified.
func ResolveGroups(nodes []Node) ([]Node, error) {
	r := &groupResolver{nodes: nodes}
	return r.resolve(GroupNone)
}

type groupResolver struct {
	nodes []Node
	next  int
}

// resolve consumes nodes up to and including the closer for expect, or to
// the end of input when expect is GroupNone.
func (r *groupResolver) resolve(expect GroupKind) ([]Node, error) {
	var out []Node
	for r.next < len(r.nodes) {
		n := r.nodes[r.next]
		r.next++

		tn, ok := n.(*TokenNode)
		if !ok {
			out = append(out, n)
			continue
		}
		if kind, ok := openers[tn.Tok.Type]; ok {
			inner, err := r.resolve(kind)
			if err != nil {
				return nil, err
			}
			if kind == GroupParen && len(inner) == 1 && isExpr(inner[0]) {
				out = append(out, inner[0])
			} else {
				out = append(out, &Group{Kind: kind, At: tn.Pos(), Nodes: inner})
			}
			continue
		}
		if kind, ok := closers[tn.Tok.Type]; ok {
			if kind != expect {
				return nil, errorAt(invalidClosing[kind], tn.Pos())
			}
			return ResolvePrecedence(out)
		}
		out = append(out, n)
	}

	if expect != GroupNone {
		return nil, errorAt(missingClosing[expect], r.nodes[len(r.nodes)-1].Pos())
	}
	return ResolvePrecedence(out)
}

// Parse runs reclassification and group resolution over ts.
func Parse(ts *TokenStream) ([]Node, error) {
	nodes, err := Reclassify(ts)
	if err != nil {
		return nil, err
	}
	return ResolveGroups(nodes)
}
