package compiler

import (
	"fmt"
	"strings"
)

// ExprType is the evaluated type of an expression.
type ExprType int

const (
	TypeUnknown ExprType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeChar
)

var exprTypeNames = [...]string{
	TypeUnknown: "unknown",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeBool:    "bool",
	TypeChar:    "char",
}

func (t ExprType) String() string {
	if int(t) >= 0 && int(t) < len(exprTypeNames) {
		return exprTypeNames[t]
	}
	return fmt.Sprintf("ExprType(%d)", int(t))
}

// GroupKind is the bracket style of a Group. GroupNone is the top level.
type GroupKind int

const (
	GroupNone GroupKind = iota
	GroupParen
	GroupSquare
	GroupCurly
)

func (k GroupKind) brackets() (string, string) {
	switch k {
	case GroupParen:
		return "(", ")"
	case GroupSquare:
		return "[", "]"
	case GroupCurly:
		return "{", "}"
	}
	return "", ""
}

// OpKind is an arithmetic operator.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMult
	OpDiv
)

func (op OpKind) String() string {
	return [...]string{"+", "-", "*", "/"}[op]
}

// Node is one element of the tree built from a token stream. The set of
// node types is closed: TokenNode, Group, and the Expr implementations below.
type Node interface {
	node()
	Pos() Pos
	String() string
}

// Expr is a node that produces a value.
type Expr interface {
	Node
	Type() ExprType
}

// TokenNode wraps a token that no later stage has claimed, such as an
// operator without a folding rule.
type TokenNode struct {
	Tok Token
}

func (*TokenNode) node()            {}
func (n *TokenNode) Pos() Pos       { return n.Tok.Pos }
func (n *TokenNode) String() string { return n.Tok.Type.String() }

// Group is a bracketed sequence that did not collapse to one expression.
//
//	[1, 2]
//	^      Group{Kind: GroupSquare, Nodes: [1 COMMA 2]}
type Group struct {
	Kind  GroupKind
	At    Pos // opening bracket
	Nodes []Node
}

func (*Group) node()      {}
func (g *Group) Pos() Pos { return g.At }
func (g *Group) String() string {
	open, closing := g.Kind.brackets()
	parts := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		parts[i] = n.String()
	}
	return open + strings.Join(parts, " ") + closing
}

// Identifier is a name. Nothing gives it a type yet.
type Identifier struct {
	Name string
	At   Pos
}

func (*Identifier) node()            {}
func (*Identifier) Type() ExprType   { return TypeUnknown }
func (n *Identifier) Pos() Pos       { return n.At }
func (n *Identifier) String() string { return n.Name }

type IntLiteral struct {
	Value int32
	At    Pos
}

func (*IntLiteral) node()            {}
func (*IntLiteral) Type() ExprType   { return TypeInt }
func (n *IntLiteral) Pos() Pos       { return n.At }
func (n *IntLiteral) String() string { return fmt.Sprintf("%d", n.Value) }

type FloatLiteral struct {
	Value float32
	At    Pos
}

func (*FloatLiteral) node()            {}
func (*FloatLiteral) Type() ExprType   { return TypeFloat }
func (n *FloatLiteral) Pos() Pos       { return n.At }
func (n *FloatLiteral) String() string { return fmt.Sprintf("%gf", n.Value) }

type BoolLiteral struct {
	Value bool
	At    Pos
}

func (*BoolLiteral) node()            {}
func (*BoolLiteral) Type() ExprType   { return TypeBool }
func (n *BoolLiteral) Pos() Pos       { return n.At }
func (n *BoolLiteral) String() string { return fmt.Sprintf("%t", n.Value) }

type CharLiteral struct {
	Value byte
	At    Pos
}

func (*CharLiteral) node()            {}
func (*CharLiteral) Type() ExprType   { return TypeChar }
func (n *CharLiteral) Pos() Pos       { return n.At }
func (n *CharLiteral) String() string { return fmt.Sprintf("%q", rune(n.Value)) }

// Cast converts X to type To. Casts are only ever inserted by the
// precedence resolver, never written in source.
//
//	1 + 2.5
//	^        Cast{To: TypeFloat, X: IntLiteral{1}}
type Cast struct {
	To ExprType
	X  Expr
}

func (*Cast) node()            {}
func (c *Cast) Type() ExprType { return c.To }
func (c *Cast) Pos() Pos       { return c.X.Pos() }
func (c *Cast) String() string { return fmt.Sprintf("%s(%s)", c.To, c.X) }

// From is the type being converted.
func (c *Cast) From() ExprType { return c.X.Type() }

// Binop is a folded arithmetic operation. Both operands have type T.
//
//	x * 2
//	^ ^ ^
//	| | Right
//	| Op, At
//	Left
type Binop struct {
	Op          OpKind
	T           ExprType
	Left, Right Expr
	At          Pos // operator
}

func (*Binop) node()            {}
func (b *Binop) Type() ExprType { return b.T }
func (b *Binop) Pos() Pos       { return b.At }
func (b *Binop) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// isExpr reports whether n produces a value.
func isExpr(n Node) bool {
	_, ok := n.(Expr)
	return ok
}
