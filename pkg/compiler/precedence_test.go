package compiler

import (
	"reflect"
	"testing"
)

func TestMatchBinop(t *testing.T) {
	tests := []struct {
		a, b ExprType
		want ExprType
	}{
		{TypeInt, TypeInt, TypeInt},
		{TypeFloat, TypeFloat, TypeFloat},
		{TypeChar, TypeChar, TypeChar},
		{TypeFloat, TypeInt, TypeFloat},
		{TypeFloat, TypeChar, TypeFloat},
		{TypeFloat, TypeBool, TypeFloat},
		{TypeInt, TypeChar, TypeInt},
		{TypeInt, TypeBool, TypeInt},
		{TypeChar, TypeBool, TypeChar},
		{TypeBool, TypeBool, TypeInt},
	}
	for _, tc := range tests {
		for _, pair := range [][2]ExprType{{tc.a, tc.b}, {tc.b, tc.a}} {
			got, ok := matchBinop(pair[0], pair[1])
			if !ok || got != tc.want {
				t.Errorf("matchBinop(%s, %s) = %s, %v; want %s", pair[0], pair[1], got, ok, tc.want)
			}
		}
	}

	for _, other := range []ExprType{TypeUnknown, TypeInt, TypeFloat, TypeBool, TypeChar} {
		if got, ok := matchBinop(TypeUnknown, other); ok {
			t.Errorf("matchBinop(unknown, %s) = %s, want no match", other, got)
		}
	}
}

func tok(tt TokenType, col int) *TokenNode {
	return &TokenNode{Tok: Token{Type: tt, Pos: Pos{1, col}}}
}

func TestResolvePrecedenceLeavesOtherTokens(t *testing.T) {
	one := &IntLiteral{Value: 1, At: Pos{1, 1}}
	two := &IntLiteral{Value: 2, At: Pos{1, 5}}
	in := []Node{one, tok(EQUALS, 3), two, tok(SEMICOLON, 6)}

	got, err := ResolvePrecedence(in)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("ResolvePrecedence = %s, want %s unchanged", nodesString(got), nodesString(in))
	}
}

func TestResolvePrecedenceBothOperandsCast(t *testing.T) {
	in := []Node{
		&BoolLiteral{Value: true, At: Pos{1, 1}},
		tok(STAR, 6),
		&BoolLiteral{Value: false, At: Pos{1, 8}},
	}
	got, err := ResolvePrecedence(in)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := got[0].(*Binop)
	if len(got) != 1 || !ok {
		t.Fatalf("ResolvePrecedence = %s, want one Binop", nodesString(got))
	}
	if b.T != TypeInt || b.Op != OpMult || b.At != (Pos{1, 6}) {
		t.Errorf("Binop = %+v", b)
	}
	for _, operand := range []Expr{b.Left, b.Right} {
		c, ok := operand.(*Cast)
		if !ok || c.To != TypeInt || c.From() != TypeBool {
			t.Errorf("operand %s is not a bool->int cast", operand)
		}
	}
}

func TestResolvePrecedenceEmpty(t *testing.T) {
	got, err := ResolvePrecedence(nil)
	if err != nil || len(got) != 0 {
		t.Errorf("ResolvePrecedence(nil) = %v, %v", got, err)
	}
}
