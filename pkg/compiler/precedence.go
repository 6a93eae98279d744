package compiler

// binopPattern allows an arithmetic operation on operands of types a and b,
// in either order, producing result. Operands of another type are cast to
// result first.
type binopPattern struct {
	result, a, b ExprType
}

// binopPatterns is searched in order; the first match wins.
var binopPatterns = [...]binopPattern{
	{TypeInt, TypeInt, TypeInt},
	{TypeFloat, TypeFloat, TypeFloat},
	{TypeChar, TypeChar, TypeChar},
	{TypeFloat, TypeFloat, TypeInt},
	{TypeFloat, TypeFloat, TypeChar},
	{TypeFloat, TypeFloat, TypeBool},
	{TypeInt, TypeInt, TypeChar},
	{TypeInt, TypeInt, TypeBool},
	{TypeChar, TypeChar, TypeBool},
	{TypeInt, TypeBool, TypeBool},
}

func matchBinop(left, right ExprType) (ExprType, bool) {
	for _, p := range binopPatterns {
		if (left == p.a && right == p.b) || (left == p.b && right == p.a) {
			return p.result, true
		}
	}
	return TypeUnknown, false
}

// precedenceTiers lists the operators folded by each pass, tightest first.
var precedenceTiers = [...]map[TokenType]OpKind{
	{STAR: OpMult, SLASH: OpDiv},
	{PLUS: OpAdd, MINUS: OpSub},
}

// ResolvePrecedence folds the arithmetic operators of a bracket-free
// sequence into Binop nodes, one pass per precedence tier. Operators in the
// same tier associate to the left. Tokens with no folding rule are left in
// place.
func ResolvePrecedence(nodes []Node) ([]Node, error) {
	for _, tier := range precedenceTiers {
		var err error
		if nodes, err = foldTier(nodes, tier); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func foldTier(in []Node, tier map[TokenType]OpKind) ([]Node, error) {
	out := make([]Node, 0, len(in))
	for i := 0; i < len(in); i++ {
		tn, ok := in[i].(*TokenNode)
		if !ok {
			out = append(out, in[i])
			continue
		}
		op, ok := tier[tn.Tok.Type]
		if !ok {
			out = append(out, in[i])
			continue
		}

		if len(out) == 0 || i+1 >= len(in) {
			return nil, errorAt(ErrBinopMissingExpression, tn.Pos())
		}
		left, lok := out[len(out)-1].(Expr)
		right, rok := in[i+1].(Expr)
		if !lok || !rok {
			return nil, errorAt(ErrBinopMissingExpression, tn.Pos())
		}

		b, err := newBinop(op, left, right, tn.Pos())
		if err != nil {
			return nil, err
		}
		out[len(out)-1] = b
		i++ // right operand
	}
	return out, nil
}

func newBinop(op OpKind, left, right Expr, at Pos) (*Binop, error) {
	result, ok := matchBinop(left.Type(), right.Type())
	if !ok {
		return nil, errorf(ErrBinopIllegalPattern, at, "%s %s %s", left.Type(), op, right.Type())
	}
	if left.Type() != result {
		left = &Cast{To: result, X: left}
	}
	if right.Type() != result {
		right = &Cast{To: result, X: right}
	}
	return &Binop{Op: op, T: result, Left: left, Right: right, At: at}, nil
}
