package compiler

import (
	"fmt"
	"io"
	"strings"
)

// PrintTokens writes one line per token: line, column, kind and payload.
func PrintTokens(w io.Writer, ts *TokenStream) {
	for _, t := range ts.Tokens {
		writeTokenLine(w, t)
	}
}

func writeTokenLine(w io.Writer, t Token) {
	fmt.Fprintf(w, "%3d  %3d  %s\n", t.Pos.Line, t.Pos.Column, t)
}

// PrintAST writes nodes as a tab-indented tree, children one level deeper
// than their parent.
//
//	[Binop +] int
//		[Int] 2
//		[Binop *] int
//			[Int] 3
//			[Int] 4
func PrintAST(w io.Writer, nodes []Node) {
	for _, n := range nodes {
		printNode(w, n, 0)
	}
}

func printNode(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("\t", depth)
	switch n := n.(type) {
	case *Group:
		open, closing := n.Kind.brackets()
		fmt.Fprintf(w, "%s%s\n", indent, open)
		for _, c := range n.Nodes {
			printNode(w, c, depth+1)
		}
		fmt.Fprintf(w, "%s%s\n", indent, closing)
	case *TokenNode:
		fmt.Fprintf(w, "%s[Token] %s\n", indent, n.Tok.Type)
	case *Identifier:
		fmt.Fprintf(w, "%s[Identifier] %s\n", indent, n.Name)
	case *IntLiteral:
		fmt.Fprintf(w, "%s[Int] %d\n", indent, n.Value)
	case *FloatLiteral:
		fmt.Fprintf(w, "%s[Float] %g\n", indent, n.Value)
	case *BoolLiteral:
		fmt.Fprintf(w, "%s[Bool] %t\n", indent, n.Value)
	case *CharLiteral:
		fmt.Fprintf(w, "%s[Char] %q\n", indent, rune(n.Value))
	case *Cast:
		fmt.Fprintf(w, "%s[Cast] %s -> %s\n", indent, n.From(), n.To)
		printNode(w, n.X, depth+1)
	case *Binop:
		fmt.Fprintf(w, "%s[Binop %s] %s\n", indent, n.Op, n.T)
		printNode(w, n.Left, depth+1)
		printNode(w, n.Right, depth+1)
	}
}
