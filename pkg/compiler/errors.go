package compiler

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a compilation failure.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota // broken internal invariant
	ErrStringTooLong
	ErrInvalidNumber
	ErrInvalidClosingParen
	ErrInvalidClosingSquare
	ErrInvalidClosingCurly
	ErrMissingClosingParen
	ErrMissingClosingSquare
	ErrMissingClosingCurly
	ErrBinopMissingExpression
	ErrBinopIllegalPattern
	ErrOutOfRegisters
	ErrUnterminatedString
	ErrInvalidChar
	ErrUnsupportedNode
)

var errorMessages = [...]string{
	ErrUnknown:                "internal compiler error",
	ErrStringTooLong:          "string too long",
	ErrInvalidNumber:          "invalid number",
	ErrInvalidClosingParen:    "invalid closing parenthesis",
	ErrInvalidClosingSquare:   "invalid closing square bracket",
	ErrInvalidClosingCurly:    "invalid closing curly bracket",
	ErrMissingClosingParen:    "missing a closing parenthesis",
	ErrMissingClosingSquare:   "missing a closing square bracket",
	ErrMissingClosingCurly:    "missing a closing curly bracket",
	ErrBinopMissingExpression: "binop is missing an expression on one or both sides",
	ErrBinopIllegalPattern:    "no binop pattern exists for the given operand types",
	ErrOutOfRegisters:         "expression needs more registers than are available",
	ErrUnterminatedString:     "unterminated string literal",
	ErrInvalidChar:            "invalid character literal",
	ErrUnsupportedNode:        "node cannot be compiled to bytecode",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorMessages) {
		return errorMessages[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a compilation failure at a source position. The zero Pos means
// the failure has no meaningful location.
type Error struct {
	Kind   ErrorKind
	Pos    Pos
	Detail string
}

func errorf(kind ErrorKind, pos Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}

func errorAt(kind ErrorKind, pos Pos) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func (e *Error) Message() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

func (e *Error) Error() string {
	if e.Pos == (Pos{}) {
		return e.Message()
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message())
}

// Format renders the error with the offending source line and a caret under
// its column.
//
//	line 1, column 7: invalid closing parenthesis
//	   1 | (1 + 2))
//	     |        ^
func (e *Error) Format(src string) string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	lines := strings.Split(src, "\n")
	idx := e.Pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return sb.String()
	}
	text := strings.TrimRight(lines[idx], "\r")
	fmt.Fprintf(&sb, "%4d | %s\n", e.Pos.Line, text)

	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	if n := len([]rune(text)); col > n+1 {
		col = n + 1
	}
	fmt.Fprintf(&sb, "     | %s^\n", strings.Repeat(" ", col-1))
	return sb.String()
}
