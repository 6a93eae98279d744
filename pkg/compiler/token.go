package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	// Literals
	IDENTIFIER TokenType = iota // variable / function name
	STRING                      // string literal "..."
	CHAR_LIT                    // character literal 'c'

	// Single-character tokens. Order matches token1Chars.
	TILDE      // ~
	BACKTICK   // `
	BANG       // !
	AT         // @
	HASH       // #
	DOLLAR     // $
	PERCENT    // %
	CARET      // ^
	AMP        // &
	STAR       // *
	UNDERSCORE // _
	MINUS      // -
	PLUS       // +
	ASSIGN     // =
	PIPE       // |
	BACKSLASH  // \
	COLON      // :
	SEMICOLON  // ;
	DQUOTE     // " (never emitted: opens a string literal)
	QUOTE      // ' (never emitted: opens a char literal)
	COMMA      // ,
	DOT        // .
	QUESTION   // ?
	SLASH      // /
	LPAREN     // (
	RPAREN     // )
	LBRACKET   // [
	RBRACKET   // ]
	LBRACE     // {
	RBRACE     // }
	LESS       // <
	GREATER    // >

	// Two-character tokens, formed from a single-character token and the
	// character after it.
	PLUS_ASSIGN       // +=
	MINUS_ASSIGN      // -=
	STAR_ASSIGN       // *=
	SLASH_ASSIGN      // /=
	PERCENT_ASSIGN    // %=
	EQUALS            // ==
	LESS_EQ           // <=
	GREATER_EQ        // >=
	PLUS_PLUS         // ++
	MINUS_MINUS       // --
	LINE_COMMENT      // // (switches the lexer state, never emitted)
	BLOCK_COMMENT     // /* (switches the lexer state, never emitted)
	BLOCK_COMMENT_END // */

	// Keywords
	INT    // "int"
	FLOAT  // "float"
	BOOL   // "bool"
	CHAR   // "char"
	RETURN // "return"
	WHILE  // "while"
	FOR    // "for"
	IF     // "if"
	ELSE   // "else"
	ELIF   // "elif"
	AND    // "and"
	OR     // "or"
	TRUE   // "true"
	FALSE  // "false"

	// Numbers
	NUM_UNIDENTIFIED // raw number text, not yet parsed
	NUM_INT
	NUM_FLOAT
)

var tokenNames = [...]string{
	IDENTIFIER:        "IDENTIFIER",
	STRING:            "STRING",
	CHAR_LIT:          "CHAR_LIT",
	TILDE:             "TILDE",
	BACKTICK:          "BACKTICK",
	BANG:              "BANG",
	AT:                "AT",
	HASH:              "HASH",
	DOLLAR:            "DOLLAR",
	PERCENT:           "PERCENT",
	CARET:             "CARET",
	AMP:               "AMP",
	STAR:              "STAR",
	UNDERSCORE:        "UNDERSCORE",
	MINUS:             "MINUS",
	PLUS:              "PLUS",
	ASSIGN:            "ASSIGN",
	PIPE:              "PIPE",
	BACKSLASH:         "BACKSLASH",
	COLON:             "COLON",
	SEMICOLON:         "SEMICOLON",
	DQUOTE:            "DQUOTE",
	QUOTE:             "QUOTE",
	COMMA:             "COMMA",
	DOT:               "DOT",
	QUESTION:          "QUESTION",
	SLASH:             "SLASH",
	LPAREN:            "LPAREN",
	RPAREN:            "RPAREN",
	LBRACKET:          "LBRACKET",
	RBRACKET:          "RBRACKET",
	LBRACE:            "LBRACE",
	RBRACE:            "RBRACE",
	LESS:              "LESS",
	GREATER:           "GREATER",
	PLUS_ASSIGN:       "PLUS_ASSIGN",
	MINUS_ASSIGN:      "MINUS_ASSIGN",
	STAR_ASSIGN:       "STAR_ASSIGN",
	SLASH_ASSIGN:      "SLASH_ASSIGN",
	PERCENT_ASSIGN:    "PERCENT_ASSIGN",
	EQUALS:            "EQUALS",
	LESS_EQ:           "LESS_EQ",
	GREATER_EQ:        "GREATER_EQ",
	PLUS_PLUS:         "PLUS_PLUS",
	MINUS_MINUS:       "MINUS_MINUS",
	LINE_COMMENT:      "LINE_COMMENT",
	BLOCK_COMMENT:     "BLOCK_COMMENT",
	BLOCK_COMMENT_END: "BLOCK_COMMENT_END",
	INT:               "INT",
	FLOAT:             "FLOAT",
	BOOL:              "BOOL",
	CHAR:              "CHAR",
	RETURN:            "RETURN",
	WHILE:             "WHILE",
	FOR:               "FOR",
	IF:                "IF",
	ELSE:              "ELSE",
	ELIF:              "ELIF",
	AND:               "AND",
	OR:                "OR",
	TRUE:              "TRUE",
	FALSE:             "FALSE",
	NUM_UNIDENTIFIED:  "NUM_UNIDENTIFIED",
	NUM_INT:           "NUM_INT",
	NUM_FLOAT:         "NUM_FLOAT",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// token1Chars lists every single-character token, in TokenType order
// starting at TILDE.
var token1Chars = [...]rune{
	'~', '`', '!', '@', '#', '$', '%', '^', '&', '*', '_', '-', '+', '=',
	'|', '\\', ':', ';', '"', '\'', ',', '.', '?', '/',
	'(', ')', '[', ']', '{', '}', '<', '>',
}

func token1For(r rune) (TokenType, bool) {
	for i, c := range token1Chars {
		if c == r {
			return TILDE + TokenType(i), true
		}
	}
	return 0, false
}

// token2s pairs a pending single-character token with the next character.
var token2s = [...]struct {
	first TokenType
	next  rune
	typ   TokenType
}{
	{PLUS, '=', PLUS_ASSIGN},
	{MINUS, '=', MINUS_ASSIGN},
	{STAR, '=', STAR_ASSIGN},
	{SLASH, '=', SLASH_ASSIGN},
	{PERCENT, '=', PERCENT_ASSIGN},
	{ASSIGN, '=', EQUALS},
	{LESS, '=', LESS_EQ},
	{GREATER, '=', GREATER_EQ},
	{PLUS, '+', PLUS_PLUS},
	{MINUS, '-', MINUS_MINUS},
	{SLASH, '/', LINE_COMMENT},
	{SLASH, '*', BLOCK_COMMENT},
	{STAR, '/', BLOCK_COMMENT_END},
}

func token2For(first TokenType, r rune) (TokenType, bool) {
	for _, t := range token2s {
		if t.first == first && t.next == r {
			return t.typ, true
		}
	}
	return 0, false
}

// keywords maps source text to its keyword TokenType. Matching is exact.
var keywords = map[string]TokenType{
	"int":    INT,
	"float":  FLOAT,
	"bool":   BOOL,
	"char":   CHAR,
	"return": RETURN,
	"while":  WHILE,
	"for":    FOR,
	"if":     IF,
	"else":   ELSE,
	"elif":   ELIF,
	"and":    AND,
	"or":     OR,
	"true":   TRUE,
	"false":  FALSE,
}

// Pos is a 1-based source position.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// payload is the data carried by a token. A token has at most one.
type payload interface{ isPayload() }

type textPayload string
type intPayload int32
type floatPayload float32
type charPayload byte

func (textPayload) isPayload()  {}
func (intPayload) isPayload()   {}
func (floatPayload) isPayload() {}
func (charPayload) isPayload()  {}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type TokenType
	Pos  Pos

	payload payload
}

// Text returns the token's string payload, if it still owns one.
func (t *Token) Text() (string, bool) {
	s, ok := t.payload.(textPayload)
	return string(s), ok
}

// Int returns the value of a NUM_INT token.
func (t *Token) Int() int32 {
	v, _ := t.payload.(intPayload)
	return int32(v)
}

// Float returns the value of a NUM_FLOAT token.
func (t *Token) Float() float32 {
	v, _ := t.payload.(floatPayload)
	return float32(v)
}

// Char returns the value of a CHAR_LIT token.
func (t *Token) Char() byte {
	v, _ := t.payload.(charPayload)
	return byte(v)
}

// resolveNumber parses a NUM_UNIDENTIFIED token's text in place, replacing
// the text with the numeric value and retagging the token.
func (t *Token) resolveNumber() error {
	text, ok := t.Text()
	if t.Type != NUM_UNIDENTIFIED || !ok {
		return errorf(ErrUnknown, t.Pos, "token %s is not an unparsed number", t.Type)
	}
	n, err := ParseNumber(text)
	if err != nil {
		return errorf(ErrInvalidNumber, t.Pos, "%q", text)
	}
	if n.IsFloat {
		t.Type, t.payload = NUM_FLOAT, floatPayload(n.Float)
	} else {
		t.Type, t.payload = NUM_INT, intPayload(n.Int)
	}
	return nil
}

func (t Token) String() string {
	switch t.Type {
	case NUM_INT:
		return fmt.Sprintf("%-10s %d", t.Type, t.Int())
	case NUM_FLOAT:
		return fmt.Sprintf("%-10s %g", t.Type, t.Float())
	case CHAR_LIT:
		return fmt.Sprintf("%-10s %q", t.Type, rune(t.Char()))
	}
	if s, ok := t.Text(); ok {
		return fmt.Sprintf("%-10s %q", t.Type, s)
	}
	return t.Type.String()
}

// TokenStream is the ordered output of the Lexer. It owns every string
// payload until TakeString moves it out.
type TokenStream struct {
	Tokens []Token
}

// Len returns the number of tokens.
func (ts *TokenStream) Len() int { return len(ts.Tokens) }

// TakeString moves the string payload of token i to the caller. The token
// itself stays in the stream without a payload; taking twice is an error.
func (ts *TokenStream) TakeString(i int) (string, error) {
	t := &ts.Tokens[i]
	s, ok := t.payload.(textPayload)
	if !ok {
		return "", errorf(ErrUnknown, t.Pos, "%s token has no string payload to take", t.Type)
	}
	t.payload = nil
	return string(s), nil
}

// Types returns the token types in order. Handy for tests and traces.
func (ts *TokenStream) Types() []TokenType {
	out := make([]TokenType, len(ts.Tokens))
	for i, t := range ts.Tokens {
		out[i] = t.Type
	}
	return out
}
