package compiler

import (
	"fmt"
	"io"
	"strings"
)

// MaxStringLen is the longest string literal, identifier or number text the
// lexer accepts, in characters.
const MaxStringLen = 1024

type lexState int

const (
	stateNormal lexState = iota
	stateString
	stateChar
	stateLineComment
	stateBlockComment
	stateNumber
)

// Lexer holds all mutable state for a single scanning pass over src. It
// consumes one rune at a time; a single-character token is held back until
// the next rune shows whether it starts a two-character token.
type Lexer struct {
	src       []rune
	pos       int  // index of the next rune to consume
	line, col int  // position of the rune just consumed
	prev      rune // rune consumed before the current one
	state     lexState

	tokens []Token
	trace  io.Writer

	word    []rune // current identifier, number or literal text
	wordPos Pos

	pending    TokenType // held back single-character token
	pendingPos Pos
	hasPending bool

	escaped    bool // inside a string or char literal, after a backslash
	prevStar   bool // inside a block comment, after a '*'
	hasDecimal bool // inside a number, a '.' was seen
}

// NewLexer returns a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

// SetTrace makes the lexer print every token it emits to w.
func (l *Lexer) SetTrace(w io.Writer) { l.trace = w }

// Lex reads all of r and tokenizes it.
func Lex(r io.Reader) (*TokenStream, error) {
	l, err := newLexerFrom(r)
	if err != nil {
		return nil, err
	}
	return l.Tokenize()
}

func newLexerFrom(r io.Reader) (*Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return NewLexer(string(src)), nil
}

// LexString tokenizes src.
func LexString(src string) (*TokenStream, error) {
	return NewLexer(src).Tokenize()
}

// Tokenize runs the lexer to the end of its input.
func (l *Lexer) Tokenize() (*TokenStream, error) {
	for l.pos < len(l.src) {
		r := l.advance()
		if err := l.step(r, Pos{Line: l.line, Column: l.col}); err != nil {
			return nil, err
		}
	}
	if err := l.finish(); err != nil {
		return nil, err
	}
	return &TokenStream{Tokens: l.tokens}, nil
}

// advance consumes one rune and moves the position onto it. The line only
// changes after a raw newline, so escaped newlines inside strings don't count.
func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if l.prev == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.prev = r
	return r
}

func (l *Lexer) step(r rune, p Pos) error {
	switch l.state {
	case stateString:
		return l.stepString(r, p)
	case stateChar:
		return l.stepChar(r, p)
	case stateLineComment:
		if r == '\n' {
			l.state = stateNormal
		}
		return nil
	case stateBlockComment:
		if l.prevStar && r == '/' {
			l.state = stateNormal
		}
		l.prevStar = r == '*'
		return nil
	case stateNumber:
		if len(l.word) == 1 && l.word[0] == '0' && (r == 'x' || r == 'b') {
			l.word = append(l.word, r)
			return nil
		}
		if isASCIIAlnum(r) || (r == '.' && !l.hasDecimal) {
			if r == '.' {
				l.hasDecimal = true
			}
			return l.appendWord(r, p)
		}
		// The number ends here; r starts whatever comes next.
		if err := l.flushNumber(); err != nil {
			return err
		}
	}
	return l.stepNormal(r, p)
}

func (l *Lexer) stepNormal(r rune, p Pos) error {
	if l.hasPending {
		l.hasPending = false
		if t2, ok := token2For(l.pending, r); ok {
			switch t2 {
			case LINE_COMMENT:
				l.state = stateLineComment
			case BLOCK_COMMENT:
				l.state = stateBlockComment
				l.prevStar = false
			default:
				l.emit(Token{Type: t2, Pos: l.pendingPos})
			}
			return nil
		}
		l.emit(Token{Type: l.pending, Pos: l.pendingPos})
	}

	switch {
	case r == '"' || r == '\'':
		l.flushWord()
		l.state = stateString
		if r == '\'' {
			l.state = stateChar
		}
		l.word = l.word[:0]
		l.wordPos = p
		l.escaped = false
	case isSpace(r):
		l.flushWord()
	case '0' <= r && r <= '9':
		l.flushWord()
		l.state = stateNumber
		l.word = append(l.word[:0], r)
		l.wordPos = p
		l.hasDecimal = false
	default:
		if t1, ok := token1For(r); ok {
			l.flushWord()
			l.pending, l.pendingPos, l.hasPending = t1, p, true
			return nil
		}
		if len(l.word) == 0 {
			l.wordPos = p
		}
		return l.appendWord(r, p)
	}
	return nil
}

func (l *Lexer) stepString(r rune, p Pos) error {
	if l.escaped {
		l.escaped = false
		return l.appendWord(unescape(r), p)
	}
	switch r {
	case '"':
		l.emit(Token{Type: STRING, Pos: l.wordPos, payload: textPayload(string(l.word))})
		l.word = l.word[:0]
		l.state = stateNormal
		return nil
	case '\\':
		l.escaped = true
		return nil
	}
	return l.appendWord(r, p)
}

func (l *Lexer) stepChar(r rune, p Pos) error {
	if !l.escaped {
		switch r {
		case '\'':
			if len(l.word) != 1 {
				return errorf(ErrInvalidChar, l.wordPos, "character literal must hold exactly one character")
			}
			l.emit(Token{Type: CHAR_LIT, Pos: l.wordPos, payload: charPayload(l.word[0])})
			l.word = l.word[:0]
			l.state = stateNormal
			return nil
		case '\\':
			l.escaped = true
			return nil
		}
	} else {
		l.escaped = false
		r = unescape(r)
	}
	if len(l.word) > 0 {
		return errorf(ErrInvalidChar, l.wordPos, "character literal must hold exactly one character")
	}
	if r > 0xFF {
		return errorf(ErrInvalidChar, l.wordPos, "%q does not fit in a byte", r)
	}
	l.word = append(l.word, r)
	return nil
}

func (l *Lexer) finish() error {
	switch l.state {
	case stateString:
		return errorAt(ErrUnterminatedString, l.wordPos)
	case stateChar:
		return errorf(ErrInvalidChar, l.wordPos, "unterminated character literal")
	case stateNumber:
		return l.flushNumber()
	case stateNormal:
		if l.hasPending {
			l.hasPending = false
			l.emit(Token{Type: l.pending, Pos: l.pendingPos})
		}
		l.flushWord()
	}
	return nil
}

func (l *Lexer) appendWord(r rune, p Pos) error {
	if len(l.word) >= MaxStringLen {
		return errorf(ErrStringTooLong, p, "longer than %d characters", MaxStringLen)
	}
	l.word = append(l.word, r)
	return nil
}

// flushWord emits the pending identifier or keyword, if any.
func (l *Lexer) flushWord() {
	if len(l.word) == 0 {
		return
	}
	s := string(l.word)
	l.word = l.word[:0]
	if kw, ok := keywords[s]; ok {
		l.emit(Token{Type: kw, Pos: l.wordPos})
		return
	}
	l.emit(Token{Type: IDENTIFIER, Pos: l.wordPos, payload: textPayload(s)})
}

func (l *Lexer) flushNumber() error {
	l.state = stateNormal
	tok := Token{Type: NUM_UNIDENTIFIED, Pos: l.wordPos, payload: textPayload(string(l.word))}
	l.word = l.word[:0]
	if err := tok.resolveNumber(); err != nil {
		return err
	}
	l.emit(tok)
	return nil
}

func (l *Lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
	if l.trace != nil {
		writeTokenLine(l.trace, t)
	}
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 'c':
		return '\033'
	case '0':
		return 0
	case 't':
		return '\t'
	}
	return r
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\r\n", r)
}

func isASCIIAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}
