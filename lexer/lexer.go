package lexer

import "unicode/utf8"

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
)

func isWordBreak(r rune) bool {
	return isWhitespace(r) || isOpenExpression(r) || isCloseExpression(r)
}

// New initializes a Lexer over a single line of text. A Lexer is not
// reusable, create a new one for every line.
func New(line string) *Lexer {
	return &Lexer{
		in:    line,
		state: lexDefaultState,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in string

	state lexState

	tok   Token
	ready bool

	// byte offsets into in
	start  int
	offset int

	// rune counts, 0-based
	startCol int
	col      int
}

// Next runs the lexer until the next token is found. It returns false once
// the input is exhausted.
func (lx *Lexer) Next() bool {
	lx.ready = false
	for lx.state != nil && !lx.ready {
		lx.state = lx.state(lx)
	}
	return lx.ready
}

// Token returns the token found by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: lx.in[lx.start:lx.offset],
		col:    lx.startCol + 1,
	}
	lx.ready = true
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
	lx.startCol = lx.col
}

// peek decodes the rune at the current offset. Invalid bytes decode as
// utf8.RuneError of width 1 and stay untouched in the lexeme.
func (lx *Lexer) peek() (rune, int, bool) {
	if lx.offset >= len(lx.in) {
		return 0, 0, false
	}
	r, width := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return r, width, true
}

func (lx *Lexer) next() (rune, bool) {
	r, width, ok := lx.peek()
	if ok {
		lx.offset += width
		lx.col++
	}
	return r, ok
}

func lexDefaultState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return nil
	}

	switch {
	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	default:
		return lexAtom
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexAtom(lx *Lexer) lexState {
	for {
		r, _, ok := lx.peek()
		if !ok || isWordBreak(r) {
			break
		}
		lx.next()
	}
	lx.emit(TokenAtom)
	return lexDefaultState
}

// Tokenize takes a line and returns all the tokens within it.
func Tokenize(line string) []Token {
	tokens := []Token{}
	lx := New(line)
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}
	return tokens
}
