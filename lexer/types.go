package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenAtom                      // Anything else up to whitespace or a parenthesis
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenAtom:            "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
