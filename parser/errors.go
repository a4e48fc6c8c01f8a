package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnclosedList    = errors.New("unclosed list")
	ErrUnmatchedClose  = errors.New("unmatched closing parenthesis")

	// ErrUnexpectedToken is returned for token types the lexer does not
	// produce, e.g. a hand-built lexer.TokenInvalid.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// StructuralError reports unbalanced parentheses. Line is zero unless the
// caller reads line-oriented input and fills it in.
type StructuralError struct {
	Line int
	Col  int
	Err  error
}

func (e *StructuralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("col %d: %v", e.Col, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
