package parser

import (
	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/lexer"
)

// Parser builds trees out of the tokens of a single line. Trees are handed
// out one by one as soon as their top-level list closes.
type Parser struct {
	lx *lexer.Lexer

	stack []*ast.Node
	tree  *ast.Node

	done    bool
	lastErr error
}

// New creates a parser for the given line
func New(line string) *Parser {
	return &Parser{
		lx:    lexer.New(line),
		stack: []*ast.Node{},
	}
}

// Next advances to the next top-level tree. It returns false at the end of
// the line or on the first structural error, see Err.
func (p *Parser) Next() bool {
	if p.done {
		return false
	}

	for p.lx.Next() {
		tree, err := p.push(p.lx.Token())
		if err != nil {
			p.fail(err)
			return false
		}
		if tree != nil {
			p.tree = tree
			return true
		}
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.fail(&StructuralError{Col: top.Token().Col(), Err: ErrUnclosedList})
		return false
	}

	p.done = true
	p.tree = nil
	return false
}

// Tree returns the tree produced by the last call to Next
func (p *Parser) Tree() *ast.Node {
	return p.tree
}

// Err returns the error that stopped the parser, if any
func (p *Parser) Err() error {
	return p.lastErr
}

func (p *Parser) fail(err error) {
	p.lastErr = err
	p.done = true
	p.tree = nil
	p.stack = p.stack[:0]
}

// push applies a single token to the stack and returns a completed
// top-level tree, if the token completed one.
func (p *Parser) push(tok lexer.Token) (*ast.Node, error) {
	switch tok.Type() {

	case lexer.TokenOpenExpression:
		p.stack = append(p.stack, ast.NewListFromToken(tok))
		return nil, nil

	case lexer.TokenCloseExpression:
		if len(p.stack) == 0 {
			return nil, &StructuralError{Col: tok.Col(), Err: ErrUnmatchedClose}
		}
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if len(p.stack) == 0 {
			return top, nil
		}
		if err := p.stack[len(p.stack)-1].Push(top); err != nil {
			return nil, err
		}
		return nil, nil

	case lexer.TokenAtom:
		atom := ast.NewAtomFromToken(tok)
		if len(p.stack) == 0 {
			return atom, nil
		}
		if err := p.stack[len(p.stack)-1].Push(atom); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return nil, ErrUnexpectedToken
}

// ParseLine returns all the top-level trees of a line. Nothing is returned
// for malformed input.
func ParseLine(line string) ([]*ast.Node, error) {
	trees := []*ast.Node{}
	p := New(line)
	for p.Next() {
		trees = append(trees, p.Tree())
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return trees, nil
}
