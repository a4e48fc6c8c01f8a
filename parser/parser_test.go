package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `hello`,
			Out: `hello`,
		},
		{
			In:  `1 3 3.4 5.6789`,
			Out: `1 3 3.4 5.6789`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  "(1\t 2   \r3  )",
			Out: "(1 2 3)",
		},
		{
			In:  `() (1) ()`,
			Out: `() (1) ()`,
		},
		{
			In:  `(a (b c) d)`,
			Out: `(a (b c) d)`,
		},
		{
			In:  `(1 2 () (3(4(5))) 6 (7))`,
			Out: `(1 2 () (3 (4 (5))) 6 (7))`,
		},
		{
			In:  `a (b) c`,
			Out: `a (b) c`,
		},
		{
			In:  `( (S (NP-SBJ (NNP Pierre) (NNP Vinken)) (VP (MD will)) (. .)) )`,
			Out: `((S (NP-SBJ (NNP Pierre) (NNP Vinken)) (VP (MD will)) (. .)))`,
		},
	}

	for i := range testCases {
		trees, err := ParseLine(testCases[i].In)
		assert.NoError(t, err)
		assert.NotNil(t, trees)
		assert.Equal(t, testCases[i].Out, ast.EncodeAll(trees))
	}
}

func TestParserShape(t *testing.T) {
	trees, err := ParseLine(`(a (b c) d)`)
	require.NoError(t, err)
	require.Len(t, trees, 1)

	expected := ast.NewList(
		ast.NewAtom("a"),
		ast.NewList(ast.NewAtom("b"), ast.NewAtom("c")),
		ast.NewAtom("d"),
	)
	assert.True(t, expected.Equal(trees[0]))
	assert.True(t, trees[0].Child(1).IsList())
	assert.True(t, trees[0].Child(0).IsAtom())
}

func TestParserBareAtom(t *testing.T) {
	trees, err := ParseLine(`hello`)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.True(t, trees[0].IsAtom())
	assert.Equal(t, "hello", trees[0].Text())
}

func TestParserMultipleExpressions(t *testing.T) {
	trees, err := ParseLine(`(a) (b c)`)
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.True(t, ast.NewList(ast.NewAtom("a")).Equal(trees[0]))
	assert.True(t, ast.NewList(ast.NewAtom("b"), ast.NewAtom("c")).Equal(trees[1]))
}

func TestParserKeepsNumericAtoms(t *testing.T) {
	trees, err := ParseLine(`(1 2 3 007)`)
	require.NoError(t, err)
	require.Len(t, trees, 1)

	values := []string{}
	for _, child := range trees[0].List() {
		assert.True(t, child.IsAtom())
		values = append(values, child.Text())
	}
	assert.Equal(t, []string{"1", "2", "3", "007"}, values)
}

func TestParserWhitespaceIdempotence(t *testing.T) {
	a, err := ParseLine(`(a    b)`)
	require.NoError(t, err)
	b, err := ParseLine(`(a b)`)
	require.NoError(t, err)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.True(t, a[0].Equal(b[0]))
}

func TestParserUnicodeWhitespace(t *testing.T) {
	a, err := ParseLine("(a\u2003b)")
	require.NoError(t, err)
	b, err := ParseLine(`(a b)`)
	require.NoError(t, err)
	require.Len(t, a, 1)
	assert.True(t, a[0].Equal(b[0]))
	assert.Equal(t, 2, a[0].Len())
}

func TestParserRoundTripsInvalidUTF8(t *testing.T) {
	in := "(NN caf\xe9)"
	trees, err := ParseLine(in)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, "caf\xe9", trees[0].Child(1).Text())
	assert.Equal(t, in, string(ast.Encode(trees[0])))
}

func TestParserStructuralErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
		Col int
	}{
		{
			In:  `(a b`,
			Err: ErrUnclosedList,
			Col: 1,
		},
		{
			In:  `a b)`,
			Err: ErrUnmatchedClose,
			Col: 4,
		},
		{
			In:  `(a (b c)`,
			Err: ErrUnclosedList,
			Col: 1,
		},
		{
			In:  `((a) (b`,
			Err: ErrUnclosedList,
			Col: 6,
		},
		{
			In:  `(a))`,
			Err: ErrUnmatchedClose,
			Col: 4,
		},
		{
			In:  `)`,
			Err: ErrUnmatchedClose,
			Col: 1,
		},
	}

	for i := range testCases {
		trees, err := ParseLine(testCases[i].In)
		assert.Nil(t, trees)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, testCases[i].Err), "input %q: %v", testCases[i].In, err)

		var se *StructuralError
		if assert.True(t, errors.As(err, &se)) {
			assert.Equal(t, testCases[i].Col, se.Col, "input %q", testCases[i].In)
			assert.Equal(t, 0, se.Line)
		}
	}
}

func TestParserIsLazy(t *testing.T) {
	p := New(`(a) b (c`)

	assert.True(t, p.Next())
	assert.Equal(t, "(a)", string(ast.Encode(p.Tree())))

	assert.True(t, p.Next())
	assert.Equal(t, "b", string(ast.Encode(p.Tree())))

	assert.False(t, p.Next())
	assert.ErrorIs(t, p.Err(), ErrUnclosedList)
	assert.Nil(t, p.Tree())
	assert.False(t, p.Next())
}

func TestParserEmptyLine(t *testing.T) {
	p := New("   \t ")
	assert.False(t, p.Next())
	assert.NoError(t, p.Err())

	trees, err := ParseLine("")
	assert.NoError(t, err)
	assert.Empty(t, trees)
}

func TestStructuralErrorMessage(t *testing.T) {
	err := &StructuralError{Line: 3, Col: 7, Err: ErrUnclosedList}
	assert.Equal(t, "line 3, col 7: unclosed list", err.Error())

	err.Line = 0
	assert.Equal(t, "col 7: unclosed list", err.Error())
}

func TestParserRejectsInvalidToken(t *testing.T) {
	p := New("")
	_, err := p.push(lexer.NewToken(lexer.TokenInvalid, "?", 1))
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}
