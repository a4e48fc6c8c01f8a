// Package sexpr reads lines of parenthesized expressions, such as Penn
// Treebank trees, into ast.Node trees.
//
// Each line is parsed on its own. A line may hold any number of top-level
// expressions and bare atoms:
//
//	(a (b c) d) e (f)
//
// yields three trees. Atoms are runs of characters other than whitespace
// and parentheses and are never converted to numbers.
package sexpr

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/parser"
	"golang.org/x/sync/errgroup"
)

const maxLineSize = 16 * 1024 * 1024

// Parse returns the top-level trees found in a single line.
func Parse(line string) ([]*ast.Node, error) {
	return parser.ParseLine(line)
}

// Reader parses an input line by line.
type Reader struct {
	sc *bufio.Scanner

	line  int
	trees []*ast.Node

	lastErr error
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next parses the next line. It returns false at the end of the input or on
// the first error.
func (r *Reader) Next() bool {
	if r.lastErr != nil {
		return false
	}
	if !r.sc.Scan() {
		r.lastErr = r.sc.Err()
		r.trees = nil
		return false
	}
	r.line++
	trees, err := parser.ParseLine(strings.TrimRight(r.sc.Text(), "\r\n"))
	if err != nil {
		r.lastErr = withLine(err, r.line)
		r.trees = nil
		return false
	}
	r.trees = trees
	return true
}

// Trees returns the trees of the line read by the last call to Next. Blank
// lines yield no trees.
func (r *Reader) Trees() []*ast.Node {
	return r.trees
}

// Line returns the 1-based number of the last line read
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) Err() error {
	return r.lastErr
}

// ParseLines parses independent lines concurrently using at most workers
// goroutines (no limit for workers <= 0). The result keeps the order of
// the input lines. The first error stops the remaining work.
func ParseLines(ctx context.Context, lines []string, workers int) ([][]*ast.Node, error) {
	ans := make([][]*ast.Node, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trees, err := parser.ParseLine(line)
			if err != nil {
				return withLine(err, i+1)
			}
			ans[i] = trees
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ans, nil
}

func withLine(err error, line int) error {
	var se *parser.StructuralError
	if errors.As(err, &se) {
		se.Line = line
	}
	return err
}
