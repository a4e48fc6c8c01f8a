package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/texnlp/sexpr"
	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/lexer"
	"github.com/texnlp/sexpr/parser"
)

// EmptyElementTag marks traces and other empty elements in
// the Penn Treebank
const EmptyElementTag = "-NONE-"

type TreebankOptions struct {

	// Lenient makes the conversion skip malformed trees. All the
	// errors are still returned (as a multierror) at the end.
	Lenient bool
}

// parenDepth returns the nesting change produced by a line
func parenDepth(line string) int {
	var depth int
	lx := lexer.New(line)
	for lx.Next() {
		switch lx.Token().Type() {
		case lexer.TokenOpenExpression:
			depth++
		case lexer.TokenCloseExpression:
			depth--
		}
	}
	return depth
}

// Preterminals collects (word, tag) pairs of a tree in the left to
// right order. Empty elements are skipped.
func Preterminals(tree *ast.Node) [][2]string {
	ans := [][2]string{}
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if !n.IsList() {
			return
		}
		if n.Len() == 2 && n.Child(0).IsAtom() && n.Child(1).IsAtom() {
			if n.Child(0).Text() != EmptyElementTag {
				ans = append(ans, [2]string{n.Child(1).Text(), n.Child(0).Text()})
			}
			return
		}
		for _, ch := range n.List() {
			walk(ch)
		}
	}
	walk(tree)
	return ans
}

func annotateLine(err error, line int) error {
	var se *parser.StructuralError
	if errors.As(err, &se) {
		se.Line = line
	}
	return err
}

// Treebank reads bracketed trees (which may span several lines) and
// writes one "word\ttag" line per preterminal, each sentence followed
// by a blank line.
func Treebank(w io.Writer, r io.Reader, opts TreebankOptions) (Stats, error) {
	var stats Stats
	var errs *multierror.Error
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(w)

	var chunk []string
	var depth, lineNum, chunkStart int

	flush := func() error {
		text := strings.Join(chunk, " ")
		chunk = chunk[:0]
		depth = 0
		trees, err := sexpr.Parse(text)
		if err != nil {
			err = annotateLine(err, chunkStart)
			if !opts.Lenient {
				return err
			}
			stats.Skipped++
			errs = multierror.Append(errs, err)
			return nil
		}
		for _, tree := range trees {
			leaves := Preterminals(tree)
			if len(leaves) == 0 {
				continue
			}
			for _, leaf := range leaves {
				if _, err := fmt.Fprintf(bw, "%s\t%s\n", leaf[0], leaf[1]); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			stats.Sentences++
			stats.Tokens += len(leaves)
		}
		return nil
	}

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || (strings.HasPrefix(line, "*") && len(chunk) == 0) {
			continue
		}
		if len(chunk) == 0 {
			chunkStart = lineNum
		}
		chunk = append(chunk, line)
		depth += parenDepth(line)
		if depth <= 0 {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	if len(chunk) > 0 {
		if err := flush(); err != nil {
			return stats, err
		}
	}
	if err := bw.Flush(); err != nil {
		return stats, err
	}
	stats.log("treebank")
	return stats, errs.ErrorOrNil()
}
