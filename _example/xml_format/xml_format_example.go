package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsList() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		for _, child := range node.List() {
			printIndentedTree(child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), node.Text(), node.Type())
}

func main() {
	input := `(S (NP (NNP Vinken)) (VP (VBZ is) (NP (NN chairman))) (. .))`

	trees, err := parser.ParseLine(input)
	if err != nil {
		log.Fatal("parser.ParseLine:", err)
	}

	for _, tree := range trees {
		printTree(tree)
	}
}
