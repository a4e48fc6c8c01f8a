package main

import (
	"log"
	"os"

	"github.com/texnlp/sexpr/ast"
	"github.com/texnlp/sexpr/parser"
)

func main() {
	input := `(S (NP (DT the) (NN board)) (VP (MD will) (VP (VB join)))) (. .)`

	trees, err := parser.ParseLine(input)
	if err != nil {
		log.Fatal("parser.ParseLine:", err)
	}

	for _, tree := range trees {
		ast.Print(os.Stdout, tree)
	}
}
