package main

import (
	"fmt"

	"github.com/texnlp/sexpr/lexer"
)

func main() {
	input := `(S (NP-SBJ (NNP Pierre) (NNP Vinken)) (VP (VBZ joins)) (. .))`

	for i, tok := range lexer.Tokenize(input) {
		fmt.Printf("token[%d] (type: %v, col: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Col(), tok.Text())
	}
}
