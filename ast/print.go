package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "[%d]\n", n.Len())
		for _, child := range n.List() {
			printLevel(w, child, level+1)
		}

	case NodeTypeAtom:
		fmt.Fprintf(w, ": %q\n", n.Text())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) []byte {
	var sb strings.Builder
	encodeNode(&sb, n)
	return []byte(sb.String())
}

// EncodeAll encodes a sequence of top-level nodes separated by spaces
func EncodeAll(nodes []*Node) string {
	encoded := make([]string, 0, len(nodes))
	for _, n := range nodes {
		encoded = append(encoded, string(Encode(n)))
	}
	return strings.Join(encoded, " ")
}

func encodeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString(":nil")
		return
	}
	switch n.Type() {
	case NodeTypeList:
		sb.WriteRune('(')
		for i, child := range n.List() {
			if i > 0 {
				sb.WriteRune(' ')
			}
			encodeNode(sb, child)
		}
		sb.WriteRune(')')

	case NodeTypeAtom:
		sb.WriteString(n.Text())

	default:
		panic("unknown node type")
	}
}
