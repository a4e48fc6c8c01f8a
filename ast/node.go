package ast

import (
	"errors"
	"fmt"

	"github.com/texnlp/sexpr/lexer"
)

var errAtomChildren = errors.New("nodes of type atom can't accept children")

// Node is either an atom (a string) or an ordered list of nodes.
type Node struct {
	nt  NodeType
	tok *lexer.Token

	text     string
	children []*Node
}

// NewAtom creates an atom node holding the given text
func NewAtom(text string) *Node {
	return &Node{
		nt:   NodeTypeAtom,
		text: text,
	}
}

// NewList creates a list node with the given children
func NewList(children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		nt:       NodeTypeList,
		children: children,
	}
}

// NewAtomFromToken creates an atom node out of an atom token
func NewAtomFromToken(tok lexer.Token) *Node {
	n := NewAtom(tok.Text())
	n.tok = &tok
	return n
}

// NewListFromToken creates an empty list node opened by the given token
func NewListFromToken(tok lexer.Token) *Node {
	n := NewList()
	n.tok = &tok
	return n
}

// Token returns the token associated to the node. Nodes not created by the
// parser have no token.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// IsAtom returns true if the node is an atom
func (n *Node) IsAtom() bool {
	return n.nt == NodeTypeAtom
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt == NodeTypeList
}

// Text returns the text of an atom, lists have no text.
func (n *Node) Text() string {
	return n.text
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child or nil if there is no such child.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Push appends a child node to a parent node of type list. Pushing onto
// an atom is an error.
func (n *Node) Push(node *Node) error {
	if n.IsList() {
		n.children = append(n.children, node)
		return nil
	}
	return errAtomChildren
}

// Equal reports whether both trees have the same shape and atoms.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.nt != other.nt {
		return false
	}
	if n.IsAtom() {
		return n.text == other.text
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	if n.nt == NodeTypeList {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.text)
}
