// feacompile - a compiler for OpenType Feature File (FEA) lookups
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package syntax assembles the concrete-syntax tree that sits between the
// lexer and the lookup compiler: nodes own an ordered list of children
// (nodes or tokens), and carry a byte length plus a relative offset from
// their parent's start. Absolute positions are resolved lazily, only
// when Walk traverses the tree, so construction stays O(n) and does not
// need to rewrite positions as nodes are appended.
package syntax

import "github.com/typeforge/feacompile/lexer"

// NodeKind identifies the grammatical production a Node represents.
type NodeKind uint16

const (
	NodeRoot NodeKind = iota
	NodeGlyphName
	NodeGlyphRange
	NodeGlyphClass
	NodeRule
	NodeFeatureBlock
	NodeLookupBlock
	NodeError
)

// NodeOrToken is the tagged union of tree children: exactly one of Node
// or Token is non-nil.
type NodeOrToken struct {
	Node  *Node
	Token *Token
}

// Token is a tree leaf: a lexical kind plus its exact source text.
type Token struct {
	Kind lexer.Kind
	Text string

	relOffset int
	absPos    absPosCell
}

// Len returns the token's byte length (the length of its source text).
func (t *Token) Len() int { return len(t.Text) }

// Node is a tree-internal element: an ordered list of children, a kind,
// total byte length, and whether a diagnostic was reported while this
// node was the builder's current node.
type Node struct {
	Kind         NodeKind
	Children     []NodeOrToken
	ContainsError bool

	length    int
	relOffset int
	absPos    absPosCell
}

// absPosCell is the lazily-populated absolute position, analogous to a
// `Cell<Option<u32>>` in the original: resolved stays false until a walk
// fills in value (0 is a valid position for the root and for any leading
// child).
type absPosCell struct {
	resolved bool
	value    int
}

// Len returns the node's total byte length.
func (n *Node) Len() int { return n.length }
