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

package syntax

import "github.com/typeforge/feacompile/lexer"

// TreeBuilder accumulates tokens and node spans into a concrete-syntax
// tree. Exactly one node must be open when Finish is called.
type TreeBuilder struct {
	stack []*Node
}

// NewTreeBuilder returns a builder with no node open.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// StartNode opens a new node of the given kind as a child of the
// currently open node (or as the tree root, if none is open yet).
func (b *TreeBuilder) StartNode(kind NodeKind) {
	b.stack = append(b.stack, &Node{Kind: kind})
}

// Token appends a leaf token to the currently open node.
func (b *TreeBuilder) Token(kind lexer.Kind, text string) {
	if len(b.stack) == 0 {
		panic("syntax: Token called with no node open")
	}
	cur := b.stack[len(b.stack)-1]
	tok := &Token{Kind: kind, Text: text, relOffset: cur.length}
	cur.Children = append(cur.Children, NodeOrToken{Token: tok})
	cur.length += len(text)
}

// FinishNode closes the currently open node, folding it into its
// parent's children (or leaving it as the finished root, if it was the
// only node on the stack). containsError marks whether a diagnostic was
// reported while this node was current.
func (b *TreeBuilder) FinishNode(containsError bool) *Node {
	if len(b.stack) == 0 {
		panic("syntax: FinishNode called with no node open")
	}
	n := len(b.stack) - 1
	finished := b.stack[n]
	finished.ContainsError = finished.ContainsError || containsError
	b.stack = b.stack[:n]

	if len(b.stack) > 0 {
		parent := b.stack[len(b.stack)-1]
		finished.relOffset = parent.length
		parent.Children = append(parent.Children, NodeOrToken{Node: finished})
		parent.length += finished.length
	}
	return finished
}

// Finish closes the builder. Exactly one node must remain open (the
// tree root); Finish returns it.
func (b *TreeBuilder) Finish() *Node {
	if len(b.stack) != 1 {
		panic("syntax: Finish called with a node tree that is not exactly one node deep")
	}
	return b.FinishNode(false)
}

// Cursor holds a path into a finished tree, starting at the root.
// NewCursor resolves only the root's absolute position; Cursor has no
// methods for moving along the tree or resolving other positions. Walk
// resolves the absolute offset of every node and token.
type Cursor struct {
	path []pathEntry
}

type pathEntry struct {
	node   *Node
	offset int // absolute offset of node.relOffset's frame, i.e. the parent's absolute start
}

// NewCursor returns a cursor positioned at the root of the tree.
func NewCursor(root *Node) *Cursor {
	root.absPos = absPosCell{resolved: true, value: 0}
	return &Cursor{path: []pathEntry{{node: root, offset: 0}}}
}

// Walk calls visit for every token in the tree, in source order, passing
// the token and its resolved absolute byte offset.
func Walk(root *Node, visit func(tok *Token, absOffset int)) {
	var rec func(n *Node, base int)
	rec = func(n *Node, base int) {
		n.absPos = absPosCell{resolved: true, value: base}
		for _, child := range n.Children {
			switch {
			case child.Token != nil:
				abs := base + child.Token.relOffset
				child.Token.absPos = absPosCell{resolved: true, value: abs}
				visit(child.Token, abs)
			case child.Node != nil:
				rec(child.Node, base+child.Node.relOffset)
			}
		}
	}
	rec(root, 0)
}

// Text concatenates the source text of every token under root, in
// order. For a fully built tree this reproduces the original source
// byte-for-byte (the token round-trip property).
func Text(root *Node) string {
	var out []byte
	Walk(root, func(tok *Token, _ int) {
		out = append(out, tok.Text...)
	})
	return string(out)
}
