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

import (
	"fmt"
	"strings"

	"github.com/typeforge/feacompile/lexer"
)

// GlyphMap answers whether a name is a known glyph name, the only
// question the tree builder needs in order to disambiguate a hyphenated
// identifier into a glyph range.
type GlyphMap interface {
	Contains(name string) bool
}

// Diagnostic is a (message) pair the tree builder reports while
// validating a token; the caller attaches the source range.
type Diagnostic struct {
	Message string
}

// ValidateToken inspects an identifier token's text and, if a glyph map
// is available, decides whether it should be emitted as a single
// GlyphName node or split into a GlyphRange node of three tokens (head
// name, hyphen, tail name).
//
// It returns the child nodes/tokens to emit under the caller's current
// node, the resulting NodeKind (NodeGlyphName or NodeGlyphRange), and an
// optional diagnostic if the text is ambiguous or names nothing known.
func ValidateToken(text string, glyphs GlyphMap) (NodeKind, []NodeOrToken, *Diagnostic) {
	if glyphs == nil || !strings.Contains(text, "-") {
		return NodeGlyphName, []NodeOrToken{{Token: &Token{Kind: lexer.Ident, Text: text}}}, nil
	}

	splits := trySplitRange(text, glyphs)
	switch len(splits) {
	case 0:
		if glyphs.Contains(text) {
			return NodeGlyphName, []NodeOrToken{{Token: &Token{Kind: lexer.Ident, Text: text}}}, nil
		}
		return NodeGlyphName, []NodeOrToken{{Token: &Token{Kind: lexer.Ident, Text: text}}},
			&Diagnostic{Message: fmt.Sprintf("%q is neither a known glyph or a range of known glyphs", text)}
	case 1:
		s := splits[0]
		children := []NodeOrToken{
			{Token: &Token{Kind: lexer.Ident, Text: text[:s]}},
			{Token: &Token{Kind: lexer.Hyphen, Text: "-"}},
			{Token: &Token{Kind: lexer.Ident, Text: text[s+1:]}},
		}
		return NodeGlyphRange, children, nil
	default:
		return NodeGlyphName, []NodeOrToken{{Token: &Token{Kind: lexer.Ident, Text: text}}},
			&Diagnostic{Message: fmt.Sprintf(
				"the name '%s' contains multiple possible glyph ranges (%s). Please insert spaces to disambiguate",
				text, describeSplits(text, splits))}
	}
}

// trySplitRange returns the byte offsets of every hyphen in text at which
// splitting into (head, tail) yields two names both known to glyphs.
// Offsets are returned in ascending order.
func trySplitRange(text string, glyphs GlyphMap) []int {
	var splits []int
	for i := 0; i < len(text); i++ {
		if text[i] != '-' {
			continue
		}
		head, tail := text[:i], text[i+1:]
		if head == "" || tail == "" {
			continue
		}
		if glyphs.Contains(head) && glyphs.Contains(tail) {
			splits = append(splits, i)
		}
	}
	return splits
}

func describeSplits(text string, splits []int) string {
	parts := make([]string, len(splits))
	for i, s := range splits {
		parts[i] = fmt.Sprintf("%s-%s", text[:s], text[s+1:])
	}
	return strings.Join(parts, ", ")
}
