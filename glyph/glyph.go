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

// Package glyph contains the types used to name and group glyphs while
// compiling feature rules, independent of any particular font's glyph
// order.
package glyph

// ID is an index into the host's glyph order. The first glyph, index 0,
// is reserved for the "missing glyph" (.notdef).
type ID uint16

// NOTDEF is the glyph id reserved for the missing-glyph glyph.
const NOTDEF ID = 0

// Pair represents two consecutive glyphs, as used by pair-positioning
// lookups and ligature kerning tables.
type Pair struct {
	Left  ID
	Right ID
}

// Class is an immutable ordered sequence of glyph ids. Order matters and
// duplicates are preserved: some substitution rules (notably ligature and
// alternate substitutions) are sensitive to both.
type Class []ID

// Contains reports whether id appears anywhere in the class.
func (c Class) Contains(id ID) bool {
	for _, g := range c {
		if g == id {
			return true
		}
	}
	return false
}

// OrClassKind distinguishes the two cases of an OrClass.
type OrClassKind uint8

const (
	// KindGlyph marks an OrClass holding a single glyph.
	KindGlyph OrClassKind = iota
	// KindClass marks an OrClass holding a glyph class.
	KindClass
)

// OrClass is the tagged union of a single glyph and a glyph class, as they
// appear interchangeably at most positions in a feature rule (a bare glyph
// name, a named glyph class, or an inline bracketed class).
type OrClass struct {
	Kind  OrClassKind
	Glyph ID
	Class Class
}

// Glyphs returns the set of glyph ids this value denotes, regardless of
// which case it holds.
func (g OrClass) Glyphs() Class {
	if g.Kind == KindGlyph {
		return Class{g.Glyph}
	}
	return g.Class
}

// NewGlyph wraps a single glyph id.
func NewGlyph(id ID) OrClass { return OrClass{Kind: KindGlyph, Glyph: id} }

// NewClass wraps a glyph class.
func NewClass(c Class) OrClass { return OrClass{Kind: KindClass, Class: c} }

// IdentKind distinguishes the two ways a glyph may be named in source text.
type IdentKind uint8

const (
	// IdentName marks an identifier that names a glyph by its glyph name.
	IdentName IdentKind = iota
	// IdentCID marks an identifier that names a glyph by numeric CID.
	IdentCID
)

// Ident is a not-yet-resolved glyph reference as it appears in source text:
// either a bare name or a backslash-escaped CID literal (`\123`).
type Ident struct {
	Kind IdentKind
	Name string
	CID  uint32
}
