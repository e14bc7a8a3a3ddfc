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

// Package coverage holds the two glyph-set shapes that OpenType lookup
// subtables address glyphs through: an ordered table mapping glyph id to
// a 0-based coverage index, and a plain membership set.
package coverage

import (
	"sort"

	"github.com/typeforge/feacompile/glyph"
)

// Table maps each covered glyph id to its 0-based coverage index, in
// ascending glyph-id order, exactly as the binary Coverage table format
// requires.
type Table map[glyph.ID]int

// Glyphs returns the covered glyphs in coverage-index order.
func (t Table) Glyphs() []glyph.ID {
	out := make([]glyph.ID, len(t))
	for g, idx := range t {
		out[idx] = g
	}
	return out
}

// New builds a Table from a list of glyphs, assigning coverage indices
// in ascending glyph-id order. Duplicate glyphs collapse to one entry.
func New(glyphs []glyph.ID) Table {
	seen := make(map[glyph.ID]bool)
	var unique []glyph.ID
	for _, g := range glyphs {
		if !seen[g] {
			seen[g] = true
			unique = append(unique, g)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	t := make(Table, len(unique))
	for i, g := range unique {
		t[g] = i
	}
	return t
}

// Set is a plain glyph membership set, used where a subtable references a
// coverage table only to test inclusion and does not need an index (e.g.
// the backtrack and lookahead positions of a GSUB type 8 subtable, or the
// covered glyphs of a class-based pair-positioning subtable).
type Set map[glyph.ID]bool

// NewSet builds a Set from a list of glyphs.
func NewSet(glyphs []glyph.ID) Set {
	s := make(Set, len(glyphs))
	for _, g := range glyphs {
		s[g] = true
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s Set) Contains(id glyph.ID) bool {
	return s[id]
}
