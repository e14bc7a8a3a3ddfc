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

package layout

import (
	"github.com/typeforge/feacompile/coverage"
	"github.com/typeforge/feacompile/glyph"
)

// Gsub1_1 is a GSUB lookup type 1, format 1 subtable: every covered
// glyph is replaced by (glyph id + Delta), interpreted modulo 65536.
type Gsub1_1 struct {
	Cov   coverage.Table
	Delta glyph.ID
}

func (*Gsub1_1) isSubtable() {}

// Gsub1_2 is a GSUB lookup type 1, format 2 subtable: each covered
// glyph is replaced by the substitute at the same coverage index.
type Gsub1_2 struct {
	Cov                 coverage.Table
	SubstituteGlyphIDs []glyph.ID
}

func (*Gsub1_2) isSubtable() {}

// Gsub2_1 is a GSUB lookup type 2 (multiple substitution) subtable:
// each covered glyph expands to a sequence of replacement glyphs.
type Gsub2_1 struct {
	Cov  coverage.Table
	Repl [][]glyph.ID
}

func (*Gsub2_1) isSubtable() {}

// Gsub3_1 is a GSUB lookup type 3 (alternate substitution) subtable:
// each covered glyph has a set of alternates the host application may
// select among (the `aalt` feature is the canonical consumer).
type Gsub3_1 struct {
	Cov        coverage.Table
	Alternates [][]glyph.ID
}

func (*Gsub3_1) isSubtable() {}

// Ligature is one ligature-substitution rule: an input glyph sequence
// (the first glyph of which is implied by the covering Coverage table)
// replaced by a single output glyph.
type Ligature struct {
	In  []glyph.ID
	Out glyph.ID
}

// Gsub4_1 is a GSUB lookup type 4 (ligature substitution) subtable.
type Gsub4_1 struct {
	Cov  coverage.Table
	Repl [][]Ligature
}

func (*Gsub4_1) isSubtable() {}

// Gsub8_1 is a GSUB lookup type 8 (reverse chaining contextual single
// substitution) subtable.
type Gsub8_1 struct {
	Cov        coverage.Table
	Backtrack  []coverage.Set
	Lookahead  []coverage.Set
	Substitute []glyph.ID
}

func (*Gsub8_1) isSubtable() {}
