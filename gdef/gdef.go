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

// Package gdef holds the glyph-class and mark-filtering data the GDEF
// table carries and that lookup-flag filtering (IgnoreBaseGlyphs,
// IgnoreLigatures, IgnoreMarks, UseMarkFilteringSet) depends on.
package gdef

import (
	"github.com/typeforge/feacompile/classdef"
	"github.com/typeforge/feacompile/coverage"
)

// Glyph-class ids, as assigned by the GDEF GlyphClassDef table.
const (
	ClassBase     uint16 = 1
	ClassLigature uint16 = 2
	ClassMark     uint16 = 3
	ClassComponent uint16 = 4
)

// Table is the subset of GDEF content the lookup compiler produces or
// consumes: the glyph class definition, the mark-attachment class
// definition, and the mark glyph filtering sets referenced by lookups
// with UseMarkFilteringSet set.
type Table struct {
	GlyphClass      classdef.Table
	MarkAttachClass classdef.Table
	MarkGlyphSets   []coverage.Set
}
