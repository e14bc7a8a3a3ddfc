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
	"seehuhn.de/go/postscript/funit"

	"github.com/typeforge/feacompile/anchor"
	"github.com/typeforge/feacompile/classdef"
	"github.com/typeforge/feacompile/coverage"
	"github.com/typeforge/feacompile/glyph"
	"github.com/typeforge/feacompile/markarray"
)

// ValueRecord is a GPOS positioning adjustment. A nil *ValueRecord
// means "no adjustment" (the all-zero / `<NULL>` case).
type ValueRecord struct {
	XPlacement funit.Int16
	YPlacement funit.Int16
	XAdvance   funit.Int16
	YAdvance   funit.Int16
}

// Gpos1_1 is a GPOS lookup type 1, format 1 subtable: a single value
// record applied to every covered glyph.
type Gpos1_1 struct {
	Cov    coverage.Table
	Adjust *ValueRecord
}

func (*Gpos1_1) isSubtable() {}

// Gpos1_2 is a GPOS lookup type 1, format 2 subtable: a per-glyph value
// record, indexed by coverage index.
type Gpos1_2 struct {
	Cov    coverage.Table
	Adjust []*ValueRecord
}

func (*Gpos1_2) isSubtable() {}

// PairAdjust holds the two value records of a glyph-pair adjustment;
// either may be nil.
type PairAdjust struct {
	First, Second *ValueRecord
}

// Gpos2_1 is a GPOS lookup type 2, format 1 subtable: individually
// listed glyph pairs.
type Gpos2_1 map[glyph.Pair]*PairAdjust

func (Gpos2_1) isSubtable() {}

// Gpos2_2 is a GPOS lookup type 2, format 2 subtable: pairs grouped by
// glyph class on both sides.
type Gpos2_2 struct {
	Cov            coverage.Set
	Class1, Class2 classdef.Table
	Adjust         [][]*PairAdjust
}

func (*Gpos2_2) isSubtable() {}

// EntryExitRecord is one glyph's cursive-attachment entry and exit
// anchors; either may be absent (zero Table).
type EntryExitRecord struct {
	Entry, Exit anchor.Table
	HasEntry    bool
	HasExit     bool
}

// Gpos3_1 is a GPOS lookup type 3 (cursive attachment) subtable.
type Gpos3_1 struct {
	Cov     coverage.Table
	Records []EntryExitRecord
}

func (*Gpos3_1) isSubtable() {}

// Gpos4_1 is a GPOS lookup type 4 (mark-to-base attachment) subtable.
type Gpos4_1 struct {
	MarkCov, BaseCov coverage.Table
	MarkArray        []markarray.Record
	BaseArray        [][]anchor.Table
}

func (*Gpos4_1) isSubtable() {}

// Gpos5_1 is a GPOS lookup type 5 (mark-to-ligature attachment)
// subtable. Each ligature glyph carries one anchor per mark class per
// ligature component.
type Gpos5_1 struct {
	MarkCov, LigatureCov coverage.Table
	MarkArray            []markarray.Record
	LigatureArray        [][][]anchor.Table
}

func (*Gpos5_1) isSubtable() {}

// Gpos6_1 is a GPOS lookup type 6 (mark-to-mark attachment) subtable;
// structurally identical to mark-to-base but over two mark coverages.
type Gpos6_1 struct {
	Mark1Cov, Mark2Cov coverage.Table
	Mark1Array         []markarray.Record
	Mark2Array         [][]anchor.Table
}

func (*Gpos6_1) isSubtable() {}
