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
	"github.com/typeforge/feacompile/classdef"
	"github.com/typeforge/feacompile/coverage"
	"github.com/typeforge/feacompile/glyph"
)

// SeqLookup names one nested-lookup application within a contextual
// match: apply LookupListIndex at the SequenceIndex'th input position.
type SeqLookup struct {
	SequenceIndex   uint16
	LookupListIndex LookupIndex
}

// SeqRule is a GSUB/GPOS type 5, format 1 rule: a literal glyph-id input
// sequence (the first glyph is implied by the covering Coverage table)
// plus the nested lookups it triggers.
type SeqRule struct {
	Input   []glyph.ID
	Actions []SeqLookup
}

// SeqContext1 is a GSUB/GPOS type 5, format 1 subtable: rule sets
// indexed by the coverage index of the first input glyph.
type SeqContext1 struct {
	Cov   coverage.Table
	Rules [][]*SeqRule
}

func (*SeqContext1) isSubtable() {}

// ClassSeqRule is a type 5, format 2 rule: a class-id input sequence.
type ClassSeqRule struct {
	Input   []uint16
	Actions []SeqLookup
}

// SeqContext2 is a GSUB/GPOS type 5, format 2 subtable: rule sets
// indexed by the class id of the first input glyph.
type SeqContext2 struct {
	Cov   coverage.Table
	Input classdef.Table
	Rules [][]*ClassSeqRule
}

func (*SeqContext2) isSubtable() {}

// SeqContext3 is a GSUB/GPOS type 5, format 3 subtable: each input
// position is a glyph set (coverage.Set) tested directly, with no
// rule-set indirection.
type SeqContext3 struct {
	Input   []coverage.Set
	Actions []SeqLookup
}

func (*SeqContext3) isSubtable() {}

// ChainedSeqRule is a type 6, format 1 rule: backtrack, input, and
// lookahead glyph sequences plus the nested lookups the input triggers.
// Backtrack is stored in reverse reading order (nearest-to-input first),
// matching how the binary ChainContextFormat1 table lists it.
type ChainedSeqRule struct {
	Backtrack []glyph.ID
	Input     []glyph.ID
	Lookahead []glyph.ID
	Actions   []SeqLookup
}

// ChainedSeqContext1 is a GSUB/GPOS type 6, format 1 subtable.
type ChainedSeqContext1 struct {
	Cov   coverage.Table
	Rules [][]*ChainedSeqRule
}

func (*ChainedSeqContext1) isSubtable() {}

// ChainedClassSeqRule is a type 6, format 2 rule: class-id backtrack,
// input, and lookahead sequences.
type ChainedClassSeqRule struct {
	Backtrack []uint16
	Input     []uint16
	Lookahead []uint16
	Actions   []SeqLookup
}

// ChainedSeqContext2 is a GSUB/GPOS type 6, format 2 subtable.
type ChainedSeqContext2 struct {
	Cov                           coverage.Table
	Backtrack, Input, Lookahead classdef.Table
	Rules                         [][]*ChainedClassSeqRule
}

func (*ChainedSeqContext2) isSubtable() {}

// ChainedSeqContext3 is a GSUB/GPOS type 6, format 3 subtable: every
// backtrack, input, and lookahead position is a glyph set tested
// directly.
type ChainedSeqContext3 struct {
	Backtrack, Input, Lookahead []coverage.Set
	Actions                      []SeqLookup
}

func (*ChainedSeqContext3) isSubtable() {}
