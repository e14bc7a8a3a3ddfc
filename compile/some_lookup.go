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

package compile

import (
	"github.com/typeforge/feacompile/glyph"
	"github.com/typeforge/feacompile/layout"
)

// SomeLookup is the closed tagged union over every lookup shape the
// driver can build: the eleven plain (non-contextual) kinds plus the
// contextual/chained-contextual wrapper. Exactly one of the embedded
// builder fields is non-nil, selected by kind at construction time.
// Callers add rules through the AddXxx accessor matching kind; every
// accessor panics via programmerError on a kind mismatch, since such a
// call can only originate from a driver bug, not user input.
type SomeLookup struct {
	kind Kind

	gsub1 *LookupBuilder[*SingleSubBuilder]
	gsub2 *LookupBuilder[*MultipleSubBuilder]
	gsub3 *LookupBuilder[*AlternateSubBuilder]
	gsub4 *LookupBuilder[*LigatureSubBuilder]
	gsub8 *LookupBuilder[*ReverseChainSingleSubBuilder]

	gpos1 *LookupBuilder[*SinglePosBuilder]
	gpos2 *LookupBuilder[*PairPosBuilder]
	gpos3 *LookupBuilder[*CursiveAttachBuilder]
	gpos4 *LookupBuilder[*MarkToBaseBuilder]
	gpos5 *LookupBuilder[*MarkToLigatureBuilder]
	gpos6 *LookupBuilder[*MarkToMarkBuilder]

	contextual *ContextualLookupBuilder
}

// NewSomeLookup opens a lookup of the given kind with a single, empty
// first subtable (or, for the contextual kinds, an empty rule set).
func NewSomeLookup(kind Kind, flags layout.LookupFlags, markFilteringSet uint16) *SomeLookup {
	l := &SomeLookup{kind: kind}
	switch kind {
	case GsubType1:
		l.gsub1 = NewLookupBuilder(flags, markFilteringSet, NewSingleSubBuilder())
	case GsubType2:
		l.gsub2 = NewLookupBuilder(flags, markFilteringSet, NewMultipleSubBuilder())
	case GsubType3:
		l.gsub3 = NewLookupBuilder(flags, markFilteringSet, NewAlternateSubBuilder())
	case GsubType4:
		l.gsub4 = NewLookupBuilder(flags, markFilteringSet, NewLigatureSubBuilder())
	case GsubType8:
		l.gsub8 = NewLookupBuilder(flags, markFilteringSet, NewReverseChainSingleSubBuilder(nil, nil))
	case GposType1:
		l.gpos1 = NewLookupBuilder(flags, markFilteringSet, NewSinglePosBuilder())
	case GposType2:
		l.gpos2 = NewLookupBuilder(flags, markFilteringSet, NewPairPosBuilder())
	case GposType3:
		l.gpos3 = NewLookupBuilder(flags, markFilteringSet, NewCursiveAttachBuilder())
	case GposType4:
		l.gpos4 = NewLookupBuilder(flags, markFilteringSet, NewMarkToBaseBuilder())
	case GposType5:
		l.gpos5 = NewLookupBuilder(flags, markFilteringSet, NewMarkToLigatureBuilder())
	case GposType6:
		l.gpos6 = NewLookupBuilder(flags, markFilteringSet, NewMarkToMarkBuilder())
	case GsubContextual, GsubChainedContextual, GposContextual, GposChainedContextual:
		l.contextual = NewContextualLookupBuilder(kind, flags, markFilteringSet)
	default:
		programmerError("unknown lookup kind %d", kind)
	}
	return l
}

// Kind reports the lookup shape this value was constructed with.
func (l *SomeLookup) Kind() Kind { return l.kind }

func (l *SomeLookup) checkKind(want Kind) {
	if l.kind != want {
		programmerError("lookup kind mismatch: rule targets %v but lookup is %v", want, l.kind)
	}
}

// AddSubtableBreak starts a fresh subtable within the current plain
// lookup. It panics for the contextual kinds, which have no subtable
// concept at the driver level.
func (l *SomeLookup) AddSubtableBreak() {
	switch l.kind {
	case GsubType1:
		l.gsub1.AddSubtableBreak(NewSingleSubBuilder())
	case GsubType2:
		l.gsub2.AddSubtableBreak(NewMultipleSubBuilder())
	case GsubType3:
		l.gsub3.AddSubtableBreak(NewAlternateSubBuilder())
	case GsubType4:
		l.gsub4.AddSubtableBreak(NewLigatureSubBuilder())
	case GsubType8:
		l.gsub8.AddSubtableBreak(NewReverseChainSingleSubBuilder(nil, nil))
	case GposType1:
		l.gpos1.AddSubtableBreak(NewSinglePosBuilder())
	case GposType2:
		l.gpos2.AddSubtableBreak(NewPairPosBuilder())
	case GposType3:
		l.gpos3.AddSubtableBreak(NewCursiveAttachBuilder())
	case GposType4:
		l.gpos4.AddSubtableBreak(NewMarkToBaseBuilder())
	case GposType5:
		l.gpos5.AddSubtableBreak(NewMarkToLigatureBuilder())
	case GposType6:
		l.gpos6.AddSubtableBreak(NewMarkToMarkBuilder())
	default:
		programmerError("subtable break requested on a contextual lookup")
	}
}

func (l *SomeLookup) AddGsubType1(from, to glyph.ID) {
	l.checkKind(GsubType1)
	l.gsub1.Last().Add(from, to)
}

func (l *SomeLookup) AddGsubType2(from glyph.ID, to []glyph.ID) {
	l.checkKind(GsubType2)
	l.gsub2.Last().Add(from, to)
}

func (l *SomeLookup) AddGsubType3(from glyph.ID, alternates []glyph.ID) {
	l.checkKind(GsubType3)
	l.gsub3.Last().Add(from, alternates)
}

func (l *SomeLookup) AddGsubType4(in []glyph.ID, out glyph.ID) {
	l.checkKind(GsubType4)
	l.gsub4.Last().Add(in, out)
}

func (l *SomeLookup) AddGsubType8(from, to glyph.ID) {
	l.checkKind(GsubType8)
	l.gsub8.Last().Add(from, to)
}

func (l *SomeLookup) AddGposType1(g glyph.ID, v *layout.ValueRecord) {
	l.checkKind(GposType1)
	l.gpos1.Last().Add(g, v)
}

func (l *SomeLookup) AddGposType2(left, right glyph.ID, adjust *layout.PairAdjust) {
	l.checkKind(GposType2)
	l.gpos2.Last().Add(left, right, adjust)
}

func (l *SomeLookup) AddGposType3(g glyph.ID, rec layout.EntryExitRecord) {
	l.checkKind(GposType3)
	l.gpos3.Last().Add(g, rec)
}

func (l *SomeLookup) GposType4Builder() *MarkToBaseBuilder {
	l.checkKind(GposType4)
	return l.gpos4.Last()
}

func (l *SomeLookup) GposType5Builder() *MarkToLigatureBuilder {
	l.checkKind(GposType5)
	return l.gpos5.Last()
}

func (l *SomeLookup) GposType6Builder() *MarkToMarkBuilder {
	l.checkKind(GposType6)
	return l.gpos6.Last()
}

// AddContextualRule appends a rule to a contextual/chained-contextual
// lookup.
func (l *SomeLookup) AddContextualRule(rule ContextualRule) {
	if !l.kind.IsContextual() {
		programmerError("contextual rule added to a non-contextual lookup (kind %v)", l.kind)
	}
	l.contextual.AddRule(rule)
}

// AddAnonymousLookup registers an inline-rule lookup synthesized at one
// input position of a contextual rule.
func (l *SomeLookup) AddAnonymousLookup(lookup *SomeLookup) int {
	if !l.kind.IsContextual() {
		programmerError("anonymous lookup added to a non-contextual lookup (kind %v)", l.kind)
	}
	return l.contextual.AddAnonymousLookup(lookup)
}

// Build converts the accumulated rules into a finished lookup table.
func (l *SomeLookup) Build() *layout.LookupTable {
	t := l.kind.OTLookupType()
	switch l.kind {
	case GsubType1:
		return l.gsub1.Build(t)
	case GsubType2:
		return l.gsub2.Build(t)
	case GsubType3:
		return l.gsub3.Build(t)
	case GsubType4:
		return l.gsub4.Build(t)
	case GsubType8:
		return l.gsub8.Build(t)
	case GposType1:
		return l.gpos1.Build(t)
	case GposType2:
		return l.gpos2.Build(t)
	case GposType3:
		return l.gpos3.Build(t)
	case GposType4:
		return l.gpos4.Build(t)
	case GposType5:
		return l.gpos5.Build(t)
	case GposType6:
		return l.gpos6.Build(t)
	case GsubContextual, GsubChainedContextual, GposContextual, GposChainedContextual:
		return l.contextual.Build()
	default:
		programmerError("unknown lookup kind %d", l.kind)
		panic("unreachable")
	}
}
