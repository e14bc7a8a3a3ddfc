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
	"sort"

	"github.com/typeforge/feacompile/anchor"
	"github.com/typeforge/feacompile/classdef"
	"github.com/typeforge/feacompile/coverage"
	"github.com/typeforge/feacompile/glyph"
	"github.com/typeforge/feacompile/layout"
	"github.com/typeforge/feacompile/markarray"
)

// SubtableBuilder is implemented by every per-rule subtable accumulator.
// Build converts the accumulated rules into the typed, coverage-sorted
// layout.Subtable the table assembler consumes.
type SubtableBuilder interface {
	Build() layout.Subtable
}

func sortedGlyphs(m map[glyph.ID]bool) []glyph.ID {
	out := make([]glyph.ID, 0, len(m))
	for g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- GSUB type 1: single substitution ---------------------------------

// SingleSubBuilder accumulates glyph -> glyph replacements.
type SingleSubBuilder struct {
	subst map[glyph.ID]glyph.ID
}

func NewSingleSubBuilder() *SingleSubBuilder {
	return &SingleSubBuilder{subst: make(map[glyph.ID]glyph.ID)}
}

// Add records that from is replaced by to. Re-adding the same source
// glyph overwrites its prior mapping; the core does not itself reject
// the conflict (see the corresponding open question).
func (b *SingleSubBuilder) Add(from, to glyph.ID) {
	b.subst[from] = to
}

func (b *SingleSubBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.subst))
	for g := range b.subst {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)

	delta := glyph.ID(0)
	sameDelta := true
	for i, g := range glyphs {
		d := glyph.ID(uint16(b.subst[g]) - uint16(g))
		if i == 0 {
			delta = d
		} else if d != delta {
			sameDelta = false
			break
		}
	}
	if sameDelta && len(glyphs) > 0 {
		return &layout.Gsub1_1{Cov: cov, Delta: delta}
	}

	subs := make([]glyph.ID, len(glyphs))
	for _, g := range glyphs {
		subs[cov[g]] = b.subst[g]
	}
	return &layout.Gsub1_2{Cov: cov, SubstituteGlyphIDs: subs}
}

// --- GSUB type 2: multiple substitution -------------------------------

// MultipleSubBuilder accumulates glyph -> glyph-sequence expansions.
type MultipleSubBuilder struct {
	repl map[glyph.ID][]glyph.ID
}

func NewMultipleSubBuilder() *MultipleSubBuilder {
	return &MultipleSubBuilder{repl: make(map[glyph.ID][]glyph.ID)}
}

func (b *MultipleSubBuilder) Add(from glyph.ID, to []glyph.ID) {
	b.repl[from] = to
}

func (b *MultipleSubBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.repl))
	for g := range b.repl {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)
	out := make([][]glyph.ID, len(glyphs))
	for _, g := range glyphs {
		out[cov[g]] = b.repl[g]
	}
	return &layout.Gsub2_1{Cov: cov, Repl: out}
}

// --- GSUB type 3: alternate substitution ------------------------------

// AlternateSubBuilder accumulates glyph -> alternate-set mappings. This
// is also the accumulator the aalt prepend pass builds from the
// caller-supplied {target -> alternates} map for targets with more than
// one alternate.
type AlternateSubBuilder struct {
	alts map[glyph.ID][]glyph.ID
}

func NewAlternateSubBuilder() *AlternateSubBuilder {
	return &AlternateSubBuilder{alts: make(map[glyph.ID][]glyph.ID)}
}

func (b *AlternateSubBuilder) Add(from glyph.ID, alternates []glyph.ID) {
	b.alts[from] = alternates
}

func (b *AlternateSubBuilder) Len() int { return len(b.alts) }

func (b *AlternateSubBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.alts))
	for g := range b.alts {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)
	out := make([][]glyph.ID, len(glyphs))
	for _, g := range glyphs {
		out[cov[g]] = b.alts[g]
	}
	return &layout.Gsub3_1{Cov: cov, Alternates: out}
}

// --- GSUB type 4: ligature substitution -------------------------------

// LigatureSubBuilder accumulates ligature rules, keyed by their first
// input glyph.
type LigatureSubBuilder struct {
	byFirst map[glyph.ID][]layout.Ligature
}

func NewLigatureSubBuilder() *LigatureSubBuilder {
	return &LigatureSubBuilder{byFirst: make(map[glyph.ID][]layout.Ligature)}
}

func (b *LigatureSubBuilder) Add(in []glyph.ID, out glyph.ID) {
	if len(in) == 0 {
		programmerError("ligature substitution with empty input sequence")
	}
	first := in[0]
	b.byFirst[first] = append(b.byFirst[first], layout.Ligature{In: in, Out: out})
}

func (b *LigatureSubBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.byFirst))
	for g := range b.byFirst {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)
	out := make([][]layout.Ligature, len(glyphs))
	for _, g := range glyphs {
		rules := append([]layout.Ligature(nil), b.byFirst[g]...)
		sort.SliceStable(rules, func(i, j int) bool { return len(rules[i].In) > len(rules[j].In) })
		out[cov[g]] = rules
	}
	return &layout.Gsub4_1{Cov: cov, Repl: out}
}

// --- GSUB type 8: reverse chaining contextual single substitution -----

// ReverseChainSingleSubBuilder accumulates type-8 rules. Unlike the
// general contextual mechanism, type 8 never nests other lookups, so it
// is its own concrete kind rather than going through
// ContextualLookupBuilder.
type ReverseChainSingleSubBuilder struct {
	subst     map[glyph.ID]glyph.ID
	backtrack []coverage.Set
	lookahead []coverage.Set
}

func NewReverseChainSingleSubBuilder(backtrack, lookahead []coverage.Set) *ReverseChainSingleSubBuilder {
	return &ReverseChainSingleSubBuilder{
		subst:     make(map[glyph.ID]glyph.ID),
		backtrack: backtrack,
		lookahead: lookahead,
	}
}

func (b *ReverseChainSingleSubBuilder) Add(from, to glyph.ID) {
	b.subst[from] = to
}

func (b *ReverseChainSingleSubBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.subst))
	for g := range b.subst {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)
	subs := make([]glyph.ID, len(glyphs))
	for _, g := range glyphs {
		subs[cov[g]] = b.subst[g]
	}
	return &layout.Gsub8_1{Cov: cov, Backtrack: b.backtrack, Lookahead: b.lookahead, Substitute: subs}
}

// --- GPOS type 1: single adjustment -----------------------------------

// SinglePosBuilder accumulates per-glyph value-record adjustments.
type SinglePosBuilder struct {
	adjust map[glyph.ID]*layout.ValueRecord
}

func NewSinglePosBuilder() *SinglePosBuilder {
	return &SinglePosBuilder{adjust: make(map[glyph.ID]*layout.ValueRecord)}
}

func (b *SinglePosBuilder) Add(g glyph.ID, v *layout.ValueRecord) {
	b.adjust[g] = v
}

func (b *SinglePosBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.adjust))
	for g := range b.adjust {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)

	allSame := len(glyphs) > 0
	var first *layout.ValueRecord
	for i, g := range glyphs {
		v := b.adjust[g]
		if i == 0 {
			first = v
		} else if !sameValueRecord(first, v) {
			allSame = false
		}
	}
	if allSame {
		return &layout.Gpos1_1{Cov: cov, Adjust: first}
	}

	out := make([]*layout.ValueRecord, len(glyphs))
	for _, g := range glyphs {
		out[cov[g]] = b.adjust[g]
	}
	return &layout.Gpos1_2{Cov: cov, Adjust: out}
}

func sameValueRecord(a, b *layout.ValueRecord) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// --- GPOS type 2: pair adjustment --------------------------------------

// PairPosBuilder accumulates explicit glyph-pair adjustments (format 1).
// It is the only subtable builder a GposType2 SomeLookup holds, so every
// subtable of such a lookup is format 1. Class-based pair positioning
// (format 2) is accumulated by ClassPairPosBuilder, which no SomeLookup
// kind wraps.
type PairPosBuilder struct {
	pairs map[glyph.Pair]*layout.PairAdjust
}

func NewPairPosBuilder() *PairPosBuilder {
	return &PairPosBuilder{pairs: make(map[glyph.Pair]*layout.PairAdjust)}
}

func (b *PairPosBuilder) Add(left, right glyph.ID, adjust *layout.PairAdjust) {
	b.pairs[glyph.Pair{Left: left, Right: right}] = adjust
}

func (b *PairPosBuilder) Build() layout.Subtable {
	out := make(layout.Gpos2_1, len(b.pairs))
	for k, v := range b.pairs {
		out[k] = v
	}
	return out
}

// ClassPairPosBuilder accumulates class-based (format 2) pair
// adjustments. The caller is expected to have built Class1/Class2 with a
// classdef.Builder2 beforehand (class 0 reserved, per §4.3) and to
// supply the covered left-hand glyphs directly.
type ClassPairPosBuilder struct {
	Cov            coverage.Set
	Class1, Class2 classdef.Table
	adjust         map[[2]uint16]*layout.PairAdjust
}

func NewClassPairPosBuilder(cov coverage.Set, class1, class2 classdef.Table) *ClassPairPosBuilder {
	return &ClassPairPosBuilder{
		Cov:    cov,
		Class1: class1,
		Class2: class2,
		adjust: make(map[[2]uint16]*layout.PairAdjust),
	}
}

func (b *ClassPairPosBuilder) Add(class1, class2 uint16, adjust *layout.PairAdjust) {
	b.adjust[[2]uint16{class1, class2}] = adjust
}

func (b *ClassPairPosBuilder) Build() layout.Subtable {
	n1, n2 := b.Class1.NumClasses(), b.Class2.NumClasses()
	rows := make([][]*layout.PairAdjust, n1)
	for c1 := uint16(0); c1 < n1; c1++ {
		row := make([]*layout.PairAdjust, n2)
		for c2 := uint16(0); c2 < n2; c2++ {
			row[c2] = b.adjust[[2]uint16{c1, c2}]
		}
		rows[c1] = row
	}
	return &layout.Gpos2_2{Cov: b.Cov, Class1: b.Class1, Class2: b.Class2, Adjust: rows}
}

// --- GPOS type 3: cursive attachment -----------------------------------

// CursiveAttachBuilder accumulates per-glyph entry/exit anchor records.
type CursiveAttachBuilder struct {
	records map[glyph.ID]layout.EntryExitRecord
}

func NewCursiveAttachBuilder() *CursiveAttachBuilder {
	return &CursiveAttachBuilder{records: make(map[glyph.ID]layout.EntryExitRecord)}
}

func (b *CursiveAttachBuilder) Add(g glyph.ID, rec layout.EntryExitRecord) {
	b.records[g] = rec
}

func (b *CursiveAttachBuilder) Build() layout.Subtable {
	keys := make(map[glyph.ID]bool, len(b.records))
	for g := range b.records {
		keys[g] = true
	}
	glyphs := sortedGlyphs(keys)
	cov := coverage.New(glyphs)
	out := make([]layout.EntryExitRecord, len(glyphs))
	for _, g := range glyphs {
		out[cov[g]] = b.records[g]
	}
	return &layout.Gpos3_1{Cov: cov, Records: out}
}

// --- GPOS type 4: mark-to-base attachment ------------------------------

// MarkToBaseBuilder accumulates mark glyphs (with mark class and
// attachment anchor) and base glyphs (with one anchor per mark class).
type MarkToBaseBuilder struct {
	marks      map[glyph.ID]markarray.Record
	bases      map[glyph.ID]map[uint16]anchor.Table
	numClasses uint16
}

func NewMarkToBaseBuilder() *MarkToBaseBuilder {
	return &MarkToBaseBuilder{
		marks: make(map[glyph.ID]markarray.Record),
		bases: make(map[glyph.ID]map[uint16]anchor.Table),
	}
}

// AddMark records a mark glyph's class and attachment anchor.
func (b *MarkToBaseBuilder) AddMark(g glyph.ID, class uint16, a anchor.Table) {
	b.marks[g] = markarray.Record{Class: class, Table: a}
	if class+1 > b.numClasses {
		b.numClasses = class + 1
	}
}

// AddBaseAnchor records the anchor a base glyph offers for the given
// mark class.
func (b *MarkToBaseBuilder) AddBaseAnchor(base glyph.ID, class uint16, a anchor.Table) {
	if b.bases[base] == nil {
		b.bases[base] = make(map[uint16]anchor.Table)
	}
	b.bases[base][class] = a
	if class+1 > b.numClasses {
		b.numClasses = class + 1
	}
}

// MarkGlyphs returns every glyph recorded as a mark, for GDEF inference.
func (b *MarkToBaseBuilder) MarkGlyphs() []glyph.ID {
	keys := make(map[glyph.ID]bool, len(b.marks))
	for g := range b.marks {
		keys[g] = true
	}
	return sortedGlyphs(keys)
}

// BaseGlyphs returns every glyph recorded as a base, for GDEF inference.
func (b *MarkToBaseBuilder) BaseGlyphs() []glyph.ID {
	keys := make(map[glyph.ID]bool, len(b.bases))
	for g := range b.bases {
		keys[g] = true
	}
	return sortedGlyphs(keys)
}

func (b *MarkToBaseBuilder) Build() layout.Subtable {
	markGlyphs := b.MarkGlyphs()
	markCov := coverage.New(markGlyphs)
	markArray := make([]markarray.Record, len(markGlyphs))
	for _, g := range markGlyphs {
		markArray[markCov[g]] = b.marks[g]
	}

	baseGlyphs := b.BaseGlyphs()
	baseCov := coverage.New(baseGlyphs)
	baseArray := make([][]anchor.Table, len(baseGlyphs))
	for _, g := range baseGlyphs {
		row := make([]anchor.Table, b.numClasses)
		for class, a := range b.bases[g] {
			row[class] = a
		}
		baseArray[baseCov[g]] = row
	}

	return &layout.Gpos4_1{MarkCov: markCov, BaseCov: baseCov, MarkArray: markArray, BaseArray: baseArray}
}

// --- GPOS type 5: mark-to-ligature attachment --------------------------

// MarkToLigatureBuilder accumulates mark glyphs and ligature glyphs,
// each ligature component offering one anchor per mark class.
type MarkToLigatureBuilder struct {
	marks      map[glyph.ID]markarray.Record
	ligatures  map[glyph.ID][]map[uint16]anchor.Table // per component
	numClasses uint16
}

func NewMarkToLigatureBuilder() *MarkToLigatureBuilder {
	return &MarkToLigatureBuilder{
		marks:     make(map[glyph.ID]markarray.Record),
		ligatures: make(map[glyph.ID][]map[uint16]anchor.Table),
	}
}

func (b *MarkToLigatureBuilder) AddMark(g glyph.ID, class uint16, a anchor.Table) {
	b.marks[g] = markarray.Record{Class: class, Table: a}
	if class+1 > b.numClasses {
		b.numClasses = class + 1
	}
}

// AddLigatureComponentAnchor records the anchor the component'th
// component of ligature offers for the given mark class.
func (b *MarkToLigatureBuilder) AddLigatureComponentAnchor(ligature glyph.ID, component int, class uint16, a anchor.Table) {
	for len(b.ligatures[ligature]) <= component {
		b.ligatures[ligature] = append(b.ligatures[ligature], make(map[uint16]anchor.Table))
	}
	b.ligatures[ligature][component][class] = a
	if class+1 > b.numClasses {
		b.numClasses = class + 1
	}
}

func (b *MarkToLigatureBuilder) MarkGlyphs() []glyph.ID {
	keys := make(map[glyph.ID]bool, len(b.marks))
	for g := range b.marks {
		keys[g] = true
	}
	return sortedGlyphs(keys)
}

func (b *MarkToLigatureBuilder) LigatureGlyphs() []glyph.ID {
	keys := make(map[glyph.ID]bool, len(b.ligatures))
	for g := range b.ligatures {
		keys[g] = true
	}
	return sortedGlyphs(keys)
}

func (b *MarkToLigatureBuilder) Build() layout.Subtable {
	markGlyphs := b.MarkGlyphs()
	markCov := coverage.New(markGlyphs)
	markArray := make([]markarray.Record, len(markGlyphs))
	for _, g := range markGlyphs {
		markArray[markCov[g]] = b.marks[g]
	}

	ligGlyphs := b.LigatureGlyphs()
	ligCov := coverage.New(ligGlyphs)
	ligArray := make([][][]anchor.Table, len(ligGlyphs))
	for _, g := range ligGlyphs {
		components := b.ligatures[g]
		rows := make([][]anchor.Table, len(components))
		for i, comp := range components {
			row := make([]anchor.Table, b.numClasses)
			for class, a := range comp {
				row[class] = a
			}
			rows[i] = row
		}
		ligArray[ligCov[g]] = rows
	}

	return &layout.Gpos5_1{MarkCov: markCov, LigatureCov: ligCov, MarkArray: markArray, LigatureArray: ligArray}
}

// --- GPOS type 6: mark-to-mark attachment ------------------------------

// MarkToMarkBuilder accumulates two mark-glyph roles: attaching marks
// (mark1) and the marks they attach to (mark2).
type MarkToMarkBuilder struct {
	mark1      map[glyph.ID]markarray.Record
	mark2      map[glyph.ID]map[uint16]anchor.Table
	numClasses uint16
}

func NewMarkToMarkBuilder() *MarkToMarkBuilder {
	return &MarkToMarkBuilder{
		mark1: make(map[glyph.ID]markarray.Record),
		mark2: make(map[glyph.ID]map[uint16]anchor.Table),
	}
}

func (b *MarkToMarkBuilder) AddMark1(g glyph.ID, class uint16, a anchor.Table) {
	b.mark1[g] = markarray.Record{Class: class, Table: a}
	if class+1 > b.numClasses {
		b.numClasses = class + 1
	}
}

func (b *MarkToMarkBuilder) AddMark2Anchor(g glyph.ID, class uint16, a anchor.Table) {
	if b.mark2[g] == nil {
		b.mark2[g] = make(map[uint16]anchor.Table)
	}
	b.mark2[g][class] = a
	if class+1 > b.numClasses {
		b.numClasses = class + 1
	}
}

func (b *MarkToMarkBuilder) Mark1Glyphs() []glyph.ID {
	keys := make(map[glyph.ID]bool, len(b.mark1))
	for g := range b.mark1 {
		keys[g] = true
	}
	return sortedGlyphs(keys)
}

func (b *MarkToMarkBuilder) Mark2Glyphs() []glyph.ID {
	keys := make(map[glyph.ID]bool, len(b.mark2))
	for g := range b.mark2 {
		keys[g] = true
	}
	return sortedGlyphs(keys)
}

func (b *MarkToMarkBuilder) Build() layout.Subtable {
	mark1Glyphs := b.Mark1Glyphs()
	mark1Cov := coverage.New(mark1Glyphs)
	mark1Array := make([]markarray.Record, len(mark1Glyphs))
	for _, g := range mark1Glyphs {
		mark1Array[mark1Cov[g]] = b.mark1[g]
	}

	mark2Glyphs := b.Mark2Glyphs()
	mark2Cov := coverage.New(mark2Glyphs)
	mark2Array := make([][]anchor.Table, len(mark2Glyphs))
	for _, g := range mark2Glyphs {
		row := make([]anchor.Table, b.numClasses)
		for class, a := range b.mark2[g] {
			row[class] = a
		}
		mark2Array[mark2Cov[g]] = row
	}

	return &layout.Gpos6_1{Mark1Cov: mark1Cov, Mark2Cov: mark2Cov, Mark1Array: mark1Array, Mark2Array: mark2Array}
}
