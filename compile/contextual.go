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
	"github.com/typeforge/feacompile/coverage"
	"github.com/typeforge/feacompile/glyph"
	"github.com/typeforge/feacompile/layout"
)

// InputAction binds a nested lookup to one input position of a
// contextual rule. Exactly one of Lookup or AnonymousIdx identifies the
// nested lookup: a named or otherwise already-resolved lookup sets
// Lookup; an inline rule body synthesized at this input position sets
// AnonymousIdx to the index AddAnonymousLookup returned, and is
// resolved against the enclosing builder's own RootID only once the
// root lookup has been pushed (see AllLookups.pushCurrent).
type InputAction struct {
	SequenceIndex uint16
	Lookup        LookupId
	AnonymousIdx  *int
}

// ContextualRule is one backtrack/input/lookahead triple, plus the
// nested lookups each input position invokes. Backtrack is given in
// reading order (nearest-to-input last); it is reversed only when the
// chained-context subtable is finally built, matching the binary
// ChainContext table's own nearest-first storage order.
type ContextualRule struct {
	Backtrack []glyph.ID
	Input     []glyph.ID
	Lookahead []glyph.ID
	Actions   []InputAction
}

// ContextualLookupBuilder is the two-layer structure a contextual or
// chaining-contextual lookup is built from: the outer builder carries
// the flags, mark-filter set, and root id, and owns a vector of
// anonymous inline lookups synthesized when an input position specifies
// an inline rule rather than a reference to a named lookup. The root
// lookup is pushed to AllLookups before its anonymous children — see
// AllLookups.pushCurrent — so the root's index is stable and equals the
// id StartLookup returned (invariant I2).
type ContextualLookupBuilder struct {
	Kind             Kind // GsubContextual/GsubChainedContextual/GposContextual/GposChainedContextual
	Flags            layout.LookupFlags
	MarkFilteringSet uint16
	RootID           LookupId

	Rules     []ContextualRule
	Anonymous []*SomeLookup
}

// NewContextualLookupBuilder opens an empty contextual builder. kind
// selects GSUB or GPOS; the chaining/non-chaining choice is resolved at
// Build time (see Build's doc comment).
func NewContextualLookupBuilder(kind Kind, flags layout.LookupFlags, markFilteringSet uint16) *ContextualLookupBuilder {
	return &ContextualLookupBuilder{Kind: kind, Flags: flags, MarkFilteringSet: markFilteringSet}
}

// AddRule appends one context rule.
func (b *ContextualLookupBuilder) AddRule(rule ContextualRule) {
	b.Rules = append(b.Rules, rule)
}

// AddAnonymousLookup registers an inline-rule lookup synthesized at an
// input position and returns the index an InputAction.AnonymousIdx must
// reference to invoke it. AllLookups.pushCurrent appends every
// registered anonymous lookup to the same vector the root lookup is
// pushed to, immediately after it, so its final LookupIndex is always
// RootID's index plus one plus this returned index (invariant I3).
func (b *ContextualLookupBuilder) AddAnonymousLookup(lookup *SomeLookup) int {
	b.Anonymous = append(b.Anonymous, lookup)
	return len(b.Anonymous) - 1
}

// Build emits the chaining-contextual subtable this builder always
// produces (OT type 6 for GSUB, type 8 for GPOS), regardless of whether
// any rule used backtrack or lookahead — matching the dominant existing
// compiler's behavior. The non-chaining GsubContextual/GposContextual
// Kind values are retained in the type system; a builder opened with one
// of them keeps that Kind and still gets the chaining subtable and
// lookup type here.
func (b *ContextualLookupBuilder) Build() *layout.LookupTable {
	lookupType := uint16(6)
	if b.Kind == GposContextual || b.Kind == GposChainedContextual {
		lookupType = 8
	}

	var allInput []glyph.ID
	seen := make(map[glyph.ID]bool)
	firstByCov := make(map[glyph.ID][]*layout.ChainedSeqRule)

	for _, r := range b.Rules {
		if len(r.Input) == 0 {
			continue
		}
		first := r.Input[0]
		if !seen[first] {
			seen[first] = true
			allInput = append(allInput, first)
		}
		actions := make([]layout.SeqLookup, len(r.Actions))
		for i, a := range r.Actions {
			idx := b.lookupIndexOf(a)
			actions[i] = layout.SeqLookup{SequenceIndex: a.SequenceIndex, LookupListIndex: idx}
		}
		rule := &layout.ChainedSeqRule{
			Backtrack: reverseGlyphs(r.Backtrack),
			Input:     r.Input[1:],
			Lookahead: r.Lookahead,
			Actions:   actions,
		}
		firstByCov[first] = append(firstByCov[first], rule)
	}

	cov := coverage.New(allInput)
	rules := make([][]*layout.ChainedSeqRule, len(allInput))
	for g, idx := range cov {
		rules[idx] = firstByCov[g]
	}

	sub := &layout.ChainedSeqContext1{Cov: cov, Rules: rules}

	return &layout.LookupTable{
		Meta: &layout.LookupMetaInfo{
			LookupType:       lookupType,
			LookupFlags:      b.Flags,
			MarkFilteringSet: b.MarkFilteringSet,
		},
		Subtables: []layout.Subtable{sub},
	}
}

// lookupIndexOf resolves one action's nested-lookup reference to its
// final LookupIndex. An anonymous reference is only resolvable once the
// root lookup has been pushed and RootID is set — which Build always
// satisfies, since it only ever runs as part of AllLookups.BuildGsub/
// BuildGpos, themselves only called after every lookup has been pushed.
func (b *ContextualLookupBuilder) lookupIndexOf(a InputAction) layout.LookupIndex {
	if a.AnonymousIdx != nil {
		if b.RootID.IsEmpty() {
			programmerError("anonymous lookup resolved before its root lookup was pushed")
		}
		return b.rootIndex() + 1 + layout.LookupIndex(*a.AnonymousIdx)
	}
	if a.Lookup.IsEmpty() {
		programmerError("contextual rule action references an Empty lookup id")
	}
	if a.Lookup.IsGpos() {
		return a.Lookup.ToGposOrDie()
	}
	return a.Lookup.ToGsubOrDie()
}

// rootIndex returns the LookupIndex component of RootID, regardless of
// which table it belongs to.
func (b *ContextualLookupBuilder) rootIndex() layout.LookupIndex {
	if b.RootID.IsGpos() {
		return b.RootID.ToGposOrDie()
	}
	return b.RootID.ToGsubOrDie()
}

func reverseGlyphs(in []glyph.ID) []glyph.ID {
	out := make([]glyph.ID, len(in))
	for i, g := range in {
		out[len(in)-1-i] = g
	}
	return out
}
