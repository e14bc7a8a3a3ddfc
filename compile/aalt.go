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

	"github.com/typeforge/feacompile/glyph"
	"github.com/typeforge/feacompile/layout"
)

// AaltLookups partitions a target-glyph -> alternate-set map into up to
// two new GSUB lookups: a single-substitution lookup for targets with
// exactly one alternate, and an alternate-substitution lookup for
// targets with more than one. Either lookup is omitted if it would be
// empty. The two are returned in the order they must be prepended:
// single-substitution first, so that `aalt`'s "first alternate wins
// when only one applies" behavior matches a plain lookup ordering.
func AaltLookups(alternates map[glyph.ID][]glyph.ID, flags layout.LookupFlags) []*SomeLookup {
	single := NewSingleSubBuilder()
	multi := NewAlternateSubBuilder()

	targets := make([]glyph.ID, 0, len(alternates))
	for g := range alternates {
		targets = append(targets, g)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

	for _, g := range targets {
		alts := alternates[g]
		if len(alts) == 0 {
			continue
		}
		if len(alts) == 1 {
			single.Add(g, alts[0])
		} else {
			multi.Add(g, alts)
		}
	}

	var out []*SomeLookup
	if len(single.subst) > 0 {
		l := &SomeLookup{kind: GsubType1, gsub1: NewLookupBuilder(flags, 0, single)}
		out = append(out, l)
	}
	if multi.Len() > 0 {
		l := &SomeLookup{kind: GsubType3, gsub3: NewLookupBuilder(flags, 0, multi)}
		out = append(out, l)
	}
	return out
}

// InsertAaltLookups runs the full aalt prepend-and-renumber pass: it
// builds the new lookups AaltLookups describes, rewrites every nested
// LookupId referenced by an already-defined GSUB contextual or
// chained-contextual subtable by the number of lookups being prepended
// (invariant I1), and finally prepends the new lookups to a's GSUB
// vector. Rules recorded on a still-open (not yet pushed) contextual
// lookup are also rewritten, since FinishCurrent has not run yet when
// aalt is processed at the end of compilation.
//
// It returns the LookupIds the caller should add to the `aalt` feature,
// in final (post-renumber) coordinates.
func (a *AllLookups) InsertAaltLookups(alternates map[glyph.ID][]glyph.ID, flags layout.LookupFlags) []LookupId {
	newLookups := AaltLookups(alternates, flags)
	if len(newLookups) == 0 {
		return nil
	}
	delta := len(newLookups)

	renumber := func(l *SomeLookup) {
		if l == nil || !l.Kind().IsContextual() {
			return
		}
		// The root's own identity shifts along with everything else in
		// the GSUB vector; anonymous lookups are never renumbered here
		// since they are resolved relative to RootID at Build time, not
		// through a stored index of their own (see lookupIndexOf).
		l.contextual.RootID = l.contextual.RootID.AdjustIfGsub(delta)
		for i := range l.contextual.Rules {
			actions := l.contextual.Rules[i].Actions
			for j := range actions {
				if actions[j].AnonymousIdx != nil {
					continue
				}
				actions[j].Lookup = actions[j].Lookup.AdjustIfGsub(delta)
			}
		}
	}

	for _, l := range a.gsub {
		renumber(l)
	}
	renumber(a.current)

	a.PrependGsub(newLookups)

	ids := make([]LookupId, len(newLookups))
	for i := range newLookups {
		ids[i] = GsubLookupId(layout.LookupIndex(i))
	}
	return ids
}
