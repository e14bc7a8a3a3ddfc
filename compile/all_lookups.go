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

	"golang.org/x/exp/maps"

	"github.com/typeforge/feacompile/layout"
)

// AllLookups is the driver's single piece of mutable compilation state:
// the growing GSUB and GPOS lookup vectors, the lookup currently being
// filled in (if any), and the table mapping a `lookup` block's name to
// the LookupId it was finally assigned. A named block may contribute
// zero, one, or several lookups to the vectors (a feature reference to
// its name expands to the full list); an empty named block maps its
// name to EmptyLookupId (invariant I4, scenario S6).
type AllLookups struct {
	gsub []*SomeLookup
	gpos []*SomeLookup

	current     *SomeLookup
	pendingName *string

	named map[string][]LookupId
}

// NewAllLookups returns an empty driver state.
func NewAllLookups() *AllLookups {
	return &AllLookups{named: make(map[string][]LookupId)}
}

// NeedsNewLookup reports whether the next rule of the given kind can be
// folded into the currently open lookup or must start a fresh one. A
// new lookup is required whenever no lookup is open, or the open
// lookup's kind differs.
func (a *AllLookups) NeedsNewLookup(kind Kind) bool {
	return a.current == nil || a.current.Kind() != kind
}

// StartLookup opens a new lookup of the given kind, pushing whatever
// lookup was previously open to its vector first (attaching it to the
// pending block name, if one was set by StartNamed — a single named
// block may contribute several lookups this way, one per kind switch).
// It returns the LookupId the new lookup will receive once pushed.
func (a *AllLookups) StartLookup(kind Kind, flags layout.LookupFlags, markFilteringSet uint16) LookupId {
	if a.current != nil {
		a.pushCurrent()
	}
	a.current = NewSomeLookup(kind, flags, markFilteringSet)
	return a.provisionalID(kind)
}

// provisionalID reports the LookupId the currently open lookup will be
// assigned once FinishCurrent pushes it: the next unused slot of the
// vector its kind belongs to.
func (a *AllLookups) provisionalID(kind Kind) LookupId {
	if kind.IsGpos() {
		return GposLookupId(layout.LookupIndex(len(a.gpos)))
	}
	return GsubLookupId(layout.LookupIndex(len(a.gsub)))
}

// Current returns the lookup currently being filled in, or nil.
func (a *AllLookups) Current() *SomeLookup { return a.current }

// AddSubtableBreak starts a fresh subtable within the currently open
// lookup. It is a programmer error to call this with no lookup open.
func (a *AllLookups) AddSubtableBreak() {
	if a.current == nil {
		programmerError("subtable break requested with no lookup open")
	}
	a.current.AddSubtableBreak()
}

// StartNamed opens a `lookup name { ... }` block. The name stays
// pending across every StartLookup call made while the block is open —
// a block whose rules switch kind mid-way contributes one lookup per
// kind switch, and all of them are recorded under the same name
// (satisfying P7: the binding is to the whole block, not to a single
// lookup). The block's own rules are added through the ordinary
// StartLookup/Current/AddSubtableBreak calls; EndNamed closes it.
func (a *AllLookups) StartNamed(name string) {
	if a.current != nil {
		a.pushCurrent()
	}
	a.pendingName = &name
}

// EndNamed closes the block opened by StartNamed: it pushes whatever
// lookup is still open, records the (possibly empty) name binding, and
// clears the pending name. If the block never started a lookup at all
// (an empty named block, scenario S6), the name is bound to
// EmptyLookupId.
func (a *AllLookups) EndNamed() {
	name := a.pendingName
	if name == nil {
		programmerError("EndNamed called with no named block open")
	}
	if a.current == nil {
		a.named[*name] = append(a.named[*name], EmptyLookupId)
	} else {
		// pushCurrent records the id under the still-pending name.
		a.pushCurrent()
	}
	a.pendingName = nil
}

// FinishCurrent pushes the currently open unnamed lookup (if any) onto
// its vector and returns the LookupId it was assigned. Empty
// (EmptyLookupId) if nothing was open.
func (a *AllLookups) FinishCurrent() LookupId {
	if a.current == nil {
		return EmptyLookupId
	}
	return a.pushCurrent()
}

// pushCurrent appends a.current to its vector, attaches it to the
// pending block name if one is set, clears a.current, and returns the
// id it was assigned. If a.current is a contextual lookup, its
// RootID is set to that id and every lookup it registered through
// AddAnonymousLookup is pushed to the same vector immediately after it
// (invariant I3), so that InputAction.AnonymousIdx resolves to
// RootID+1+idx once Build runs.
func (a *AllLookups) pushCurrent() LookupId {
	cur := a.current
	kind := cur.Kind()
	var id LookupId
	if kind.IsGpos() {
		id = GposLookupId(layout.LookupIndex(len(a.gpos)))
		a.gpos = append(a.gpos, cur)
	} else {
		id = GsubLookupId(layout.LookupIndex(len(a.gsub)))
		a.gsub = append(a.gsub, cur)
	}
	a.current = nil

	if kind.IsContextual() {
		cur.contextual.RootID = id
		if kind.IsGpos() {
			a.gpos = append(a.gpos, cur.contextual.Anonymous...)
		} else {
			a.gsub = append(a.gsub, cur.contextual.Anonymous...)
		}
	}

	if a.pendingName != nil {
		a.named[*a.pendingName] = append(a.named[*a.pendingName], id)
	}

	return id
}

// GetNamed returns the lookup ids a named block contributed. A name
// that was never defined returns nil.
func (a *AllLookups) GetNamed(name string) []LookupId {
	return a.named[name]
}

// NamedLookupNames returns every recorded block name, sorted, for
// deterministic iteration (e.g. when reporting an unresolved reference).
func (a *AllLookups) NamedLookupNames() []string {
	names := maps.Keys(a.named)
	sort.Strings(names)
	return names
}

// NumGsub and NumGpos report the number of lookups pushed to each
// vector so far.
func (a *AllLookups) NumGsub() int { return len(a.gsub) }
func (a *AllLookups) NumGpos() int { return len(a.gpos) }

// BuildGsub and BuildGpos assemble the finished LookupList for each
// table, in vector order (lookup index == vector position, invariant
// I2).
func (a *AllLookups) BuildGsub() layout.LookupList {
	out := make(layout.LookupList, len(a.gsub))
	for i, l := range a.gsub {
		out[i] = l.Build()
	}
	return out
}

func (a *AllLookups) BuildGpos() layout.LookupList {
	out := make(layout.LookupList, len(a.gpos))
	for i, l := range a.gpos {
		out[i] = l.Build()
	}
	return out
}

// PrependGsub inserts newLookups at the front of the GSUB vector,
// shifting every existing GSUB lookup index up by len(newLookups). It
// is the vector-level half of the aalt prepend-and-renumber pass; the
// caller is responsible for rewriting every nested LookupId reference
// with LookupId.AdjustIfGsub before or after calling this (order does
// not matter, since the two operations touch disjoint data).
func (a *AllLookups) PrependGsub(newLookups []*SomeLookup) {
	if len(newLookups) == 0 {
		return
	}
	a.gsub = append(append([]*SomeLookup{}, newLookups...), a.gsub...)
}
