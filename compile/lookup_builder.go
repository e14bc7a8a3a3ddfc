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

import "github.com/typeforge/feacompile/layout"

// LookupBuilder holds the flags, optional mark-filter set, and the
// non-empty ordered sequence of typed subtable builders that make up one
// plain (non-contextual) lookup. New subtables are appended only when
// the caller requests a break; until then, the current subtable is
// always the last one in Subtables.
type LookupBuilder[T SubtableBuilder] struct {
	Flags            layout.LookupFlags
	MarkFilteringSet uint16
	Subtables        []T
}

// NewLookupBuilder opens a lookup with a single, empty first subtable.
func NewLookupBuilder[T SubtableBuilder](flags layout.LookupFlags, markFilteringSet uint16, first T) *LookupBuilder[T] {
	return &LookupBuilder[T]{
		Flags:            flags,
		MarkFilteringSet: markFilteringSet,
		Subtables:        []T{first},
	}
}

// Last returns the current (always the final) subtable builder.
func (b *LookupBuilder[T]) Last() T {
	return b.Subtables[len(b.Subtables)-1]
}

// AddSubtableBreak appends a fresh subtable builder, making it current.
func (b *LookupBuilder[T]) AddSubtableBreak(next T) {
	b.Subtables = append(b.Subtables, next)
}

// Build converts every accumulated subtable builder into its typed
// layout.Subtable and assembles the finished lookup table.
func (b *LookupBuilder[T]) Build(lookupType uint16) *layout.LookupTable {
	subtables := make([]layout.Subtable, len(b.Subtables))
	for i, s := range b.Subtables {
		subtables[i] = s.Build()
	}
	return &layout.LookupTable{
		Meta: &layout.LookupMetaInfo{
			LookupType:       lookupType,
			LookupFlags:      b.Flags,
			MarkFilteringSet: b.MarkFilteringSet,
		},
		Subtables: subtables,
	}
}
