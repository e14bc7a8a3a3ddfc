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

// Package classdef builds OpenType ClassDef tables: a mapping from glyph
// id to a small integer class id, used by class-based pair-positioning
// and contextual subtable formats.
package classdef

import (
	"sort"

	"github.com/typeforge/feacompile/glyph"
)

// Table maps glyph id to class id. Glyphs absent from the table read as
// class 0. A builder that reserved class 0 leaves that class to exactly
// those glyphs ("all other glyphs"); otherwise the largest declared
// class also has id 0.
type Table map[glyph.ID]uint16

// NumClasses returns one more than the largest class id present, i.e.
// the number of distinct classes a subtable referencing this table must
// size its per-class arrays for.
func (t Table) NumClasses() uint16 {
	var max uint16
	for _, c := range t {
		if c > max {
			max = c
		}
	}
	return max + 1
}

// Builder2 accumulates glyph classes and assigns class ids on Build,
// following the ordering rule used by the dominant existing feature-file
// compiler: the largest class gets the lowest id (ties broken by the
// smallest glyph id in the class), so that the binary ClassDef encoding
// is as compact as possible.
type Builder2 struct {
	classes    []glyph.Class
	glyphs     map[glyph.ID]int // glyph -> index into classes
	useClass0  bool
}

// New returns an empty builder. If useClass0 is true, class ids start at
// 1 and class 0 is reserved for "none of the declared classes" (needed
// by class-based pair-positioning subtables, which require an explicit
// class 0); otherwise ids start at 0 and every glyph must belong to some
// declared class.
func New(useClass0 bool) *Builder2 {
	return &Builder2{
		glyphs:    make(map[glyph.ID]int),
		useClass0: useClass0,
	}
}

// CanAdd reports whether cls may be added without conflict: a glyph may
// belong to at most one class, so cls can be added only if every glyph
// it contains is either unassigned or already assigned to this exact
// class.
func (b *Builder2) CanAdd(cls glyph.Class) bool {
	var existing = -2 // sentinel: no glyph seen yet
	for _, g := range cls {
		idx, ok := b.glyphs[g]
		if !ok {
			continue
		}
		if existing == -2 {
			existing = idx
		} else if existing != idx {
			return false
		}
	}
	if existing == -2 {
		return true
	}
	// every glyph seen belongs to `existing`; the new class is only
	// compatible if it is exactly that class (same glyph set).
	return sameGlyphs(b.classes[existing], cls)
}

// Add records cls as a class to be assigned an id at Build time. The
// caller must have checked CanAdd first; Add does not itself detect
// conflicts.
func (b *Builder2) Add(cls glyph.Class) {
	idx := len(b.classes)
	b.classes = append(b.classes, cls)
	for _, g := range cls {
		b.glyphs[g] = idx
	}
}

// Build assigns class ids and returns the resulting table.
func (b *Builder2) Build() Table {
	order := make([]int, len(b.classes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := b.classes[order[i]], b.classes[order[j]]
		if len(ci) != len(cj) {
			return len(ci) > len(cj) // largest class first
		}
		return minGlyph(ci) < minGlyph(cj)
	})

	base := uint16(0)
	if b.useClass0 {
		base = 1
	}

	out := make(Table)
	for rank, idx := range order {
		id := base + uint16(rank)
		for _, g := range b.classes[idx] {
			out[g] = id
		}
	}
	return out
}

func minGlyph(cls glyph.Class) glyph.ID {
	m := cls[0]
	for _, g := range cls[1:] {
		if g < m {
			m = g
		}
	}
	return m
}

func sameGlyphs(a, b glyph.Class) bool {
	if len(a) != len(b) {
		return false
	}
	setA := make(map[glyph.ID]bool, len(a))
	for _, g := range a {
		setA[g] = true
	}
	for _, g := range b {
		if !setA[g] {
			return false
		}
	}
	return true
}
