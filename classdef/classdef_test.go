package classdef

import (
	"testing"

	"github.com/typeforge/feacompile/glyph"
)

func TestBuildLargestClassGetsLowestID(t *testing.T) {
	b := New(false)
	small := glyph.Class{10, 11}
	large := glyph.Class{1, 2, 3, 4}
	medium := glyph.Class{20, 21, 22}

	for _, c := range []glyph.Class{small, large, medium} {
		if !b.CanAdd(c) {
			t.Fatalf("CanAdd(%v) = false, want true", c)
		}
		b.Add(c)
	}

	table := b.Build()

	// large (len 4) -> id 0, medium (len 3) -> id 1, small (len 2) -> id 2
	for _, g := range large {
		if table[g] != 0 {
			t.Errorf("glyph %d: class = %d, want 0", g, table[g])
		}
	}
	for _, g := range medium {
		if table[g] != 1 {
			t.Errorf("glyph %d: class = %d, want 1", g, table[g])
		}
	}
	for _, g := range small {
		if table[g] != 2 {
			t.Errorf("glyph %d: class = %d, want 2", g, table[g])
		}
	}
}

func TestReservedClassZeroStartsIDsAtOne(t *testing.T) {
	b := New(true)
	cls := glyph.Class{5, 6}
	b.Add(cls)
	table := b.Build()
	if table[5] != 1 || table[6] != 1 {
		t.Errorf("table = %+v, want class id 1 for both glyphs", table)
	}
}

func TestCanAddRejectsConflict(t *testing.T) {
	b := New(false)
	b.Add(glyph.Class{1, 2, 3})
	if b.CanAdd(glyph.Class{3, 4}) {
		t.Errorf("expected conflict: glyph 3 already in a different class")
	}
	if !b.CanAdd(glyph.Class{1, 2, 3}) {
		t.Errorf("expected re-adding the identical class to be allowed")
	}
}

func TestTableNumClasses(t *testing.T) {
	b := New(false)
	b.Add(glyph.Class{1})
	b.Add(glyph.Class{2})
	table := b.Build()
	if table.NumClasses() != 2 {
		t.Errorf("NumClasses() = %d, want 2", table.NumClasses())
	}
}
