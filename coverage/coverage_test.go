package coverage

import (
	"testing"

	"github.com/typeforge/feacompile/glyph"
)

func TestNewOrdersByGlyphID(t *testing.T) {
	tbl := New([]glyph.ID{5, 1, 3, 1})
	if len(tbl) != 3 {
		t.Fatalf("got %d entries, want 3", len(tbl))
	}
	if tbl[1] != 0 || tbl[3] != 1 || tbl[5] != 2 {
		t.Errorf("unexpected index assignment: %+v", tbl)
	}
	glyphs := tbl.Glyphs()
	want := []glyph.ID{1, 3, 5}
	for i, g := range want {
		if glyphs[i] != g {
			t.Errorf("Glyphs()[%d] = %d, want %d", i, glyphs[i], g)
		}
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet([]glyph.ID{2, 4})
	if !s.Contains(2) || s.Contains(3) {
		t.Errorf("unexpected set membership: %+v", s)
	}
}
