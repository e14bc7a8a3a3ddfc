package glyph

import "testing"

func TestClassContains(t *testing.T) {
	c := Class{3, 7, 9}
	if !c.Contains(7) {
		t.Errorf("expected class to contain 7")
	}
	if c.Contains(8) {
		t.Errorf("did not expect class to contain 8")
	}
}

func TestOrClassGlyphs(t *testing.T) {
	g := NewGlyph(5)
	if got := g.Glyphs(); len(got) != 1 || got[0] != 5 {
		t.Errorf("NewGlyph(5).Glyphs() = %v, want [5]", got)
	}

	cl := NewClass(Class{1, 2, 3})
	if got := cl.Glyphs(); len(got) != 3 {
		t.Errorf("NewClass(...).Glyphs() = %v, want length 3", got)
	}
}
