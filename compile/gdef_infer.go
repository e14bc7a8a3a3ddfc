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
	"github.com/typeforge/feacompile/gdef"
	"github.com/typeforge/feacompile/glyph"
)

// GlyphClass is one observed (glyph, class) pair surfaced by
// InferGlyphClasses. A glyph that plays more than one role is reported
// once per role, including roles that disagree with each other: the
// caller, not this package, decides how such a conflict is resolved.
type GlyphClass struct {
	Glyph glyph.ID
	Class uint16
}

// InferGlyphClasses scans every finished GPOS lookup — never GSUB — and
// reports every glyph it finds playing a mark or base/ligature-component
// role, paired with the corresponding GDEF glyph class. This mirrors a
// long-standing quirk of the reference FEA compilers: a glyph used only
// as a substitution target in GSUB never gets an inferred GDEF class,
// even though plenty of real feature files rely on GSUB rules to
// establish which glyphs are marks. The quirk is preserved rather than
// fixed, since downstream consumers depend on its exact behavior.
//
// Every observed pair is reported, in ascending GPOS lookup-index order;
// a glyph seen in conflicting roles is reported once per role rather
// than resolved here, since resolving such a conflict is the consumer's
// decision to make, not this package's.
func (a *AllLookups) InferGlyphClasses() []GlyphClass {
	var out []GlyphClass

	assign := func(glyphs []glyph.ID, class uint16) {
		for _, g := range glyphs {
			out = append(out, GlyphClass{Glyph: g, Class: class})
		}
	}

	for _, l := range a.gpos {
		switch l.Kind() {
		case GposType4:
			b := l.GposType4Builder()
			assign(b.MarkGlyphs(), gdef.ClassMark)
			assign(b.BaseGlyphs(), gdef.ClassBase)
		case GposType5:
			b := l.GposType5Builder()
			assign(b.MarkGlyphs(), gdef.ClassMark)
			assign(b.LigatureGlyphs(), gdef.ClassLigature)
		case GposType6:
			b := l.GposType6Builder()
			assign(b.Mark1Glyphs(), gdef.ClassMark)
			assign(b.Mark2Glyphs(), gdef.ClassMark)
		}
	}

	return out
}
