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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typeforge/feacompile/anchor"
	"github.com/typeforge/feacompile/coverage"
	"github.com/typeforge/feacompile/glyph"
	"github.com/typeforge/feacompile/layout"
	"github.com/typeforge/feacompile/tag"
)

// --- LookupId / AdjustIfGsub (P2) --------------------------------------

func TestLookupIdAdjustIfGsubShiftsOnlyGsub(t *testing.T) {
	g := GsubLookupId(3)
	if got := g.AdjustIfGsub(2).ToGsubOrDie(); got != 5 {
		t.Errorf("gsub id adjust = %d, want 5", got)
	}

	p := GposLookupId(3)
	if got := p.AdjustIfGsub(2); got != p {
		t.Errorf("gpos id must be unchanged by AdjustIfGsub, got %v want %v", got, p)
	}

	if got := EmptyLookupId.AdjustIfGsub(2); !got.IsEmpty() {
		t.Errorf("empty id must stay empty, got %v", got)
	}
}

// --- AllLookups: basic lifecycle and named-block binding (P7, S6) -----

func TestStartLookupAssignsStableIndices(t *testing.T) {
	a := NewAllLookups()

	id0 := a.StartLookup(GsubType1, 0, 0)
	a.Current().AddGsubType1(1, 2)
	id1 := a.StartLookup(GsubType1, 0, 0) // different lookup, same kind: still a fresh one forced by caller
	a.Current().AddGsubType1(3, 4)
	a.FinishCurrent()

	if id0 != GsubLookupId(0) {
		t.Errorf("id0 = %v, want GsubLookupId(0)", id0)
	}
	if id1 != GsubLookupId(1) {
		t.Errorf("id1 = %v, want GsubLookupId(1)", id1)
	}
	if a.NumGsub() != 2 {
		t.Errorf("NumGsub() = %d, want 2", a.NumGsub())
	}
}

func TestNamedBlockBindsEveryLookupItContributes(t *testing.T) {
	a := NewAllLookups()

	a.StartNamed("mixed")
	a.StartLookup(GsubType1, 0, 0)
	a.Current().AddGsubType1(1, 2)
	// kind switch inside the same named block: contributes a second lookup
	a.StartLookup(GposType1, 0, 0)
	a.Current().AddGposType1(5, &layout.ValueRecord{XAdvance: 10})
	a.EndNamed()

	ids := a.GetNamed("mixed")
	if len(ids) != 2 {
		t.Fatalf("GetNamed(mixed) = %v, want 2 entries", ids)
	}
	if !ids[0].IsGsub() || !ids[1].IsGpos() {
		t.Errorf("GetNamed(mixed) = %v, want [gsub gpos]", ids)
	}
}

func TestEmptyNamedBlockBindsEmptyLookupId(t *testing.T) {
	a := NewAllLookups()

	a.StartNamed("nothing")
	a.EndNamed()

	ids := a.GetNamed("nothing")
	if len(ids) != 1 || !ids[0].IsEmpty() {
		t.Fatalf("GetNamed(nothing) = %v, want [Empty]", ids)
	}
}

func TestGetNamedUnknownNameReturnsNil(t *testing.T) {
	a := NewAllLookups()
	if got := a.GetNamed("never-declared"); got != nil {
		t.Errorf("GetNamed(never-declared) = %v, want nil", got)
	}
}

// --- aalt prepend-and-renumber (S4) ------------------------------------

func TestInsertAaltLookupsRenumbersNestedReferences(t *testing.T) {
	a := NewAllLookups()

	// A pre-existing chained-contextual GSUB lookup (index 0) that
	// invokes another pre-existing GSUB lookup (index 1).
	a.StartLookup(GsubChainedContextual, 0, 0)
	a.Current().AddContextualRule(ContextualRule{
		Input:   []glyph.ID{10},
		Actions: []InputAction{{SequenceIndex: 0, Lookup: GsubLookupId(1)}},
	})
	a.FinishCurrent()

	a.StartLookup(GsubType1, 0, 0)
	a.Current().AddGsubType1(10, 20)
	a.FinishCurrent()

	if a.NumGsub() != 2 {
		t.Fatalf("NumGsub() = %d, want 2 before aalt", a.NumGsub())
	}

	alternates := map[glyph.ID][]glyph.ID{
		100: {200, 201}, // alternate sub -> second prepended lookup
		101: {202},      // single sub -> first prepended lookup
	}
	aaltIDs := a.InsertAaltLookups(alternates, 0)

	if len(aaltIDs) != 2 {
		t.Fatalf("InsertAaltLookups returned %d ids, want 2", len(aaltIDs))
	}
	if aaltIDs[0] != GsubLookupId(0) || aaltIDs[1] != GsubLookupId(1) {
		t.Errorf("aalt ids = %v, want [0 1]", aaltIDs)
	}
	if a.NumGsub() != 4 {
		t.Fatalf("NumGsub() = %d, want 4 after prepending 2 lookups", a.NumGsub())
	}

	// The original chained-contextual lookup, now at index 2, must have
	// its nested reference shifted from 1 to 3.
	chained := a.gsub[2]
	got := chained.contextual.Rules[0].Actions[0].Lookup
	if got != GsubLookupId(3) {
		t.Errorf("nested reference after renumber = %v, want GsubLookupId(3)", got)
	}
}

func TestAaltLookupsOmitsEmptyPartition(t *testing.T) {
	// Every target has exactly one alternate: only the single-sub lookup
	// should be produced.
	out := AaltLookups(map[glyph.ID][]glyph.ID{1: {2}}, 0)
	if len(out) != 1 || out[0].Kind() != GsubType1 {
		t.Fatalf("AaltLookups = %v, want exactly one GsubType1 lookup", out)
	}
}

// --- GDEF inference scans GPOS only -------------------------------------

func TestInferGlyphClassesIgnoresGsub(t *testing.T) {
	a := NewAllLookups()

	a.StartLookup(GsubType1, 0, 0)
	a.Current().AddGsubType1(9, 99) // would-be mark glyph, but only via GSUB
	a.FinishCurrent()

	a.StartLookup(GposType4, 0, 0)
	a.Current().GposType4Builder().AddMark(1, 0, anchor.Table{})
	a.Current().GposType4Builder().AddBaseAnchor(2, 0, anchor.Table{})
	a.FinishCurrent()

	pairs := a.InferGlyphClasses()
	byGlyph := make(map[glyph.ID][]uint16)
	for _, p := range pairs {
		byGlyph[p.Glyph] = append(byGlyph[p.Glyph], p.Class)
	}

	if _, ok := byGlyph[9]; ok {
		t.Errorf("glyph 9 only appears in GSUB and must not get an inferred GDEF class")
	}
	if got := byGlyph[1]; len(got) != 1 || got[0] != 3 { // gdef.ClassMark
		t.Errorf("mark glyph classes = %v, want [3]", got)
	}
	if got := byGlyph[2]; len(got) != 1 || got[0] != 1 { // gdef.ClassBase
		t.Errorf("base glyph classes = %v, want [1]", got)
	}
}

func TestInferGlyphClassesSurfacesConflictingPairsUnresolved(t *testing.T) {
	a := NewAllLookups()

	a.StartLookup(GposType4, 0, 0)
	a.Current().GposType4Builder().AddMark(1, 0, anchor.Table{})
	a.FinishCurrent()

	a.StartLookup(GposType5, 0, 0)
	a.Current().GposType5Builder().AddLigatureComponentAnchor(1, 0, 0, anchor.Table{})
	a.FinishCurrent()

	pairs := a.InferGlyphClasses()
	var classes []uint16
	for _, p := range pairs {
		if p.Glyph == 1 {
			classes = append(classes, p.Class)
		}
	}
	if len(classes) != 2 {
		t.Fatalf("glyph 1 pairs = %v, want both conflicting roles surfaced", classes)
	}
}

// --- Feature dedup (P3) and split_lookups (P6) --------------------------

func TestAddFeatureDedupsOnTagAndLookupList(t *testing.T) {
	asm := NewAssembler()

	key1 := FeatureKey{Feature: tag.MakeTag("liga"), Script: tag.MakeTag("latn"), Language: tag.DefaultLanguage}
	key2 := FeatureKey{Feature: tag.MakeTag("liga"), Script: tag.MakeTag("cyrl"), Language: tag.DefaultLanguage}

	if err := asm.AddFeature(key1, []LookupId{GsubLookupId(0), GsubLookupId(1)}, false); err != nil {
		t.Fatalf("AddFeature: %v", err)
	}
	if err := asm.AddFeature(key2, []LookupId{GsubLookupId(0), GsubLookupId(1)}, false); err != nil {
		t.Fatalf("AddFeature: %v", err)
	}

	info := asm.BuildGsub(make(layout.LookupList, 2))
	if len(info.FeatureList) != 1 {
		t.Fatalf("FeatureList = %v, want exactly one deduplicated record", info.FeatureList)
	}
	if len(info.ScriptList) != 2 {
		t.Fatalf("ScriptList has %d scripts, want 2", len(info.ScriptList))
	}
}

func TestAddFeatureSplitsAcrossTables(t *testing.T) {
	asm := NewAssembler()
	key := FeatureKey{Feature: tag.MakeTag("test"), Script: tag.MakeTag("latn"), Language: tag.DefaultLanguage}

	if err := asm.AddFeature(key, []LookupId{GsubLookupId(0), GposLookupId(0)}, false); err != nil {
		t.Fatalf("AddFeature: %v", err)
	}

	gsubInfo := asm.BuildGsub(make(layout.LookupList, 1))
	gposInfo := asm.BuildGpos(make(layout.LookupList, 1))

	if len(gsubInfo.FeatureList) != 1 || len(gsubInfo.FeatureList[0].Lookups) != 1 {
		t.Fatalf("gsub feature list = %v, want one record with one lookup", gsubInfo.FeatureList)
	}
	if len(gposInfo.FeatureList) != 1 || len(gposInfo.FeatureList[0].Lookups) != 1 {
		t.Fatalf("gpos feature list = %v, want one record with one lookup", gposInfo.FeatureList)
	}
}

func TestAddSizeFeatureAlwaysPresentWithNoLookups(t *testing.T) {
	asm := NewAssembler()
	if err := asm.AddSizeFeature(tag.MakeTag("latn"), tag.DefaultLanguage); err != nil {
		t.Fatalf("AddSizeFeature: %v", err)
	}

	info := asm.BuildGpos(nil)
	if len(info.FeatureList) != 1 || info.FeatureList[0].Tag != tag.Size {
		t.Fatalf("FeatureList = %v, want a lone size record", info.FeatureList)
	}
	if len(info.FeatureList[0].Lookups) != 0 {
		t.Errorf("size feature lookups = %v, want empty", info.FeatureList[0].Lookups)
	}
}

// --- Script ordering (P4) -----------------------------------------------

func TestSortedScriptTagsAscending(t *testing.T) {
	asm := NewAssembler()
	scripts := []string{"latn", "DFLT", "arab"}
	for _, sc := range scripts {
		key := FeatureKey{Feature: tag.MakeTag("liga"), Script: tag.MakeTag(sc), Language: tag.DefaultLanguage}
		if err := asm.AddFeature(key, []LookupId{GsubLookupId(0)}, false); err != nil {
			t.Fatalf("AddFeature: %v", err)
		}
	}

	info := asm.BuildGsub(make(layout.LookupList, 1))
	got := SortedScriptTags(info.ScriptList)
	want := []tag.Tag{tag.MakeTag("DFLT"), tag.MakeTag("arab"), tag.MakeTag("latn")}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedScriptTags = %v, want %v", got, want)
		}
	}
}

func TestAddFeatureRequiredSetsLangSysRequiredSlot(t *testing.T) {
	asm := NewAssembler()
	key := FeatureKey{Feature: tag.MakeTag("ccmp"), Script: tag.MakeTag("latn"), Language: tag.DefaultLanguage}

	if err := asm.AddFeature(key, []LookupId{GsubLookupId(0)}, true); err != nil {
		t.Fatalf("AddFeature: %v", err)
	}

	info := asm.BuildGsub(make(layout.LookupList, 1))
	rec := info.ScriptList[tag.MakeTag("latn")].Default
	if !rec.HasRequired {
		t.Fatalf("LangSys.HasRequired = false, want true")
	}
	if rec.Required != 0 {
		t.Errorf("LangSys.Required = %d, want 0", rec.Required)
	}
	if len(rec.Features) != 0 {
		t.Errorf("LangSys.Features = %v, want empty: a required feature is not also a general one", rec.Features)
	}
}

func TestAddFeatureReturnsErrFeatureIndexOverflow(t *testing.T) {
	asm := NewAssembler()
	for i := 0; i < 1<<16; i++ {
		key := FeatureKey{
			Feature:  tag.MakeTag("liga"),
			Script:   tag.MakeTag("latn"),
			Language: tag.DefaultLanguage,
		}
		if err := asm.AddFeature(key, []LookupId{GsubLookupId(layout.LookupIndex(i))}, false); err != nil {
			t.Fatalf("AddFeature: unexpected error at i=%d: %v", i, err)
		}
	}

	key := FeatureKey{Feature: tag.MakeTag("liga"), Script: tag.MakeTag("latn"), Language: tag.DefaultLanguage}
	err := asm.AddFeature(key, []LookupId{GsubLookupId(0), GsubLookupId(1)}, false)
	if err != ErrFeatureIndexOverflow {
		t.Fatalf("AddFeature at capacity = %v, want ErrFeatureIndexOverflow", err)
	}
}

// --- SomeLookup kind-mismatch panics (programmer error) -----------------

func TestSomeLookupPanicsOnKindMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on kind mismatch")
		}
	}()
	l := NewSomeLookup(GsubType1, 0, 0)
	l.AddGposType1(1, &layout.ValueRecord{})
}

// --- Anonymous lookups synthesized at a contextual rule site (I3) ------

func TestAnonymousLookupIsPushedAndResolvedAfterRoot(t *testing.T) {
	a := NewAllLookups()

	a.StartLookup(GsubType1, 0, 0)
	a.Current().AddGsubType1(5, 6)
	a.FinishCurrent()

	a.StartLookup(GsubChainedContextual, 0, 0)
	inline := NewSomeLookup(GsubType1, 0, 0)
	inline.AddGsubType1(10, 20)
	idx := a.Current().AddAnonymousLookup(inline)
	a.Current().AddContextualRule(ContextualRule{
		Input: []glyph.ID{10},
		Actions: []InputAction{
			{SequenceIndex: 0, AnonymousIdx: &idx},
		},
	})
	rootID := a.FinishCurrent()

	if !rootID.IsGsub() || rootID.ToGsubOrDie() != 1 {
		t.Fatalf("root id = %v, want GsubLookupId(1)", rootID)
	}
	if a.NumGsub() != 3 {
		t.Fatalf("NumGsub() = %d, want 3 (plain + root + anonymous)", a.NumGsub())
	}

	built := a.BuildGsub()
	seq, ok := built[1].Subtables[0].(*layout.ChainedSeqContext1)
	if !ok {
		t.Fatalf("lookup 1 subtable = %T, want *layout.ChainedSeqContext1", built[1].Subtables[0])
	}
	gotLookup := seq.Rules[0][0].Actions[0].LookupListIndex
	if gotLookup != 2 {
		t.Errorf("anonymous lookup resolved to index %d, want 2 (root+1)", gotLookup)
	}
}

// --- Single-substitution builder: uniform-delta collapse ---------------

func TestSingleSubBuilderCollapsesToUniformDelta(t *testing.T) {
	b := NewSingleSubBuilder()
	b.Add(10, 20)
	b.Add(11, 21)

	got := b.Build()
	want := &layout.Gsub1_1{Cov: coverage.New([]glyph.ID{10, 11}), Delta: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}
