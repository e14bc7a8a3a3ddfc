package layout

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/typeforge/feacompile/tag"
)

// Compile-time assertions that every concrete subtable shape satisfies
// the Subtable marker interface, matching the teacher's own
// `_ Subtable = (*Gsub1_1)(nil)` style list.
var (
	_ Subtable = (*Gsub1_1)(nil)
	_ Subtable = (*Gsub1_2)(nil)
	_ Subtable = (*Gsub2_1)(nil)
	_ Subtable = (*Gsub3_1)(nil)
	_ Subtable = (*Gsub4_1)(nil)
	_ Subtable = (*Gsub8_1)(nil)
	_ Subtable = (*Gpos1_1)(nil)
	_ Subtable = (*Gpos1_2)(nil)
	_ Subtable = Gpos2_1(nil)
	_ Subtable = (*Gpos2_2)(nil)
	_ Subtable = (*Gpos3_1)(nil)
	_ Subtable = (*Gpos4_1)(nil)
	_ Subtable = (*Gpos5_1)(nil)
	_ Subtable = (*Gpos6_1)(nil)
	_ Subtable = (*SeqContext1)(nil)
	_ Subtable = (*SeqContext2)(nil)
	_ Subtable = (*SeqContext3)(nil)
	_ Subtable = (*ChainedSeqContext1)(nil)
	_ Subtable = (*ChainedSeqContext2)(nil)
	_ Subtable = (*ChainedSeqContext3)(nil)
)

func TestFindLookupsRoutesDefaultAndRequired(t *testing.T) {
	info := &Info{
		FeatureList: FeatureListInfo{
			{Tag: tag.MakeTag("liga"), Lookups: []LookupIndex{0}},
			{Tag: tag.MakeTag("kern"), Lookups: []LookupIndex{1}},
		},
		LookupList: make(LookupList, 2),
		ScriptList: ScriptListInfo{
			tag.MakeTag("latn"): &ScriptRecord{
				Default: &LangSys{HasRequired: true, Required: 0, Features: []FeatureIndex{1}},
			},
		},
	}

	got := info.FindLookups(tag.MakeTag("latn"), language.English, map[string]bool{"kern": true})
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("FindLookups = %v, want [0 1]", got)
	}
}

func TestFindLookupsExcludesUnrequestedOptionalFeature(t *testing.T) {
	info := &Info{
		FeatureList: FeatureListInfo{
			{Tag: tag.MakeTag("kern"), Lookups: []LookupIndex{0}},
		},
		LookupList: make(LookupList, 1),
		ScriptList: ScriptListInfo{
			tag.MakeTag("latn"): &ScriptRecord{
				Default: &LangSys{Features: []FeatureIndex{0}},
			},
		},
	}
	got := info.FindLookups(tag.MakeTag("latn"), language.English, map[string]bool{})
	if len(got) != 0 {
		t.Errorf("FindLookups = %v, want none (kern not requested)", got)
	}
}
