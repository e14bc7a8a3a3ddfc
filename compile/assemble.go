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
	"fmt"
	"sort"

	"github.com/typeforge/feacompile/layout"
	"github.com/typeforge/feacompile/tag"
)

// tableAssembler accumulates one table's (GSUB or GPOS) deduplicated
// feature vector and script tree as FeatureKeys are registered.
type tableAssembler struct {
	features []*layout.FeatureRecord
	dedup    map[string]layout.FeatureIndex
	scripts  layout.ScriptListInfo
}

func newTableAssembler() *tableAssembler {
	return &tableAssembler{
		dedup:   make(map[string]layout.FeatureIndex),
		scripts: make(layout.ScriptListInfo),
	}
}

// dedupKey returns the (tag, lookup-index-list) key used to decide
// whether two FeatureKeys can share one FeatureRecord
// (invariant P3): same tag, same lookups, in the same order.
func dedupKey(t tag.Tag, lookups []layout.LookupIndex) string {
	key := t.String()
	for _, l := range lookups {
		key += fmt.Sprintf(":%d", l)
	}
	return key
}

// addFeature registers (or reuses) a FeatureRecord for t/lookups and
// routes it into the script/language tree at key.Script/key.Language. If
// required is true, the feature is bound to the LangSys's required slot
// instead of its general feature list, matching the FEA `required
// feature ...;` statement. An empty lookups list is still registered —
// the `size` feature is always present in GPOS with no lookups,
// regardless of whether any rule references it. It returns
// ErrFeatureIndexOverflow if assigning a new feature record would exceed
// the 65,536 distinct features a 16-bit FeatureIndex can address.
func (ta *tableAssembler) addFeature(key FeatureKey, lookups []layout.LookupIndex, required bool) error {
	k := dedupKey(key.Feature, lookups)
	idx, ok := ta.dedup[k]
	if !ok {
		if len(ta.features) >= 1<<16 {
			return ErrFeatureIndexOverflow
		}
		idx = layout.FeatureIndex(len(ta.features))
		ta.features = append(ta.features, &layout.FeatureRecord{Tag: key.Feature, Lookups: lookups})
		ta.dedup[k] = idx
	}

	rec := ta.scripts[key.Script]
	if rec == nil {
		rec = &layout.ScriptRecord{Languages: make(map[tag.Tag]*layout.LangSys)}
		ta.scripts[key.Script] = rec
	}

	var langSys *layout.LangSys
	if key.Language == tag.DefaultLanguage {
		if rec.Default == nil {
			rec.Default = &layout.LangSys{}
		}
		langSys = rec.Default
	} else {
		langSys = rec.Languages[key.Language]
		if langSys == nil {
			langSys = &layout.LangSys{}
			rec.Languages[key.Language] = langSys
		}
	}

	if required {
		langSys.HasRequired = true
		langSys.Required = idx
	} else {
		langSys.Features = append(langSys.Features, idx)
	}
	return nil
}

func (ta *tableAssembler) build(lookups layout.LookupList) *layout.Info {
	return &layout.Info{
		ScriptList:  ta.scripts,
		FeatureList: layout.FeatureListInfo(ta.features),
		LookupList:  lookups,
	}
}

// Assembler collects FeatureKey -> LookupId registrations across an
// entire compilation and, on Build, splits each registration's lookups
// by table (split_lookups, invariant P6: every GSUB id routes only to
// the GSUB feature tree, every GPOS id only to GPOS, and a FeatureKey
// whose lookups span both tables contributes one FeatureRecord to
// each) before handing the result to the per-table dedup/routing logic.
type Assembler struct {
	gsub *tableAssembler
	gpos *tableAssembler
}

// NewAssembler returns an empty feature/script assembler.
func NewAssembler() *Assembler {
	return &Assembler{gsub: newTableAssembler(), gpos: newTableAssembler()}
}

// AddFeature registers the lookups a `feature ... { ... }` block bound
// to key. Empty LookupIds (from an empty named block referenced by the
// feature) are silently dropped rather than routed to either table. If
// required is true, the feature is assigned to the LangSys's required
// slot in whichever table(s) it routes to, rather than appended to the
// general feature list.
func (asm *Assembler) AddFeature(key FeatureKey, ids []LookupId, required bool) error {
	var gsubIdx, gposIdx []layout.LookupIndex
	for _, id := range ids {
		switch {
		case id.IsEmpty():
			continue
		case id.IsGpos():
			gposIdx = append(gposIdx, id.ToGposOrDie())
		default:
			gsubIdx = append(gsubIdx, id.ToGsubOrDie())
		}
	}
	if len(gsubIdx) > 0 {
		if err := asm.gsub.addFeature(key, gsubIdx, required); err != nil {
			return err
		}
	}
	if len(gposIdx) > 0 {
		if err := asm.gpos.addFeature(key, gposIdx, required); err != nil {
			return err
		}
	}
	return nil
}

// AddSizeFeature registers the `size` feature for script/language with
// an empty lookup list in GPOS. `size` carries its parameters in the
// feature's own FeatureParams (out of scope for this in-memory model)
// rather than through lookups, so it must be present even when no rule
// ever references it. `size` is never a required feature.
func (asm *Assembler) AddSizeFeature(script, language tag.Tag) error {
	return asm.gpos.addFeature(FeatureKey{Feature: tag.Size, Script: script, Language: language}, nil, false)
}

// BuildGsub and BuildGpos assemble the finished per-table Info, given
// the already-built LookupList for that table (see AllLookups.BuildGsub
// / BuildGpos).
func (asm *Assembler) BuildGsub(lookups layout.LookupList) *layout.Info {
	return asm.gsub.build(lookups)
}

func (asm *Assembler) BuildGpos(lookups layout.LookupList) *layout.Info {
	return asm.gpos.build(lookups)
}

// SortedScriptTags returns scripts' keys in ascending tag order
// (invariant P4), the order a binary table assembler must walk the
// script list in.
func SortedScriptTags(scripts layout.ScriptListInfo) []tag.Tag {
	out := make([]tag.Tag, 0, len(scripts))
	for t := range scripts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// SortedLanguageTags returns a script record's explicit language tags
// in ascending order, excluding the implicit dflt default slot.
func SortedLanguageTags(rec *layout.ScriptRecord) []tag.Tag {
	out := make([]tag.Tag, 0, len(rec.Languages))
	for t := range rec.Languages {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
