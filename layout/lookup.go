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

// Package layout holds the in-memory, binary-format-independent shape of
// an OpenType GSUB or GPOS table: lookups, their typed subtables, and the
// Script/Feature tree that selects them. Nothing in this package encodes
// to or decodes from bytes — that is the job of an external binary
// serializer; these types are its input.
package layout

import (
	"sort"

	"golang.org/x/text/language"

	"github.com/typeforge/feacompile/tag"
)

// LookupIndex enumerates lookups; it is an index into a LookupList.
type LookupIndex uint16

// LookupList is the ordered set of lookups belonging to one table
// (GSUB or GPOS). Indices into it must remain stable once assigned,
// except for the single aalt prepend-and-renumber pass.
type LookupList []*LookupTable

// LookupTable is one lookup: its shared metadata plus the ordered list
// of subtables tried, in order, until one applies.
type LookupTable struct {
	Meta      *LookupMetaInfo
	Subtables []Subtable
}

// LookupMetaInfo carries the information shared across all of a lookup's
// subtables.
type LookupMetaInfo struct {
	// LookupType is the OpenType numeric lookup type (1-8 for GSUB,
	// 1-9 for GPOS; type 7/9 is the extension mechanism and is never
	// constructed directly by this package).
	LookupType uint16

	LookupFlags LookupFlags

	// MarkFilteringSet indexes into the GDEF table's MarkGlyphSets,
	// and is meaningful only when UseMarkFilteringSet is set.
	MarkFilteringSet uint16
}

// LookupFlags are the bits that modify how a lookup is applied.
type LookupFlags uint16

const (
	RightToLeft         LookupFlags = 0x0001
	IgnoreBaseGlyphs     LookupFlags = 0x0002
	IgnoreLigatures      LookupFlags = 0x0004
	IgnoreMarks          LookupFlags = 0x0008
	UseMarkFilteringSet  LookupFlags = 0x0010
	MarkAttachTypeMask   LookupFlags = 0xFF00
)

// Subtable is a marker interface implemented by every concrete subtable
// type this package defines (the fourteen GSUB/GPOS lookup-format
// shapes, plus the three contextual and three chained-contextual
// coverage/class/glyph-set formats). It carries no methods of its own:
// the binary serializer that consumes these values switches on the
// concrete type, not on an interface method, matching the closed,
// OpenType-spec-defined set of variants.
type Subtable interface {
	isSubtable()
}

// FeatureIndex enumerates entries in a FeatureListInfo.
type FeatureIndex uint16

// FeatureRecord is one entry of the deduplicated feature vector: a tag
// plus the lookups it selects, emitted in the order the lookups were
// finished.
type FeatureRecord struct {
	Tag     tag.Tag
	Lookups []LookupIndex
}

// FeatureListInfo is the deduplicated, index-addressed feature vector
// shared by every script/language combination that references a
// (tag, lookup-list) pair.
type FeatureListInfo []*FeatureRecord

// LangSys selects the features active for one (script, language) pair:
// an optional required feature and an ordered list of optional ones.
type LangSys struct {
	HasRequired bool
	Required    FeatureIndex
	Features    []FeatureIndex
}

// ScriptRecord holds one script's default LangSys (routed from the
// special `dflt` language tag) and its per-language LangSys records.
type ScriptRecord struct {
	Default   *LangSys
	Languages map[tag.Tag]*LangSys
}

// ScriptListInfo maps script tag to its script record.
type ScriptListInfo map[tag.Tag]*ScriptRecord

// Info is the complete in-memory content of one GSUB or GPOS table.
type Info struct {
	ScriptList  ScriptListInfo
	FeatureList FeatureListInfo
	LookupList  LookupList
}

// FindLookups returns, in ascending order, the lookups required to
// implement the given script under the best-matching language for lang,
// restricted to features named in includeFeature (the required feature,
// if any, is always included).
func (info *Info) FindLookups(script tag.Tag, lang language.Tag, includeFeature map[string]bool) []LookupIndex {
	if info == nil {
		return nil
	}
	rec := info.ScriptList[script]
	if rec == nil {
		return nil
	}

	langSys := rec.Default
	if len(rec.Languages) > 0 {
		tags := make([]tag.Tag, 0, len(rec.Languages))
		matchTags := make([]language.Tag, 0, len(rec.Languages))
		for t := range rec.Languages {
			tags = append(tags, t)
			matchTags = append(matchTags, language.Make(t.String()))
		}
		matcher := language.NewMatcher(matchTags)
		_, index, conf := matcher.Match(lang)
		if conf != language.No {
			langSys = rec.Languages[tags[index]]
		}
	}
	if langSys == nil {
		return nil
	}

	include := make(map[LookupIndex]bool)
	numFeatures := FeatureIndex(len(info.FeatureList))
	if langSys.HasRequired && langSys.Required < numFeatures {
		for _, l := range info.FeatureList[langSys.Required].Lookups {
			include[l] = true
		}
	}
	for _, fi := range langSys.Features {
		if fi >= numFeatures {
			continue
		}
		feature := info.FeatureList[fi]
		if !includeFeature[feature.Tag.String()] {
			continue
		}
		for _, l := range feature.Lookups {
			include[l] = true
		}
	}

	numLookups := LookupIndex(len(info.LookupList))
	out := make([]LookupIndex, 0, len(include))
	for l := range include {
		if l < numLookups {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
