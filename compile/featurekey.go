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

import "github.com/typeforge/feacompile/tag"

// FeatureKey is the triple that selects one feature's lookup list: the
// feature tag, the script it is written under, and the language (which
// may be the special tag.DefaultLanguage, "dflt").
type FeatureKey struct {
	Feature  tag.Tag
	Script   tag.Tag
	Language tag.Tag
}

// Less gives FeatureKey a total order (feature, then script, then
// language), used when stably ordering the driver's feature map for
// deterministic output.
func (k FeatureKey) Less(other FeatureKey) bool {
	if k.Feature != other.Feature {
		return k.Feature.Less(other.Feature)
	}
	if k.Script != other.Script {
		return k.Script.Less(other.Script)
	}
	return k.Language.Less(other.Language)
}
