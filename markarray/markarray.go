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

// Package markarray holds the per-mark-glyph record (mark class plus
// attachment anchor) used by every mark-attachment GPOS subtable format.
package markarray

import "github.com/typeforge/feacompile/anchor"

// Record pairs a mark glyph's class id with its attachment anchor, in
// the order the covering Coverage table lists mark glyphs.
type Record struct {
	Class uint16
	Table anchor.Table
}
