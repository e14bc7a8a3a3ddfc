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

// Package anchor holds the attachment-point coordinate used by
// mark-to-base, mark-to-ligature, and mark-to-mark GPOS subtables.
package anchor

import "seehuhn.de/go/postscript/funit"

// Table is a single anchor point, in font design units relative to the
// glyph's origin.
type Table struct {
	X, Y funit.Int16
}
