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

import "fmt"

// Diagnostic is a semantic-level compile diagnostic: ambiguous glyph
// ranges, unknown glyph names, unsupported lookup kinds, conflicting
// class memberships, or required-feature-index overflow. Diagnostics
// accumulate; they do not abort compilation.
type Diagnostic struct {
	Message string
}

func (d *Diagnostic) Error() string { return d.Message }

// ErrFeatureIndexOverflow is returned when assigning a feature would
// require more than 65,536 distinct features.
var ErrFeatureIndexOverflow = &Diagnostic{Message: "more than 65536 distinct features required"}

// ErrConflictingClass is returned by a ClassDef-based builder when two
// declared classes disagree about which class a glyph belongs to.
func ErrConflictingClass(g fmt.Stringer) *Diagnostic {
	return &Diagnostic{Message: fmt.Sprintf("glyph %s is assigned to two conflicting classes", g)}
}

// programmerError panics with a message identifying the violated
// precondition. These correspond to the error taxonomy's fatal,
// non-recoverable class (§7.4): a kind mismatch between a rule-insertion
// call and the current lookup, a subtable break requested with no
// current lookup, or a nested lookup-id overflowing 16 bits. They
// indicate a bug in the driver, not a user error, and are not meant to
// be recovered from mid-compilation.
func programmerError(format string, args ...any) {
	panic(fmt.Sprintf("compile: "+format, args...))
}
