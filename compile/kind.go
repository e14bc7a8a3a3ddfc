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

// Package compile is the lookup compilation engine: given a stream of
// semantic rule-insertion calls from an external driver, it groups rules
// into typed OpenType lookups, synthesizes the anonymous lookups that
// chaining-contextual rules require, performs the aalt prepend-and-
// renumber pass, infers GDEF glyph classes from GPOS content, and
// assembles the Script/Language/Feature tree that ultimately selects
// the built lookups.
package compile

import "github.com/typeforge/feacompile/layout"

// Kind identifies the concrete shape of a lookup being built. The set is
// closed and fixed by the OpenType specification; every SomeLookup value
// carries exactly one Kind and dispatches on it rather than through an
// open-ended interface.
type Kind uint8

const (
	GsubType1 Kind = iota
	GsubType2
	GsubType3
	GsubType4
	GsubType8
	GposType1
	GposType2
	GposType3
	GposType4
	GposType5
	GposType6

	// GsubContextual and GposContextual are retained for parity with the
	// OpenType-defined non-chaining contextual formats (GSUB/GPOS type
	// 5/7), but a lookup of either kind is built in the chaining form
	// (ContextualLookupBuilder.Build), matching the dominant existing
	// compiler.
	GsubContextual
	GposContextual

	GsubChainedContextual
	GposChainedContextual
)

func (k Kind) String() string {
	switch k {
	case GsubType1:
		return "GsubType1"
	case GsubType2:
		return "GsubType2"
	case GsubType3:
		return "GsubType3"
	case GsubType4:
		return "GsubType4"
	case GsubType8:
		return "GsubType8"
	case GposType1:
		return "GposType1"
	case GposType2:
		return "GposType2"
	case GposType3:
		return "GposType3"
	case GposType4:
		return "GposType4"
	case GposType5:
		return "GposType5"
	case GposType6:
		return "GposType6"
	case GsubContextual:
		return "GsubContextual"
	case GposContextual:
		return "GposContextual"
	case GsubChainedContextual:
		return "GsubChainedContextual"
	case GposChainedContextual:
		return "GposChainedContextual"
	default:
		return "Kind(?)"
	}
}

// IsGpos reports whether k names a GPOS lookup kind.
func (k Kind) IsGpos() bool {
	switch k {
	case GposType1, GposType2, GposType3, GposType4, GposType5, GposType6,
		GposContextual, GposChainedContextual:
		return true
	default:
		return false
	}
}

// IsContextual reports whether k is one of the four contextual-wrapper
// shapes (as opposed to one of the plain, non-contextual lookup kinds).
func (k Kind) IsContextual() bool {
	switch k {
	case GsubContextual, GposContextual, GsubChainedContextual, GposChainedContextual:
		return true
	default:
		return false
	}
}

// OTLookupType returns the numeric OpenType lookup type that k is built
// into. GsubContextual/GposContextual report the chaining type (6/8),
// since ContextualLookupBuilder.Build always emits the chaining form —
// see Kind's doc comment.
func (k Kind) OTLookupType() uint16 {
	switch k {
	case GsubType1:
		return 1
	case GsubType2:
		return 2
	case GsubType3:
		return 3
	case GsubType4:
		return 4
	case GsubContextual, GsubChainedContextual:
		return 6
	case GsubType8:
		return 8
	case GposType1:
		return 1
	case GposType2:
		return 2
	case GposType3:
		return 3
	case GposType4:
		return 4
	case GposType5:
		return 5
	case GposType6:
		return 6
	case GposContextual, GposChainedContextual:
		return 8
	default:
		panic("compile: unreachable lookup kind")
	}
}

// LookupId identifies a finished lookup. It is a tagged variant over
// three cases: a GPOS index, a GSUB index, or Empty — the case used when
// a named block contained no rules. Empty is accepted by the driver at
// parse time but contributes nothing to the compiled output.
type LookupId struct {
	isGpos bool
	isSet  bool
	index  layout.LookupIndex
}

// EmptyLookupId is the shared Empty value: every empty LookupId compares
// equal, matching invariant I4 (the name-to-id mapping is injective
// except for the Empty case, which may be shared).
var EmptyLookupId = LookupId{}

// GposLookupId wraps a GPOS lookup index.
func GposLookupId(idx layout.LookupIndex) LookupId {
	return LookupId{isGpos: true, isSet: true, index: idx}
}

// GsubLookupId wraps a GSUB lookup index.
func GsubLookupId(idx layout.LookupIndex) LookupId {
	return LookupId{isGpos: false, isSet: true, index: idx}
}

// IsEmpty reports whether id is the Empty case.
func (id LookupId) IsEmpty() bool { return !id.isSet }

// IsGpos reports whether id names a GPOS lookup.
func (id LookupId) IsGpos() bool { return id.isSet && id.isGpos }

// IsGsub reports whether id names a GSUB lookup.
func (id LookupId) IsGsub() bool { return id.isSet && !id.isGpos }

// ToGposOrDie returns the wrapped GPOS index. It panics if id is Empty or
// names a GSUB lookup: the precondition that id has already been
// filtered for Empty is the caller's responsibility, and is documented
// here rather than re-derived at every call site.
func (id LookupId) ToGposOrDie() layout.LookupIndex {
	if !id.isSet || !id.isGpos {
		panic("compile: LookupId is not a GPOS id")
	}
	return id.index
}

// ToGsubOrDie returns the wrapped GSUB index, with the same precondition
// as ToGposOrDie.
func (id LookupId) ToGsubOrDie() layout.LookupIndex {
	if !id.isSet || id.isGpos {
		panic("compile: LookupId is not a GSUB id")
	}
	return id.index
}

// AdjustIfGsub returns id with its index shifted by delta if id is a
// GSUB id; otherwise it returns id unchanged. This is the single
// operation the aalt prepend-and-renumber pass needs to rewrite every
// nested lookup reference by a constant (invariant I1).
func (id LookupId) AdjustIfGsub(delta int) LookupId {
	if !id.isSet || id.isGpos {
		return id
	}
	n := int(id.index) + delta
	if n > 0xFFFF {
		programmerError("nested lookup id %d overflows 16 bits", n)
	}
	return GsubLookupId(layout.LookupIndex(n))
}
