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

// Package lexer scans FEA source text into a flat stream of typed tokens.
// The scanner is context-free beyond a single byte of lookahead and one
// bit of state (whether the previous token was a backslash); it does not
// distinguish a keyword from a glyph name that happens to read the same —
// that distinction is made here, at the very end of ident scanning, by a
// keyword-table lookup.
package lexer

import "fmt"

// Kind identifies the lexical class of a token. Kinds carry no values;
// callers recover token text by slicing the source with the token's
// length and a running position.
type Kind uint8

const (
	EOF Kind = iota
	Whitespace
	Comment
	String
	StringUnterminated
	NumberDec
	NumberHex
	NumberHexEmpty
	NumberFloat
	Semi
	Comma
	Hyphen
	Eq
	LBrace
	RBrace
	LSquare
	RSquare
	LParen
	RParen
	LAngle
	RAngle
	SingleQuote
	Backslash
	NamedGlyphClass
	Ident

	// keywords below; FromKeyword returns one of these, or Ident if the text
	// does not match a reserved word.
	SubKw
	PosKw
	LookupKw
	FeatureKw
	ScriptKw
	LanguageKw
	LanguagesystemKw
	AnchorKw
	MarkClassKw
	ValueRecordDefKw
	ByKw
	FromKw
	IgnoreKw
	EnumKw
	ExcludeDfltKw
	IncludeDfltKw
	RequiredKw
	UseExtensionKw
	ReversesubKw
	ContourpointKw
	NullKw
)

var kindNames = map[Kind]string{
	EOF:                 "EOF",
	Whitespace:          "WS",
	Comment:             "COMMENT",
	String:              "STR",
	StringUnterminated:  "STR UNTERMINATED",
	NumberDec:           "DEC",
	NumberHex:           "HEX",
	NumberHexEmpty:      "HEX EMPTY",
	NumberFloat:         "FLOAT",
	Semi:                ";",
	Comma:               ",",
	Hyphen:              "-",
	Eq:                  "=",
	LBrace:              "{",
	RBrace:              "}",
	LSquare:             "[",
	RSquare:             "]",
	LParen:              "(",
	RParen:              ")",
	LAngle:              "<",
	RAngle:              ">",
	SingleQuote:         "'",
	Backslash:           "\\",
	NamedGlyphClass:     "@GlyphClass",
	Ident:               "ID",
	SubKw:               "SubKw",
	PosKw:               "PosKw",
	LookupKw:            "LookupKw",
	FeatureKw:           "FeatureKw",
	ScriptKw:            "ScriptKw",
	LanguageKw:          "LanguageKw",
	LanguagesystemKw:    "LanguagesystemKw",
	AnchorKw:            "AnchorKw",
	MarkClassKw:         "MarkClassKw",
	ValueRecordDefKw:    "ValueRecordDefKw",
	ByKw:                "ByKw",
	FromKw:              "FromKw",
	IgnoreKw:            "IgnoreKw",
	EnumKw:              "EnumKw",
	ExcludeDfltKw:       "ExcludeDfltKw",
	IncludeDfltKw:       "IncludeDfltKw",
	RequiredKw:          "RequiredKw",
	UseExtensionKw:      "UseExtensionKw",
	ReversesubKw:        "ReversesubKw",
	ContourpointKw:      "ContourpointKw",
	NullKw:              "NullKw",
}

// String implements fmt.Stringer, mainly for test failure output.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HasContents reports whether a token of this kind carries meaningful
// source text beyond its kind. The scanner itself does not call it.
func (k Kind) HasContents() bool {
	switch k {
	case Whitespace, Comment, String, StringUnterminated, NumberDec,
		NumberHex, NumberHexEmpty, NumberFloat, NamedGlyphClass, Ident:
		return true
	default:
		return false
	}
}

var keywords = map[string]Kind{
	"sub":             SubKw,
	"substitute":      SubKw,
	"pos":             PosKw,
	"position":        PosKw,
	"lookup":          LookupKw,
	"feature":         FeatureKw,
	"script":          ScriptKw,
	"language":        LanguageKw,
	"languagesystem":  LanguagesystemKw,
	"anchor":          AnchorKw,
	"markClass":       MarkClassKw,
	"valueRecordDef":  ValueRecordDefKw,
	"by":              ByKw,
	"from":            FromKw,
	"ignore":          IgnoreKw,
	"enumerate":       EnumKw,
	"enum":            EnumKw,
	"excludeDFLT":     ExcludeDfltKw,
	"includeDFLT":     IncludeDfltKw,
	"required":        RequiredKw,
	"useExtension":    UseExtensionKw,
	"reversesub":      ReversesubKw,
	"rsub":            ReversesubKw,
	"contourpoint":    ContourpointKw,
	"NULL":            NullKw,
}

// FromKeyword looks up the reserved-word kind for raw identifier text,
// returning (Ident, false) if text is not a keyword.
func FromKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	if !ok {
		return Ident, false
	}
	return k, true
}
