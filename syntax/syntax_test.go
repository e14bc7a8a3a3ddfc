package syntax

import (
	"testing"

	"github.com/typeforge/feacompile/lexer"
)

type stubGlyphMap map[string]bool

func (m stubGlyphMap) Contains(name string) bool { return m[name] }

func TestValidateTokenSingleSplit(t *testing.T) {
	// S3: glyph map contains a, a-cy, z; "a-z" -> GlyphRange{a,-,z}, no diagnostic.
	glyphs := stubGlyphMap{"a": true, "a-cy": true, "z": true}
	kind, children, diag := ValidateToken("a-z", glyphs)
	if kind != NodeGlyphRange {
		t.Fatalf("kind = %v, want NodeGlyphRange", kind)
	}
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag.Message)
	}
	if len(children) != 3 || children[0].Token.Text != "a" || children[1].Token.Text != "-" || children[2].Token.Text != "z" {
		t.Fatalf("unexpected children: %+v", children)
	}
}

func TestValidateTokenAmbiguousSplit(t *testing.T) {
	glyphs := stubGlyphMap{"a": true, "a-cy": true, "z": true, "cy-z": true}
	kind, _, diag := ValidateToken("a-cy-z", glyphs)
	if kind != NodeGlyphName {
		t.Fatalf("kind = %v, want NodeGlyphName (ambiguous falls back to a bare name token)", kind)
	}
	if diag == nil {
		t.Fatalf("expected an ambiguity diagnostic")
	}
}

func TestValidateTokenUnknownName(t *testing.T) {
	glyphs := stubGlyphMap{"a": true}
	_, _, diag := ValidateToken("bogus-name", glyphs)
	if diag == nil {
		t.Fatalf("expected a diagnostic for an unknown, unsplittable name")
	}
}

// P1: concatenating token text reproduces the source.
func TestTreeTextRoundTrip(t *testing.T) {
	b := NewTreeBuilder()
	b.StartNode(NodeRoot)
	b.Token(lexer.FeatureKw, "feature")
	b.Token(lexer.Whitespace, " ")
	b.StartNode(NodeGlyphName)
	b.Token(lexer.Ident, "liga")
	b.FinishNode(false)
	b.Token(lexer.Semi, ";")
	root := b.Finish()

	if got, want := Text(root), "feature liga;"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestWalkResolvesAbsoluteOffsets(t *testing.T) {
	b := NewTreeBuilder()
	b.StartNode(NodeRoot)
	b.Token(lexer.SubKw, "sub")
	b.StartNode(NodeGlyphName)
	b.Token(lexer.Ident, "a")
	b.FinishNode(false)
	root := b.Finish()

	var offsets []int
	Walk(root, func(tok *Token, abs int) {
		offsets = append(offsets, abs)
	})
	want := []int{0, 3}
	for i, o := range want {
		if offsets[i] != o {
			t.Errorf("offset %d = %d, want %d", i, offsets[i], o)
		}
	}
}

func TestFinishNodePropagatesContainsError(t *testing.T) {
	b := NewTreeBuilder()
	b.StartNode(NodeRoot)
	b.StartNode(NodeGlyphName)
	b.Token(lexer.Ident, "bogus-name")
	n := b.FinishNode(true)
	if !n.ContainsError {
		t.Errorf("expected ContainsError to be set")
	}
	b.Finish()
}
