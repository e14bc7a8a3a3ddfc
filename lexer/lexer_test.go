package lexer

import "testing"

func TestEmptyHex(t *testing.T) {
	// S1: "0x 0x11 0xzz" -> HEX EMPTY, WS, HEX, WS, HEX EMPTY, ID
	// with lengths 2,1,4,1,2,2.
	toks := Tokenize("0x 0x11 0xzz")
	wantKinds := []Kind{NumberHexEmpty, Whitespace, NumberHex, Whitespace, NumberHexEmpty, Ident}
	wantLens := []int{2, 1, 4, 1, 2, 2}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: kind = %v, want %v", i, tok.Kind, wantKinds[i])
		}
		if tok.Len != wantLens[i] {
			t.Errorf("token %d: len = %d, want %d", i, tok.Len, wantLens[i])
		}
	}
}

func TestKeywordVersusEscape(t *testing.T) {
	// S2: "sub \sub \rsub" -> SubKw, WS, Backslash, Ident(sub), WS, Backslash, Ident(rsub)
	toks := Tokenize(`sub \sub \rsub`)
	wantKinds := []Kind{SubKw, Whitespace, Backslash, Ident, Whitespace, Backslash, Ident}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: kind = %v, want %v", i, tok.Kind, wantKinds[i])
		}
	}
}

func TestLanguagesystem(t *testing.T) {
	fea := "languagesystem dflt cool;"
	toks := Tokenize(fea)
	if toks[0].Kind != LanguagesystemKw || toks[0].Len != len("languagesystem") {
		t.Errorf("token 0 = %+v, want LanguagesystemKw/14", toks[0])
	}
}

func TestCIDVersusIdent(t *testing.T) {
	fea := `@hi =[\1-\2 a - b];`
	toks := Tokenize(fea)
	wantKinds := []Kind{
		NamedGlyphClass, Whitespace, Eq, LSquare,
		Backslash, NumberDec, Hyphen, Backslash, NumberDec,
		Whitespace, Ident, Whitespace, Hyphen, Whitespace, Ident,
		RSquare, Semi,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: kind = %v, want %v", i, tok.Kind, wantKinds[i])
		}
	}
}

// P1: concatenating the source bytes covered by every token reproduces
// the source exactly.
func TestTokenRoundTrip(t *testing.T) {
	srcs := []string{
		"0x 0x11 0xzz",
		`sub \sub \rsub`,
		"languagesystem dflt cool;",
		`@hi =[\1-\2 a - b];`,
		"# a comment\nfeature liga { sub a b' by c; } liga;",
		`"unterminated`,
	}
	for _, src := range srcs {
		l := New(src)
		pos := 0
		for {
			tok := l.NextToken()
			if tok.Kind == EOF {
				break
			}
			pos += tok.Len
		}
		if pos != len(src) {
			t.Errorf("round trip for %q: covered %d bytes, want %d", src, pos, len(src))
		}
	}
}

func FuzzTokenizeCoversInput(f *testing.F) {
	f.Add("sub a by b;")
	f.Add("0x 0xZZ")
	f.Fuzz(func(t *testing.T, src string) {
		l := New(src)
		pos := 0
		for {
			tok := l.NextToken()
			if tok.Kind == EOF {
				break
			}
			if tok.Len <= 0 {
				t.Fatalf("non-advancing token %v at pos %d", tok, pos)
			}
			pos += tok.Len
		}
		if pos != len(src) {
			t.Fatalf("covered %d of %d bytes", pos, len(src))
		}
	})
}
