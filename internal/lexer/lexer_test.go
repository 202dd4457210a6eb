package lexer_test

import (
	"testing"

	"wasmc/internal/diag"
	"wasmc/internal/lexer"
	"wasmc/internal/source"
	"wasmc/internal/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ws", []byte(src))
	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexSimpleFunction(t *testing.T) {
	toks, bag := scanAll(t, "export function add(a: int, b: int): int { return a + b; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	want := []token.Kind{
		token.KwExport, token.KwFunction, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.RParen,
		token.Colon, token.Ident, token.LBrace,
		token.KwReturn, token.Ident, token.Plus, token.Ident, token.Semicolon,
		token.RBrace, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexHexLiteral(t *testing.T) {
	toks, _ := scanAll(t, "0x80")
	if toks[0].Kind != token.IntLit || toks[0].Text != "0x80" {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestLexFloatLiteral(t *testing.T) {
	cases := []string{"1.0", "1.", ".5", "1e-3", "1.0e+10"}
	for _, c := range cases {
		toks, bag := scanAll(t, c)
		if bag.HasErrors() {
			t.Fatalf("%q: unexpected diagnostics: %+v", c, bag.Items())
		}
		if toks[0].Kind != token.FloatLit {
			t.Fatalf("%q: expected FloatLit, got %v", c, toks[0].Kind)
		}
	}
}

func TestLexGenericPointerType(t *testing.T) {
	toks, _ := scanAll(t, "Ptr<int>")
	want := []token.Kind{token.Ident, token.Lt, token.Ident, token.Gt, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexLineComment(t *testing.T) {
	toks, _ := scanAll(t, "// a comment\nreturn")
	if len(toks) != 2 || toks[0].Kind != token.KwReturn || toks[1].Kind != token.EOF {
		t.Fatalf("comment not skipped: %+v", toks)
	}
}

func TestLexUnknownChar(t *testing.T) {
	_, bag := scanAll(t, "#")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for an unknown character")
	}
}

func TestLexBadExponent(t *testing.T) {
	_, bag := scanAll(t, "1e")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for a malformed exponent")
	}
}
