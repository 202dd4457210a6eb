package compile

import (
	"bytes"
	"testing"

	"wasmc/internal/ast"
	"wasmc/internal/token"
)

// Scenario 1: export function add(a: int, b: int): int { return a + b; }
func TestEndToEndAddFunction(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "add",
		Export:     true,
		Params:     []*ast.Param{param("a", "int"), param("b", "int")},
		ReturnType: typ("int"),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Expr: &ast.BinaryExpr{
				Op: token.Plus,
				X:  &ast.Ident{Name: "a"},
				Y:  &ast.Ident{Name: "b"},
			}},
		},
	}
	f := &ast.File{Decls: []ast.Decl{fn}}

	if err := c.ScanFile(f); err != nil {
		t.Fatalf("pass 1: %v", err)
	}
	if err := c.CompileFile(f); err != nil {
		t.Fatalf("pass 2: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	out, err := c.Module.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty module bytes")
	}
	wat := c.Module.WAT()
	if !contains(wat, `export "add"`) {
		t.Fatalf("expected add to be exported, got:\n%s", wat)
	}
}

// Scenario 5: export function mix(a: float, b: double): double { return a +
// b; } — widerNumeric picks double (float beats neither, double is the
// wider float), so a is widened f32->f64 before the add and the opcode
// family is f64, not f32.
func TestEndToEndMixedFloatWidening(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "mix",
		Export:     true,
		Params:     []*ast.Param{param("a", "float"), param("b", "double")},
		ReturnType: typ("double"),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Expr: &ast.BinaryExpr{
				Op: token.Plus,
				X:  &ast.Ident{Name: "a"},
				Y:  &ast.Ident{Name: "b"},
			}},
		},
	}
	f := &ast.File{Decls: []ast.Decl{fn}}

	if err := c.ScanFile(f); err != nil {
		t.Fatalf("pass 1: %v", err)
	}
	if err := c.CompileFile(f); err != nil {
		t.Fatalf("pass 2: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	out, err := c.Module.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	promoteIdx := bytes.IndexByte(out, 0xBB) // f64.promote_f32
	addIdx := bytes.IndexByte(out, 0xA0)     // f64.add
	if promoteIdx < 0 {
		t.Fatalf("expected an f64.promote_f32 (0xBB) opcode widening a to double, got:\n%x", out)
	}
	if addIdx < 0 {
		t.Fatalf("expected the add to use the f64.add (0xA0) opcode, not f32.add, got:\n%x", out)
	}
	if addIdx < promoteIdx {
		t.Fatalf("expected a's f32->f64 promotion to precede the add, got:\n%x", out)
	}
}

// Scenario 6: export function neg(x: long): long { return 0 - x; } — the
// bare literal 0 is re-lowered under contextual type long.
func TestEndToEndLiteralPicksContextualLongWidth(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "neg",
		Export:     true,
		Params:     []*ast.Param{param("x", "long")},
		ReturnType: typ("long"),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Expr: &ast.BinaryExpr{
				Op: token.Minus,
				X:  &ast.IntLiteral{Text: "0"},
				Y:  &ast.Ident{Name: "x"},
			}},
		},
	}
	f := &ast.File{Decls: []ast.Decl{fn}}

	if err := c.ScanFile(f); err != nil {
		t.Fatalf("pass 1: %v", err)
	}
	if err := c.CompileFile(f); err != nil {
		t.Fatalf("pass 2: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}
