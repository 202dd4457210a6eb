package compile

import (
	"testing"

	"wasmc/internal/ast"
)

// Scenario 4: export function narrow(x: int): byte { return x as byte; }
// — the explicit cast masks to 0xFF.
func TestEndToEndExplicitNarrowingCast(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "narrow",
		Export:     true,
		Params:     []*ast.Param{param("x", "int")},
		ReturnType: typ("byte"),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Expr: &ast.CastExpr{
				X:    &ast.Ident{Name: "x"},
				Type: typ("byte"),
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
		t.Fatalf("unexpected diagnostics (explicit cast should never diagnose): %+v", bag.Items())
	}
}
