package compile

import (
	"testing"

	"wasmc/internal/ast"
)

// declare function math$sqrt(x: double): void; emits an import, no defined
// function, and the '$' splits the name into module "math" and field "sqrt".
func TestEndToEndImportFunction(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "math$sqrt",
		Declare:    true,
		Params:     []*ast.Param{param("x", "double")},
		ReturnType: typ("void"),
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

	wat := c.Module.WAT()
	if !contains(wat, `"math" "sqrt"`) {
		t.Fatalf("expected import split on '$' into module/field, got:\n%s", wat)
	}
}

// A function literally named "start" is installed as the module's start
// function in addition to any export role.
func TestStartFunctionIsInstalled(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "start",
		ReturnType: typ("void"),
		Body:       []ast.Stmt{&ast.ReturnStmt{}},
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
	c.Finalize()

	wat := c.Module.WAT()
	if !contains(wat, "(start $start)") {
		t.Fatalf("expected start function to be installed, got:\n%s", wat)
	}
}

// A missing return in a non-void function is diagnosed, not panicked.
func TestMissingReturnDiagnoses(t *testing.T) {
	c, bag := newCompiler(t)
	fn := &ast.FuncDecl{
		Name:       "oops",
		ReturnType: typ("int"),
		Body:       nil,
	}
	f := &ast.File{Decls: []ast.Decl{fn}}

	if err := c.ScanFile(f); err != nil {
		t.Fatalf("pass 1: %v", err)
	}
	if err := c.CompileFile(f); err != nil {
		t.Fatalf("pass 2: %v", err)
	}
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the missing return value")
	}
}
