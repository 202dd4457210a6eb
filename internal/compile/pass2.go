package compile

import (
	"fmt"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/symbols"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// CompileFile runs pass 2 (the body compiler, §4.E) over one file's
// top-level declarations. Pass 2 must run after every file has completed
// pass 1 (§2: "forward references resolve"), so a function body may call
// or reference any symbol registered by any file's scan, not just its own.
func (c *Compiler) CompileFile(f *ast.File) error {
	for _, d := range f.Decls {
		if err := c.compileTopLevel(d); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileTopLevel(d ast.Decl) error {
	switch n := d.(type) {
	case *ast.FuncDecl:
		return c.compileFunc(n, n.Name, false)
	case *ast.ClassDecl:
		for _, m := range n.Methods {
			mangled := n.Name + "$" + m.Name
			if err := c.compileFunc(m, mangled, !m.Static); err != nil {
				return err
			}
		}
		return nil
	case *ast.EnumDecl, *ast.VarDecl:
		// Enum constants were fully materialized in pass 1; variable
		// statements are the §9(b) open question and stay unimplemented.
		return nil
	default:
		// scanTopLevel already rejected any other kind during pass 1; a
		// second, different kind reaching here would mean the two passes
		// disagree about what a File's Decls can contain.
		return fmt.Errorf("compile: unexpected declaration kind in pass 2")
	}
}

// compileFunc lowers one function's body, if it has one. An import
// (n.Declare) was fully handled by pass 1 and produces no body (§2).
func (c *Compiler) compileFunc(n *ast.FuncDecl, mangled string, hasThis bool) error {
	if n.Declare {
		return nil
	}

	desc, ok := c.Table.LookupFunction(mangled)
	if !ok {
		return fmt.Errorf("compile: %q was not registered by pass 1", mangled)
	}

	scope := symbols.NewLocalScope()
	for i, pt := range desc.ParamTypes {
		scope.Declare(desc.ParamNames[i], pt)
	}
	lx := &lowerer{c: c, scope: scope}

	body, returned := lx.compileStatements(n.Body, desc.ReturnType)
	if !returned {
		if desc.ReturnType.Kind == types.Void {
			body = wasmgen.Empty(desc.ReturnType)
		} else {
			msg := fmt.Sprintf("function %q falls off the end without a return value", mangled)
			diag.ReportError(c.Rep, diag.BodyReturnArityMismatch, n.Span, msg).Emit()
			body = wasmgen.Unreachable(desc.ReturnType)
		}
	}

	sig, ok := c.sigs[mangled]
	if !ok {
		return fmt.Errorf("compile: %q has no registered signature", mangled)
	}
	h := c.Module.AddFunction(mangled, sig, nil, body)
	c.handles[mangled] = h

	if desc.IsExport() {
		c.Module.AddExport(mangled, mangled)
	}
	return nil
}

// compileStatements walks one function body's top-level statements (§4.E
// "Currently recognized statements"). It returns the lowered value of the
// return statement it found, if any, and whether one was found at all —
// every other statement kind is diagnosed and skipped so the remainder of
// the body still compiles.
func (lx *lowerer) compileStatements(stmts []ast.Stmt, retType *types.PrimitiveType) (wasmgen.Expr, bool) {
	var result wasmgen.Expr
	returned := false
	for _, s := range stmts {
		ret, ok := s.(*ast.ReturnStmt)
		if !ok {
			msg := "unsupported statement kind; only 'return' is compiled"
			diag.ReportError(lx.c.Rep, diag.BodyUnsupportedStmt, s.Pos(), msg).Emit()
			continue
		}
		result = lx.compileReturn(ret, retType)
		returned = true
	}
	return result, returned
}

// compileReturn implements §4.E's return rule: a void function's return
// must carry no expression; any other return type requires exactly one,
// lowered under a contextual type equal to the return type and coerced
// with explicit = false.
func (lx *lowerer) compileReturn(s *ast.ReturnStmt, retType *types.PrimitiveType) wasmgen.Expr {
	if retType.Kind == types.Void {
		if s.Expr != nil {
			msg := "a void function must 'return;' with no value"
			diag.ReportError(lx.c.Rep, diag.BodyReturnArityMismatch, s.Span, msg).Emit()
		}
		return wasmgen.Empty(retType)
	}
	if s.Expr == nil {
		msg := fmt.Sprintf("missing return value; function returns %s", retType)
		diag.ReportError(lx.c.Rep, diag.BodyReturnArityMismatch, s.Span, msg).Emit()
		return wasmgen.Unreachable(retType)
	}
	val := lx.lowerExpr(s.Expr, retType)
	return lx.c.Conv.Convert(s.Span, val, val.Type, retType, false)
}
