package compile

import (
	"fmt"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/symbols"
	"wasmc/internal/types"
)

// ScanFile runs pass 1 (the symbol initializer, §4.D) over one file's
// top-level declarations: it resolves every function signature, registers
// enum constants, and mangles class method names. It never looks inside a
// function body — pass 2 owns that.
func (c *Compiler) ScanFile(f *ast.File) error {
	for _, d := range f.Decls {
		if err := c.scanTopLevel(d); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) scanTopLevel(d ast.Decl) error {
	switch n := d.(type) {
	case *ast.FuncDecl:
		return c.scanFunc(n, "", false, false)
	case *ast.ClassDecl:
		return c.scanClass(n)
	case *ast.EnumDecl:
		return c.scanEnum(n)
	case *ast.VarDecl:
		// §9 open question (b): variable statements stay unimplemented; no
		// global is registered for this node.
		return nil
	default:
		msg := "unsupported top-level declaration kind"
		diag.ReportError(c.Rep, diag.SymUnsupportedTopLevel, d.Pos(), msg).Emit()
		return fmt.Errorf("%s", msg)
	}
}

// scanClass walks one class's method members. Only FuncDecl members reach
// here — the parser already rejects any other member kind as a syntax
// error — but it still enforces §4.D's modifier rule: methods must not
// carry export or import.
func (c *Compiler) scanClass(n *ast.ClassDecl) error {
	for _, m := range n.Methods {
		if m.Export || m.Declare {
			msg := "'export'/'declare' are not valid on a class method"
			diag.ReportError(c.Rep, diag.SymModifierNotAllowed, m.Span, msg).Emit()
			return fmt.Errorf("%s", msg)
		}
		hasThis := !m.Static
		if err := c.scanFunc(m, n.Name, true, hasThis); err != nil {
			return err
		}
	}
	return nil
}

// scanFunc builds one FunctionDescriptor, resolves its signature, registers
// the wasm function type, and records it in the symbol table. isMethod
// selects `Class$method` mangling; hasThis prepends a synthetic
// pointer-typed receiver parameter.
func (c *Compiler) scanFunc(n *ast.FuncDecl, class string, isMethod, hasThis bool) error {
	mangled := n.Name
	if isMethod {
		mangled = class + "$" + n.Name
	}

	paramTypes := make([]*types.PrimitiveType, 0, len(n.Params)+1)
	paramNames := make([]string, 0, len(n.Params)+1)
	if hasThis {
		paramTypes = append(paramTypes, c.Reg.Pointer(nil))
		paramNames = append(paramNames, "this")
	}
	for _, p := range n.Params {
		pt, err := c.Resolver.Type(p.Type, false)
		if err != nil {
			return err
		}
		paramTypes = append(paramTypes, pt)
		paramNames = append(paramNames, p.Name)
	}

	retType, err := c.Resolver.Type(n.ReturnType, true)
	if err != nil {
		return err
	}

	key := symbols.MakeSignatureKey(paramTypes, retType)
	if !c.Table.FirstSight(key) {
		msg := fmt.Sprintf("signature %q already registered for another function", string(key))
		diag.ReportInfo(c.Rep, diag.SymDuplicateSignature, n.Span, msg).Emit()
	}

	var resultSlice []*types.PrimitiveType
	if retType.Kind != types.Void {
		resultSlice = []*types.PrimitiveType{retType}
	}
	sig := c.Module.AddFunctionType(string(key), paramTypes, resultSlice)

	var flags symbols.Flag
	if n.Export {
		flags |= symbols.FlagExport
	}
	if n.Declare {
		flags |= symbols.FlagImport
	}

	if _, exists := c.Table.LookupFunction(mangled); exists {
		msg := fmt.Sprintf("function %q redeclared; the later declaration overwrites the earlier one", mangled)
		diag.ReportWarning(c.Rep, diag.SymDuplicateSignature, n.Span, msg).Emit()
	}

	desc := &symbols.FunctionDescriptor{
		Mangled:    mangled,
		ParamTypes: paramTypes,
		ParamNames: paramNames,
		ReturnType: retType,
		Flags:      flags,
		Key:        key,
		HasThis:    hasThis,
	}
	c.Table.AddFunction(desc)
	c.sigs[mangled] = sig

	if n.Declare {
		internalModule, field := splitImportName(mangled)
		h := c.Module.AddImport(mangled, internalModule, field, sig)
		c.handles[mangled] = h
	}
	return nil
}

// scanEnum evaluates and registers each member of an enum as an int-typed
// constant keyed "Enum$Member" (§4.D).
func (c *Compiler) scanEnum(n *ast.EnumDecl) error {
	intType := c.Reg.Get(types.Int)
	for _, m := range n.Members {
		v, err := ConstEval(m.Value)
		if err != nil {
			msg := fmt.Sprintf("could not evaluate enum member %q: %s", m.Name, err)
			diag.ReportError(c.Rep, diag.SymUnsupportedMember, m.Span, msg).Emit()
			return fmt.Errorf("%s", msg)
		}
		c.Table.AddConstant(n.Name, m.Name, symbols.Constant{Type: intType, Value: v})
	}
	return nil
}

// splitImportName implements §6's import-naming rule: the external module
// is the text before the first '$', defaulting to "env" when absent.
func splitImportName(mangled string) (module, field string) {
	for i := 0; i < len(mangled); i++ {
		if mangled[i] == '$' {
			return mangled[:i], mangled[i+1:]
		}
	}
	return "env", mangled
}
