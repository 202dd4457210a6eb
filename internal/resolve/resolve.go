package resolve

import (
	"fmt"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/types"
)

// Resolver maps ast.TypeExpr nodes to canonical *types.PrimitiveType
// descriptors against one Registry, reporting unsupported-type diagnostics
// through rep.
//
// §7 classifies an unknown type name or an ill-formed Ptr<T> as fatal:
// "structural assumptions downstream code cannot honor". Type therefore
// both reports a positioned diagnostic (so the driver's diagnostic
// rendering path has something to show) and returns a non-nil error, which
// the caller must propagate to abort the compilation rather than recover
// from.
type Resolver struct {
	reg *types.Registry
	rep diag.Reporter
}

// New constructs a Resolver bound to reg and rep.
func New(reg *types.Registry, rep diag.Reporter) *Resolver {
	return &Resolver{reg: reg, rep: rep}
}

// Type resolves t. allowVoid should be true only for function return types
// (§4.B: "accepting void only when the caller opts in").
func (r *Resolver) Type(t *ast.TypeExpr, allowVoid bool) (*types.PrimitiveType, error) {
	if t == nil {
		return nil, fmt.Errorf("nil type expression")
	}
	if t.Name == "Ptr" {
		return r.resolvePointer(t)
	}
	if len(t.Args) > 0 {
		msg := fmt.Sprintf("unsupported generic type %q: only Ptr<T> is recognized", t.Name)
		diag.ReportError(r.rep, diag.TypeUnsupportedGeneric, t.Span, msg).Emit()
		return nil, fmt.Errorf("%s", msg)
	}
	prim, ok := r.reg.Lookup(t.Name)
	if !ok {
		msg := fmt.Sprintf("unknown type %q", t.Name)
		diag.ReportError(r.rep, diag.TypeUnknownName, t.Span, msg).Emit()
		return nil, fmt.Errorf("%s", msg)
	}
	if prim.Kind == types.Void && !allowVoid {
		msg := "'void' is only legal as a function return type"
		diag.ReportError(r.rep, diag.TypeUnknownName, t.Span, msg).Emit()
		return nil, fmt.Errorf("%s", msg)
	}
	return prim, nil
}

// resolvePointer handles Ptr<T>: exactly one argument, itself a resolvable
// type reference.
func (r *Resolver) resolvePointer(t *ast.TypeExpr) (*types.PrimitiveType, error) {
	if len(t.Args) != 1 {
		msg := "Ptr<T> requires exactly one type argument"
		diag.ReportError(r.rep, diag.TypeBadPointer, t.Span, msg).Emit()
		return nil, fmt.Errorf("%s", msg)
	}
	elem, err := r.Type(t.Args[0], false)
	if err != nil {
		return nil, err
	}
	return r.reg.Pointer(elem), nil
}
