package compile

import (
	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/symbols"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// lowerer holds the per-function state the expression lowerer (component F)
// needs: the compiler's shared registries/engines, plus the one local-slot
// map pass 2 builds fresh for the function currently being compiled.
type lowerer struct {
	c     *Compiler
	scope *symbols.LocalScope
}

// lowerExpr dispatches on e's concrete node kind, threading ctx downward as
// the contextual type (§4.F) and returning the already-encoded wasm
// expression paired with its inferred type. Unsupported kinds diagnose and
// fall back to a typed unreachable so the caller can keep composing.
func (lx *lowerer) lowerExpr(e ast.Expr, ctx *types.PrimitiveType) wasmgen.Expr {
	switch n := e.(type) {
	case *ast.ParenExpr:
		return lx.lowerParen(n, ctx)
	case *ast.CastExpr:
		return lx.lowerCast(n, ctx)
	case *ast.BinaryExpr:
		return lx.lowerBinary(n, ctx)
	case *ast.IntLiteral:
		return lx.lowerIntLiteral(n, ctx)
	case *ast.FloatLiteral:
		return lx.lowerFloatLiteral(n, ctx)
	case *ast.BoolLiteral:
		return lx.lowerBoolLiteral(n, ctx)
	case *ast.Ident:
		return lx.lowerIdent(n, ctx)
	case *ast.PropertyExpr:
		return lx.lowerProperty(n, ctx)
	default:
		msg := "unsupported expression kind"
		diag.ReportError(lx.c.Rep, diag.BodyUnsupportedExpr, e.Pos(), msg).Emit()
		return wasmgen.Unreachable(ctx)
	}
}

// familyOf maps a result type to the wasm opcode family that represents it.
func familyOf(t *types.PrimitiveType) wasmgen.BinOpFamily {
	switch {
	case t.Kind == types.Float:
		return wasmgen.FamilyF32
	case t.Kind == types.Double:
		return wasmgen.FamilyF64
	case t.IsLong():
		return wasmgen.FamilyI64
	default:
		return wasmgen.FamilyI32
	}
}

// widerNumeric implements §4.F's binary-operator result-type rule: float
// beats int, wider float beats narrower float, 64-bit beats 32-bit,
// otherwise the wider of the two. Ties keep the left operand's type; equal
// sizes occur for signed/unsigned pairs, for bool against int/uint, and for
// uintptr against the int or long kinds of its width.
func widerNumeric(x, y *types.PrimitiveType) *types.PrimitiveType {
	switch {
	case x.IsFloat() && y.IsFloat():
		if x.Size >= y.Size {
			return x
		}
		return y
	case x.IsFloat():
		return x
	case y.IsFloat():
		return y
	case x.IsLong() && !y.IsLong():
		return x
	case y.IsLong() && !x.IsLong():
		return y
	case x.Size >= y.Size:
		return x
	default:
		return y
	}
}

