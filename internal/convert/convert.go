package convert

import (
	"fmt"

	"wasmc/internal/diag"
	"wasmc/internal/source"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// Engine applies the conversion rules of §4.C against one diag.Reporter.
type Engine struct {
	rep diag.Reporter
}

// New constructs an Engine bound to rep.
func New(rep diag.Reporter) *Engine {
	return &Engine{rep: rep}
}

// Convert returns an expression of type `to`, converting x (of type
// `from`) according to §4.C's priority-ordered rules. explicit marks the
// conversion as the programmer having written an `as` cast; when false and
// a rule below this point of the priority list classifies the conversion
// as implicit-illegal, Convert reports exactly one diagnostic for the
// whole chain (§7, §9) and proceeds as though it had been explicit so the
// caller still gets a well-typed module.
func (e *Engine) Convert(at source.Span, x wasmgen.Expr, from, to *types.PrimitiveType, explicit bool) wasmgen.Expr {
	reported := false
	return e.convert(at, x, from, to, explicit, &reported)
}

func (e *Engine) convert(at source.Span, x wasmgen.Expr, from, to *types.PrimitiveType, explicit bool, reported *bool) wasmgen.Expr {
	// Rule 1: identity.
	if from.Kind == to.Kind {
		return x
	}

	switch {
	case from.IsFloat():
		return e.convertFromFloat(at, x, from, to, explicit, reported)
	case to.IsFloat():
		return e.convertIntToFloat(at, x, from, to, explicit, reported)
	case from.IsIntFamily() && to.IsIntFamily():
		return e.convertIntToInt(at, x, from, to, explicit, reported)
	default:
		e.illegal(at, from, to, explicit, reported)
		return x
	}
}

// illegal reports the implicit-conversion diagnostic exactly once per
// chain, then flips *reported so nested recursive calls skip it (§9's
// "suppression latch").
func (e *Engine) illegal(at source.Span, from, to *types.PrimitiveType, explicit bool, reported *bool) {
	if explicit || *reported {
		return
	}
	*reported = true
	msg := fmt.Sprintf("illegal implicit conversion from %s to %s; an explicit 'as' cast is required", from, to)
	diag.ReportError(e.rep, diag.ConvIllegalImplicit, at, msg).Emit()
}

// --- Rule 2: float -> anything ---

func (e *Engine) convertFromFloat(at source.Span, x wasmgen.Expr, from, to *types.PrimitiveType, explicit bool, reported *bool) wasmgen.Expr {
	if to.IsFloat() {
		widening := from.Kind == types.Float && to.Kind == types.Double
		if !widening {
			e.illegal(at, from, to, explicit, reported)
		}
		if to.Kind == types.Double {
			return wasmgen.PromoteF32ToF64(to, x)
		}
		return wasmgen.DemoteF64ToF32(to, x)
	}

	// Float -> integer is always implicit-illegal.
	e.illegal(at, from, to, explicit, reported)

	fromF64 := from.Kind == types.Double
	signed := to.IsSigned()
	if to.IsLong() {
		truncated := wasmgen.TruncFloatToI64(longLike(to), x, fromF64, signed)
		return e.convertIntToInt(at, truncated, longLike(to), to, true, reported)
	}
	truncated := wasmgen.TruncFloatToI32(intLike(to), x, fromF64, signed)
	return e.convertIntToInt(at, truncated, intLike(to), to, true, reported)
}

// --- Rule 3: int -> float ---

func (e *Engine) convertIntToFloat(at source.Span, x wasmgen.Expr, from, to *types.PrimitiveType, explicit bool, reported *bool) wasmgen.Expr {
	if !explicit && !intToFloatImplicitOK(from, to) {
		e.illegal(at, from, to, explicit, reported)
	}
	fromI64 := from.IsLong()
	signed := from.IsSigned()
	if to.Kind == types.Float {
		return wasmgen.ConvertIntToF32(to, x, fromI64, signed)
	}
	return wasmgen.ConvertIntToF64(to, x, fromI64, signed)
}

// intToFloatImplicitOK implements §4.C rule 3's allow-list: widths <= 16
// bits convert implicitly to f32; widths <= 32 bits convert implicitly to
// f64. So int/uint/uintptr(4) -> f32 and every long/ulong conversion
// require an explicit cast.
func intToFloatImplicitOK(from, to *types.PrimitiveType) bool {
	if from.IsLong() {
		return false
	}
	if to.Kind == types.Float {
		return from.Size <= 2
	}
	// to.Kind == types.Double
	return from.Size <= 4
}

// --- Rule 4: int <-> long ---

func (e *Engine) convertIntToInt(at source.Span, x wasmgen.Expr, from, to *types.PrimitiveType, explicit bool, reported *bool) wasmgen.Expr {
	switch {
	case from.IsInt() && to.IsLong():
		// Widening across the 32/64 boundary: always implicit-legal.
		widened := wasmgen.ExtendI32ToI64(to, x, to.IsSigned())
		return widened
	case from.IsLong() && to.IsInt():
		e.illegal(at, from, to, explicit, reported)
		wrapped := wasmgen.WrapI64ToI32(intLike(from), x)
		return e.narrowOrPass(at, wrapped, intLike(from), to, true, reported)
	default:
		// Rule 5: both sides already in the same (int or long) family.
		return e.narrowOrPass(at, x, from, to, explicit, reported)
	}
}

// narrowOrPass implements rule 5's width comparison within one integer
// family (both <=32-bit, or both 64-bit).
func (e *Engine) narrowOrPass(at source.Span, x wasmgen.Expr, from, to *types.PrimitiveType, explicit bool, reported *bool) wasmgen.Expr {
	if to.Size >= from.Size {
		return retagged(x, to)
	}
	e.illegal(at, from, to, explicit, reported)
	if to.Size >= 4 {
		// Narrowing within the long family below 64 bits never happens in
		// this lattice (no integer kind sits strictly between 4 and 8
		// bytes), so this path is only reached for the int family.
		return retagged(x, to)
	}
	if to.IsSigned() {
		return wasmgen.SignShrinkI32(to, x, to.Shift32())
	}
	return wasmgen.MaskI32(to, x, to.Mask32())
}

// retagged re-labels an already-correct-width value with to's type without
// emitting any instruction — the underlying i32/i64 bits are identical.
func retagged(x wasmgen.Expr, to *types.PrimitiveType) wasmgen.Expr {
	return wasmgen.Retag(x, to)
}

func intLike(t *types.PrimitiveType) *types.PrimitiveType {
	if t.Kind == types.UIntPtr {
		return t
	}
	return &types.PrimitiveType{Kind: types.Int, Size: 4, Signed: true, Sig: 'i'}
}

func longLike(t *types.PrimitiveType) *types.PrimitiveType {
	if t.Kind == types.UIntPtr {
		return t
	}
	return &types.PrimitiveType{Kind: types.Long, Size: 8, Signed: true, Sig: 'l'}
}
