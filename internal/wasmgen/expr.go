package wasmgen

import "wasmc/internal/types"

// Expr is the opaque expression handle the façade returns: the already
// encoded wasm instruction bytes for one subtree, tagged with the
// primitive type of the value it leaves on the stack. §8 requires that
// "the inferred type attached to the node equals the type of the emitted
// wasm value" — Type is exactly that fact, carried alongside the bytes so
// a caller never has to re-derive it.
type Expr struct {
	Type *types.PrimitiveType
	code []byte
}

func leaf(t *types.PrimitiveType, b []byte) Expr { return Expr{Type: t, code: b} }

// Retag re-labels e with a different inferred type without emitting any
// instruction, for conversions where the underlying bits are already
// correct and only the compile-time type changes (e.g. a same-width
// integer widening within the i32 family).
func Retag(e Expr, t *types.PrimitiveType) Expr {
	e.Type = t
	return e
}

// Bytes returns the encoded instruction sequence.
func (e Expr) Bytes() []byte { return e.code }

// Empty returns a zero-instruction expression of type t: the body of a
// bare `return;` inside a void function, which simply falls through to
// the function's implicit `end`.
func Empty(t *types.PrimitiveType) Expr { return leaf(t, nil) }

// Unreachable builds the typed `unreachable` fill-in §7 uses for every
// recoverable error: the lowerer still attaches a type so a parent node can
// continue composing without a special case for "compilation failed here".
func Unreachable(t *types.PrimitiveType) Expr {
	return leaf(t, []byte{opUnreachable})
}

// ConstI32 builds `i32.const v`.
func ConstI32(t *types.PrimitiveType, v int32) Expr {
	w := newByteWriter()
	w.Byte(opI32Const)
	w.S32(v)
	return leaf(t, w.Bytes())
}

// ConstI64 builds `i64.const v`.
func ConstI64(t *types.PrimitiveType, v int64) Expr {
	w := newByteWriter()
	w.Byte(opI64Const)
	w.S64(v)
	return leaf(t, w.Bytes())
}

// ConstF32 builds `f32.const v`.
func ConstF32(t *types.PrimitiveType, v float32) Expr {
	w := newByteWriter()
	w.Byte(opF32Const)
	w.F32(v)
	return leaf(t, w.Bytes())
}

// ConstF64 builds `f64.const v`.
func ConstF64(t *types.PrimitiveType, v float64) Expr {
	w := newByteWriter()
	w.Byte(opF64Const)
	w.F64(v)
	return leaf(t, w.Bytes())
}

// GetLocal builds `local.get slot`.
func GetLocal(t *types.PrimitiveType, slot uint32) Expr {
	w := newByteWriter()
	w.Byte(opLocalGet)
	w.U32(slot)
	return leaf(t, w.Bytes())
}

// unop appends a single zero-operand-immediate opcode after x's bytes,
// re-tagging the result with resultType.
func unop(resultType *types.PrimitiveType, x Expr, op byte) Expr {
	w := newByteWriter()
	w.Append(x.code)
	w.Byte(op)
	return leaf(resultType, w.Bytes())
}

// binop appends opcode op after x's then y's bytes (wasm's stack order:
// operands are pushed left-to-right, the instruction then pops them in the
// same order), tagging the result with resultType.
func binop(resultType *types.PrimitiveType, x, y Expr, op byte) Expr {
	w := newByteWriter()
	w.Append(x.code)
	w.Append(y.code)
	w.Byte(op)
	return leaf(resultType, w.Bytes())
}

// BinOpFamily names the four wasm opcode families a binary operator token
// can select between (§4.F).
type BinOpFamily int

const (
	FamilyI32 BinOpFamily = iota
	FamilyI64
	FamilyF32
	FamilyF64
)

// addOp, subOp, mulOp and divOp map each family to the opcode byte for that
// operator (divOp covers only the float families). Integer division,
// remainder, the bitwise operators and the shifts pick their opcodes in the
// helper functions below, keyed on family and, where it matters, signedness.
var addOp = map[BinOpFamily]byte{FamilyI32: opI32Add, FamilyI64: opI64Add, FamilyF32: opF32Add, FamilyF64: opF64Add}
var subOp = map[BinOpFamily]byte{FamilyI32: opI32Sub, FamilyI64: opI64Sub, FamilyF32: opF32Sub, FamilyF64: opF64Sub}
var mulOp = map[BinOpFamily]byte{FamilyI32: opI32Mul, FamilyI64: opI64Mul, FamilyF32: opF32Mul, FamilyF64: opF64Mul}
var divOp = map[BinOpFamily]byte{FamilyF32: opF32Div, FamilyF64: opF64Div}

func Add(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr { return binop(rt, x, y, addOp[f]) }
func Sub(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr { return binop(rt, x, y, subOp[f]) }
func Mul(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr { return binop(rt, x, y, mulOp[f]) }

// Div selects the float opcode for FamilyF32/F64 and the signed/unsigned
// integer opcode otherwise.
func Div(rt *types.PrimitiveType, x, y Expr, f BinOpFamily, signed bool) Expr {
	if f == FamilyF32 || f == FamilyF64 {
		return binop(rt, x, y, divOp[f])
	}
	op := opI32DivU
	switch {
	case f == FamilyI32 && signed:
		op = opI32DivS
	case f == FamilyI64 && signed:
		op = opI64DivS
	case f == FamilyI64 && !signed:
		op = opI64DivU
	}
	return binop(rt, x, y, op)
}

// Rem selects i32/i64 rem_s/rem_u; floats have no remainder operator (the
// lowerer never calls Rem with a float family).
func Rem(rt *types.PrimitiveType, x, y Expr, f BinOpFamily, signed bool) Expr {
	op := opI32RemU
	switch {
	case f == FamilyI32 && signed:
		op = opI32RemS
	case f == FamilyI64 && signed:
		op = opI64RemS
	case f == FamilyI64 && !signed:
		op = opI64RemU
	}
	return binop(rt, x, y, op)
}

func And(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr {
	op := opI32And
	if f == FamilyI64 {
		op = opI64And
	}
	return binop(rt, x, y, op)
}

func Or(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr {
	op := opI32Or
	if f == FamilyI64 {
		op = opI64Or
	}
	return binop(rt, x, y, op)
}

func Xor(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr {
	op := opI32Xor
	if f == FamilyI64 {
		op = opI64Xor
	}
	return binop(rt, x, y, op)
}

func Shl(rt *types.PrimitiveType, x, y Expr, f BinOpFamily) Expr {
	op := opI32Shl
	if f == FamilyI64 {
		op = opI64Shl
	}
	return binop(rt, x, y, op)
}

// Shr selects shr_s/shr_u per the result type's signedness (§4.F: "right
// shift picks shr_s/shr_u").
func Shr(rt *types.PrimitiveType, x, y Expr, f BinOpFamily, signed bool) Expr {
	op := opI32ShrU
	switch {
	case f == FamilyI32 && signed:
		op = opI32ShrS
	case f == FamilyI64 && signed:
		op = opI64ShrS
	case f == FamilyI64 && !signed:
		op = opI64ShrU
	}
	return binop(rt, x, y, op)
}

// --- conversion-engine instructions (component C) ---

func WrapI64ToI32(rt *types.PrimitiveType, x Expr) Expr { return unop(rt, x, opI32WrapI64) }

func ExtendI32ToI64(rt *types.PrimitiveType, x Expr, signed bool) Expr {
	op := opI64ExtendI32U
	if signed {
		op = opI64ExtendI32S
	}
	return unop(rt, x, op)
}

func TruncFloatToI32(rt *types.PrimitiveType, x Expr, fromF64 bool, signed bool) Expr {
	op := opI32TruncF32U
	switch {
	case !fromF64 && signed:
		op = opI32TruncF32S
	case fromF64 && !signed:
		op = opI32TruncF64U
	case fromF64 && signed:
		op = opI32TruncF64S
	}
	return unop(rt, x, op)
}

func TruncFloatToI64(rt *types.PrimitiveType, x Expr, fromF64 bool, signed bool) Expr {
	op := opI64TruncF32U
	switch {
	case !fromF64 && signed:
		op = opI64TruncF32S
	case fromF64 && !signed:
		op = opI64TruncF64U
	case fromF64 && signed:
		op = opI64TruncF64S
	}
	return unop(rt, x, op)
}

func ConvertIntToF32(rt *types.PrimitiveType, x Expr, fromI64 bool, signed bool) Expr {
	op := opF32ConvertI32U
	switch {
	case !fromI64 && signed:
		op = opF32ConvertI32S
	case fromI64 && !signed:
		op = opF32ConvertI64U
	case fromI64 && signed:
		op = opF32ConvertI64S
	}
	return unop(rt, x, op)
}

func ConvertIntToF64(rt *types.PrimitiveType, x Expr, fromI64 bool, signed bool) Expr {
	op := opF64ConvertI32U
	switch {
	case !fromI64 && signed:
		op = opF64ConvertI32S
	case fromI64 && !signed:
		op = opF64ConvertI64U
	case fromI64 && signed:
		op = opF64ConvertI64S
	}
	return unop(rt, x, op)
}

func DemoteF64ToF32(rt *types.PrimitiveType, x Expr) Expr { return unop(rt, x, opF32DemoteF64) }
func PromoteF32ToF64(rt *types.PrimitiveType, x Expr) Expr { return unop(rt, x, opF64PromoteF32) }

// --- sub-word normalization (used after a narrowing Int->Int conversion) ---

// MaskI32 emits `x & mask` (zero-extend to the narrower width).
func MaskI32(rt *types.PrimitiveType, x Expr, mask uint32) Expr {
	return binop(rt, x, ConstI32(rt, int32(mask)), opI32And)
}

// SignShrinkI32 emits `(x << shift) >>_s shift` (sign-extend to the
// narrower width).
func SignShrinkI32(rt *types.PrimitiveType, x Expr, shift uint32) Expr {
	shifted := binop(rt, x, ConstI32(rt, int32(shift)), opI32Shl)
	return binop(rt, shifted, ConstI32(rt, int32(shift)), opI32ShrS)
}
