package wasmgen

import "wasmc/internal/types"

// ValType is a wasm value-type encoding byte.
type ValType byte

const (
	ValI32 ValType = 0x7F
	ValI64 ValType = 0x7E
	ValF32 ValType = 0x7D
	ValF64 ValType = 0x7C
)

// ValTypeOf maps a primitive descriptor to the wasm value type that
// represents it on the stack: 32-bit-and-narrower integers (including bool
// and a 4-byte pointer) use i32, 64-bit integers (including an 8-byte
// pointer) use i64, and float/double map directly.
func ValTypeOf(t *types.PrimitiveType) ValType {
	switch {
	case t.Kind == types.Float:
		return ValF32
	case t.Kind == types.Double:
		return ValF64
	case t.IsLong():
		return ValI64
	default:
		return ValI32
	}
}

// BlockTypeOf maps a return type to the wasm block/function result encoding:
// void functions have an empty result vector, everything else has exactly
// one result of ValTypeOf(t).
func BlockTypeOf(t *types.PrimitiveType) []ValType {
	if t.Kind == types.Void {
		return nil
	}
	return []ValType{ValTypeOf(t)}
}
