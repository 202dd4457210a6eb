package types

import "fmt"

// Kind enumerates the closed set of primitive kinds the lattice admits.
// There is no KindInvalid sentinel needed: resolution failures are reported
// as diagnostics by internal/resolve rather than flowing a zero Kind through
// the pipeline.
type Kind uint8

const (
	Byte   Kind = iota // uint8
	SByte              // int8
	Short              // int16
	UShort             // uint16
	Int                // int32
	UInt               // uint32
	Long               // int64
	ULong              // uint64
	Bool               // i32-backed, values 0/1
	Float              // f32
	Double             // f64
	Void               // legal only as a return type
	UIntPtr            // word-size-dependent pointer-width unsigned integer
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var kindNames = map[Kind]string{
	Byte: "byte", SByte: "sbyte", Short: "short", UShort: "ushort",
	Int: "int", UInt: "uint", Long: "long", ULong: "ulong",
	Bool: "bool", Float: "float", Double: "double", Void: "void",
	UIntPtr: "uintptr",
}

// PrimitiveType is the canonical descriptor for one kind. Instances are
// interned: Registry hands out the same *PrimitiveType for the same Kind
// every time, so "two equal kinds are the same object" (§3) holds under
// plain Go pointer equality without a separate TypeID.
type PrimitiveType struct {
	Kind   Kind
	Size   uint8 // bytes; one of 0, 1, 2, 4, 8
	Signed bool
	Sig    byte // signature tag, used to build SignatureKey strings

	// Underlying is non-nil only for the pointer type (UIntPtr reused as
	// Ptr<T>'s representation), carrying the resolved element type. The
	// core never reads it for arithmetic scaling — see DESIGN.md (c).
	Underlying *PrimitiveType
}

// IsSigned reports whether arithmetic on this type uses signed opcodes.
func (t *PrimitiveType) IsSigned() bool { return t.Signed }

// IsFloat reports whether t is float or double.
func (t *PrimitiveType) IsFloat() bool { return t.Kind == Float || t.Kind == Double }

// IsInt reports whether t belongs to the <=32-bit integer family that wasm
// represents with i32: byte/sbyte/short/ushort/int/uint/bool, plus uintptr
// when the registry's word size is 4.
func (t *PrimitiveType) IsInt() bool {
	switch t.Kind {
	case Byte, SByte, Short, UShort, Int, UInt, Bool:
		return true
	case UIntPtr:
		return t.Size == 4
	default:
		return false
	}
}

// IsLong reports whether t belongs to the 64-bit integer family that wasm
// represents with i64: long/ulong, plus uintptr when the word size is 8.
func (t *PrimitiveType) IsLong() bool {
	switch t.Kind {
	case Long, ULong:
		return true
	case UIntPtr:
		return t.Size == 8
	default:
		return false
	}
}

// IsIntFamily reports whether t is any integer kind (sub-word, int, or long
// family) as opposed to float/double/void.
func (t *PrimitiveType) IsIntFamily() bool { return t.IsInt() || t.IsLong() }

// IsSubWord reports whether t is narrower than 32 bits and therefore needs
// shift32/mask32 normalization after arithmetic (component A, §4.A).
func (t *PrimitiveType) IsSubWord() bool { return t.Size > 0 && t.Size < 4 }

// Shift32 returns 32 - 8*size for sub-32-bit integer kinds; used by the
// conversion engine to sign-shrink a wrapped i32 value to t's width.
func (t *PrimitiveType) Shift32() uint32 {
	if !t.IsSubWord() {
		return 0
	}
	return 32 - 8*uint32(t.Size)
}

// Mask32 returns (1 << (8*size)) - 1 for sub-32-bit integer kinds. §9(a)
// records that the source formula `(size << 8) - 1` is a probable
// off-by-one bug; this lattice always computes the corrected value.
func (t *PrimitiveType) Mask32() uint32 {
	if !t.IsSubWord() {
		return 0xFFFFFFFF
	}
	return (uint32(1) << (8 * t.Size)) - 1
}

func (t *PrimitiveType) String() string { return t.Kind.String() }
