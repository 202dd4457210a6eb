package symbols

import "wasmc/internal/types"

// Flag is the export/import modifier set a FunctionDescriptor carries.
type Flag uint8

const (
	FlagExport Flag = 1 << iota
	FlagImport
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

// FunctionDescriptor is the pass-1 record for one function or method (§3).
// ParamTypes and ReturnType are canonical descriptors already resolved by
// internal/resolve; Mangled is the internal wasm-facing name ("Class$method"
// for methods, the raw name for free functions).
type FunctionDescriptor struct {
	Mangled    string
	ParamTypes []*types.PrimitiveType
	ParamNames []string
	ReturnType *types.PrimitiveType
	Flags      Flag
	Key        SignatureKey

	// HasThis is true for instance methods, whose slot 0 parameter is a
	// synthetic pointer-typed receiver the caller never wrote explicitly.
	HasThis bool
}

func (d *FunctionDescriptor) IsExport() bool { return d.Flags.Has(FlagExport) }
func (d *FunctionDescriptor) IsImport() bool { return d.Flags.Has(FlagImport) }

// Constant is one `EnumName$MemberName` entry: a (type, value) pair
// produced by evaluating an enum member's initializer expression.
type Constant struct {
	Type  *types.PrimitiveType
	Value int64
}

// LocalSlot is one function-body local: its positional slot index and
// declared type, scoped to a single function compilation.
type LocalSlot struct {
	Index uint32
	Type  *types.PrimitiveType
}
