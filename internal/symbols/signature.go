package symbols

import (
	"strings"

	"wasmc/internal/types"
)

// SignatureKey is the interning token for a function type: the
// concatenation of each parameter's single-character signature tag
// followed by the return type's tag (§3, §6). Two functions with equal
// parameter/return sequences always produce equal keys.
type SignatureKey string

// MakeSignatureKey builds the key for (params, result). The synthetic
// leading `this` parameter of an instance method must already be present
// in params — MakeSignatureKey does not add it.
func MakeSignatureKey(params []*types.PrimitiveType, result *types.PrimitiveType) SignatureKey {
	var b strings.Builder
	for _, p := range params {
		b.WriteByte(p.Sig)
	}
	b.WriteByte(result.Sig)
	return SignatureKey(b.String())
}

// Table is the insertion-only per-compilation symbol table: functions keyed
// by mangled name, enum constants keyed by "Enum$Member", and the set of
// signature keys seen so far (used only to decide whether a signature is
// novel; the actual wasm type-section registration lives in
// internal/wasmgen.Module, which this table's caller drives).
type Table struct {
	Functions map[string]*FunctionDescriptor
	Constants map[string]Constant
	seenSigs  map[SignatureKey]bool
}

// NewTable constructs an empty Table.
func NewTable() *Table {
	return &Table{
		Functions: make(map[string]*FunctionDescriptor),
		Constants: make(map[string]Constant),
		seenSigs:  make(map[SignatureKey]bool),
	}
}

// FirstSight reports whether key has not been registered before, and marks
// it seen. Call this once per function descriptor to decide whether
// internal/wasmgen needs to register a new function type or may reuse an
// existing SignatureHandle.
func (t *Table) FirstSight(key SignatureKey) bool {
	if t.seenSigs[key] {
		return false
	}
	t.seenSigs[key] = true
	return true
}

// AddFunction registers fn under its mangled name. A duplicate mangled name
// overwrites the earlier entry; pass 1 reports SymDuplicateSignature before
// calling this when that happens (see internal/compile/pass1.go).
func (t *Table) AddFunction(fn *FunctionDescriptor) { t.Functions[fn.Mangled] = fn }

// LookupFunction finds a function descriptor by mangled name.
func (t *Table) LookupFunction(mangled string) (*FunctionDescriptor, bool) {
	fn, ok := t.Functions[mangled]
	return fn, ok
}

// AddConstant registers an enum member under "Enum$Member".
func (t *Table) AddConstant(enum, member string, c Constant) {
	t.Constants[enum+"$"+member] = c
}

// LookupConstant finds a constant by its qualified "Enum$Member" key.
func (t *Table) LookupConstant(key string) (Constant, bool) {
	c, ok := t.Constants[key]
	return c, ok
}
