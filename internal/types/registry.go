package types

import "fmt"

// Registry hands out the interned PrimitiveType singletons for one
// compilation. The pointer kind's width is fixed at construction time from
// the target word size; everything else is a package-level constant table
// shared by every Registry.
type Registry struct {
	wordSize uint8
	ptr      *PrimitiveType
}

var singletons = map[Kind]*PrimitiveType{
	Byte:   {Kind: Byte, Size: 1, Signed: false, Sig: 'B'},
	SByte:  {Kind: SByte, Size: 1, Signed: true, Sig: 'b'},
	Short:  {Kind: Short, Size: 2, Signed: true, Sig: 's'},
	UShort: {Kind: UShort, Size: 2, Signed: false, Sig: 'S'},
	Int:    {Kind: Int, Size: 4, Signed: true, Sig: 'i'},
	UInt:   {Kind: UInt, Size: 4, Signed: false, Sig: 'u'},
	Long:   {Kind: Long, Size: 8, Signed: true, Sig: 'l'},
	ULong:  {Kind: ULong, Size: 8, Signed: false, Sig: 'L'},
	Bool:   {Kind: Bool, Size: 4, Signed: false, Sig: 'o'},
	Float:  {Kind: Float, Size: 4, Signed: true, Sig: 'f'},
	Double: {Kind: Double, Size: 8, Signed: true, Sig: 'd'},
	Void:   {Kind: Void, Size: 0, Signed: false, Sig: 'v'},
}

// NewRegistry constructs a Registry for the given target pointer word size.
// wordSize must be 4 or 8; anything else is a fatal configuration error
// (§4.A), since no wasm numeric type represents any other pointer width.
func NewRegistry(wordSize uint8) (*Registry, error) {
	if wordSize != 4 && wordSize != 8 {
		return nil, fmt.Errorf("unsupported pointer word size %d: must be 4 or 8", wordSize)
	}
	return &Registry{
		wordSize: wordSize,
		ptr:      &PrimitiveType{Kind: UIntPtr, Size: wordSize, Signed: false, Sig: 'p'},
	}, nil
}

// WordSize returns the configured pointer width in bytes (4 or 8).
func (r *Registry) WordSize() uint8 { return r.wordSize }

// Lookup returns the singleton descriptor for a named primitive kind, or
// false if name is not one of the reserved primitive names. "Ptr" is not a
// primitive name; it is handled by internal/resolve, which calls Pointer
// for the annotated form.
func (r *Registry) Lookup(name string) (*PrimitiveType, bool) {
	k, ok := nameToKind[name]
	if !ok {
		return nil, false
	}
	return r.Get(k), true
}

// Get returns the interned descriptor for kind k. For UIntPtr this returns
// the bare (unparameterized) pointer descriptor; use Pointer to attach an
// underlying element type.
func (r *Registry) Get(k Kind) *PrimitiveType {
	if k == UIntPtr {
		return r.ptr
	}
	return singletons[k]
}

// Pointer returns a pointer descriptor annotated with elem as its
// underlying element type. Two calls with the same elem do not need to
// return the same pointer instance: only the bare element kinds are
// required to be singletons (§3); Ptr<T> annotations are transient.
func (r *Registry) Pointer(elem *PrimitiveType) *PrimitiveType {
	return &PrimitiveType{
		Kind: UIntPtr, Size: r.wordSize, Signed: false, Sig: 'p',
		Underlying: elem,
	}
}

var nameToKind = map[string]Kind{
	"byte": Byte, "sbyte": SByte, "short": Short, "ushort": UShort,
	"int": Int, "uint": UInt, "long": Long, "ulong": ULong,
	"bool": Bool, "float": Float, "double": Double, "void": Void,
	"uintptr": UIntPtr,
}

// Names returns every reserved primitive type name, in no particular order.
func Names() []string {
	names := make([]string, 0, len(nameToKind))
	for n := range nameToKind {
		names = append(names, n)
	}
	return names
}
