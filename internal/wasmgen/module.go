package wasmgen

import (
	"fmt"

	"wasmc/internal/types"
)

// SignatureHandle is the opaque handle AddFunctionType returns; addFunction
// and addImport accept it as proof that the signature has already been
// registered (the façade's "only invariant", §4.G).
type SignatureHandle struct {
	key    string
	params []ValType
	result []ValType
	index  uint32 // index into Module.sigOrder
}

// FuncHandle is the opaque handle AddFunction returns.
type FuncHandle struct {
	name string
	sig  SignatureHandle
	// importIndex/funcIndex are resolved lazily at Encode time once every
	// import (which always precedes defined functions in the wasm function
	// index space) is known.
	isImport bool
	body     []byte
	locals   []ValType
}

// Export records one internal-name -> external-name export table entry.
type Export struct {
	Internal string
	External string
}

// Import records one two-part (module, field) import.
type Import struct {
	Internal       string
	ExternalModule string
	ExternalField  string
	Sig            SignatureHandle
}

// Memory is the module's single linear memory declaration.
type Memory struct {
	InitialPages uint32
	MaximumPages uint32 // 0 means "no maximum" when HasMax is false
	HasMax       bool
	Name         string
}

// Module accumulates everything the driver feeds it across pass 1 (types,
// imports, signatures) and pass 2 (function bodies) for one compilation.
// It owns no cross-compilation state (§5: "each compilation owns a fresh
// instance").
type Module struct {
	sigByKey map[string]SignatureHandle
	sigOrder []SignatureHandle

	imports []*Import
	funcs   []*FuncHandle // defined (non-import) functions, in addFunction order
	exports []*Export
	start   *FuncHandle
	mem     *Memory
}

// NewModule constructs an empty module.
func NewModule() *Module {
	return &Module{sigByKey: make(map[string]SignatureHandle)}
}

// AddFunctionType interns a function type by key, returning the existing
// handle if key was seen before (§6: "function types are interned using a
// key that concatenates per-type signature tags").
func (m *Module) AddFunctionType(key string, params, result []*types.PrimitiveType) SignatureHandle {
	if h, ok := m.sigByKey[key]; ok {
		return h
	}
	h := SignatureHandle{key: key, index: uint32(len(m.sigOrder))}
	for _, p := range params {
		h.params = append(h.params, ValTypeOf(p))
	}
	h.result = BlockTypeOf(resultOrVoid(result))
	m.sigByKey[key] = h
	m.sigOrder = append(m.sigOrder, h)
	return h
}

func resultOrVoid(result []*types.PrimitiveType) *types.PrimitiveType {
	if len(result) == 0 {
		return &types.PrimitiveType{Kind: types.Void}
	}
	return result[0]
}

// AddFunction registers a defined function body. additionalLocals are the
// non-parameter local slots (none, currently — §4.E allocates only
// parameter slots); body is the Expr the return statement lowered.
func (m *Module) AddFunction(name string, sig SignatureHandle, additionalLocals []*types.PrimitiveType, body Expr) *FuncHandle {
	var locals []ValType
	for _, l := range additionalLocals {
		locals = append(locals, ValTypeOf(l))
	}
	fh := &FuncHandle{name: name, sig: sig, body: body.Bytes(), locals: locals}
	m.funcs = append(m.funcs, fh)
	return fh
}

// AddImport registers an import; pass 2 is skipped for these (§2).
func (m *Module) AddImport(internalName, externalModule, externalField string, sig SignatureHandle) *FuncHandle {
	m.imports = append(m.imports, &Import{
		Internal: internalName, ExternalModule: externalModule,
		ExternalField: externalField, Sig: sig,
	})
	return &FuncHandle{name: internalName, sig: sig, isImport: true}
}

// AddExport adds internalName to the export table under externalName.
func (m *Module) AddExport(internalName, externalName string) {
	m.exports = append(m.exports, &Export{Internal: internalName, External: externalName})
}

// SetStart installs fn as the module's start function.
func (m *Module) SetStart(fn *FuncHandle) { m.start = fn }

// SetMemory declares the module's single linear memory.
func (m *Module) SetMemory(initialPages, maximumPages uint32, hasMax bool, name string) {
	m.mem = &Memory{InitialPages: initialPages, MaximumPages: maximumPages, HasMax: hasMax, Name: name}
}

// AutoDrop wraps a value-producing Expr that was lowered as a bare
// expression statement with a `drop`, discarding it. §4.E only recognizes
// Return today, so no caller exercises this yet; it is part of the façade
// contract (§4.G) for when expression statements are added.
func AutoDrop(e Expr) Expr {
	w := newByteWriter()
	w.Append(e.code)
	w.Byte(0x1A) // drop
	return leaf(&types.PrimitiveType{Kind: types.Void}, w.Bytes())
}

// funcIndex returns fn's index in the wasm function index space: imports
// first, then defined functions, matching the module's own import/func
// append order.
func (m *Module) funcIndex(fn *FuncHandle) (uint32, error) {
	if fn.isImport {
		for i, imp := range m.imports {
			if imp.Internal == fn.name {
				return uint32(i), nil
			}
		}
		return 0, fmt.Errorf("wasmgen: import %q not found", fn.name)
	}
	base := uint32(len(m.imports))
	for i, f := range m.funcs {
		if f == fn {
			return base + uint32(i), nil
		}
	}
	return 0, fmt.Errorf("wasmgen: function %q not found", fn.name)
}
