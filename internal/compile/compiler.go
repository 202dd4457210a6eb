package compile

import (
	"wasmc/internal/convert"
	"wasmc/internal/diag"
	"wasmc/internal/resolve"
	"wasmc/internal/symbols"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// Compiler owns every piece of per-compilation state §5 requires a fresh
// instance of: the signature table, constant table, module builder, and
// (indirectly, through the reporter it is handed) the diagnostic
// collection. Nothing here is safe to share across compilations.
type Compiler struct {
	Reg      *types.Registry
	Resolver *resolve.Resolver
	Conv     *convert.Engine
	Table    *symbols.Table
	Module   *wasmgen.Module
	Rep      diag.Reporter

	handles map[string]*wasmgen.FuncHandle
	sigs    map[string]wasmgen.SignatureHandle
}

// New constructs a Compiler targeting the given pointer word size.
func New(wordSize uint8, rep diag.Reporter) (*Compiler, error) {
	reg, err := types.NewRegistry(wordSize)
	if err != nil {
		return nil, err
	}
	return &Compiler{
		Reg:      reg,
		Resolver: resolve.New(reg, rep),
		Conv:     convert.New(rep),
		Table:    symbols.NewTable(),
		Module:   wasmgen.NewModule(),
		Rep:      rep,
		handles:  make(map[string]*wasmgen.FuncHandle),
		sigs:     make(map[string]wasmgen.SignatureHandle),
	}, nil
}

// SetMemory installs the module's default linear memory (§6: 256 pages,
// no maximum, exported as "memory").
func (c *Compiler) SetMemory(initialPages uint32) {
	c.Module.SetMemory(initialPages, 0, false, "memory")
	c.Module.AddExport("memory", "memory")
}

// Finalize installs the module's start function, if a top-level function
// literally named "start" was ever registered. Call this after pass 2.
func (c *Compiler) Finalize() {
	if _, ok := c.Table.LookupFunction("start"); ok {
		if h, ok := c.handles["start"]; ok {
			c.Module.SetStart(h)
		}
	}
}
