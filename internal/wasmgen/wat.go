package wasmgen

import (
	"fmt"
	"strings"
)

// WAT renders a minimal textual representation of the module for
// `--emit=wat` debugging output. It is not a full disassembler (it does
// not decode instruction bytes back into mnemonics); it renders the
// module's structural shape — types, imports, functions, memory, exports,
// start — which is what a reader needs to sanity-check what got emitted.
// Grounded on wippyai-wasm-runtime's wat package naming (`(module ...)`
// s-expression shape) without borrowing its disassembler, since this
// façade builds modules forward from Expr handles rather than parsing text.
func (m *Module) WAT() string {
	var b strings.Builder
	b.WriteString("(module\n")
	for i, sig := range m.sigOrder {
		fmt.Fprintf(&b, "  (type (;%d;) (func", i)
		for _, p := range sig.params {
			fmt.Fprintf(&b, " (param %s)", watType(p))
		}
		for _, r := range sig.result {
			fmt.Fprintf(&b, " (result %s)", watType(r))
		}
		b.WriteString("))\n")
	}
	for _, imp := range m.imports {
		fmt.Fprintf(&b, "  (import %q %q (func $%s (type %d)))\n",
			imp.ExternalModule, imp.ExternalField, imp.Internal, imp.Sig.index)
	}
	for i, f := range m.funcs {
		fmt.Fprintf(&b, "  (func $%s (;%d;) (type %d)", f.name, i, f.sig.index)
		for _, p := range f.sig.params {
			fmt.Fprintf(&b, " (param %s)", watType(p))
		}
		for _, r := range f.sig.result {
			fmt.Fprintf(&b, " (result %s)", watType(r))
		}
		fmt.Fprintf(&b, " ;; %d body bytes)\n", len(f.body))
	}
	if m.mem != nil {
		if m.mem.HasMax {
			fmt.Fprintf(&b, "  (memory %d %d)\n", m.mem.InitialPages, m.mem.MaximumPages)
		} else {
			fmt.Fprintf(&b, "  (memory %d)\n", m.mem.InitialPages)
		}
	}
	for _, exp := range m.exports {
		if m.mem != nil && exp.Internal == m.mem.Name {
			fmt.Fprintf(&b, "  (export %q (memory 0))\n", exp.External)
			continue
		}
		fmt.Fprintf(&b, "  (export %q (func $%s))\n", exp.External, exp.Internal)
	}
	if m.start != nil {
		fmt.Fprintf(&b, "  (start $%s)\n", m.start.name)
	}
	b.WriteString(")\n")
	return b.String()
}

func watType(v ValType) string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	default:
		return "?"
	}
}
