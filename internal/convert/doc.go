// Package convert is the conversion engine (component C): given a source
// expression handle, its source and target types, and an explicit/implicit
// flag, it emits the minimal wasm instruction sequence that converts a
// value, reporting a diagnostic when an implicit narrowing or cross-family
// conversion is attempted. Grounded on the teacher's
// internal/backend/llvm/emit_instr_cast.go (identity short-circuit, then
// width/signedness dispatch over src/dst type-info pairs) retargeted from
// LLVM zext/sext/trunc text to wasm opcode selection via internal/wasmgen,
// following spec.md §4.C's priority-ordered rule list.
package convert
