// Package wasmgen is the module emitter façade (component G) plus the wasm
// authoring backend spec.md assumes exists as an external collaborator. No
// repo in the example pack authors wasm binaries (wippyai-wasm-runtime's
// wasm/wat packages are a *runtime* ABI bridge that reads and executes
// modules, not a writer), so this package is new: a minimal binary encoder
// (LEB128 varints, section layout) grounded on that pack's
// wasm/internal/binary.Writer idiom and its wat/internal/opcode mnemonic
// table, retargeted to build modules instead of interpreting them.
//
// An expression "handle" (Expr) is simply the already-encoded instruction
// bytes for that subtree plus its inferred type: wasm's instruction
// encoding is already postfix/stack-shaped, so composing a binary operator
// is exactly "encode left, encode right, append one opcode byte" — the
// façade's opaque-handle contract (§4.G) falls out of the wire format
// directly instead of needing a separate IR.
package wasmgen
