// Package symbols is the data model for pass 1/pass 2 (§3):
// FunctionDescriptor, the signature-interning key convention, the global
// Constant table, and per-function LocalSlot maps. Grounded on the
// teacher's symbols/function_signature.go (signature-key-as-string,
// dedup-by-equality) and symbols/symbol.go naming, cut down from that
// package's structural-type signature keys to spec.md §3's flat,
// single-character-tag signature strings.
package symbols
