// Package diag defines the diagnostic model shared by the lexer, parser,
// type resolver, conversion engine, and the two compiler passes.
//
// Diagnostic is the central record: a Severity (Info/Warning/Error), a Code
// (see codes.go), a message, a primary source.Span, and optional Notes.
// Producers go through a Reporter (BagReporter in practice) rather than
// building a Bag directly, so call sites don't need to know whether
// diagnostics are being collected, deduplicated, or discarded.
//
// The driver treats the presence of any Severity >= SevError diagnostic
// after pass 1 or pass 2 as fatal (Bag.HasErrors) and refuses to emit a
// module.
package diag
