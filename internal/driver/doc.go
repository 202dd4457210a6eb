// Package driver orchestrates one compilation end to end: it loads the
// entry source file plus an optional declarations file, runs pass 1 (the
// symbol initializer) across every file, then pass 2 (the body compiler)
// over the entry file, and hands back the populated wasmgen.Module together
// with the accumulated diagnostics (§2, §5).
//
// Grounded on the teacher's internal/driver — specifically parallel.go's
// errgroup-based "load and parse every file concurrently" shape — but a
// much smaller driver: spec.md compiles exactly one entry file plus one
// declarations file, not an arbitrary multi-module dependency graph, so
// there is no module DAG here, just a parse fan-out followed by the two
// sequential compiler passes §2 requires.
package driver
