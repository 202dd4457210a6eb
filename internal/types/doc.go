// Package types is the closed primitive-type lattice (component A):
// interned descriptors for every wasm-mapped kind, plus the size,
// signedness, and sub-word shift/mask facts the conversion engine and
// expression lowerer consult. There is no TypeID indirection here — unlike
// internal/types in the teacher repo, which interns structural types
// (arrays, structs, unions) behind a numeric ID, this lattice is a small
// fixed set of singletons, so Go pointer identity already gives the "two
// equal kinds are the same object" invariant the data model calls for.
package types
