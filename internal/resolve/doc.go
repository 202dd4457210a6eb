// Package resolve is the type resolver (component B): it maps a surface
// ast.TypeExpr to a canonical *types.PrimitiveType. Grounded on the
// teacher's sema/type_expr.go switch-on-node-kind dispatch, cut down to the
// two shapes spec.md §4.B recognizes (a bare primitive name, and Ptr<T>
// where T is itself a type reference) — everything else is the teacher's
// large structural-type system (arrays, tuples, references, generics),
// which spec.md explicitly excludes.
package resolve
