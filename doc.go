// Package sparsequbo compiles linear cardinality constraints over binary
// variables ("exactly one of these three", "at most K of these five") into
// sparse QUBO penalty functions, via switching networks: small comparator
// circuits that route a boundary of forced 0/1 values through the free
// variables, so that satisfying the constraint corresponds exactly to the
// penalty function's ground state.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — Switch/QUBO algebra, reduction, and the simplification driver
//	builder/ — constraint front-end, network constructors, this package's engine
//	matrix/  — dense matrix view of a QUBO, for solvers that want x^T Q x
//
// This package itself is a thin facade re-exporting builder's entry points
// and core's result types, so that the common case — "give me a QUBO for
// this constraint" — needs only one import.
//
//	q, err := sparsequbo.Compile([]string{"x", "y", "z"}, sparsequbo.Benes, sparsequbo.OneHot, 0, 0)
//
// See cmd/quboc for a command-line front-end.
package sparsequbo
