// Package core defines the fundamental data types of a switching-network
// QUBO compiler: binary-variable node attributes, switches (local equality
// constraints between a left and a right set of variables), and the QUBO
// objective they reduce to.
//
// Everything in this package is immutable once constructed: Switch and QUBO
// values are built by constructor functions that validate their invariants
// once, at the boundary, and are never mutated afterwards. The two
// operations that walk a switch list — Reduce (always succeeds) and
// Simplify (may fail with ErrIllFormedNetwork or ErrInfeasible) — both
// return new values rather than mutating their input.
//
// core has no I/O, no goroutines, and no package-level mutable state; it is
// safe to call from any number of goroutines concurrently.
package core
