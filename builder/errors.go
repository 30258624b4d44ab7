// Package builder compiles cardinality constraints into raw switching
// networks and drives them through core.Simplify and core.Reduce to produce
// a single QUBO.
package builder

import "errors"

// ErrInvalidParameter indicates a parameter combination the front-end or a
// network constructor rejects outright: an out-of-range c1/c2 for a
// ConstraintType, an N that is not a power of two for a sort-network
// constructor, or a (NetworkType, ConstraintType) pairing that supported
// reports unsupported. A max-degree below 2 is not rejected: WithMaxDegree
// ignores it and the default fan-in stays in effect.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNotImplemented indicates a NetworkType that has no constructor
// registered in this package. Unsupported (NetworkType, ConstraintType)
// pairings, such as an inequality constraint routed at DivideAndConquer, are
// reported as ErrInvalidParameter instead.
var ErrNotImplemented = errors.New("builder: not implemented")
