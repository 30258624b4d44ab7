package sparsequbo

import (
	"github.com/qubo-sparse/sparsequbo/builder"
	"github.com/qubo-sparse/sparsequbo/core"
)

// NetworkType selects which switching-network family realizes a constraint.
type NetworkType = builder.NetworkType

// Network family constants, re-exported from builder for one-import callers.
const (
	Naive            = builder.Naive
	BubbleSort       = builder.BubbleSort
	BitonicSort      = builder.BitonicSort
	OddEvenMergeSort = builder.OddEvenMergeSort
	Benes            = builder.Benes
	ClosMaxDegree    = builder.ClosMaxDegree
	ClosMinEdge      = builder.ClosMinEdge
	DivideAndConquer = builder.DivideAndConquer
)

// ConstraintType selects which cardinality relation the boundary encodes.
type ConstraintType = builder.ConstraintType

// Constraint kind constants, re-exported from builder.
const (
	OneHot       = builder.OneHot
	EqualTo      = builder.EqualTo
	LessEqual    = builder.LessEqual
	GreaterEqual = builder.GreaterEqual
	Clamp        = builder.Clamp
)

// Option configures a Compile or BuildSwitches call; see builder.Option's
// constructors (WithThreshold, WithReverse, WithPrefix, WithPad,
// WithMaxDegree), all re-exported below.
type Option = builder.Option

var (
	WithThreshold = builder.WithThreshold
	WithReverse   = builder.WithReverse
	WithPrefix    = builder.WithPrefix
	WithPad       = builder.WithPad
	WithMaxDegree = builder.WithMaxDegree
)

// QUBO is a Quadratic Unconstrained Binary Optimization objective; see
// core.QUBO for its field documentation.
type QUBO = core.QUBO

// Switch is one switching-network comparator; see core.Switch.
type Switch = core.Switch

var (
	// ErrInvalidParameter and ErrNotImplemented are builder's sentinel
	// errors; re-exported so callers of this facade can errors.Is against
	// them without importing builder directly.
	ErrInvalidParameter = builder.ErrInvalidParameter
	ErrNotImplemented   = builder.ErrNotImplemented
)

// Compile builds a sparse QUBO realizing the constraint "sum(variables)
// relates to (c1, c2) the way kind names", using network to choose the
// switching-network family, configured by opts. See builder.Compile.
func Compile(variables []string, network NetworkType, kind ConstraintType, c1, c2 int, opts ...Option) (QUBO, error) {
	return builder.Compile(variables, network, kind, c1, c2, opts...)
}

// BuildSwitches runs Compile through simplification but stops short of
// reduction to a QUBO, returning the simplified, prefixed switch list
// itself, for callers combining several constraints into one shared QUBO.
// See builder.BuildSwitches.
func BuildSwitches(variables []string, network NetworkType, kind ConstraintType, c1, c2 int, opts ...Option) ([]Switch, error) {
	return builder.BuildSwitches(variables, network, kind, c1, c2, opts...)
}

// Reduce expands a list of switches into a single QUBO; total, cannot
// fail. Exposed so callers that concatenated several BuildSwitches results
// can finish the pipeline without a separate core import.
func Reduce(switches []Switch) QUBO {
	return core.Reduce(switches)
}

// ResetPrefixCounter returns the package-level auxiliary-variable prefix
// counter to 0. Exposed for tests that need successive Compile calls to
// produce reproducible prefixes; production callers ordinarily never need it.
func ResetPrefixCounter() {
	builder.ResetPrefixCounter()
}
