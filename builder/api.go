package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// rawConstructor builds a network's raw (unsimplified) switch list from its
// boundary nodes, consulting cfg for whatever knob that family exposes.
type rawConstructor func(left, right []core.VariableNode, cfg *builderConfig) ([]core.Switch, error)

// constructors dispatches NetworkType to its rawConstructor.
var constructors = map[NetworkType]rawConstructor{
	Naive:            naiveNetwork,
	BubbleSort:       bubbleSortNetwork,
	BitonicSort:      bitonicSortNetwork,
	OddEvenMergeSort: oddEvenMergeSortNetwork,
	Benes:            benesNetwork,
	ClosMaxDegree:    closMaxDegreeNetwork,
	ClosMinEdge:      closMinEdgeNetwork,
	DivideAndConquer: divideAndConquerNetwork,
}

// defaultReverse records each family's orientation default when the caller
// never calls WithReverse: every family but OddEvenMergeSort defaults to
// false.
var defaultReverse = map[NetworkType]bool{
	OddEvenMergeSort: true,
}

// Compile builds a sparse QUBO realizing the constraint
// "sum(variables) relates to (c1, c2) the way kind names", using network to
// choose the switching-network family, configured by opts.
//
// Stage 1 (Validate): network is known and supports kind.
// Stage 2 (Construct): InitialNodes builds the boundary, the chosen
// rawConstructor builds the raw switch list.
// Stage 3 (Simplify): core.Simplify folds forced variables away and
// proves feasibility.
// Stage 4 (Finalize): auxiliary variables are renamed under a prefix
// disjoint from every other Compile call, and core.Reduce expands the
// result into a QUBO.
// Complexity: see the chosen rawConstructor's complexity note; Simplify and
// Reduce are linear and quadratic respectively in the emitted switch count.
func Compile(variables []string, network NetworkType, kind ConstraintType, c1, c2 int, opts ...Option) (core.QUBO, error) {
	switches, err := BuildSwitches(variables, network, kind, c1, c2, opts...)
	if err != nil {
		return core.QUBO{}, err
	}
	return core.Reduce(switches), nil
}

// BuildSwitches runs Compile through simplification but stops short of
// core.Reduce, returning the simplified, prefixed switch list itself. Most
// callers want Compile; BuildSwitches is exposed for callers (e.g. several
// constraints sharing one combined QUBO) that need to concatenate switch
// lists across constraints before a single Reduce.
func BuildSwitches(variables []string, network NetworkType, kind ConstraintType, c1, c2 int, opts ...Option) ([]core.Switch, error) {
	ctor, ok := constructors[network]
	if !ok {
		return nil, fmt.Errorf("builder.BuildSwitches: network %v: %w", network, ErrNotImplemented)
	}
	if !supported(network, kind) {
		return nil, fmt.Errorf("builder.BuildSwitches: network %v does not support constraint %v: %w", network, kind, ErrInvalidParameter)
	}

	cfg := newBuilderConfig(opts...)

	left, right, err := InitialNodes(variables, kind, c1, c2, cfg.pad)
	if err != nil {
		return nil, fmt.Errorf("builder.BuildSwitches: %w", err)
	}

	raw, err := ctor(left, right, cfg)
	if err != nil {
		return nil, fmt.Errorf("builder.BuildSwitches: %w", err)
	}

	simplified, err := core.Simplify(raw, right, cfg.effectiveReverse(defaultReverse[network]))
	if err != nil {
		return nil, fmt.Errorf("builder.BuildSwitches: %w", err)
	}

	userVariables := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		userVariables[v] = struct{}{}
	}
	prefix := cfg.prefix
	if prefix == "" {
		prefix = nextPrefix()
	}
	return prefixAuxiliaryVariables(simplified, userVariables, prefix), nil
}
