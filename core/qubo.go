package core

import (
	"fmt"
	"sort"
)

// QUBO is a Quadratic Unconstrained Binary Optimization objective:
//
//	Constant + sum_v Linear[v]*v + sum_{u,v} Quadratic[{u,v}]*u*v
//
// with every variable binary. Quadratic is sparse and keyed by the
// canonical Pair{A,B} with A<=B; the pair {v,v} never appears (a self-term
// folds into Linear[v] via v^2 = v, see Reduce). Missing keys in Linear or
// Quadratic default to 0.
type QUBO struct {
	Variables map[string]struct{}
	Linear    map[string]float64
	Quadratic map[Pair]float64
	Constant  float64
}

// SortedVariables returns Variables as a sorted slice, for callers that
// need a deterministic iteration order (printing, matrix.FromQUBO, tests).
// Complexity: O(n log n).
func (q QUBO) SortedVariables() []string {
	out := make([]string, 0, len(q.Variables))
	for v := range q.Variables {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// SortedPairs returns Quadratic's keys sorted lexicographically by
// (A, B), for callers (printing, cmd/quboc) that need deterministic
// iteration over the quadratic terms.
// Complexity: O(e log e).
func (q QUBO) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(q.Quadratic))
	for p := range q.Quadratic {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// String renders the QUBO as a deterministic, human-readable objective
// expression: useful for debugging and for cmd/quboc's plain-text output.
// Complexity: O(n log n + e log e) for sorting variables and pairs.
func (q QUBO) String() string {
	vars := q.SortedVariables()
	out := fmt.Sprintf("constant: %g\n", q.Constant)
	for _, v := range vars {
		if c := q.Linear[v]; c != 0 {
			out += fmt.Sprintf("linear[%s] = %g\n", v, c)
		}
	}
	for _, p := range q.SortedPairs() {
		if c := q.Quadratic[p]; c != 0 {
			out += fmt.Sprintf("quadratic[%s,%s] = %g\n", p.A, p.B, c)
		}
	}
	return out
}
