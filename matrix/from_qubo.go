package matrix

import "github.com/qubo-sparse/sparsequbo/core"

// FromQUBO renders q as a dense, symmetric penalty matrix Q and its
// variable ordering: for the returned order, x^T Q x equals
// sum_v q.Linear[v]*x_v + sum_{u,v} q.Quadratic[{u,v}]*x_u*x_v, since
// x_v^2 = x_v for binary x_v, so x^T Q x + q.Constant is the QUBO's value.
// Diagonal entries carry Linear coefficients; each off-diagonal pair {u,v}
// carries half its Quadratic
// coefficient on both Q[u][v] and Q[v][u], so that the standard quadratic
// form's doubled cross term reproduces the QUBO's undoubled one.
// q.Constant is not representable in Q itself and is not returned; callers
// read it from q directly.
// Complexity: O(n^2) for the dense allocation, O(n + e) to populate it.
func FromQUBO(q core.QUBO) (*Dense, []string) {
	order := q.SortedVariables()
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v] = i
	}

	n := len(order)
	if n == 0 {
		return &Dense{n: 0}, order
	}
	dense, _ := NewDense(n)

	for v, coeff := range q.Linear {
		i := index[v]
		dense.data[i*n+i] = coeff
	}
	for pair, coeff := range q.Quadratic {
		i, j := index[pair.A], index[pair.B]
		dense.data[i*n+j] += coeff / 2
		dense.data[j*n+i] += coeff / 2
	}

	return dense, order
}
