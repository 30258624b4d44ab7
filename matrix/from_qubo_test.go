package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubo-sparse/sparsequbo/core"
	"github.com/qubo-sparse/sparsequbo/matrix"
)

// oneHotQUBO reproduces (a+b+c-1)^2 = -a-b-c+2ab+2ac+2bc+1, the textbook
// one-hot penalty over three variables.
func oneHotQUBO() core.QUBO {
	return core.QUBO{
		Variables: map[string]struct{}{"a": {}, "b": {}, "c": {}},
		Linear:    map[string]float64{"a": -1, "b": -1, "c": -1},
		Quadratic: map[core.Pair]float64{
			core.MakePair("a", "b"): 2,
			core.MakePair("a", "c"): 2,
			core.MakePair("b", "c"): 2,
		},
		Constant: 1,
	}
}

func TestFromQUBO_DiagonalIsLinear(t *testing.T) {
	dense, order := matrix.FromQUBO(oneHotQUBO())
	require.Equal(t, []string{"a", "b", "c"}, order)
	require.Equal(t, 3, dense.Rows())

	for i := range order {
		v, err := dense.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, -1.0, v)
	}
}

func TestFromQUBO_OffDiagonalIsHalfQuadraticAndSymmetric(t *testing.T) {
	dense, order := matrix.FromQUBO(oneHotQUBO())
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v] = i
	}

	i, j := index["a"], index["b"]
	upper, err := dense.At(i, j)
	require.NoError(t, err)
	lower, err := dense.At(j, i)
	require.NoError(t, err)
	assert.Equal(t, 1.0, upper)
	assert.Equal(t, 1.0, lower)
}

func TestFromQUBO_QuadraticFormReproducesObjectiveOnGroundState(t *testing.T) {
	q := oneHotQUBO()
	dense, order := matrix.FromQUBO(q)

	// x = (1,0,0): x^T Q x + constant should equal the QUBO's own
	// evaluation of the same assignment, and both are 0 at a one-hot
	// ground state.
	x := map[string]float64{"a": 1, "b": 0, "c": 0}
	var xtQx float64
	for i, vi := range order {
		for j, vj := range order {
			cell, err := dense.At(i, j)
			require.NoError(t, err)
			xtQx += cell * x[vi] * x[vj]
		}
	}
	assert.Equal(t, 0.0, xtQx+q.Constant)
}

func TestFromQUBO_EmptyQUBO(t *testing.T) {
	dense, order := matrix.FromQUBO(core.QUBO{})
	assert.Empty(t, order)
	assert.Equal(t, 0, dense.Rows())
}
