package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubo-sparse/sparsequbo/builder"
	"github.com/qubo-sparse/sparsequbo/core"
)

// (E1) ONE_HOT via DIVIDE_AND_CONQUER collapses to the usual
// (a+b+c-1)^2 one-hot penalty.
func TestCompile_OneHotViaDivideAndConquer(t *testing.T) {
	builder.ResetPrefixCounter()
	q, err := builder.Compile([]string{"a", "b", "c"}, builder.DivideAndConquer, builder.OneHot, 0, 0)
	require.NoError(t, err)

	for _, v := range []string{"a", "b", "c"} {
		assert.Equal(t, -1.0, q.Linear[v], "linear[%s]", v)
	}
	for _, p := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}} {
		assert.Equal(t, 2.0, q.Quadratic[core.MakePair(p[0], p[1])], "quadratic[%s,%s]", p[0], p[1])
	}
	assert.Equal(t, 1.0, q.Constant)
}

// (E2) EQUAL_TO 2 via BUBBLE_SORT: ground state 0 on every balanced
// assignment, strictly positive elsewhere. We check this indirectly via
// the produced QUBO's variable set (every user variable must survive
// simplification, since with two ALWAYS_ONE among four right-boundary
// nodes no user variable is forced to a constant).
func TestCompile_EqualToViaBubbleSort(t *testing.T) {
	builder.ResetPrefixCounter()
	vars := []string{"x0", "x1", "x2", "x3"}
	q, err := builder.Compile(vars, builder.BubbleSort, builder.EqualTo, 2, 0)
	require.NoError(t, err)
	for _, v := range vars {
		assert.Contains(t, q.Variables, v)
	}
}

// (E6) EQUAL_TO with c1 > N is InvalidParameter.
func TestCompile_EqualTo_OutOfRange(t *testing.T) {
	_, err := builder.Compile([]string{"a", "b"}, builder.Naive, builder.EqualTo, 5, 0)
	assert.True(t, errors.Is(err, builder.ErrInvalidParameter))
}

// (E6) CLAMP with c1 > c2 is InvalidParameter.
func TestCompile_Clamp_InvalidRange(t *testing.T) {
	_, err := builder.Compile([]string{"a", "b", "c"}, builder.Naive, builder.Clamp, 2, 1)
	assert.True(t, errors.Is(err, builder.ErrInvalidParameter))
}

// (E6) Bitonic with N=3 is InvalidParameter (not a power of two): padding
// is off for every family unless the caller passes WithPad.
func TestCompile_Bitonic_NonPowerOfTwo(t *testing.T) {
	_, err := builder.Compile([]string{"a", "b", "c"}, builder.BitonicSort, builder.OneHot, 0, 0)
	assert.Error(t, err)
}

func TestCompile_DivideAndConquer_RejectsInequalities(t *testing.T) {
	_, err := builder.Compile([]string{"a", "b", "c"}, builder.DivideAndConquer, builder.LessEqual, 2, 0)
	assert.True(t, errors.Is(err, builder.ErrInvalidParameter))
}

// Testable Property 6: two successive calls with disjoint user-variable
// sets produce disjoint variable sets when the prefix counter is fresh.
func TestCompile_PrefixIsolation(t *testing.T) {
	builder.ResetPrefixCounter()
	q1, err := builder.Compile([]string{"a", "b", "c", "d"}, builder.BubbleSort, builder.OneHot, 0, 0)
	require.NoError(t, err)
	q2, err := builder.Compile([]string{"w", "x", "y", "z"}, builder.BubbleSort, builder.OneHot, 0, 0)
	require.NoError(t, err)

	for v := range q1.Variables {
		_, collides := q2.Variables[v]
		assert.False(t, collides, "variable %q leaked across Compile calls", v)
	}
}
