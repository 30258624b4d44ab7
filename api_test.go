package sparsequbo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sparsequbo "github.com/qubo-sparse/sparsequbo"
)

func TestCompile_FacadeMatchesBuilder(t *testing.T) {
	sparsequbo.ResetPrefixCounter()
	q, err := sparsequbo.Compile([]string{"a", "b", "c"}, sparsequbo.DivideAndConquer, sparsequbo.OneHot, 0, 0)
	require.NoError(t, err)
	assert.Contains(t, q.Variables, "a")
	assert.Contains(t, q.Variables, "b")
	assert.Contains(t, q.Variables, "c")
}

func TestBuildSwitches_ThenReduce_MatchesCompile(t *testing.T) {
	sparsequbo.ResetPrefixCounter()
	switches, err := sparsequbo.BuildSwitches([]string{"x", "y"}, sparsequbo.BubbleSort, sparsequbo.EqualTo, 1, 0)
	require.NoError(t, err)

	sparsequbo.ResetPrefixCounter()
	want, err := sparsequbo.Compile([]string{"x", "y"}, sparsequbo.BubbleSort, sparsequbo.EqualTo, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, want, sparsequbo.Reduce(switches))
}
