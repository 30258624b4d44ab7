package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubo-sparse/sparsequbo/matrix"
)

func TestNewDense_RejectsNonPositive(t *testing.T) {
	_, err := matrix.NewDense(0)
	assert.True(t, errors.Is(err, matrix.ErrInvalidDimensions))
	_, err = matrix.NewDense(-1)
	assert.True(t, errors.Is(err, matrix.ErrInvalidDimensions))
}

func TestDense_AtSet_RoundTrip(t *testing.T) {
	d, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 2, 4.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

func TestDense_At_OutOfBounds(t *testing.T) {
	d, err := matrix.NewDense(2)
	require.NoError(t, err)
	_, err = d.At(2, 0)
	assert.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))
	_, err = d.At(0, -1)
	assert.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))
}

func TestDense_Clone_Independent(t *testing.T) {
	d, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1))
	clone := d.Clone()
	require.NoError(t, clone.Set(0, 0, 9))

	original, _ := d.At(0, 0)
	assert.Equal(t, 1.0, original)
}
