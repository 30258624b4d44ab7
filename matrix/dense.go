// Package matrix provides a dense, row-major view of a QUBO's coefficients,
// for callers that hand a penalty function to a solver expecting a plain
// symmetric matrix rather than a sparse variable/pair map.
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square matrix of float64 values.
// n is the dimension, and data holds n*n elements in row-major order.
type Dense struct {
	n    int       // dimension (rows == cols)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(n^2) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Rows returns the matrix dimension.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.n
}

// Cols returns the matrix dimension (Dense is always square).
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the Dense matrix. Callers mutating a penalty
// matrix returned by FromQUBO (e.g. adding another constraint's terms) clone
// first so the original QUBO's coefficients are left untouched.
// Complexity: O(n^2) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{n: m.n, data: data}
}

// String implements fmt.Stringer for easy debugging. FromQUBO splits each
// pair coefficient across (i,j) and (j,i), so a correctly built penalty
// matrix always prints symmetric about its diagonal.
// Complexity: O(n^2).
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.n; i++ {
		s += "["
		for j := 0; j < m.n; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.n+j])
			if j < m.n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
