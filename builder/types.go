package builder

import "fmt"

// NetworkType selects which switching-network family realizes a constraint.
type NetworkType int

const (
	Naive NetworkType = iota
	BubbleSort
	BitonicSort
	OddEvenMergeSort
	Benes
	ClosMaxDegree
	ClosMinEdge
	DivideAndConquer
)

// String renders a NetworkType using its canonical name, for error messages.
func (n NetworkType) String() string {
	switch n {
	case Naive:
		return "NAIVE"
	case BubbleSort:
		return "BUBBLE_SORT"
	case BitonicSort:
		return "BITONIC_SORT"
	case OddEvenMergeSort:
		return "ODDEVEN_MERGE_SORT"
	case Benes:
		return "BENES"
	case ClosMaxDegree:
		return "CLOS_NETWORK_MAX_DEGREE"
	case ClosMinEdge:
		return "CLOS_NETWORK_MIN_EDGE"
	case DivideAndConquer:
		return "DIVIDE_AND_CONQUER"
	default:
		return fmt.Sprintf("NetworkType(%d)", int(n))
	}
}

// ConstraintType selects which boundary-attribute pattern InitialNodes
// builds for the right boundary.
type ConstraintType int

const (
	OneHot ConstraintType = iota
	EqualTo
	LessEqual
	GreaterEqual
	Clamp
)

// String renders a ConstraintType using its canonical name, for error
// messages.
func (c ConstraintType) String() string {
	switch c {
	case OneHot:
		return "ONE_HOT"
	case EqualTo:
		return "EQUAL_TO"
	case LessEqual:
		return "LESS_EQUAL"
	case GreaterEqual:
		return "GREATER_EQUAL"
	case Clamp:
		return "CLAMP"
	default:
		return fmt.Sprintf("ConstraintType(%d)", int(c))
	}
}

// supported reports whether network can realize kind. Every constructor but
// DivideAndConquer handles the full attribute algebra (ALWAYS_ZERO,
// ALWAYS_ONE, NOT_CARE, ZERO_OR_ONE), since they reduce to a generic
// permutation and let Simplify fold whatever attributes the boundary
// carries. DivideAndConquer's recursion only knows how to route ALWAYS_ZERO
// and ALWAYS_ONE nodes, so it rejects the two constraint kinds whose right
// boundary can carry NOT_CARE (LessEqual, GreaterEqual) and the one that can
// carry both NOT_CARE and ZERO/ONE in the same boundary (Clamp).
func supported(network NetworkType, kind ConstraintType) bool {
	if network != DivideAndConquer {
		return true
	}
	switch kind {
	case LessEqual, GreaterEqual, Clamp:
		return false
	default:
		return true
	}
}
