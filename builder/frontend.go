package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// InitialNodes maps a ConstraintType over user variables into the left and
// right boundary VariableNode lists a network constructor consumes. If pad
// is true and len(variables) > 0, both boundaries are padded up to the
// next power of two with ALWAYS_ZERO nodes named L0, L1, ... / R0, R1, ...;
// padding is required by BitonicSort and OddEvenMergeSort.
//
// c1 and c2 carry the constraint's parameter(s): EqualTo and GreaterEqual
// and LessEqual read c1 (c2 is ignored); Clamp reads c1 as its lower bound
// and c2 as its upper bound; OneHot reads neither.
// Complexity: O(len(variables)) time and space.
func InitialNodes(variables []string, kind ConstraintType, c1, c2 int, pad bool) (left, right []core.VariableNode, err error) {
	n := len(variables)
	targetSize := n
	if pad && n > 0 {
		targetSize = nextPowerOfTwo(n)
	}
	padLen := targetSize - n

	if err := validateConstraintParams(kind, n, c1, c2); err != nil {
		return nil, nil, err
	}

	left = make([]core.VariableNode, 0, targetSize)
	for i := 0; i < padLen; i++ {
		left = append(left, core.VariableNode{Name: fmt.Sprintf("L%d", i), Attribute: core.AlwaysZero})
	}
	for _, v := range variables {
		left = append(left, core.VariableNode{Name: v, Attribute: core.ZeroOrOne})
	}

	right = make([]core.VariableNode, 0, targetSize)
	for i := 0; i < padLen; i++ {
		right = append(right, core.VariableNode{Name: fmt.Sprintf("R%d", i), Attribute: core.AlwaysZero})
	}
	for i := 0; i < n; i++ {
		right = append(right, core.VariableNode{
			Name:      fmt.Sprintf("R_%d", padLen+i),
			Attribute: rightAttribute(kind, i, n, c1, c2),
		})
	}
	return left, right, nil
}

// validateConstraintParams enforces §4.2's parameter range conditions,
// returning ErrInvalidParameter with the failing condition named.
func validateConstraintParams(kind ConstraintType, n, c1, c2 int) error {
	switch kind {
	case OneHot:
		return nil
	case EqualTo:
		if c1 < 0 || c1 > n {
			return fmt.Errorf("builder.InitialNodes: EqualTo: c1=%d out of [0,%d]: %w", c1, n, ErrInvalidParameter)
		}
	case LessEqual:
		if c1 <= 0 || c1 > n {
			return fmt.Errorf("builder.InitialNodes: LessEqual: c1=%d out of (0,%d]: %w", c1, n, ErrInvalidParameter)
		}
	case GreaterEqual:
		if c1 < 0 || c1 >= n {
			return fmt.Errorf("builder.InitialNodes: GreaterEqual: c1=%d out of [0,%d): %w", c1, n, ErrInvalidParameter)
		}
	case Clamp:
		if c1 < 0 || c1 > c2 || c2 > n {
			return fmt.Errorf("builder.InitialNodes: Clamp: c1=%d c2=%d out of 0<=c1<=c2<=%d: %w", c1, c2, n, ErrInvalidParameter)
		}
	default:
		return fmt.Errorf("builder.InitialNodes: unknown constraint kind %v: %w", kind, ErrInvalidParameter)
	}
	return nil
}

// rightAttribute implements §4.2's per-kind attribute table for the right
// boundary node at index i in [0, n).
func rightAttribute(kind ConstraintType, i, n, c1, c2 int) core.NodeAttribute {
	switch kind {
	case OneHot:
		if i < n-1 {
			return core.AlwaysZero
		}
		return core.AlwaysOne
	case EqualTo:
		if i < n-c1 {
			return core.AlwaysZero
		}
		return core.AlwaysOne
	case LessEqual:
		if i < n-c1 {
			return core.AlwaysZero
		}
		return core.NotCare
	case GreaterEqual:
		if i < n-c1 {
			return core.NotCare
		}
		return core.AlwaysOne
	case Clamp:
		if i < n-c2 {
			return core.AlwaysZero
		}
		if i < n-c1 {
			return core.NotCare
		}
		return core.AlwaysOne
	default:
		return core.NotCare
	}
}

// nextPowerOfTwo returns the smallest power of two >= n, for n > 0.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
