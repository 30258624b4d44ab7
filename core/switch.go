package core

import "fmt"

// Switch encodes the local equality constraint
//
//	sum(Left) + LeftConstant == sum(Right) + RightConstant
//
// Reduce turns a list of Switch values into the QUBO penalty
// (sum(Left) + LeftConstant - sum(Right) - RightConstant)^2 per switch,
// summed over the list. Switch is immutable once built by NewSwitch; the
// invariant Left ∩ Right = ∅ is validated there and nowhere else.
type Switch struct {
	Left, Right                 map[string]struct{}
	LeftConstant, RightConstant int
}

// NewSwitch builds a Switch from left/right name slices and constants,
// validating that no name appears on both sides.
// Stage 1 (Validate): check Left ∩ Right = ∅.
// Stage 2 (Execute): copy names into sets.
// Stage 3 (Finalize): return the immutable Switch.
// Complexity: O(len(left)+len(right)) time and space.
func NewSwitch(left, right []string, leftConstant, rightConstant int) (Switch, error) {
	leftSet := make(map[string]struct{}, len(left))
	for _, n := range left {
		leftSet[n] = struct{}{}
	}
	rightSet := make(map[string]struct{}, len(right))
	for _, n := range right {
		if _, dup := leftSet[n]; dup {
			return Switch{}, fmt.Errorf("core.NewSwitch(%q): %w", n, ErrDuplicateVariable)
		}
		rightSet[n] = struct{}{}
	}
	return Switch{
		Left:          leftSet,
		Right:         rightSet,
		LeftConstant:  leftConstant,
		RightConstant: rightConstant,
	}, nil
}

// MustNewSwitch is NewSwitch but panics on error; reserved for constructors
// that build switches from names already known, by invariant, to be
// disjoint (e.g. distinct freshly synthesized internal names). Never call
// this with caller-supplied or recursively computed names that have not
// already been checked.
func MustNewSwitch(left, right []string, leftConstant, rightConstant int) Switch {
	s, err := NewSwitch(left, right, leftConstant, rightConstant)
	if err != nil {
		panic(err)
	}
	return s
}

// LeftNames returns the left-side variable names in no particular order.
// Complexity: O(len(Left)).
func (s Switch) LeftNames() []string {
	return keys(s.Left)
}

// RightNames returns the right-side variable names in no particular order.
// Complexity: O(len(Right)).
func (s Switch) RightNames() []string {
	return keys(s.Right)
}

// NumVariables returns len(Left)+len(Right).
func (s Switch) NumVariables() int {
	return len(s.Left) + len(s.Right)
}

// NumEdges returns the number of quadratic terms this switch alone would
// contribute if reduced in isolation: C(NumVariables, 2).
func (s Switch) NumEdges() int {
	n := s.NumVariables()
	return n * (n - 1) / 2
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
