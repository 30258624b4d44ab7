package core

import (
	"fmt"
	"sort"
)

// Simplify walks raw, a constructor's raw switch list, from right to left,
// folding variables whose value is forced by rightBoundary's attributes
// into constants, and proving infeasibility when the bounds on a switch's
// right-hand sum cannot be met by any assignment of its left variables.
//
// raw is never mutated. The returned slice is in reverse-input order
// unless reverse is true, in which case it is returned in forward
// (original) order, matching the Python ground truth's generate_network
// polarity; this flag controls orientation only, never the set of
// emitted switches.
//
// Stage 1 (scheduling check): s.Right must be a subset of the live
// frontier; otherwise ErrIllFormedNetwork.
// Stage 2 (disjointness check): s.Left must not collide with the live
// frontier; otherwise ErrIllFormedNetwork.
// Stage 3 (bounds computation): derive right_sum_min/max from the
// attributes currently assigned to s.Right.
// Stage 4 (fold): one of four cases — force-one, force-zero, erase, or
// keep-and-fold-constants.
// Complexity: O(sum over switches of (NumVariables() + frontier lookups))
// time, O(frontier size) space.
func Simplify(raw []Switch, rightBoundary []VariableNode, reverse bool) ([]Switch, error) {
	current := make(map[string]struct{}, len(rightBoundary))
	attr := make(map[string]NodeAttribute, len(rightBoundary))
	for _, n := range rightBoundary {
		current[n.Name] = struct{}{}
		attr[n.Name] = n.Attribute
	}

	var out []Switch
	for i := len(raw) - 1; i >= 0; i-- {
		s := raw[i]

		// Stage 1: scheduling check.
		for r := range s.Right {
			if _, ok := current[r]; !ok {
				return nil, fmt.Errorf("core.Simplify: switch %d: right node %q not in frontier: %w", i, r, ErrIllFormedNetwork)
			}
		}
		for r := range s.Right {
			delete(current, r)
		}

		// Stage 2: disjointness check.
		for l := range s.Left {
			if _, ok := current[l]; ok {
				return nil, fmt.Errorf("core.Simplify: switch %d: left node %q collides with frontier: %w", i, l, ErrIllFormedNetwork)
			}
		}
		for l := range s.Left {
			current[l] = struct{}{}
		}

		// Stage 3: bounds computation.
		ones := 0
		nonZero := 0
		for r := range s.Right {
			switch attr[r] {
			case AlwaysOne:
				ones++
				nonZero++
			case AlwaysZero:
				// neither ones nor nonZero
			default:
				nonZero++
			}
		}
		n := len(s.Left)
		rightSumMin := ones + s.RightConstant - s.LeftConstant
		rightSumMax := nonZero + s.RightConstant - s.LeftConstant

		if rightSumMax < 0 || rightSumMin > n {
			return nil, fmt.Errorf("core.Simplify: switch %d: right_sum_max=%d right_sum_min=%d n=%d: %w", i, rightSumMax, rightSumMin, n, ErrInfeasible)
		}

		// Stage 4: fold.
		switch {
		case rightSumMin == n:
			// Every left node must be 1. Iterate in sorted order so the
			// emitted switch order is a deterministic function of the
			// input names, not of map iteration order.
			leftNames := s.LeftNames()
			sort.Strings(leftNames)
			for _, l := range leftNames {
				attr[l] = AlwaysOne
				out = append(out, MustNewSwitch([]string{l}, nil, 0, 1))
			}
		case rightSumMax == 0:
			// Every left node must be 0. Same determinism concern as above.
			leftNames := s.LeftNames()
			sort.Strings(leftNames)
			for _, l := range leftNames {
				attr[l] = AlwaysZero
				out = append(out, MustNewSwitch([]string{l}, nil, 0, 0))
			}
		case allNotCare(s.Right, attr) && rightSumMin <= 0 && rightSumMax >= n:
			// Left nodes are entirely unconstrained; erase.
			for l := range s.Left {
				attr[l] = NotCare
			}
		default:
			// Keep the switch; fold constant (ALWAYS_ZERO/ALWAYS_ONE) right
			// nodes out of R, absorbing ALWAYS_ONE ones into RightConstant.
			for l := range s.Left {
				attr[l] = ZeroOrOne
			}
			newRight := make([]string, 0, len(s.Right))
			onesFolded := 0
			for r := range s.Right {
				switch attr[r] {
				case AlwaysOne:
					onesFolded++
				case AlwaysZero:
					// dropped
				default:
					newRight = append(newRight, r)
				}
			}
			out = append(out, MustNewSwitch(s.LeftNames(), newRight, s.LeftConstant, s.RightConstant+onesFolded))
		}
	}

	// out was built by walking raw back-to-front, so it is naturally in
	// reverse-input order. reverse=false (the common case) asks for exactly
	// that order; reverse=true asks for forward/original order, so undo the
	// reversal.
	if !reverse {
		return out, nil
	}
	forward := make([]Switch, len(out))
	for i, s := range out {
		forward[len(out)-1-i] = s
	}
	return forward, nil
}

func allNotCare(nodes map[string]struct{}, attr map[string]NodeAttribute) bool {
	for n := range nodes {
		if attr[n] != NotCare {
			return false
		}
	}
	return true
}
