package core

// Reduce expands a list of switches into a single QUBO. For each switch
// with c = LeftConstant - RightConstant, it expands
// (sum(Left) - sum(Right) + c)^2:
//
//   - every unordered pair inside Left:  +2 to Quadratic[pair]
//   - every unordered pair inside Right: +2 to Quadratic[pair]
//   - every cross pair (l in Left, r in Right): -2 to Quadratic[pair]
//   - every l in Left:  Linear[l] += 2c, then += 1 (since l^2 = l)
//   - every r in Right: Linear[r] -= 2c, then += 1
//   - Constant += c^2
//
// Reduce is total: it cannot fail, and it does not mutate switches. The
// same unordered pair may receive contributions from multiple switches;
// those contributions are summed (Testable Property 4: concatenating two
// switch lists and reducing equals reducing each and summing, because every
// step above is additive into independently-keyed maps).
// Complexity: O(sum over switches of NumVariables()^2) time,
// O(distinct variables + distinct pairs) space.
func Reduce(switches []Switch) QUBO {
	variables := make(map[string]struct{})
	linear := make(map[string]float64)
	quadratic := make(map[Pair]float64)
	var constant float64

	for _, s := range switches {
		c := float64(s.LeftConstant - s.RightConstant)

		left := s.LeftNames()
		right := s.RightNames()
		for _, v := range left {
			variables[v] = struct{}{}
		}
		for _, v := range right {
			variables[v] = struct{}{}
		}

		// Quadratic terms: same-side pairs get +2, cross-side pairs get -2.
		for i := 0; i < len(left); i++ {
			for j := i + 1; j < len(left); j++ {
				quadratic[MakePair(left[i], left[j])] += 2
			}
		}
		for i := 0; i < len(right); i++ {
			for j := i + 1; j < len(right); j++ {
				quadratic[MakePair(right[i], right[j])] += 2
			}
		}
		for _, l := range left {
			for _, r := range right {
				quadratic[MakePair(l, r)] -= 2
			}
		}

		// Linear terms: 2c on left (since the term is (L + c)^2 contribution),
		// -2c on right, plus +1 on every variable from x^2 = x.
		for _, l := range left {
			linear[l] += 2*c + 1
		}
		for _, r := range right {
			linear[r] += -2*c + 1
		}

		constant += c * c
	}

	return QUBO{
		Variables: variables,
		Linear:    linear,
		Quadratic: quadratic,
		Constant:  constant,
	}
}
