package builder

import "github.com/qubo-sparse/sparsequbo/core"

// minEdgeEstimate is one memoized size evaluation: the cheapest logical
// quadratic-edge count achievable for a network of that size, and whether
// the naive clique (rather than a further split) achieves it.
type minEdgeEstimate struct {
	edges int
	small bool
}

// minEdgeCoster picks, for each problem size N, whichever of the naive
// clique (N*(2N-1) logical edges) or a Clos split is cheaper in terms of
// the quadratic edges core.Reduce would actually produce, memoizing the
// decision per N. Like maxDegreeCoster, one instance is built fresh per
// closMinEdgeNetwork call so concurrent callers never share mutable state.
type minEdgeCoster struct {
	memo map[int]minEdgeEstimate
}

func newMinEdgeCoster() *minEdgeCoster {
	return &minEdgeCoster{memo: map[int]minEdgeEstimate{
		0: {edges: 0, small: true},
		1: {edges: 0, small: true},
		2: {edges: 6, small: true},
	}}
}

func (c *minEdgeCoster) implementIfSmall(left, right []string) ([]core.Switch, bool) {
	n := maxInt(len(left), len(right))
	if c.estimate(n).small {
		return []core.Switch{core.MustNewSwitch(left, right, 0, 0)}, true
	}
	return nil, false
}

// estimate returns the memoized (edges, small) pair for size n, computing
// it on first request by comparing the clique cost against the best Clos
// split.
func (c *minEdgeCoster) estimate(n int) minEdgeEstimate {
	if v, ok := c.memo[n]; ok {
		return v
	}
	fanIn, r := c.determineSizes(n, n)
	division := c.logicalEdges(n, fanIn, r)
	clique := n * (2*n - 1)
	v := minEdgeEstimate{edges: minInt(clique, division), small: clique <= division}
	c.memo[n] = v
	return v
}

// logicalEdges counts the quadratic edges a Clos split (n=fanIn, r stages)
// of size N would contribute: n copies of the recursively estimated
// middle-stage cost, plus 2*r copies of the dense cost each ingress/egress
// switch contributes (width = its share of N plus its fanIn middle slots).
func (c *minEdgeCoster) logicalEdges(n, fanIn, r int) int {
	interior := c.estimate(r).edges * fanIn
	exterior := 0
	for rIdx := 0; rIdx < r; rIdx++ {
		start := n * rIdx / r
		end := n * (rIdx + 1) / r
		width := end - start + fanIn
		exterior += width * (width - 1) / 2
	}
	return exterior*2 + interior
}

func (c *minEdgeCoster) determineSizes(nLeft, nRight int) (n, r int) {
	size := maxInt(nLeft, nRight)
	bestN, bestR, bestCost := 0, 0, -1
	for candidateN := 2; candidateN < size; candidateN++ {
		candidateR := ceilDiv(size, candidateN)
		cost := c.logicalEdges(size, candidateN, candidateR)
		if bestCost == -1 || cost < bestCost {
			bestN, bestR, bestCost = candidateN, candidateR, cost
		}
	}
	return bestN, bestR
}

// closMinEdgeNetwork builds a Clos network whose split at every size is
// chosen to minimize the logical quadratic-edge count core.Reduce would
// produce, falling back to a single dense switch whenever that is cheaper
// than splitting further.
// Complexity: O(N log N) switches for typical size ranges.
func closMinEdgeNetwork(left, right []core.VariableNode, _ *builderConfig) ([]core.Switch, error) {
	coster := newMinEdgeCoster()
	return closRecursion(core.Names(left), core.Names(right), closHooks{
		implementIfSmall: coster.implementIfSmall,
		determineSizes:   coster.determineSizes,
	})
}
