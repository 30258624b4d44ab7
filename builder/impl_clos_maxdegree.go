package builder

import (
	"strconv"

	"github.com/qubo-sparse/sparsequbo/core"
)

// maxDegreeCoster picks, for each problem size N, the split (n, r) with
// n in [2, maxDegree] minimizing a recursively evaluated switch count
// cost(N) = 2r + n*cost(r), memoizing per N. One coster is built fresh per
// closMaxDegreeNetwork call (scoped to cfg.maxDegree) rather than shared
// across calls, so concurrent callers with different maxDegree values
// never race on or corrupt each other's memo.
type maxDegreeCoster struct {
	maxDegree int
	memo      map[int]int
}

func newMaxDegreeCoster(maxDegree int) *maxDegreeCoster {
	return &maxDegreeCoster{maxDegree: maxDegree, memo: make(map[int]int)}
}

// implementIfSmall reports a single dense switch when maxDegree >= N; the
// original implementation's intermediate "adhoc" case (max_degree < N <
// 1.5*max_degree) never returns a usable network, so it is treated here,
// as there, as no short-circuit at all.
func (c *maxDegreeCoster) implementIfSmall(left, right []string) ([]core.Switch, bool) {
	n := maxInt(len(left), len(right))
	if c.maxDegree >= n {
		return []core.Switch{core.MustNewSwitch(left, right, 0, 0)}, true
	}
	return nil, false
}

// cost returns the memoized switch count for a network of size N.
func (c *maxDegreeCoster) cost(n int) int {
	if v, ok := c.memo[n]; ok {
		return v
	}
	var v int
	if small, ok := c.implementIfSmall(namesN("L", n), namesN("R", n)); ok {
		v = len(small)
	} else {
		nOpt, rOpt := c.determineSizes(n, n)
		v = c.numElements(n, nOpt, rOpt)
	}
	c.memo[n] = v
	return v
}

func (c *maxDegreeCoster) numElements(n, fanIn, r int) int {
	return 2*r + fanIn*c.cost(r)
}

func (c *maxDegreeCoster) determineSizes(nLeft, nRight int) (n, r int) {
	size := maxInt(nLeft, nRight)
	bestN, bestR, bestCost := 0, 0, -1
	for candidateN := 2; candidateN <= c.maxDegree; candidateN++ {
		candidateR := ceilDiv(size, candidateN)
		cost := c.numElements(size, candidateN, candidateR)
		if bestCost == -1 || cost < bestCost {
			bestN, bestR, bestCost = candidateN, candidateR, cost
		}
	}
	return bestN, bestR
}

// namesN synthesizes n placeholder names "{prefix}0".."{prefix}(n-1)",
// used only to probe implementIfSmall's size-based decision during cost
// estimation, never emitted into a real network.
func namesN(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i)
	}
	return out
}

// closMaxDegreeNetwork builds a Clos network whose fan-in n at every level
// is chosen, per size, to minimize total switch count, searching
// n in [2, cfg.maxDegree].
// Complexity: O(N log N) switches for typical maxDegree choices.
func closMaxDegreeNetwork(left, right []core.VariableNode, cfg *builderConfig) ([]core.Switch, error) {
	coster := newMaxDegreeCoster(cfg.maxDegree)
	return closRecursion(core.Names(left), core.Names(right), closHooks{
		implementIfSmall: coster.implementIfSmall,
		determineSizes:   coster.determineSizes,
	})
}
