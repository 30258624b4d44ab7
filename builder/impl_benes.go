package builder

import "github.com/qubo-sparse/sparsequbo/core"

// benesNetwork builds a Beneš network via the shared Clos recursion
// template with n pinned to 2: base case N<=2 is a single switch,
// otherwise r is the smallest power of two with 2*r >= N.
// Complexity: O(N log N) switches.
func benesNetwork(left, right []core.VariableNode, _ *builderConfig) ([]core.Switch, error) {
	return closRecursion(core.Names(left), core.Names(right), closHooks{
		implementIfSmall: benesImplementIfSmall,
		determineSizes:   benesDetermineSizes,
	})
}

func benesImplementIfSmall(left, right []string) ([]core.Switch, bool) {
	if maxInt(len(left), len(right)) <= 2 {
		return []core.Switch{core.MustNewSwitch(left, right, 0, 0)}, true
	}
	return nil, false
}

func benesDetermineSizes(nLeft, nRight int) (n, r int) {
	size := maxInt(nLeft, nRight)
	n, r = 2, 1
	for n*r < size {
		r *= 2
	}
	return n, r
}
