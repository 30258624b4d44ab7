package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// bubbleSortNetwork lays N wires out in the standard triangular bubble-sort
// pattern: each wire i carries a chain of freshly named intermediate nodes
// between left[i] and right[i], and a 2-sorter switch connects adjacent
// wire fronts once per round, for (N-1)+(N-2)+...+1 = N(N-1)/2 switches
// total. Of every constructor in this package, this is the only one that
// supports a NOT_CARE right boundary directly: a 2-sorter only ever asserts
// a local permutation, and it is Simplify's job to recognize, from the
// boundary attributes, that the permutation needs to behave as a sorter.
// Complexity: O(N^2) switches and intermediate names.
func bubbleSortNetwork(left, right []core.VariableNode, _ *builderConfig) ([]core.Switch, error) {
	leftNames := core.Names(left)
	rightNames := core.Names(right)
	if len(leftNames) != len(rightNames) {
		return nil, fmt.Errorf("builder.bubbleSortNetwork: left/right length mismatch (%d != %d): %w", len(leftNames), len(rightNames), ErrInvalidParameter)
	}
	return bubbleSortRaw(leftNames, rightNames), nil
}

// bubbleSortRaw is the name-level implementation shared with
// DivideAndConquer's one-hot delegation, which calls it directly on its own
// aux-node names rather than through the VariableNode-typed entry point.
func bubbleSortRaw(leftNames, rightNames []string) []core.Switch {
	n := len(leftNames)
	wire := make([][]string, n)
	for i := 0; i < n; i++ {
		chainLen := n - 2
		if i > 0 {
			chainLen = (n - 1 - i) * 2
		}
		w := make([]string, 0, chainLen+2)
		w = append(w, leftNames[i])
		for j := 0; j < chainLen; j++ {
			w = append(w, fmt.Sprintf("%s_%d_%s", leftNames[i], j, rightNames[i]))
		}
		w = append(w, rightNames[i])
		wire[i] = w
	}

	progress := make([]int, n)
	var out []core.Switch
	rounds := make([]int, 0, 2*n)
	for i := 1; i < n; i++ {
		rounds = append(rounds, i)
	}
	for i := n - 2; i >= 1; i-- {
		rounds = append(rounds, i)
	}
	for _, i := range rounds {
		for j := 0; j < i; j += 2 {
			k1, k2 := i-j, i-j-1
			out = append(out, core.MustNewSwitch(
				[]string{wire[k1][progress[k1]], wire[k2][progress[k2]]},
				[]string{wire[k1][progress[k1]+1], wire[k2][progress[k2]+1]},
				0, 0,
			))
			progress[k1]++
			progress[k2]++
		}
	}
	return out
}
