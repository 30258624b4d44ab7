package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// bitonicSortNetwork realizes Batcher's bitonic sorter for N a power of
// two: N*log2(N)*(log2(N)+1)/4 2-sorter switches arranged in
// log2(N)*(log2(N)+1)/2 columns of N/2 switches each. reverse swaps which boundary ("left" or "right") the
// construction walks from first; the emitted switch set is the mirror
// image either way, and core.Simplify receives the same reverse value so
// its own orientation matches.
// Complexity: O(N log^2 N) switches and intermediate names.
func bitonicSortNetwork(left, right []core.VariableNode, cfg *builderConfig) ([]core.Switch, error) {
	leftNames := core.Names(left)
	rightNames := core.Names(right)
	if len(leftNames) != len(rightNames) {
		return nil, fmt.Errorf("builder.bitonicSortNetwork: left/right length mismatch (%d != %d): %w", len(leftNames), len(rightNames), ErrInvalidParameter)
	}
	n := len(leftNames)
	logN, ok := exactLog2(n)
	if !ok {
		return nil, fmt.Errorf("builder.bitonicSortNetwork: N=%d is not a power of two: %w", n, ErrInvalidParameter)
	}

	reverse := cfg.effectiveReverse(false)
	workLeft, workRight := leftNames, rightNames
	if !reverse {
		workLeft, workRight = rightNames, leftNames
	}

	chainLen := logN*(logN+1)/2 - 1
	wire := make([][]string, n)
	for i := 0; i < n; i++ {
		w := make([]string, 0, chainLen+2)
		w = append(w, workLeft[i])
		for j := 0; j < chainLen; j++ {
			w = append(w, fmt.Sprintf("%s_%d_%s", workLeft[i], j, workRight[i]))
		}
		w = append(w, workRight[i])
		wire[i] = w
	}

	progress := make([]int, n)
	var out []core.Switch
	for mMax := logN - 1; mMax >= 0; mMax-- {
		for m := 0; m <= mMax; m++ {
			M := 1 << uint(m)
			for i := 0; i < n; i++ {
				if (i/M)%2 != 0 {
					continue
				}
				if reverse {
					out = append(out, core.MustNewSwitch(
						[]string{wire[i][progress[i]], wire[i+M][progress[i+M]]},
						[]string{wire[i][progress[i]+1], wire[i+M][progress[i+M]+1]},
						0, 0,
					))
				} else {
					out = append(out, core.MustNewSwitch(
						[]string{wire[i][progress[i]+1], wire[i+M][progress[i+M]+1]},
						[]string{wire[i][progress[i]], wire[i+M][progress[i+M]]},
						0, 0,
					))
				}
				progress[i]++
				progress[i+M]++
			}
		}
	}
	if !reverse {
		reverseSwitches(out)
	}
	return out, nil
}
