package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// comparator is one compare-exchange of Batcher's odd-even merge network,
// in execution order: wire i is compared against wire j, i < j.
type comparator struct{ i, j int }

// oddEvenMergeComparators returns the classic recursive odd-even merge
// sort network (Batcher 1968) for n wires, n a power of two, in execution
// order.
func oddEvenMergeComparators(n int) []comparator {
	var comparators []comparator
	var sort func(lo, size int)
	var merge func(lo, size, step int)
	sort = func(lo, size int) {
		if size <= 1 {
			return
		}
		m := size / 2
		sort(lo, m)
		sort(lo+m, m)
		merge(lo, size, 1)
	}
	merge = func(lo, size, step int) {
		m := step * 2
		if m < size {
			merge(lo, size, m)
			merge(lo+step, size, m)
			for i := lo + step; i+step < lo+size; i += m {
				comparators = append(comparators, comparator{i, i + step})
			}
		} else {
			comparators = append(comparators, comparator{lo, lo + step})
		}
	}
	sort(0, n)
	return comparators
}

// oddEvenMergeSortNetwork realizes Batcher's odd-even merge sort for N a
// power of two, using the same wire count as BitonicSort but a different
// comparator order. Unlike every other constructor, its reverse flag
// defaults to true rather than false when the caller never calls
// WithReverse, to keep its ground-state orientation consistent with how
// its comparator recursion numbers wires.
// Complexity: O(N log^2 N) switches and intermediate names.
func oddEvenMergeSortNetwork(left, right []core.VariableNode, cfg *builderConfig) ([]core.Switch, error) {
	leftNames := core.Names(left)
	rightNames := core.Names(right)
	if len(leftNames) != len(rightNames) {
		return nil, fmt.Errorf("builder.oddEvenMergeSortNetwork: left/right length mismatch (%d != %d): %w", len(leftNames), len(rightNames), ErrInvalidParameter)
	}
	n := len(leftNames)
	if _, ok := exactLog2(n); !ok {
		return nil, fmt.Errorf("builder.oddEvenMergeSortNetwork: N=%d is not a power of two: %w", n, ErrInvalidParameter)
	}

	comparators := oddEvenMergeComparators(n)
	touches := make([]int, n)
	for _, c := range comparators {
		touches[c.i]++
		touches[c.j]++
	}

	reverse := cfg.effectiveReverse(true)
	workLeft, workRight := leftNames, rightNames
	if !reverse {
		workLeft, workRight = rightNames, leftNames
	}

	wire := make([][]string, n)
	for i := 0; i < n; i++ {
		w := make([]string, 0, touches[i]+1)
		w = append(w, workLeft[i])
		for j := 0; j < touches[i]-1; j++ {
			w = append(w, fmt.Sprintf("%s_%d_%s", workLeft[i], j, workRight[i]))
		}
		w = append(w, workRight[i])
		wire[i] = w
	}

	progress := make([]int, n)
	out := make([]core.Switch, 0, len(comparators))
	for _, c := range comparators {
		i, j := c.i, c.j
		if reverse {
			out = append(out, core.MustNewSwitch(
				[]string{wire[i][progress[i]], wire[j][progress[j]]},
				[]string{wire[i][progress[i]+1], wire[j][progress[j]+1]},
				0, 0,
			))
		} else {
			out = append(out, core.MustNewSwitch(
				[]string{wire[i][progress[i]+1], wire[j][progress[j]+1]},
				[]string{wire[i][progress[i]], wire[j][progress[j]]},
				0, 0,
			))
		}
		progress[i]++
		progress[j]++
	}
	if !reverse {
		reverseSwitches(out)
	}
	return out, nil
}
