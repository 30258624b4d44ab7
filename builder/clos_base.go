package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// closHooks parameterizes the recursive Clos/Beneš construction template
// shared by Benes, ClosMaxDegree, and ClosMinEdge: implementIfSmall lets a
// family short-circuit the recursion with a single switch (or report it
// isn't small enough to), and determineSizes picks the (n, r) split for a
// given problem size.
type closHooks struct {
	implementIfSmall func(left, right []string) ([]core.Switch, bool)
	determineSizes   func(nLeft, nRight int) (n, r int)
}

// closRecursion builds a three-stage Clos network: r ingress switches
// fanning left names out to n*r freshly named middle-stage nodes, a
// recursive middle-stage subnetwork of size r repeated n times (once per
// "slot"), and r egress switches fanning back in to the right names.
// Complexity: O(n*r) switches per level, O(log N) levels.
func closRecursion(leftNames, rightNames []string, hooks closHooks) ([]core.Switch, error) {
	if small, ok := hooks.implementIfSmall(leftNames, rightNames); ok {
		return small, nil
	}

	leftSize, rightSize := len(leftNames), len(rightNames)
	n, r := hooks.determineSizes(leftSize, rightSize)
	middleSize := n * r
	if maxInt(leftSize, rightSize) > middleSize {
		return nil, fmt.Errorf("builder.closRecursion: switch size %d too small for max(%d,%d): %w", middleSize, leftSize, rightSize, ErrInvalidParameter)
	}

	ingressSwitches := make([]core.Switch, 0, r)
	ingressNodes := make([]string, middleSize)
	for ri := 0; ri < r; ri++ {
		leftStart := ri * leftSize / r
		leftEnd := (ri + 1) * leftSize / r
		midStart := n * ri
		midEnd := n * (ri + 1)

		mid := make([]string, 0, midEnd-midStart)
		for k := midStart; k < midEnd; k++ {
			src := leftNames[minInt(k, leftEnd-1)]
			name := fmt.Sprintf("%s_%d", src, k)
			mid = append(mid, name)
			ingressNodes[k] = name
		}
		ingressSwitches = append(ingressSwitches, core.MustNewSwitch(leftNames[leftStart:leftEnd], mid, 0, 0))
	}

	egressSwitches := make([]core.Switch, 0, r)
	egressNodes := make([]string, middleSize)
	for ri := 0; ri < r; ri++ {
		rightStart := ri * rightSize / r
		rightEnd := (ri + 1) * rightSize / r
		midStart := n * ri
		midEnd := n * (ri + 1)

		mid := make([]string, 0, midEnd-midStart)
		for k := midStart; k < midEnd; k++ {
			src := rightNames[minInt(k, rightEnd-1)]
			name := fmt.Sprintf("%s_%d", src, k)
			mid = append(mid, name)
			egressNodes[k] = name
		}
		egressSwitches = append(egressSwitches, core.MustNewSwitch(mid, rightNames[rightStart:rightEnd], 0, 0))
	}

	var middleSwitches []core.Switch
	for slot := 0; slot < n; slot++ {
		subLeft := stride(ingressNodes, slot, n)
		subRight := stride(egressNodes, slot, n)
		sub, err := closRecursion(subLeft, subRight, hooks)
		if err != nil {
			return nil, err
		}
		middleSwitches = append(middleSwitches, sub...)
	}

	out := make([]core.Switch, 0, len(ingressSwitches)+len(middleSwitches)+len(egressSwitches))
	out = append(out, ingressSwitches...)
	out = append(out, middleSwitches...)
	out = append(out, egressSwitches...)
	return out, nil
}

// stride returns values[start], values[start+step], values[start+2*step], ...
func stride(values []string, start, step int) []string {
	out := make([]string, 0, (len(values)-start+step-1)/step)
	for i := start; i < len(values); i += step {
		out = append(out, values[i])
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
