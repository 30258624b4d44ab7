package builder

import (
	"fmt"

	"github.com/qubo-sparse/sparsequbo/core"
)

// divideAndConquerNetwork recursively splits the left boundary in half,
// routing each half toward whichever share of the right boundary's
// ALWAYS_ONE/ALWAYS_ZERO nodes it is responsible for, until a block
// degenerates into a single constant, a one-hot pattern (delegated to
// bubbleSortRaw), or cfg.threshold is reached (collapsed to one dense
// switch). The right boundary must consist only of ALWAYS_ZERO and
// ALWAYS_ONE nodes and the left boundary only of ZERO_OR_ONE nodes; NOT_CARE
// and ZERO_OR_ONE right nodes are rejected; see types.go's supported table
// for which ConstraintTypes this rules out (LessEqual, GreaterEqual, Clamp,
// all of which can carry a NOT_CARE right boundary).
// Complexity: O(N log N) switches.
func divideAndConquerNetwork(left, right []core.VariableNode, cfg *builderConfig) ([]core.Switch, error) {
	return divideAndConquerRecurse(left, right, cfg.threshold)
}

func divideAndConquerRecurse(leftNodes, rightNodes []core.VariableNode, threshold *int) ([]core.Switch, error) {
	if len(leftNodes) != len(rightNodes) {
		return nil, fmt.Errorf("builder.divideAndConquerNetwork: left/right length mismatch (%d != %d): %w", len(leftNodes), len(rightNodes), ErrInvalidParameter)
	}
	n := len(leftNodes)

	var alwaysZero, alwaysOne []core.VariableNode
	for _, node := range rightNodes {
		switch node.Attribute {
		case core.AlwaysZero:
			alwaysZero = append(alwaysZero, node)
		case core.AlwaysOne:
			alwaysOne = append(alwaysOne, node)
		default:
			return nil, fmt.Errorf("builder.divideAndConquerNetwork: right node %q has attribute %v, only ALWAYS_ZERO/ALWAYS_ONE are supported: %w", node.Name, node.Attribute, ErrInvalidParameter)
		}
	}
	if len(alwaysZero)+len(alwaysOne) != n {
		return nil, fmt.Errorf("builder.divideAndConquerNetwork: right boundary must consist only of ALWAYS_ZERO and ALWAYS_ONE nodes: %w", ErrInvalidParameter)
	}
	for _, node := range leftNodes {
		if node.Attribute != core.ZeroOrOne {
			return nil, fmt.Errorf("builder.divideAndConquerNetwork: left node %q has attribute %v, must be ZERO_OR_ONE: %w", node.Name, node.Attribute, ErrInvalidParameter)
		}
	}

	if len(alwaysZero) == n || len(alwaysOne) == n {
		out := make([]core.Switch, n)
		for i := range leftNodes {
			out[i] = core.MustNewSwitch([]string{leftNodes[i].Name}, []string{rightNodes[i].Name}, 0, 0)
		}
		return out, nil
	}

	if len(alwaysOne) == 1 {
		return bubbleSortRaw(core.Names(leftNodes), core.Names(append(append([]core.VariableNode{}, alwaysZero...), alwaysOne...))), nil
	}
	if len(alwaysZero) == 1 {
		return bubbleSortRaw(core.Names(leftNodes), core.Names(append(append([]core.VariableNode{}, alwaysOne...), alwaysZero...))), nil
	}

	if threshold != nil && n <= *threshold {
		return []core.Switch{core.MustNewSwitch(core.Names(leftNodes), core.Names(rightNodes), 0, 0)}, nil
	}

	half := ceilDiv(n, 2)
	auxNodes := make([]core.VariableNode, n)
	for idx, leftNode := range leftNodes {
		auxNodes[idx] = core.VariableNode{Name: fmt.Sprintf("%s_%d", leftNode.Name, idx), Attribute: core.ZeroOrOne}
	}

	var out []core.Switch
	for i := 0; i < n/2; i++ {
		out = append(out, core.MustNewSwitch(
			[]string{leftNodes[i].Name, leftNodes[i+half].Name},
			[]string{auxNodes[i].Name, auxNodes[i+half].Name},
			0, 0,
		))
	}
	if n%2 == 1 {
		auxNodes[n/2] = leftNodes[n/2]
	}

	oneSplit := ceilDiv(len(alwaysOne), 2)
	zeroSplit := half - oneSplit

	topRight := append(append([]core.VariableNode{}, alwaysOne[:oneSplit]...), alwaysZero[:zeroSplit]...)
	top, err := divideAndConquerRecurse(auxNodes[:half], topRight, threshold)
	if err != nil {
		return nil, err
	}
	out = append(out, top...)

	bottomRight := append(append([]core.VariableNode{}, alwaysOne[oneSplit:]...), alwaysZero[zeroSplit:]...)
	bottom, err := divideAndConquerRecurse(auxNodes[half:], bottomRight, threshold)
	if err != nil {
		return nil, err
	}
	out = append(out, bottom...)

	return out, nil
}
