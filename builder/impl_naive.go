package builder

import "github.com/qubo-sparse/sparsequbo/core"

// naiveNetwork emits the baseline dense encoding: one switch spanning every
// left name and every right name, with no internal structure at all. This
// is the O(N^2) reference every other family is sparser than.
// Complexity: O(1) switches, O(N) variables.
func naiveNetwork(left, right []core.VariableNode, _ *builderConfig) ([]core.Switch, error) {
	s := core.MustNewSwitch(core.Names(left), core.Names(right), 0, 0)
	return []core.Switch{s}, nil
}
