package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qubo-sparse/sparsequbo/core"
)

func TestLeftRightNodeIndex(t *testing.T) {
	switches := []core.Switch{
		core.MustNewSwitch([]string{"L0", "L1"}, []string{"M0"}, 0, 0),
		core.MustNewSwitch([]string{"M0"}, []string{"R0"}, 0, 0),
	}
	left := core.LeftNodeIndex(switches)
	right := core.RightNodeIndex(switches)

	assert.Equal(t, 0, left["L0"])
	assert.Equal(t, 0, left["L1"])
	assert.Equal(t, 1, left["M0"])
	assert.Equal(t, 0, right["M0"])
	assert.Equal(t, 1, right["R0"])
}

func TestLayerStructure_ChainsForward(t *testing.T) {
	switches := []core.Switch{
		core.MustNewSwitch([]string{"L0"}, []string{"M0"}, 0, 0),
		core.MustNewSwitch([]string{"M0"}, []string{"R0"}, 0, 0),
	}
	layers := core.LayerStructure(switches)

	assert.Equal(t, []int{0}, layers[0])
	assert.Equal(t, []int{1}, layers[1])
}

func TestLayerStructure_IgnoresNonBoundaryOrphans(t *testing.T) {
	// A switch whose left name isn't boundary-shaped ("L<n>") and is never
	// reached from a boundary switch contributes no layer.
	switches := []core.Switch{
		core.MustNewSwitch([]string{"aux0"}, []string{"R0"}, 0, 0),
	}
	layers := core.LayerStructure(switches)
	assert.Empty(t, layers)
}
