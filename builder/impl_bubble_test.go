package builder

import (
	"testing"

	"github.com/qubo-sparse/sparsequbo/core"
)

func namedNodes(prefix string, n int) []core.VariableNode {
	out := make([]core.VariableNode, n)
	for i, name := range namesN(prefix, n) {
		out[i] = core.VariableNode{Name: name}
	}
	return out
}

// Bubble-sort emits exactly N(N-1)/2 switches: a triangular network.
func TestBubbleSortRaw_SwitchCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8} {
		out := bubbleSortRaw(namesN("L", n), namesN("R", n))
		want := n * (n - 1) / 2
		if len(out) != want {
			t.Fatalf("N=%d: len(out)=%d want %d", n, len(out), want)
		}
	}
}

func TestBubbleSortNetwork_LengthMismatch(t *testing.T) {
	_, err := bubbleSortNetwork(namedNodes("L", 3), namedNodes("R", 4), newBuilderConfig())
	if err == nil {
		t.Fatal("expected length-mismatch error")
	}
}
