package builder

import (
	"testing"

	"github.com/qubo-sparse/sparsequbo/core"
)

func TestMaxDegreeCoster_ImplementIfSmall_WithinDegree(t *testing.T) {
	c := newMaxDegreeCoster(4)
	out, ok := c.implementIfSmall([]string{"a", "b", "c"}, []string{"x", "y", "z"})
	if !ok || len(out) != 1 {
		t.Fatalf("ok=%v len=%d want ok=true len=1", ok, len(out))
	}
}

func TestMaxDegreeCoster_ImplementIfSmall_TooBig(t *testing.T) {
	c := newMaxDegreeCoster(2)
	names := namesN("L", 5)
	_, ok := c.implementIfSmall(names, names)
	if ok {
		t.Fatal("expected no short-circuit for N=5 > maxDegree=2")
	}
}

func TestClosMaxDegreeNetwork_Recurses(t *testing.T) {
	left := make([]core.VariableNode, 8)
	right := make([]core.VariableNode, 8)
	for i := range left {
		left[i] = core.VariableNode{Name: namesN("L", 8)[i]}
		right[i] = core.VariableNode{Name: namesN("R", 8)[i]}
	}
	out, err := closMaxDegreeNetwork(left, right, newBuilderConfig(WithMaxDegree(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) <= 1 {
		t.Fatalf("len(out)=%d want >1", len(out))
	}
}
