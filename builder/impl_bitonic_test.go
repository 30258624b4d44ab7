package builder

import "testing"

// (E6) Bitonic with N=3 (not a power of two) is InvalidParameter before any
// padding logic runs.
func TestBitonicSortNetwork_RejectsNonPowerOfTwo(t *testing.T) {
	_, err := bitonicSortNetwork(namedNodes("L", 3), namedNodes("R", 3), newBuilderConfig())
	if err == nil {
		t.Fatal("expected non-power-of-two error")
	}
}

func TestBitonicSortNetwork_SwitchCount(t *testing.T) {
	n := 8
	out, err := bitonicSortNetwork(namedNodes("L", n), namedNodes("R", n), newBuilderConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logN, _ := exactLog2(n)
	want := n * logN * (logN + 1) / 4
	if len(out) != want {
		t.Fatalf("len(out)=%d want %d", len(out), want)
	}
}

func TestBitonicSortNetwork_ReversePreservesSwitchCount(t *testing.T) {
	n := 4
	fwd, err := bitonicSortNetwork(namedNodes("L", n), namedNodes("R", n), newBuilderConfig(WithReverse(true)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rev, err := bitonicSortNetwork(namedNodes("L", n), namedNodes("R", n), newBuilderConfig(WithReverse(false)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fwd) != len(rev) {
		t.Fatalf("reverse should not change switch count: %d != %d", len(fwd), len(rev))
	}
}
