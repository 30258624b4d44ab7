package builder

import (
	"reflect"
	"testing"
)

// Every wire is touched by at least one comparator, and the classic n=4
// odd-even merge network has exactly 5 comparators.
func TestOddEvenMergeComparators_TouchesEveryWire(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		comparators := oddEvenMergeComparators(n)
		touched := make([]bool, n)
		for _, c := range comparators {
			touched[c.i], touched[c.j] = true, true
		}
		for i, ok := range touched {
			if !ok {
				t.Fatalf("n=%d: wire %d never touched", n, i)
			}
		}
	}
	if got := len(oddEvenMergeComparators(4)); got != 5 {
		t.Fatalf("n=4: len(comparators)=%d want 5", got)
	}
}

func TestOddEvenMergeSortNetwork_RejectsNonPowerOfTwo(t *testing.T) {
	_, err := oddEvenMergeSortNetwork(namedNodes("L", 3), namedNodes("R", 3), newBuilderConfig())
	if err == nil {
		t.Fatal("expected non-power-of-two error")
	}
}

// Unlike every other constructor, OddEvenMergeSort defaults reverse to true
// when the caller never calls WithReverse.
func TestOddEvenMergeSortNetwork_DefaultReverseIsTrue(t *testing.T) {
	n := 4
	noOption, err := oddEvenMergeSortNetwork(namedNodes("L", n), namedNodes("R", n), newBuilderConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	explicitTrue, err := oddEvenMergeSortNetwork(namedNodes("L", n), namedNodes("R", n), newBuilderConfig(WithReverse(true)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(noOption, explicitTrue) {
		t.Fatalf("default should match explicit WithReverse(true): %v != %v", noOption, explicitTrue)
	}
}
