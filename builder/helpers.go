package builder

import "github.com/qubo-sparse/sparsequbo/core"

// exactLog2 reports (log2(n), true) if n is an exact power of two, else
// (0, false).
func exactLog2(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	log := 0
	for p := 1; p < n; p *= 2 {
		log++
	}
	if 1<<uint(log) != n {
		return 0, false
	}
	return log, true
}

// reverseSwitches reverses s in place.
func reverseSwitches(s []core.Switch) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ceilDiv computes ceil(a/b) for non-negative a and positive b without
// floating point.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
