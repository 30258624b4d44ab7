package builder

import "testing"

func TestExactLog2(t *testing.T) {
	cases := map[int]struct {
		log int
		ok  bool
	}{
		1: {0, true}, 2: {1, true}, 4: {2, true}, 8: {3, true},
		0: {0, false}, 3: {0, false}, 5: {0, false}, 6: {0, false},
	}
	for n, want := range cases {
		log, ok := exactLog2(n)
		if ok != want.ok {
			t.Fatalf("exactLog2(%d): ok=%v want %v", n, ok, want.ok)
		}
		if ok && log != want.log {
			t.Fatalf("exactLog2(%d): log=%d want %d", n, log, want.log)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{4, 2, 2}, {5, 2, 3}, {0, 3, 0}, {7, 3, 3},
	}
	for _, c := range cases {
		if got := ceilDiv(c.a, c.b); got != c.want {
			t.Fatalf("ceilDiv(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}
