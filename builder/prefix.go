package builder

import (
	"fmt"
	"sync"

	"github.com/qubo-sparse/sparsequbo/core"
)

// prefixCounter backs the default auxiliary-variable prefix: a
// monotonically increasing "C{n}" per process, so that successive Compile
// calls with disjoint user-variable sets never collide on auxiliary names.
// Guarded by prefixMu since Compile may be called from multiple goroutines.
var (
	prefixMu      sync.Mutex
	prefixCounter int
)

// nextPrefix returns the next "C{n}" prefix and advances the counter.
// Complexity: O(1).
func nextPrefix() string {
	prefixMu.Lock()
	defer prefixMu.Unlock()
	p := fmt.Sprintf("C%d", prefixCounter)
	prefixCounter++
	return p
}

// ResetPrefixCounter returns the package-level auxiliary-prefix counter to
// 0. Exposed solely so tests can make successive Compile calls produce
// reproducible prefixes; production callers ordinarily never need it.
// Complexity: O(1).
func ResetPrefixCounter() {
	prefixMu.Lock()
	defer prefixMu.Unlock()
	prefixCounter = 0
}

// prefixAuxiliaryVariables renames every switch name in switches that is
// not a member of userVariables to "{prefix}_{originalName}", leaving
// user-visible names untouched. This lets several constraints' QUBOs share
// user variables while keeping their auxiliary names disjoint.
// Complexity: O(sum of NumVariables()) time and space.
func prefixAuxiliaryVariables(switches []core.Switch, userVariables map[string]struct{}, prefix string) []core.Switch {
	out := make([]core.Switch, len(switches))
	for i, s := range switches {
		out[i] = core.MustNewSwitch(
			renameIfAuxiliary(s.LeftNames(), userVariables, prefix),
			renameIfAuxiliary(s.RightNames(), userVariables, prefix),
			s.LeftConstant, s.RightConstant,
		)
	}
	return out
}

func renameIfAuxiliary(names []string, userVariables map[string]struct{}, prefix string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if _, isUser := userVariables[n]; isUser {
			out[i] = n
		} else {
			out[i] = prefix + "_" + n
		}
	}
	return out
}
