package builder

// defaultMaxDegree is the fan-in ClosMaxDegree searches up to when the
// caller does not override it with WithMaxDegree.
const defaultMaxDegree = 4

// Option customizes how Compile builds and simplifies a network. It
// mutates a builderConfig before the network constructor runs.
//
// As a rule, option constructors never panic at runtime and ignore values
// that would leave the config in an invalid state.
type Option func(cfg *builderConfig)

// builderConfig holds every knob a network constructor or the
// simplification driver consults:
//   - threshold: DivideAndConquer's cutoff to the naive encoding for small
//     blocks; nil means never cut off early.
//   - reverse:    passed straight through to core.Simplify and to every
//     constructor that has its own left/right orientation flag
//     (BitonicSort, OddEvenMergeSort).
//   - reverseSet: records whether WithReverse was actually called, so
//     OddEvenMergeSort can fall back to its own default of true when the
//     caller never asked for a specific orientation, while every other
//     constructor falls back to false.
//   - prefix:    overrides the auxiliary-variable prefix Compile would
//     otherwise draw from the package-level counter (see prefix.go).
//   - maxDegree: ClosMaxDegree's maximum fan-in to search over.
//   - pad:       whether InitialNodes should pad the boundary up to the
//     next power of two. Off by default, matching the front-end's own
//     "optional flag"; BitonicSort and OddEvenMergeSort reject any N that
//     isn't already a power of two unless the caller opts in with WithPad.
//
// builderConfig is not safe for concurrent mutation; each Compile call
// resolves its own config via newBuilderConfig.
type builderConfig struct {
	threshold  *int
	reverse    bool
	reverseSet bool
	prefix     string
	maxDegree  int
	pad        bool
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each Option in order. Later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{
		threshold:  nil,
		reverse:    false,
		reverseSet: false,
		prefix:     "",
		maxDegree:  defaultMaxDegree,
		pad:        false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// effectiveReverse returns the orientation a constructor should use:
// whatever the caller set via WithReverse, or defaultValue if the caller
// never called it.
func (cfg *builderConfig) effectiveReverse(defaultValue bool) bool {
	if cfg.reverseSet {
		return cfg.reverse
	}
	return defaultValue
}
