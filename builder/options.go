package builder

// WithThreshold sets DivideAndConquer's cutoff to the naive (dense) switch
// for blocks of size N <= threshold. threshold < 0 is a no-op.
// Complexity: O(1).
func WithThreshold(threshold int) Option {
	return func(cfg *builderConfig) {
		if threshold >= 0 {
			cfg.threshold = &threshold
		}
	}
}

// WithReverse sets the orientation flag passed to core.Simplify and to the
// constructors that expose their own left/right orientation
// (BitonicSort, OddEvenMergeSort). It never changes the set of switches
// emitted, only which end of every switch is called "left".
// Complexity: O(1).
func WithReverse(reverse bool) Option {
	return func(cfg *builderConfig) {
		cfg.reverse = reverse
		cfg.reverseSet = true
	}
}

// WithPrefix overrides the auxiliary-variable prefix Compile would
// otherwise draw from the package-level counter. An empty prefix is a
// no-op (Compile falls back to the counter).
// Complexity: O(1).
func WithPrefix(prefix string) Option {
	return func(cfg *builderConfig) {
		if prefix != "" {
			cfg.prefix = prefix
		}
	}
}

// WithPad turns on padding the boundary up to the next power of two with
// ALWAYS_ZERO nodes. BitonicSort and OddEvenMergeSort require a
// power-of-two N; without WithPad, Compile rejects any other N for those
// two families instead of silently padding it.
// Complexity: O(1).
func WithPad(pad bool) Option {
	return func(cfg *builderConfig) {
		cfg.pad = pad
	}
}

// WithMaxDegree sets ClosMaxDegree's maximum fan-in to search over.
// Values below 2 are a no-op, matching the constraint that a switch always
// has at least two sides.
// Complexity: O(1).
func WithMaxDegree(maxDegree int) Option {
	return func(cfg *builderConfig) {
		if maxDegree >= 2 {
			cfg.maxDegree = maxDegree
		}
	}
}
