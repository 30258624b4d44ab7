package core

// NodeAttribute tags a VariableNode with what its possible values mean to
// the simplification driver (Simplify).
type NodeAttribute int

const (
	// ZeroOrOne marks a free binary variable: it participates in the
	// resulting QUBO as a genuine decision variable.
	ZeroOrOne NodeAttribute = iota
	// AlwaysZero marks a variable forced to 0; foldable into constants.
	AlwaysZero
	// AlwaysOne marks a variable forced to 1; foldable into constants.
	AlwaysOne
	// NotCare marks a variable that is unconstrained; it may be erased by
	// Simplify if every downstream consumer is also NotCare and the switch
	// width permits it.
	NotCare
)

// String renders a NodeAttribute using its canonical upper-snake-case name,
// for error messages and test failure output.
func (a NodeAttribute) String() string {
	switch a {
	case ZeroOrOne:
		return "ZERO_OR_ONE"
	case AlwaysZero:
		return "ALWAYS_ZERO"
	case AlwaysOne:
		return "ALWAYS_ONE"
	case NotCare:
		return "NOT_CARE"
	default:
		return "UNKNOWN_ATTRIBUTE"
	}
}
