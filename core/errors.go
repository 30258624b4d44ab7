package core

import "errors"

// ErrDuplicateVariable indicates that a proposed Switch names the same
// variable on both its left and right side, violating the L ∩ R = ∅
// invariant required by NewSwitch.
// Usage: if errors.Is(err, ErrDuplicateVariable) { /* fix the constructor bug */ }.
var ErrDuplicateVariable = errors.New("core: duplicate variable between left and right of switch")

// ErrIllFormedNetwork indicates that Simplify found a raw switch list that
// does not connect to the declared right boundary in a well-formed way:
// either a switch's right set is not a subset of the current frontier, or
// its left set collides with names already live on the frontier. This
// signals a bug in a network constructor, not a caller error.
var ErrIllFormedNetwork = errors.New("core: ill-formed network")

// ErrInfeasible indicates that Simplify proved the right-hand boundary
// attributes cannot be satisfied by any 0/1 assignment of the switch's left
// variables. This signals an invalid constraint, not a constructor bug.
var ErrInfeasible = errors.New("core: infeasible constraint")
