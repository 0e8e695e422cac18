package sim

import "fmt"

// ErrInternalInvariantBroken is the InternalInvariantBroken error kind
// of spec.md §7: a debug build's checkInvariants found a cell violating
// a dynamics invariant (negative mass, or vapor remaining on an
// attached cell). Only ever returned from debuginvariants builds — see
// invariants_debug.go.
type ErrInternalInvariantBroken struct {
	I, J   int
	Reason string
}

func (e *ErrInternalInvariantBroken) Error() string {
	return fmt.Sprintf("internal invariant broken at (%d,%d): %s", e.I, e.J, e.Reason)
}
