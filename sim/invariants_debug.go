//go:build debuginvariants

package sim

// checkInvariants asserts the two per-cell invariants spec.md §7 binds
// InternalInvariantBroken to: no mass component ever goes negative, and
// no vapor remains on a cell once it has attached. Compiled only into
// debuginvariants builds (go build -tags debuginvariants) so release
// builds pay nothing for it.
func checkInvariants(e *Engine) error {
	var err *ErrInternalInvariantBroken
	e.lt.ForEach(func(i, j int, c Cell) {
		if err != nil {
			return
		}
		switch {
		case c.D < 0:
			err = &ErrInternalInvariantBroken{I: i, J: j, Reason: "d < 0"}
		case c.B < 0:
			err = &ErrInternalInvariantBroken{I: i, J: j, Reason: "b < 0"}
		case c.C < 0:
			err = &ErrInternalInvariantBroken{I: i, J: j, Reason: "c < 0"}
		case c.Attached && c.D != 0:
			err = &ErrInternalInvariantBroken{I: i, J: j, Reason: "vapor remains on an attached cell"}
		}
	})
	if err != nil {
		return err
	}
	return nil
}

// maybeCheckInvariants panics if checkInvariants finds a violation.
// Called unconditionally from Step; only built into debuginvariants
// builds, where it does real work.
func maybeCheckInvariants(e *Engine) {
	if err := checkInvariants(e); err != nil {
		panic(err)
	}
}
