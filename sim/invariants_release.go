//go:build !debuginvariants

package sim

// maybeCheckInvariants is a no-op in release builds; see
// invariants_debug.go for the debuginvariants-tagged implementation.
func maybeCheckInvariants(e *Engine) {}
