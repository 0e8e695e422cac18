//go:build debuginvariants

package sim

import "testing"

func TestCheckInvariants_NegativeMass(t *testing.T) {
	p := baseParams(t, 5)
	e, err := NewEngine(p, 1)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	c := e.lt.At(0, 0)
	c.D = -0.5
	e.lt.Set(0, 0, c)

	if err := checkInvariants(e); err == nil {
		t.Fatal("expected an invariant violation for negative d")
	} else if _, ok := err.(*ErrInternalInvariantBroken); !ok {
		t.Fatalf("error type = %T, want *ErrInternalInvariantBroken", err)
	}
}

func TestCheckInvariants_VaporOnAttachedCell(t *testing.T) {
	p := baseParams(t, 5)
	e, err := NewEngine(p, 1)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	c := e.lt.At(0, 0)
	c.Attached = true
	c.D = 0.1
	e.lt.Set(0, 0, c)

	if err := checkInvariants(e); err == nil {
		t.Fatal("expected an invariant violation for vapor on an attached cell")
	}
}

func TestCheckInvariants_CleanStateIsValid(t *testing.T) {
	p := baseParams(t, 5)
	e, err := NewEngine(p, 1)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if err := checkInvariants(e); err != nil {
		t.Fatalf("checkInvariants() on a freshly initialized engine = %v, want nil", err)
	}
}
