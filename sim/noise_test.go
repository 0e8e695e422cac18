package sim

import "testing"

// Scenario: in-tick noise (spec.md §4.8, sigma > 0) multiplies every
// cell's vapor by (1+sigma) or (1-sigma), never anything else.
func TestStepNoiseInTick(t *testing.T) {
	p := baseParams(t, 5)
	p.Rho = 1
	p.H = 0
	p.P = 1
	p.Sigma = 0.1

	e, err := NewEngine(p, 1)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	before := make(map[[2]int]float64)
	e.Snapshot().ForEach(func(i, j int, c Cell) {
		before[[2]int{i, j}] = c.D
	})

	stepNoiseInTick(e)

	e.Snapshot().ForEach(func(i, j int, c Cell) {
		d0 := before[[2]int{i, j}]
		up := d0 * (1 + p.Sigma)
		down := d0 * (1 - p.Sigma)
		if c.D != up && c.D != down {
			t.Fatalf("cell (%d,%d): d = %v, want %v or %v (from %v)", i, j, c.D, up, down, d0)
		}
	})
}

func TestStepNoiseInTick_ZeroMassUnaffected(t *testing.T) {
	p := baseParams(t, 5)
	p.Rho = 0
	p.H = 0
	p.P = 1
	p.Sigma = 0.3

	e, err := NewEngine(p, 1)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	stepNoiseInTick(e)
	e.Snapshot().ForEach(func(i, j int, c Cell) {
		if c.D != 0 {
			t.Fatalf("cell (%d,%d): d = %v, want 0 (rho=0, any multiplier of 0 is 0)", i, j, c.D)
		}
	})
}

// Scenario: post-load rarefaction (spec.md §4.8, sigma < 0) multiplies
// every non-attached cell's vapor by (1+sigma) and leaves attached cells
// untouched.
func TestStepNoiseAfterLoad(t *testing.T) {
	p := baseParams(t, 5)
	p.Rho = 1
	p.H = 0
	p.P = 1
	p.Sigma = -0.25

	e, err := NewEngine(p, 1)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	before := make(map[[2]int]Cell)
	e.Snapshot().ForEach(func(i, j int, c Cell) {
		before[[2]int{i, j}] = c
	})

	stepNoiseAfterLoad(e)

	e.Snapshot().ForEach(func(i, j int, c Cell) {
		b := before[[2]int{i, j}]
		if b.Attached {
			if c.D != b.D {
				t.Fatalf("attached cell (%d,%d): d changed from %v to %v, want untouched", i, j, b.D, c.D)
			}
			return
		}
		want := b.D * (1 + p.Sigma)
		if c.D != want {
			t.Fatalf("non-attached cell (%d,%d): d = %v, want %v", i, j, c.D, want)
		}
	})
}
