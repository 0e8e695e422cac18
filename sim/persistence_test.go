package sim

import (
	"context"
	"math"
	"path/filepath"
	"testing"
)

// Scenario E — checkpoint round trip: save any non-trivial state after
// 100 ticks; load into a fresh engine; every cell identical to 10
// decimals; t identical.
func TestScenarioE_SaveLoadRoundTrip(t *testing.T) {
	p := baseParams(t, 15)
	p.Rho = 1
	p.H = 1
	p.P = 1
	p.Beta = 1.3
	p.Kappa = 0.4
	p.Mu = 0.02
	p.Gamma = 0.01

	e, err := NewEngine(p, 7)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	for i := 0; i < 100; i++ {
		e.Step()
	}

	path := filepath.Join(t.TempDir(), "state.chk")
	if err := e.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	fresh, err := NewEngine(p, 99)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if err := fresh.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if fresh.Tick() != e.Tick() {
		t.Errorf("tick mismatch: got %d, want %d", fresh.Tick(), e.Tick())
	}
	for i := 0; i < p.L; i++ {
		for j := 0; j < p.L; j++ {
			a := e.Snapshot().At(i, j)
			b := fresh.Snapshot().At(i, j)
			if math.Abs(a.D-b.D) > 1e-10 || math.Abs(a.B-b.B) > 1e-10 || math.Abs(a.C-b.C) > 1e-10 ||
				a.Attached != b.Attached || a.Ring != b.Ring {
				t.Fatalf("cell (%d,%d) mismatch: got %+v, want %+v", i, j, b, a)
			}
		}
	}
}

func TestRunUntilStopsOnPredicate(t *testing.T) {
	p := baseParams(t, 9)
	p.Rho = 0.2
	p.H = 0
	p.P = 1

	e, err := NewEngine(p, 3)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	tick, stopped := e.RunUntil(context.Background(), func(t int32) bool { return t >= 5 })
	if stopped {
		t.Errorf("engine should not have hit the stop radius in 5 ticks")
	}
	if tick != 5 {
		t.Errorf("tick = %d, want 5", tick)
	}
}

func TestRunUntilRespectsContextCancellation(t *testing.T) {
	p := baseParams(t, 9)
	p.Rho = 0.2
	p.H = 0
	p.P = 1

	e, err := NewEngine(p, 3)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tick, _ := e.RunUntil(ctx, func(t int32) bool { return false })
	if tick != 0 {
		t.Errorf("tick = %d, want 0 (cancelled before first step)", tick)
	}
}
