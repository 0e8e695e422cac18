package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseDiffusion)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseAttachment)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}
	if _, ok := stats.PhaseAvg[PhaseDiffusion]; !ok {
		t.Error("expected diffusion phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseAttachment]; !ok {
		t.Error("expected attachment phase to be tracked")
	}
}

func TestPerfCollector_WindowWraps(t *testing.T) {
	pc := NewPerfCollector(3)
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseMelting)
		pc.EndTick()
	}
	stats := pc.Stats()
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive throughput after window wraps")
	}
}

func TestToCSV(t *testing.T) {
	pc := NewPerfCollector(5)
	pc.StartTick()
	pc.StartPhase(PhaseFreezing)
	time.Sleep(50 * time.Microsecond)
	pc.EndTick()

	row := pc.Stats().ToCSV(42)
	if row.WindowEnd != 42 {
		t.Errorf("WindowEnd = %d, want 42", row.WindowEnd)
	}
}
