// Package sim implements the per-tick crystal-growth dynamics engine:
// initialization, diffusion, freezing, attachment, melting and noise
// injection over a lattice.Lattice, sequenced by Engine.
package sim

import (
	"context"
	"math/rand"

	"github.com/pthm-cable/soup/config"
	"github.com/pthm-cable/soup/lattice"
)

// Engine owns the Lattice exclusively between calls and sequences one
// tick at a time. It is not safe for concurrent use — the dynamics are
// intrinsically sequential per step (spec.md §5, Non-goals).
type Engine struct {
	Params config.Parameters

	lt *lattice.Lattice
	cx, cy int

	rOld, rNew  int
	t           int32
	stopped     bool
	ringCounter int

	rng *rand.Rand

	onPhase PhaseFunc
}

// PhaseFunc is called with one of "diffusion", "freezing", "attachment",
// "melting", "noise" immediately before that phase runs during Step, so
// callers can time individual phases. telemetry.PerfCollector.StartPhase
// has this exact signature and is the intended observer — see
// cmd/snowflake.
type PhaseFunc func(phase string)

// SetPhaseObserver registers fn to be invoked at each phase boundary of
// Step. Pass nil to disable (the default).
func (e *Engine) SetPhaseObserver(fn PhaseFunc) {
	e.onPhase = fn
}

func (e *Engine) phase(name string) {
	if e.onPhase != nil {
		e.onPhase(name)
	}
}

// NewEngine validates params and runs the Initializer to produce the
// starting configuration (spec.md §4.3).
func NewEngine(params config.Parameters, seed int64) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		Params: params,
		lt:     lattice.New(params.L),
		cx:     params.L / 2,
		cy:     params.L / 2,
		rng:    rand.New(rand.NewSource(seed)),
	}
	e.initialize()
	return e, nil
}

// Snapshot returns a read-only borrow of the Lattice for rendering.
func (e *Engine) Snapshot() *lattice.Lattice {
	return e.lt
}

// Tick returns the current tick counter.
func (e *Engine) Tick() int32 { return e.t }

// Stopped reports whether the frontier has exceeded the 2L/3 stop
// threshold (spec.md §4.6).
func (e *Engine) Stopped() bool { return e.stopped }

// FrontierRadius returns the current (r_old, r_new) pair.
func (e *Engine) FrontierRadius() (int, int) { return e.rOld, e.rNew }

// Center returns the lattice center coordinates.
func (e *Engine) Center() (int, int) { return e.cx, e.cy }

// Step executes one complete tick: Diffusion → Freezing → Attachment →
// Melting → (conditional) Noise, in that fixed order (spec.md §4.9, §5).
// Returns the new tick count and whether the engine has now stopped.
func (e *Engine) Step() (int32, bool) {
	e.phase("diffusion")
	stepDiffusion(e)
	e.phase("freezing")
	stepFreezing(e)
	e.phase("attachment")
	stepAttachment(e)
	e.phase("melting")
	stepMelting(e)
	if e.Params.Sigma > 0 {
		e.phase("noise")
		stepNoiseInTick(e)
	}
	maybeCheckInvariants(e)
	e.t++
	return e.t, e.stopped
}

// RunUntil repeats Step while the engine has not stopped and pred
// returns false, polling pred and ctx only between ticks (never inside
// a phase), matching the cooperative single-threaded model of spec.md
// §5. pred is evaluated with the tick count reached so far.
func (e *Engine) RunUntil(ctx context.Context, pred func(t int32) bool) (int32, bool) {
	for {
		if e.stopped || pred(e.t) {
			return e.t, e.stopped
		}
		select {
		case <-ctx.Done():
			return e.t, e.stopped
		default:
		}
		e.Step()
	}
}

// ApplyPostLoadNoise applies the one-shot non-mass-preserving rarefaction
// documented in spec.md §4.8 for sigma < 0. Called once after Load.
func (e *Engine) ApplyPostLoadNoise() {
	if e.Params.Sigma >= 0 {
		return
	}
	stepNoiseAfterLoad(e)
}

// frontierWindow returns the inclusive bounding box used by Attachment
// and Melting: [cx-rNew-1, cx+rNew+1] x [cy-rNew-1, cy+rNew+1].
func (e *Engine) frontierWindow() (i0, i1, j0, j1 int) {
	return e.cx - e.rNew - 1, e.cx + e.rNew + 1, e.cy - e.rNew - 1, e.cy + e.rNew + 1
}
