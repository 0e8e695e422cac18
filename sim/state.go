package sim

import (
	"github.com/pthm-cable/soup/checkpoint"
	"github.com/pthm-cable/soup/lattice"
)

// State is the full externally-visible engine state used by the
// checkpoint format (spec.md §6): the lattice plus the small header
// (r_old, r_new, t). It is the same shape the checkpoint package reads
// and writes.
type State = checkpoint.State

// ExportState returns the engine's current state for serialization.
func (e *Engine) ExportState() State {
	return State{Lattice: e.lt, ROld: e.rOld, RNew: e.rNew, T: e.t}
}

// RestoreState replaces the engine's lattice and header from a loaded
// checkpoint. The engine's Parameters and RNG are left untouched; ring
// counter is recomputed from the loaded ring indices so subsequent
// attachments keep assigning fresh generations.
func (e *Engine) RestoreState(s State) {
	e.lt = s.Lattice
	e.rOld = s.ROld
	e.rNew = s.RNew
	e.t = s.T
	e.stopped = e.rNew > 2*e.Params.L/3

	maxRing := 0
	e.lt.ForEach(func(i, j int, c lattice.Cell) {
		if c.Ring > maxRing {
			maxRing = c.Ring
		}
	})
	e.ringCounter = maxRing + 1
}
