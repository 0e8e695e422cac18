package sim

import "github.com/pthm-cable/soup/lattice"

// initialize runs the Initializer (spec.md §4.3): it discards a warmup of
// Int63()%1000 draws from the engine's seeded RNG (the count comes from
// that RNG, not from the wall clock), then places either the standard diamond seed (h >= 0)
// or the twelve-sided star seed (h < 0), and sets the remaining cells to
// the ambient vapor density rho.
func (e *Engine) initialize() {
	warmup := int(e.rng.Int63() % 1000)
	for i := 0; i < warmup; i++ {
		e.rng.Float64()
	}

	h := e.Params.H
	if h >= 0 {
		e.initStandardSeed(h)
	} else {
		e.initTwelveSidedSeed(-h)
	}

	e.rOld = e.rNew
	e.ringCounter = 1
	e.t = 0
	e.stopped = false
}

func (e *Engine) initStandardSeed(h int) {
	L := e.Params.L
	rho := e.Params.Rho
	p := e.Params.P

	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			diamond := lattice.LInfDistance(i, j, e.cx, e.cy) <= h &&
				abs(i+j-e.cx-e.cy) <= h
			if diamond && e.rng.Float64() <= p {
				e.lt.Set(i, j, lattice.Cell{D: 0, B: 1, C: 0, Attached: true, Ring: 0})
				e.updateFrontier(i, j)
				continue
			}
			e.lt.Set(i, j, lattice.Cell{D: rho, B: 0, C: 0, Attached: false, Ring: 0})
		}
	}
}

func (e *Engine) initTwelveSidedSeed(h int) {
	L := e.Params.L
	rho := e.Params.Rho

	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			if e.isTwelveSidedSeedCell(i, j, h) {
				e.lt.Set(i, j, lattice.Cell{D: 0, B: 0, C: 1, Attached: true, Ring: 0})
				e.updateFrontier(i, j)
				continue
			}
			e.lt.Set(i, j, lattice.Cell{D: rho, B: 0, C: 0, Attached: false, Ring: 0})
		}
	}
}

// isTwelveSidedSeedCell implements the three-line-segment test of
// spec.md §4.3 (a), (b), (c). Each segment runs symmetrically through
// the center (length 2h+1): the diagonal i-cx=-(j-cy), the i-axis
// (j=cy), and the j-axis (i=cx), each clipped to |offset| <= h. This
// reading is the one consistent with spec.md's own worked example
// (Scenario F: exactly 3*(2h+1)-2 cells for h=5) — see DESIGN.md.
func (e *Engine) isTwelveSidedSeedCell(i, j, h int) bool {
	di := i - e.cx
	dj := j - e.cy

	// (a) the diagonal i-cx = -(j-cy)
	if di == -dj && abs(di) <= h {
		return true
	}
	// (b) the i-axis through the center
	if dj == 0 && abs(di) <= h {
		return true
	}
	// (c) the j-axis through the center
	if di == 0 && abs(dj) <= h {
		return true
	}
	return false
}

func (e *Engine) updateFrontier(i, j int) {
	d := lattice.LInfDistance(i, j, e.cx, e.cy)
	if d > e.rNew {
		e.rNew = d
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
