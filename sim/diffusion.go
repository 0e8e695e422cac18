package sim

import "github.com/pthm-cable/soup/lattice"

// stepDiffusion implements the hexagonal mean-with-self vapor diffusion
// (spec.md §4.4). For every non-attached cell, d' = ((1+k)/7)*d +
// (1/7)*Σ(non-attached neighbor d), where k is the count of attached
// neighbors: the k shares that would have gone to attached
// neighbors (which hold no vapor) are reclaimed by the sender instead
// of vanishing, which is what makes the scheme exactly mass
// conserving — see DESIGN.md for why this self-weight replaces the
// literal "(7-k)/7" reading of the arithmetic. Attached cells keep
// d=0. The update reads a fully consistent snapshot of the old field:
// it writes into a transient buffer and copies back, following the
// double-buffer tick idiom (cur/nxt swap) used throughout the
// reference pack's grid simulations.
func stepDiffusion(e *Engine) {
	L := e.Params.L
	lt := e.lt
	next := make([]float64, L*L)

	lt.ForEach(func(i, j int, c Cell) {
		idx := i*L + j
		if c.Attached {
			next[idx] = 0
			return
		}
		neighbors := lt.Neighbors(i, j)
		k := 0
		var sumNonAttached float64
		for _, n := range neighbors {
			nc := lt.At(n.I, n.J)
			if nc.Attached {
				k++
			} else {
				sumNonAttached += nc.D
			}
		}
		next[idx] = (float64(1+k)/7)*c.D + sumNonAttached/7
	})

	lt.ForEach(func(i, j int, c Cell) {
		c.D = next[i*L+j]
		lt.Set(i, j, c)
	})
}

// Cell is a local alias so the phase files read naturally without
// importing lattice.Cell qualified everywhere.
type Cell = lattice.Cell
