package sim

// stepFreezing converts vapor into liquid+ice at the crystal boundary
// (spec.md §4.5). For every non-attached cell with at least one
// attached neighbor: b += (1-kappa)*d, c += kappa*d, d = 0. Cells with
// no attached neighbor are untouched; per-cell mass d+b+c is conserved.
func stepFreezing(e *Engine) {
	kappa := e.Params.Kappa
	lt := e.lt

	lt.ForEach(func(i, j int, c Cell) {
		if c.Attached {
			return
		}
		if lt.AttachedNeighborCount(i, j) == 0 {
			return
		}
		c.B += (1 - kappa) * c.D
		c.C += kappa * c.D
		c.D = 0
		lt.Set(i, j, c)
	})
}
