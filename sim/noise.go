package sim

// stepNoiseInTick applies the in-tick multiplicative perturbation
// (spec.md §4.8, sigma > 0): every cell's vapor is multiplied by
// (1+sigma) or (1-sigma) with equal probability. Applied only when
// sigma > 0, at the end of the tick.
func stepNoiseInTick(e *Engine) {
	lt := e.lt
	sigma := e.Params.Sigma
	lt.ForEach(func(i, j int, c Cell) {
		if e.rng.Float64() < 0.5 {
			c.D *= 1 + sigma
		} else {
			c.D *= 1 - sigma
		}
		lt.Set(i, j, c)
	})
}

// stepNoiseAfterLoad applies the one-shot post-load rarefaction
// (spec.md §4.8, sigma < 0): every non-attached cell's vapor is
// multiplied by (1+sigma). Not mass preserving; called once after Load.
func stepNoiseAfterLoad(e *Engine) {
	lt := e.lt
	sigma := e.Params.Sigma
	lt.ForEach(func(i, j int, c Cell) {
		if c.Attached {
			return
		}
		c.D *= 1 + sigma
		lt.Set(i, j, c)
	})
}
