package sim

// stepMelting decays liquid and ice back into vapor for non-attached
// cells in the frontier window (spec.md §4.7). Attached cells are
// untouched; their ice does not melt.
func stepMelting(e *Engine) {
	lt := e.lt
	mu := e.Params.Mu
	gamma := e.Params.Gamma
	i0, i1, j0, j1 := e.frontierWindow()

	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			c := lt.At(i, j)
			if c.Attached {
				continue
			}
			melted := mu * c.B
			c.B -= melted
			c.D += melted
			if c.C > 0 {
				sublimed := gamma * c.C
				c.C -= sublimed
				c.D += sublimed
			}
			lt.Set(i, j, c)
		}
	}
}
