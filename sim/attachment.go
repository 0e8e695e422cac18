package sim

// attachDecision is the outcome of evaluating one candidate cell during
// Attachment: whether it attaches this tick, and if so the boundary
// mass it carries into the crystal.
type attachDecision struct {
	i, j    int
	bBefore float64
}

// stepAttachment runs the attachment state machine (spec.md §4.6) over
// the frontier window [cx-rNew-1, cx+rNew+1] x [cy-rNew-1, cy+rNew+1].
// Decisions are computed into a shadow buffer first, then committed
// atomically, so every cell's decision is based on the pre-tick state —
// matching the teacher's decide-then-commit double-buffer idiom used
// for synchronous grid updates.
func stepAttachment(e *Engine) {
	lt := e.lt
	i0, i1, j0, j1 := e.frontierWindow()

	var decisions []attachDecision
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			c := lt.At(i, j)
			if c.Attached {
				continue
			}
			k := lt.AttachedNeighborCount(i, j)
			if attaches(e, i, j, c, k) {
				decisions = append(decisions, attachDecision{i: i, j: j, bBefore: c.B})
			}
		}
	}

	for _, d := range decisions {
		c := lt.At(d.i, d.j)
		if c.Attached {
			// The window wrapped and this cell was already committed.
			continue
		}
		c.C += d.bBefore
		c.B = 0
		c.Attached = true
		c.Ring = e.ringCounter
		lt.Set(d.i, d.j, c)
		e.updateFrontier(d.i, d.j)
	}

	if e.rNew-e.rOld == 1 {
		e.ringCounter++
		e.rOld = e.rNew
	}
	if e.rNew > 2*e.Params.L/3 {
		e.stopped = true
	}
}

// attaches evaluates the three attachment branches of spec.md §4.6.
func attaches(e *Engine, i, j int, c Cell, k int) bool {
	switch {
	case k == 1 || k == 2:
		return c.B >= e.Params.Beta
	case k == 3:
		if c.B >= 1 {
			return true
		}
		diffmass := c.D
		for _, n := range e.lt.Neighbors(i, j) {
			nc := e.lt.At(n.I, n.J)
			if !nc.Attached {
				diffmass += nc.D
			}
		}
		return diffmass <= e.Params.Theta && c.B >= e.Params.Alpha
	case k >= 4:
		return true
	default:
		return false
	}
}
