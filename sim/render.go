package sim

import "github.com/pthm-cable/soup/render"

// RenderPPM writes a PPM image of the current lattice state to path
// (spec.md §4.9 render()).
func (e *Engine) RenderPPM(path string, comments render.Comments) error {
	return render.WritePPM(path, e.lt, e.Params, e.t, comments)
}
