package sim

import "github.com/pthm-cable/soup/checkpoint"

// Save writes the engine's current state to path (spec.md §4.9 save()).
func (e *Engine) Save(path string) error {
	return checkpoint.Save(path, e.ExportState())
}

// Load reads a checkpoint from path into the engine, replacing its
// lattice and header, then applies the post-load noise rarefaction if
// Sigma < 0 (spec.md §4.9 load(), §4.8 post-load noise).
func (e *Engine) Load(path string) error {
	state, err := checkpoint.Load(path, e.Params.L)
	if err != nil {
		return err
	}
	e.RestoreState(state)
	e.ApplyPostLoadNoise()
	return nil
}
