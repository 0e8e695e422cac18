package main

import "github.com/pthm-cable/soup/config"

// ParamSpec defines a single optimizable dynamics parameter with the
// bounds CMA-ES is allowed to search within.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the subset of config.Parameters that calibration
// searches over; everything else is held at the base config's value.
// Mirrors the teacher's ParamVector (cmd/optimize/params.go), re-pointed
// from ecosystem energy/reproduction knobs to Gravner-Griffeath
// dynamics constants.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector returns the standard set of calibration targets: the
// five dimensionless shape constants that govern attachment and
// boundary-mass exchange (spec.md §4.2). Rho, L, H, P and Zoom are left
// to the base config since they set initial conditions rather than
// growth shape.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "beta", Min: 1.0, Max: 3.0, Default: 1.6},
			{Name: "alpha", Min: 0.0, Max: 1.0, Default: 0.35},
			{Name: "theta", Min: 0.0, Max: 0.2, Default: 0.025},
			{Name: "kappa", Min: 0.0, Max: 1.0, Default: 0.5},
			{Name: "mu", Min: 0.0, Max: 0.2, Default: 0.015},
		},
	}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		v[i] = s.Default
	}
	return v
}

// Normalize maps raw parameter values into [0,1] for CMA-ES's
// coordinate-free search.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = (raw[i] - s.Min) / (s.Max - s.Min)
	}
	return out
}

// Denormalize is Normalize's inverse.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = s.Min + normalized[i]*(s.Max-s.Min)
	}
	return out
}

// Clamp ensures every value stays within its spec's bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		val := v[i]
		if val < s.Min {
			val = s.Min
		}
		if val > s.Max {
			val = s.Max
		}
		out[i] = val
	}
	return out
}

// ApplyToParameters writes clamped values onto a copy of base and
// returns it.
func (pv *ParamVector) ApplyToParameters(base config.Parameters, values []float64) config.Parameters {
	clamped := pv.Clamp(values)
	p := base
	for i, s := range pv.Specs {
		switch s.Name {
		case "beta":
			p.Beta = clamped[i]
		case "alpha":
			p.Alpha = clamped[i]
		case "theta":
			p.Theta = clamped[i]
		case "kappa":
			p.Kappa = clamped[i]
		case "mu":
			p.Mu = clamped[i]
		}
	}
	return p
}
