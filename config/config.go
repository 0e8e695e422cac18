// Package config provides the immutable dynamics-parameter bundle that
// drives the crystal-growth engine, loaded either from an embedded YAML
// default, an override YAML file, or the historical "name: value"
// console-prompt stream.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Parameters is the immutable bundle of dynamics constants (spec.md
// §4.2). Zero value is never valid on its own; always obtain one
// through Load or Default and call Validate.
type Parameters struct {
	Rho   float64 `yaml:"rho"`
	H     int     `yaml:"h"`
	P     float64 `yaml:"p"`
	Beta  float64 `yaml:"beta"`
	Alpha float64 `yaml:"alpha"`
	Theta float64 `yaml:"theta"`
	Kappa float64 `yaml:"kappa"`
	Mu    float64 `yaml:"mu"`
	Gamma float64 `yaml:"gamma"`
	Sigma float64 `yaml:"sigma"`

	L    int `yaml:"L"`
	Zoom int `yaml:"zoom"`
}

// ErrParameterInvalid is returned by Validate for an out-of-range
// scalar (spec.md §7, ParameterInvalid).
type ErrParameterInvalid struct {
	Field string
	Value interface{}
	Msg   string
}

func (e *ErrParameterInvalid) Error() string {
	return fmt.Sprintf("parameter %s=%v invalid: %s", e.Field, e.Value, e.Msg)
}

// Default returns the embedded default parameter set.
func Default() (Parameters, error) {
	var p Parameters
	if err := yaml.Unmarshal(defaultsYAML, &p); err != nil {
		return Parameters{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return p, nil
}

// Load reads the embedded defaults and overlays a YAML override file
// (only fields present in the file are overwritten), mirroring the
// teacher's defaults-then-overlay merge (config.Load in the reference
// stack). An empty path returns the defaults unchanged.
func Load(path string) (Parameters, error) {
	p, err := Default()
	if err != nil {
		return Parameters{}, err
	}
	if path == "" {
		return p, nil
	}
	data, err := readFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Parameters{}, fmt.Errorf("parsing config file: %w", err)
	}
	return p, nil
}

// Save writes p to path as YAML, the inverse of Load's override file —
// used by cmd/calibrate to persist a search result.
func Save(path string, p Parameters) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks every range constraint from spec.md §4.2 and §3.
func (p Parameters) Validate() error {
	switch {
	case p.Rho < 0:
		return &ErrParameterInvalid{"rho", p.Rho, "must be >= 0"}
	case p.P < 0 || p.P > 1:
		return &ErrParameterInvalid{"p", p.P, "must be in [0,1]"}
	case p.Beta < 1:
		return &ErrParameterInvalid{"beta", p.Beta, "must be >= 1"}
	case p.Theta < 0:
		return &ErrParameterInvalid{"theta", p.Theta, "must be >= 0"}
	case p.Kappa < 0 || p.Kappa > 1:
		return &ErrParameterInvalid{"kappa", p.Kappa, "must be in [0,1]"}
	case p.Mu < 0 || p.Mu > 1:
		return &ErrParameterInvalid{"mu", p.Mu, "must be in [0,1]"}
	case p.Gamma < 0 || p.Gamma > 1:
		return &ErrParameterInvalid{"gamma", p.Gamma, "must be in [0,1]"}
	case p.L < 3 || p.L > 1000:
		return &ErrParameterInvalid{"L", p.L, "must be in [3,1000]"}
	}
	return nil
}
