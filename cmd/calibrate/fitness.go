package main

import (
	"math"

	"github.com/pthm-cable/soup/config"
	"github.com/pthm-cable/soup/sim"
)

// FitnessEvaluator runs the engine under a candidate parameter set and
// scores how closely its frontier-radius growth matches a linear ramp
// from 0 to the stop radius over maxTicks, averaged over several
// seeds. CMA-ES minimizes the returned value. Grounded on the
// teacher's FitnessEvaluator (cmd/optimize/fitness.go), re-targeted
// from ecosystem survival time to crystal frontier growth shape.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int32
	seeds    []int64
	base     config.Parameters

	sampleEvery int32
	lastRMSE    float64
}

// NewFitnessEvaluator creates an evaluator. sampleEvery controls how
// often the frontier radius is sampled against the target ramp.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, base config.Parameters) *FitnessEvaluator {
	sampleEvery := maxTicks / 100
	if sampleEvery < 1 {
		sampleEvery = 1
	}
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		base:        base,
		sampleEvery: sampleEvery,
	}
}

// Evaluate scores raw parameter values (in the ParamVector's native
// range, not normalized) by averaging squared frontier-radius error
// against the target ramp over all configured seeds.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	p := fe.params.ApplyToParameters(fe.base, raw)
	stopRadius := 2 * p.L / 3

	var totalSq float64
	var totalSamples int
	for _, seed := range fe.seeds {
		sq, n := fe.runOne(p, seed, stopRadius)
		totalSq += sq
		totalSamples += n
	}
	if totalSamples == 0 {
		return math.Inf(1)
	}
	mse := totalSq / float64(totalSamples)
	fe.lastRMSE = math.Sqrt(mse)
	return mse
}

// LastRMSE returns the root-mean-square error from the most recent
// Evaluate call, used for progress reporting.
func (fe *FitnessEvaluator) LastRMSE() float64 { return fe.lastRMSE }

func (fe *FitnessEvaluator) runOne(p config.Parameters, seed int64, stopRadius int) (sumSq float64, n int) {
	engine, err := sim.NewEngine(p, seed)
	if err != nil {
		return float64(stopRadius) * float64(stopRadius) * 100, 1
	}

	for t := int32(0); t < fe.maxTicks && !engine.Stopped(); t++ {
		engine.Step()
		if t%fe.sampleEvery == 0 {
			_, rNew := engine.FrontierRadius()
			target := float64(stopRadius) * float64(t) / float64(fe.maxTicks)
			diff := float64(rNew) - target
			sumSq += diff * diff
			n++
		}
	}
	return sumSq, n
}
