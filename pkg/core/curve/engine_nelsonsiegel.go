package curve

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	nsLambdaMin = 0.05
	nsLambdaMax = 3.0

	nsLearningRate    = 5e-5
	nsIterations      = 8000
	nsLambdaGradScale = 0.05

	nsSwapWeight  = 3.0
	nsOtherWeight = 1.0
)

// nelsonSiegelRate evaluates the Nelson-Siegel model at t for the
// given parameters, per spec.md §4.3.3. At t <= 0.001 it evaluates
// the beta0+beta1 limit rather than dividing by a near-zero lambda*t.
func nelsonSiegelRate(p NelsonSiegelParams, t float64) float64 {
	if t <= 0.001 {
		return p.Beta0 + p.Beta1
	}
	lt := p.Lambda * t
	decay := (1 - math.Exp(-lt)) / lt
	return p.Beta0 + p.Beta1*decay + p.Beta2*(decay-math.Exp(-lt))
}

// fitNelsonSiegel gradient-descends the four parameters against the
// pillar set, weighting swaps 3x and futures/bonds 1x, per spec.md
// §4.3.3's exact hyperparameters.
func fitNelsonSiegel(points []BootstrapPoint) NelsonSiegelParams {
	tenors := make([]float64, len(points))
	rates := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		tenors[i] = p.Tenor
		rates[i] = p.Rate
		if p.Source == SourceSwap {
			weights[i] = nsSwapWeight
		} else {
			weights[i] = nsOtherWeight
		}
	}

	params := initialGuess(points)

	for iter := 0; iter < nsIterations; iter++ {
		var gBeta0, gBeta1, gBeta2, gLambda float64

		for i, t := range tenors {
			fitted := nelsonSiegelRate(params, t)
			err := fitted - rates[i]
			w := weights[i]

			var dBeta1, dBeta2, dLambda float64
			if t <= 0.001 {
				dBeta1 = 1
				dBeta2 = 0
				dLambda = 0
			} else {
				lt := params.Lambda * t
				expNeg := math.Exp(-lt)
				decay := (1 - expNeg) / lt
				dBeta1 = decay
				dBeta2 = decay - expNeg
				// d(decay)/d(lambda), with decay = (1-exp(-lt))/lt, lt = lambda*t:
				// d(decay)/d(lambda) = (lt*expNeg - (1-expNeg)) / (lambda*lt)
				dDecayDLambda := (lt*expNeg - (1 - expNeg)) / (params.Lambda * lt)
				dLambda = (params.Beta1+params.Beta2)*dDecayDLambda + params.Beta2*t*expNeg // combined chain rule through decay and exp(-lt)
			}

			gBeta0 += 2 * w * err
			gBeta1 += 2 * w * err * dBeta1
			gBeta2 += 2 * w * err * dBeta2
			gLambda += 2 * w * err * dLambda
		}

		params.Beta0 -= nsLearningRate * gBeta0
		params.Beta1 -= nsLearningRate * gBeta1
		params.Beta2 -= nsLearningRate * gBeta2
		params.Lambda -= nsLearningRate * nsLambdaGradScale * gLambda

		params.Lambda = clamp(params.Lambda, nsLambdaMin, nsLambdaMax)
	}

	return params
}

// initialGuess seeds the gradient descent per spec.md §4.3.3:
// beta0 = r_long, beta1 = r_short - r_long,
// beta2 = (r_max - r_min) * sign(r_max - r_long), lambda = 0.5.
func initialGuess(points []BootstrapPoint) NelsonSiegelParams {
	rates := make([]float64, len(points))
	for i, p := range points {
		rates[i] = p.Rate
	}

	shortest, longest := points[0], points[0]
	for _, p := range points {
		if p.Tenor < shortest.Tenor {
			shortest = p
		}
		if p.Tenor > longest.Tenor {
			longest = p
		}
	}

	rMax := floats.Max(rates)
	rMin := floats.Min(rates)
	rLong := longest.Rate
	rShort := shortest.Rate

	sign := 1.0
	if rMax-rLong < 0 {
		sign = -1.0
	}

	return NelsonSiegelParams{
		Beta0:  rLong,
		Beta1:  rShort - rLong,
		Beta2:  (rMax - rMin) * sign,
		Lambda: 0.5,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nelsonSiegelZeroRate(params NelsonSiegelParams) zeroRateFunc {
	return func(t float64) float64 {
		return nelsonSiegelRate(params, t)
	}
}
