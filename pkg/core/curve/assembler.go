package curve

import "math"

// zeroRateFunc is the contract every Engine fulfils: given a grid
// tenor, return the fitted continuously-compounded zero rate.
type zeroRateFunc func(t float64) float64

// pillarTagTolerance returns how close a grid tenor must be to a
// pillar tenor to inherit that pillar's Source tag instead of
// SourceInterpolated (spec.md §4.4 point 3).
func pillarTagTolerance(method Method) float64 {
	if method == MethodNelsonSiegel {
		return 0.05
	}
	return 0.01
}

// assemble runs the uniform grid, the shared forward/DF derivation,
// and pillar tagging against a fitted zero-rate function, producing
// the DiscountFactors and CurvePoints of a BootstrapResult.
func assemble(points []BootstrapPoint, method Method, r zeroRateFunc) ([]DiscountFactor, []CurvePoint) {
	if len(points) == 0 {
		return nil, nil
	}

	grid := buildGrid(maxPillarTenor(points))
	tol := pillarTagTolerance(method)

	dfs := make([]DiscountFactor, len(grid))
	curve := make([]CurvePoint, len(grid))

	prevDF := 1.0
	prevTenor := 0.0

	for i, t := range grid {
		rate := r(t)
		df := math.Exp(-rate * t)

		var fwd float64
		if i == 0 {
			fwd = rate
		} else {
			dt := t - prevTenor
			if dt > 0 {
				fwd = -math.Log(df/prevDF) / dt
			}
		}
		if fwd < 0 {
			fwd = 0
		}

		dfs[i] = DiscountFactor{
			Tenor:       t,
			DF:          df,
			ZeroRate:    rate,
			ForwardRate: fwd,
			Source:      tagSource(points, t, tol),
		}
		curve[i] = CurvePoint{Tenor: t, ZeroRate: rate}

		prevDF = df
		prevTenor = t
	}

	return dfs, curve
}

// tagSource copies the nearest pillar's Source when it lies within
// tol of t, else returns SourceInterpolated.
func tagSource(points []BootstrapPoint, t, tol float64) Source {
	nearest := points[0]
	best := math.Abs(points[0].Tenor - t)
	for _, p := range points[1:] {
		if d := math.Abs(p.Tenor - t); d < best {
			best = d
			nearest = p
		}
	}
	if best <= tol {
		return nearest.Source
	}
	return SourceInterpolated
}
