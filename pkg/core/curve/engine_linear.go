package curve

// linearZeroRate implements spec.md §4.3.1: piecewise-linear
// interpolation of the pillar zero rates by tenor, with flat
// extrapolation at both ends.
func linearZeroRate(points []BootstrapPoint) zeroRateFunc {
	return func(t float64) float64 {
		return linearInterpolate(points, t)
	}
}

// linearInterpolate is the shared piecewise-linear-by-tenor kernel
// used directly by the Linear engine and as the building block for
// the QuantLib linear-forward engine's forward interpolation.
func linearInterpolate(points []BootstrapPoint, t float64) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}
	if n == 1 || t <= points[0].Tenor {
		return points[0].Rate
	}
	if t >= points[n-1].Tenor {
		return points[n-1].Rate
	}
	for i := 0; i < n-1; i++ {
		lo, hi := points[i], points[i+1]
		if t >= lo.Tenor && t <= hi.Tenor {
			if hi.Tenor == lo.Tenor {
				return lo.Rate
			}
			frac := (t - lo.Tenor) / (hi.Tenor - lo.Tenor)
			return lo.Rate + frac*(hi.Rate-lo.Rate)
		}
	}
	return points[n-1].Rate
}
