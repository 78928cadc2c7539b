package curve

// monotonicConvexZeroRate implements spec.md §4.3.8: a Hagan-West
// flavoured Hermite interpolation with a Hyman monotonicity filter on
// the local slope, and flat extrapolation outside the pillar span.
func monotonicConvexZeroRate(points []BootstrapPoint) zeroRateFunc {
	n := len(points)
	return func(t float64) float64 {
		if n == 0 {
			return 0
		}
		if n == 1 || t <= points[0].Tenor {
			return points[0].Rate
		}
		if t >= points[n-1].Tenor {
			return points[n-1].Rate
		}

		i := 0
		for i < n-2 && t > points[i+1].Tenor {
			i++
		}
		return hermiteSegment(points, i, t)
	}
}

// hermiteSegment evaluates the monotonicity-filtered cubic Hermite on
// [points[i], points[i+1]] at t.
func hermiteSegment(points []BootstrapPoint, i int, t float64) float64 {
	lo, hi := points[i], points[i+1]
	dt := hi.Tenor - lo.Tenor
	if dt <= 0 {
		return lo.Rate
	}
	s := (hi.Rate - lo.Rate) / dt

	var sMinus, sPlus float64
	hasMinus := i > 0
	hasPlus := i+2 < len(points)
	if hasMinus {
		prev := points[i-1]
		if d := lo.Tenor - prev.Tenor; d > 0 {
			sMinus = (lo.Rate - prev.Rate) / d
		}
	}
	if hasPlus {
		next := points[i+2]
		if d := next.Tenor - hi.Tenor; d > 0 {
			sPlus = (next.Rate - hi.Rate) / d
		}
	}

	// Hyman monotonicity filter.
	if (hasMinus && sMinus*s < 0) || (hasPlus && s*sPlus < 0) {
		s = 0
	}

	x := (t - lo.Tenor) / dt
	x2 := x * x
	x3 := x2 * x

	h00 := 2*x3 - 3*x2 + 1
	h10 := x3 - 2*x2 + x
	h01 := -2*x3 + 3*x2
	h11 := x3 - x2

	return h00*lo.Rate + h10*dt*s + h01*hi.Rate + h11*dt*s
}
