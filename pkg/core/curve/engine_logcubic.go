package curve

import "curveboot/pkg/core/curve/kernel"

// quantLibLogCubicZeroRate implements spec.md §4.3.6: the same pillar
// log(DF) set as the log-linear engine, interpolated by the shared
// natural cubic spline kernel instead of linearly.
func quantLibLogCubicZeroRate(points []BootstrapPoint) zeroRateFunc {
	x := make([]float64, len(points))
	logDF := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.Tenor
		logDF[i] = -p.Rate * p.Tenor
	}
	spline := kernel.FitNaturalSpline(x, logDF)

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		return -spline.Eval(t) / t
	}
}
