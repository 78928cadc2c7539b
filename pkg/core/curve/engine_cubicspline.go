package curve

import "curveboot/pkg/core/curve/kernel"

// cubicSplineZeroRate implements spec.md §4.3.2: a natural cubic
// spline fitted directly on (tenor, zero rate) pillars.
func cubicSplineZeroRate(points []BootstrapPoint) zeroRateFunc {
	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.Tenor
		y[i] = p.Rate
	}
	spline := kernel.FitNaturalSpline(x, y)
	return spline.Eval
}
