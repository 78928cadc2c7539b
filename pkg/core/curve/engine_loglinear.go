package curve

// quantLibLogLinearZeroRate implements spec.md §4.3.5: piecewise-linear
// interpolation of log(DF) in tenor, converted back to a zero rate.
// Reuses interpolateLogDF from the Bloomberg engine: outside the
// pillar span its "scale by t/t0" / "hold last rate flat" rules reduce
// algebraically to ordinary flat zero-rate extrapolation, which is the
// natural boundary behaviour for log-linear interpolation too.
func quantLibLogLinearZeroRate(points []BootstrapPoint) zeroRateFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		return -interpolateLogDF(points, t) / t
	}
}
