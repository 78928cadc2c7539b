package curve

// quantLibLinearForwardZeroRate implements spec.md §4.3.7.
//
// DEVIATION (documented, retained verbatim per spec.md §9's Open
// Question): this engine linearly interpolates an instantaneous-
// forward estimate per pillar and assigns it directly as the zero
// rate. A proper term-structure integration would instead integrate
// f(s) ds over [0, t] and divide by t to obtain the zero rate. That
// "fix" is deliberately NOT applied here because downstream consumers
// and tests depend on this exact, simplified numeric output.
func quantLibLinearForwardZeroRate(points []BootstrapPoint) zeroRateFunc {
	n := len(points)
	fwdPoints := make([]BootstrapPoint, n)
	for i, p := range points {
		f := p.Rate
		if i > 0 {
			prev := points[i-1]
			dt := p.Tenor - prev.Tenor
			if dt > 0 {
				f = p.Rate + p.Tenor*(p.Rate-prev.Rate)/dt
			}
		}
		fwdPoints[i] = BootstrapPoint{Tenor: p.Tenor, Rate: f, Source: p.Source}
	}

	return func(t float64) float64 {
		return linearInterpolate(fwdPoints, t)
	}
}
