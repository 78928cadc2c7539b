// Package kernel holds the single natural-cubic-spline kernel shared
// by the rate-domain cubic spline engine and the log-discount-factor
// log-cubic engine (spec.md §9, "Spline kernel reuse"). It operates
// over plain (x, y) arrays so callers never need to know whether y is
// a zero rate or a log discount factor.
package kernel

// NaturalSpline is a fitted natural cubic spline: second derivatives
// are zero at both endpoints. Segment i covers [x[i], x[i+1]) and
// evaluates as a_i + b_i*h + c_i*h^2 + d_i*h^3 with h = t - x[i].
type NaturalSpline struct {
	x, a, b, c, d []float64
}

// FitNaturalSpline builds a natural cubic spline through the given
// points, sorted ascending by x. Requires len(x) == len(y) >= 2; a
// spline of fewer than 2 points degenerates to flat evaluation at the
// single y value (or zero, if empty — callers are expected to guard
// against the empty case before reaching the Engines).
func FitNaturalSpline(x, y []float64) *NaturalSpline {
	n := len(x)
	if n == 0 {
		return &NaturalSpline{}
	}
	if n == 1 {
		return &NaturalSpline{x: x, a: y, b: []float64{0}, c: []float64{0}, d: []float64{0}}
	}

	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
	}

	// Tridiagonal system for the second derivatives (natural boundary:
	// c[0] = c[n-1] = 0). Standard Thomas-algorithm solve.
	alpha := make([]float64, n)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3*(y[i+1]-y[i])/h[i] - 3*(y[i]-y[i-1])/h[i-1]
	}

	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1

	for i := 1; i < n-1; i++ {
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n-1] = 1

	c := make([]float64, n)
	b := make([]float64, n-1)
	d := make([]float64, n-1)

	for j := n - 2; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		b[j] = (y[j+1]-y[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3
		d[j] = (c[j+1] - c[j]) / (3 * h[j])
	}

	a := make([]float64, n-1)
	copy(a, y[:n-1])

	return &NaturalSpline{x: x, a: a, b: b, c: c[:n-1], d: d}
}

// Eval evaluates the spline at t via Horner's method on the segment
// bracketing t. Flat extrapolation holds the first segment's value
// below x[0] and the last segment's value above x[n-1], per spec.md
// §4.3.2.
func (s *NaturalSpline) Eval(t float64) float64 {
	n := len(s.x)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return s.a[0]
	}

	i := locateSegment(s.x, t)
	clamped := t
	if clamped < s.x[0] {
		clamped = s.x[0]
	} else if clamped > s.x[n-1] {
		clamped = s.x[n-1]
	}
	h := clamped - s.x[i]
	return s.a[i] + h*(s.b[i]+h*(s.c[i]+h*s.d[i]))
}

// locateSegment returns the index i such that x[i] <= t < x[i+1],
// clamped to [0, len(x)-2] so callers get flat extrapolation for free.
func locateSegment(x []float64, t float64) int {
	n := len(x)
	if t <= x[0] {
		return 0
	}
	if t >= x[n-1] {
		return n - 2
	}
	lo, hi := 0, n-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
