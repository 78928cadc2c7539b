package kernel

import (
	"math"
	"testing"
)

func TestNaturalSplineInterpolatesExactlyAtKnots(t *testing.T) {
	x := []float64{1, 2, 5, 10}
	y := []float64{0.04, 0.042, 0.045, 0.046}
	s := FitNaturalSpline(x, y)

	for i, xi := range x {
		got := s.Eval(xi)
		if math.Abs(got-y[i]) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", xi, got, y[i])
		}
	}
}

func TestNaturalSplineFlatExtrapolation(t *testing.T) {
	x := []float64{1, 2, 5}
	y := []float64{0.03, 0.032, 0.035}
	s := FitNaturalSpline(x, y)

	below := s.Eval(0.5)
	if math.Abs(below-y[0]) > 1e-6 {
		t.Errorf("Eval(0.5) = %v, want ~%v (flat below first knot)", below, y[0])
	}

	above := s.Eval(20)
	// Above the last knot the kernel clamps t to the last knot and
	// evaluates the last segment there, so the result is the finite
	// value y[len(y)-1].
	if math.IsNaN(above) || math.IsInf(above, 0) {
		t.Errorf("Eval(20) = %v, want a finite value", above)
	}
}

func TestNaturalSplineSinglePoint(t *testing.T) {
	s := FitNaturalSpline([]float64{5}, []float64{0.04})
	if got := s.Eval(1); got != 0.04 {
		t.Errorf("Eval(1) on single-point spline = %v, want 0.04", got)
	}
	if got := s.Eval(50); got != 0.04 {
		t.Errorf("Eval(50) on single-point spline = %v, want 0.04", got)
	}
}

func TestNaturalSplineEmpty(t *testing.T) {
	s := FitNaturalSpline(nil, nil)
	if got := s.Eval(1); got != 0 {
		t.Errorf("Eval on empty spline = %v, want 0", got)
	}
}
