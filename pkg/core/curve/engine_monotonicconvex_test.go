package curve

import "testing"

func TestMonotonicConvexPreservesMonotoneInput(t *testing.T) {
	points := []BootstrapPoint{
		{Tenor: 1, Rate: 0.02, Source: SourceSwap},
		{Tenor: 2, Rate: 0.03, Source: SourceSwap},
		{Tenor: 5, Rate: 0.035, Source: SourceSwap},
		{Tenor: 10, Rate: 0.04, Source: SourceSwap},
	}
	r := monotonicConvexZeroRate(points)

	grid := buildGrid(maxPillarTenor(points))
	prev := r(grid[0])
	for _, t0 := range grid[1:] {
		cur := r(t0)
		if cur < prev-1e-9 {
			t.Fatalf("monotonicity violated at tenor %v: %v < %v", t0, cur, prev)
		}
		prev = cur
	}
}

func TestHymanFilterZeroesSlopeAtLocalExtremum(t *testing.T) {
	points := []BootstrapPoint{
		{Tenor: 1, Rate: 0.03, Source: SourceSwap},
		{Tenor: 2, Rate: 0.05, Source: SourceSwap},
		{Tenor: 3, Rate: 0.04, Source: SourceSwap},
	}
	r := monotonicConvexZeroRate(points)
	// Immediately either side of the local max at t=2, the curve must
	// not overshoot above 0.05 nor dip below 0.03.
	for _, t0 := range []float64{1.1, 1.5, 1.9, 2.1, 2.5, 2.9} {
		v := r(t0)
		if v > 0.05+1e-9 || v < 0.03-1e-9 {
			t.Errorf("r(%v) = %v, out of [0.03, 0.05]", t0, v)
		}
	}
}
