package curve

import "math"

// gridStep returns the uniform grid spacing from spec.md §4.3: 0.5
// when the longest pillar tenor exceeds 10 years, else 0.25.
func gridStep(maxTenor float64) float64 {
	if maxTenor > 10 {
		return 0.5
	}
	return 0.25
}

// buildGrid returns {step, 2*step, ..., maxTenor+step}, per spec.md
// §4.3. Length is ceil((maxTenor+step)/step).
func buildGrid(maxTenor float64) []float64 {
	step := gridStep(maxTenor)
	n := int(math.Ceil((maxTenor + step) / step))
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = step * float64(i+1)
	}
	return grid
}

func maxPillarTenor(points []BootstrapPoint) float64 {
	max := 0.0
	for _, p := range points {
		if p.Tenor > max {
			max = p.Tenor
		}
	}
	return max
}
