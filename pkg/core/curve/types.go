// Package curve implements the multi-method zero-coupon discount curve
// bootstrapper: input normalisation, eight interpolation/parametric
// engines, and the shared curve assembler that derives discount
// factors and forward rates from a fitted zero-rate function.
package curve

import "curveboot/pkg/core/convention"

// Source is the closed set of pillar/grid-point origins. It is a typed
// string enum rather than a bare string so every switch over it can be
// made exhaustive.
type Source string

const (
	SourceSwap         Source = "swap"
	SourceFutures      Source = "futures"
	SourceBond         Source = "bond"
	SourceInterpolated Source = "interpolated"
)

// Method is the closed set of bootstrapping methods from spec.md §4.3.
type Method string

const (
	MethodLinear             Method = "linear"
	MethodCubicSpline        Method = "cubic_spline"
	MethodNelsonSiegel       Method = "nelson_siegel"
	MethodBloomberg          Method = "bloomberg"
	MethodQuantLibLogLinear  Method = "quantlib_log_linear"
	MethodQuantLibLogCubic   Method = "quantlib_log_cubic"
	MethodQuantLibLinearFwd  Method = "quantlib_linear_forward"
	MethodQuantLibMonoConvex Method = "quantlib_monotonic_convex"
)

// normalizeMethod maps any unrecognised method literal to Linear, per
// spec.md §7's "unknown tag -> silent fallback" rule.
func normalizeMethod(m Method) Method {
	switch m {
	case MethodLinear, MethodCubicSpline, MethodNelsonSiegel, MethodBloomberg,
		MethodQuantLibLogLinear, MethodQuantLibLogCubic, MethodQuantLibLinearFwd,
		MethodQuantLibMonoConvex:
		return m
	default:
		return MethodLinear
	}
}

// RawPoint is the caller-supplied (tenor, rate, source) tuple that
// feeds the Input Normaliser — either a swap/bond par observation or a
// futures price-implied observation, before any convention conversion.
type RawPoint struct {
	Tenor  float64 // years, > 0
	Rate   float64 // decimal; par rate for swap/bond, price-implied for futures
	Source Source  // SourceSwap, SourceBond, or SourceFutures
}

// BootstrapPoint is a single calibration pillar after normalisation:
// a continuously-compounded zero rate at a tenor, tagged with its
// originating source and priority.
//
// Invariant: Priority == 1 iff Source is SourceSwap or SourceBond;
// futures pillars always carry Priority == 2. Tenor is strictly
// positive. Within one pillar set no two pillars share a tenor after
// de-duplication (see normalize.go).
type BootstrapPoint struct {
	Tenor        float64
	Rate         float64 // continuously compounded, decimal
	Source       Source
	Priority     int
	Adjusted     bool     // true iff a futures rate was moved toward the swap interpolation
	OriginalRate *float64 // set iff Adjusted; the pre-adjustment futures rate
}

// DiscountFactor is one point of the dense output grid.
//
// Invariant: grid Tenor values are strictly increasing across a
// result; DF is strictly decreasing in Tenor whenever the fitted zero
// rate is non-negative; ForwardRate is clamped to be >= 0.
type DiscountFactor struct {
	Tenor       float64
	DF          float64 // in (0, 1]; 1 at tenor 0
	ZeroRate    float64 // -ln(DF)/Tenor for Tenor > 0
	ForwardRate float64 // instantaneous forward vs. the previous grid point, clamped >= 0
	Source      Source
}

// CurvePoint is the (tenor, zero_rate) projection of a DiscountFactor
// used for display.
type CurvePoint struct {
	Tenor    float64
	ZeroRate float64
}

// NelsonSiegelParams are the four fitted Nelson-Siegel parameters.
// Lambda is clamped to [0.05, 3.0] during and after the fit.
type NelsonSiegelParams struct {
	Beta0  float64
	Beta1  float64
	Beta2  float64
	Lambda float64
}

// BootstrapResult is the complete, self-contained output of one
// bootstrap call. It owns its arrays; nothing in this package mutates
// a BootstrapResult after it is returned.
type BootstrapResult struct {
	Method          Method
	Currency        string
	BasisConvention convention.BasisConvention
	InputPoints     []RawPoint
	AdjustedPoints  []BootstrapPoint // normalised, sorted by tenor
	DiscountFactors []DiscountFactor // dense grid, ascending tenor
	CurvePoints     []CurvePoint
	Parameters      *NelsonSiegelParams // populated only for MethodNelsonSiegel
}
