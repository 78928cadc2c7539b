package curve

import "curveboot/pkg/core/convention"

// Bootstrap normalises swaps and futures observations for currency,
// runs the selected Method's engine, and assembles the dense grid.
// An empty combined input set yields an empty result with
// Method/Currency/BasisConvention still populated (spec.md §4.5).
func Bootstrap(swaps, futures []RawPoint, method Method, currency string) BootstrapResult {
	method = normalizeMethod(method)
	conv := convention.Lookup(currency)

	raw := make([]RawPoint, 0, len(swaps)+len(futures))
	raw = append(raw, swaps...)
	raw = append(raw, futures...)

	points := normalizeInputs(raw, conv, false)

	result := BootstrapResult{
		Method:          method,
		Currency:        currency,
		BasisConvention: conv,
		InputPoints:     raw,
		AdjustedPoints:  points,
	}
	if len(points) == 0 {
		return result
	}

	r, params := buildEngine(method, points)
	result.Parameters = params
	result.DiscountFactors, result.CurvePoints = assemble(points, method, r)
	return result
}

// BootstrapBonds is the bond-only entry point from spec.md §4.5: every
// observation is normalised as a swap-equivalent yield with
// Source = bond, Priority = 1, and no futures-vs-swap reconciliation
// runs. Fewer than 2 bonds yields an empty result.
func BootstrapBonds(bonds []RawPoint, method Method, currency string) BootstrapResult {
	method = normalizeMethod(method)
	conv := convention.Lookup(currency)

	input := make([]RawPoint, len(bonds))
	copy(input, bonds)

	result := BootstrapResult{
		Method:          method,
		Currency:        currency,
		BasisConvention: conv,
		InputPoints:     input,
	}
	if len(bonds) < 2 {
		return result
	}

	points := normalizeInputs(bonds, conv, true)
	result.AdjustedPoints = points
	if len(points) == 0 {
		return result
	}

	r, params := buildEngine(method, points)
	result.Parameters = params
	result.DiscountFactors, result.CurvePoints = assemble(points, method, r)
	return result
}

// buildEngine dispatches to the Engine for method. Method has already
// been normalised to one of the eight known literals by the caller.
func buildEngine(method Method, points []BootstrapPoint) (zeroRateFunc, *NelsonSiegelParams) {
	switch method {
	case MethodCubicSpline:
		return cubicSplineZeroRate(points), nil
	case MethodNelsonSiegel:
		params := fitNelsonSiegel(points)
		return nelsonSiegelZeroRate(params), &params
	case MethodBloomberg:
		return bloombergZeroRate(points), nil
	case MethodQuantLibLogLinear:
		return quantLibLogLinearZeroRate(points), nil
	case MethodQuantLibLogCubic:
		return quantLibLogCubicZeroRate(points), nil
	case MethodQuantLibLinearFwd:
		return quantLibLinearForwardZeroRate(points), nil
	case MethodQuantLibMonoConvex:
		return monotonicConvexZeroRate(points), nil
	default: // MethodLinear and the normalizeMethod fallback
		return linearZeroRate(points), nil
	}
}
