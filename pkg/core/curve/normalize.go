package curve

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"curveboot/pkg/core/convention"
	"curveboot/pkg/core/curveconfig"
)

const minTenor = 0.01

// convertSwapRate turns a par swap/bond rate at tenor t into a
// continuously-compounded zero rate, per spec.md §4.2.
func convertSwapRate(rate, t float64, conv convention.BasisConvention) float64 {
	if conv.Compounding == convention.Continuous {
		return rate
	}
	if conv.Compounding == convention.Simple || t <= 1 {
		return math.Log(1+rate*t) / t
	}
	n := float64(conv.PaymentFrequency)
	if n <= 0 {
		n = 1
	}
	return n * math.Log(1+rate/n)
}

// convertFuturesRate turns a futures price-implied rate into a
// continuously-compounded zero rate, assuming 3-month money-market
// accrual (spec.md §4.2).
func convertFuturesRate(rate float64) float64 {
	const accrual = 0.25
	return math.Log(1+rate*accrual) / accrual
}

// ParseContractTenor resolves a "Mon 'YY" contract label (e.g. "Dec '25")
// to a tenor in years from today, per spec.md §4.2. Resolves to day 15
// of the named month. Returns (tenor, ok); ok is false when the label
// cannot be parsed, in which case the caller should drop the
// observation (spec.md §7's out-of-range classification).
func ParseContractTenor(label string, today time.Time) (float64, bool) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return 0, false
	}
	monthStr := fields[0]
	yearStr := strings.TrimPrefix(fields[1], "'")

	month, ok := parseMonthAbbrev(monthStr)
	if !ok {
		return 0, false
	}
	yy, err := strconv.Atoi(yearStr)
	if err != nil || yy < 0 || yy > 99 {
		return 0, false
	}

	maturity := time.Date(2000+yy, month, 15, 0, 0, 0, 0, time.UTC)
	tenor := maturity.Sub(today).Hours() / 24 / 365.25
	if tenor < minTenor {
		tenor = minTenor
	}
	return tenor, true
}

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func parseMonthAbbrev(s string) (time.Month, bool) {
	m, ok := monthAbbrevs[strings.ToLower(s)]
	return m, ok
}

// normalizeInputs converts raw swap/futures/bond observations into
// BootstrapPoint pillars: it applies the rate conversion for the
// source kind, drops anything with a NaN tenor or rate or a
// non-positive tenor (non-positive rates are kept),
// reconciles futures against swaps, de-duplicates by tenor, and
// returns the pillar set sorted ascending by tenor.
//
// bondMode mirrors spec.md §4.5's BootstrapBonds contract: every input
// is treated as a swap-equivalent yield with Priority 1 and no
// futures-vs-swap reconciliation runs.
func normalizeInputs(raw []RawPoint, conv convention.BasisConvention, bondMode bool) []BootstrapPoint {
	var points []BootstrapPoint

	for _, p := range raw {
		if math.IsNaN(p.Tenor) || math.IsNaN(p.Rate) || p.Tenor <= 0 {
			continue // out-of-range numerics are silently dropped, spec.md §7
		}
		tenor := math.Max(p.Tenor, minTenor)

		var zeroRate float64
		var source Source
		var priority int

		switch {
		case bondMode:
			zeroRate = convertSwapRate(p.Rate, tenor, conv)
			source = SourceBond
			priority = 1
		case p.Source == SourceFutures:
			zeroRate = convertFuturesRate(p.Rate)
			source = SourceFutures
			priority = 2
		case p.Source == SourceBond:
			zeroRate = convertSwapRate(p.Rate, tenor, conv)
			source = SourceBond
			priority = 1
		default: // SourceSwap or anything else supplied as a par rate
			zeroRate = convertSwapRate(p.Rate, tenor, conv)
			source = SourceSwap
			priority = 1
		}

		if math.IsNaN(zeroRate) || math.IsInf(zeroRate, 0) {
			continue
		}

		points = append(points, BootstrapPoint{
			Tenor:    tenor,
			Rate:     zeroRate,
			Source:   source,
			Priority: priority,
		})
	}

	if !bondMode {
		reconcileFuturesAgainstSwaps(points)
	}

	return dedupeAndSort(points)
}

// reconcileFuturesAgainstSwaps implements spec.md §4.2's futures-vs-swap
// reconciliation. It mutates the Rate/Adjusted/OriginalRate fields of
// futures pillars in place; it only runs when at least two swap
// pillars exist.
func reconcileFuturesAgainstSwaps(points []BootstrapPoint) {
	var swaps []BootstrapPoint
	for _, p := range points {
		if p.Source == SourceSwap {
			swaps = append(swaps, p)
		}
	}
	if len(swaps) < 2 {
		return
	}
	sort.Slice(swaps, func(i, j int) bool { return swaps[i].Tenor < swaps[j].Tenor })

	tolerance := curveconfig.FuturesTolerance()
	futuresWeight := curveconfig.FuturesWeight()
	swapWeight := 1 - futuresWeight

	for i := range points {
		if points[i].Source != SourceFutures {
			continue
		}
		expected, ok := interpolateExpected(swaps, points[i].Tenor)
		if !ok {
			continue // futures pillar lies outside the swap span: keep unchanged
		}
		diff := points[i].Rate - expected
		if math.Abs(diff) <= tolerance {
			continue
		}
		original := points[i].Rate
		points[i].Rate = futuresWeight*original + swapWeight*expected
		points[i].Adjusted = true
		points[i].OriginalRate = &original
	}
}

// interpolateExpected linearly interpolates the swap-implied rate at
// tenor t between the nearest bracketing swap pillars. ok is false
// when t lies outside [swaps[0].Tenor, swaps[len-1].Tenor].
func interpolateExpected(swaps []BootstrapPoint, t float64) (float64, bool) {
	if t < swaps[0].Tenor || t > swaps[len(swaps)-1].Tenor {
		return 0, false
	}
	for i := 0; i < len(swaps)-1; i++ {
		lo, hi := swaps[i], swaps[i+1]
		if t >= lo.Tenor && t <= hi.Tenor {
			if hi.Tenor == lo.Tenor {
				return lo.Rate, true
			}
			frac := (t - lo.Tenor) / (hi.Tenor - lo.Tenor)
			return lo.Rate + frac*(hi.Rate-lo.Rate), true
		}
	}
	return swaps[len(swaps)-1].Rate, true
}

// dedupeAndSort sorts by priority ascending (swaps/bonds before
// futures) then keeps the first entry per tenor key (rounded to 3dp),
// so a swap always wins a collision against a futures pillar with the
// same rounded tenor. The result is finally sorted by tenor ascending.
func dedupeAndSort(points []BootstrapPoint) []BootstrapPoint {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Priority < points[j].Priority })

	seen := make(map[string]bool)
	var deduped []BootstrapPoint
	for _, p := range points {
		key := strconv.FormatFloat(math.Round(p.Tenor*1000)/1000, 'f', 3, 64)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, p)
	}

	sort.Slice(deduped, func(i, j int) bool { return deduped[i].Tenor < deduped[j].Tenor })
	return deduped
}
