package curve

import (
	"strings"

	"github.com/shopspring/decimal"
)

const csvHeader = "Tenor, Discount Factor, Zero Rate (%), Forward Rate (%), Source, Day Count, Compounding"

// ExportCSV serialises a BootstrapResult per spec.md §4.5: a fixed
// header, one LF-terminated row per grid point, dot-decimal
// formatting via shopspring/decimal so the fixed precisions (2dp
// tenor, 8dp DF, 4dp percent rates) are exact rather than subject to
// binary-float rounding. An empty result still yields header + no
// data rows.
func ExportCSV(result BootstrapResult) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, dfPoint := range result.DiscountFactors {
		tenor := roundDecimal(dfPoint.Tenor, 2)
		df := roundDecimal(dfPoint.DF, 8)
		zero := roundDecimal(dfPoint.ZeroRate*100, 4)

		// The Assembler always populates ForwardRate (spec.md §4.4: the
		// first grid point's forward is defined as r(t0)), so "N/A"
		// from spec.md §4.5 is reserved for a DiscountFactor built
		// outside the normal Assembler path; none arise here.
		forward := roundDecimal(dfPoint.ForwardRate*100, 4)

		b.WriteString(tenor)
		b.WriteString(",")
		b.WriteString(df)
		b.WriteString(",")
		b.WriteString(zero)
		b.WriteString(",")
		b.WriteString(forward)
		b.WriteString(",")
		b.WriteString(string(dfPoint.Source))
		b.WriteString(",")
		b.WriteString(string(result.BasisConvention.DayCount))
		b.WriteString(",")
		b.WriteString(string(result.BasisConvention.Compounding))
		b.WriteString("\n")
	}

	return b.String()
}

func roundDecimal(v float64, places int32) string {
	return decimal.NewFromFloat(v).Round(places).StringFixed(places)
}
