// Package convention holds the static per-currency market-convention table
// the rest of the bootstrapper consults to interpret par rates.
package convention

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// DayCount is the accrual basis used to turn a tenor into a year fraction.
type DayCount string

const (
	Act360 DayCount = "ACT/360"
	Act365 DayCount = "ACT/365"
	ActAct DayCount = "ACT/ACT"
	Thirty DayCount = "30/360"
)

// Compounding is the frequency convention a quoted rate is expressed under.
type Compounding string

const (
	Simple     Compounding = "simple"
	Annual     Compounding = "annual"
	SemiAnnual Compounding = "semi-annual"
	Quarterly  Compounding = "quarterly"
	Continuous Compounding = "continuous"
)

// BasisConvention is the (day-count, compounding, payment-frequency) triple
// for a currency's standard swap market. Immutable once built.
type BasisConvention struct {
	Currency         string
	DayCount         DayCount
	Compounding      Compounding
	PaymentFrequency int
}

// usd is the fallback convention used whenever a currency is unrecognised.
var usd = BasisConvention{Currency: "USD", DayCount: Act360, Compounding: SemiAnnual, PaymentFrequency: 2}

// builtin is the closed, compile-time minimum table from spec.md §4.1.
var builtin = map[string]BasisConvention{
	"USD": usd,
	"EUR": {Currency: "EUR", DayCount: Act360, Compounding: Annual, PaymentFrequency: 1},
	"GBP": {Currency: "GBP", DayCount: Act365, Compounding: SemiAnnual, PaymentFrequency: 2},
	"CHF": {Currency: "CHF", DayCount: Act360, Compounding: Annual, PaymentFrequency: 1},
	"JPY": {Currency: "JPY", DayCount: Act365, Compounding: SemiAnnual, PaymentFrequency: 2},
	"CAD": {Currency: "CAD", DayCount: Act365, Compounding: SemiAnnual, PaymentFrequency: 2},
	"SGD": {Currency: "SGD", DayCount: Act365, Compounding: SemiAnnual, PaymentFrequency: 2},
}

// overrides holds currencies loaded at runtime via LoadOverrides. It never
// replaces the seven minimum entries above; it only adds to the table.
var overrides = map[string]BasisConvention{}

// Lookup returns the BasisConvention for ccy (case-insensitive). Unknown
// currencies fall back to USD; no error is ever raised (spec.md §4.1).
func Lookup(ccy string) BasisConvention {
	key := strings.ToUpper(strings.TrimSpace(ccy))
	if c, ok := overrides[key]; ok {
		return c
	}
	if c, ok := builtin[key]; ok {
		return c
	}
	return usd
}

// overrideEntry is the YAML shape for one extra currency entry.
type overrideEntry struct {
	DayCount         string `yaml:"day_count"`
	Compounding      string `yaml:"compounding"`
	PaymentFrequency int    `yaml:"payment_frequency"`
}

// LoadOverrides merges extra currency conventions from a YAML file on top
// of the builtin table. A missing file is not an error — the builtin table
// is a complete, valid convention book on its own.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("convention: reading overrides file %s: %w", path, err)
	}

	var raw map[string]overrideEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("convention: parsing overrides file %s: %w", path, err)
	}

	for ccy, e := range raw {
		key := strings.ToUpper(strings.TrimSpace(ccy))
		if _, reserved := builtin[key]; reserved {
			continue // never shadow the seven minimum entries
		}
		overrides[key] = BasisConvention{
			Currency:         key,
			DayCount:         DayCount(e.DayCount),
			Compounding:      Compounding(e.Compounding),
			PaymentFrequency: e.PaymentFrequency,
		}
	}
	return nil
}
