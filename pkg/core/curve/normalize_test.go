package curve

import (
	"math"
	"testing"
	"time"

	"curveboot/pkg/core/convention"
)

func TestConvertSwapRateSimpleOrShortTenor(t *testing.T) {
	conv := convention.Lookup("USD") // semi-annual
	got := convertSwapRate(0.045, 1, conv)
	want := math.Log(1+0.045*1) / 1
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("convertSwapRate(short tenor) = %v, want %v", got, want)
	}
}

func TestConvertSwapRateSemiAnnualLongTenor(t *testing.T) {
	conv := convention.Lookup("USD")
	got := convertSwapRate(0.045, 2, conv)
	want := 2 * math.Log(1+0.045/2)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("convertSwapRate(2y) = %v, want %v", got, want)
	}
}

func TestConvertSwapRateContinuousIsIdentity(t *testing.T) {
	conv := convention.BasisConvention{Compounding: convention.Continuous, PaymentFrequency: 1}
	if got := convertSwapRate(0.05, 5, conv); got != 0.05 {
		t.Errorf("convertSwapRate(continuous) = %v, want 0.05", got)
	}
}

func TestConvertFuturesRate(t *testing.T) {
	price := 95.0
	rate := (100 - price) / 100
	got := convertFuturesRate(rate)
	want := math.Log(1+rate*0.25) / 0.25
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("convertFuturesRate = %v, want %v", got, want)
	}
}

func TestParseContractTenorPastDateIsClamped(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tenor, ok := ParseContractTenor("Dec '25", today)
	if !ok {
		t.Fatal("expected Dec '25 to parse even though it is in the past")
	}
	if tenor != minTenor {
		t.Errorf("expected past-dated contract tenor clamped to the %v floor, got %v", minTenor, tenor)
	}
}

func TestParseContractTenorFuture(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tenor, ok := ParseContractTenor("Dec '25", today)
	if !ok {
		t.Fatal("expected Dec '25 to parse")
	}
	maturity := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
	want := maturity.Sub(today).Hours() / 24 / 365.25
	if math.Abs(tenor-want) > 1e-9 {
		t.Errorf("tenor = %v, want %v", tenor, want)
	}
}

func TestParseContractTenorMalformed(t *testing.T) {
	if _, ok := ParseContractTenor("garbage", time.Now()); ok {
		t.Error("expected malformed contract label to fail parsing")
	}
	if _, ok := ParseContractTenor("Foo '25", time.Now()); ok {
		t.Error("expected unknown month abbreviation to fail parsing")
	}
}

func TestNormalizeInputsDropsNonPositiveTenor(t *testing.T) {
	raw := []RawPoint{
		{Tenor: 0, Rate: 0.04, Source: SourceSwap},
		{Tenor: -1, Rate: 0.04, Source: SourceSwap},
		{Tenor: 2, Rate: 0.04, Source: SourceSwap},
	}
	points := normalizeInputs(raw, convention.Lookup("USD"), false)
	if len(points) != 1 {
		t.Fatalf("expected 1 surviving point, got %d", len(points))
	}
}

func TestNormalizeInputsDropsNaN(t *testing.T) {
	raw := []RawPoint{{Tenor: math.NaN(), Rate: 0.04, Source: SourceSwap}}
	points := normalizeInputs(raw, convention.Lookup("USD"), false)
	if len(points) != 0 {
		t.Fatalf("expected NaN tenor dropped, got %d points", len(points))
	}
}

func TestDedupePrefersSwapOverFutures(t *testing.T) {
	raw := []RawPoint{
		{Tenor: 2.0001, Rate: 0.05, Source: SourceFutures},
		{Tenor: 2.0, Rate: 0.04, Source: SourceSwap},
	}
	points := normalizeInputs(raw, convention.Lookup("USD"), false)
	if len(points) != 1 {
		t.Fatalf("expected dedup to collapse to 1 point, got %d", len(points))
	}
	if points[0].Source != SourceSwap {
		t.Errorf("expected swap to win the tenor collision, got %s", points[0].Source)
	}
}

func TestReconciliationAdjustsOutlierFutures(t *testing.T) {
	raw := []RawPoint{
		{Tenor: 2, Rate: 0.040, Source: SourceSwap},
		{Tenor: 5, Rate: 0.042, Source: SourceSwap},
		{Tenor: 3, Rate: 0.100, Source: SourceFutures}, // wildly off vs ~0.0403 expected (between the converted swap rates)
	}
	points := normalizeInputs(raw, convention.Lookup("USD"), false)

	var fut BootstrapPoint
	found := false
	for _, p := range points {
		if p.Source == SourceFutures {
			fut = p
			found = true
		}
	}
	if !found {
		t.Fatal("futures pillar missing")
	}
	if !fut.Adjusted {
		t.Error("expected futures pillar to be marked adjusted")
	}
	if fut.OriginalRate == nil {
		t.Fatal("expected OriginalRate to be preserved")
	}
	converted := convertFuturesRate(0.100)
	if *fut.OriginalRate != converted {
		t.Errorf("OriginalRate = %v, want the pre-adjustment converted futures rate %v", *fut.OriginalRate, converted)
	}
}

func TestReconciliationLeavesFuturesOutsideSwapSpanUnchanged(t *testing.T) {
	raw := []RawPoint{
		{Tenor: 2, Rate: 0.040, Source: SourceSwap},
		{Tenor: 5, Rate: 0.042, Source: SourceSwap},
		{Tenor: 0.25, Rate: 0.200, Source: SourceFutures}, // before the swap span
	}
	points := normalizeInputs(raw, convention.Lookup("USD"), false)
	for _, p := range points {
		if p.Source == SourceFutures && p.Adjusted {
			t.Error("expected futures pillar outside swap span to remain unadjusted")
		}
	}
}

func TestBondModeIgnoresReconciliation(t *testing.T) {
	raw := []RawPoint{
		{Tenor: 2, Rate: 0.04, Source: SourceBond},
		{Tenor: 3, Rate: 0.10, Source: SourceFutures}, // source is irrelevant in bond mode
	}
	points := normalizeInputs(raw, convention.Lookup("USD"), true)
	for _, p := range points {
		if p.Source != SourceBond || p.Priority != 1 || p.Adjusted {
			t.Errorf("bond mode point malformed: %+v", p)
		}
	}
}
