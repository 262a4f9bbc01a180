package main

import (
	"errors"
	"math"
	"testing"
)

const costTolerance = 1e-6

func assertClose(t *testing.T, expected, actual, tolerance float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %.6f, got %.6f (diff: %.6f)", description, expected, actual, actual-expected)
	}
}

func defaultCostInputs() CostInputs {
	payment, _ := ComputeMonthlyPayment(1210000, 5, 10)
	return CostInputs{
		Years:                  10,
		Capital:                500000,
		MonthlyMortgagePayment: payment,
		MonthlyMaintenance:     200,
		BaseRent:               4200,
		RentIncreasePercent:    3,
		AltInvestmentPercent:   7,
	}
}

func mustBuildSeries(t *testing.T, in CostInputs) *CostSeries {
	t.Helper()
	s, err := BuildCostSeries(in)
	if err != nil {
		t.Fatalf("BuildCostSeries: %v", err)
	}
	return s
}

// =============================================================================
// Shape Tests
// =============================================================================

func TestCostSeries_RowCount(t *testing.T) {
	for _, years := range []int{1, 2, 10, 30} {
		in := defaultCostInputs()
		in.Years = years
		s := mustBuildSeries(t, in)
		if s.Len() != years*12+1 {
			t.Errorf("years=%d: expected %d rows, got %d", years, years*12+1, s.Len())
		}
		if len(s.Rows()) != s.Len() {
			t.Errorf("years=%d: Rows() length %d != Len() %d", years, len(s.Rows()), s.Len())
		}
		if s.Years() != years {
			t.Errorf("expected Years()=%d, got %d", years, s.Years())
		}
	}
}

func TestCostSeries_ClosingMonth(t *testing.T) {
	in := defaultCostInputs()
	s := mustBuildSeries(t, in)

	row, ok := s.Row(0)
	if !ok {
		t.Fatal("row 0 missing")
	}
	if row.BuyingCost != in.Capital {
		t.Errorf("row 0 buying cost should be the capital %.2f, got %.2f", in.Capital, row.BuyingCost)
	}
	if row.RentingCost != 0 {
		t.Errorf("row 0 renting cost should be 0, got %.2f", row.RentingCost)
	}
	if row.Diff != in.Capital {
		t.Errorf("row 0 diff should be the capital, got %.2f", row.Diff)
	}
	// Capital compounds for the full horizon
	expected := in.Capital * math.Pow(1.07, 10)
	assertClose(t, expected, row.Investment, 1e-4, "row 0 investment")
}

func TestCostSeries_RowOutOfRange(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	for _, m := range []int{-1, s.Len(), s.Len() + 5} {
		if _, ok := s.Row(m); ok {
			t.Errorf("Row(%d) should not exist", m)
		}
	}
}

// =============================================================================
// Column Behaviour Tests
// =============================================================================

func TestCostSeries_BuyingCostConstant(t *testing.T) {
	in := defaultCostInputs()
	s := mustBuildSeries(t, in)
	expected := in.MonthlyMortgagePayment + in.MonthlyMaintenance

	for _, row := range s.Rows()[1:] {
		if row.BuyingCost != expected {
			t.Fatalf("month %d: expected buying cost %.6f, got %.6f", row.Month, expected, row.BuyingCost)
		}
	}
}

func TestCostSeries_RentStepsOnlyAtYearBoundaries(t *testing.T) {
	in := defaultCostInputs()
	s := mustBuildSeries(t, in)
	rows := s.Rows()

	for m := 2; m < len(rows); m++ {
		prev, cur := rows[m-1].RentingCost, rows[m].RentingCost
		if cur < prev {
			t.Fatalf("month %d: rent decreased from %.2f to %.2f", m, prev, cur)
		}
		boundary := (m-1)%12 == 0
		if boundary && cur == prev {
			t.Errorf("month %d: rent should step up at a year boundary", m)
		}
		if !boundary && cur != prev {
			t.Errorf("month %d: rent changed mid-year from %.2f to %.2f", m, prev, cur)
		}
	}

	// Year k (1-based) pays base × 1.03^(k-1)
	assertClose(t, 4200, rows[1].RentingCost, costTolerance, "month 1 rent")
	assertClose(t, 4200, rows[12].RentingCost, costTolerance, "month 12 rent")
	assertClose(t, 4200*1.03, rows[13].RentingCost, costTolerance, "month 13 rent")
	assertClose(t, 4200*math.Pow(1.03, 9), rows[120].RentingCost, costTolerance, "month 120 rent")
}

func TestCostSeries_RentConstantWithoutIncrease(t *testing.T) {
	in := defaultCostInputs()
	in.RentIncreasePercent = 0
	s := mustBuildSeries(t, in)

	for _, row := range s.Rows()[1:] {
		if row.RentingCost != in.BaseRent {
			t.Fatalf("month %d: expected rent %.2f, got %.2f", row.Month, in.BaseRent, row.RentingCost)
		}
	}
}

func TestCostSeries_FinalMonthInvestmentEqualsDiff(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	last, _ := s.Row(s.Len() - 1)
	if last.Investment != last.Diff {
		t.Errorf("final month investment %.6f should equal diff %.6f", last.Investment, last.Diff)
	}
}

func TestCostSeries_InvestmentCompoundsMonthly(t *testing.T) {
	in := defaultCostInputs()
	s := mustBuildSeries(t, in)
	monthly := math.Pow(1.07, 1.0/12)
	horizon := in.Years * 12

	for _, m := range []int{1, 13, 60, horizon - 1} {
		row, _ := s.Row(m)
		expected := row.Diff * math.Pow(monthly, float64(horizon-m))
		assertClose(t, expected, row.Investment, 1e-6, "investment")
	}
}

func TestCostSeries_NegativeDiffIsKept(t *testing.T) {
	in := CostInputs{Years: 1, MonthlyMortgagePayment: 500, BaseRent: 900}
	s := mustBuildSeries(t, in)
	row, _ := s.Row(6)
	if row.Diff != -400 {
		t.Errorf("expected diff -400 when rent exceeds buying, got %.2f", row.Diff)
	}
	if row.Investment >= 0 {
		t.Errorf("negative diff should produce a negative investment, got %.2f", row.Investment)
	}
}

// =============================================================================
// Aggregate Tests
// =============================================================================

func TestCostSeries_AggregatesMatchRowSums(t *testing.T) {
	cases := map[string]CostInputs{
		"defaults": defaultCostInputs(),
		"zero rates": {
			Years: 5, Capital: 100000, MonthlyMortgagePayment: 2000, MonthlyMaintenance: 150, BaseRent: 1800,
		},
		"negative return": {
			Years: 3, Capital: 50000, MonthlyMortgagePayment: 1200, BaseRent: 1000,
			RentIncreasePercent: 5, AltInvestmentPercent: -2,
		},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			s := mustBuildSeries(t, in)
			var buying, rent, investment float64
			for _, row := range s.Rows() {
				buying += row.BuyingCost
				rent += row.RentingCost
				investment += row.Investment
			}
			assertClose(t, buying, s.TotalBuyingCost(), 1e-6, "total buying cost")
			assertClose(t, rent, s.TotalRentPaid(), 1e-6, "total rent paid")
			assertClose(t, investment, s.TotalInvestmentValue(), 1e-6, "total investment value")
			assertClose(t, investment-rent, s.NetDifference(), 1e-6, "net difference")
		})
	}
}

func TestCostSeries_DefaultTotals(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	assertClose(t, 2064071.28, s.TotalBuyingCost(), 0.01, "total buying cost")
	assertClose(t, 577779.52, s.TotalRentPaid(), 0.01, "total rent paid")
	assertClose(t, 2402888.92, s.TotalInvestmentValue(), 0.01, "total investment value")
}

func TestCostSeries_YearlySums(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	yearly := s.Yearly()

	if len(yearly) != 11 {
		t.Fatalf("expected 11 yearly rows (year 0 plus 10), got %d", len(yearly))
	}
	if yearly[0].BuyingCost != 500000 || yearly[0].RentingCost != 0 {
		t.Errorf("year 0 should hold only the closing month, got %+v", yearly[0])
	}
	assertClose(t, 12*4200, yearly[1].RentingCost, 1e-6, "year 1 rent")
	assertClose(t, 4200*1.03, yearly[2].MonthlyRent, 1e-6, "year 2 monthly rent")

	var buying, rent, investment float64
	for _, y := range yearly {
		buying += y.BuyingCost
		rent += y.RentingCost
		investment += y.Investment
	}
	assertClose(t, s.TotalBuyingCost(), buying, 1e-6, "yearly buying sum")
	assertClose(t, s.TotalRentPaid(), rent, 1e-6, "yearly rent sum")
	assertClose(t, s.TotalInvestmentValue(), investment, 1e-6, "yearly investment sum")
}

// =============================================================================
// Immutability Tests
// =============================================================================

func TestCostSeries_RowsReturnsCopy(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	rows := s.Rows()
	rows[5].BuyingCost = -1
	rows[5].Investment = 1e12

	again, _ := s.Row(5)
	if again.BuyingCost == -1 || again.Investment == 1e12 {
		t.Error("modifying Rows() result changed the series")
	}
	totalBefore := s.TotalBuyingCost()
	_ = s.Rows()
	if s.TotalBuyingCost() != totalBefore {
		t.Error("totals changed after reading rows")
	}
}

// =============================================================================
// Scenario Tests
// =============================================================================

func TestCostSeries_ScenarioA(t *testing.T) {
	// One year, $1000 payment vs $900 rent, no growth anywhere
	result, err := ComputeCostSeries(1, 0, 1000, 0, 900, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 13 {
		t.Fatalf("expected 13 rows, got %d", len(result.Rows))
	}
	for _, row := range result.Rows[1:] {
		if row.BuyingCost != 1000 || row.RentingCost != 900 || row.Diff != 100 {
			t.Errorf("month %d: expected 1000/900/100, got %.2f/%.2f/%.2f",
				row.Month, row.BuyingCost, row.RentingCost, row.Diff)
		}
	}
	if result.Rows[12].Investment != 100 {
		t.Errorf("month 12 investment should be 100, got %.2f", result.Rows[12].Investment)
	}
	if result.TotalRentPaid != 10800 {
		t.Errorf("expected total rent 10800, got %.2f", result.TotalRentPaid)
	}
	if result.TotalBuyingCost != 12000 {
		t.Errorf("expected total buying 12000, got %.2f", result.TotalBuyingCost)
	}
	if result.TotalInvestmentValue != 1200 {
		t.Errorf("expected total investment 1200, got %.2f", result.TotalInvestmentValue)
	}
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestCostSeries_RejectsInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CostInputs)
	}{
		{"zero years", func(in *CostInputs) { in.Years = 0 }},
		{"negative years", func(in *CostInputs) { in.Years = -1 }},
		{"years beyond maximum", func(in *CostInputs) { in.Years = MaxYears + 1 }},
		{"years overflowing months", func(in *CostInputs) { in.Years = 1 << 60 }},
		{"NaN capital", func(in *CostInputs) { in.Capital = math.NaN() }},
		{"infinite payment", func(in *CostInputs) { in.MonthlyMortgagePayment = math.Inf(1) }},
		{"NaN maintenance", func(in *CostInputs) { in.MonthlyMaintenance = math.NaN() }},
		{"infinite rent", func(in *CostInputs) { in.BaseRent = math.Inf(-1) }},
		{"NaN rent increase", func(in *CostInputs) { in.RentIncreasePercent = math.NaN() }},
		{"NaN investment return", func(in *CostInputs) { in.AltInvestmentPercent = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := defaultCostInputs()
			tc.mutate(&in)
			s, err := BuildCostSeries(in)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			if s != nil {
				t.Error("no partial series should be returned on error")
			}
		})
	}
}

func TestCostSeries_MaximumHorizon(t *testing.T) {
	in := defaultCostInputs()
	in.Years = MaxYears
	s := mustBuildSeries(t, in)
	if s.Len() != MaxYears*12+1 {
		t.Errorf("expected %d rows at the maximum horizon, got %d", MaxYears*12+1, s.Len())
	}
}

func TestComputeCostSeries_HugeYearsWithZeroRate(t *testing.T) {
	// A zero rate keeps the payment finite, so only the horizon check stands between
	// this input and a giant allocation
	_, err := ComputeCostSeries(1<<60, 0, 0, 0, 0, 0, 0)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "years" {
		t.Fatalf("expected a years validation error, got %v", err)
	}
}
