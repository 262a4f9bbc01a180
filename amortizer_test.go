package main

import (
	"errors"
	"math"
	"testing"
)

// Mortgage Calculation Validation Tests
//
// Monthly Payment (Repayment):
//   M = P × [r(1+r)^n] / [(1+r)^n - 1]
//   Where:
//     M = Monthly payment
//     P = Principal (loan amount)
//     r = Monthly interest rate (annual rate / 12)
//     n = Total number of payments (years × 12)
//
// At r = 0 the formula is 0/0; the limit is P / n.

const mortgageTolerance = 0.01

func assertMortgageEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > mortgageTolerance {
		t.Errorf("%s: expected $%.2f, got $%.2f (diff: $%.2f)",
			description, expected, actual, actual-expected)
	}
}

// =============================================================================
// Monthly Payment Tests
// =============================================================================

func TestMortgage_MonthlyPayment(t *testing.T) {
	tests := []struct {
		principal       float64
		interestRate    float64
		termYears       int
		expectedMonthly float64
		description     string
	}{
		{200000, 0.04, 25, 1055.67, "$200k @ 4% for 25 years"},
		{300000, 0.05, 30, 1610.46, "$300k @ 5% for 30 years"},
		{150000, 0.035, 20, 869.94, "$150k @ 3.5% for 20 years"},
		{500000, 0.06, 25, 3221.51, "$500k @ 6% for 25 years"},
		{1210000, 0.05, 10, 12833.93, "$1.21M @ 5% for 10 years (default scenario)"},
		{100000, 0.00, 10, 833.33, "$100k @ 0% for 10 years (interest-free)"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			monthly, err := MonthlyPayment(tc.principal, tc.interestRate, tc.termYears)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertMortgageEquals(t, tc.expectedMonthly, monthly, tc.description)
		})
	}
}

func TestMortgage_ComputeMonthlyPaymentTakesPercent(t *testing.T) {
	fromPercent, err := ComputeMonthlyPayment(1210000, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromFraction, _ := MonthlyPayment(1210000, 0.05, 10)
	if fromPercent != fromFraction {
		t.Errorf("5%% and 0.05 should give the same payment: %.6f vs %.6f", fromPercent, fromFraction)
	}
}

func TestMortgage_ZeroRateIsPrincipalOverPayments(t *testing.T) {
	for _, years := range []int{1, 5, 10, 30} {
		principal := 1210000.0
		monthly, err := MonthlyPayment(principal, 0, years)
		if err != nil {
			t.Fatalf("years=%d: unexpected error: %v", years, err)
		}
		expected := principal / float64(years*12)
		if math.Abs(monthly-expected) > 1e-9 {
			t.Errorf("years=%d: expected %.6f, got %.6f", years, expected, monthly)
		}
		if math.IsNaN(monthly) || math.IsInf(monthly, 0) {
			t.Errorf("years=%d: zero rate produced %v", years, monthly)
		}
	}
}

func TestMortgage_ZeroPrincipal(t *testing.T) {
	monthly, err := MonthlyPayment(0, 0.05, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monthly != 0 {
		t.Errorf("zero principal should cost nothing, got %.2f", monthly)
	}
}

func TestMortgage_NegativeRateStillAmortizes(t *testing.T) {
	monthly, err := MonthlyPayment(120000, -0.01, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monthly >= 1000 {
		t.Errorf("negative rate should pay less than principal/n (1000), got %.2f", monthly)
	}
}

// =============================================================================
// Invalid Input Tests
// =============================================================================

func TestMortgage_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		field     string
	}{
		{"zero years", 100000, 0.05, 0, "years"},
		{"negative years", 100000, 0.05, -3, "years"},
		{"years beyond maximum", 100000, 0.05, MaxYears + 1, "years"},
		{"huge years at zero rate", 100000, 0, 1 << 60, "years"},
		{"NaN principal", math.NaN(), 0.05, 10, "principal"},
		{"infinite principal", math.Inf(1), 0.05, 10, "principal"},
		{"NaN rate", 100000, math.NaN(), 10, "interest_rate"},
		{"infinite rate", 100000, math.Inf(-1), 10, "interest_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MonthlyPayment(tc.principal, tc.rate, tc.years)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

// =============================================================================
// Mortgage Summary Tests
// =============================================================================

func TestMortgage_Summary(t *testing.T) {
	s, err := SummariseMortgage(1210000, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.NumberOfPayments != 120 {
		t.Errorf("expected 120 payments, got %d", s.NumberOfPayments)
	}
	if s.TermYears != 10 || s.InterestRate != 5 || s.Principal != 1210000 {
		t.Errorf("summary should echo its inputs, got %+v", s)
	}
	assertMortgageEquals(t, 12833.93, s.MonthlyPayment, "monthly payment")
	assertMortgageEquals(t, s.MonthlyPayment*120, s.TotalPayments, "total payments")
	assertMortgageEquals(t, s.TotalPayments-1210000, s.TotalInterest, "total interest")

	if s.TotalInterest <= 0 {
		t.Errorf("a 5%% loan must cost interest, got %.2f", s.TotalInterest)
	}
}

func TestMortgage_SummaryZeroRateHasNoInterest(t *testing.T) {
	s, err := SummariseMortgage(120000, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMortgageEquals(t, 1000, s.MonthlyPayment, "monthly payment")
	assertMortgageEquals(t, 0, s.TotalInterest, "total interest")
}

func TestValidationError_Message(t *testing.T) {
	err := invalid("years", "must be positive (got %d)", 0)
	if got, want := err.Error(), "years: must be positive (got 0)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
