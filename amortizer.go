package main

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is the sentinel wrapped by every input validation failure
var ErrInvalidParameter = errors.New("invalid parameter")

// ValidationError describes a rejected input field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets callers test with errors.Is(err, ErrInvalidParameter)
func (e ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field, format string, args ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// MaxYears bounds the horizon so years*12 rows always fit in memory
const MaxYears = 1000

func validateHorizon(years int) error {
	if years <= 0 {
		return invalid("years", "must be a positive whole number (got %d)", years)
	}
	if years > MaxYears {
		return invalid("years", "must be at most %d (got %d)", MaxYears, years)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requireFinite(field string, v float64) error {
	if !isFinite(v) {
		return invalid(field, "must be a finite number (got %v)", v)
	}
	return nil
}

// MonthlyPayment calculates the level monthly payment for a repayment mortgage
// Using formula: M = P * [r(1+r)^n] / [(1+r)^n - 1]
// where r = annualRateFraction / 12 and n = years * 12.
// A zero rate is the limit of the formula: P / n.
func MonthlyPayment(principal, annualRateFraction float64, years int) (float64, error) {
	if err := validateHorizon(years); err != nil {
		return 0, err
	}
	if err := requireFinite("principal", principal); err != nil {
		return 0, err
	}
	if err := requireFinite("interest_rate", annualRateFraction); err != nil {
		return 0, err
	}

	monthlyRate := annualRateFraction / 12
	numPayments := float64(years) * 12

	if monthlyRate == 0 {
		return principal / numPayments, nil
	}

	factor := math.Pow(1+monthlyRate, numPayments)
	return principal * (monthlyRate * factor) / (factor - 1), nil
}

// ComputeMonthlyPayment is the percentage-facing entry point: 5 means 5%
func ComputeMonthlyPayment(principal, annualRatePercent float64, years int) (float64, error) {
	return MonthlyPayment(principal, annualRatePercent/100, years)
}

// MortgageSummary holds the headline figures of a fixed-rate loan
type MortgageSummary struct {
	Principal        float64 `json:"principal"`
	InterestRate     float64 `json:"interest_rate"` // percentage, e.g. 5 = 5%
	TermYears        int     `json:"term_years"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalPayments    float64 `json:"total_payments"`
	TotalInterest    float64 `json:"total_interest"`
	NumberOfPayments int     `json:"number_of_payments"`
}

// SummariseMortgage computes the payment and lifetime totals for a loan
func SummariseMortgage(principal, annualRatePercent float64, years int) (MortgageSummary, error) {
	payment, err := ComputeMonthlyPayment(principal, annualRatePercent, years)
	if err != nil {
		return MortgageSummary{}, err
	}

	n := years * 12
	total := payment * float64(n)

	return MortgageSummary{
		Principal:        principal,
		InterestRate:     annualRatePercent,
		TermYears:        years,
		MonthlyPayment:   payment,
		TotalPayments:    total,
		TotalInterest:    total - principal,
		NumberOfPayments: n,
	}, nil
}
