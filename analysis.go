package main

import (
	"fmt"
	"math"
)

// PropertyFutureValue grows the property value annually for the given number of years
func PropertyFutureValue(value, annualIncreasePercent float64, years int) float64 {
	return value * math.Pow(1+annualIncreasePercent/100, float64(years))
}

// Recommend compares the property future value with the investment worth.
// Buying needs a strictly positive difference; a tie recommends renting.
func Recommend(propertyFutureValue, totalInvestmentValue float64) (Recommendation, float64) {
	diff := propertyFutureValue - totalInvestmentValue
	if diff > 0 {
		return RecommendBuy, diff
	}
	return RecommendRent, math.Abs(diff)
}

// Analyze runs the amortizer, the cost projector and the recommendation for one parameter set
func Analyze(p Params) (*Analysis, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	principal := p.LoanPrincipal()
	mortgage, err := SummariseMortgage(principal, p.InterestRate, p.Years)
	if err != nil {
		return nil, fmt.Errorf("mortgage: %w", err)
	}

	series, err := BuildCostSeries(CostInputs{
		Years:                  p.Years,
		Capital:                p.Capital,
		MonthlyMortgagePayment: mortgage.MonthlyPayment,
		MonthlyMaintenance:     p.MonthlyMaintenance,
		BaseRent:               p.Rent,
		RentIncreasePercent:    p.RentIncrease,
		AltInvestmentPercent:   p.AlternativeInvestmentIncrease,
	})
	if err != nil {
		return nil, fmt.Errorf("cost series: %w", err)
	}

	futureValue := PropertyFutureValue(p.PropertyValue, p.PropertyValueIncrease, p.Years)
	investment := series.TotalInvestmentValue()
	rec, margin := Recommend(futureValue, investment)

	return &Analysis{
		Params:   p,
		Mortgage: mortgage,
		Buying: BuyingScenario{
			TotalCost:           series.TotalBuyingCost(),
			PropertyFutureValue: futureValue,
			NetWorth:            futureValue - series.TotalBuyingCost(),
		},
		Renting: RentingScenario{
			TotalRentPaid:   series.TotalRentPaid(),
			InvestmentWorth: investment,
			NetWorth:        investment,
		},
		Difference:     futureValue - investment,
		Recommendation: rec,
		Margin:         margin,
		Series:         series,
	}, nil
}
