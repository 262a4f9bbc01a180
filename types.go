package main

import "fmt"

// Recommendation is the outcome of the buy-vs-rent comparison
type Recommendation int

const (
	RecommendRent Recommendation = iota // Renting and investing the difference wins (also on a tie)
	RecommendBuy                        // Property future value beats the investment worth
)

func (r Recommendation) String() string {
	switch r {
	case RecommendBuy:
		return "BUY"
	case RecommendRent:
		return "RENT"
	default:
		return "Unknown"
	}
}

// Verb returns the phrasing used in "better off buying/renting"
func (r Recommendation) Verb() string {
	if r == RecommendBuy {
		return "buying"
	}
	return "renting"
}

// MarshalText encodes the recommendation as "BUY" or "RENT" in JSON and YAML
func (r Recommendation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Recommendation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "BUY":
		*r = RecommendBuy
	case "RENT":
		*r = RecommendRent
	default:
		return fmt.Errorf("unknown recommendation %q", text)
	}
	return nil
}

// BuyingScenario summarises the outcome of buying the property
type BuyingScenario struct {
	TotalCost           float64 `json:"total_cost"`
	PropertyFutureValue float64 `json:"property_future_value"`
	NetWorth            float64 `json:"net_worth"` // future value minus total buying cost
}

// RentingScenario summarises the outcome of renting and investing the difference.
// NetWorth equals InvestmentWorth: rent is a consumed cost already netted into
// each month's invested difference.
type RentingScenario struct {
	TotalRentPaid   float64 `json:"total_rent_paid"`
	InvestmentWorth float64 `json:"investment_worth"`
	NetWorth        float64 `json:"net_worth"`
}

// Analysis is the complete result of one calculation request
type Analysis struct {
	Params         Params          `json:"params"`
	Mortgage       MortgageSummary `json:"mortgage"`
	Buying         BuyingScenario  `json:"buying"`
	Renting        RentingScenario `json:"renting"`
	Difference     float64         `json:"difference"` // property future value minus investment worth
	Recommendation Recommendation  `json:"recommendation"`
	Margin         float64         `json:"margin"`

	Series *CostSeries `json:"-"`
}
