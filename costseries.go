package main

import "math"

// CostInputs are the Cost Projector parameters. Percentages are plain numbers (7 = 7%).
type CostInputs struct {
	Years                  int
	Capital                float64
	MonthlyMortgagePayment float64
	MonthlyMaintenance     float64
	BaseRent               float64
	RentIncreasePercent    float64
	AltInvestmentPercent   float64
}

// Validate rejects inputs that would produce a meaningless series
func (in CostInputs) Validate() error {
	if err := validateHorizon(in.Years); err != nil {
		return err
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"capital", in.Capital},
		{"monthly_mortgage_payment", in.MonthlyMortgagePayment},
		{"monthly_maintenance", in.MonthlyMaintenance},
		{"rent", in.BaseRent},
		{"rent_increase", in.RentIncreasePercent},
		{"alternative_investment_increase", in.AltInvestmentPercent},
	}
	for _, f := range fields {
		if err := requireFinite(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// CostRow is one month of the buy-vs-rent comparison. Month 0 is the closing month.
type CostRow struct {
	Month       int     `json:"month"`
	BuyingCost  float64 `json:"buying_cost"`
	RentingCost float64 `json:"renting_cost"`
	Diff        float64 `json:"diff"`
	Investment  float64 `json:"investment"`
}

// CostSeries is the month-indexed table built by BuildCostSeries.
// It is never modified after construction; accessors hand out copies.
type CostSeries struct {
	years int
	rows  []CostRow

	totalBuying     float64
	totalRent       float64
	totalInvestment float64
}

// BuildCostSeries builds the (years*12 + 1)-row cost table
func BuildCostSeries(in CostInputs) (*CostSeries, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	horizon := in.Years * 12
	rentGrowth := 1 + in.RentIncreasePercent/100
	// Annual return converted to an exact monthly factor
	monthlyGrowth := math.Pow(1+in.AltInvestmentPercent/100, 1.0/12)
	monthlyBuying := in.MonthlyMortgagePayment + in.MonthlyMaintenance

	s := &CostSeries{
		years: in.Years,
		rows:  make([]CostRow, horizon+1),
	}

	for m := 0; m <= horizon; m++ {
		buying := monthlyBuying
		rent := 0.0
		if m == 0 {
			buying = in.Capital
		} else {
			rent = in.BaseRent * math.Pow(rentGrowth, float64((m-1)/12))
		}

		diff := buying - rent
		s.rows[m] = CostRow{
			Month:       m,
			BuyingCost:  buying,
			RentingCost: rent,
			Diff:        diff,
			Investment:  diff * math.Pow(monthlyGrowth, float64(horizon-m)),
		}

		s.totalBuying += buying
		s.totalRent += rent
		s.totalInvestment += s.rows[m].Investment
	}

	return s, nil
}

// Years returns the comparison horizon in years
func (s *CostSeries) Years() int { return s.years }

// Len returns the number of rows (years*12 + 1)
func (s *CostSeries) Len() int { return len(s.rows) }

// Row returns the row for month m
func (s *CostSeries) Row(m int) (CostRow, bool) {
	if m < 0 || m >= len(s.rows) {
		return CostRow{}, false
	}
	return s.rows[m], true
}

// Rows returns a copy of every row
func (s *CostSeries) Rows() []CostRow {
	out := make([]CostRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// TotalBuyingCost is the sum of the buying_cost column
func (s *CostSeries) TotalBuyingCost() float64 { return s.totalBuying }

// TotalRentPaid is the sum of the renting_cost column
func (s *CostSeries) TotalRentPaid() float64 { return s.totalRent }

// TotalInvestmentValue is the sum of the investment column: the net worth of
// renting and investing the monthly difference
func (s *CostSeries) TotalInvestmentValue() float64 { return s.totalInvestment }

// NetDifference is investment worth minus rent paid
func (s *CostSeries) NetDifference() float64 {
	return s.totalInvestment - s.totalRent
}

// YearSummary aggregates the rows of one year. Year 0 is the closing month alone.
type YearSummary struct {
	Year        int     `json:"year"`
	BuyingCost  float64 `json:"buying_cost"`
	RentingCost float64 `json:"renting_cost"`
	Diff        float64 `json:"diff"`
	Investment  float64 `json:"investment"`
	MonthlyRent float64 `json:"monthly_rent"`
}

// Yearly sums each column per year: month 0 is year 0, months 1-12 are year 1, etc.
func (s *CostSeries) Yearly() []YearSummary {
	out := make([]YearSummary, s.years+1)
	for i := range out {
		out[i].Year = i
	}
	for _, r := range s.rows {
		y := 0
		if r.Month > 0 {
			y = (r.Month-1)/12 + 1
		}
		out[y].BuyingCost += r.BuyingCost
		out[y].RentingCost += r.RentingCost
		out[y].Diff += r.Diff
		out[y].Investment += r.Investment
		out[y].MonthlyRent = r.RentingCost
	}
	return out
}

// CostSeriesResult is the plain-data form of a series handed to front ends
type CostSeriesResult struct {
	Rows                 []CostRow `json:"rows"`
	TotalBuyingCost      float64   `json:"total_buying_cost"`
	TotalRentPaid        float64   `json:"total_rent_paid"`
	TotalInvestmentValue float64   `json:"total_investment_value"`
}

// Result converts the series into its plain-data form
func (s *CostSeries) Result() CostSeriesResult {
	return CostSeriesResult{
		Rows:                 s.Rows(),
		TotalBuyingCost:      s.totalBuying,
		TotalRentPaid:        s.totalRent,
		TotalInvestmentValue: s.totalInvestment,
	}
}

// ComputeCostSeries is the positional entry point used by front ends
func ComputeCostSeries(years int, capital, monthlyPayment, monthlyMaintenance, rent,
	rentIncreasePercent, altInvestmentPercent float64) (CostSeriesResult, error) {

	s, err := BuildCostSeries(CostInputs{
		Years:                  years,
		Capital:                capital,
		MonthlyMortgagePayment: monthlyPayment,
		MonthlyMaintenance:     monthlyMaintenance,
		BaseRent:               rent,
		RentIncreasePercent:    rentIncreasePercent,
		AltInvestmentPercent:   altInvestmentPercent,
	})
	if err != nil {
		return CostSeriesResult{}, err
	}
	return s.Result(), nil
}
