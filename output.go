package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats an amount with thousands separators and two decimals, e.g. "$1,234.56"
func FormatMoney(amount float64) string {
	if !isFinite(amount) {
		return "n/a"
	}
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatMoneyShort abbreviates large amounts, e.g. "$1.60M" or "$420k"
func FormatMoneyShort(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount >= 1000000 {
		return fmt.Sprintf("%s$%.2fM", sign, amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("%s$%.0fk", sign, amount/1000)
	}
	return fmt.Sprintf("%s$%.0f", sign, amount)
}

// FormatPercent renders a plain percentage number, e.g. 4.5 -> "4.5%"
func FormatPercent(rate float64) string {
	return formatDefaultPercent(rate)
}

func printBox(w io.Writer, title string) {
	const width = 78
	pad := width - len([]rune(title))
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	fmt.Fprintln(w, "╔"+strings.Repeat("═", width)+"╗")
	fmt.Fprintln(w, "║"+strings.Repeat(" ", left)+title+strings.Repeat(" ", pad-left)+"║")
	fmt.Fprintln(w, "╚"+strings.Repeat("═", width)+"╝")
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(title))))
}

// PrintHeader prints the report banner
func PrintHeader(w io.Writer) {
	printBox(w, "RENT OR BUY ANALYSIS")
	fmt.Fprintln(w)
}

// PrintInputs prints the calculation parameters in two columns
func PrintInputs(w io.Writer, p Params) {
	printSection(w, "Inputs:")
	rows := [][2]string{
		{fmt.Sprintf("Years:              %d", p.Years), fmt.Sprintf("Monthly rent:       %s", FormatMoney(p.Rent))},
		{fmt.Sprintf("Property value:     %s", FormatMoney(p.PropertyValue)), fmt.Sprintf("Rent increase:      %s", FormatPercent(p.RentIncrease))},
		{fmt.Sprintf("Capital:            %s", FormatMoney(p.Capital)), fmt.Sprintf("Investment return:  %s", FormatPercent(p.AlternativeInvestmentIncrease))},
		{fmt.Sprintf("Purchase costs:     %s", FormatMoney(p.PurchaseCost)), fmt.Sprintf("Property increase:  %s", FormatPercent(p.PropertyValueIncrease))},
		{fmt.Sprintf("Interest rate:      %s", FormatPercent(p.InterestRate)), fmt.Sprintf("Maintenance:        %s/month", FormatMoney(p.MonthlyMaintenance))},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-38s %s\n", r[0], r[1])
	}
	fmt.Fprintln(w)
}

// PrintMortgage prints the mortgage summary
func PrintMortgage(w io.Writer, m MortgageSummary) {
	printSection(w, "Mortgage:")
	fmt.Fprintf(w, "  Loan principal:     %s\n", FormatMoney(m.Principal))
	fmt.Fprintf(w, "  Rate / term:        %s over %d years (%d payments)\n", FormatPercent(m.InterestRate), m.TermYears, m.NumberOfPayments)
	fmt.Fprintf(w, "  Monthly payment:    %s\n", FormatMoney(m.MonthlyPayment))
	fmt.Fprintf(w, "  Total payments:     %s\n", FormatMoney(m.TotalPayments))
	fmt.Fprintf(w, "  Total interest:     %s\n", FormatMoney(m.TotalInterest))
	fmt.Fprintln(w)
}

// PrintAnalysis prints both scenarios and the recommendation
func PrintAnalysis(w io.Writer, a *Analysis) {
	printSection(w, "Buying:")
	fmt.Fprintf(w, "  Total buying cost:        %s\n", FormatMoney(a.Buying.TotalCost))
	fmt.Fprintf(w, "  Property value after %2dy: %s\n", a.Params.Years, FormatMoney(a.Buying.PropertyFutureValue))
	fmt.Fprintf(w, "  Net worth:                %s\n", FormatMoney(a.Buying.NetWorth))
	fmt.Fprintln(w)

	printSection(w, "Renting:")
	fmt.Fprintf(w, "  Total rent paid:          %s\n", FormatMoney(a.Renting.TotalRentPaid))
	fmt.Fprintf(w, "  Investment worth:         %s\n", FormatMoney(a.Renting.InvestmentWorth))
	fmt.Fprintf(w, "  Net worth:                %s\n", FormatMoney(a.Renting.NetWorth))
	fmt.Fprintln(w)

	printBox(w, "RECOMMENDATION: "+a.Recommendation.String())
	fmt.Fprintf(w, "  You are better off %s by %s over %d years.\n",
		a.Recommendation.Verb(), FormatMoney(a.Margin), a.Params.Years)
	fmt.Fprintf(w, "  Property value minus investment worth: %s\n", FormatMoney(a.Difference))
	fmt.Fprintln(w)

	PrintSummary(w, a)
}

// PrintSummary prints the closing comparison of both positions at the horizon.
// Buying is the property value; renting is the invested difference.
func PrintSummary(w io.Writer, a *Analysis) {
	printSection(w, "Summary:")
	fmt.Fprintf(w, "  Buying (property value):  %18s\n", FormatMoney(a.Buying.PropertyFutureValue))
	fmt.Fprintf(w, "  Renting (investment):     %18s\n", FormatMoney(a.Renting.InvestmentWorth))
	fmt.Fprintf(w, "  Difference:               %18s\n", FormatMoney(a.Difference))
	fmt.Fprintln(w)
}

// PrintYearlySummary prints one row per year of the cost series
func PrintYearlySummary(w io.Writer, s *CostSeries) {
	printSection(w, "Year by year:")
	fmt.Fprintf(w, "%-6s │ %16s │ %16s │ %16s │ %18s\n", "Year", "Buying", "Renting", "Difference", "Investment")
	fmt.Fprintln(w, strings.Repeat("─", 86))
	for _, y := range s.Yearly() {
		fmt.Fprintf(w, "%-6d │ %16s │ %16s │ %16s │ %18s\n",
			y.Year, FormatMoney(y.BuyingCost), FormatMoney(y.RentingCost), FormatMoney(y.Diff), FormatMoney(y.Investment))
	}
	fmt.Fprintln(w, strings.Repeat("─", 86))
	fmt.Fprintln(w)
}

// PrintCostTable prints every month of the cost series followed by the totals
func PrintCostTable(w io.Writer, s *CostSeries) {
	printSection(w, "Month by month:")
	fmt.Fprintf(w, "%-6s │ %16s │ %16s │ %16s │ %18s\n", "Month", "Buying", "Renting", "Difference", "Investment")
	fmt.Fprintln(w, strings.Repeat("─", 86))
	for _, r := range s.Rows() {
		fmt.Fprintf(w, "%-6d │ %16s │ %16s │ %16s │ %18s\n",
			r.Month, FormatMoney(r.BuyingCost), FormatMoney(r.RentingCost), FormatMoney(r.Diff), FormatMoney(r.Investment))
	}
	fmt.Fprintln(w, strings.Repeat("─", 86))
	PrintTotals(w, s)
}

// PrintTotals prints the aggregate sums of a cost series
func PrintTotals(w io.Writer, s *CostSeries) {
	fmt.Fprintf(w, "  Total buying cost:      %s\n", FormatMoney(s.TotalBuyingCost()))
	fmt.Fprintf(w, "  Total rent paid:        %s\n", FormatMoney(s.TotalRentPaid()))
	fmt.Fprintf(w, "  Total investment value: %s\n", FormatMoney(s.TotalInvestmentValue()))
	net := s.NetDifference()
	label := "gain"
	if net < 0 {
		label = "loss"
	}
	fmt.Fprintf(w, "  Net difference:         %s (%s)\n", FormatMoney(math.Abs(net)), label)
	fmt.Fprintln(w)
}

// PrintReport prints the complete console report
func PrintReport(w io.Writer, a *Analysis, showDetails bool) {
	PrintHeader(w)
	PrintInputs(w, a.Params)
	PrintMortgage(w, a.Mortgage)
	if showDetails {
		PrintCostTable(w, a.Series)
	} else {
		PrintYearlySummary(w, a.Series)
		PrintTotals(w, a.Series)
	}
	PrintAnalysis(w, a)
}
