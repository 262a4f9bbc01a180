package main

import (
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SensitivityCell holds the outcome of one growth rate combination
type SensitivityCell struct {
	AltInvestment    float64        `json:"alt_investment"`
	PropertyIncrease float64        `json:"property_increase"`
	Recommendation   Recommendation `json:"recommendation"`
	Margin           float64        `json:"margin"`
	Difference       float64        `json:"difference"`
}

// SensitivityAnalysis holds the complete grid
type SensitivityAnalysis struct {
	Base               Params              `json:"base"`
	Cells              [][]SensitivityCell `json:"cells"` // [propertyIdx][altIdx]
	AltInvestmentRates []float64           `json:"alt_investment_rates"`
	PropertyRates      []float64           `json:"property_rates"`
	Timestamp          string              `json:"timestamp"`
}

const maxGrowthRates = 200

// buildGrowthRates returns min, min+step, ... up to max inclusive
func buildGrowthRates(min, max, step float64) ([]float64, error) {
	if step <= 0 || !isFinite(step) {
		return nil, invalid("step", "must be positive (got %g)", step)
	}
	if !isFinite(min) || !isFinite(max) || max < min {
		return nil, invalid("range", "invalid range %g to %g", min, max)
	}
	// Counted as a float so Inf and NaN are caught before the int conversion
	count := math.Floor((max-min)/step+1e-9) + 1
	if !(count <= maxGrowthRates) {
		return nil, invalid("range", "%g to %g in steps of %g gives too many points", min, max, step)
	}
	n := int(count)
	rates := make([]float64, n)
	for i := range rates {
		rates[i] = math.Round((min+float64(i)*step)*1e6) / 1e6
	}
	return rates, nil
}

// RunSensitivityAnalysis recomputes the recommendation for every pair of
// alternative investment return and property appreciation in the ranges
func RunSensitivityAnalysis(base Params, altMin, altMax, propMin, propMax, step float64) (*SensitivityAnalysis, error) {
	altRates, err := buildGrowthRates(altMin, altMax, step)
	if err != nil {
		return nil, err
	}
	propRates, err := buildGrowthRates(propMin, propMax, step)
	if err != nil {
		return nil, err
	}

	cells := make([][]SensitivityCell, len(propRates))
	for pi, prop := range propRates {
		cells[pi] = make([]SensitivityCell, len(altRates))
		for ai, alt := range altRates {
			p := base
			p.AlternativeInvestmentIncrease = alt
			p.PropertyValueIncrease = prop

			a, err := Analyze(p)
			if err != nil {
				return nil, fmt.Errorf("alt %.2f%%, property %.2f%%: %w", alt, prop, err)
			}
			cells[pi][ai] = SensitivityCell{
				AltInvestment:    alt,
				PropertyIncrease: prop,
				Recommendation:   a.Recommendation,
				Margin:           a.Margin,
				Difference:       a.Difference,
			}
		}
	}

	return &SensitivityAnalysis{
		Base:               base,
		Cells:              cells,
		AltInvestmentRates: altRates,
		PropertyRates:      propRates,
		Timestamp:          time.Now().Format("2006-01-02_1504"),
	}, nil
}

// RunSensitivityForConfig uses the ranges configured in cfg
func RunSensitivityForConfig(cfg *Config) (*SensitivityAnalysis, error) {
	altMin, altMax, propMin, propMax, step := cfg.SensitivityRanges()
	return RunSensitivityAnalysis(cfg.Calculation, altMin, altMax, propMin, propMax, step)
}

// BuyCount returns how many cells recommend buying
func (s *SensitivityAnalysis) BuyCount() int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Recommendation == RecommendBuy {
				n++
			}
		}
	}
	return n
}

// Total returns the number of cells in the grid
func (s *SensitivityAnalysis) Total() int {
	return len(s.PropertyRates) * len(s.AltInvestmentRates)
}

// BreakEvenAltRate returns the lowest alternative investment return at which
// renting wins for the given property row, or false if buying wins throughout
func (s *SensitivityAnalysis) BreakEvenAltRate(propertyIdx int) (float64, bool) {
	for _, c := range s.Cells[propertyIdx] {
		if c.Recommendation == RecommendRent {
			return c.AltInvestment, true
		}
	}
	return 0, false
}

// PrintSensitivityMatrix prints the grid with property appreciation as rows
func PrintSensitivityMatrix(w io.Writer, s *SensitivityAnalysis) {
	printBox(w, "SENSITIVITY ANALYSIS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rows: property value increase. Columns: alternative investment return.")
	fmt.Fprintln(w, "Each cell: recommendation and margin.")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s", "Prop\\Alt")
	for _, alt := range s.AltInvestmentRates {
		fmt.Fprintf(w, " │ %-12s", FormatPercent(alt))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 10+len(s.AltInvestmentRates)*15))

	for pi, prop := range s.PropertyRates {
		fmt.Fprintf(w, "%-10s", FormatPercent(prop))
		for _, c := range s.Cells[pi] {
			fmt.Fprintf(w, " │ %-4s %-7s", c.Recommendation, FormatMoneyShort(c.Margin))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, strings.Repeat("─", 10+len(s.AltInvestmentRates)*15))
	fmt.Fprintf(w, "  Buying wins in %d of %d scenarios\n", s.BuyCount(), s.Total())
	fmt.Fprintln(w)
}

// WriteSensitivityHTML writes the grid as a colour-coded HTML table
func WriteSensitivityHTML(w io.Writer, s *SensitivityAnalysis) error {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rent or Buy: Sensitivity Analysis</title>
    <style>%s</style>
</head>
<body>
<div class="container">
    <h1>Sensitivity Analysis</h1>
    <p class="subtitle">%d year horizon, property value %s, rent %s/month. Generated %s</p>
    <div class="card">
        <p>Buying wins in <strong>%d of %d</strong> scenarios.</p>
        <p class="muted">Rows: property value increase. Columns: alternative investment return.</p>
    </div>
    <div class="card">
        <table>
            <tr><th>Property \ Alt</th>`,
		reportCSS, s.Base.Years, FormatMoney(s.Base.PropertyValue), FormatMoney(s.Base.Rent),
		html.EscapeString(s.Timestamp), s.BuyCount(), s.Total())

	for _, alt := range s.AltInvestmentRates {
		fmt.Fprintf(w, "<th>%s</th>", FormatPercent(alt))
	}
	fmt.Fprintln(w, "</tr>")

	for pi, prop := range s.PropertyRates {
		fmt.Fprintf(w, "            <tr><td>%s</td>", FormatPercent(prop))
		for _, c := range s.Cells[pi] {
			class := "cell-rent"
			if c.Recommendation == RecommendBuy {
				class = "cell-buy"
			}
			fmt.Fprintf(w, `<td class="%s" title="difference %s"><strong>%s</strong><br>%s</td>`,
				class, FormatMoney(c.Difference), c.Recommendation, FormatMoneyShort(c.Margin))
		}
		fmt.Fprintln(w, "</tr>")
	}

	fmt.Fprint(w, `        </table>
    </div>
    <div class="card">
        <h2>Break-even</h2>
        <table>
            <tr><th>Property increase</th><th>Renting wins from</th></tr>
`)
	for pi, prop := range s.PropertyRates {
		breakEven := "never in range"
		if rate, ok := s.BreakEvenAltRate(pi); ok {
			breakEven = FormatPercent(rate) + " return"
		}
		fmt.Fprintf(w, "            <tr><td>%s</td><td>%s</td></tr>\n", FormatPercent(prop), breakEven)
	}
	_, err := fmt.Fprint(w, `        </table>
    </div>
</div>
</body>
</html>
`)
	return err
}

// GenerateSensitivityReport writes sensitivity.html into a sensitivity_<timestamp> directory
func GenerateSensitivityReport(s *SensitivityAnalysis) (string, error) {
	outputDir := "sensitivity_" + s.Timestamp
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, "sensitivity.html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteSensitivityHTML(f, s); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
