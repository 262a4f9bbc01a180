package main

import (
	"encoding/base64"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"time"
)

const reportCSS = `
        :root {
            --primary: #2563eb;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { font-size: 1.75rem; margin-bottom: 0.5rem; color: var(--primary); }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; }
        .grid-2 { grid-template-columns: repeat(2, 1fr); }
        @media (max-width: 768px) { .grid-2 { grid-template-columns: 1fr; } }
        .verdict { font-size: 1.5rem; font-weight: 700; }
        .buy { color: var(--success); }
        .rent { color: var(--primary); }
        .muted { color: var(--text-muted); font-size: 0.85rem; }
        table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
        th, td { padding: 0.4rem 0.6rem; border-bottom: 1px solid var(--border); text-align: right; }
        th:first-child, td:first-child { text-align: left; }
        th { background: #f1f5f9; }
        td.cell-buy { background: #dcfce7; }
        td.cell-rent { background: #dbeafe; }
        img.chart { max-width: 100%; height: auto; }
`

// WriteHTMLReport writes a self-contained report page. chartPNG is inlined when present.
func WriteHTMLReport(w io.Writer, a *Analysis, chartPNG []byte) error {
	p := a.Params
	verdictClass := "rent"
	if a.Recommendation == RecommendBuy {
		verdictClass = "buy"
	}

	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rent or Buy: %d years</title>
    <style>%s</style>
</head>
<body>
<div class="container">
    <h1>Rent or Buy Analysis</h1>
    <p class="subtitle">%d year comparison, generated %s</p>
`, p.Years, reportCSS, p.Years, html.EscapeString(time.Now().Format("2 January 2006 15:04")))

	fmt.Fprintf(w, `    <div class="card">
        <div class="verdict %s">Recommendation: %s</div>
        <p>You are better off %s by <strong>%s</strong> over %d years.</p>
        <p class="muted">Property value minus investment worth: %s</p>
    </div>
`, verdictClass, a.Recommendation, a.Recommendation.Verb(), FormatMoney(a.Margin), p.Years, FormatMoney(a.Difference))

	fmt.Fprintf(w, `    <div class="grid grid-2">
        <div class="card">
            <h2>Inputs</h2>
            <table>
                <tr><td>Property value</td><td>%s</td></tr>
                <tr><td>Capital / down payment</td><td>%s</td></tr>
                <tr><td>Purchase costs</td><td>%s</td></tr>
                <tr><td>Interest rate</td><td>%s</td></tr>
                <tr><td>Monthly maintenance</td><td>%s</td></tr>
                <tr><td>Property value increase</td><td>%s</td></tr>
                <tr><td>Monthly rent</td><td>%s</td></tr>
                <tr><td>Rent increase</td><td>%s</td></tr>
                <tr><td>Alternative investment return</td><td>%s</td></tr>
            </table>
        </div>
`, FormatMoney(p.PropertyValue), FormatMoney(p.Capital), FormatMoney(p.PurchaseCost),
		FormatPercent(p.InterestRate), FormatMoney(p.MonthlyMaintenance), FormatPercent(p.PropertyValueIncrease),
		FormatMoney(p.Rent), FormatPercent(p.RentIncrease), FormatPercent(p.AlternativeInvestmentIncrease))

	m := a.Mortgage
	fmt.Fprintf(w, `        <div class="card">
            <h2>Mortgage</h2>
            <table>
                <tr><td>Loan principal</td><td>%s</td></tr>
                <tr><td>Term</td><td>%d years (%d payments)</td></tr>
                <tr><td>Monthly payment</td><td>%s</td></tr>
                <tr><td>Total payments</td><td>%s</td></tr>
                <tr><td>Total interest</td><td>%s</td></tr>
            </table>
            <h2>Outcome</h2>
            <table>
                <tr><th></th><th>Buying</th><th>Renting</th></tr>
                <tr><td>Total cost</td><td>%s</td><td>%s</td></tr>
                <tr><td>Asset value</td><td>%s</td><td>%s</td></tr>
                <tr><td><strong>Net worth</strong></td><td><strong>%s</strong></td><td><strong>%s</strong></td></tr>
            </table>
        </div>
    </div>
`, FormatMoney(m.Principal), m.TermYears, m.NumberOfPayments, FormatMoney(m.MonthlyPayment),
		FormatMoney(m.TotalPayments), FormatMoney(m.TotalInterest),
		FormatMoney(a.Buying.TotalCost), FormatMoney(a.Renting.TotalRentPaid),
		FormatMoney(a.Buying.PropertyFutureValue), FormatMoney(a.Renting.InvestmentWorth),
		FormatMoney(a.Buying.NetWorth), FormatMoney(a.Renting.NetWorth))

	if len(chartPNG) > 0 {
		fmt.Fprintf(w, `    <div class="card">
        <h2>Cumulative Costs</h2>
        <img class="chart" alt="Cumulative costs chart" src="data:image/png;base64,%s">
    </div>
`, base64.StdEncoding.EncodeToString(chartPNG))
	}

	fmt.Fprint(w, `    <div class="card">
        <h2>Year by Year</h2>
        <table>
            <tr><th>Year</th><th>Buying cost</th><th>Rent paid</th><th>Difference</th><th>Investment value</th><th>Monthly rent</th></tr>
`)
	for _, y := range a.Series.Yearly() {
		fmt.Fprintf(w, "            <tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			y.Year, FormatMoney(y.BuyingCost), FormatMoney(y.RentingCost), FormatMoney(y.Diff),
			FormatMoney(y.Investment), FormatMoney(y.MonthlyRent))
	}
	s := a.Series
	_, err := fmt.Fprintf(w, `            <tr><td><strong>Total</strong></td><td><strong>%s</strong></td><td><strong>%s</strong></td><td></td><td><strong>%s</strong></td><td></td></tr>
        </table>
        <p class="muted">Net difference (investment minus rent): %s</p>
    </div>
    <p class="muted">For information only, not financial advice. Taxes, insurance and selling costs are not modelled.</p>
</div>
</body>
</html>
`, FormatMoney(s.TotalBuyingCost()), FormatMoney(s.TotalRentPaid()), FormatMoney(s.TotalInvestmentValue()),
		FormatMoney(s.NetDifference()))
	return err
}

// GenerateHTMLReport writes the report to filename
func GenerateHTMLReport(a *Analysis, chartPNG []byte, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteHTMLReport(f, a, chartPNG); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// reportDir returns a fresh reports_<timestamp> directory name
func reportDir() string {
	return "reports_" + time.Now().Format("2006-01-02_1504")
}

// GenerateHTMLReportInDir creates outputDir if needed and writes report.html into it
func GenerateHTMLReportInDir(a *Analysis, chartPNG []byte, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, "report.html")
	if err := GenerateHTMLReport(a, chartPNG, path); err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}
	return path, nil
}
