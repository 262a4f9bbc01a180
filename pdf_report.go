package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFReport renders one analysis as an A4 document
type PDFReport struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	analysis *Analysis
	chart    []byte
}

// GeneratePDFReport builds the PDF. chartPNG is optional; when empty the chart page is skipped.
func GeneratePDFReport(a *Analysis, chartPNG []byte) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	report := &PDFReport{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		analysis: a,
		chart:    chartPNG,
	}

	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Rent or Buy Analysis", true)

	report.addTitlePage()
	report.addAnalysisPage()
	if len(chartPNG) > 0 {
		report.addChartPage()
	}
	report.addYearByYearTable()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFReport) addTitlePage() {
	a := r.analysis
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(40)
	r.pdf.CellFormat(contentWidth, 15, "Rent or Buy Analysis", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 14)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(6)
	r.pdf.CellFormat(contentWidth, 10, fmt.Sprintf("%d year comparison", a.Params.Years), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.Ln(8)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	// Recommendation box
	r.pdf.Ln(15)
	if a.Recommendation == RecommendBuy {
		r.pdf.SetFillColor(230, 245, 233)
	} else {
		r.pdf.SetFillColor(232, 240, 254)
	}
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 14, "Recommendation: "+a.Recommendation.String(), "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth, 10,
		fmt.Sprintf("You are better off %s by %s", a.Recommendation.Verb(), FormatMoney(a.Margin)),
		"LRB", 1, "C", true, 0, "")

	// Inputs box
	r.pdf.Ln(12)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Inputs", "1", 1, "C", true, 0, "")

	p := a.Params
	inputs := [][2]string{
		{"Property value", FormatMoney(p.PropertyValue)},
		{"Capital / down payment", FormatMoney(p.Capital)},
		{"Purchase costs", FormatMoney(p.PurchaseCost)},
		{"Mortgage interest rate", FormatPercent(p.InterestRate)},
		{"Monthly maintenance", FormatMoney(p.MonthlyMaintenance)},
		{"Property value increase", FormatPercent(p.PropertyValueIncrease)},
		{"Monthly rent", FormatMoney(p.Rent)},
		{"Annual rent increase", FormatPercent(p.RentIncrease)},
		{"Alternative investment return", FormatPercent(p.AlternativeInvestmentIncrease)},
	}
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	half := contentWidth / 2
	for i, in := range inputs {
		border := "L"
		last := i == len(inputs)-1
		if last {
			border = "LB"
		}
		r.pdf.CellFormat(half, 7, "  "+in[0], border, 0, "L", true, 0, "")
		border = "R"
		if last {
			border = "RB"
		}
		r.pdf.CellFormat(half, 7, in[1]+"  ", border, 1, "R", true, 0, "")
	}

	r.drawDisclaimer()
}

func (r *PDFReport) addAnalysisPage() {
	a := r.analysis
	r.pdf.AddPage()

	r.drawSectionHeader("Mortgage")
	widths := []float64{110, contentWidth - 110}
	m := a.Mortgage
	for _, row := range [][]string{
		{"Loan principal", FormatMoney(m.Principal)},
		{"Interest rate", FormatPercent(m.InterestRate)},
		{"Term", fmt.Sprintf("%d years (%d payments)", m.TermYears, m.NumberOfPayments)},
		{"Monthly payment", FormatMoney(m.MonthlyPayment)},
		{"Total payments", FormatMoney(m.TotalPayments)},
		{"Total interest", FormatMoney(m.TotalInterest)},
	} {
		r.drawTableRow(row, widths, false)
	}
	r.pdf.Ln(8)

	r.drawSectionHeader("Buying vs Renting")
	headers := []string{"", "Buying", "Renting"}
	cols := []float64{70, (contentWidth - 70) / 2, (contentWidth - 70) / 2}
	r.drawTableHeader(headers, cols)
	r.drawTableRow([]string{"Total cost", FormatMoney(a.Buying.TotalCost), FormatMoney(a.Renting.TotalRentPaid)}, cols, false)
	r.drawTableRow([]string{"Asset value", FormatMoney(a.Buying.PropertyFutureValue), FormatMoney(a.Renting.InvestmentWorth)}, cols, false)
	r.drawTableRow([]string{"Net worth", FormatMoney(a.Buying.NetWorth), FormatMoney(a.Renting.NetWorth)}, cols, true)
	r.pdf.Ln(8)

	r.drawSectionHeader("Recommendation")
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.MultiCell(contentWidth, 6, r.tr(fmt.Sprintf(
		"After %d years the property is worth %s and the invested difference is worth %s. "+
			"The difference is %s, so you are better off %s by %s.",
		a.Params.Years,
		FormatMoney(a.Buying.PropertyFutureValue),
		FormatMoney(a.Renting.InvestmentWorth),
		FormatMoney(a.Difference),
		a.Recommendation.Verb(),
		FormatMoney(a.Margin))), "", "L", false)
	r.pdf.Ln(4)

	s := a.Series
	r.drawSectionHeader("Totals")
	for _, row := range [][]string{
		{"Total buying cost", FormatMoney(s.TotalBuyingCost())},
		{"Total rent paid", FormatMoney(s.TotalRentPaid())},
		{"Total investment value", FormatMoney(s.TotalInvestmentValue())},
		{"Net difference (investment minus rent)", FormatMoney(s.NetDifference())},
	} {
		r.drawTableRow(row, widths, false)
	}
}

func (r *PDFReport) addChartPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Cumulative Costs")

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	r.pdf.RegisterImageOptionsReader("comparison", opts, bytes.NewReader(r.chart))
	if r.pdf.Err() {
		// A broken image should not lose the rest of the report
		r.pdf.ClearError()
		r.pdf.SetFont("Arial", "I", 10)
		r.pdf.CellFormat(contentWidth, 8, "Chart unavailable", "", 1, "L", false, 0, "")
		return
	}
	height := contentWidth * float64(chartHeight) / float64(chartWidth)
	r.pdf.ImageOptions("comparison", marginLeft, r.pdf.GetY(), contentWidth, height, true, opts, 0, "")
}

func (r *PDFReport) addYearByYearTable() {
	r.pdf.AddPage()
	r.drawSectionHeader("Year by Year")

	headers := []string{"Year", "Buying cost", "Rent paid", "Difference", "Investment value"}
	widths := []float64{20, 40, 40, 40, contentWidth - 140}
	r.drawTableHeader(headers, widths)
	for _, y := range r.analysis.Series.Yearly() {
		r.drawTableRow([]string{
			fmt.Sprintf("%d", y.Year),
			FormatMoney(y.BuyingCost),
			FormatMoney(y.RentingCost),
			FormatMoney(y.Diff),
			FormatMoney(y.Investment),
		}, widths, y.Year == 0)
	}
}

func (r *PDFReport) drawDisclaimer() {
	r.pdf.Ln(15)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 4.5,
		"This document is for informational purposes only and does not constitute financial advice. "+
			"Taxes, insurance and selling costs are not modelled. "+
			"Please consult a qualified financial advisor before making any financial decisions.", "", "C", false)
}

func (r *PDFReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *PDFReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, r.tr(cell), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
