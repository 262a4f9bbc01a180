package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// paramFlags binds one command line flag to each calculation parameter
type paramFlags struct {
	years                         int
	capital                       float64
	purchaseCost                  float64
	monthlyMaintenance            float64
	rent                          float64
	rentIncrease                  float64
	alternativeInvestmentIncrease float64
	propertyValue                 float64
	propertyValueIncrease         float64
	interestRate                  float64
}

func (pf *paramFlags) register(fs *flag.FlagSet) {
	d := DefaultParams()
	fs.IntVar(&pf.years, "years", d.Years, "Comparison horizon and mortgage term in years")
	fs.Float64Var(&pf.capital, "capital", d.Capital, "Capital / down payment")
	fs.Float64Var(&pf.purchaseCost, "purchase-cost", d.PurchaseCost, "Purchase costs (fees, taxes)")
	fs.Float64Var(&pf.monthlyMaintenance, "monthly-maintenance", d.MonthlyMaintenance, "Monthly maintenance when owning")
	fs.Float64Var(&pf.rent, "rent", d.Rent, "Monthly rent in year one")
	fs.Float64Var(&pf.rentIncrease, "rent-increase", d.RentIncrease, "Annual rent increase in percent")
	fs.Float64Var(&pf.alternativeInvestmentIncrease, "alternative-investment-increase", d.AlternativeInvestmentIncrease, "Annual alternative investment return in percent")
	fs.Float64Var(&pf.propertyValue, "property-value", d.PropertyValue, "Property purchase price")
	fs.Float64Var(&pf.propertyValueIncrease, "property-value-increase", d.PropertyValueIncrease, "Annual property value increase in percent")
	fs.Float64Var(&pf.interestRate, "interest-rate", d.InterestRate, "Annual mortgage interest rate in percent")
}

// apply copies the explicitly set flags over p and reports how many were set
func (pf *paramFlags) apply(fs *flag.FlagSet, p *Params) int {
	n := 0
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "years":
			p.Years = pf.years
		case "capital":
			p.Capital = pf.capital
		case "purchase-cost":
			p.PurchaseCost = pf.purchaseCost
		case "monthly-maintenance":
			p.MonthlyMaintenance = pf.monthlyMaintenance
		case "rent":
			p.Rent = pf.rent
		case "rent-increase":
			p.RentIncrease = pf.rentIncrease
		case "alternative-investment-increase":
			p.AlternativeInvestmentIncrease = pf.alternativeInvestmentIncrease
		case "property-value":
			p.PropertyValue = pf.propertyValue
		case "property-value-increase":
			p.PropertyValueIncrease = pf.propertyValueIncrease
		case "interest-rate":
			p.InterestRate = pf.interestRate
		default:
			return
		}
		n++
	})
	return n
}

// consoleOptions selects the console outputs
type consoleOptions struct {
	showDetails    bool
	generateHTML   bool
	generatePDF    bool
	csvFile        string
	runSensitivity bool
}

func (o consoleOptions) any() bool {
	return o.showDetails || o.generateHTML || o.generatePDF || o.csvFile != "" || o.runSensitivity
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Rent or Buy Calculator

Compares buying a home with a mortgage against renting and investing the
monthly difference. Builds a month-by-month cost table over the horizon and
recommends whichever option leaves you with more.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Desktop window (falls back to console)
  %s -console                  Console report
  %s -details                  Console report with month-by-month table
  %s -rent 3500 -years 15      Override config values for one run
  %s -html -pdf                Also write HTML and PDF reports
  %s -csv costs.csv            Export the monthly cost table
  %s -sensitivity              Grid over investment return and property growth
  %s -web -addr :8080          Web server on a specific port

Configuration:
  Edit config.yaml to change the defaults. Percentages are plain numbers
  (5 = 5%%). Flags override values in the file.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI (default is GUI)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "", "Web server address (default from config, use :0 for auto port)")

	var opts consoleOptions
	flag.BoolVar(&opts.showDetails, "details", false, "Show the month-by-month cost table in console")
	flag.BoolVar(&opts.generateHTML, "html", false, "Generate an HTML report in a dated folder")
	flag.BoolVar(&opts.generatePDF, "pdf", false, "Generate a PDF report in a dated folder")
	flag.StringVar(&opts.csvFile, "csv", "", "Export the monthly cost table to this CSV file")
	flag.BoolVar(&opts.runSensitivity, "sensitivity", false, "Run sensitivity analysis across growth rates")

	var pf paramFlags
	pf.register(flag.CommandLine)
	flag.Parse()

	config, err := LoadConfig(*configFile)
	configMissing := os.IsNotExist(err)
	if err != nil && !configMissing {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if configMissing {
		config, err = LoadDefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading default config: %v\n", err)
			os.Exit(1)
		}
	}
	overrides := pf.apply(flag.CommandLine, &config.Calculation)

	if *uiMode {
		if err := runGUI(config, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *webMode {
		addr := *webAddr
		if addr == "" {
			addr = config.Server.Addr
		}
		server := NewWebServer(config, addr)
		server.configPath = *configFile
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Output flags or parameter overrides imply console mode
	if *consoleMode || opts.any() || overrides > 0 {
		runConsoleMode(config, *configFile, configMissing && overrides == 0, opts)
		return
	}

	if err := runGUI(config, *configFile); err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		fmt.Println("Falling back to console mode...")
		runConsoleMode(config, *configFile, configMissing, opts)
	}
}

// runConsoleMode prints the report and writes any requested files
func runConsoleMode(config *Config, configFile string, buildInteractively bool, opts consoleOptions) {
	if buildInteractively {
		builder := NewInteractiveConfigBuilder()
		config = builder.BuildConfig()
		if err := builder.SaveConfig(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nConfiguration saved to %s\n", configFile)
		fmt.Println("You can edit this file to adjust settings for future runs.")
		fmt.Println()
	}

	for _, field := range ValidateConfig(config) {
		fmt.Fprintf(os.Stderr, "Warning: %s is outside the usual range\n", field)
	}

	if opts.runSensitivity {
		runSensitivityMode(config)
		return
	}

	analysis, err := Analyze(config.Calculation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	PrintReport(os.Stdout, analysis, opts.showDetails)

	if opts.csvFile != "" {
		if err := ExportCostSeriesCSV(analysis.Series, opts.csvFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cost table written to %s\n", opts.csvFile)
	}

	if opts.generateHTML || opts.generatePDF {
		writeReports(analysis, opts)
	}
}

// writeReports renders the chart once and writes the requested HTML and PDF reports
func writeReports(analysis *Analysis, opts consoleOptions) {
	chart, err := RenderComparisonChart(analysis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: chart unavailable: %v\n", err)
		chart = nil
	}
	dir := reportDir()

	if opts.generateHTML {
		path, err := GenerateHTMLReportInDir(analysis, chart, dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("HTML report written to %s\n", path)
		openBrowser(path)
	}

	if opts.generatePDF {
		pdfBytes, err := GeneratePDFReport(analysis, chart)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
			os.Exit(1)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}
		path := filepath.Join(dir, "report.pdf")
		if err := os.WriteFile(path, pdfBytes, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF report written to %s\n", path)
	}
}

// runSensitivityMode prints the grid and writes the HTML version
func runSensitivityMode(config *Config) {
	altMin, altMax, propMin, propMax, step := config.SensitivityRanges()
	fmt.Printf("Running sensitivity analysis: investment return %s to %s, property growth %s to %s, step %s\n\n",
		FormatPercent(altMin), FormatPercent(altMax), FormatPercent(propMin), FormatPercent(propMax), FormatPercent(step))

	analysis, err := RunSensitivityForConfig(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	PrintSensitivityMatrix(os.Stdout, analysis)

	path, err := GenerateSensitivityReport(analysis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sensitivity report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sensitivity report written to %s\n", path)
	openBrowser(path)
}

// openBrowser opens a file or URL in the default browser
func openBrowser(target string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
