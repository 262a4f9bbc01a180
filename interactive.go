package main

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

// validateYears checks the horizon is a sensible whole number of years (1-100)
func validateYears(years int) error {
	if years < 1 || years > 100 {
		return ValidationError{Field: "years", Message: fmt.Sprintf("Years must be between 1 and 100 (got %d)", years)}
	}
	return nil
}

// validateMoney checks if amount is non-negative and reasonable
func validateMoney(amount float64, fieldName string) error {
	if amount < 0 {
		return ValidationError{Field: fieldName, Message: "Amount cannot be negative"}
	}
	if amount > 1000000000 { // 1 billion
		return ValidationError{Field: fieldName, Message: "Amount seems too large. Please check the value"}
	}
	return nil
}

// validateRate checks a percentage is within -100% and 100%
func validateRate(rate float64, fieldName string) error {
	if rate < -100 || rate > 100 {
		return ValidationError{Field: fieldName, Message: fmt.Sprintf("Rate must be between -100%% and 100%% (got %.1f%%)", rate)}
	}
	return nil
}

// InteractiveConfigBuilder handles interactive configuration creation
type InteractiveConfigBuilder struct {
	reader        *bufio.Reader
	out           io.Writer
	config        *Config
	defaultConfig *Config
}

// NewInteractiveConfigBuilder creates a builder reading from stdin
func NewInteractiveConfigBuilder() *InteractiveConfigBuilder {
	return newInteractiveConfigBuilder(os.Stdin, os.Stdout)
}

func newInteractiveConfigBuilder(in io.Reader, out io.Writer) *InteractiveConfigBuilder {
	builder := &InteractiveConfigBuilder{
		reader: bufio.NewReader(in),
		out:    out,
	}

	defaultConfig, err := LoadDefaultConfig()
	if err == nil {
		builder.defaultConfig = defaultConfig
	} else {
		builder.defaultConfig = &Config{Calculation: DefaultParams()}
	}

	return builder
}

// parseMoney parses money strings like "100k", "1.6m", "$4,200", "100000"
func parseMoney(input string, fallback float64) float64 {
	val, err := parseMoneyValue(input)
	if err != nil {
		return fallback
	}
	return val
}

func parseMoneyValue(input string) (float64, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	input = strings.TrimPrefix(input, "$")
	input = strings.ReplaceAll(input, ",", "")
	multiplier := 1.0
	if strings.HasSuffix(input, "k") {
		multiplier = 1000
		input = strings.TrimSuffix(input, "k")
	} else if strings.HasSuffix(input, "m") {
		multiplier = 1000000
		input = strings.TrimSuffix(input, "m")
	}
	val, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, err
	}
	return val * multiplier, nil
}

// parsePercent converts "5%" or "5" to 5
func parsePercent(input string) (float64, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimSuffix(input, "%")
	return strconv.ParseFloat(strings.TrimSpace(input), 64)
}

func (b *InteractiveConfigBuilder) readLine() (string, bool) {
	input, err := b.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	// On EOF accept whatever was typed, then fall back to defaults
	if err != nil && input == "" {
		return "", false
	}
	return input, true
}

// promptYears asks for the horizon with validation
func (b *InteractiveConfigBuilder) promptYears(prompt string, defaultVal int) int {
	for {
		fmt.Fprintf(b.out, "%s [%d]: ", prompt, defaultVal)
		input, ok := b.readLine()
		if !ok || input == "" {
			return defaultVal
		}
		val, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(b.out, "  ✗ Invalid number. Please enter a whole number\n")
			continue
		}
		if err := validateYears(val); err != nil {
			fmt.Fprintf(b.out, "  ✗ %s\n", err.Error())
			continue
		}
		return val
	}
}

// promptPercent asks for a percentage with validation (accepts "5%" or "5")
func (b *InteractiveConfigBuilder) promptPercent(prompt string, defaultVal float64) float64 {
	for {
		fmt.Fprintf(b.out, "%s [%s]: ", prompt, formatDefaultPercent(defaultVal))
		input, ok := b.readLine()
		if !ok || input == "" {
			return defaultVal
		}
		val, err := parsePercent(input)
		if err != nil {
			fmt.Fprintf(b.out, "  ✗ Invalid percentage. Enter as '5%%' or '5'\n")
			continue
		}
		if err := validateRate(val, "rate"); err != nil {
			fmt.Fprintf(b.out, "  ✗ %s\n", err.Error())
			continue
		}
		return val
	}
}

// promptMoney asks for a money amount with validation (accepts "100k" or "100000")
func (b *InteractiveConfigBuilder) promptMoney(prompt string, defaultVal float64) float64 {
	defaultStr := formatDefaultMoney(defaultVal)
	for {
		fmt.Fprintf(b.out, "%s [%s]: ", prompt, defaultStr)
		input, ok := b.readLine()
		if !ok || input == "" {
			return defaultVal
		}
		amount, err := parseMoneyValue(input)
		if err != nil {
			fmt.Fprintf(b.out, "  ✗ Invalid amount. Enter as '100k', '1.5m', or '100000'\n")
			continue
		}
		if err := validateMoney(amount, "amount"); err != nil {
			fmt.Fprintf(b.out, "  ✗ %s\n", err.Error())
			continue
		}
		return amount
	}
}

// BuildConfig prompts for every calculation parameter and returns a complete config
func (b *InteractiveConfigBuilder) BuildConfig() *Config {
	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, "╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(b.out, "║                     RENT OR BUY CONFIGURATION                                ║")
	fmt.Fprintln(b.out, "╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, "Press Enter to accept the default shown in brackets.")
	fmt.Fprintln(b.out)

	config := *b.defaultConfig
	d := config.Calculation
	p := &config.Calculation

	fmt.Fprintln(b.out, "Property & Mortgage:")
	p.Years = b.promptYears("  Years (horizon and mortgage term)", d.Years)
	p.PropertyValue = b.promptMoney("  Property value", d.PropertyValue)
	p.Capital = b.promptMoney("  Capital / down payment", d.Capital)
	p.PurchaseCost = b.promptMoney("  Purchase costs", d.PurchaseCost)
	p.InterestRate = b.promptPercent("  Mortgage interest rate", d.InterestRate)
	p.MonthlyMaintenance = b.promptMoney("  Monthly maintenance", d.MonthlyMaintenance)
	p.PropertyValueIncrease = b.promptPercent("  Property value increase", d.PropertyValueIncrease)
	fmt.Fprintln(b.out)

	fmt.Fprintln(b.out, "Renting & Investing:")
	p.Rent = b.promptMoney("  Monthly rent", d.Rent)
	p.RentIncrease = b.promptPercent("  Annual rent increase", d.RentIncrease)
	p.AlternativeInvestmentIncrease = b.promptPercent("  Alternative investment return", d.AlternativeInvestmentIncrease)

	b.config = &config
	return b.config
}

// SaveConfig writes the built config to a file
func (b *InteractiveConfigBuilder) SaveConfig(filename string) error {
	if b.config == nil {
		return fmt.Errorf("no configuration built yet")
	}
	return SaveConfig(b.config, filename)
}

// ValidateConfig lists the calculation fields that would be rejected
func ValidateConfig(config *Config) []string {
	var invalidFields []string
	p := config.Calculation

	if err := validateYears(p.Years); err != nil {
		invalidFields = append(invalidFields, "calculation.years")
	}
	money := map[string]float64{
		"calculation.capital":             p.Capital,
		"calculation.purchase_cost":       p.PurchaseCost,
		"calculation.monthly_maintenance": p.MonthlyMaintenance,
		"calculation.rent":                p.Rent,
		"calculation.property_value":      p.PropertyValue,
	}
	for _, name := range slices.Sorted(maps.Keys(money)) {
		if err := validateMoney(money[name], name); err != nil {
			invalidFields = append(invalidFields, name)
		}
	}
	rates := map[string]float64{
		"calculation.rent_increase":                   p.RentIncrease,
		"calculation.alternative_investment_increase": p.AlternativeInvestmentIncrease,
		"calculation.property_value_increase":         p.PropertyValueIncrease,
		"calculation.interest_rate":                   p.InterestRate,
	}
	for _, name := range slices.Sorted(maps.Keys(rates)) {
		if err := validateRate(rates[name], name); err != nil {
			invalidFields = append(invalidFields, name)
		}
	}

	return invalidFields
}
