package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoneyValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"100000", 100000},
		{"100k", 100000},
		{"1.6m", 1600000},
		{"1.6M", 1600000},
		{"$4,200", 4200},
		{"  250.50 ", 250.5},
	}
	for _, tc := range tests {
		got, err := parseMoneyValue(tc.input)
		require.NoError(t, err, tc.input)
		assert.InDelta(t, tc.expected, got, 1e-9, tc.input)
	}

	_, err := parseMoneyValue("lots")
	assert.Error(t, err)
	assert.Equal(t, 42.0, parseMoney("lots", 42))
}

func TestParsePercent(t *testing.T) {
	for input, expected := range map[string]float64{"5": 5, "5%": 5, " 4.5 % ": 4.5, "-1%": -1} {
		got, err := parsePercent(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}
	_, err := parsePercent("five")
	assert.Error(t, err)
}

func TestInteractiveBuilder_AcceptsDefaults(t *testing.T) {
	var out bytes.Buffer
	b := newInteractiveConfigBuilder(strings.NewReader(strings.Repeat("\n", 10)), &out)

	config := b.BuildConfig()
	assert.Equal(t, DefaultParams(), config.Calculation)
	assert.Contains(t, out.String(), "RENT OR BUY CONFIGURATION")
	assert.Contains(t, out.String(), "[1.6m]")
}

func TestInteractiveBuilder_EOFUsesDefaults(t *testing.T) {
	b := newInteractiveConfigBuilder(strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, DefaultParams(), b.BuildConfig().Calculation)
}

func TestInteractiveBuilder_ParsesAnswers(t *testing.T) {
	answers := strings.Join([]string{
		"15",     // years
		"900k",   // property value
		"200k",   // capital
		"30000",  // purchase costs
		"4.25%",  // interest rate
		"150",    // maintenance
		"3",      // property growth
		"$2,800", // rent
		"2%",     // rent increase
		"6",      // investment return
	}, "\n") + "\n"

	b := newInteractiveConfigBuilder(strings.NewReader(answers), &bytes.Buffer{})
	p := b.BuildConfig().Calculation

	assert.Equal(t, Params{
		Years:                         15,
		Capital:                       200000,
		PurchaseCost:                  30000,
		MonthlyMaintenance:            150,
		Rent:                          2800,
		RentIncrease:                  2,
		AlternativeInvestmentIncrease: 6,
		PropertyValue:                 900000,
		PropertyValueIncrease:         3,
		InterestRate:                  4.25,
	}, p)
}

func TestInteractiveBuilder_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	// Bad years, out of range years, then a valid answer; the rest default
	input := "ten\n500\n20\n" + strings.Repeat("\n", 9)
	b := newInteractiveConfigBuilder(strings.NewReader(input), &out)

	config := b.BuildConfig()
	assert.Equal(t, 20, config.Calculation.Years)
	assert.Contains(t, out.String(), "Invalid number")
	assert.Contains(t, out.String(), "Years must be between 1 and 100")
}

func TestInteractiveBuilder_RejectsNegativeMoney(t *testing.T) {
	var out bytes.Buffer
	input := "\n-5\n1m\n" + strings.Repeat("\n", 8)
	b := newInteractiveConfigBuilder(strings.NewReader(input), &out)

	config := b.BuildConfig()
	assert.Equal(t, 1000000.0, config.Calculation.PropertyValue)
	assert.Contains(t, out.String(), "Amount cannot be negative")
}

func TestInteractiveBuilder_SaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	b := newInteractiveConfigBuilder(strings.NewReader(""), &bytes.Buffer{})

	assert.Error(t, b.SaveConfig(path), "nothing built yet")

	built := b.BuildConfig()
	require.NoError(t, b.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, built.Calculation, loaded.Calculation)
}

func TestValidateConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	assert.Empty(t, ValidateConfig(config))

	config.Calculation.Years = 0
	config.Calculation.Rent = -1
	config.Calculation.InterestRate = 150
	assert.Equal(t, []string{
		"calculation.years",
		"calculation.rent",
		"calculation.interest_rate",
	}, ValidateConfig(config))
}
