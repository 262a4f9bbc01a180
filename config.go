package main

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// Params holds every input of one buy-vs-rent calculation.
// Percentages are plain numbers: 5 means 5%.
type Params struct {
	Years                         int     `yaml:"years" json:"years"`
	Capital                       float64 `yaml:"capital" json:"capital"`                                                 // Down payment / capital invested at closing
	PurchaseCost                  float64 `yaml:"purchase_cost" json:"purchase_cost"`                                     // Closing costs, fees, taxes
	MonthlyMaintenance            float64 `yaml:"monthly_maintenance" json:"monthly_maintenance"`                         // Upkeep paid on top of the mortgage
	Rent                          float64 `yaml:"rent" json:"rent"`                                                       // Monthly rent in year one
	RentIncrease                  float64 `yaml:"rent_increase" json:"rent_increase"`                                     // Annual rent increase %
	AlternativeInvestmentIncrease float64 `yaml:"alternative_investment_increase" json:"alternative_investment_increase"` // Annual return of the alternative investment %
	PropertyValue                 float64 `yaml:"property_value" json:"property_value"`                                   // Purchase price
	PropertyValueIncrease         float64 `yaml:"property_value_increase" json:"property_value_increase"`                 // Annual property appreciation %
	InterestRate                  float64 `yaml:"interest_rate" json:"interest_rate"`                                     // Annual mortgage rate %
}

// DefaultParams returns the built-in defaults
func DefaultParams() Params {
	return Params{
		Years:                         10,
		Capital:                       500000,
		PurchaseCost:                  110000,
		MonthlyMaintenance:            200,
		Rent:                          4200,
		RentIncrease:                  3,
		AlternativeInvestmentIncrease: 7,
		PropertyValue:                 1600000,
		PropertyValueIncrease:         4.5,
		InterestRate:                  5,
	}
}

// LoanPrincipal is the amount borrowed: property value plus purchase costs minus capital
func (p Params) LoanPrincipal() float64 {
	return p.PropertyValue + p.PurchaseCost - p.Capital
}

// Validate checks every field. Nothing is clamped.
func (p Params) Validate() error {
	if err := validateHorizon(p.Years); err != nil {
		return err
	}

	money := []struct {
		name  string
		value float64
	}{
		{"capital", p.Capital},
		{"purchase_cost", p.PurchaseCost},
		{"monthly_maintenance", p.MonthlyMaintenance},
		{"rent", p.Rent},
		{"property_value", p.PropertyValue},
	}
	for _, f := range money {
		if err := requireFinite(f.name, f.value); err != nil {
			return err
		}
		if f.value < 0 {
			return invalid(f.name, "cannot be negative (got %.2f)", f.value)
		}
	}

	rates := []struct {
		name  string
		value float64
	}{
		{"rent_increase", p.RentIncrease},
		{"alternative_investment_increase", p.AlternativeInvestmentIncrease},
		{"property_value_increase", p.PropertyValueIncrease},
		{"interest_rate", p.InterestRate},
	}
	for _, f := range rates {
		if err := requireFinite(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr               string `yaml:"addr" json:"addr"`                                   // e.g. "localhost:0" for an automatic port
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute" json:"rate_limit_per_minute"` // 0 disables rate limiting
}

// CacheConfig selects where calculation results are cached
type CacheConfig struct {
	Backend    string `yaml:"backend" json:"backend"` // "memory" (default), "redis" or "none"
	RedisAddr  string `yaml:"redis_addr" json:"redis_addr"`
	TTLMinutes int    `yaml:"ttl_minutes" json:"ttl_minutes"`
}

// SensitivityConfig holds the sensitivity grid ranges (percentages)
type SensitivityConfig struct {
	AltInvestmentMin    float64 `yaml:"alt_investment_min" json:"alt_investment_min"`
	AltInvestmentMax    float64 `yaml:"alt_investment_max" json:"alt_investment_max"`
	PropertyIncreaseMin float64 `yaml:"property_increase_min" json:"property_increase_min"`
	PropertyIncreaseMax float64 `yaml:"property_increase_max" json:"property_increase_max"`
	Step                float64 `yaml:"step" json:"step"`
}

// Config holds the complete configuration
type Config struct {
	Calculation Params            `yaml:"calculation" json:"calculation"`
	Server      ServerConfig      `yaml:"server" json:"server"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Sensitivity SensitivityConfig `yaml:"sensitivity" json:"sensitivity"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of the embedded defaults, so omitted keys keep their default
func ParseConfig(data []byte) (*Config, error) {
	config, err := LoadDefaultConfig()
	if err != nil {
		return nil, err
	}

	content := preprocessPercentages(string(data))
	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Rent or Buy Configuration
# Generated by goRentOrBuy - feel free to edit manually
#
# ═══════════════════════════════════════════════════════════════════════════════
# VALUE FORMATS
# ═══════════════════════════════════════════════════════════════════════════════
#   Percentages: plain numbers, 5 = 5% (a trailing % is also accepted: 5%)
#   Money: plain numbers in your currency (e.g., 500000)
#   Years: whole number of years, also the mortgage term
#
# ═══════════════════════════════════════════════════════════════════════════════
# RUN COMMANDS
# ═══════════════════════════════════════════════════════════════════════════════
#   ./goRentOrBuy                       Desktop window (falls back to console)
#   ./goRentOrBuy -console              Console report
#   ./goRentOrBuy -details              Console report with month-by-month table
#   ./goRentOrBuy -html -pdf            Console report plus HTML and PDF reports
#   ./goRentOrBuy -sensitivity          Sensitivity analysis across growth rates
#   ./goRentOrBuy -web -addr :8080      Web server mode
#   ./goRentOrBuy -help                 Show all options

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the default configuration from embedded default-config.yaml
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

var percentRe = regexp.MustCompile(`(:\s*)(-?\d+\.?\d*)%`)

// preprocessPercentages strips the % sign from values like "4.5%" so they decode as 4.5
func preprocessPercentages(content string) string {
	return percentRe.ReplaceAllString(content, "${1}${2}")
}

func formatDefaultMoney(amount float64) string {
	if amount >= 1000000 {
		return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(amount/1000000, 'f', 2, 64), "0"), ".") + "m"
	} else if amount >= 1000 {
		return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(amount/1000, 'f', 1, 64), "0"), ".") + "k"
	}
	return strconv.FormatFloat(amount, 'f', 0, 64)
}

func formatDefaultPercent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// SensitivityRanges returns the configured grid ranges, filling in defaults for unset values
func (c *Config) SensitivityRanges() (altMin, altMax, propMin, propMax, step float64) {
	s := c.Sensitivity
	altMin, altMax = s.AltInvestmentMin, s.AltInvestmentMax
	propMin, propMax = s.PropertyIncreaseMin, s.PropertyIncreaseMax
	step = s.Step

	if altMin == 0 && altMax == 0 {
		altMin, altMax = 3, 10
	}
	if propMin == 0 && propMax == 0 {
		propMin, propMax = 1, 8
	}
	if step <= 0 {
		step = 1
	}
	return
}
