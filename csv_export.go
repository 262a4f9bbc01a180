package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

var costCSVHeader = []string{"month", "buying_cost", "renting_cost", "diff", "investment"}

// csvAmount renders a value with exactly two decimals; non-finite values become empty cells
func csvAmount(v float64) string {
	if !isFinite(v) {
		return ""
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WriteCostSeriesCSV writes the header and one record per month
func WriteCostSeriesCSV(w io.Writer, s *CostSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(costCSVHeader); err != nil {
		return err
	}
	for _, r := range s.Rows() {
		record := []string{
			strconv.Itoa(r.Month),
			csvAmount(r.BuyingCost),
			csvAmount(r.RentingCost),
			csvAmount(r.Diff),
			csvAmount(r.Investment),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCostSeriesCSV writes the cost series to a file
func ExportCostSeriesCSV(s *CostSeries, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCostSeriesCSV(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
