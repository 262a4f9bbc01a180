package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCostSeriesCSV(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())

	var buf bytes.Buffer
	require.NoError(t, WriteCostSeriesCSV(&buf, s))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 122, "header plus 121 months")

	assert.Equal(t, []string{"month", "buying_cost", "renting_cost", "diff", "investment"}, records[0])
	assert.Equal(t, []string{"0", "500000.00", "0.00", "500000.00"}, records[1][:4])
	assert.Equal(t, "1", records[2][0])
	assert.Equal(t, "13033.93", records[2][1])
	assert.Equal(t, "4200.00", records[2][2])
	assert.Equal(t, "120", records[121][0])

	for _, rec := range records[1:] {
		for _, cell := range rec[1:] {
			dot := strings.IndexByte(cell, '.')
			require.NotEqual(t, -1, dot, "cell %q", cell)
			assert.Len(t, cell[dot+1:], 2, "cell %q should have two decimals", cell)
		}
	}
}

func TestWriteCostSeriesCSV_ScenarioA(t *testing.T) {
	s := mustBuildSeries(t, CostInputs{Years: 1, MonthlyMortgagePayment: 1000, BaseRent: 900})

	var buf bytes.Buffer
	require.NoError(t, WriteCostSeriesCSV(&buf, s))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "12,1000.00,900.00,100.00,100.00", lines[13])
}

func TestCSVAmount(t *testing.T) {
	assert.Equal(t, "1234.57", csvAmount(1234.567))
	assert.Equal(t, "-400.00", csvAmount(-400))
	assert.Equal(t, "0.00", csvAmount(0))
	assert.Equal(t, "", csvAmount(math.NaN()))
	assert.Equal(t, "", csvAmount(math.Inf(-1)))
}

func TestExportCostSeriesCSV(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	path := filepath.Join(t.TempDir(), "costs.csv")

	require.NoError(t, ExportCostSeriesCSV(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "month,buying_cost,renting_cost,diff,investment\n"))
}

func TestExportCostSeriesCSV_BadPath(t *testing.T) {
	s := mustBuildSeries(t, defaultCostInputs())
	err := ExportCostSeriesCSV(s, filepath.Join(t.TempDir(), "missing", "costs.csv"))
	assert.Error(t, err)
}
