package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestCumulativeSeries(t *testing.T) {
	s := mustBuildSeries(t, CostInputs{Years: 2, Capital: 1000, MonthlyMortgagePayment: 100, BaseRent: 80})
	cs := CumulativeSeries(s)

	assert.Equal(t, []string{"0", "1", "2"}, cs.Labels)
	assert.Equal(t, []float64{1000, 2200, 3400}, cs.Buying)
	assert.Equal(t, []float64{0, 960, 1920}, cs.Renting)
	assert.Equal(t, []float64{1000, 1240, 1480}, cs.Investment)

	last := len(cs.Buying) - 1
	assert.InDelta(t, s.TotalBuyingCost(), cs.Buying[last], 1e-9)
	assert.InDelta(t, s.TotalRentPaid(), cs.Renting[last], 1e-9)
	assert.InDelta(t, s.TotalInvestmentValue(), cs.Investment[last], 1e-9)
}

func TestRenderComparisonChart(t *testing.T) {
	a, err := Analyze(DefaultParams())
	require.NoError(t, err)

	img, err := RenderComparisonChart(a)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic), "output should be a PNG")
}

func TestRenderComparisonChart_NoSeries(t *testing.T) {
	_, err := RenderComparisonChart(nil)
	assert.Error(t, err)
	_, err = RenderComparisonChart(&Analysis{})
	assert.Error(t, err)
}

func TestChartRenderer_UsesCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(0)
	r := NewChartRenderer(cache)

	a, err := Analyze(DefaultParams())
	require.NoError(t, err)

	first, err := r.Render(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	// A cached image is returned without drawing again
	key, _ := CacheKey("chart", a.Params)
	require.NoError(t, cache.Set(ctx, key, []byte("cached")))
	second, err := r.Render(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), second)
	assert.True(t, bytes.HasPrefix(first, pngMagic))
}

func TestNewChartRenderer_NilCache(t *testing.T) {
	a, err := Analyze(DefaultParams())
	require.NoError(t, err)

	img, err := NewChartRenderer(nil).Render(context.Background(), a)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (failingCache) Set(context.Context, string, []byte) error {
	return errors.New("cache unavailable")
}

func TestChartRenderer_CacheSetFailure(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	a, err := Analyze(DefaultParams())
	require.NoError(t, err)

	img, err := NewChartRenderer(failingCache{}).Render(context.Background(), a)
	require.NoError(t, err, "a cache write failure does not fail the render")
	assert.True(t, bytes.HasPrefix(img, pngMagic))
	assert.Contains(t, logs.String(), "failed to cache chart: cache unavailable")
}
