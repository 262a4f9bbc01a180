package main

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/vicanso/go-charts/v2"
)

const (
	chartWidth  = 900
	chartHeight = 480
)

// ChartSeries holds the cumulative yearly curves plotted in the comparison chart
type ChartSeries struct {
	Labels     []string
	Buying     []float64
	Renting    []float64
	Investment []float64
}

// CumulativeSeries folds the yearly summaries into running totals, one point per year
func CumulativeSeries(s *CostSeries) ChartSeries {
	yearly := s.Yearly()
	out := ChartSeries{
		Labels:     make([]string, len(yearly)),
		Buying:     make([]float64, len(yearly)),
		Renting:    make([]float64, len(yearly)),
		Investment: make([]float64, len(yearly)),
	}
	var buying, renting, investment float64
	for i, y := range yearly {
		buying += y.BuyingCost
		renting += y.RentingCost
		investment += y.Investment
		out.Labels[i] = strconv.Itoa(y.Year)
		out.Buying[i] = buying
		out.Renting[i] = renting
		out.Investment[i] = investment
	}
	return out
}

// RenderComparisonChart draws cumulative buying cost, rent paid and invested value as a PNG
func RenderComparisonChart(a *Analysis) ([]byte, error) {
	if a == nil || a.Series == nil {
		return nil, errors.New("no cost series to chart")
	}
	cs := CumulativeSeries(a.Series)
	if len(cs.Labels) < 2 {
		return nil, errors.New("not enough data points")
	}

	names := []string{"Buying cost", "Rent paid", "Invested difference"}
	split := len(cs.Labels) - 1
	if split > 10 {
		split = 10
	}

	painter, err := charts.LineRender([][]float64{cs.Buying, cs.Renting, cs.Investment},
		charts.TitleTextOptionFunc("Rent or Buy • "+strconv.Itoa(a.Params.Years)+" years", "Cumulative by year, recommendation: "+a.Recommendation.String()),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: cs.Labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names, Top: charts.PositionBottom}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// ChartRenderer renders comparison charts through a result cache
type ChartRenderer struct {
	cache ResultCache
}

func NewChartRenderer(cache ResultCache) *ChartRenderer {
	if cache == nil {
		cache = noCache{}
	}
	return &ChartRenderer{cache: cache}
}

// Render returns the cached PNG for these parameters or draws and stores a new one
func (c *ChartRenderer) Render(ctx context.Context, a *Analysis) ([]byte, error) {
	key, err := CacheKey("chart", a.Params)
	if err != nil {
		return nil, err
	}
	if img, ok := c.cache.Get(ctx, key); ok {
		return img, nil
	}
	img, err := RenderComparisonChart(a)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, img); err != nil {
		log.Printf("Warning: failed to cache chart: %v", err)
	}
	return img, nil
}
