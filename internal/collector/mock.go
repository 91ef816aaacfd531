package collector

import (
	"fmt"
	"time"

	"StockAdvisor/internal/model"
)

// MockFetcher returns canned per-symbol data for development and testing.
// Symbols without canned data get a generated drifting series; symbols
// listed in FailSymbols return an error.
type MockFetcher struct {
	Series      map[string]model.PriceSeries
	FailSymbols map[string]bool
	BasePrice   float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(symbol string, days int) (model.PriceSeries, error) {
	if m.FailSymbols[symbol] {
		return model.PriceSeries{}, fmt.Errorf("mock: no data for %s", symbol)
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	return GenerateSeries(symbol, base, days), nil
}

// GenerateSeries builds a mildly drifting daily series with constant
// positive volume, count observations ending yesterday.
func GenerateSeries(symbol string, basePrice float64, count int) model.PriceSeries {
	series := model.PriceSeries{Symbol: symbol, FetchedAt: time.Now()}
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		series.Points = append(series.Points, model.PricePoint{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		})
	}
	return series
}
