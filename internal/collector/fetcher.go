// Package collector fetches daily price history from market data sources.
// Sources deliver raw series as-is; dropping non-trading rows belongs to
// the indicator engine, not the fetcher.
package collector

import "StockAdvisor/internal/model"

// Fetcher retrieves daily price history for a symbol.
type Fetcher interface {
	// FetchDailyHistory returns up to days most recent daily
	// observations, oldest first.
	FetchDailyHistory(symbol string, days int) (model.PriceSeries, error)
	Name() string
}
