// Package analyzer runs a classification pass over watchlist groups:
// fetch history per symbol, compute the indicator snapshot, classify, and
// fold the outcomes into per-group statistics.
package analyzer

import (
	"context"
	"log"

	"StockAdvisor/internal/calculator"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/strategy"
)

// Group is one watchlist evaluated with a single rule set and investment
// amount.
type Group struct {
	Name             string
	Kind             model.SecurityKind
	Symbols          []string
	SecurityNames    map[string]string
	InvestmentAmount int64
}

// GroupResult holds the ordered suggestions and statistics for one group.
// The statistics are a pure fold of the suggestion classifications, so
// the four counters always sum to the number of symbols evaluated.
type GroupResult struct {
	Group       string
	Kind        model.SecurityKind
	Suggestions []*model.Suggestion
	Stats       model.Statistics
}

// Analyzer evaluates watchlist groups against a data source.
type Analyzer struct {
	Fetcher      collector.Fetcher
	LookbackDays int
}

// New creates an Analyzer.
func New(fetcher collector.Fetcher, lookbackDays int) *Analyzer {
	return &Analyzer{Fetcher: fetcher, LookbackDays: lookbackDays}
}

// AnalyzeGroup evaluates every symbol in the group. A fetch failure for
// one symbol degrades that symbol to insufficient data and never aborts
// the pass. Cancellation is cooperative at symbol granularity.
func (a *Analyzer) AnalyzeGroup(ctx context.Context, g Group) (*GroupResult, error) {
	res := &GroupResult{Group: g.Name, Kind: g.Kind}
	for _, symbol := range g.Symbols {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var snap *model.IndicatorSnapshot
		series, err := a.Fetcher.FetchDailyHistory(symbol, a.LookbackDays)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
			snap = &model.IndicatorSnapshot{Symbol: symbol}
		} else {
			snap = calculator.ComputeSnapshot(series)
		}

		name := g.SecurityNames[symbol]
		if name == "" {
			name = symbol
		}
		sug := strategy.Classify(snap, g.Kind, name, g.InvestmentAmount)
		res.Suggestions = append(res.Suggestions, sug)
		res.Stats.Add(sug.Classification)
	}
	return res, nil
}

// AnalyzeAll evaluates every group in order.
func (a *Analyzer) AnalyzeAll(ctx context.Context, groups []Group) ([]*GroupResult, error) {
	results := make([]*GroupResult, 0, len(groups))
	for _, g := range groups {
		res, err := a.AnalyzeGroup(ctx, g)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] group %s: %d symbols, buy=%d sell=%d hold=%d insufficient=%d",
			g.Name, res.Stats.Total, res.Stats.BuyCount, res.Stats.SellCount,
			res.Stats.HoldCount, res.Stats.InsufficientDataCount)
		results = append(results, res)
	}
	return results, nil
}

// Totals merges the per-group statistics of results.
func Totals(results []*GroupResult) model.Statistics {
	var total model.Statistics
	for _, r := range results {
		total.Merge(r.Stats)
	}
	return total
}
