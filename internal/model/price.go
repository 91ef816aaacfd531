package model

import (
	"math"
	"time"
)

// PricePoint is one daily observation for a symbol. Open is optional and
// may be NaN; a Volume <= 0 marks a non-trading day (holiday row from the
// data source).
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw daily observations for one symbol, ordered by
// date. Immutable once ingested.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// FilterTrading returns the subsequence of observations with Volume > 0.
// Order is preserved and non-trading days are dropped entirely, so indices
// in the result are renumbered, not masked.
func (s PriceSeries) FilterTrading() PriceSeries {
	out := PriceSeries{Symbol: s.Symbol, FetchedAt: s.FetchedAt}
	for _, p := range s.Points {
		if p.Volume > 0 {
			out.Points = append(out.Points, p)
		}
	}
	return out
}

// Closes returns the close prices in order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Close
	}
	return out
}

// Highs returns the high prices in order.
func (s PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.High
	}
	return out
}

// Lows returns the low prices in order.
func (s PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Low
	}
	return out
}

// Volumes returns the volumes in order.
func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Volume
	}
	return out
}

// MoneyFlowReady reports whether every observation carries the high, low,
// close and volume fields the money-flow computation needs.
func (s PriceSeries) MoneyFlowReady() bool {
	for _, p := range s.Points {
		if math.IsNaN(p.High) || math.IsNaN(p.Low) || math.IsNaN(p.Close) || math.IsNaN(p.Volume) {
			return false
		}
	}
	return true
}
