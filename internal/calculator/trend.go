package calculator

import (
	"math"

	"StockAdvisor/internal/model"
)

// Gap trend labels. NA covers both an unchanged gap and insufficient
// history.
const (
	GapShortening = "Shortening"
	GapWidening   = "Widening"
	GapNA         = "N/A"
)

// GapTrend compares the current |EMA9-EMA26| gap against the gap four
// observations earlier (latest defined value vs the fifth-from-latest).
// Requires five defined observations in both series.
func GapTrend(ema9, ema26 model.IndicatorSeries) string {
	cur9, ok1 := ema9.Back(0)
	old9, ok2 := ema9.Back(4)
	cur26, ok3 := ema26.Back(0)
	old26, ok4 := ema26.Back(4)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return GapNA
	}
	curGap := math.Abs(cur9 - cur26)
	oldGap := math.Abs(old9 - old26)
	switch {
	case curGap < oldGap:
		return GapShortening
	case curGap > oldGap:
		return GapWidening
	default:
		return GapNA
	}
}

// CrossState labels the latest EMA9/EMA26 relation: "Above" when EMA9 is
// strictly greater, "Below" otherwise, "N/A" when either latest value is
// absent.
func CrossState(ema9, ema26 model.IndicatorSeries) string {
	cur9, ok1 := ema9.Back(0)
	cur26, ok2 := ema26.Back(0)
	if !ok1 || !ok2 {
		return GapNA
	}
	if cur9 > cur26 {
		return "Above"
	}
	return "Below"
}
