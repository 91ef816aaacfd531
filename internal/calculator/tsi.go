package calculator

import (
	"math"

	"StockAdvisor/internal/model"
)

// Tsi computes the True Strength Index and its signal line over close
// prices: one-day momentum smoothed twice (short span then long span),
// divided by the identically smoothed absolute momentum, times 100. The
// signal line smooths the raw TSI with signalSpan before rounding; both
// outputs are rounded to four decimals.
//
// Both series are aligned to closes with entry 0 absent (first momentum is
// undefined). A flat prefix makes the absolute-momentum denominator zero,
// leaving those entries absent.
func Tsi(closes []float64, long, short, signalSpan int) (tsi, signalLine model.IndicatorSeries) {
	n := len(closes)
	tsi = make(model.IndicatorSeries, n)
	signalLine = make(model.IndicatorSeries, n)
	for i := 0; i < n; i++ {
		tsi[i] = math.NaN()
		signalLine[i] = math.NaN()
	}
	if n < 2 {
		return tsi, signalLine
	}

	momentum := make([]float64, n-1)
	absMomentum := make([]float64, n-1)
	for i := 1; i < n; i++ {
		momentum[i-1] = closes[i] - closes[i-1]
		absMomentum[i-1] = math.Abs(momentum[i-1])
	}

	secondSmooth := Ema(Ema(momentum, short), long)
	secondAbsSmooth := Ema(Ema(absMomentum, short), long)

	raw := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		raw[i] = 100 * secondSmooth[i] / secondAbsSmooth[i]
	}
	rawSignal := Ema(raw, signalSpan)

	for i := 0; i < n-1; i++ {
		tsi[i+1] = round4(raw[i])
		signalLine[i+1] = round4(rawSignal[i])
	}
	return tsi, signalLine
}
