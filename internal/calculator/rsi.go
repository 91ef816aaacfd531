package calculator

import (
	"math"

	"StockAdvisor/internal/model"
)

// Rsi computes the EMA-smoothed RSI over close prices. Gains and losses
// are smoothed independently with span 2*length-1, rs = gainEma/lossEma,
// rsi = 100 - 100/(1+rs), rounded to two decimals.
//
// The result is aligned to closes; entry 0 is always absent because the
// first delta is undefined. When lossEma is zero with gains present, rs is
// +Inf and the value collapses to 100; when both smoothed sums are zero
// the value is absent.
func Rsi(closes []float64, length int) model.IndicatorSeries {
	n := len(closes)
	out := make(model.IndicatorSeries, n)
	for i := range out {
		out[i] = math.NaN()
	}
	if n < 2 {
		return out
	}

	span := 2*length - 1
	gains := make([]float64, n-1)
	losses := make([]float64, n-1)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	gainEma := Ema(gains, span)
	lossEma := Ema(losses, span)
	for i := 0; i < n-1; i++ {
		rs := gainEma[i] / lossEma[i]
		out[i+1] = round2(100 - 100/(1+rs))
	}
	return out
}
