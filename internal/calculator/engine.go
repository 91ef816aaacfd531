// Package calculator computes technical indicators over daily price
// series. All functions are pure transforms over slices; absent values are
// NaN, never zero.
package calculator

import (
	"log"

	"StockAdvisor/internal/model"
)

// Indicator parameters. Fixed, not per-symbol configurable.
const (
	RsiLength     = 14
	MfiPeriod     = 14
	EmaFastPeriod = 9
	EmaSlowPeriod = 26
	TsiLong       = 25
	TsiShort      = 13
	TsiSignalSpan = 13
)

// ComputeSnapshot filters the series to trading days and computes every
// indicator whose own prerequisites hold. Indicators are independent: a
// missing prerequisite for one never blocks the others. A series shorter
// than an indicator's warm-up simply leaves that indicator nil.
func ComputeSnapshot(series model.PriceSeries) *model.IndicatorSnapshot {
	trading := series.FilterTrading()
	closes := trading.Closes()

	snap := &model.IndicatorSnapshot{
		Symbol:      series.Symbol,
		TradingDays: len(closes),
	}

	if len(closes) > 0 {
		snap.EMA9 = model.IndicatorSeries(Ema(closes, EmaFastPeriod))
		snap.EMA26 = model.IndicatorSeries(Ema(closes, EmaSlowPeriod))
	}

	if len(closes) > RsiLength {
		snap.RSI = Rsi(closes, RsiLength)
	}

	if len(closes) > TsiLong {
		snap.TSI, snap.TSISignal = Tsi(closes, TsiLong, TsiShort, TsiSignalSpan)
	}

	if len(closes) > MfiPeriod && trading.MoneyFlowReady() {
		mfi, err := Mfi(trading.Highs(), trading.Lows(), closes, trading.Volumes(), MfiPeriod)
		if err != nil {
			log.Printf("[WARN] %s: MFI skipped: %v", series.Symbol, err)
		} else {
			snap.MFI = mfi
		}
	}

	return snap
}
