package model

// IndicatorSnapshot holds every computed indicator series for one symbol.
// All series are aligned to the same filtered trading-day sequence; a nil
// series means the indicator's prerequisites were not met at all.
type IndicatorSnapshot struct {
	Symbol      string
	TradingDays int // filtered observation count

	RSI       IndicatorSeries
	MFI       IndicatorSeries
	EMA9      IndicatorSeries
	EMA26     IndicatorSeries
	TSI       IndicatorSeries
	TSISignal IndicatorSeries
}
