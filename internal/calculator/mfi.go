package calculator

import (
	"fmt"
	"math"

	talib "github.com/markcheno/go-talib"

	"StockAdvisor/internal/model"
)

// MoneyFlowFunc is the external Money Flow Index routine: standard MFI
// semantics over aligned high/low/close/volume slices, returning a series
// of the same length.
type MoneyFlowFunc func(high, low, close, volume []float64, period int) []float64

// moneyFlow is the routine in use; swapped out in tests.
var moneyFlow MoneyFlowFunc = talib.Mfi

// Mfi delegates to the external money-flow routine and normalizes the
// result: the first period entries are warm-up and marked absent, the rest
// rounded to two decimals. A panic inside the routine is returned as an
// error so a broken adapter stays local to this indicator.
func Mfi(high, low, closes, volume []float64, period int) (series model.IndicatorSeries, err error) {
	defer func() {
		if r := recover(); r != nil {
			series = nil
			err = fmt.Errorf("money flow routine: %v", r)
		}
	}()

	raw := moneyFlow(high, low, closes, volume, period)
	out := make(model.IndicatorSeries, len(raw))
	for i, v := range raw {
		if i < period {
			out[i] = math.NaN()
			continue
		}
		out[i] = round2(v)
	}
	return out, nil
}
