package calculator

import "StockAdvisor/internal/model"

// EmaBearishCross reports whether EMA9 was above EMA26 on the previous
// observation but is at or below it on the latest one. Requires two
// defined observations in both series; anything less is false, not an
// error.
func EmaBearishCross(ema9, ema26 model.IndicatorSeries) bool {
	prev9, ok1 := ema9.Back(1)
	cur9, ok2 := ema9.Back(0)
	prev26, ok3 := ema26.Back(1)
	cur26, ok4 := ema26.Back(0)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return prev9 > prev26 && cur9 <= cur26
}

// TsiBuyCross reports whether TSI crossed above its signal line: at or
// below on the previous observation, strictly above on the latest.
func TsiBuyCross(tsi, signal model.IndicatorSeries) bool {
	prevT, ok1 := tsi.Back(1)
	curT, ok2 := tsi.Back(0)
	prevS, ok3 := signal.Back(1)
	curS, ok4 := signal.Back(0)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return prevT <= prevS && curT > curS
}

// TsiSellCross reports whether TSI crossed below its signal line: at or
// above on the previous observation, strictly below on the latest.
//
// Both cross predicates include equality at the previous point, so when
// prev TSI equals prev signal exactly they are not mutually exclusive;
// the classifier's fixed rule order (buy before sell) decides.
func TsiSellCross(tsi, signal model.IndicatorSeries) bool {
	prevT, ok1 := tsi.Back(1)
	curT, ok2 := tsi.Back(0)
	prevS, ok3 := signal.Back(1)
	curS, ok4 := signal.Back(0)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return prevT >= prevS && curT < curS
}
