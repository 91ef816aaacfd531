// Package strategy turns a per-symbol indicator snapshot into a buy/sell/
// hold suggestion via a fixed, priority-ordered rule list.
package strategy

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"StockAdvisor/internal/calculator"
	"StockAdvisor/internal/model"
)

// rsiWindowDays is the display lookback for the ETF min/max RSI columns.
const rsiWindowDays = 4

// Classify evaluates one security. It is a pure function of the snapshot:
// re-running it on the same snapshot yields an identical suggestion.
// Securities missing any required latest indicator value are classified
// as insufficient data and no rules are evaluated.
//
// investAmount is the group's SIP amount in whole rupees; it is rendered
// into the suggestion whenever the matched rule flags an investment.
func Classify(snap *model.IndicatorSnapshot, kind model.SecurityKind, securityName string, investAmount int64) *model.Suggestion {
	sug := &model.Suggestion{
		Symbol:          snap.Symbol,
		SecurityName:    securityName,
		Classification:  model.ClassInsufficient,
		Reason:          ReasonInsufficient,
		LatestRSI:       math.NaN(),
		LatestMFI:       math.NaN(),
		LatestEMA9:      math.NaN(),
		LatestEMA26:     math.NaN(),
		LatestTSI:       math.NaN(),
		LatestTSISignal: math.NaN(),
		MinRSI4:         math.NaN(),
		MaxRSI4:         math.NaN(),
		CrossState:      calculator.GapNA,
		TSIState:        calculator.GapNA,
		GapTrend:        calculator.GapNA,
	}

	rsi, hasRSI := snap.RSI.Latest()
	mfi, hasMFI := snap.MFI.Latest()
	ema9, hasEMA9 := snap.EMA9.Latest()
	ema26, hasEMA26 := snap.EMA26.Latest()
	tsi, hasTSI := snap.TSI.Latest()
	tsiSignal, hasTSISignal := snap.TSISignal.Latest()

	if hasRSI {
		sug.LatestRSI = rsi
		if min, max, ok := snap.RSI.MinMaxLast(rsiWindowDays); ok {
			sug.MinRSI4 = min
			sug.MaxRSI4 = max
		}
	}
	if hasMFI {
		sug.LatestMFI = mfi
	}
	if hasEMA9 {
		sug.LatestEMA9 = ema9
	}
	if hasEMA26 {
		sug.LatestEMA26 = ema26
	}
	if hasTSI {
		sug.LatestTSI = tsi
	}
	if hasTSISignal {
		sug.LatestTSISignal = tsiSignal
	}

	if hasEMA9 && hasEMA26 {
		sug.CrossState = calculator.CrossState(snap.EMA9, snap.EMA26)
		sug.GapTrend = calculator.GapTrend(snap.EMA9, snap.EMA26)
		sug.CrossoverWarning = calculator.EmaBearishCross(snap.EMA9, snap.EMA26)
	}
	if hasTSI && hasTSISignal {
		if tsi > tsiSignal {
			sug.TSIState = "TSI > Signal"
		} else {
			sug.TSIState = "TSI < Signal"
		}
		sug.TSIBuySignal = calculator.TsiBuyCross(snap.TSI, snap.TSISignal)
		sug.TSISellSignal = calculator.TsiSellCross(snap.TSI, snap.TSISignal)
	}

	eligible := hasRSI && hasMFI && hasEMA9 && hasEMA26
	if kind == model.KindETF {
		eligible = eligible && hasTSI && hasTSISignal
	}
	if !eligible {
		return sug
	}

	sig := signals{
		rsi:      rsi,
		mfi:      mfi,
		emaCross: sug.CrossoverWarning,
		tsiBuy:   sug.TSIBuySignal,
		tsiSell:  sug.TSISellSignal,
	}

	sug.Classification = model.ClassHold
	sug.Reason = ReasonHold
	sug.RuleName = "hold"
	for _, r := range rulesFor(kind) {
		if r.when(sig) {
			sug.Classification = r.class
			sug.Reason = r.reason
			sug.RuleName = r.name
			if r.invest && investAmount > 0 {
				sug.InvestmentNote = fmt.Sprintf("💡 Invest: ₹%s", humanize.Comma(investAmount))
			}
			break
		}
	}
	return sug
}
