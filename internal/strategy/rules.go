package strategy

import "StockAdvisor/internal/model"

// Oversold/overbought thresholds. Fixed constants, not per-symbol.
const (
	RsiBuyBelow  = 30.0
	RsiSellAbove = 70.0
	MfiBuyBelow  = 20.0
	MfiSellAbove = 80.0
)

// Suggestion reason texts.
const (
	ReasonTsiBuy       = "Strong Buy (TSI Crossover)"
	ReasonTsiSell      = "Sell (TSI Crossover)"
	ReasonEmaSell      = "Sell (EMA Crossover)"
	ReasonMakeSIP      = "Make SIP"
	ReasonMakeSIPMfi   = "Make SIP (MFI)"
	ReasonCutDown      = "Cut Down"
	ReasonCutDownMfi   = "Cut Down (MFI)"
	ReasonHold         = "Hold"
	ReasonInsufficient = "Insufficient data"
)

// signals is the indicator snapshot reduced to what the rules read.
type signals struct {
	rsi      float64
	mfi      float64
	emaCross bool
	tsiBuy   bool
	tsiSell  bool
}

// rule is one classification branch. Rules are evaluated in slice order
// and the first match wins, which makes the priority explicit and
// auditable.
type rule struct {
	name   string
	when   func(s signals) bool
	class  model.Classification
	reason string
	invest bool
}

// etfRules is the full priority order. The compound oversold/overbought
// branches sit above their standalone counterparts and produce identical
// outcomes, so they can never fire; they are kept as written because the
// order itself is the contract.
var etfRules = []rule{
	{
		name:   "tsi_buy_cross",
		when:   func(s signals) bool { return s.tsiBuy },
		class:  model.ClassBuy,
		reason: ReasonTsiBuy,
		invest: true,
	},
	{
		name:   "tsi_sell_cross",
		when:   func(s signals) bool { return s.tsiSell },
		class:  model.ClassSell,
		reason: ReasonTsiSell,
	},
	{
		name:   "ema_bearish_cross",
		when:   func(s signals) bool { return s.emaCross },
		class:  model.ClassSell,
		reason: ReasonEmaSell,
	},
	{
		name:   "rsi_mfi_oversold",
		when:   func(s signals) bool { return s.rsi < RsiBuyBelow && s.mfi < MfiBuyBelow },
		class:  model.ClassBuy,
		reason: ReasonMakeSIP,
		invest: true,
	},
	{
		name:   "rsi_oversold",
		when:   func(s signals) bool { return s.rsi < RsiBuyBelow },
		class:  model.ClassBuy,
		reason: ReasonMakeSIP,
		invest: true,
	},
	{
		name:   "mfi_oversold",
		when:   func(s signals) bool { return s.mfi < MfiBuyBelow },
		class:  model.ClassBuy,
		reason: ReasonMakeSIPMfi,
		invest: true,
	},
	{
		name:   "rsi_mfi_overbought",
		when:   func(s signals) bool { return s.rsi > RsiSellAbove && s.mfi > MfiSellAbove },
		class:  model.ClassSell,
		reason: ReasonCutDown,
	},
	{
		name:   "rsi_overbought",
		when:   func(s signals) bool { return s.rsi > RsiSellAbove },
		class:  model.ClassSell,
		reason: ReasonCutDown,
	},
	{
		name:   "mfi_overbought",
		when:   func(s signals) bool { return s.mfi > MfiSellAbove },
		class:  model.ClassSell,
		reason: ReasonCutDownMfi,
	},
}

// stockRules drops the TSI branches; plain stocks start at the EMA
// crossover check.
var stockRules = etfRules[2:]

// rulesFor returns the priority-ordered rule list for a security kind.
func rulesFor(kind model.SecurityKind) []rule {
	if kind == model.KindETF {
		return etfRules
	}
	return stockRules
}
