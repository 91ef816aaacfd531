package model

// Classification is the terminal outcome of classifying one security.
type Classification string

const (
	ClassBuy          Classification = "BUY"
	ClassSell         Classification = "SELL"
	ClassHold         Classification = "HOLD"
	ClassInsufficient Classification = "INSUFFICIENT_DATA"
)

// SecurityKind selects the classification rule set for a security group.
type SecurityKind string

const (
	KindStock SecurityKind = "stock"
	KindETF   SecurityKind = "etf"
)

// Suggestion is the result of one evaluation of one security. Produced
// fresh on every pass and never mutated afterward. Display fields use NaN
// for absent values; consumers render those as "N/A".
type Suggestion struct {
	Symbol       string
	SecurityName string

	Classification Classification
	Reason         string
	RuleName       string // which rule matched, for auditing
	InvestmentNote string // non-empty when the rule flags an investment

	LatestRSI       float64
	LatestMFI       float64
	LatestEMA9      float64
	LatestEMA26     float64
	LatestTSI       float64
	LatestTSISignal float64
	MinRSI4         float64 // min RSI over the last 4 trading days (ETF display)
	MaxRSI4         float64

	CrossState       string // "Above" / "Below" / "N/A"
	TSIState         string // "TSI > Signal" / "TSI < Signal" / "N/A"
	GapTrend         string // "Shortening" / "Widening" / "N/A"
	CrossoverWarning bool   // EMA9 fell to or below EMA26 since the prior day
	TSIBuySignal     bool
	TSISellSignal    bool
}

// Statistics counts classification outcomes over a list of securities.
// Exactly one counter is incremented per evaluation, so the four counters
// always sum to Total.
type Statistics struct {
	Total                 int
	BuyCount              int
	SellCount             int
	HoldCount             int
	InsufficientDataCount int
}

// Add folds one outcome into the counters.
func (s *Statistics) Add(c Classification) {
	s.Total++
	switch c {
	case ClassBuy:
		s.BuyCount++
	case ClassSell:
		s.SellCount++
	case ClassHold:
		s.HoldCount++
	default:
		s.InsufficientDataCount++
	}
}

// Merge adds the counters of other into s. Used to combine per-group
// statistics into run totals.
func (s *Statistics) Merge(other Statistics) {
	s.Total += other.Total
	s.BuyCount += other.BuyCount
	s.SellCount += other.SellCount
	s.HoldCount += other.HoldCount
	s.InsufficientDataCount += other.InsufficientDataCount
}
