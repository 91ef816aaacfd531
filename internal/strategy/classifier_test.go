package strategy

import (
	"math"
	"reflect"
	"testing"

	"StockAdvisor/internal/model"
)

// flatSeries builds a series of n copies of v, so the latest value is v
// and no crossover is present.
func flatSeries(v float64, n int) model.IndicatorSeries {
	s := make(model.IndicatorSeries, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// stockSnapshot is eligible for stock classification with no crossover:
// EMA9 above EMA26 throughout.
func stockSnapshot(rsi, mfi float64) *model.IndicatorSnapshot {
	return &model.IndicatorSnapshot{
		Symbol:      "TEST.NS",
		TradingDays: 30,
		RSI:         flatSeries(rsi, 6),
		MFI:         flatSeries(mfi, 6),
		EMA9:        flatSeries(105, 6),
		EMA26:       flatSeries(100, 6),
	}
}

func etfSnapshot(rsi, mfi float64) *model.IndicatorSnapshot {
	snap := stockSnapshot(rsi, mfi)
	snap.TSI = flatSeries(5, 6)
	snap.TSISignal = flatSeries(10, 6)
	return snap
}

func TestClassify_StockPriority(t *testing.T) {
	tests := []struct {
		name       string
		rsi, mfi   float64
		wantClass  model.Classification
		wantReason string
	}{
		{"rsi and mfi oversold", 25, 15, model.ClassBuy, ReasonMakeSIP},
		{"rsi oversold only", 25, 50, model.ClassBuy, ReasonMakeSIP},
		{"mfi oversold only", 50, 15, model.ClassBuy, ReasonMakeSIPMfi},
		{"rsi and mfi overbought", 75, 85, model.ClassSell, ReasonCutDown},
		{"rsi overbought only", 75, 50, model.ClassSell, ReasonCutDown},
		{"mfi overbought only", 50, 85, model.ClassSell, ReasonCutDownMfi},
		{"neutral holds", 50, 50, model.ClassHold, ReasonHold},
		{"thresholds are strict", 30, 20, model.ClassHold, ReasonHold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sug := Classify(stockSnapshot(tt.rsi, tt.mfi), model.KindStock, "Test Co", 25000)
			if sug.Classification != tt.wantClass {
				t.Errorf("classification = %s, want %s", sug.Classification, tt.wantClass)
			}
			if sug.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", sug.Reason, tt.wantReason)
			}
		})
	}
}

func TestClassify_EmaCrossoverOverridesOversold(t *testing.T) {
	snap := stockSnapshot(25, 15)
	// EMA9 was above EMA26, now at-or-below.
	snap.EMA9 = model.IndicatorSeries{105, 105, 105, 105, 105, 99}
	snap.EMA26 = model.IndicatorSeries{100, 100, 100, 100, 100, 100}

	sug := Classify(snap, model.KindStock, "Test Co", 25000)
	if sug.Classification != model.ClassSell || sug.Reason != ReasonEmaSell {
		t.Errorf("got %s %q, want SELL %q regardless of RSI/MFI", sug.Classification, sug.Reason, ReasonEmaSell)
	}
	if !sug.CrossoverWarning {
		t.Error("expected crossover warning flag")
	}
	if sug.InvestmentNote != "" {
		t.Errorf("sell suggestion should carry no investment note, got %q", sug.InvestmentNote)
	}
}

func TestClassify_EtfTsiPriority(t *testing.T) {
	// TSI crossing above its signal line outranks an EMA bearish cross
	// and any RSI/MFI level.
	snap := etfSnapshot(75, 85)
	snap.EMA9 = model.IndicatorSeries{105, 105, 105, 105, 105, 99}
	snap.EMA26 = model.IndicatorSeries{100, 100, 100, 100, 100, 100}
	snap.TSI = model.IndicatorSeries{-5, -5, -5, -5, -5, 1}
	snap.TSISignal = model.IndicatorSeries{0, 0, 0, 0, 0, 0}

	sug := Classify(snap, model.KindETF, "Test ETF", 50000)
	if sug.Classification != model.ClassBuy || sug.Reason != ReasonTsiBuy {
		t.Errorf("got %s %q, want BUY %q", sug.Classification, sug.Reason, ReasonTsiBuy)
	}
	if sug.InvestmentNote != "💡 Invest: ₹50,000" {
		t.Errorf("investment note = %q", sug.InvestmentNote)
	}
}

func TestClassify_EtfTsiSellBeforeEmaCross(t *testing.T) {
	snap := etfSnapshot(25, 15)
	snap.EMA9 = model.IndicatorSeries{105, 105, 105, 105, 105, 99}
	snap.EMA26 = model.IndicatorSeries{100, 100, 100, 100, 100, 100}
	snap.TSI = model.IndicatorSeries{5, 5, 5, 5, 5, -1}
	snap.TSISignal = model.IndicatorSeries{0, 0, 0, 0, 0, 0}

	sug := Classify(snap, model.KindETF, "Test ETF", 50000)
	if sug.Classification != model.ClassSell || sug.Reason != ReasonTsiSell {
		t.Errorf("got %s %q, want SELL %q", sug.Classification, sug.Reason, ReasonTsiSell)
	}
}

func TestClassify_TsiBoundaryEqualityBuysFirst(t *testing.T) {
	// prev TSI == prev signal satisfies both predicates' previous-point
	// condition; the buy rule is checked first, so an upward move buys.
	snap := etfSnapshot(50, 50)
	snap.TSI = model.IndicatorSeries{0, 0, 0, 0, 0, 1}
	snap.TSISignal = model.IndicatorSeries{0, 0, 0, 0, 0, 0}

	sug := Classify(snap, model.KindETF, "Test ETF", 50000)
	if sug.Reason != ReasonTsiBuy {
		t.Errorf("reason = %q, want %q via rule order", sug.Reason, ReasonTsiBuy)
	}
	if sug.RuleName != "tsi_buy_cross" {
		t.Errorf("rule = %q, want tsi_buy_cross", sug.RuleName)
	}
}

func TestClassify_InsufficientData(t *testing.T) {
	t.Run("stock missing MFI", func(t *testing.T) {
		snap := stockSnapshot(25, 0)
		snap.MFI = nil
		sug := Classify(snap, model.KindStock, "Test Co", 25000)
		if sug.Classification != model.ClassInsufficient || sug.Reason != ReasonInsufficient {
			t.Errorf("got %s %q", sug.Classification, sug.Reason)
		}
	})
	t.Run("etf missing TSI", func(t *testing.T) {
		snap := stockSnapshot(25, 15) // eligible as a stock, but no TSI
		sug := Classify(snap, model.KindETF, "Test ETF", 50000)
		if sug.Classification != model.ClassInsufficient {
			t.Errorf("got %s, ETFs require TSI inputs", sug.Classification)
		}
	})
	t.Run("empty snapshot keeps display fields absent", func(t *testing.T) {
		sug := Classify(&model.IndicatorSnapshot{Symbol: "X"}, model.KindStock, "X", 0)
		if !math.IsNaN(sug.LatestRSI) || !math.IsNaN(sug.LatestEMA9) {
			t.Error("absent indicators must stay NaN, never zero")
		}
	})
}

func TestClassify_Idempotent(t *testing.T) {
	snap := etfSnapshot(25, 15)
	a := Classify(snap, model.KindETF, "Test ETF", 50000)
	b := Classify(snap, model.KindETF, "Test ETF", 50000)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("re-running classification diverged:\n%+v\n%+v", a, b)
	}
}

func TestStatistics_CountersSumToTotal(t *testing.T) {
	var stats model.Statistics
	snaps := []*model.IndicatorSnapshot{
		stockSnapshot(25, 15), // buy
		stockSnapshot(75, 85), // sell
		stockSnapshot(50, 50), // hold
		{Symbol: "EMPTY"},     // insufficient
		stockSnapshot(28, 50), // buy
	}
	for _, snap := range snaps {
		sug := Classify(snap, model.KindStock, snap.Symbol, 25000)
		stats.Add(sug.Classification)
	}
	sum := stats.BuyCount + stats.SellCount + stats.HoldCount + stats.InsufficientDataCount
	if sum != stats.Total || stats.Total != len(snaps) {
		t.Errorf("counters %d/%d/%d/%d sum %d, total %d, evaluated %d",
			stats.BuyCount, stats.SellCount, stats.HoldCount, stats.InsufficientDataCount,
			sum, stats.Total, len(snaps))
	}
	if stats.BuyCount != 2 || stats.SellCount != 1 || stats.HoldCount != 1 || stats.InsufficientDataCount != 1 {
		t.Errorf("unexpected breakdown: %+v", stats)
	}
}
