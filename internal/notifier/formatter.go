package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/model"
)

// fmtVal renders an indicator value, or "N/A" when absent.
func fmtVal(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func classIcon(c model.Classification) string {
	switch c {
	case model.ClassBuy:
		return "🟢"
	case model.ClassSell:
		return "🔴"
	case model.ClassHold:
		return "⚪"
	default:
		return "⚫"
	}
}

// FormatGroupReport formats one group's suggestions into a Telegram
// message.
func FormatGroupReport(res *analyzer.GroupResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", res.Group, time.Now().Format("2006-01-02")))

	for _, s := range res.Suggestions {
		b.WriteString(fmt.Sprintf("%s <b>%s</b> (%s): %s\n", classIcon(s.Classification), s.SecurityName, s.Symbol, s.Reason))
		b.WriteString(fmt.Sprintf("   RSI %s | MFI %s | EMA9 %s | EMA26 %s\n",
			fmtVal(s.LatestRSI), fmtVal(s.LatestMFI), fmtVal(s.LatestEMA9), fmtVal(s.LatestEMA26)))
		if res.Kind == model.KindETF {
			b.WriteString(fmt.Sprintf("   TSI %s | Signal %s | %s\n",
				fmtVal(s.LatestTSI), fmtVal(s.LatestTSISignal), s.TSIState))
		}
		b.WriteString(fmt.Sprintf("   EMA: %s | Gap: %s\n", s.CrossState, s.GapTrend))
		if s.CrossoverWarning {
			b.WriteString("   ⚠️ EMA9 crossed below EMA26\n")
		}
		if s.InvestmentNote != "" {
			b.WriteString(fmt.Sprintf("   %s\n", s.InvestmentNote))
		}
		b.WriteString("\n")
	}

	st := res.Stats
	b.WriteString(fmt.Sprintf("Buy %d | Sell %d | Hold %d | Insufficient %d (of %d)\n",
		st.BuyCount, st.SellCount, st.HoldCount, st.InsufficientDataCount, st.Total))
	return b.String()
}

// FormatRunSummary formats the cross-group totals of one analysis run.
func FormatRunSummary(results []*analyzer.GroupResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 <b>Execution Summary</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, r := range results {
		b.WriteString(fmt.Sprintf("%s: %d analyzed, buy %d, sell %d\n",
			r.Group, r.Stats.Total, r.Stats.BuyCount, r.Stats.SellCount))
	}
	totals := analyzer.Totals(results)
	b.WriteString(fmt.Sprintf("\nTotal Buy Signals: %d\nTotal Sell Signals: %d\n",
		totals.BuyCount, totals.SellCount))
	return b.String()
}
