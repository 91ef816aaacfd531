package calculator

import (
	"math"
	"testing"

	"StockAdvisor/internal/model"
)

func TestEmaBearishCross(t *testing.T) {
	tests := []struct {
		name  string
		ema9  model.IndicatorSeries
		ema26 model.IndicatorSeries
		want  bool
	}{
		{"cross down", model.IndicatorSeries{10, 9}, model.IndicatorSeries{8, 9}, true},
		{"cross up", model.IndicatorSeries{9, 10}, model.IndicatorSeries{9, 8}, false},
		{"stays above", model.IndicatorSeries{10, 10}, model.IndicatorSeries{8, 8}, false},
		{"stays below", model.IndicatorSeries{8, 8}, model.IndicatorSeries{10, 10}, false},
		{"touch counts as cross", model.IndicatorSeries{10, 9}, model.IndicatorSeries{9, 9}, true},
		{"too short", model.IndicatorSeries{10}, model.IndicatorSeries{8, 9}, false},
		{"empty", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmaBearishCross(tt.ema9, tt.ema26); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmaBearishCross_SkipsAbsentEntries(t *testing.T) {
	ema9 := model.IndicatorSeries{10, math.NaN(), 9}
	ema26 := model.IndicatorSeries{8, math.NaN(), 9}
	if !EmaBearishCross(ema9, ema26) {
		t.Error("expected cross using the two most recent defined observations")
	}
}

func TestTsiBuyCross(t *testing.T) {
	tests := []struct {
		name   string
		tsi    model.IndicatorSeries
		signal model.IndicatorSeries
		want   bool
	}{
		{"cross above", model.IndicatorSeries{-5, -1}, model.IndicatorSeries{-4, -2}, true},
		{"equal then above", model.IndicatorSeries{0, 1}, model.IndicatorSeries{0, 0}, true},
		{"stays below", model.IndicatorSeries{-5, -3}, model.IndicatorSeries{-2, -2}, false},
		{"cross below", model.IndicatorSeries{3, 1}, model.IndicatorSeries{2, 2}, false},
		{"too short", model.IndicatorSeries{1}, model.IndicatorSeries{0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TsiBuyCross(tt.tsi, tt.signal); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTsiSellCross(t *testing.T) {
	tests := []struct {
		name   string
		tsi    model.IndicatorSeries
		signal model.IndicatorSeries
		want   bool
	}{
		{"cross below", model.IndicatorSeries{3, 1}, model.IndicatorSeries{2, 2}, true},
		{"equal then below", model.IndicatorSeries{0, -1}, model.IndicatorSeries{0, 0}, true},
		{"stays above", model.IndicatorSeries{3, 3}, model.IndicatorSeries{2, 2}, false},
		{"cross above", model.IndicatorSeries{-5, -1}, model.IndicatorSeries{-4, -2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TsiSellCross(tt.tsi, tt.signal); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
