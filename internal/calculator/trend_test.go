package calculator

import (
	"testing"

	"StockAdvisor/internal/model"
)

func TestGapTrend(t *testing.T) {
	tests := []struct {
		name  string
		ema9  model.IndicatorSeries
		ema26 model.IndicatorSeries
		want  string
	}{
		{
			"shortening",
			model.IndicatorSeries{10, 10, 10, 10, 10},
			model.IndicatorSeries{14, 13, 12, 12, 11},
			GapShortening,
		},
		{
			"widening",
			model.IndicatorSeries{10, 10, 10, 10, 10},
			model.IndicatorSeries{11, 12, 12, 13, 14},
			GapWidening,
		},
		{
			"unchanged",
			model.IndicatorSeries{10, 10, 10, 10, 10},
			model.IndicatorSeries{12, 11, 13, 11, 12},
			GapNA,
		},
		{
			"too short",
			model.IndicatorSeries{10, 10, 10, 10},
			model.IndicatorSeries{12, 12, 12, 12},
			GapNA,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GapTrend(tt.ema9, tt.ema26); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCrossState(t *testing.T) {
	above := CrossState(model.IndicatorSeries{5, 9}, model.IndicatorSeries{5, 8})
	if above != "Above" {
		t.Errorf("got %q, want Above", above)
	}
	below := CrossState(model.IndicatorSeries{5, 8}, model.IndicatorSeries{5, 8})
	if below != "Below" {
		t.Errorf("got %q, want Below (equality is not Above)", below)
	}
	if na := CrossState(nil, model.IndicatorSeries{5}); na != GapNA {
		t.Errorf("got %q, want %q when a latest value is absent", na, GapNA)
	}
}
