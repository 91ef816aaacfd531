package calculator

import (
	"math"
	"testing"
)

func TestTsi_Lengths(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}
	tsi, signal := Tsi(closes, TsiLong, TsiShort, TsiSignalSpan)
	if len(tsi) != len(closes) || len(signal) != len(closes) {
		t.Fatalf("lengths tsi=%d signal=%d, want %d", len(tsi), len(signal), len(closes))
	}
	if !math.IsNaN(tsi[0]) || !math.IsNaN(signal[0]) {
		t.Errorf("entry 0 should be absent, got tsi=%v signal=%v", tsi[0], signal[0])
	}
}

func TestTsi_SteadyRiseIsHundred(t *testing.T) {
	// Constant positive momentum: smoothed momentum equals smoothed
	// absolute momentum, so TSI pins at 100 and so does the signal line.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = float64(i)
	}
	tsi, signal := Tsi(closes, TsiLong, TsiShort, TsiSignalSpan)
	for i := 1; i < len(tsi); i++ {
		if tsi[i] != 100 {
			t.Errorf("tsi[%d] = %v, want 100", i, tsi[i])
		}
		if signal[i] != 100 {
			t.Errorf("signal[%d] = %v, want 100", i, signal[i])
		}
	}
}

func TestTsi_FlatSeriesAbsent(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 75
	}
	tsi, signal := Tsi(closes, TsiLong, TsiShort, TsiSignalSpan)
	for i := range tsi {
		if !math.IsNaN(tsi[i]) || !math.IsNaN(signal[i]) {
			t.Errorf("entry %d should be absent, got tsi=%v signal=%v", i, tsi[i], signal[i])
		}
	}
}

func TestTsi_FallingSeriesNegative(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	tsi, _ := Tsi(closes, TsiLong, TsiShort, TsiSignalSpan)
	latest, ok := tsi.Latest()
	if !ok {
		t.Fatal("expected defined latest TSI")
	}
	if latest != -100 {
		t.Errorf("latest tsi = %v, want -100 for constant negative momentum", latest)
	}
}
