package model

import "math"

// IndicatorSeries is an indicator's values index-aligned to the filtered
// (trading-day-only) price sequence it was computed from. NaN marks an
// absent value: warm-up entries and degenerate ratios. "Not yet computed"
// is never represented as zero.
type IndicatorSeries []float64

// Latest returns the most recent defined value.
func (s IndicatorSeries) Latest() (float64, bool) {
	return s.Back(0)
}

// Back returns the k-th most recent defined value; Back(0) is the latest,
// Back(1) the one before it. Absent entries are skipped, so positions
// count across defined values only.
func (s IndicatorSeries) Back(k int) (float64, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if math.IsNaN(s[i]) {
			continue
		}
		if k == 0 {
			return s[i], true
		}
		k--
	}
	return 0, false
}

// DefinedCount returns the number of defined values in the series.
func (s IndicatorSeries) DefinedCount() int {
	n := 0
	for _, v := range s {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// MinMaxLast returns the minimum and maximum of the last n defined values.
// ok is false when fewer than n values are defined.
func (s IndicatorSeries) MinMaxLast(n int) (min, max float64, ok bool) {
	if n <= 0 {
		return 0, 0, false
	}
	seen := 0
	min = math.Inf(1)
	max = math.Inf(-1)
	for i := len(s) - 1; i >= 0 && seen < n; i-- {
		if math.IsNaN(s[i]) {
			continue
		}
		if s[i] < min {
			min = s[i]
		}
		if s[i] > max {
			max = s[i]
		}
		seen++
	}
	if seen < n {
		return 0, 0, false
	}
	return min, max, true
}
