package calculator

import "math"

// Ema computes the recursive (non-adjusted) exponential moving average of
// xs with the given span: alpha = 2/(span+1), y[0] = x[0],
// y[t] = alpha*x[t] + (1-alpha)*y[t-1].
//
// The seed is the first raw value, not a backward-looking weighted average
// of the prefix; every indicator built on top inherits this seeding.
// NaN entries produce NaN output and leave the smoothing state untouched,
// so the recurrence resumes from the last defined value. Returns nil for
// empty input.
func Ema(xs []float64, span int) []float64 {
	if len(xs) == 0 {
		return nil
	}
	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(xs))
	prev := 0.0
	seeded := false
	for t, x := range xs {
		if math.IsNaN(x) {
			out[t] = math.NaN()
			continue
		}
		if !seeded {
			prev = x
			seeded = true
		} else {
			prev = alpha*x + (1-alpha)*prev
		}
		out[t] = prev
	}
	return out
}
