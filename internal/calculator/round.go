package calculator

import "math"

// round2 rounds to two decimal places using round-half-to-even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// round4 rounds to four decimal places using round-half-to-even.
func round4(v float64) float64 {
	return math.RoundToEven(v*10000) / 10000
}
