package helpers

import "math"

// Round2 rounds a value to 2 decimal places. GPAs and evaluation averages are
// reported at this precision.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
