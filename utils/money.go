package utils

import "math"

// Round2 rounds an amount to 2 decimal places, the precision all charges
// are stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
