package report

import (
	"math"
	"strconv"
)

// FormatAverage renders an average with exactly two decimals. NaN, the
// average of a student without grades, is written as "nan".
func FormatAverage(avg float64) string {
	if math.IsNaN(avg) {
		return "nan"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64)
}

// FormatScore renders a highest score as a plain integer
func FormatScore(score int) string {
	return strconv.Itoa(score)
}
