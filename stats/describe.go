package stats

import (
	"math"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of one numeric column.
type Summary struct {
	Mean     float64
	Median   float64
	Skewness float64
}

// Describe computes the mean, median and skewness of values.
// Empty input is not guarded and yields NaN.
func Describe(values []float64) Summary {
	return Summary{
		Mean:     stat.Mean(values, nil),
		Median:   Median(values),
		Skewness: Skewness(values),
	}
}

// Median returns the middle value of values, or the average of the two
// middle values for even lengths.
func Median(values []float64) float64 {
	return series.Floats(values).Median()
}

// Skewness returns the third standardized moment m3 / m2^(3/2), using
// population central moments (no small-sample correction).
func Skewness(values []float64) float64 {
	m2 := stat.Moment(2, values, nil)
	m3 := stat.Moment(3, values, nil)
	return m3 / math.Pow(m2, 1.5)
}
