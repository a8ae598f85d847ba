package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Band is the spread between a low and a high quantile.
type Band struct {
	Low  float64
	High float64
}

// QuantileBand returns the empirical low and high quantiles of values:
// the smallest sample at or above each fraction of the data.
func QuantileBand(values []float64, low, high float64) Band {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Band{
		Low:  stat.Quantile(low, stat.Empirical, sorted, nil),
		High: stat.Quantile(high, stat.Empirical, sorted, nil),
	}
}
