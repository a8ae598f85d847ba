// Package stats provides the descriptive statistics used by the wage analysis.
//
// # Descriptive Statistics
//
//	s := stats.Describe(values)
//	fmt.Printf("mean=%.2f median=%.2f skew=%.2f\n", s.Mean, s.Median, s.Skewness)
//
// Skewness is the population third standardized moment, m3 / m2^(3/2).
//
// # Linear Fit
//
// Fit an ordinary least squares line against the position of each value:
//
//	line, err := stats.FitIndex(means)
//	// line.Slope, line.Intercept, line.At(x)
//
// # Kernel Density
//
// Gaussian kernel density with Scott's bandwidth scaled by an adjustment
// factor:
//
//	d := stats.KernelDensity(values, 0.5, 200)
//	// d.Xs, d.Ys, d.Bandwidth
//
// # Quantile Band
//
//	band := stats.QuantileBand(values, 0.05, 0.95)
package stats
