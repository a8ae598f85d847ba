package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// densityCut is how many bandwidths the evaluation grid extends past the data.
const densityCut = 3

// Density is a kernel density estimate evaluated on an evenly spaced grid.
type Density struct {
	Xs        []float64
	Ys        []float64
	Bandwidth float64
}

// ScottBandwidth returns Scott's rule of thumb, std * n^(-1/5).
func ScottBandwidth(values []float64) float64 {
	n := float64(len(values))
	return stat.StdDev(values, nil) * math.Pow(n, -0.2)
}

// KernelDensity estimates the density of values with a Gaussian kernel.
// The bandwidth is Scott's rule scaled by adjust; the result is sampled
// at points positions from min-3*bw to max+3*bw.
func KernelDensity(values []float64, adjust float64, points int) *Density {
	if len(values) < 2 || points < 2 {
		return &Density{}
	}

	bw := adjust * ScottBandwidth(values)
	if bw <= 0 || math.IsNaN(bw) {
		return &Density{}
	}

	kde := &mstats.KDE{
		Sample:    mstats.Sample{Xs: values},
		Kernel:    mstats.GaussianKernel,
		Bandwidth: bw,
	}

	lo := floats.Min(values) - densityCut*bw
	hi := floats.Max(values) + densityCut*bw
	xs := floats.Span(make([]float64, points), lo, hi)

	ys := make([]float64, points)
	for i, x := range xs {
		ys[i] = kde.PDF(x)
	}

	return &Density{Xs: xs, Ys: ys, Bandwidth: bw}
}

// Area integrates the density curve with the trapezoidal rule.
func (d *Density) Area() float64 {
	area := 0.0
	for i := 1; i < len(d.Xs); i++ {
		area += (d.Xs[i] - d.Xs[i-1]) * (d.Ys[i] + d.Ys[i-1]) / 2
	}
	return area
}
