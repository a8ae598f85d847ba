package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Line is a fitted degree-1 polynomial y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Fit computes the ordinary least squares line through (xs[i], ys[i]).
func Fit(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, errors.New("xs and ys must have the same length")
	}
	if len(xs) < 2 {
		return Line{}, errors.New("at least two points are required for a linear fit")
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Line{Slope: beta, Intercept: alpha}, nil
}

// FitIndex fits ys against their positions 0..n-1.
func FitIndex(ys []float64) (Line, error) {
	return Fit(Index(len(ys)), ys)
}

// Index returns the sequence 0, 1, ..., n-1 as floats.
func Index(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
