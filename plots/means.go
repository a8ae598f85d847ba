package plots

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/gowages/dataset"
	"github.com/sartorproj/gowages/stats"
)

const (
	MeansFile           = "educ_means.png"
	MeansRegressionFile = "educ_means_lr.png"
)

var regressionLine = color.NRGBA{R: 255, A: 178}

// MeansFileName returns the output file name for the education-means figure.
func MeansFileName(regression bool) string {
	if regression {
		return MeansRegressionFile
	}
	return MeansFile
}

// EducationMeans plots the group means against their index 0..n-1 and
// writes the figure into dir. With regression set, the least squares line
// over the means is drawn as well and returned.
func EducationMeans(means *dataset.GroupMeans, regression bool, dir string) (*stats.Line, string, error) {
	p := plot.New()
	p.Y.Label.Text = "Log weekly earnings, $"
	p.X.Label.Text = "Years of education"
	p.X.Tick.Marker = levelTicks(means.Levels)
	p.Add(plotter.NewGrid())

	xs := stats.Index(len(means.Means))
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = means.Means[i]
	}

	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, "", err
	}
	l.LineStyle.Color = color.Black
	s.GlyphStyle.Color = color.Black
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(l, s)
	p.Legend.Add("Means", l, s)

	var fit *stats.Line
	if regression {
		line, err := stats.Fit(xs, means.Means)
		if err != nil {
			return nil, "", err
		}
		fit = &line

		fitted := make(plotter.XYs, len(xs))
		for i, x := range xs {
			fitted[i].X = x
			fitted[i].Y = line.At(x)
		}
		rl, err := plotter.NewLine(fitted)
		if err != nil {
			return nil, "", err
		}
		rl.LineStyle.Color = regressionLine
		rl.LineStyle.Width = vg.Points(1.5)
		p.Add(rl)
		p.Legend.Add(fmt.Sprintf("Regression line (Coef - %s)", roundLabel(line.Slope, 3)), rl)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	path := filepath.Join(dir, MeansFileName(regression))
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return nil, "", err
	}
	return fit, path, nil
}

// levelTicks labels each index position with the education level it stands for.
func levelTicks(levels []int) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(levels))
	for i, lvl := range levels {
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(lvl)}
	}
	return plot.ConstantTicks(ticks)
}

// roundLabel rounds v to decimals places and drops trailing zeros.
func roundLabel(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', -1, 64)
}
