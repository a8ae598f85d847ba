package plots

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sartorproj/gowages/stats"
)

const (
	DensityFile     = "wages_density.png"
	Bins            = 20  // Histogram bins per panel
	BandwidthAdjust = 0.5 // Multiplier on Scott's bandwidth
	densityPoints   = 200
)

var (
	histFill    = color.NRGBA{B: 255, A: 51}
	densityLine = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
)

// WageDensity writes a two-panel figure to path: log wages on the left,
// exponentiated wages on the right.
func WageDensity(logWages, wages []float64, path string) error {
	left, err := densityPanel("Weekly Wage (log)", logWages)
	if err != nil {
		return err
	}
	right, err := densityPanel("Weekly wage (exponential)", wages)
	if err != nil {
		return err
	}

	return saveRow([]*plot.Plot{left, right}, 12*vg.Inch, 6*vg.Inch, path)
}

// densityPanel builds one histogram panel with a kernel density overlay.
func densityPanel(title string, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = ""
	p.Add(plotter.NewGrid())

	h, err := plotter.NewHist(plotter.Values(values), Bins)
	if err != nil {
		return nil, err
	}
	h.Normalize(1)
	h.FillColor = histFill
	h.LineStyle.Width = 0
	p.Add(h)

	d := stats.KernelDensity(values, BandwidthAdjust, densityPoints)
	if len(d.Xs) > 0 {
		pts := make(plotter.XYs, len(d.Xs))
		for i := range d.Xs {
			pts[i].X = d.Xs[i]
			pts[i].Y = d.Ys[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = densityLine
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}

	return p, nil
}

// saveRow lays the plots out in a single row and writes them as one PNG.
func saveRow(row []*plot.Plot, width, height vg.Length, path string) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	t := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	plots := [][]*plot.Plot{row}
	canvases := plot.Align(plots, t, dc)
	for j, p := range row {
		p.Draw(canvases[0][j])
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
