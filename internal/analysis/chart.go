package analysis

import (
	"context"
	"fmt"
	"path/filepath"

	ioutils "github.com/handiism/spirotunes/internal/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ChartOptions controls the size and binning of the stats chart.
type ChartOptions struct {
	// Bins is the number of duration histogram bins.
	Bins int

	// Width and Height are the image size in pixels.
	Width  int
	Height int
}

// DefaultChartOptions returns a square 800px chart with 20 bins.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Bins: 20, Width: 800, Height: 800}
}

// RenderChart draws a rating-vs-duration scatter plot above a duration
// histogram and saves it as a PNG at path.
//
// The scatter x axis spans [0, 1.05*longest] minutes and the y axis
// [-1, 110], which fits the 0-100 rating scale with some margin.
func RenderChart(ctx context.Context, points []StatPoint, path string, opts ChartOptions) error {
	if len(points) == 0 {
		return ErrNoStats
	}
	def := DefaultChartOptions()
	if opts.Bins <= 0 {
		opts.Bins = def.Bins
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}

	xys := make(plotter.XYs, len(points))
	durations := make(plotter.Values, len(points))
	maxMinutes := 0.0
	for i, p := range points {
		xys[i].X = p.Minutes
		xys[i].Y = float64(p.Rating)
		durations[i] = p.Minutes
		maxMinutes = max(maxMinutes, p.Minutes)
	}
	if maxMinutes <= 0 {
		maxMinutes = 1
	}

	scatterPlot := plot.New()
	scatterPlot.X.Label.Text = "Track duration"
	scatterPlot.Y.Label.Text = "Track rating"
	scatterPlot.X.Min, scatterPlot.X.Max = 0, 1.05*maxMinutes
	scatterPlot.Y.Min, scatterPlot.Y.Max = -1, 110

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("scatter plot: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatterPlot.Add(scatter)

	histPlot := plot.New()
	histPlot.X.Label.Text = "Track duration"
	histPlot.Y.Label.Text = "Count"

	hist, err := plotter.NewHist(durations, opts.Bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	histPlot.Add(hist)

	// vgimg measures in points; convert so the PNG has the requested pixels.
	w := vg.Length(opts.Width) * vg.Inch / vgimg.DefaultDPI
	h := vg.Length(opts.Height) * vg.Inch / vgimg.DefaultDPI
	img := vgimg.New(w, h)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(16),
	}
	canvases := plot.Align([][]*plot.Plot{{scatterPlot}, {histPlot}}, tiles, dc)
	scatterPlot.Draw(canvases[0][0])
	histPlot.Draw(canvases[1][0])

	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	if err := ioutils.NewImageService().SavePNG(ctx, img.Image(), path); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
