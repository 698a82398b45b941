package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/stats"
)

// Size is a figure size in inches.
type Size struct {
	Width  float64
	Height float64
}

// DefaultSize matches plt.subplots(1, figsize=(20, 8)).
var DefaultSize = Size{Width: 20, Height: 8}

// kdePoints is the number of grid points of the density curve.
const kdePoints = 200

var (
	barColor  = color.RGBA{R: 31, G: 119, B: 180, A: 140}
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// contentTypes lists the supported output formats.
var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

// ContentType returns the MIME type for an output format.
func ContentType(format string) (string, bool) {
	ct, ok := contentTypes[format]
	return ct, ok
}

// Render draws the chart selected by spec and writes it to w in the given
// format (png, svg or pdf).
func Render(t *dataset.Table, spec Spec, w io.Writer, format string, size Size) error {
	if _, ok := contentTypes[format]; !ok {
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err := spec.Validate(t); err != nil {
		return err
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}

	p, err := build(t, spec)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

func build(t *dataset.Table, spec Spec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title()
	p.X.Label.Text = spec.X

	// plt.xticks(rotation='vertical')
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	x, _ := t.Column(spec.X)

	var err error
	switch spec.Kind {
	case Correlation:
		y, _ := t.Column(spec.Y)
		p.Y.Label.Text = spec.Y
		err = addScatter(p, x, y)
	default:
		p.Y.Label.Text = "Count"
		err = addHistogram(p, x, spec.call().Has("kde"))
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// addHistogram draws counts per bin for numeric columns and counts per value
// for the rest, with an optional density curve scaled to the counts.
func addHistogram(p *plot.Plot, col *dataset.Column, kde bool) error {
	if !col.Kind().IsNumeric() {
		return addCountBars(p, col)
	}

	values := col.Floats()
	if len(values) == 0 {
		return ErrNoData
	}
	if lo, hi := floats.Min(values), floats.Max(values); math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: autodetected range of [%s, %s] is not finite",
			ErrNoData, dataset.FormatFloat(lo), dataset.FormatFloat(hi))
	}

	h, err := plotter.NewHist(plotter.Values(values), stats.HistogramBins(values))
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = barColor
	p.Add(h)

	if !kde {
		return nil
	}
	xs, ys := stats.KDE(values, kdePoints)
	if xs == nil {
		return nil
	}
	scale := float64(len(values)) * h.Width
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i] * scale
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("density: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = lineColor
	p.Add(line)
	return nil
}

func addCountBars(p *plot.Plot, col *dataset.Column) error {
	counts := stats.ValueCounts(toValues(col), true)
	if len(counts) == 0 {
		return ErrNoData
	}

	heights := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		heights[i] = float64(c.N)
		labels[i] = c.Value.Text
	}

	bars, err := plotter.NewBarChart(heights, vg.Points(20))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(labels...)
	return nil
}

// addScatter plots rows where both cells are present. Non-numeric columns
// are placed at nominal positions in order of first appearance.
func addScatter(p *plot.Plot, x, y *dataset.Column) error {
	xAxis, yAxis := newAxis(x), newAxis(y)

	var pts plotter.XYs
	for i := 0; i < x.Len(); i++ {
		xc, yc := x.Cell(i), y.Cell(i)
		if xc.Null || yc.Null {
			continue
		}
		pts = append(pts, plotter.XY{X: xAxis.position(xc), Y: yAxis.position(yc)})
	}
	if len(pts) == 0 {
		return ErrNoData
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = lineColor
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	if ticks := xAxis.ticks(); ticks != nil {
		p.X.Tick.Marker = ticks
	}
	if ticks := yAxis.ticks(); ticks != nil {
		p.Y.Tick.Marker = ticks
	}
	return nil
}

// axis maps cells onto plot coordinates.
type axis struct {
	numeric bool
	index   map[string]int
	labels  []string
}

func newAxis(col *dataset.Column) *axis {
	return &axis{numeric: col.Kind().IsNumeric(), index: make(map[string]int)}
}

func (a *axis) position(c dataset.Cell) float64 {
	if a.numeric {
		return c.Num
	}
	i, ok := a.index[c.Text]
	if !ok {
		i = len(a.labels)
		a.index[c.Text] = i
		a.labels = append(a.labels, c.Text)
	}
	return float64(i)
}

func (a *axis) ticks() plot.Ticker {
	if a.numeric {
		return nil
	}
	ticks := make(plot.ConstantTicks, len(a.labels))
	for i, l := range a.labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

func toValues(col *dataset.Column) []stats.Value {
	out := make([]stats.Value, col.Len())
	for i := range out {
		c := col.Cell(i)
		out[i] = stats.Value{Text: c.Text, Null: c.Null}
	}
	return out
}
