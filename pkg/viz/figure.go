package viz

import (
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Points are samples projected on two features, with their class codes.
type Points struct {
	XYs    plotter.XYs
	Labels []int
}

// NewPoints projects rows of X onto feature columns fx and fy.
func NewPoints(X [][]float64, labels []int, fx, fy int) Points {
	pts := Points{XYs: make(plotter.XYs, len(X)), Labels: labels}
	for i, row := range X {
		pts.XYs[i].X = row[fx]
		pts.XYs[i].Y = row[fy]
	}
	return pts
}

// Figure renders the three decision-boundary panels side by side:
// the raw train/test points, the probability surface, and the surface rounded to classes.
type Figure struct {
	Train, Test    Points
	Surface        *Surface
	XLabel, YLabel string
	Width, Height  vg.Length
}

var classColors = []color.NRGBA{
	{R: 255, G: 255, A: 255}, // yellow
	{G: 255, B: 255, A: 255}, // cyan
	{R: 255, B: 255, A: 255}, // magenta
	{R: 80, G: 200, B: 80, A: 255},
}

func classColor(label int, alpha uint8) color.Color {
	c := classColors[((label%len(classColors))+len(classColors))%len(classColors)]
	c.A = alpha
	return c
}

func (f *Figure) scatter(pts Points, alpha uint8, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: classColor(pts.Labels[i], alpha), Radius: vg.Points(3), Shape: shape}
	}
	return s, nil
}

// addPoints overlays train and (if any) test points on p.
func (f *Figure) addPoints(p *plot.Plot, testAlpha uint8, legend bool) error {
	train, err := f.scatter(f.Train, 255, draw.CircleGlyph{})
	if err != nil {
		return errors.Wrap(err, "train scatter")
	}
	p.Add(train)
	if legend {
		p.Legend.Add("Training", train)
	}
	if len(f.Test.XYs) == 0 {
		return nil
	}
	test, err := f.scatter(f.Test, testAlpha, draw.RingGlyph{})
	if err != nil {
		return errors.Wrap(err, "test scatter")
	}
	p.Add(test)
	if legend {
		p.Legend.Add("Testing", test)
	}
	return nil
}

func (f *Figure) panel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	return p
}

func (f *Figure) heat(s *Surface) *plotter.HeatMap {
	h := plotter.NewHeatMap(s, palette.Heat(12, 0.65))
	h.Min, h.Max = 0, 1
	return h
}

func (f *Figure) plots() ([]*plot.Plot, error) {
	if f.Surface == nil {
		return nil, errors.New("figure: no surface")
	}

	points := f.panel("Training and Testing Data Points")
	points.Legend.Top = true
	if err := f.addPoints(points, 153, true); err != nil {
		return nil, err
	}

	proba := f.panel("Decision Boundary")
	proba.Add(f.heat(f.Surface))
	if err := f.addPoints(proba, 26, false); err != nil {
		return nil, err
	}

	rounded := f.panel("Rounded Decision Boundary")
	rounded.Add(f.heat(f.Surface.Rounded()))
	if err := f.addPoints(rounded, 26, false); err != nil {
		return nil, err
	}
	return []*plot.Plot{points, proba, rounded}, nil
}

// WriteTo renders the figure as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	row, err := f.plots()
	if err != nil {
		return 0, err
	}
	width, height := f.Width, f.Height
	if width == 0 || height == 0 {
		width, height = 18*vg.Inch, 6*vg.Inch
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	plots := [][]*plot.Plot{row}
	canvases := plot.Align(plots, t, dc)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

// Save writes the figure to path as PNG.
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save figure")
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "render figure %s", path)
	}
	return out.Close()
}
