package viz

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/aymanerihane/Machine-Learning/pkg/model"
)

// Surface holds model probabilities sampled on a rectangular grid over two features.
// It implements plotter.GridXYZ.
type Surface struct {
	xs, ys []float64
	z      []float64 // row-major, len(ys) rows of len(xs)
}

// NewSurface evaluates Sigmoid(w0 + w1·x + w2·y) on a grid with spacing step
// over [xmin,xmax) × [ymin,ymax). w must hold exactly three weights.
func NewSurface(w mat.Vector, xmin, xmax, ymin, ymax, step float64) (*Surface, error) {
	if !(step > 0) || !(xmax > xmin) || !(ymax > ymin) {
		return nil, errors.Errorf("surface: invalid grid x=[%v,%v) y=[%v,%v) step=%v", xmin, xmax, ymin, ymax, step)
	}
	xs := arange(xmin, xmax, step)
	ys := arange(ymin, ymax, step)

	grid := mat.NewDense(len(xs)*len(ys), 3, nil)
	for r, y := range ys {
		for c, x := range xs {
			i := r*len(xs) + c
			grid.Set(i, 0, 1)
			grid.Set(i, 1, x)
			grid.Set(i, 2, y)
		}
	}
	p, err := model.Predict(grid, w)
	if err != nil {
		return nil, errors.Wrap(err, "surface")
	}
	return &Surface{xs: xs, ys: ys, z: p.RawVector().Data}, nil
}

func (s *Surface) Dims() (c, r int) { return len(s.xs), len(s.ys) }
func (s *Surface) Z(c, r int) float64 { return s.z[r*len(s.xs)+c] }
func (s *Surface) X(c int) float64    { return s.xs[c] }
func (s *Surface) Y(r int) float64    { return s.ys[r] }

// Rounded returns a copy with every probability rounded to 0 or 1.
func (s *Surface) Rounded() *Surface {
	z := make([]float64, len(s.z))
	for i, v := range s.z {
		z[i] = math.Round(v)
	}
	return &Surface{xs: s.xs, ys: s.ys, z: z}
}

// arange mirrors numpy.arange: start, start+step, ... while < stop.
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
