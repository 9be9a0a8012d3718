package stats

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler standardizes each column to zero mean and unit variance.
// Mean and Std are learned by Fit and reused by Transform, so test data is
// scaled with training statistics.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit learns per-column mean and population standard deviation.
// Constant columns get Std 1 so they map to 0 instead of NaN.
func (s *StandardScaler) Fit(X *mat.Dense) error {
	if X == nil || X.IsEmpty() {
		return errors.New("standard scaler: empty input")
	}
	r, c := X.Dims()
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	col := make([]float64, r)
	for j := range c {
		mat.Col(col, j, X)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a scaled copy of X.
func (s *StandardScaler) Transform(X *mat.Dense) (*mat.Dense, error) {
	if !s.fit {
		return nil, errors.New("standard scaler: not fitted")
	}
	r, c := X.Dims()
	if c != len(s.Mean) {
		return nil, errors.Errorf("standard scaler: fitted on %d columns, got %d", len(s.Mean), c)
	}
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Std[j]
	}, X)
	return out, nil
}

func (s *StandardScaler) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
