package core

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FromSlice copies a nested slice into a dense row-major matrix.
// Every row must have the same length as the first one.
func FromSlice(a [][]float64) (*mat.Dense, error) {
	r := len(a)
	if r == 0 {
		return nil, errors.Wrap(ErrEmpty, "from slice")
	}
	c := len(a[0])
	if c == 0 {
		return nil, errors.Wrap(ErrEmpty, "from slice: zero columns")
	}

	data := make([]float64, 0, r*c)
	for i, row := range a {
		if len(row) != c {
			return nil, &ShapeError{Op: "from slice", What: "row " + itoa(i) + " length", Want: c, Got: len(row)}
		}
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data), nil
}

// Vector copies y into a dense column vector.
func Vector(y []float64) (*mat.VecDense, error) {
	if len(y) == 0 {
		return nil, errors.Wrap(ErrEmpty, "vector")
	}
	v := make([]float64, len(y))
	copy(v, y)
	return mat.NewVecDense(len(v), v), nil
}

// WithBias returns a copy of X with a column of ones prepended.
func WithBias(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, 1)
		for j := 0; j < c; j++ {
			out.Set(i, j+1, X.At(i, j))
		}
	}
	return out
}

// Columns returns a copy of X restricted to the given column indices, in order.
func Columns(X mat.Matrix, cols ...int) (*mat.Dense, error) {
	r, c := X.Dims()
	if len(cols) == 0 {
		return nil, errors.Wrap(ErrEmpty, "columns")
	}
	out := mat.NewDense(r, len(cols), nil)
	for k, j := range cols {
		if j < 0 || j >= c {
			return nil, errors.Errorf("columns: index %d out of range [0,%d)", j, c)
		}
		for i := 0; i < r; i++ {
			out.Set(i, k, X.At(i, j))
		}
	}
	return out, nil
}

// Rows copies X back into a nested slice, one entry per row.
func Rows(X mat.Matrix) [][]float64 {
	r, c := X.Dims()
	out := make([][]float64, r)
	for i := range r {
		out[i] = mat.Row(make([]float64, c), i, X)
	}
	return out
}

// CheckFeatures ensures X is non-empty and has one column per weight.
func CheckFeatures(op string, X mat.Matrix, w mat.Vector) error {
	if X == nil || w == nil {
		return errors.Wrap(ErrEmpty, op)
	}
	r, c := X.Dims()
	if r == 0 || c == 0 || w.Len() == 0 {
		return errors.Wrap(ErrEmpty, op)
	}
	if c != w.Len() {
		return &ShapeError{Op: op, What: "feature count", Want: w.Len(), Got: c}
	}
	return nil
}

// CheckLabels ensures X has one row per label.
func CheckLabels(op string, X mat.Matrix, y mat.Vector) error {
	if X == nil || y == nil {
		return errors.Wrap(ErrEmpty, op)
	}
	r, _ := X.Dims()
	if r == 0 || y.Len() == 0 {
		return errors.Wrap(ErrEmpty, op)
	}
	if r != y.Len() {
		return &ShapeError{Op: op, What: "label count", Want: r, Got: y.Len()}
	}
	return nil
}

// CheckPair ensures two vectors are non-empty and matched by index.
func CheckPair(op string, a, b mat.Vector) error {
	if a == nil || b == nil || a.Len() == 0 || b.Len() == 0 {
		return errors.Wrap(ErrEmpty, op)
	}
	if a.Len() != b.Len() {
		return &ShapeError{Op: op, What: "vector length", Want: a.Len(), Got: b.Len()}
	}
	return nil
}
