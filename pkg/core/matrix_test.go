package core

import (
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestFromSliceCopies(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := FromSlice(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0][0] = 100
	if r, c := m.Dims(); r != 3 || c != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", r, c)
	}
	if m.At(0, 0) != 1 || m.At(2, 1) != 6 {
		t.Fatalf("unexpected contents %v", mat.Formatted(m))
	}
}

func TestFromSliceErrors(t *testing.T) {
	if _, err := FromSlice(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("nil slice: err = %v, want ErrEmpty", err)
	}
	_, err := FromSlice([][]float64{{1, 2}, {3}})
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("ragged slice: err = %v, want *ShapeError", err)
	}
	if se.Want != 2 || se.Got != 1 {
		t.Fatalf("shape error = %+v", se)
	}
}

func TestWithBiasPrependsOnes(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{3, 4, 5, 6})
	B := WithBias(X)
	want := mat.NewDense(2, 3, []float64{1, 3, 4, 1, 5, 6})
	if !mat.Equal(B, want) {
		t.Fatalf("WithBias =\n%v\nwant\n%v", mat.Formatted(B), mat.Formatted(want))
	}
}

func TestColumnsSelectsInOrder(t *testing.T) {
	X := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	C, err := Columns(X, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(C, mat.NewDense(2, 2, []float64{3, 1, 6, 4})) {
		t.Fatalf("Columns = %v", mat.Formatted(C))
	}
	if _, err := Columns(X, 3); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestRowsRoundTrip(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := FromSlice(src)
	if err != nil {
		t.Fatal(err)
	}
	got := Rows(m)
	for i := range src {
		for j := range src[i] {
			if got[i][j] != src[i][j] {
				t.Fatalf("Rows[%d][%d] = %v, want %v", i, j, got[i][j], src[i][j])
			}
		}
	}
}

func TestCheckFeatures(t *testing.T) {
	X := mat.NewDense(2, 3, nil)
	if err := CheckFeatures("op", X, mat.NewVecDense(3, nil)); err != nil {
		t.Fatalf("matching shapes: %v", err)
	}
	err := CheckFeatures("op", X, mat.NewVecDense(2, nil))
	var se *ShapeError
	if !errors.As(err, &se) || se.What != "feature count" || se.Want != 2 || se.Got != 3 {
		t.Fatalf("mismatch: err = %v", err)
	}
	if err := CheckFeatures("op", X, &mat.VecDense{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty weights: err = %v", err)
	}
}

func TestCheckLabelsAndPair(t *testing.T) {
	X := mat.NewDense(3, 2, nil)
	if err := CheckLabels("op", X, mat.NewVecDense(3, nil)); err != nil {
		t.Fatal(err)
	}
	var se *ShapeError
	if err := CheckLabels("op", X, mat.NewVecDense(2, nil)); !errors.As(err, &se) || se.What != "label count" {
		t.Fatalf("label mismatch: err = %v", err)
	}
	if err := CheckPair("op", mat.NewVecDense(2, nil), mat.NewVecDense(3, nil)); !errors.As(err, &se) {
		t.Fatalf("pair mismatch: err = %v", err)
	}
	if err := CheckPair("op", &mat.VecDense{}, &mat.VecDense{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty pair: err = %v", err)
	}
}

func TestVectorCopies(t *testing.T) {
	src := []float64{1, 2}
	v, err := Vector(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 9
	if v.AtVec(0) != 1 {
		t.Fatal("Vector shares memory with its input")
	}
	if _, err := Vector(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty: err = %v", err)
	}
}
