package stats

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		1, 10,
		3, 10,
	})
	s := NewStandardScaler()
	out, err := s.FitTransform(X)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean[0] != 2 || s.Mean[1] != 10 || s.Std[0] != 1 || s.Std[1] != 1 {
		t.Fatalf("mean=%v std=%v", s.Mean, s.Std)
	}
	want := mat.NewDense(2, 2, []float64{
		-1, 0,
		1, 0,
	})
	if !mat.EqualApprox(out, want, 1e-12) {
		t.Fatalf("got %v, want %v", mat.Formatted(out), mat.Formatted(want))
	}
	// Transform reuses the fitted statistics.
	test, err := s.Transform(mat.NewDense(1, 2, []float64{4, 12}))
	if err != nil {
		t.Fatal(err)
	}
	if test.At(0, 0) != 2 || test.At(0, 1) != 2 {
		t.Fatalf("test row = %v", mat.Formatted(test))
	}
}

func TestStandardScalerErrors(t *testing.T) {
	s := NewStandardScaler()
	if _, err := s.Transform(mat.NewDense(1, 1, nil)); err == nil {
		t.Error("unfitted: expected error")
	}
	if err := s.Fit(&mat.Dense{}); err == nil {
		t.Error("empty: expected error")
	}
	if err := s.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Transform(mat.NewDense(1, 3, nil)); err == nil {
		t.Error("column mismatch: expected error")
	}
}
