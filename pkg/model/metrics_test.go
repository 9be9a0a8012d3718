package model

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	if got := Accuracy([]int{0, 1, 1, 0}, []int{0, 1, 0, 0}); got != 0.75 {
		t.Fatalf("accuracy = %v, want 0.75", got)
	}
	if got := Accuracy(nil, nil); got != 0 {
		t.Fatalf("empty accuracy = %v, want 0", got)
	}
}

func TestBinaryPredFromProba(t *testing.T) {
	got := BinaryPredFromProba(mat.NewVecDense(4, []float64{0.1, 0.5, 0.49, 0.9}), 0.5)
	want := []int{0, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	// tp=2 fp=1 fn=1
	prec, rec, f1 := PrecisionRecallF1([]int{1, 1, 1, 0, 0}, []int{1, 1, 0, 1, 0})
	if math.Abs(prec-2.0/3) > 1e-12 || math.Abs(rec-2.0/3) > 1e-12 || math.Abs(f1-2.0/3) > 1e-12 {
		t.Fatalf("prec=%v rec=%v f1=%v, want 2/3 each", prec, rec, f1)
	}
	prec, rec, f1 = PrecisionRecallF1([]int{0, 0}, []int{0, 0})
	if prec != 0 || rec != 0 || f1 != 0 {
		t.Fatalf("no positives: prec=%v rec=%v f1=%v, want zeros", prec, rec, f1)
	}
}

func TestConfusionMatrix(t *testing.T) {
	cm := ConfusionMatrix([]int{0, 0, 1, 2, 2, 5}, []int{0, 1, 1, 2, 0, 0}, 3)
	want := [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{1, 0, 1},
	}
	for i := range want {
		for j := range want[i] {
			if cm[i][j] != want[i][j] {
				t.Fatalf("cm = %v, want %v", cm, want)
			}
		}
	}
}
