package model

import "gonum.org/v1/gonum/mat"

// Accuracy is the fraction of positions where yTrue and yPred agree.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

func BinaryPredFromProba(proba mat.Vector, threshold float64) []int {
	out := make([]int, proba.Len())
	for i := range out {
		if proba.AtVec(i) >= threshold {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
	return out
}

// Classification metrics (binary, labels 0/1)
func PrecisionRecallF1(yTrue []int, yPred []int) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		if yPred[i] == 1 && yTrue[i] == 1 {
			tp++
		}
		if yPred[i] == 1 && yTrue[i] == 0 {
			fp++
		}
		if yPred[i] == 0 && yTrue[i] == 1 {
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}

// ConfusionMatrix counts (true, predicted) pairs; cm[i][j] is rows of class i predicted as j.
// Pairs outside [0, k) are ignored.
func ConfusionMatrix(yTrue, yPred []int, k int) [][]int {
	cm := make([][]int, k)
	for i := range cm {
		cm[i] = make([]int, k)
	}
	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if t < 0 || t >= k || p < 0 || p >= k {
			continue
		}
		cm[t][p]++
	}
	return cm
}
