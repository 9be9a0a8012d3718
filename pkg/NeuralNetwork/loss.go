package NeuralNetwork

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Epsilon keeps the logarithm arguments of BCE strictly positive.
const Epsilon = 1e-15

// Binary cross-entropy between labels and predicted probabilities.
// Use this loss when predicting probabilities for two classes (binary classification).
// Callers must pass vectors of equal, non-zero length.
func BCE(yTrue, yPred mat.Vector) float64 {
	n := yTrue.Len()
	s := 0.0
	for i := range n {
		p := yPred.AtVec(i)
		y := yTrue.AtVec(i)
		s += y*math.Log(p+Epsilon) + (1-y)*math.Log(1-p+Epsilon)
	}
	return -s / float64(n)
}
