package NeuralNetwork

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid saturates to 0 or 1 for large |x| instead of overflowing.
func Sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

func SigmoidPrime(x float64) float64 { s := Sigmoid(x); return s * (1 - s) }

// SigmoidVec applies Sigmoid to every element of v in place.
func SigmoidVec(v *mat.VecDense) {
	for i := 0; i < v.Len(); i++ {
		v.SetVec(i, Sigmoid(v.AtVec(i)))
	}
}
