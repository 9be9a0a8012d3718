package optim

import "gonum.org/v1/gonum/mat"

// Stochastic Gradient Descent optimizer with learning rate
type SGD struct{ LearningRate float64 }

func NewSGD(lr float64) *SGD { return &SGD{LearningRate: lr} }

// Step applies weights ← weights − lr·grads in place.
func (o *SGD) Step(weights *mat.VecDense, grads mat.Vector) {
	weights.AddScaledVec(weights, -o.LearningRate, grads)
}
