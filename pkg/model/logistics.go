package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/aymanerihane/Machine-Learning/pkg/NeuralNetwork"
	"github.com/aymanerihane/Machine-Learning/pkg/core"
	"github.com/aymanerihane/Machine-Learning/pkg/optim"
)

// Predict returns Sigmoid(X·w), the probability of class 1 for every row of X.
// The bias is expected as a column of X, so cols(X) must equal len(w).
func Predict(X mat.Matrix, w mat.Vector) (*mat.VecDense, error) {
	if err := core.CheckFeatures("predict", X, w); err != nil {
		return nil, err
	}
	r, _ := X.Dims()
	z := mat.NewVecDense(r, nil)
	z.MulVec(X, w)
	NeuralNetwork.SigmoidVec(z)
	return z, nil
}

// Loss is the mean binary cross-entropy between labels y and predictions yPred.
func Loss(y, yPred mat.Vector) (float64, error) {
	if err := core.CheckPair("loss", y, yPred); err != nil {
		return 0, err
	}
	return NeuralNetwork.BCE(y, yPred), nil
}

// GradientStep performs one batch gradient descent update and returns the new weights.
// w itself is left untouched.
func GradientStep(X mat.Matrix, y, w mat.Vector, lr float64) (*mat.VecDense, error) {
	if err := core.CheckLabels("gradient step", X, y); err != nil {
		return nil, err
	}
	yPred, err := Predict(X, w)
	if err != nil {
		return nil, err
	}
	return descend(X, y, w, yPred, optim.NewSGD(lr)), nil
}

// descend computes g = Xᵀ·(yPred − y)/N and returns w − lr·g.
// Shapes must already be validated.
func descend(X mat.Matrix, y, w, yPred mat.Vector, opt *optim.SGD) *mat.VecDense {
	n, d := X.Dims()

	resid := mat.NewVecDense(n, nil)
	resid.SubVec(yPred, y)

	grad := mat.NewVecDense(d, nil)
	grad.MulVec(X.T(), resid)
	grad.ScaleVec(1/float64(n), grad)

	next := mat.VecDenseCopyOf(w)
	opt.Step(next, grad)
	return next
}

// LogisticRegression (binary) with sigmoid.
// The bias lives in the first column of X, so W[0] is the intercept.
type LogisticRegression struct {
	W      *mat.VecDense
	Config TrainConfig

	history []float64
}

// NewLogisticRegression stores the hyperparameters; weights are created by Fit.
func NewLogisticRegression(cfg TrainConfig) *LogisticRegression {
	return &LogisticRegression{Config: cfg}
}

// Fit trains the model from zero weights with batch gradient descent.
func (m *LogisticRegression) Fit(X mat.Matrix, y mat.Vector) error {
	t, err := NewTrainer(m.Config)
	if err != nil {
		return err
	}
	w, err := t.Train(X, y)
	if err != nil {
		return errors.Wrap(err, "logistic regression fit")
	}
	m.W = w
	m.history = t.History()
	return nil
}

// PredictProba returns the probability scores (between 0 and 1) for each input row in X.
func (m *LogisticRegression) PredictProba(X mat.Matrix) (*mat.VecDense, error) {
	if m.W == nil {
		return nil, errors.Wrap(core.ErrNotFitted, "predict proba")
	}
	return Predict(X, m.W)
}

// Predict returns the class labels (0 or 1) based on a 0.5 probability threshold.
func (m *LogisticRegression) Predict(X mat.Matrix) ([]int, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return BinaryPredFromProba(proba, 0.5), nil
}

// History returns the training loss recorded at every epoch of the last Fit.
func (m *LogisticRegression) History() []float64 { return m.history }

// FinalLoss is the loss evaluated at the last epoch, or NaN if training ran zero epochs.
func (m *LogisticRegression) FinalLoss() float64 { return lastOrNaN(m.history) }
