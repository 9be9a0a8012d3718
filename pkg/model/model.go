package model

import "gonum.org/v1/gonum/mat"

// Classifier predicts integer class labels for the rows of X.
type Classifier interface {
	Predict(X mat.Matrix) ([]int, error)
}

// BinaryClassifier optionally exposes probabilities.
type BinaryClassifier interface {
	Classifier
	Fit(X mat.Matrix, y mat.Vector) error
	PredictProba(X mat.Matrix) (*mat.VecDense, error) // returns p(y=1)
}

// MultiClassifier is trained on integer labels in [0, K).
type MultiClassifier interface {
	Classifier
	Fit(X mat.Matrix, labels []int) error
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}

var (
	_ BinaryClassifier = (*LogisticRegression)(nil)
	_ MultiClassifier  = (*OneVsRest)(nil)
)
