package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/aymanerihane/Machine-Learning/pkg/core"
	"github.com/aymanerihane/Machine-Learning/pkg/dataprep"
)

// OneVsRest fits one binary LogisticRegression per class (class k vs the rest)
// and predicts the class whose model is most confident.
type OneVsRest struct {
	Classes int
	Config  TrainConfig
	Models  []*LogisticRegression
}

func NewOneVsRest(classes int, cfg TrainConfig) *OneVsRest {
	return &OneVsRest{Classes: classes, Config: cfg}
}

// Fit trains Classes binary models on X (bias column included) and integer labels in [0, Classes).
func (o *OneVsRest) Fit(X mat.Matrix, labels []int) error {
	if o.Classes < 2 {
		return errors.Wrapf(core.ErrConfig, "one-vs-rest needs at least 2 classes, got %d", o.Classes)
	}
	r, _ := X.Dims()
	if len(labels) != r {
		return &core.ShapeError{Op: "one-vs-rest fit", What: "label count", Want: r, Got: len(labels)}
	}
	for i, l := range labels {
		if l < 0 || l >= o.Classes {
			return errors.Errorf("one-vs-rest fit: label %d at row %d out of range [0,%d)", l, i, o.Classes)
		}
	}

	models := make([]*LogisticRegression, o.Classes)
	for k := range o.Classes {
		cfg := o.Config
		if cfg.Logger != nil {
			cfg.Logger = cfg.Logger.With("class", k)
		}
		y, err := core.Vector(dataprep.Binarize(labels, k))
		if err != nil {
			return err
		}
		m := NewLogisticRegression(cfg)
		if err := m.Fit(X, y); err != nil {
			return errors.Wrapf(err, "class %d", k)
		}
		models[k] = m
	}
	o.Models = models
	return nil
}

// PredictProba returns an N×K matrix of per-class probabilities.
// Rows are not normalized; each column comes from an independent binary model.
func (o *OneVsRest) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if len(o.Models) == 0 {
		return nil, errors.Wrap(core.ErrNotFitted, "one-vs-rest predict proba")
	}
	r, _ := X.Dims()
	if r == 0 {
		return nil, errors.Wrap(core.ErrEmpty, "one-vs-rest predict proba")
	}
	out := mat.NewDense(r, len(o.Models), nil)
	for k, m := range o.Models {
		p, err := m.PredictProba(X)
		if err != nil {
			return nil, errors.Wrapf(err, "class %d", k)
		}
		out.SetCol(k, p.RawVector().Data)
	}
	return out, nil
}

// Predict returns the argmax class for every row of X.
func (o *OneVsRest) Predict(X mat.Matrix) ([]int, error) {
	proba, err := o.PredictProba(X)
	if err != nil {
		return nil, err
	}
	r, _ := proba.Dims()
	out := make([]int, r)
	for i := range r {
		out[i] = floats.MaxIdx(proba.RawRowView(i))
	}
	return out, nil
}

// Weights returns the weight vector of every per-class model.
func (o *OneVsRest) Weights() []*mat.VecDense {
	out := make([]*mat.VecDense, len(o.Models))
	for k, m := range o.Models {
		out[k] = m.W
	}
	return out
}
