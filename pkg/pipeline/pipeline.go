package pipeline

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/aymanerihane/Machine-Learning/pkg/core"
)

// Transformer interface for fit/transform pattern.
type Transformer interface {
	Fit(X *mat.Dense) error
	Transform(X *mat.Dense) (*mat.Dense, error)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits each step on the output of the previous one.
func (p *Pipeline) Fit(X *mat.Dense) error {
	_, err := p.FitTransform(X)
	return err
}

func (p *Pipeline) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	for i, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return nil, errors.Wrapf(err, "pipeline step %d fit", i)
		}
		var err error
		if X, err = step.Transform(X); err != nil {
			return nil, errors.Wrapf(err, "pipeline step %d transform", i)
		}
	}
	return X, nil
}

func (p *Pipeline) Transform(X *mat.Dense) (*mat.Dense, error) {
	for i, step := range p.steps {
		var err error
		if X, err = step.Transform(X); err != nil {
			return nil, errors.Wrapf(err, "pipeline step %d transform", i)
		}
	}
	return X, nil
}

// Bias prepends the constant 1.0 column used as the intercept feature.
type Bias struct{}

func (Bias) Fit(*mat.Dense) error { return nil }

func (Bias) Transform(X *mat.Dense) (*mat.Dense, error) {
	if X == nil || X.IsEmpty() {
		return nil, errors.Wrap(core.ErrEmpty, "bias")
	}
	return core.WithBias(X), nil
}
