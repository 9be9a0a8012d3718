package model

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/aymanerihane/Machine-Learning/pkg/core"
	"github.com/aymanerihane/Machine-Learning/pkg/optim"
)

// TrainConfig holds the hyperparameters of a gradient descent run.
type TrainConfig struct {
	LearningRate float64
	Epochs       int
	// LogEvery is the loss reporting cadence in epochs; <= 0 disables reporting.
	LogEvery int
	Logger   *slog.Logger
	// OnEpoch, if set, is called after every epoch with the loss evaluated
	// before that epoch's update.
	OnEpoch func(epoch int, loss float64)
}

// DefaultTrainConfig returns lr=0.01, 1000 epochs and a loss report every 100 epochs.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		LearningRate: 0.01,
		Epochs:       1000,
		LogEvery:     100,
	}
}

// Validate rejects settings that cannot produce a meaningful run.
func (c TrainConfig) Validate() error {
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate <= 0 {
		return errors.Wrapf(core.ErrConfig, "learning rate %v must be positive and finite", c.LearningRate)
	}
	if c.Epochs < 0 {
		return errors.Wrapf(core.ErrConfig, "epochs %d must not be negative", c.Epochs)
	}
	return nil
}

// TrainerState tracks where a Trainer is in its run.
type TrainerState int

const (
	StateInitializing TrainerState = iota
	StateIterating
	StateDone
)

func (s TrainerState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Trainer runs batch gradient descent for exactly Epochs iterations.
// There is no convergence check and no early stopping.
type Trainer struct {
	cfg     TrainConfig
	log     *slog.Logger
	state   TrainerState
	history []float64
}

func NewTrainer(cfg TrainConfig) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Trainer{cfg: cfg, log: log}, nil
}

// Train fits weights for X (bias column included) and labels y, starting from zeros.
func (t *Trainer) Train(X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	t.state = StateInitializing
	t.history = t.history[:0]

	if err := core.CheckLabels("train", X, y); err != nil {
		return nil, err
	}
	_, d := X.Dims()
	w := mat.NewVecDense(d, nil)
	opt := optim.NewSGD(t.cfg.LearningRate)

	t.state = StateIterating
	for epoch := range t.cfg.Epochs {
		yPred, err := Predict(X, w)
		if err != nil {
			return nil, err
		}
		loss, err := Loss(y, yPred)
		if err != nil {
			return nil, err
		}
		w = descend(X, y, w, yPred, opt)

		t.history = append(t.history, loss)
		if t.cfg.LogEvery > 0 && epoch%t.cfg.LogEvery == 0 {
			t.log.Info("training", "epoch", epoch, "loss", loss)
		}
		if t.cfg.OnEpoch != nil {
			t.cfg.OnEpoch(epoch, loss)
		}
	}
	t.state = StateDone
	return w, nil
}

func (t *Trainer) State() TrainerState { return t.state }

// History returns a copy of the per-epoch losses of the last run.
func (t *Trainer) History() []float64 {
	out := make([]float64, len(t.history))
	copy(out, t.history)
	return out
}

// Train runs a Trainer with the given learning rate and epoch count and no reporting.
func Train(X mat.Matrix, y mat.Vector, lr float64, epochs int) (*mat.VecDense, error) {
	t, err := NewTrainer(TrainConfig{LearningRate: lr, Epochs: epochs})
	if err != nil {
		return nil, err
	}
	return t.Train(X, y)
}

func lastOrNaN(s []float64) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return s[len(s)-1]
}
