package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/aymanerihane/Machine-Learning/pkg/checkpoint"
	"github.com/aymanerihane/Machine-Learning/pkg/core"
	"github.com/aymanerihane/Machine-Learning/pkg/data"
	"github.com/aymanerihane/Machine-Learning/pkg/dataprep"
	"github.com/aymanerihane/Machine-Learning/pkg/loader"
	"github.com/aymanerihane/Machine-Learning/pkg/model"
	"github.com/aymanerihane/Machine-Learning/pkg/pipeline"
	"github.com/aymanerihane/Machine-Learning/pkg/stats"
	"github.com/aymanerihane/Machine-Learning/pkg/viz"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --data      : CSV with a header row and a "species" column. Empty = embedded Iris
// --lr        : Learning rate of batch gradient descent
// --epochs    : Number of full-batch updates (no early stopping)
// --test-size : Fraction of rows held out for testing
// --seed      : Seed of the train/test shuffle
// --log-every : Report the training loss every N epochs (0 = never)
// --mode      : "ovr" (one model per class, argmax) or "binary" (positive class vs rest)
// --positive  : Positive class name for --mode binary and for the plot
// --scale     : Standardize features with training statistics before adding the bias
// --plot      : Output PNG for the decision boundary (empty = skip)
// --save      : Output checkpoint (.json, or .pb/.bin for protobuf; empty = skip)
// --log-level : debug, info, warn, error
//
// Example:
//   go run ./cmd/examples/IrisLogistic --mode binary --positive setosa --plot boundary.png
//
// ---------------------------------------------------------------------
//

type options struct {
	dataPath string
	lr       float64
	epochs   int
	testSize float64
	seed     int64
	logEvery int
	mode     string
	positive string
	scale    bool
	plotPath string
	savePath string
	logLevel string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("IrisLogistic", flag.ContinueOnError)
	fs.StringVar(&o.dataPath, "data", "", "CSV dataset path (empty = embedded Iris)")
	fs.Float64Var(&o.lr, "lr", 0.1, "Learning rate")
	fs.IntVar(&o.epochs, "epochs", 1000, "Training epochs")
	fs.Float64Var(&o.testSize, "test-size", 0.3, "Test fraction in [0,1)")
	fs.Int64Var(&o.seed, "seed", 42, "Train/test split seed")
	fs.IntVar(&o.logEvery, "log-every", 100, "Loss reporting cadence in epochs")
	fs.StringVar(&o.mode, "mode", "ovr", "Classification mode: ovr or binary")
	fs.StringVar(&o.positive, "positive", "setosa", "Positive class for binary mode and the plot")
	fs.BoolVar(&o.scale, "scale", false, "Standardize features")
	fs.StringVar(&o.plotPath, "plot", "decision_boundary.png", "Decision boundary PNG path (empty = skip)")
	fs.StringVar(&o.savePath, "save", "", "Checkpoint path (empty = skip)")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.mode != "ovr" && o.mode != "binary" {
		return o, errors.Errorf("unknown mode %q", o.mode)
	}
	return o, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(o.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(o, log); err != nil {
		log.Error("iris logistic regression failed", "error", err)
		os.Exit(1)
	}
}

func run(o options, log *slog.Logger) error {
	// ---- Load dataset ----
	var ds *data.Dataset
	var err error
	if o.dataPath == "" {
		ds, err = data.Iris()
	} else {
		ds, err = data.LoadCSV(o.dataPath, data.IrisLabel)
	}
	if err != nil {
		return err
	}
	log.Info("loaded dataset", "rows", ds.Len(), "features", strings.Join(ds.Schema.FeatureNames, ","))

	// ---- Encode labels and split ----
	var enc dataprep.LabelEncoder
	codes, err := enc.FitTransform(ds.Labels)
	if err != nil {
		return err
	}
	log.Info("encoded labels", "classes", strings.Join(enc.Classes, ","), "counts", fmt.Sprint(dataprep.CountClasses(codes, len(enc.Classes))))

	XTrainRaw, XTestRaw, yTrain, yTest, err := loader.TrainTestSplit(ds.X, codes, o.testSize, o.seed)
	if err != nil {
		return err
	}
	log.Info("split dataset", "train", len(XTrainRaw), "test", len(XTestRaw), "seed", o.seed)

	// ---- Features: optional scaling, then bias column ----
	var scaler *stats.StandardScaler
	steps := []pipeline.Transformer{}
	if o.scale {
		scaler = stats.NewStandardScaler()
		steps = append(steps, scaler)
	}
	steps = append(steps, pipeline.Bias{})
	prep := pipeline.NewPipeline(steps...)

	XTrainDense, err := core.FromSlice(XTrainRaw)
	if err != nil {
		return errors.Wrap(err, "train features")
	}
	XTrain, err := prep.FitTransform(XTrainDense)
	if err != nil {
		return err
	}
	var XTest *mat.Dense
	if len(XTestRaw) > 0 {
		XTestDense, err := core.FromSlice(XTestRaw)
		if err != nil {
			return errors.Wrap(err, "test features")
		}
		if XTest, err = prep.Transform(XTestDense); err != nil {
			return err
		}
	}

	cfg := model.TrainConfig{
		LearningRate: o.lr,
		Epochs:       o.epochs,
		LogEvery:     o.logEvery,
		Logger:       log,
	}
	meta := checkpoint.Metadata{
		Mode:         o.mode,
		Classes:      enc.Classes,
		FeatureNames: ds.Schema.FeatureNames,
		LearningRate: o.lr,
		Epochs:       o.epochs,
	}
	if scaler != nil {
		meta.Scaler = &checkpoint.Scaler{Mean: scaler.Mean, Std: scaler.Std}
	}

	// ---- Train and evaluate ----
	positive := func() (int, error) {
		pos, ok := enc.Index(o.positive)
		if !ok {
			return 0, errors.Errorf("positive class %q not in %v", o.positive, enc.Classes)
		}
		return pos, nil
	}

	var weights []*mat.VecDense
	switch o.mode {
	case "binary":
		pos, err := positive()
		if err != nil {
			return err
		}
		meta.Positive = o.positive
		yb, err := core.Vector(dataprep.Binarize(yTrain, pos))
		if err != nil {
			return err
		}
		m := model.NewLogisticRegression(cfg)
		if err := m.Fit(XTrain, yb); err != nil {
			return err
		}
		weights = []*mat.VecDense{m.W}
		meta.FinalLoss = finalLoss(m)
		log.Info("trained weights", "weights", fmt.Sprint(m.W.RawVector().Data))

		if XTest != nil {
			pred, err := m.Predict(XTest)
			if err != nil {
				return err
			}
			truth := toInts(dataprep.Binarize(yTest, pos))
			prec, rec, f1 := model.PrecisionRecallF1(truth, pred)
			log.Info("test metrics", "accuracy", model.Accuracy(truth, pred), "precision", prec, "recall", rec, "f1", f1)
		}

	case "ovr":
		m := model.NewOneVsRest(len(enc.Classes), cfg)
		if err := m.Fit(XTrain, yTrain); err != nil {
			return err
		}
		weights = m.Weights()
		for k, bm := range m.Models {
			meta.FinalLoss = append(meta.FinalLoss, finalLoss(bm)...)
			log.Info("trained weights", "class", enc.Classes[k], "weights", fmt.Sprint(bm.W.RawVector().Data))
		}
		if XTest != nil {
			pred, err := m.Predict(XTest)
			if err != nil {
				return err
			}
			log.Info("test metrics", "accuracy", model.Accuracy(yTest, pred))
			for i, row := range model.ConfusionMatrix(yTest, pred, len(enc.Classes)) {
				log.Info("confusion", "true", enc.Classes[i], "predicted", fmt.Sprint(row))
			}
		}
	}

	if o.savePath != "" {
		vecs := make([]mat.Vector, len(weights))
		for i, w := range weights {
			vecs[i] = w
		}
		ck := checkpoint.New(meta, vecs...)
		format := checkpoint.FormatFromPath(o.savePath)
		if err := checkpoint.Save(o.savePath, ck, format); err != nil {
			return err
		}
		log.Info("saved checkpoint", "path", o.savePath, "format", format, "run_id", ck.Metadata.RunID)
	}

	if o.plotPath != "" {
		pos, err := positive()
		if err != nil {
			return errors.Wrap(err, "plot")
		}
		plotTrain := toInts(dataprep.Binarize(yTrain, pos))
		plotTest := toInts(dataprep.Binarize(yTest, pos))
		if err := plotBoundary(o, log, ds, XTrainRaw, XTestRaw, plotTrain, plotTest); err != nil {
			return err
		}
	}
	return nil
}

// plotBoundary fits a separate bias + first-two-features model for the
// positive class, since the surface is drawn over those two features only.
func plotBoundary(o options, log *slog.Logger, ds *data.Dataset, XTrainRaw, XTestRaw [][]float64, yTrain, yTest []int) error {
	full, err := core.FromSlice(XTrainRaw)
	if err != nil {
		return err
	}
	two, err := core.Columns(full, 0, 1)
	if err != nil {
		return err
	}
	y, err := core.Vector(toFloats(yTrain))
	if err != nil {
		return err
	}
	m := model.NewLogisticRegression(model.TrainConfig{LearningRate: o.lr, Epochs: o.epochs})
	if err := m.Fit(core.WithBias(two), y); err != nil {
		return errors.Wrap(err, "boundary model")
	}

	col0 := make([]float64, ds.Len())
	col1 := make([]float64, ds.Len())
	for i, row := range ds.X {
		col0[i], col1[i] = row[0], row[1]
	}
	const h = 0.02
	surface, err := viz.NewSurface(m.W,
		floats.Min(col0)-0.5, floats.Max(col0)+0.5,
		floats.Min(col1)-0.5, floats.Max(col1)+0.5, h)
	if err != nil {
		return err
	}

	fig := viz.Figure{
		Train:   viz.NewPoints(XTrainRaw, yTrain, 0, 1),
		Test:    viz.NewPoints(XTestRaw, yTest, 0, 1),
		Surface: surface,
		XLabel:  ds.Schema.FeatureNames[0],
		YLabel:  ds.Schema.FeatureNames[1],
	}
	if err := fig.Save(o.plotPath); err != nil {
		return err
	}
	log.Info("saved decision boundary", "path", o.plotPath, "weights", fmt.Sprint(m.W.RawVector().Data))
	return nil
}

func finalLoss(m *model.LogisticRegression) []float64 {
	if h := m.History(); len(h) > 0 {
		return []float64{h[len(h)-1]}
	}
	return nil
}

func toInts(v []float64) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
