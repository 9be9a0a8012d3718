package checkpoint

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

func sample() *Checkpoint {
	return New(Metadata{
		Mode:         "ovr",
		Classes:      []string{"setosa", "versicolor", "virginica"},
		FeatureNames: []string{"sepal_length", "sepal_width"},
		LearningRate: 0.1,
		Epochs:       1000,
		FinalLoss:    []float64{0.05, 0.6, 0.3},
		Scaler:       &Scaler{Mean: []float64{5.8, 3.1}, Std: []float64{0.8, 0.4}},
	},
		mat.NewVecDense(3, []float64{0.25, -1.5, 2}),
		mat.NewVecDense(3, []float64{1e-9, 3.75, -0.125}),
		mat.NewVecDense(3, []float64{0, 0, 1}),
	)
}

func TestNewStampsMetadata(t *testing.T) {
	c := sample()
	if _, err := uuid.Parse(c.Metadata.RunID); err != nil {
		t.Fatalf("run id %q: %v", c.Metadata.RunID, err)
	}
	if c.Metadata.CreatedAt.IsZero() {
		t.Fatal("created at not set")
	}
	v := c.Vectors()
	if len(v) != 3 || v[1].AtVec(1) != 3.75 {
		t.Fatalf("vectors = %v", c.Weights)
	}
	v[1].SetVec(1, 0)
	if c.Weights[1][1] != 3.75 {
		t.Fatal("Vectors shares storage with the checkpoint")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"model.json", "model.pb"} {
		t.Run(name, func(t *testing.T) {
			c := sample()
			path := filepath.Join(t.TempDir(), name)
			format := FormatFromPath(path)
			if err := Save(path, c, format); err != nil {
				t.Fatal(err)
			}
			got, err := Load(path, format)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got.Weights, c.Weights) {
				t.Fatalf("weights = %v, want %v", got.Weights, c.Weights)
			}
			if !got.Metadata.CreatedAt.Equal(c.Metadata.CreatedAt) {
				t.Fatalf("created at = %v, want %v", got.Metadata.CreatedAt, c.Metadata.CreatedAt)
			}
			got.Metadata.CreatedAt = c.Metadata.CreatedAt
			if !reflect.DeepEqual(got.Metadata, c.Metadata) {
				t.Fatalf("metadata = %+v, want %+v", got.Metadata, c.Metadata)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json": FormatJSON,
		"a.pb":   FormatProto,
		"a.BIN":  FormatProto,
		"a":      FormatJSON,
	} {
		if got := FormatFromPath(path); got != want {
			t.Errorf("%s: %v, want %v", path, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	id := uuid.NewString()
	for name, c := range map[string]*Checkpoint{
		"no weights":   {Metadata: Metadata{RunID: id}},
		"empty vector": {Weights: [][]float64{{}}, Metadata: Metadata{RunID: id}},
		"ragged":       {Weights: [][]float64{{1, 2}, {1}}, Metadata: Metadata{RunID: id}},
		"bad run id":   {Weights: [][]float64{{1}}, Metadata: Metadata{RunID: "nope"}},
	} {
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
		if err := Encode(&bytes.Buffer{}, c, FormatJSON); err == nil {
			t.Errorf("%s: Encode should validate", name)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("not a proto"), FormatProto); err == nil {
		t.Error("garbage proto: expected error")
	}
	if _, err := Decode(strings.NewReader("{"), FormatJSON); err == nil {
		t.Error("truncated json: expected error")
	}
	if _, err := Decode(strings.NewReader("{}"), FormatJSON); err == nil {
		t.Error("no weights: expected error")
	}
	if _, err := Decode(strings.NewReader("{}"), Format(7)); err == nil {
		t.Error("unknown format: expected error")
	}
}
