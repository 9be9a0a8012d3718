package checkpoint

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Format defines the serialization format
type Format int

const (
	FormatJSON Format = iota
	FormatProto
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatProto:
		return "Proto"
	default:
		return "Unknown"
	}
}

// FormatFromPath picks FormatProto for .pb and .bin files and FormatJSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".bin":
		return FormatProto
	default:
		return FormatJSON
	}
}

// Checkpoint is a trained model: one weight vector per binary model plus
// what is needed to reproduce the inputs it expects.
type Checkpoint struct {
	Weights  [][]float64 `json:"weights"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata describes how the weights were produced.
type Metadata struct {
	RunID        string    `json:"run_id"`
	Mode         string    `json:"mode"` // "ovr" or "binary"
	Classes      []string  `json:"classes"`
	Positive     string    `json:"positive,omitempty"`
	FeatureNames []string  `json:"feature_names"`
	LearningRate float64   `json:"learning_rate"`
	Epochs       int       `json:"epochs"`
	FinalLoss    []float64 `json:"final_loss"`
	Scaler       *Scaler   `json:"scaler,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Scaler captures standardization statistics applied before the bias column.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// New copies the weight vectors into a checkpoint and stamps a run id and creation time.
func New(meta Metadata, weights ...mat.Vector) *Checkpoint {
	if meta.RunID == "" {
		meta.RunID = uuid.NewString()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}
	c := &Checkpoint{Metadata: meta, Weights: make([][]float64, len(weights))}
	for i, w := range weights {
		row := make([]float64, w.Len())
		for j := range row {
			row[j] = w.AtVec(j)
		}
		c.Weights[i] = row
	}
	return c
}

// Vectors returns the weights as gonum vectors.
func (c *Checkpoint) Vectors() []*mat.VecDense {
	out := make([]*mat.VecDense, len(c.Weights))
	for i, w := range c.Weights {
		out[i] = mat.NewVecDense(len(w), append([]float64(nil), w...))
	}
	return out
}

// Validate checks that there is at least one weight vector and all have the same length.
func (c *Checkpoint) Validate() error {
	if len(c.Weights) == 0 {
		return errors.New("checkpoint: no weights")
	}
	d := len(c.Weights[0])
	if d == 0 {
		return errors.New("checkpoint: empty weight vector")
	}
	for i, w := range c.Weights {
		if len(w) != d {
			return errors.Errorf("checkpoint: weight vector %d has %d entries, want %d", i, len(w), d)
		}
	}
	if _, err := uuid.Parse(c.Metadata.RunID); err != nil {
		return errors.Wrap(err, "checkpoint: run id")
	}
	return nil
}

// Encode writes c to w in the given format.
// The protobuf form is the JSON document carried as a google.protobuf.Struct.
func Encode(w io.Writer, c *Checkpoint, format Format) error {
	if err := c.Validate(); err != nil {
		return err
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "checkpoint: marshal json")
	}
	switch format {
	case FormatJSON:
		_, err = w.Write(doc)
		return errors.Wrap(err, "checkpoint: write")
	case FormatProto:
		var m map[string]any
		if err := json.Unmarshal(doc, &m); err != nil {
			return errors.Wrap(err, "checkpoint: to map")
		}
		s, err := structpb.NewStruct(m)
		if err != nil {
			return errors.Wrap(err, "checkpoint: to struct")
		}
		data, err := proto.Marshal(s)
		if err != nil {
			return errors.Wrap(err, "checkpoint: marshal proto")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "checkpoint: write")
	default:
		return errors.Errorf("checkpoint: unsupported format %v", format)
	}
}

// Decode reads a checkpoint written by Encode.
func Decode(r io.Reader, format Format) (*Checkpoint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint: read")
	}
	switch format {
	case FormatJSON:
	case FormatProto:
		var s structpb.Struct
		if err := proto.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "checkpoint: unmarshal proto")
		}
		if data, err = json.Marshal(s.AsMap()); err != nil {
			return nil, errors.Wrap(err, "checkpoint: from struct")
		}
	default:
		return nil, errors.Errorf("checkpoint: unsupported format %v", format)
	}

	var c Checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "checkpoint: unmarshal json")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes c to path.
func Save(path string, c *Checkpoint, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "checkpoint: create")
	}
	if err := Encode(f, c, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a checkpoint from path.
func Load(path string, format Format) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint: open")
	}
	defer f.Close()
	return Decode(f, format)
}
