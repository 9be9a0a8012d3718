package data

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//go:embed iris.csv
var irisCSV []byte

// IrisLabel is the label column of the embedded Iris dataset.
const IrisLabel = "species"

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	LabelName    string
}

// Dataset is a table of numeric features with one categorical label per row.
type Dataset struct {
	Schema Schema
	X      [][]float64
	Labels []string
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.X) }

// Iris returns the 150-row Iris dataset shipped with the package.
func Iris() (*Dataset, error) {
	return ReadCSV(bytes.NewReader(irisCSV), IrisLabel)
}

// LoadCSV reads a dataset from a CSV file on disk. See ReadCSV.
func LoadCSV(path, labelCol string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load csv")
	}
	defer file.Close()
	ds, err := ReadCSV(bufio.NewReader(file), labelCol)
	if err != nil {
		return nil, errors.Wrapf(err, "load csv %s", path)
	}
	return ds, nil
}

// ReadCSV parses a CSV with a header row. The column named labelCol is kept as a
// string label; every other column must parse as a float.
func ReadCSV(r io.Reader, labelCol string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("read csv: missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}
	header = append([]string(nil), header...)

	labelIdx := -1
	var features []string
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == labelCol {
			labelIdx = i
			continue
		}
		features = append(features, h)
	}
	if labelIdx < 0 {
		return nil, errors.Errorf("read csv: label column %q not in header", labelCol)
	}
	if len(features) == 0 {
		return nil, errors.New("read csv: no feature columns")
	}

	ds := &Dataset{Schema: Schema{FeatureNames: features, LabelName: labelCol}}
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read csv line %d", line)
		}
		x := make([]float64, 0, len(features))
		var label string
		for i, s := range rec {
			if i == labelIdx {
				label = strings.TrimSpace(s)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, errors.Errorf("read csv line %d column %q: %q is not a number", line, header[i], s)
			}
			x = append(x, v)
		}
		ds.X = append(ds.X, x)
		ds.Labels = append(ds.Labels, label)
	}
	if len(ds.X) == 0 {
		return nil, errors.New("read csv: no data rows")
	}
	return ds, nil
}
