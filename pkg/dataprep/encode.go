package dataprep

import (
	"sort"

	"github.com/pkg/errors"
)

// LabelEncoder maps category strings to integers in [0, K).
// Classes are sorted, so the same label set always yields the same codes.
type LabelEncoder struct {
	Classes []string
	index   map[string]int
}

// Fit collects the distinct labels.
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.New("label encoder: no labels to fit")
	}
	seen := map[string]struct{}{}
	classes := []string{}
	for _, v := range labels {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	sort.Strings(classes)

	e.Classes = classes
	e.index = make(map[string]int, len(classes))
	for i, c := range classes {
		e.index[c] = i
	}
	return nil
}

// Transform encodes labels as integers. Labels unseen during Fit are an error.
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	if e.index == nil {
		return nil, errors.New("label encoder: not fitted")
	}
	out := make([]int, len(labels))
	for i, v := range labels {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.Errorf("label encoder: unknown label %q at row %d", v, i)
		}
		out[i] = code
	}
	return out, nil
}

func (e *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform maps codes back to label strings.
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	out := make([]string, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(e.Classes) {
			return nil, errors.Errorf("label encoder: code %d out of range [0,%d)", c, len(e.Classes))
		}
		out[i] = e.Classes[c]
	}
	return out, nil
}

// Index returns the code of a single label.
func (e *LabelEncoder) Index(label string) (int, bool) {
	code, ok := e.index[label]
	return code, ok
}

// Binarize turns class codes into a 0/1 target: 1 where the code equals positive.
func Binarize(codes []int, positive int) []float64 {
	out := make([]float64, len(codes))
	for i, c := range codes {
		if c == positive {
			out[i] = 1
		}
	}
	return out
}

// CountClasses returns how many rows carry each code in [0, k).
func CountClasses(codes []int, k int) []int {
	counts := make([]int, k)
	for _, c := range codes {
		if c >= 0 && c < k {
			counts[c]++
		}
	}
	return counts
}
