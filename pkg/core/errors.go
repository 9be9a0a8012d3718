package core

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when an operation receives no rows, columns or labels.
	ErrEmpty = errors.New("empty input")
	// ErrConfig marks invalid hyperparameters.
	ErrConfig = errors.New("invalid configuration")
	// ErrNotFitted is returned when a model is used before Fit.
	ErrNotFitted = errors.New("model not fitted")
)

// ShapeError reports a dimension mismatch between operands.
type ShapeError struct {
	Op   string
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s mismatch: want %d, got %d", e.Op, e.What, e.Want, e.Got)
}

func itoa(i int) string { return strconv.Itoa(i) }
