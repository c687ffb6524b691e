package model

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates fitted parameters that cannot be evaluated.
var ErrMalformed = errors.New("malformed model")

// DimensionError indicates a row whose width differs from the fitted width.
type DimensionError struct {
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("expected %d features, got %d", e.Expected, e.Got)
}
