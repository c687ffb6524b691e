package features

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotInteger indicates a fractional value for a whole-number field.
var ErrNotInteger = errors.New("value must be a whole number")

// UnknownFieldError indicates a key that names no form field.
type UnknownFieldError struct {
	Key string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Key)
}

// RangeError indicates a numeric value outside the field's bounds.
type RangeError struct {
	Field  string
	Value  float64
	Min    float64
	Max    float64
	HasMax bool
}

func (e *RangeError) Error() string {
	v := strconv.FormatFloat(e.Value, 'g', -1, 64)
	lo := strconv.FormatFloat(e.Min, 'g', -1, 64)
	if !e.HasMax {
		return fmt.Sprintf("%s: %s is below the minimum %s", e.Field, v, lo)
	}
	hi := strconv.FormatFloat(e.Max, 'g', -1, 64)
	return fmt.Sprintf("%s: %s is outside %s..%s", e.Field, v, lo, hi)
}

// UnknownCodeError indicates a value that is not one of an enumerated
// field's codes. Label is set when the input was text.
type UnknownCodeError struct {
	Field string
	Code  float64
	Label string
}

func (e *UnknownCodeError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s: unknown option %q", e.Field, e.Label)
	}
	return fmt.Sprintf("%s: unknown code %s", e.Field, strconv.FormatFloat(e.Code, 'g', -1, 64))
}
