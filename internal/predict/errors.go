package predict

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable indicates the engine has no loaded artifacts to call.
var ErrModelUnavailable = errors.New("classifier unavailable")

// DomainError indicates the feature vector does not fit the scaler.
type DomainError struct {
	Expected int
	Got      int
	Err      error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feature shape mismatch (scaler expects %d, vector has %d): %v", e.Expected, e.Got, e.Err)
	}
	return fmt.Sprintf("feature shape mismatch: scaler expects %d features, vector has %d", e.Expected, e.Got)
}

func (e *DomainError) Unwrap() error { return e.Err }

// ModelError indicates the classifier failed or returned an unusable result.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("classifier failed: %v", e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// LookupError indicates a label outside the known stage table.
type LookupError struct {
	Label int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("classifier returned unknown label %d", e.Label)
}
