package model

import (
	"fmt"
	"math"
)

// Scaler is a fitted standard scaler: x' = (x - Mean) / Scale per feature.
type Scaler struct {
	FeatureNames []string
	Mean         []float64
	Scale        []float64
}

// NumFeatures returns the row width the scaler was fitted on.
func (s *Scaler) NumFeatures() int {
	return len(s.Mean)
}

// Validate checks the fitted parameters are usable.
func (s *Scaler) Validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("%w: scaler has no features", ErrMalformed)
	}
	if len(s.Scale) != len(s.Mean) {
		return fmt.Errorf("%w: scaler has %d means but %d scales", ErrMalformed, len(s.Mean), len(s.Scale))
	}
	if len(s.FeatureNames) != 0 && len(s.FeatureNames) != len(s.Mean) {
		return fmt.Errorf("%w: scaler has %d feature names for %d features", ErrMalformed, len(s.FeatureNames), len(s.Mean))
	}
	for i := range s.Mean {
		if !finite(s.Mean[i]) || !finite(s.Scale[i]) {
			return fmt.Errorf("%w: scaler feature %d is not finite", ErrMalformed, i)
		}
		if s.Scale[i] < 0 {
			return fmt.Errorf("%w: scaler feature %d has negative scale", ErrMalformed, i)
		}
	}
	return nil
}

// Transform standardizes each row. A zero scale leaves the centred value
// unscaled, matching how a fitted scaler stores constant features.
func (s *Scaler) Transform(rows [][]float64) ([][]float64, error) {
	n := s.NumFeatures()
	out := make([][]float64, len(rows))
	for r, row := range rows {
		if len(row) != n {
			return nil, &DimensionError{Expected: n, Got: len(row)}
		}
		scaled := make([]float64, n)
		for i, x := range row {
			scale := s.Scale[i]
			if scale == 0 {
				scale = 1
			}
			scaled[i] = (x - s.Mean[i]) / scale
		}
		out[r] = scaled
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
