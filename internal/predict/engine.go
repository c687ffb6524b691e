package predict

import (
	"errors"
	"fmt"

	"github.com/abhisek/heartstage/internal/features"
	"github.com/abhisek/heartstage/internal/model"
)

// Scaler normalizes rows before classification.
type Scaler interface {
	NumFeatures() int
	Transform(rows [][]float64) ([][]float64, error)
}

// Predictor turns a feature vector into a stage.
type Predictor interface {
	Predict(v features.Vector) (Result, error)
}

// Result is one prediction. It is never stored.
type Result struct {
	Stage
}

// Engine runs scaler then classifier over a single vector. Both
// collaborators are read-only after construction.
type Engine struct {
	scaler     Scaler
	classifier model.Classifier
}

var _ Predictor = (*Engine)(nil)

// New creates an Engine over loaded artifacts.
func New(scaler Scaler, classifier model.Classifier) (*Engine, error) {
	if scaler == nil {
		return nil, errors.New("predict: nil scaler")
	}
	if classifier == nil {
		return nil, errors.New("predict: nil classifier")
	}
	return &Engine{scaler: scaler, classifier: classifier}, nil
}

// Predict scales v, classifies it and maps the label to a stage.
func (e *Engine) Predict(v features.Vector) (Result, error) {
	if e == nil || e.scaler == nil || e.classifier == nil {
		return Result{}, &ModelError{Err: ErrModelUnavailable}
	}

	if n := e.scaler.NumFeatures(); n != features.NumFeatures {
		return Result{}, &DomainError{Expected: n, Got: features.NumFeatures}
	}
	rows := [][]float64{v.Row()}

	scaled, err := e.scaler.Transform(rows)
	if err != nil {
		return Result{}, &DomainError{Expected: e.scaler.NumFeatures(), Got: features.NumFeatures, Err: err}
	}

	labels, err := e.classifier.Predict(scaled)
	if err != nil {
		return Result{}, &ModelError{Err: err}
	}
	if len(labels) != 1 {
		return Result{}, &ModelError{Err: fmt.Errorf("expected 1 label, got %d", len(labels))}
	}

	stage, err := Lookup(labels[0])
	if err != nil {
		return Result{}, err
	}
	return Result{Stage: stage}, nil
}
