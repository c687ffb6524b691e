package form

import "github.com/abhisek/heartstage/internal/predict"

// predictionMsg carries the outcome of one Predict press.
type predictionMsg struct {
	// Seq is the request number; replies to superseded requests are dropped.
	Seq    int
	Result predict.Result
	Err    error
}
