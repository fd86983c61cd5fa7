package domain

import (
	"context"
	"errors"
)

// Prediction status values returned by the inference API.
const (
	StatusStarting   = "starting"
	StatusProcessing = "processing"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusCanceled   = "canceled"
)

// ErrNoOutput indicates the inference call completed without producing
// any result reference.
var ErrNoOutput = errors.New("prediction returned no output")

// PredictionRequest represents the parameters for one inference call
type PredictionRequest struct {
	Prompt            string
	Image             string // data URI with the input image
	Width             int
	Height            int
	NumInferenceSteps int
	GuidanceScale     float64
}

// Prediction represents the state of an inference call as reported
// by the remote API
type Prediction struct {
	ID     string
	Status string
	Output []string
	Error  string
}

// Terminal reports whether the prediction has reached a final status.
func (p *Prediction) Terminal() bool {
	switch p.Status {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// PredictionRunner runs one inference call to completion
type PredictionRunner interface {
	// Run submits the request and blocks until the prediction reaches a
	// terminal status or the attempt budget is exhausted.
	Run(ctx context.Context, req PredictionRequest) (*Prediction, error)
}
