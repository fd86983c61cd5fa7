package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/panjf2000/ants/v2"

	"github.com/basel-ax/icified/internal/config"
	"github.com/basel-ax/icified/internal/domain"
)

// icifyPrompt is the fixed instruction sent with every photo.
const icifyPrompt = "person with luxury diamond watch on wrist and diamond grillz teeth, " +
	"ice out, jewelry, bling, expensive, high quality, photorealistic, luxury lifestyle"

// IcifyService turns raw photo bytes into a URL of the transformed image.
// It implements the domain.Icifier interface.
type IcifyService struct {
	runner domain.PredictionRunner
	pool   *ants.Pool
	config *config.Config
}

// NewIcifyService creates a new icify service backed by the given
// prediction runner and worker pool
func NewIcifyService(runner domain.PredictionRunner, pool *ants.Pool, cfg *config.Config) *IcifyService {
	return &IcifyService{
		runner: runner,
		pool:   pool,
		config: cfg,
	}
}

// Icify encodes the photo, runs the inference call on the worker pool and
// returns the URL of the first generated image. Remote failures of any kind
// come back as an error value; an empty result set is domain.ErrNoOutput.
func (s *IcifyService) Icify(ctx context.Context, raw []byte) (string, error) {
	req := domain.PredictionRequest{
		Prompt:            icifyPrompt,
		Image:             encodeDataURI(raw),
		Width:             s.config.ImageWidth,
		Height:            s.config.ImageHeight,
		NumInferenceSteps: s.config.NumInferenceSteps,
		GuidanceScale:     s.config.GuidanceScale,
	}

	// The inference call blocks for tens of seconds. Running it on the
	// shared pool bounds how many generations are in flight at once.
	type result struct {
		pred *domain.Prediction
		err  error
	}
	done := make(chan result, 1)

	if err := s.pool.Submit(func() {
		pred, err := s.runner.Run(ctx, req)
		done <- result{pred: pred, err: err}
	}); err != nil {
		return "", fmt.Errorf("failed to submit inference task: %w", err)
	}

	res := <-done
	if res.err != nil {
		return "", fmt.Errorf("inference call failed: %w", res.err)
	}

	if len(res.pred.Output) == 0 {
		return "", domain.ErrNoOutput
	}

	return res.pred.Output[0], nil
}

// encodeDataURI wraps image bytes as a base64 data URI
func encodeDataURI(raw []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
}
