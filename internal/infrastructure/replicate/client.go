package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/basel-ax/icified/internal/domain"
)

const defaultBaseURL = "https://api.replicate.com/v1"

// Config holds the settings for the Replicate API client
type Config struct {
	Token        string
	BaseURL      string
	Timeout      time.Duration
	PollInterval time.Duration
	MaxAttempts  int
}

// Client represents the Replicate API client
type Client struct {
	httpClient   *http.Client
	token        string
	baseURL      string
	model        string
	pollInterval time.Duration
	maxAttempts  int
}

// NewClient creates a new Replicate API client for the given model
func NewClient(cfg Config, model string) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		token:        cfg.Token,
		baseURL:      baseURL,
		model:        model,
		pollInterval: cfg.PollInterval,
		maxAttempts:  cfg.MaxAttempts,
	}
}

// predictionPayload mirrors the wire format of a prediction object.
// Output is left raw because the API returns either a single URI or a
// list of URIs depending on the model.
type predictionPayload struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error,omitempty"`
}

// CreatePrediction submits the inference request
func (c *Client) CreatePrediction(ctx context.Context, req domain.PredictionRequest) (*domain.Prediction, error) {
	payload := map[string]interface{}{
		"input": map[string]interface{}{
			"prompt":              req.Prompt,
			"image":               req.Image,
			"width":               req.Width,
			"height":              req.Height,
			"num_inference_steps": req.NumInferenceSteps,
			"guidance_scale":      req.GuidanceScale,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s/predictions", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	// Ask the API to hold the connection while inference runs; slow
	// generations still come back as "starting" and are polled below.
	httpReq.Header.Set("Prefer", "wait")

	return c.do(httpReq)
}

// GetPrediction checks the state of a previously created prediction
func (c *Client) GetPrediction(ctx context.Context, id string) (*domain.Prediction, error) {
	url := fmt.Sprintf("%s/predictions/%s", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	return c.do(httpReq)
}

// Run submits the inference request and waits for it to finish
func (c *Client) Run(ctx context.Context, req domain.PredictionRequest) (*domain.Prediction, error) {
	pred, err := c.CreatePrediction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction: %w", err)
	}

	for i := 0; i < c.maxAttempts; i++ {
		switch pred.Status {
		case domain.StatusSucceeded:
			return pred, nil
		case domain.StatusFailed, domain.StatusCanceled:
			return nil, fmt.Errorf("prediction %s %s: %s", pred.ID, pred.Status, pred.Error)
		case domain.StatusStarting, domain.StatusProcessing:
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pollInterval):
			}
			pred, err = c.GetPrediction(ctx, pred.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check prediction status: %w", err)
			}
		default:
			return nil, fmt.Errorf("unknown prediction status: %s", pred.Status)
		}
	}

	return nil, fmt.Errorf("max attempts reached waiting for prediction %s", pred.ID)
}

func (c *Client) do(req *http.Request) (*domain.Prediction, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var payload predictionPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	output, err := decodeOutput(payload.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to decode prediction output: %w", err)
	}

	return &domain.Prediction{
		ID:     payload.ID,
		Status: payload.Status,
		Output: output,
		Error:  payload.Error,
	}, nil
}

// decodeOutput normalizes the output field to a list of references
func decodeOutput(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []string{single}, nil
}
