package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	TelegramBotToken  string `env:"TELEGRAM_BOT_TOKEN"`
	ReplicateAPIToken string `env:"REPLICATE_API_TOKEN"`

	// Inference model and generation parameters
	Model             string  `env:"ICIFY_MODEL" envDefault:"black-forest-labs/flux-schnell"`
	ImageWidth        int     `env:"ICIFY_IMAGE_WIDTH" envDefault:"768"`
	ImageHeight       int     `env:"ICIFY_IMAGE_HEIGHT" envDefault:"768"`
	NumInferenceSteps int     `env:"ICIFY_INFERENCE_STEPS" envDefault:"4"`
	GuidanceScale     float64 `env:"ICIFY_GUIDANCE_SCALE" envDefault:"3.5"`

	// Remote call behavior
	HTTPTimeout  time.Duration `env:"ICIFY_HTTP_TIMEOUT" envDefault:"120s"`
	PollInterval time.Duration `env:"ICIFY_POLL_INTERVAL" envDefault:"2s"`
	MaxAttempts  int           `env:"ICIFY_MAX_ATTEMPTS" envDefault:"30"`

	// Size of the worker pool that executes inference calls
	WorkerPoolSize int `env:"ICIFY_WORKER_POOL_SIZE" envDefault:"8"`
}

// Load loads the configuration from a .env file (if present) and
// environment variables
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Validate required fields
	var missing []string
	if cfg.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if cfg.ReplicateAPIToken == "" {
		missing = append(missing, "REPLICATE_API_TOKEN")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.WorkerPoolSize < 1 {
		return nil, fmt.Errorf("ICIFY_WORKER_POOL_SIZE must be at least 1, got %d", cfg.WorkerPoolSize)
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("ICIFY_MAX_ATTEMPTS must be at least 1, got %d", cfg.MaxAttempts)
	}

	return cfg, nil
}
