package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("REPLICATE_API_TOKEN", "r8_test")
}

func TestLoadMissingBothTokens(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("REPLICATE_API_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, err.Error(), "REPLICATE_API_TOKEN")
}

func TestLoadMissingReplicateToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("REPLICATE_API_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPLICATE_API_TOKEN")
	assert.NotContains(t, err.Error(), "TELEGRAM_BOT_TOKEN,")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "black-forest-labs/flux-schnell", cfg.Model)
	assert.Equal(t, 768, cfg.ImageWidth)
	assert.Equal(t, 768, cfg.ImageHeight)
	assert.Equal(t, 4, cfg.NumInferenceSteps)
	assert.Equal(t, 3.5, cfg.GuidanceScale)
	assert.Equal(t, 30, cfg.MaxAttempts)
	assert.Equal(t, 8, cfg.WorkerPoolSize)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ICIFY_MODEL", "black-forest-labs/flux-dev")
	t.Setenv("ICIFY_WORKER_POOL_SIZE", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "black-forest-labs/flux-dev", cfg.Model)
	assert.Equal(t, 2, cfg.WorkerPoolSize)
}

func TestLoadRejectsBadPoolSize(t *testing.T) {
	setRequired(t)
	t.Setenv("ICIFY_WORKER_POOL_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ICIFY_WORKER_POOL_SIZE")
}
