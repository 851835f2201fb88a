package llm_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelink-utils/internal/config"
	"tradelink-utils/internal/llm"
)

// fakeProvider is a scriptable Provider for manager tests
type fakeProvider struct {
	response  string
	healthErr error
	calls     int
	closed    bool
}

func (p *fakeProvider) GenerateEstimateText(ctx context.Context, prompt string) (string, error) {
	p.calls++
	return p.response, nil
}

func (p *fakeProvider) IsHealthy(ctx context.Context) error { return p.healthErr }
func (p *fakeProvider) GetProviderName() string             { return "fake" }
func (p *fakeProvider) GetModelName() string                { return "fake-model" }
func (p *fakeProvider) Close() error {
	p.closed = true
	return nil
}

func testConfig() *config.Config {
	cfg, _ := config.LoadConfig("")
	cfg.LLM.Timeout = 2 * time.Second
	return cfg
}

func TestManager_StartAndGenerate(t *testing.T) {
	provider := &fakeProvider{response: `{"totalCost": 500}`}
	manager := llm.NewManager(testConfig(), func(cfg *config.Config) (llm.Provider, error) {
		return provider, nil
	})

	require.NoError(t, manager.Start())
	assert.True(t, manager.IsHealthy())
	assert.Equal(t, "fake", manager.GetProviderName())
	assert.Equal(t, "fake-model", manager.GetModelName())

	raw, err := manager.GenerateEstimateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"totalCost": 500}`, raw)
	assert.Equal(t, 1, provider.calls)
}

func TestManager_UnhealthyProviderStillStarts(t *testing.T) {
	provider := &fakeProvider{healthErr: errors.New("api unreachable")}
	manager := llm.NewManager(testConfig(), func(cfg *config.Config) (llm.Provider, error) {
		return provider, nil
	})

	// A failed health check must not prevent startup; the estimator's
	// fallback path keeps the service usable.
	require.NoError(t, manager.Start())
	assert.False(t, manager.IsHealthy())
}

func TestManager_CreateFailurePropagates(t *testing.T) {
	manager := llm.NewManager(testConfig(), func(cfg *config.Config) (llm.Provider, error) {
		return nil, fmt.Errorf("unsupported provider")
	})

	assert.Error(t, manager.Start())
}

func TestManager_GenerateBeforeStart(t *testing.T) {
	manager := llm.NewManager(testConfig(), func(cfg *config.Config) (llm.Provider, error) {
		return &fakeProvider{}, nil
	})

	_, err := manager.GenerateEstimateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.False(t, llm.IsTransient(err))
}

func TestManager_StopClosesProvider(t *testing.T) {
	provider := &fakeProvider{}
	manager := llm.NewManager(testConfig(), func(cfg *config.Config) (llm.Provider, error) {
		return provider, nil
	})

	require.NoError(t, manager.Start())
	require.NoError(t, manager.Stop())

	assert.True(t, provider.closed)
	assert.Equal(t, "none", manager.GetProviderName())
	assert.False(t, manager.IsHealthy())
}

func TestProviderErrorClassification(t *testing.T) {
	transient := llm.NewTransientError("gemini", "generate", errors.New("503"))
	configErr := llm.NewConfigError("gemini", "init", errors.New("missing key"))

	assert.True(t, llm.IsTransient(transient))
	assert.False(t, llm.IsTransient(configErr))
	assert.False(t, llm.IsTransient(errors.New("plain error")))

	// Wrapped transient errors keep their classification
	wrapped := fmt.Errorf("request failed: %w", transient)
	assert.True(t, llm.IsTransient(wrapped))

	// The cause stays reachable through errors.Is
	cause := errors.New("connection reset")
	assert.True(t, errors.Is(llm.NewTransientError("gemini", "generate", cause), cause))
}
