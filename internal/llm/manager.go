package llm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"tradelink-utils/internal/config"
	"tradelink-utils/internal/logging"
)

// Manager manages the model provider lifecycle and throttles outbound calls
type Manager struct {
	config   *config.Config
	create   func(cfg *config.Config) (Provider, error)
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new manager instance. The create function builds the
// configured provider; it is injected so the manager stays decoupled from
// concrete provider packages.
func NewManager(cfg *config.Config, create func(cfg *config.Config) (Provider, error)) *Manager {
	// Rate limit is configured per minute; bursts of a few calls are fine
	rps := rate.Limit(float64(cfg.LLM.RateLimit) / 60.0)

	return &Manager{
		config:  cfg,
		create:  create,
		limiter: rate.NewLimiter(rps, 5),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.create(m.config)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - estimates will use the fallback calculation", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
			"error":    err.Error(),
		})
		m.healthy = false
		// Don't return error - the fallback path keeps the service usable
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
			"model":    m.provider.GetModelName(),
		})
	}

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	if closer, ok := m.provider.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			m.logger.Warn("Failed to close LLM provider", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	m.provider = nil
	m.healthy = false
	return nil
}

// GenerateEstimateText invokes the configured provider with rate limiting
func (m *Manager) GenerateEstimateText(ctx context.Context, prompt string) (string, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return "", NewConfigError("manager", "generate",
			fmt.Errorf("LLM manager not started or provider not available"))
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", NewTransientError(provider.GetProviderName(), "rate_limit", err)
	}

	return provider.GenerateEstimateText(ctx, prompt)
}

// IsHealthy checks if the manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// GetModelName returns the model identifier of the current provider
func (m *Manager) GetModelName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetModelName()
	}
	return "none"
}

// CheckHealth performs a health check on the provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
