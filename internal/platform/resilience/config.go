package resilience

import (
	"time"

	"github.com/cockroachdb/errors"
)

// CircuitBreakerConfig tunes a CircuitBreaker. Disabled configs build no breaker at all.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig replaces out-of-range values with defaults. Enabled is kept as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

// Validate rejects an enabled config with out-of-range values instead of silently normalizing them.
func (c CircuitBreakerConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.FailureThreshold <= 0 {
		return errors.Newf("failure threshold must be > 0, got %d", c.FailureThreshold)
	}
	if c.OpenTimeout <= 0 {
		return errors.Newf("open timeout must be > 0, got %s", c.OpenTimeout)
	}
	if c.HalfOpenMaxReq <= 0 {
		return errors.Newf("half-open max requests must be > 0, got %d", c.HalfOpenMaxReq)
	}
	return nil
}
