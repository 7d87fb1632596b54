package nlp

import (
	"fmt"

	"prepmatter/internal/config"
	"prepmatter/internal/errors"
	"prepmatter/internal/types"

	"github.com/sony/gobreaker/v2"
)

// TagCircuitBreaker wraps remote tagging calls with circuit breaker protection
type TagCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[types.WordTypeCounts]
}

// SentimentCircuitBreaker wraps remote sentiment calls with circuit breaker protection
type SentimentCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[float64]
}

func breakerSettings(name string, cfg *config.CircuitBreakerConfig, logger *errors.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"max_requests", cfg.MaxRequests,
				"failure_threshold", cfg.FailureThreshold)
		},
	}
}

// NewTagCircuitBreaker creates a breaker for the tagging endpoint. Returns
// nil when circuit breaking is disabled; Execute handles the nil case.
func NewTagCircuitBreaker(cfg *config.NLPConfig, logger *errors.Logger) *TagCircuitBreaker {
	if !cfg.CircuitBreaker.Enabled {
		return nil
	}
	settings := breakerSettings(fmt.Sprintf("NLP-tag-%s", cfg.Provider), &cfg.CircuitBreaker, logger)
	return &TagCircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[types.WordTypeCounts](settings),
	}
}

// NewSentimentCircuitBreaker creates a breaker for the sentiment endpoint
func NewSentimentCircuitBreaker(cfg *config.NLPConfig, logger *errors.Logger) *SentimentCircuitBreaker {
	if !cfg.CircuitBreaker.Enabled {
		return nil
	}
	settings := breakerSettings(fmt.Sprintf("NLP-sentiment-%s", cfg.Provider), &cfg.CircuitBreaker, logger)
	return &SentimentCircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[float64](settings),
	}
}

// Execute executes the provided function with circuit breaker protection
func (cb *TagCircuitBreaker) Execute(fn func() (types.WordTypeCounts, error)) (types.WordTypeCounts, error) {
	if cb == nil || cb.cb == nil {
		return fn()
	}
	return cb.cb.Execute(fn)
}

// Execute executes the provided function with circuit breaker protection
func (cb *SentimentCircuitBreaker) Execute(fn func() (float64, error)) (float64, error) {
	if cb == nil || cb.cb == nil {
		return fn()
	}
	return cb.cb.Execute(fn)
}

// GetStats returns circuit breaker statistics for the stats endpoint
func (cb *TagCircuitBreaker) GetStats() map[string]any {
	if cb == nil || cb.cb == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"name":    cb.cb.Name(),
		"state":   cb.cb.State().String(),
		"counts":  cb.cb.Counts(),
		"enabled": true,
	}
}

// GetStats returns circuit breaker statistics for the stats endpoint
func (cb *SentimentCircuitBreaker) GetStats() map[string]any {
	if cb == nil || cb.cb == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"name":    cb.cb.Name(),
		"state":   cb.cb.State().String(),
		"counts":  cb.cb.Counts(),
		"enabled": true,
	}
}
