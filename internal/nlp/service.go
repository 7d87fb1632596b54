package nlp

import (
	"context"
	"fmt"

	"prepmatter/internal/config"
	"prepmatter/internal/errors"
	"prepmatter/internal/types"
)

// Service provides part-of-speech tallies and sentiment polarity for answer
// analysis. A remote provider may back it; heuristic fallbacks keep analysis
// available when the provider is down.
type Service struct {
	tagger            Tagger
	sentiment         SentimentAnalyzer
	fallbackTagger    Tagger
	fallbackSentiment SentimentAnalyzer
	remote            *RemoteProvider
	logger            *errors.Logger
	onFallback        func(operation string)
}

// SetFallbackHook registers a callback invoked whenever a provider call
// degrades to the heuristic fallback. Used to report fallback metrics
// without coupling this package to the metrics stack.
func (s *Service) SetFallbackHook(hook func(operation string)) {
	s.onFallback = hook
}

func (s *Service) recordFallback(operation string) {
	if s.onFallback != nil {
		s.onFallback(operation)
	}
}

// NewService creates an NLP service from configuration
func NewService(cfg *config.NLPConfig, logger *errors.Logger) (*Service, error) {
	svc := &Service{
		fallbackTagger:    &HeuristicTagger{},
		fallbackSentiment: &NeutralSentiment{},
		logger:            logger,
	}

	switch cfg.Provider {
	case "heuristic", "":
		svc.tagger = svc.fallbackTagger
		svc.sentiment = svc.fallbackSentiment
	case "remote":
		remote, err := NewRemoteProvider(cfg, logger)
		if err != nil {
			return nil, err
		}
		svc.remote = remote
		svc.tagger = remote
		svc.sentiment = remote
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unknown NLP provider: %s", cfg.Provider), nil)
	}

	return svc, nil
}

// WordTypes returns noun/verb/adjective counts for the text. Remote failures
// degrade to the suffix heuristic.
func (s *Service) WordTypes(ctx context.Context, text string) types.WordTypeCounts {
	counts, err := s.tagger.TagCounts(ctx, text)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("NLP tagging failed, using heuristic fallback", "error", err)
		}
		s.recordFallback("tag")
		counts, _ = s.fallbackTagger.TagCounts(ctx, text)
	}
	return counts
}

// Polarity returns compound sentiment polarity in [-1, 1]. Remote failures
// degrade to neutral.
func (s *Service) Polarity(ctx context.Context, text string) float64 {
	polarity, err := s.sentiment.Polarity(ctx, text)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("Sentiment analysis failed, using neutral fallback", "error", err)
		}
		s.recordFallback("sentiment")
		polarity, _ = s.fallbackSentiment.Polarity(ctx, text)
	}
	return polarity
}

// GetStats reports provider state for the stats endpoint
func (s *Service) GetStats() map[string]any {
	if s.remote != nil {
		stats := s.remote.GetStats()
		stats["provider"] = "remote"
		return stats
	}
	return map[string]any{"provider": "heuristic"}
}
