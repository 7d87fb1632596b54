package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"prepmatter/internal/config"
	"prepmatter/internal/errors"
	"prepmatter/internal/types"
)

// RemoteProvider calls an external NLP sidecar over HTTP for POS tagging and
// sentiment scoring. All calls are breaker-protected; callers are expected to
// fall back to heuristics when the provider fails.
type RemoteProvider struct {
	endpoint         string
	client           *http.Client
	tagBreaker       *TagCircuitBreaker
	sentimentBreaker *SentimentCircuitBreaker
	logger           *errors.Logger
}

// NewRemoteProvider creates a provider for the configured NLP endpoint
func NewRemoteProvider(cfg *config.NLPConfig, logger *errors.Logger) (*RemoteProvider, error) {
	if cfg.Endpoint == "" {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"Remote NLP provider requires an endpoint", nil)
	}

	return &RemoteProvider{
		endpoint:         cfg.Endpoint,
		client:           &http.Client{Timeout: cfg.Timeout},
		tagBreaker:       NewTagCircuitBreaker(cfg, logger),
		sentimentBreaker: NewSentimentCircuitBreaker(cfg, logger),
		logger:           logger,
	}, nil
}

type nlpRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Nouns      int `json:"nouns"`
	Verbs      int `json:"verbs"`
	Adjectives int `json:"adjectives"`
}

type sentimentResponse struct {
	Compound float64 `json:"compound"`
}

// TagCounts requests part-of-speech tallies from the tagging endpoint
func (p *RemoteProvider) TagCounts(ctx context.Context, text string) (types.WordTypeCounts, error) {
	return p.tagBreaker.Execute(func() (types.WordTypeCounts, error) {
		var resp tagResponse
		if err := p.post(ctx, "/pos", text, &resp); err != nil {
			return types.WordTypeCounts{}, err
		}
		return types.WordTypeCounts{
			Nouns:      resp.Nouns,
			Verbs:      resp.Verbs,
			Adjectives: resp.Adjectives,
		}, nil
	})
}

// Polarity requests a compound polarity score from the sentiment endpoint
func (p *RemoteProvider) Polarity(ctx context.Context, text string) (float64, error) {
	return p.sentimentBreaker.Execute(func() (float64, error) {
		var resp sentimentResponse
		if err := p.post(ctx, "/sentiment", text, &resp); err != nil {
			return 0, err
		}
		return resp.Compound, nil
	})
}

// GetStats exposes breaker state for health and stats reporting
func (p *RemoteProvider) GetStats() map[string]any {
	return map[string]any{
		"endpoint":  p.endpoint,
		"tagger":    p.tagBreaker.GetStats(),
		"sentiment": p.sentimentBreaker.GetStats(),
	}
}

func (p *RemoteProvider) post(ctx context.Context, path, text string, out any) error {
	body, err := json.Marshal(nlpRequest{Text: text})
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeInvalidRequest,
			"Failed to encode NLP request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return errors.NewNetworkError(errors.ErrCodeNLPServiceFailed,
			"Failed to build NLP request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewNetworkError(errors.ErrCodeNLPServiceFailed,
			fmt.Sprintf("NLP service call to %s failed", path), err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && p.logger != nil {
			p.logger.Warn("Failed to close NLP response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.NewNLPError(errors.ErrCodeNLPServiceFailed,
			fmt.Sprintf("NLP service returned %d: %s", resp.StatusCode, string(payload)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewNLPError(errors.ErrCodeNLPServiceFailed,
			"Failed to decode NLP response", err)
	}
	return nil
}
