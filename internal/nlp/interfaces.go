package nlp

import (
	"context"

	"prepmatter/internal/types"
)

// Tagger produces part-of-speech tallies for a text
type Tagger interface {
	TagCounts(ctx context.Context, text string) (types.WordTypeCounts, error)
}

// SentimentAnalyzer scores text polarity in [-1,1]
type SentimentAnalyzer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}
