package nlp

import (
	"context"
	"strings"

	"prepmatter/internal/types"
)

// HeuristicTagger approximates part-of-speech tallies from word suffixes.
// It is the always-available fallback when no tagging service is configured.
type HeuristicTagger struct{}

// TagCounts never fails; it classifies words by common English suffixes
func (t *HeuristicTagger) TagCounts(_ context.Context, text string) (types.WordTypeCounts, error) {
	var counts types.WordTypeCounts
	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)
		switch {
		case strings.HasSuffix(lower, "tion") || strings.HasSuffix(lower, "ness"):
			counts.Nouns++
		case strings.HasSuffix(lower, "ed") || strings.HasSuffix(lower, "ing"):
			counts.Verbs++
		case strings.HasSuffix(lower, "ly"):
			counts.Adjectives++
		}
	}
	return counts, nil
}

// NeutralSentiment is the fallback analyzer used when no sentiment service
// is configured. It reports neutral polarity for every input.
type NeutralSentiment struct{}

// Polarity always returns 0 (neutral)
func (s *NeutralSentiment) Polarity(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
