package analysis

import (
	"context"
	"strings"

	"prepmatter/internal/types"
)

// analyzeConfidence scores how assured the answer sounds. The base score of 50
// shifts up for assertive wording and down for uncertainty and hedging.
func (a *Analyzer) analyzeConfidence(ctx context.Context, answer string) types.ConfidenceAnalysis {
	answerLower := strings.ToLower(answer)

	high := countAny(answerLower, a.lex.HighConfidence)
	low := countAny(answerLower, a.lex.LowConfidence)
	hedges := countAny(answerLower, a.lex.HedgePhrases)

	confidence := clamp(float64(high*15)-float64(low*10)-float64(hedges*5)+50, 0, 100)

	polarity := a.nlp.Polarity(ctx, answer)
	sentiment := clamp((polarity+1)*50, 0, 100)

	return types.ConfidenceAnalysis{
		ConfidenceScore:          confidence,
		HighConfidenceIndicators: high,
		LowConfidenceIndicators:  low,
		HedgeWordCount:           hedges,
		SentimentScore:           sentiment,
	}
}
