package analysis

import (
	"strings"

	"prepmatter/internal/types"
)

// analyzeContent scores how relevant and developed the answer is relative to
// the question
func (a *Analyzer) analyzeContent(answer, question string) types.ContentAnalysis {
	answerLower := strings.ToLower(answer)

	wordCount := len(strings.Fields(answer))
	sentenceCount := len(splitSentences(answer))

	// Relevance is the share of question tokens that reappear in the answer
	questionTokens := tokenSet(question)
	answerTokens := tokenSet(answer)
	overlap := 0
	for tok := range questionTokens {
		if _, ok := answerTokens[tok]; ok {
			overlap++
		}
	}
	denom := len(questionTokens)
	if denom < 1 {
		denom = 1
	}
	relevance := float64(overlap) / float64(denom) * 100

	depth := float64(countAny(answerLower, a.lex.DepthIndicators)) * 10

	return types.ContentAnalysis{
		WordCount:      wordCount,
		SentenceCount:  sentenceCount,
		RelevanceScore: clamp(relevance, 0, 100),
		DepthScore:     clamp(depth, 0, 100),
		HasExamples:    containsAny(answerLower, a.lex.ExamplePhrases),
	}
}
