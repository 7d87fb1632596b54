package analysis

import (
	"context"
	"strings"

	"prepmatter/internal/types"
)

// analyzeLinguistics scores readability and vocabulary quality
func (a *Analyzer) analyzeLinguistics(ctx context.Context, answer string) types.LinguisticAnalysis {
	readability, gradeLevel := readabilityScores(answer)

	words := strings.Fields(answer)

	// Sentence length averages over raw dot segments, blanks included
	segments := len(strings.Split(answer, "."))
	if segments < 1 {
		segments = 1
	}
	avgSentenceLength := float64(len(words)) / float64(segments)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	wordTotal := len(words)
	if wordTotal < 1 {
		wordTotal = 1
	}
	diversity := float64(len(unique)) / float64(wordTotal) * 100

	return types.LinguisticAnalysis{
		ReadabilityScore:    readability,
		GradeLevel:          gradeLevel,
		AvgSentenceLength:   avgSentenceLength,
		VocabularyDiversity: diversity,
		WordTypes:           a.nlp.WordTypes(ctx, answer),
	}
}
