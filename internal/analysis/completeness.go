package analysis

import (
	"strings"

	"prepmatter/internal/types"
)

// analyzeCompleteness scores whether the answer is long enough for its
// category and appears to address every part of the question
func (a *Analyzer) analyzeCompleteness(answer, question string, category types.QuestionCategory) types.CompletenessAnalysis {
	wordCount := len(strings.Fields(answer))
	band := a.lex.BandFor(category)

	var lengthScore float64
	switch {
	case wordCount < band.Min:
		lengthScore = float64(wordCount) / float64(band.Min) * 70
	case wordCount > band.Max:
		over := float64(wordCount-band.Max) / float64(band.Max) * 30
		lengthScore = 100 - over
		if lengthScore < 70 {
			lengthScore = 70
		}
	default:
		lengthScore = 100
	}

	// Each question mark and conjunction counts as one part to address
	parts := strings.Count(question, "?") + strings.Count(question, "and") + strings.Count(question, "or")
	if parts < 1 {
		parts = 1
	}
	addressesAll := len(strings.Split(answer, ".")) >= parts

	completeness := lengthScore
	if addressesAll {
		completeness += 20
	}
	completeness /= 1.2

	return types.CompletenessAnalysis{
		WordCount:         wordCount,
		LengthScore:       lengthScore,
		AddressesAllParts: addressesAll,
		CompletenessScore: completeness,
	}
}
