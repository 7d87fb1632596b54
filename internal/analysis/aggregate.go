package analysis

import "prepmatter/internal/types"

// Dimension weights for the overall score
const (
	weightContent      = 0.25
	weightTechnical    = 0.25
	weightStructure    = 0.20
	weightConfidence   = 0.15
	weightCompleteness = 0.15
)

// Aggregate combines the per-dimension analyses into the weighted score set.
// Only the overall score is clamped; sub-scores pass through unchanged.
func Aggregate(a *types.AnswerAnalysis) types.ScoreSet {
	contentScore := (a.Content.RelevanceScore + a.Content.DepthScore) / 2
	technicalScore := a.Technical.OverallTechnicalScore
	structureScore := a.Structure.StructureScore
	confidenceScore := a.Confidence.ConfidenceScore
	completenessScore := a.Completeness.CompletenessScore

	overall := contentScore*weightContent +
		technicalScore*weightTechnical +
		structureScore*weightStructure +
		confidenceScore*weightConfidence +
		completenessScore*weightCompleteness

	return types.ScoreSet{
		OverallScore:       clamp(overall, 0, 100),
		ContentScore:       contentScore,
		TechnicalScore:     technicalScore,
		StructureScore:     structureScore,
		ConfidenceScore:    confidenceScore,
		CompletenessScore:  completenessScore,
		CommunicationScore: (a.Linguistic.ReadabilityScore + confidenceScore) / 2,
	}
}
