package analysis

import (
	"strings"

	"prepmatter/internal/types"
)

// analyzeTechnical scores technical depth against general keyword groups and
// role-specific vocabulary
func (a *Analyzer) analyzeTechnical(answer, jobRole string) types.TechnicalAnalysis {
	answerLower := strings.ToLower(answer)

	categories := make(map[string]float64, len(a.lex.TechnicalGroups))
	total := 0.0
	for group, keywords := range a.lex.TechnicalGroups {
		score := clamp(float64(countAny(answerLower, keywords))*20, 0, 100)
		categories[group] = score
		total += score
	}
	groupCount := len(a.lex.TechnicalGroups)
	if groupCount < 1 {
		groupCount = 1
	}

	roleTerms := a.lex.RoleTermsFor(jobRole)
	roleScore := clamp(float64(countAny(answerLower, roleTerms))*15, 0, 100)

	return types.TechnicalAnalysis{
		TechnicalCategories:   categories,
		RoleTechnicalScore:    roleScore,
		HasCodeExample:        containsAny(answerLower, a.lex.CodeIndicators),
		OverallTechnicalScore: total / float64(groupCount),
	}
}
