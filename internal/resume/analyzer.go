package resume

import (
	"strings"

	"prepmatter/internal/types"
)

// Insight rule thresholds
const (
	strongProgrammingCount = 2
	strongWebCount         = 3
	minProjectCount        = 3
	matchScoreBoost        = 2.0
)

// Analyze assesses a parsed resume against the skill database and, when a
// target role is given, reports which expected skills are missing
func (p *Parser) Analyze(profile *types.ResumeProfile, targetRole string) types.ResumeInsights {
	userSkills := make(map[string]struct{}, len(profile.Skills))
	for _, skill := range profile.Skills {
		userSkills[strings.ToLower(skill)] = struct{}{}
	}

	categories := make(map[string]types.SkillCategoryMatch, len(skillCategories))
	for _, cat := range skillCategories {
		matched := []string{}
		for _, skill := range cat.Skills {
			if _, ok := userSkills[skill]; ok {
				matched = append(matched, skill)
			}
		}
		categories[cat.Name] = types.SkillCategoryMatch{
			Matched:    matched,
			Count:      len(matched),
			Percentage: float64(len(matched)) / float64(len(cat.Skills)) * 100,
		}
	}

	totalMatched := 0
	for _, cat := range skillCategories {
		totalMatched += categories[cat.Name].Count
	}
	total := len(p.skills)
	matchScore := float64(totalMatched) / float64(total) * 100 * matchScoreBoost
	if matchScore > 100 {
		matchScore = 100
	}

	strengths := []string{}
	if categories[CategoryProgrammingLanguages].Count > strongProgrammingCount {
		strengths = append(strengths, "Strong programming background")
	}
	if categories[CategoryWebTechnologies].Count > strongWebCount {
		strengths = append(strengths, "Comprehensive web development skills")
	}
	if categories[CategoryCloudPlatforms].Count > 0 {
		strengths = append(strengths, "Cloud platform experience")
	}

	suggestions := []string{}
	if categories[CategoryAIML].Count == 0 {
		suggestions = append(suggestions, "Consider learning AI/ML technologies")
	}
	if categories[CategoryCloudPlatforms].Count == 0 {
		suggestions = append(suggestions, "Add cloud platform experience")
	}
	if len(profile.Projects) < minProjectCount {
		suggestions = append(suggestions, "Include more project examples")
	}

	missing := []string{}
	if targetRole != "" {
		for _, skill := range roleSkillsFor(targetRole) {
			if _, ok := userSkills[skill]; !ok {
				missing = append(missing, skill)
			}
		}
	}

	return types.ResumeInsights{
		Strengths:       strengths,
		Weaknesses:      []string{},
		Suggestions:     suggestions,
		MatchScore:      matchScore,
		MissingSkills:   missing,
		SkillCategories: categories,
	}
}
