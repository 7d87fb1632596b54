package feedback

import (
	"fmt"

	"prepmatter/internal/types"
)

// Performance bands for interview-level recommendations
const (
	excellentMin    = 80.0
	goodMin         = 70.0
	satisfactoryMin = 60.0

	maxSummaryItems = 5
)

// SummarizeInterview aggregates per-question feedback into one session
// summary. Questions without feedback count toward the total but not the
// averages.
func (s *Synthesizer) SummarizeInterview(input types.InterviewSummaryInput) types.InterviewSummary {
	var answered []types.AnsweredQuestion
	for _, q := range input.Questions {
		if q.Feedback != nil {
			answered = append(answered, q)
		}
	}

	if len(answered) == 0 {
		return types.InterviewSummary{
			Summary:             incompleteInterviewText,
			Strengths:           []string{},
			AreasForImprovement: []string{},
			Recommendations:     []string{},
			TotalQuestions:      len(input.Questions),
		}
	}

	var scoreSum, technicalSum, communicationSum, confidenceSum float64
	var allStrengths, allImprovements []string
	for _, q := range answered {
		scoreSum += float64(q.Feedback.Score)
		technicalSum += float64(q.Feedback.TechnicalAccuracy)
		communicationSum += float64(q.Feedback.Communication)
		confidenceSum += float64(q.Feedback.Confidence)
		allStrengths = append(allStrengths, q.Feedback.Strengths...)
		allImprovements = append(allImprovements, q.Feedback.Improvements...)
	}

	n := float64(len(answered))
	avgScore := scoreSum / n
	avgTechnical := technicalSum / n
	avgCommunication := communicationSum / n
	avgConfidence := confidenceSum / n

	return types.InterviewSummary{
		Summary:             summaryText(len(answered), len(input.Questions), avgScore),
		OverallScore:        int(avgScore),
		TechnicalScore:      int(avgTechnical),
		CommunicationScore:  int(avgCommunication),
		ConfidenceScore:     int(avgConfidence),
		Strengths:           dedupe(allStrengths, maxSummaryItems),
		AreasForImprovement: dedupe(allImprovements, maxSummaryItems),
		Recommendations:     interviewRecommendations(avgScore, avgTechnical, avgCommunication),
		QuestionsAnswered:   len(answered),
		TotalQuestions:      len(input.Questions),
	}
}

func interviewRecommendations(avgScore, avgTechnical, avgCommunication float64) []string {
	var recommendations []string

	switch {
	case avgScore >= excellentMin:
		recommendations = append(recommendations, "Excellent performance! You're well-prepared for interviews at this level.")
	case avgScore >= goodMin:
		recommendations = append(recommendations, "Good performance with room for improvement in specific areas.")
	case avgScore >= satisfactoryMin:
		recommendations = append(recommendations, "Solid foundation but focus on strengthening weaker areas.")
	default:
		recommendations = append(recommendations, "Significant improvement needed. Consider more practice and preparation.")
	}

	if avgTechnical < suggestTechnicalMax {
		recommendations = append(recommendations, "Focus on strengthening technical knowledge and practice coding problems.")
	}
	if avgCommunication < suggestCommunicateMax {
		recommendations = append(recommendations, "Work on communication skills and practice explaining concepts clearly.")
	}

	return append(recommendations, mockInterviewAdvice)
}

func summaryText(answered, total int, avgScore float64) string {
	completionRate := 0.0
	if total > 0 {
		completionRate = float64(answered) / float64(total) * 100
	}

	var performance string
	switch {
	case avgScore >= excellentMin:
		performance = "excellent"
	case avgScore >= goodMin:
		performance = "good"
	case avgScore >= satisfactoryMin:
		performance = "satisfactory"
	default:
		performance = "needs improvement"
	}

	return fmt.Sprintf(
		"You completed %d out of %d questions (%.0f%% completion rate) with an average score of %.0f%%. "+
			"Your overall performance was %s. "+
			"Focus on the improvement areas identified to enhance your interview skills.",
		answered, total, completionRate, avgScore, performance)
}

// dedupe keeps the first occurrence of each item, preserving input order
func dedupe(items []string, max int) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
		if len(unique) == max {
			break
		}
	}
	return unique
}
