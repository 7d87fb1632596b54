package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"prepmatter/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnswerFeedback", &FeedbackTextFormatter{})
	registry.RegisterFormatter("markdown", "AnswerFeedback", &FeedbackMarkdownFormatter{})
	registry.RegisterFormatter("text", "QuestionSet", &QuestionSetTextFormatter{})
	registry.RegisterFormatter("markdown", "QuestionSet", &QuestionSetMarkdownFormatter{})
	registry.RegisterFormatter("text", "ResumeProfile", &ResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeProfile", &ResumeMarkdownFormatter{})
	registry.RegisterFormatter("text", "ResumeInsights", &InsightsTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeInsights", &InsightsMarkdownFormatter{})
	registry.RegisterFormatter("text", "InterviewSummary", &SummaryTextFormatter{})
	registry.RegisterFormatter("markdown", "InterviewSummary", &SummaryMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnswerFeedback:
		return "AnswerFeedback"
	case types.QuestionSet:
		return "QuestionSet"
	case types.ResumeProfile:
		return "ResumeProfile"
	case types.ResumeInsights:
		return "ResumeInsights"
	case types.InterviewSummary:
		return "InterviewSummary"
	default:
		return "any"
	}
}

func writeBulletList(output *strings.Builder, items []string) {
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// FeedbackTextFormatter handles text formatting for answer feedback
type FeedbackTextFormatter struct{}

func (ftf *FeedbackTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnswerFeedback)
	if !ok {
		return "", fmt.Errorf("expected AnswerFeedback, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ANSWER FEEDBACK ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Technical Accuracy: %d/100\n", result.TechnicalAccuracy))
	output.WriteString(fmt.Sprintf("Communication: %d/100\n", result.Communication))
	output.WriteString(fmt.Sprintf("Confidence: %d/100\n\n", result.Confidence))

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Improvements) > 0 {
		output.WriteString("Areas for Improvement:\n")
		for _, improvement := range result.Improvements {
			output.WriteString(fmt.Sprintf("- %s\n", improvement))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for _, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== DETAILED SCORES ===\n")
	output.WriteString(fmt.Sprintf("Content: %d/100\n", result.DetailedScores.Content))
	output.WriteString(fmt.Sprintf("Technical: %d/100\n", result.DetailedScores.Technical))
	output.WriteString(fmt.Sprintf("Structure: %d\n", result.DetailedScores.Structure))
	output.WriteString(fmt.Sprintf("Completeness: %d/100\n", result.DetailedScores.Completeness))

	return output.String(), nil
}

func (ftf *FeedbackTextFormatter) SupportedType() string {
	return "AnswerFeedback"
}

// FeedbackMarkdownFormatter handles markdown formatting for answer feedback
type FeedbackMarkdownFormatter struct{}

func (fmf *FeedbackMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnswerFeedback)
	if !ok {
		return "", fmt.Errorf("expected AnswerFeedback, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Answer Feedback\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.Score))
	output.WriteString(fmt.Sprintf("**Technical Accuracy:** %d/100\n", result.TechnicalAccuracy))
	output.WriteString(fmt.Sprintf("**Communication:** %d/100\n", result.Communication))
	output.WriteString(fmt.Sprintf("**Confidence:** %d/100\n\n", result.Confidence))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		writeBulletList(&output, result.Strengths)
	}

	if len(result.Improvements) > 0 {
		output.WriteString("## Areas for Improvement\n\n")
		writeBulletList(&output, result.Improvements)
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		writeBulletList(&output, result.Suggestions)
	}

	output.WriteString("## Detailed Scores\n\n")
	output.WriteString("| Dimension | Score |\n")
	output.WriteString("|-----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Content | %d |\n", result.DetailedScores.Content))
	output.WriteString(fmt.Sprintf("| Technical | %d |\n", result.DetailedScores.Technical))
	output.WriteString(fmt.Sprintf("| Structure | %d |\n", result.DetailedScores.Structure))
	output.WriteString(fmt.Sprintf("| Completeness | %d |\n", result.DetailedScores.Completeness))

	return output.String(), nil
}

func (fmf *FeedbackMarkdownFormatter) SupportedType() string {
	return "AnswerFeedback"
}

// QuestionSetTextFormatter handles text formatting for generated question sets
type QuestionSetTextFormatter struct{}

func (qtf *QuestionSetTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.QuestionSet)
	if !ok {
		return "", fmt.Errorf("expected QuestionSet, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW QUESTIONS ===\n\n")
	output.WriteString(fmt.Sprintf("Role: %s\n", result.JobRole))
	output.WriteString(fmt.Sprintf("Difficulty: %s\n\n", result.Difficulty))

	for i, q := range result.Questions {
		output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, q.Category, q.Question))
		if q.Skill != "" {
			output.WriteString(fmt.Sprintf("   Skill: %s\n", q.Skill))
		}
		if q.ExpectedAnswer != "" {
			output.WriteString(fmt.Sprintf("   Expected: %s\n", q.ExpectedAnswer))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (qtf *QuestionSetTextFormatter) SupportedType() string {
	return "QuestionSet"
}

// QuestionSetMarkdownFormatter handles markdown formatting for generated question sets
type QuestionSetMarkdownFormatter struct{}

func (qmf *QuestionSetMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.QuestionSet)
	if !ok {
		return "", fmt.Errorf("expected QuestionSet, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Questions\n\n")
	output.WriteString(fmt.Sprintf("**Role:** %s\n", result.JobRole))
	output.WriteString(fmt.Sprintf("**Difficulty:** %s\n\n", result.Difficulty))

	for i, q := range result.Questions {
		output.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, q.Question))
		output.WriteString(fmt.Sprintf("**Category:** %s\n", q.Category))
		output.WriteString(fmt.Sprintf("**Difficulty:** %s\n", q.Difficulty))
		if q.Skill != "" {
			output.WriteString(fmt.Sprintf("**Skill:** %s\n", q.Skill))
		}
		if q.ExpectedAnswer != "" {
			output.WriteString(fmt.Sprintf("**Expected Answer:** %s\n", q.ExpectedAnswer))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (qmf *QuestionSetMarkdownFormatter) SupportedType() string {
	return "QuestionSet"
}

// ResumeTextFormatter handles text formatting for parsed resumes
type ResumeTextFormatter struct{}

func (rtf *ResumeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeProfile)
	if !ok {
		return "", fmt.Errorf("expected ResumeProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PARSED RESUME ===\n\n")

	if result.Summary != "" {
		output.WriteString("Summary:\n")
		output.WriteString(result.Summary)
		output.WriteString("\n\n")
	}

	if result.Contact.Email != "" || result.Contact.Phone != "" || result.Contact.LinkedIn != "" {
		output.WriteString("Contact:\n")
		if result.Contact.Email != "" {
			output.WriteString(fmt.Sprintf("  Email: %s\n", result.Contact.Email))
		}
		if result.Contact.Phone != "" {
			output.WriteString(fmt.Sprintf("  Phone: %s\n", result.Contact.Phone))
		}
		if result.Contact.LinkedIn != "" {
			output.WriteString(fmt.Sprintf("  LinkedIn: %s\n", result.Contact.LinkedIn))
		}
		output.WriteString("\n")
	}

	if len(result.Skills) > 0 {
		output.WriteString("Skills:\n")
		output.WriteString("  " + strings.Join(result.Skills, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Experience) > 0 {
		output.WriteString("Experience:\n")
		for _, entry := range result.Experience {
			output.WriteString(fmt.Sprintf("- %s\n", entry))
		}
		output.WriteString("\n")
	}

	if len(result.Education) > 0 {
		output.WriteString("Education:\n")
		for _, entry := range result.Education {
			output.WriteString(fmt.Sprintf("- %s\n", entry))
		}
		output.WriteString("\n")
	}

	if len(result.Projects) > 0 {
		output.WriteString("Projects:\n")
		for _, entry := range result.Projects {
			output.WriteString(fmt.Sprintf("- %s\n", entry))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *ResumeTextFormatter) SupportedType() string {
	return "ResumeProfile"
}

// ResumeMarkdownFormatter handles markdown formatting for parsed resumes
type ResumeMarkdownFormatter struct{}

func (rmf *ResumeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeProfile)
	if !ok {
		return "", fmt.Errorf("expected ResumeProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Parsed Resume\n\n")

	if result.Summary != "" {
		output.WriteString("## Summary\n\n")
		output.WriteString(result.Summary)
		output.WriteString("\n\n")
	}

	if result.Contact.Email != "" || result.Contact.Phone != "" || result.Contact.LinkedIn != "" {
		output.WriteString("## Contact\n\n")
		if result.Contact.Email != "" {
			output.WriteString(fmt.Sprintf("- **Email:** %s\n", result.Contact.Email))
		}
		if result.Contact.Phone != "" {
			output.WriteString(fmt.Sprintf("- **Phone:** %s\n", result.Contact.Phone))
		}
		if result.Contact.LinkedIn != "" {
			output.WriteString(fmt.Sprintf("- **LinkedIn:** %s\n", result.Contact.LinkedIn))
		}
		output.WriteString("\n")
	}

	if len(result.Skills) > 0 {
		output.WriteString("## Skills\n\n")
		writeBulletList(&output, result.Skills)
	}

	if len(result.Experience) > 0 {
		output.WriteString("## Experience\n\n")
		writeBulletList(&output, result.Experience)
	}

	if len(result.Education) > 0 {
		output.WriteString("## Education\n\n")
		writeBulletList(&output, result.Education)
	}

	if len(result.Projects) > 0 {
		output.WriteString("## Projects\n\n")
		writeBulletList(&output, result.Projects)
	}

	return output.String(), nil
}

func (rmf *ResumeMarkdownFormatter) SupportedType() string {
	return "ResumeProfile"
}

// InsightsTextFormatter handles text formatting for resume insights
type InsightsTextFormatter struct{}

func (itf *InsightsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeInsights)
	if !ok {
		return "", fmt.Errorf("expected ResumeInsights, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME INSIGHTS ===\n\n")
	output.WriteString(fmt.Sprintf("Match Score: %.0f/100\n\n", result.MatchScore))

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for _, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		output.WriteString("  " + strings.Join(result.MissingSkills, ", "))
		output.WriteString("\n\n")
	}

	if len(result.SkillCategories) > 0 {
		output.WriteString("Skill Coverage:\n")
		for _, category := range skillCategoryOrder {
			match, exists := result.SkillCategories[category]
			if !exists {
				continue
			}
			output.WriteString(fmt.Sprintf("  %s: %d matched (%.0f%%)\n",
				category, match.Count, match.Percentage))
		}
	}

	return output.String(), nil
}

func (itf *InsightsTextFormatter) SupportedType() string {
	return "ResumeInsights"
}

// Display order for skill categories in text and markdown output.
var skillCategoryOrder = []string{
	"programming_languages", "web_technologies", "databases",
	"cloud_platforms", "tools", "ai_ml",
}

// InsightsMarkdownFormatter handles markdown formatting for resume insights
type InsightsMarkdownFormatter struct{}

func (imf *InsightsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeInsights)
	if !ok {
		return "", fmt.Errorf("expected ResumeInsights, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Insights\n\n")
	output.WriteString(fmt.Sprintf("**Match Score:** %.0f/100\n\n", result.MatchScore))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		writeBulletList(&output, result.Strengths)
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		writeBulletList(&output, result.Suggestions)
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		writeBulletList(&output, result.MissingSkills)
	}

	if len(result.SkillCategories) > 0 {
		output.WriteString("## Skill Coverage\n\n")
		output.WriteString("| Category | Matched | Coverage |\n")
		output.WriteString("|----------|---------|----------|\n")
		for _, category := range skillCategoryOrder {
			match, exists := result.SkillCategories[category]
			if !exists {
				continue
			}
			output.WriteString(fmt.Sprintf("| %s | %d | %.0f%% |\n",
				category, match.Count, match.Percentage))
		}
	}

	return output.String(), nil
}

func (imf *InsightsMarkdownFormatter) SupportedType() string {
	return "ResumeInsights"
}

// SummaryTextFormatter handles text formatting for interview summaries
type SummaryTextFormatter struct{}

func (stf *SummaryTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.InterviewSummary)
	if !ok {
		return "", fmt.Errorf("expected InterviewSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW SUMMARY ===\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("Technical: %d/100\n", result.TechnicalScore))
	output.WriteString(fmt.Sprintf("Communication: %d/100\n", result.CommunicationScore))
	output.WriteString(fmt.Sprintf("Confidence: %d/100\n", result.ConfidenceScore))
	output.WriteString(fmt.Sprintf("Questions Answered: %d/%d\n\n",
		result.QuestionsAnswered, result.TotalQuestions))

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.AreasForImprovement) > 0 {
		output.WriteString("Areas for Improvement:\n")
		for _, area := range result.AreasForImprovement {
			output.WriteString(fmt.Sprintf("- %s\n", area))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	return output.String(), nil
}

func (stf *SummaryTextFormatter) SupportedType() string {
	return "InterviewSummary"
}

// SummaryMarkdownFormatter handles markdown formatting for interview summaries
type SummaryMarkdownFormatter struct{}

func (smf *SummaryMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.InterviewSummary)
	if !ok {
		return "", fmt.Errorf("expected InterviewSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("## Scores\n\n")
	output.WriteString("| Dimension | Score |\n")
	output.WriteString("|-----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Overall | %d |\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("| Technical | %d |\n", result.TechnicalScore))
	output.WriteString(fmt.Sprintf("| Communication | %d |\n", result.CommunicationScore))
	output.WriteString(fmt.Sprintf("| Confidence | %d |\n\n", result.ConfidenceScore))

	output.WriteString(fmt.Sprintf("**Questions Answered:** %d/%d\n\n",
		result.QuestionsAnswered, result.TotalQuestions))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		writeBulletList(&output, result.Strengths)
	}

	if len(result.AreasForImprovement) > 0 {
		output.WriteString("## Areas for Improvement\n\n")
		writeBulletList(&output, result.AreasForImprovement)
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	return output.String(), nil
}

func (smf *SummaryMarkdownFormatter) SupportedType() string {
	return "InterviewSummary"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
