package analysis

import (
	"strings"

	"prepmatter/internal/types"
)

// RoleVocabulary pairs a role key with its characteristic technical terms.
// Role keys are matched in declaration order so lookups stay deterministic.
type RoleVocabulary struct {
	Role  string
	Terms []string
}

// LengthBand is the expected word-count range for a question category
type LengthBand struct {
	Min int
	Max int
}

// Lexicon holds the static keyword and phrase tables the scorers consult.
// A Lexicon is immutable after construction and safe for concurrent use.
type Lexicon struct {
	DepthIndicators  []string
	ExamplePhrases   []string
	HighConfidence   []string
	LowConfidence    []string
	HedgePhrases     []string
	TechnicalGroups  map[string][]string
	RoleTerms        []RoleVocabulary
	DefaultRoleTerms []string
	CodeIndicators   []string
	STARIndicators   map[string][]string
	FlowIndicators   []string
	ConclusionHints  []string
	LengthBands      map[types.QuestionCategory]LengthBand
	DefaultBand      LengthBand
}

// NewLexicon returns the built-in lexicon used by the answer analyzer
func NewLexicon() *Lexicon {
	return &Lexicon{
		DepthIndicators: []string{
			"because", "therefore", "however", "additionally",
			"furthermore", "for example", "such as",
		},
		ExamplePhrases: []string{
			"for example", "such as", "like when", "instance",
		},
		HighConfidence: []string{
			"confident", "certain", "definitely", "absolutely", "sure", "positive",
		},
		LowConfidence: []string{
			"maybe", "perhaps", "might", "possibly", "unsure", "think", "guess",
		},
		HedgePhrases: []string{
			"kind of", "sort of", "i think", "i believe", "probably", "maybe",
		},
		TechnicalGroups: map[string][]string{
			"architecture":  {"design", "architecture", "pattern", "structure", "framework"},
			"performance":   {"optimize", "performance", "speed", "efficient", "scalable"},
			"security":      {"security", "authentication", "authorization", "encryption", "vulnerability"},
			"testing":       {"test", "testing", "unit test", "integration", "debugging"},
			"collaboration": {"team", "collaborate", "communication", "meeting", "review"},
		},
		RoleTerms: []RoleVocabulary{
			{Role: "software engineer", Terms: []string{"algorithm", "data structure", "api", "framework", "library", "debugging"}},
			{Role: "frontend developer", Terms: []string{"responsive", "dom", "css", "javascript", "react", "vue", "angular"}},
			{Role: "backend developer", Terms: []string{"database", "server", "api", "microservices", "authentication", "caching"}},
			{Role: "data scientist", Terms: []string{"model", "dataset", "analysis", "statistics", "machine learning", "visualization"}},
			{Role: "devops engineer", Terms: []string{"deployment", "infrastructure", "monitoring", "automation", "pipeline", "container"}},
		},
		DefaultRoleTerms: []string{
			"technology", "system", "solution", "implementation", "development",
		},
		CodeIndicators: []string{
			"function", "class", "method", "algorithm", "data structure", "database",
		},
		STARIndicators: map[string][]string{
			"situation": {"situation", "context", "background", "when", "where"},
			"task":      {"task", "responsibility", "goal", "objective", "needed to"},
			"action":    {"action", "did", "implemented", "developed", "created", "decided"},
			"result":    {"result", "outcome", "achieved", "improved", "increased", "successful"},
		},
		FlowIndicators: []string{
			"first", "then", "next", "finally", "in conclusion", "therefore",
		},
		ConclusionHints: []string{
			"in conclusion", "to summarize", "overall", "in summary",
		},
		LengthBands: map[types.QuestionCategory]LengthBand{
			types.CategoryTechnical:   {Min: 100, Max: 300},
			types.CategoryBehavioral:  {Min: 150, Max: 400},
			types.CategorySituational: {Min: 100, Max: 250},
			types.CategoryGeneral:     {Min: 50, Max: 200},
		},
		DefaultBand: LengthBand{Min: 100, Max: 250},
	}
}

// RoleTermsFor returns the technical vocabulary for a job role. The role is
// matched by substring against known role keys; unknown roles fall back to
// the generic term list.
func (l *Lexicon) RoleTermsFor(jobRole string) []string {
	roleLower := strings.ToLower(jobRole)
	for _, rv := range l.RoleTerms {
		if strings.Contains(roleLower, rv.Role) {
			return rv.Terms
		}
	}
	return l.DefaultRoleTerms
}

// BandFor returns the expected length band for a category
func (l *Lexicon) BandFor(category types.QuestionCategory) LengthBand {
	if band, ok := l.LengthBands[category]; ok {
		return band
	}
	return l.DefaultBand
}
