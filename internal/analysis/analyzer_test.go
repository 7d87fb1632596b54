package analysis

import (
	"context"
	"math"
	"strings"
	"testing"

	"prepmatter/internal/config"
	"prepmatter/internal/nlp"
	"prepmatter/internal/types"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	svc, err := nlp.NewService(&config.NLPConfig{Provider: "heuristic"}, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return NewAnalyzer(svc, nil)
}

func TestAnalyzeInsufficientAnswer(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name   string
		answer string
	}{
		{name: "empty answer", answer: ""},
		{name: "whitespace only", answer: "    \n\t  "},
		{name: "under ten characters", answer: "yes, ok"},
		{name: "padding does not count", answer: "   short    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(context.Background(), types.AnalyzeAnswerInput{
				Question: "Tell me about yourself",
				Answer:   tt.answer,
				Category: "general",
			})
			if !got.Insufficient {
				t.Fatal("Insufficient = false, want true")
			}
			if got.Scores != (types.ScoreSet{}) {
				t.Errorf("Scores = %+v, want all zero", got.Scores)
			}
			if got.Content.WordCount != 0 {
				t.Errorf("WordCount = %d, want 0", got.Content.WordCount)
			}
		})
	}
}

func TestAnalyzeContentRelevance(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name      string
		question  string
		answer    string
		relevance float64
	}{
		{
			name:      "full overlap",
			question:  "describe your project",
			answer:    "I describe your project here in detail for you",
			relevance: 100,
		},
		{
			name:      "no overlap",
			question:  "explain microservices",
			answer:    "I enjoy hiking and photography on weekends always",
			relevance: 0,
		},
		{
			name:      "partial overlap",
			question:  "what is a database index",
			answer:    "An index speeds up lookups in a database table structure",
			relevance: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.analyzeContent(tt.answer, tt.question)
			if got.RelevanceScore != tt.relevance {
				t.Errorf("RelevanceScore = %v, want %v", got.RelevanceScore, tt.relevance)
			}
		})
	}
}

func TestAnalyzeContentDepthAndExamples(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	answer := "I chose this because it scales. For example, caching helped. However, such as cases vary. Therefore we measured. Additionally we tested. Furthermore we documented."
	got := analyzer.analyzeContent(answer, "why")
	// All seven depth indicators appear
	if got.DepthScore != 70 {
		t.Errorf("DepthScore = %v, want 70", got.DepthScore)
	}
	if !got.HasExamples {
		t.Error("HasExamples = false, want true")
	}
}

func TestAnalyzeTechnical(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name      string
		answer    string
		jobRole   string
		roleScore float64
		overall   float64
		hasCode   bool
	}{
		{
			name:      "no technical content",
			answer:    "I like working with people",
			jobRole:   "software engineer",
			roleScore: 0,
			overall:   0,
		},
		{
			name:      "role terms for software engineer",
			answer:    "I used an algorithm with a data structure behind an api",
			jobRole:   "Senior Software Engineer",
			roleScore: 45,
			// "structure" also hits the architecture keyword group
			overall: 4,
			hasCode: true,
		},
		{
			name:      "unknown role falls back to generic terms",
			answer:    "the system needed a solution and an implementation",
			jobRole:   "product manager",
			roleScore: 45,
			overall:   0,
		},
		{
			name:      "keyword groups averaged",
			answer:    "good design and architecture with testing and debugging in the team review",
			jobRole:   "",
			roleScore: 0,
			// architecture 40, testing 60 (test matches inside testing),
			// collaboration 40, others 0
			overall: 28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.analyzeTechnical(tt.answer, tt.jobRole)
			if got.RoleTechnicalScore != tt.roleScore {
				t.Errorf("RoleTechnicalScore = %v, want %v", got.RoleTechnicalScore, tt.roleScore)
			}
			if got.OverallTechnicalScore != tt.overall {
				t.Errorf("OverallTechnicalScore = %v, want %v", got.OverallTechnicalScore, tt.overall)
			}
			if got.HasCodeExample != tt.hasCode {
				t.Errorf("HasCodeExample = %v, want %v", got.HasCodeExample, tt.hasCode)
			}
		})
	}
}

func TestAnalyzeStructure(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	fullSTAR := "The situation was a slow release pipeline and my task was clear. " +
		"First I implemented a fix, then the result improved. In conclusion it was successful."

	tests := []struct {
		name     string
		answer   string
		category types.QuestionCategory
		want     float64
	}{
		{
			name:     "behavioral with every signal can pass one hundred",
			answer:   fullSTAR,
			category: types.CategoryBehavioral,
			want:     150,
		},
		{
			name:     "technical answers skip STAR scoring",
			answer:   fullSTAR,
			category: types.CategoryTechnical,
			want:     50,
		},
		{
			name:     "no dot means no introduction",
			answer:   "a long answer without any period at all still has first as flow",
			category: types.CategoryGeneral,
			want:     25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.analyzeStructure(tt.answer, tt.category)
			if got.StructureScore != tt.want {
				t.Errorf("StructureScore = %v, want %v", got.StructureScore, tt.want)
			}
		})
	}
}

func TestAnalyzeConfidence(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name   string
		answer string
		want   float64
		hedges int
	}{
		{
			name:   "neutral baseline",
			answer: "we shipped the release on schedule",
			want:   50,
		},
		{
			name:   "assertive wording raises the score",
			answer: "I am confident and absolutely sure this is definitely right",
			want:   100,
		},
		{
			name:   "hedging drags the score down",
			answer: "i think it might be right, maybe, i guess, sort of unsure",
			// low: maybe, might, unsure, think, guess = 5; hedges: i think, maybe, sort of = 3
			want:   0,
			hedges: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.analyzeConfidence(context.Background(), tt.answer)
			if got.ConfidenceScore != tt.want {
				t.Errorf("ConfidenceScore = %v, want %v", got.ConfidenceScore, tt.want)
			}
			if got.HedgeWordCount != tt.hedges {
				t.Errorf("HedgeWordCount = %d, want %d", got.HedgeWordCount, tt.hedges)
			}
			if got.SentimentScore != 50 {
				t.Errorf("SentimentScore = %v, want neutral 50", got.SentimentScore)
			}
		})
	}
}

func TestAnalyzeCompleteness(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name     string
		answer   string
		question string
		category types.QuestionCategory
		length   float64
	}{
		{
			name:     "below minimum scales toward seventy",
			answer:   words(50),
			question: "explain caching?",
			category: types.CategoryTechnical,
			length:   35,
		},
		{
			name:     "at band minimum scores full marks",
			answer:   words(100),
			question: "explain caching?",
			category: types.CategoryTechnical,
			length:   100,
		},
		{
			name:     "over maximum decays but floors at seventy",
			answer:   words(800),
			question: "explain caching?",
			category: types.CategoryTechnical,
			length:   70,
		},
		{
			name:     "unknown category uses the default band",
			answer:   words(100),
			question: "tell me?",
			category: types.QuestionCategory("puzzle"),
			length:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.analyzeCompleteness(tt.answer, tt.question, tt.category)
			if got.LengthScore != tt.length {
				t.Errorf("LengthScore = %v, want %v", got.LengthScore, tt.length)
			}
		})
	}
}

func TestQuestionPartsHeuristic(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// Two question marks plus one "and" makes three parts; a two-sentence
	// answer cannot address them all.
	got := analyzer.analyzeCompleteness(
		"Yes. No",
		"What is REST? What is SOAP? Compare them and contrast",
		types.CategoryGeneral,
	)
	if got.AddressesAllParts {
		t.Error("AddressesAllParts = true, want false")
	}

	got = analyzer.analyzeCompleteness(
		"REST is stateless. SOAP is not. They differ. Greatly",
		"What is REST? What is SOAP? Compare them and contrast",
		types.CategoryGeneral,
	)
	if !got.AddressesAllParts {
		t.Error("AddressesAllParts = false, want true")
	}
}

func TestAggregate(t *testing.T) {
	a := &types.AnswerAnalysis{
		Content:      types.ContentAnalysis{RelevanceScore: 80, DepthScore: 40},
		Linguistic:   types.LinguisticAnalysis{ReadabilityScore: 60},
		Technical:    types.TechnicalAnalysis{OverallTechnicalScore: 40},
		Structure:    types.StructureAnalysis{StructureScore: 50},
		Confidence:   types.ConfidenceAnalysis{ConfidenceScore: 70},
		Completeness: types.CompletenessAnalysis{CompletenessScore: 90},
	}

	got := Aggregate(a)
	if got.ContentScore != 60 {
		t.Errorf("ContentScore = %v, want 60", got.ContentScore)
	}
	// 60*.25 + 40*.25 + 50*.20 + 70*.15 + 90*.15 = 59
	if math.Abs(got.OverallScore-59) > 1e-9 {
		t.Errorf("OverallScore = %v, want 59", got.OverallScore)
	}
	if got.CommunicationScore != 65 {
		t.Errorf("CommunicationScore = %v, want 65", got.CommunicationScore)
	}
}

func TestAggregateClampsOnlyOverall(t *testing.T) {
	a := &types.AnswerAnalysis{
		Content:      types.ContentAnalysis{RelevanceScore: 100, DepthScore: 100},
		Linguistic:   types.LinguisticAnalysis{ReadabilityScore: 100},
		Technical:    types.TechnicalAnalysis{OverallTechnicalScore: 100},
		Structure:    types.StructureAnalysis{StructureScore: 150},
		Confidence:   types.ConfidenceAnalysis{ConfidenceScore: 100},
		Completeness: types.CompletenessAnalysis{CompletenessScore: 100},
	}

	got := Aggregate(a)
	if got.StructureScore != 150 {
		t.Errorf("StructureScore = %v, want passthrough 150", got.StructureScore)
	}
	if got.OverallScore != 100 {
		t.Errorf("OverallScore = %v, want clamped 100", got.OverallScore)
	}
}

func TestReadabilityDefaults(t *testing.T) {
	ease, grade := readabilityScores("")
	if ease != defaultReadability {
		t.Errorf("ease = %v, want default %v", ease, defaultReadability)
	}
	if grade != defaultGradeLevel {
		t.Errorf("grade = %v, want default %v", grade, defaultGradeLevel)
	}
}
