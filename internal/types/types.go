package types

// QuestionCategory identifies the kind of interview question being asked
type QuestionCategory string

const (
	CategoryTechnical   QuestionCategory = "technical"
	CategoryBehavioral  QuestionCategory = "behavioral"
	CategorySituational QuestionCategory = "situational"
	CategoryGeneral     QuestionCategory = "general"
)

// ParseCategory normalizes a category string, falling back to general for
// unknown values rather than failing
func ParseCategory(s string) QuestionCategory {
	switch QuestionCategory(s) {
	case CategoryTechnical, CategoryBehavioral, CategorySituational, CategoryGeneral:
		return QuestionCategory(s)
	default:
		return CategoryGeneral
	}
}

// AnalyzeAnswerInput represents the input for analyzing an interview answer
type AnalyzeAnswerInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	JobRole  string `json:"jobRole"`
}

// WordTypeCounts holds part-of-speech tallies for an answer
type WordTypeCounts struct {
	Nouns      int `json:"nouns"`
	Verbs      int `json:"verbs"`
	Adjectives int `json:"adjectives"`
}

// STARComponents records which STAR elements were detected in a behavioral answer
type STARComponents struct {
	Situation bool `json:"situation"`
	Task      bool `json:"task"`
	Action    bool `json:"action"`
	Result    bool `json:"result"`
}

// ContentAnalysis holds content relevance and depth signals
type ContentAnalysis struct {
	WordCount      int     `json:"wordCount"`
	SentenceCount  int     `json:"sentenceCount"`
	RelevanceScore float64 `json:"relevanceScore"`
	DepthScore     float64 `json:"depthScore"`
	HasExamples    bool    `json:"hasExamples"`
}

// LinguisticAnalysis holds readability and vocabulary signals
type LinguisticAnalysis struct {
	ReadabilityScore    float64        `json:"readabilityScore"`
	GradeLevel          float64        `json:"gradeLevel"`
	AvgSentenceLength   float64        `json:"avgSentenceLength"`
	VocabularyDiversity float64        `json:"vocabularyDiversity"`
	WordTypes           WordTypeCounts `json:"wordTypes"`
}

// TechnicalAnalysis holds technical-depth signals
type TechnicalAnalysis struct {
	TechnicalCategories   map[string]float64 `json:"technicalCategories"`
	RoleTechnicalScore    float64            `json:"roleTechnicalScore"`
	HasCodeExample        bool               `json:"hasCodeExample"`
	OverallTechnicalScore float64            `json:"overallTechnicalScore"`
}

// StructureAnalysis holds answer organization signals
type StructureAnalysis struct {
	STARScore       float64        `json:"starScore"`
	STARComponents  STARComponents `json:"starComponents"`
	HasLogicalFlow  bool           `json:"hasLogicalFlow"`
	HasIntroduction bool           `json:"hasIntroduction"`
	HasConclusion   bool           `json:"hasConclusion"`
	StructureScore  float64        `json:"structureScore"`
}

// ConfidenceAnalysis holds confidence and sentiment signals
type ConfidenceAnalysis struct {
	ConfidenceScore          float64 `json:"confidenceScore"`
	HighConfidenceIndicators int     `json:"highConfidenceIndicators"`
	LowConfidenceIndicators  int     `json:"lowConfidenceIndicators"`
	HedgeWordCount           int     `json:"hedgeWordCount"`
	SentimentScore           float64 `json:"sentimentScore"`
}

// CompletenessAnalysis holds answer completeness signals
type CompletenessAnalysis struct {
	WordCount         int     `json:"wordCount"`
	LengthScore       float64 `json:"lengthScore"`
	AddressesAllParts bool    `json:"addressesAllParts"`
	CompletenessScore float64 `json:"completenessScore"`
}

// ScoreSet holds the five weighted sub-scores plus derived composites.
// All fields are in [0,100] except StructureScore, which the structure
// formula can push above 100; only OverallScore is clamped.
type ScoreSet struct {
	OverallScore       float64 `json:"overallScore"`
	ContentScore       float64 `json:"contentScore"`
	TechnicalScore     float64 `json:"technicalScore"`
	StructureScore     float64 `json:"structureScore"`
	ConfidenceScore    float64 `json:"confidenceScore"`
	CompletenessScore  float64 `json:"completenessScore"`
	CommunicationScore float64 `json:"communicationScore"`
}

// AnswerAnalysis is the full per-answer analysis produced by the analyzer
type AnswerAnalysis struct {
	Content      ContentAnalysis      `json:"contentAnalysis"`
	Linguistic   LinguisticAnalysis   `json:"linguisticAnalysis"`
	Technical    TechnicalAnalysis    `json:"technicalAnalysis"`
	Structure    StructureAnalysis    `json:"structureAnalysis"`
	Confidence   ConfidenceAnalysis   `json:"confidenceAnalysis"`
	Completeness CompletenessAnalysis `json:"completenessAnalysis"`
	Scores       ScoreSet             `json:"scores"`
	Insufficient bool                 `json:"insufficient"`
}

// DetailedScores holds per-dimension integer scores reported with feedback
type DetailedScores struct {
	Content      int `json:"content"`
	Technical    int `json:"technical"`
	Structure    int `json:"structure"`
	Completeness int `json:"completeness"`
}

// AnswerFeedback is the templated feedback packet derived from an analysis
type AnswerFeedback struct {
	Score             int            `json:"score"`
	Strengths         []string       `json:"strengths"`
	Improvements      []string       `json:"improvements"`
	Suggestions       []string       `json:"suggestions"`
	TechnicalAccuracy int            `json:"technicalAccuracy"`
	Communication     int            `json:"communication"`
	Confidence        int            `json:"confidence"`
	DetailedScores    DetailedScores `json:"detailedScores"`
}

// GenerateQuestionsInput represents the input for question generation
type GenerateQuestionsInput struct {
	JobRole       string   `json:"jobRole"`
	Difficulty    string   `json:"difficulty"`
	Skills        []string `json:"skills,omitempty"`
	QuestionCount int      `json:"questionCount"`
}

// QuestionSpec is one generated interview question
type QuestionSpec struct {
	Question       string `json:"question"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	Skill          string `json:"skill,omitempty"`
	Role           string `json:"role,omitempty"`
	ExpectedAnswer string `json:"expectedAnswer,omitempty"`
}

// QuestionSet is a generated batch of interview questions
type QuestionSet struct {
	JobRole    string         `json:"jobRole"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuestionSpec `json:"questions"`
}

// ContactInfo holds contact details extracted from a resume
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ResumeProfile is the structured data extracted from resume text
type ResumeProfile struct {
	Skills     []string    `json:"skills"`
	Experience []string    `json:"experience"`
	Education  []string    `json:"education"`
	Projects   []string    `json:"projects"`
	Contact    ContactInfo `json:"contactInfo"`
	Summary    string      `json:"summary"`
	RawExcerpt string      `json:"rawExcerpt"`
}

// SkillCategoryMatch describes how a resume covers one skill category
type SkillCategoryMatch struct {
	Matched    []string `json:"matched"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
}

// ResumeInsights is the heuristic assessment of a parsed resume
type ResumeInsights struct {
	Strengths       []string                      `json:"strengths"`
	Weaknesses      []string                      `json:"weaknesses"`
	Suggestions     []string                      `json:"suggestions"`
	MatchScore      float64                       `json:"matchScore"`
	MissingSkills   []string                      `json:"missingSkills"`
	SkillCategories map[string]SkillCategoryMatch `json:"skillCategories"`
}

// AnsweredQuestion pairs a question with the feedback its answer received,
// as submitted by the caller for interview-level summarization
type AnsweredQuestion struct {
	Question string          `json:"question"`
	Category string          `json:"category"`
	Feedback *AnswerFeedback `json:"feedback,omitempty"`
}

// InterviewSummaryInput represents the input for summarizing an interview
type InterviewSummaryInput struct {
	Questions []AnsweredQuestion `json:"questions"`
}

// InterviewSummary aggregates per-question feedback into session-level feedback
type InterviewSummary struct {
	Summary             string   `json:"summary"`
	OverallScore        int      `json:"overallScore"`
	TechnicalScore      int      `json:"technicalScore"`
	CommunicationScore  int      `json:"communicationScore"`
	ConfidenceScore     int      `json:"confidenceScore"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Recommendations     []string `json:"recommendations"`
	QuestionsAnswered   int      `json:"questionsAnswered"`
	TotalQuestions      int      `json:"totalQuestions"`
}
