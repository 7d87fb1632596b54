package analysis

import (
	"context"
	"strings"

	"prepmatter/internal/errors"
	"prepmatter/internal/nlp"
	"prepmatter/internal/types"
)

// minAnswerLength is the trimmed character count below which an answer is
// considered too short to score
const minAnswerLength = 10

// Analyzer scores interview answers across content, linguistics, technical
// depth, structure, confidence and completeness
type Analyzer struct {
	lex    *Lexicon
	nlp    *nlp.Service
	logger *errors.Logger
}

// NewAnalyzer creates an answer analyzer backed by the given NLP service
func NewAnalyzer(nlpService *nlp.Service, logger *errors.Logger) *Analyzer {
	return &Analyzer{
		lex:    NewLexicon(),
		nlp:    nlpService,
		logger: logger,
	}
}

// Analyze produces a full analysis for one interview answer. Answers shorter
// than ten trimmed characters yield a zeroed analysis marked Insufficient.
func (a *Analyzer) Analyze(ctx context.Context, input types.AnalyzeAnswerInput) types.AnswerAnalysis {
	if len(strings.TrimSpace(input.Answer)) < minAnswerLength {
		if a.logger != nil {
			a.logger.Debug("Answer too short to analyze",
				"question", input.Question, "length", len(strings.TrimSpace(input.Answer)))
		}
		return types.AnswerAnalysis{
			Technical:    types.TechnicalAnalysis{TechnicalCategories: map[string]float64{}},
			Insufficient: true,
		}
	}

	category := types.ParseCategory(input.Category)

	analysis := types.AnswerAnalysis{
		Content:      a.analyzeContent(input.Answer, input.Question),
		Linguistic:   a.analyzeLinguistics(ctx, input.Answer),
		Technical:    a.analyzeTechnical(input.Answer, input.JobRole),
		Structure:    a.analyzeStructure(input.Answer, category),
		Confidence:   a.analyzeConfidence(ctx, input.Answer),
		Completeness: a.analyzeCompleteness(input.Answer, input.Question, category),
	}
	analysis.Scores = Aggregate(&analysis)
	return analysis
}
