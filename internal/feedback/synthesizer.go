package feedback

import (
	"math/rand"
	"sync"
	"time"

	"prepmatter/internal/errors"
	"prepmatter/internal/types"
)

// Score thresholds driving the feedback rules
const (
	strongTechnicalMin    = 75.0
	strongStructureMin    = 70.0
	strongConfidenceMin   = 75.0
	comprehensiveMin      = 80.0
	weakTechnicalMax      = 50.0
	weakStructureMax      = 50.0
	weakConfidenceMax     = 60.0
	incompleteMax         = 60.0
	briefWordCount        = 50
	verboseWordCount      = 400
	suggestTechnicalMax   = 70.0
	suggestStructureMax   = 60.0
	suggestCommunicateMax = 70.0
	suggestOverallMax     = 70.0
	fallbackStrengthMin   = 50.0
	starNudgeMax          = 50.0
	hedgeNudgeCount       = 3

	maxStrengths    = 3
	maxImprovements = 3
	maxSuggestions  = 4
)

// Synthesizer turns answer analyses into templated feedback packets. Template
// variants are drawn from a seedable source so output can be made
// reproducible in tests.
type Synthesizer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *errors.Logger
}

// NewSynthesizer creates a feedback synthesizer with a time-seeded source
func NewSynthesizer(logger *errors.Logger) *Synthesizer {
	return NewSynthesizerWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), logger)
}

// NewSynthesizerWithSource creates a synthesizer drawing template variants
// from the given source
func NewSynthesizerWithSource(rng *rand.Rand, logger *errors.Logger) *Synthesizer {
	return &Synthesizer{rng: rng, logger: logger}
}

// Generate builds the feedback packet for one analyzed answer
func (s *Synthesizer) Generate(analysis *types.AnswerAnalysis) types.AnswerFeedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores := analysis.Scores
	return types.AnswerFeedback{
		Score:             int(scores.OverallScore),
		Strengths:         s.identifyStrengths(analysis),
		Improvements:      s.identifyImprovements(analysis),
		Suggestions:       s.generateSuggestions(analysis),
		TechnicalAccuracy: int(capAt100(scores.TechnicalScore)),
		Communication:     int(capAt100(scores.CommunicationScore)),
		Confidence:        int(capAt100(scores.ConfidenceScore)),
		DetailedScores: types.DetailedScores{
			Content:      int(scores.ContentScore),
			Technical:    int(scores.TechnicalScore),
			Structure:    int(scores.StructureScore),
			Completeness: int(scores.CompletenessScore),
		},
	}
}

func (s *Synthesizer) identifyStrengths(analysis *types.AnswerAnalysis) []string {
	var strengths []string
	scores := analysis.Scores

	if scores.TechnicalScore >= strongTechnicalMin {
		strengths = append(strengths, s.pick(strengthTemplates["high_technical"]))
	}
	if scores.StructureScore >= strongStructureMin {
		strengths = append(strengths, s.pick(strengthTemplates["good_structure"]))
	}
	if scores.ConfidenceScore >= strongConfidenceMin {
		strengths = append(strengths, s.pick(strengthTemplates["high_confidence"]))
	}
	if analysis.Content.HasExamples {
		strengths = append(strengths, s.pick(strengthTemplates["good_examples"]))
	}
	if scores.CompletenessScore >= comprehensiveMin {
		strengths = append(strengths, s.pick(strengthTemplates["comprehensive"]))
	}

	if len(strengths) == 0 {
		if scores.OverallScore >= fallbackStrengthMin {
			strengths = append(strengths, fallbackStrengthGood)
		} else {
			strengths = append(strengths, fallbackStrengthThanks)
		}
	}

	return truncateList(strengths, maxStrengths)
}

func (s *Synthesizer) identifyImprovements(analysis *types.AnswerAnalysis) []string {
	var improvements []string
	scores := analysis.Scores

	if scores.TechnicalScore < weakTechnicalMax {
		improvements = append(improvements, s.pick(improvementTemplates["low_technical"]))
	}
	if scores.StructureScore < weakStructureMax {
		improvements = append(improvements, s.pick(improvementTemplates["poor_structure"]))
	}
	if scores.ConfidenceScore < weakConfidenceMax {
		improvements = append(improvements, s.pick(improvementTemplates["low_confidence"]))
	}
	if !analysis.Content.HasExamples {
		improvements = append(improvements, s.pick(improvementTemplates["insufficient_examples"]))
	}
	if analysis.Content.WordCount < briefWordCount {
		improvements = append(improvements, s.pick(improvementTemplates["too_brief"]))
	} else if analysis.Content.WordCount > verboseWordCount {
		improvements = append(improvements, s.pick(improvementTemplates["too_verbose"]))
	}
	if scores.CompletenessScore < incompleteMax {
		improvements = append(improvements, s.pick(improvementTemplates["incomplete"]))
	}

	return truncateList(improvements, maxImprovements)
}

func (s *Synthesizer) generateSuggestions(analysis *types.AnswerAnalysis) []string {
	var suggestions []string
	scores := analysis.Scores

	if scores.TechnicalScore < suggestTechnicalMax {
		suggestions = append(suggestions, s.pick(suggestionTemplates["technical_improvement"]))
	}
	if scores.CommunicationScore < suggestCommunicateMax || scores.StructureScore < suggestStructureMax {
		suggestions = append(suggestions, s.pick(suggestionTemplates["communication_improvement"]))
	}
	if scores.OverallScore < suggestOverallMax {
		suggestions = append(suggestions, s.pick(suggestionTemplates["preparation_tips"]))
	}

	if analysis.Structure.STARScore < starNudgeMax {
		suggestions = append(suggestions, starMethodSuggestion)
	}
	if analysis.Confidence.HedgeWordCount > hedgeNudgeCount {
		suggestions = append(suggestions, hedgeWordSuggestion)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, defaultSuggestion)
	}

	return truncateList(suggestions, maxSuggestions)
}

func (s *Synthesizer) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func capAt100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

func truncateList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
