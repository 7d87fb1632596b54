package analysis

import (
	"strings"

	"prepmatter/internal/types"
)

// analyzeStructure scores answer organization. STAR detection applies only to
// behavioral questions; flow, introduction and conclusion apply to all.
func (a *Analyzer) analyzeStructure(answer string, category types.QuestionCategory) types.StructureAnalysis {
	answerLower := strings.ToLower(answer)

	starScore := 0.0
	var star types.STARComponents
	if category == types.CategoryBehavioral {
		star.Situation = containsAny(answerLower, a.lex.STARIndicators["situation"])
		star.Task = containsAny(answerLower, a.lex.STARIndicators["task"])
		star.Action = containsAny(answerLower, a.lex.STARIndicators["action"])
		star.Result = containsAny(answerLower, a.lex.STARIndicators["result"])
		for _, present := range []bool{star.Situation, star.Task, star.Action, star.Result} {
			if present {
				starScore += 25
			}
		}
	}

	hasFlow := countAny(answerLower, a.lex.FlowIndicators) > 0

	hasIntroduction := false
	if strings.Contains(answer, ".") {
		hasIntroduction = len(strings.Split(answer, ".")[0]) > 20
	}
	hasConclusion := containsAny(tail(answerLower, 100), a.lex.ConclusionHints)

	structureScore := starScore
	if hasFlow {
		structureScore += 25
	}
	if hasIntroduction {
		structureScore += 15
	}
	if hasConclusion {
		structureScore += 10
	}

	return types.StructureAnalysis{
		STARScore:       starScore,
		STARComponents:  star,
		HasLogicalFlow:  hasFlow,
		HasIntroduction: hasIntroduction,
		HasConclusion:   hasConclusion,
		StructureScore:  structureScore,
	}
}
