package question

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"prepmatter/internal/errors"
	"prepmatter/internal/types"
)

const defaultLevel = "medium"

var difficultyLevels = map[string]string{
	"beginner":     "easy",
	"intermediate": "medium",
	"advanced":     "hard",
}

// distribution is the per-category question allocation for one request
type distribution struct {
	technical   int
	behavioral  int
	situational int
	general     int
}

// Generator produces interview question sets from the built-in template
// banks. Selection and ordering are randomized through a seedable source.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *errors.Logger
}

// NewGenerator creates a question generator with a time-seeded source
func NewGenerator(logger *errors.Logger) *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), logger)
}

// NewGeneratorWithSource creates a generator drawing from the given source
func NewGeneratorWithSource(rng *rand.Rand, logger *errors.Logger) *Generator {
	return &Generator{rng: rng, logger: logger}
}

// Generate builds a shuffled question set for the requested role, difficulty
// and count. Skills, when provided, seed skill-targeted technical questions;
// remaining technical slots fall back to the role-specific bank.
func (g *Generator) Generate(input types.GenerateQuestionsInput) types.QuestionSet {
	g.mu.Lock()
	defer g.mu.Unlock()

	level, ok := difficultyLevels[input.Difficulty]
	if !ok {
		level = defaultLevel
	}

	dist := questionDistribution(input.QuestionCount)

	var questions []types.QuestionSpec
	questions = append(questions, g.skillQuestions(input.Skills, dist.technical, level)...)

	remaining := dist.technical - len(questions)
	questions = append(questions, g.roleQuestions(input.JobRole, remaining)...)

	questions = append(questions, g.templateQuestions(types.CategoryBehavioral, dist.behavioral, level, behavioralExpectation)...)
	questions = append(questions, g.templateQuestions(types.CategorySituational, dist.situational, level, situationalExpectation)...)
	questions = append(questions, g.templateQuestions(types.CategoryGeneral, dist.general, level, generalExpectation)...)

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > input.QuestionCount {
		questions = questions[:input.QuestionCount]
	}
	if questions == nil {
		questions = []types.QuestionSpec{}
	}

	return types.QuestionSet{
		JobRole:    input.JobRole,
		Difficulty: input.Difficulty,
		Questions:  questions,
	}
}

// questionDistribution allocates a total count across categories. Small
// requests guarantee at least one technical, behavioral and situational
// question; larger ones split roughly 40/30/20/10.
func questionDistribution(total int) distribution {
	if total <= 5 {
		return distribution{
			technical:   max(1, total/2),
			behavioral:  max(1, total/3),
			situational: max(1, total/4),
			general:     max(0, total-total/2-total/3-total/4),
		}
	}
	return distribution{
		technical:   max(2, int(float64(total)*0.4)),
		behavioral:  max(2, int(float64(total)*0.3)),
		situational: max(1, int(float64(total)*0.2)),
		general:     max(1, int(float64(total)*0.1)),
	}
}

func (g *Generator) skillQuestions(skills []string, count int, level string) []types.QuestionSpec {
	if len(skills) == 0 || count <= 0 {
		return nil
	}

	templates := questionTemplates[types.CategoryTechnical][level]
	selected := g.sample(skills, count)

	questions := make([]types.QuestionSpec, 0, len(selected))
	for _, skill := range selected {
		template := templates[g.rng.Intn(len(templates))]
		questions = append(questions, types.QuestionSpec{
			Question:       strings.ReplaceAll(template, "{skill}", skill),
			Category:       string(types.CategoryTechnical),
			Difficulty:     level,
			Skill:          skill,
			ExpectedAnswer: fmt.Sprintf("Expected to demonstrate knowledge of %s with practical examples.", skill),
		})
	}
	return questions
}

func (g *Generator) roleQuestions(jobRole string, count int) []types.QuestionSpec {
	if count <= 0 {
		return nil
	}

	roleLower := strings.ToLower(jobRole)
	var pool []types.QuestionSpec
	for _, bank := range roleQuestionBanks {
		if !strings.Contains(roleLower, bank.Role) {
			continue
		}
		for _, rp := range bank.Pools {
			category := rp.Label
			if category == "technical" {
				category = string(types.CategoryTechnical)
			}
			for _, q := range rp.Questions {
				pool = append(pool, types.QuestionSpec{
					Question:   q,
					Category:   category,
					Difficulty: defaultLevel,
					Role:       jobRole,
				})
			}
		}
		break
	}
	if len(pool) == 0 {
		return nil
	}
	return g.sampleSpecs(pool, count)
}

func (g *Generator) templateQuestions(category types.QuestionCategory, count int, level, expectation string) []types.QuestionSpec {
	if count <= 0 {
		return nil
	}

	templates := questionTemplates[category][level]
	selected := g.sample(templates, count)

	questions := make([]types.QuestionSpec, 0, len(selected))
	for _, text := range selected {
		questions = append(questions, types.QuestionSpec{
			Question:       text,
			Category:       string(category),
			Difficulty:     level,
			ExpectedAnswer: expectation,
		})
	}
	return questions
}

// sample draws up to count items without replacement
func (g *Generator) sample(items []string, count int) []string {
	if count > len(items) {
		count = len(items)
	}
	perm := g.rng.Perm(len(items))
	selected := make([]string, 0, count)
	for _, idx := range perm[:count] {
		selected = append(selected, items[idx])
	}
	return selected
}

func (g *Generator) sampleSpecs(items []types.QuestionSpec, count int) []types.QuestionSpec {
	if count > len(items) {
		count = len(items)
	}
	perm := g.rng.Perm(len(items))
	selected := make([]types.QuestionSpec, 0, count)
	for _, idx := range perm[:count] {
		selected = append(selected, items[idx])
	}
	return selected
}
