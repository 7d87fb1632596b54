package question

import (
	"math/rand"
	"strings"
	"testing"

	"prepmatter/internal/types"
)

func seededGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(7)), nil)
}

func TestQuestionDistribution(t *testing.T) {
	tests := []struct {
		total int
		want  distribution
	}{
		{total: 1, want: distribution{technical: 1, behavioral: 1, situational: 1, general: 1}},
		{total: 4, want: distribution{technical: 2, behavioral: 1, situational: 1, general: 0}},
		{total: 5, want: distribution{technical: 2, behavioral: 1, situational: 1, general: 1}},
		{total: 10, want: distribution{technical: 4, behavioral: 3, situational: 2, general: 1}},
		{total: 20, want: distribution{technical: 8, behavioral: 6, situational: 4, general: 2}},
		{total: 6, want: distribution{technical: 2, behavioral: 2, situational: 1, general: 1}},
	}

	for _, tt := range tests {
		got := questionDistribution(tt.total)
		if got != tt.want {
			t.Errorf("questionDistribution(%d) = %+v, want %+v", tt.total, got, tt.want)
		}
	}
}

func TestGenerateCountAndCategories(t *testing.T) {
	got := seededGenerator().Generate(types.GenerateQuestionsInput{
		JobRole:       "Software Engineer",
		Difficulty:    "intermediate",
		Skills:        []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		QuestionCount: 10,
	})

	if len(got.Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want 10", len(got.Questions))
	}

	byCategory := map[string]int{}
	seen := map[string]bool{}
	for _, q := range got.Questions {
		byCategory[q.Category]++
		if seen[q.Question] {
			t.Errorf("duplicate question %q", q.Question)
		}
		seen[q.Question] = true
		if q.Question == "" || q.Difficulty == "" {
			t.Errorf("incomplete question spec: %+v", q)
		}
	}

	if byCategory["behavioral"] < 1 || byCategory["situational"] < 1 || byCategory["general"] < 1 {
		t.Errorf("category mix missing entries: %v", byCategory)
	}
}

func TestGenerateSkillSubstitution(t *testing.T) {
	got := seededGenerator().Generate(types.GenerateQuestionsInput{
		JobRole:       "Platform Engineer",
		Difficulty:    "advanced",
		Skills:        []string{"Terraform"},
		QuestionCount: 3,
	})

	found := false
	for _, q := range got.Questions {
		if q.Skill != "Terraform" {
			continue
		}
		found = true
		if strings.Contains(q.Question, "{skill}") {
			t.Errorf("unfilled placeholder in %q", q.Question)
		}
		if !strings.Contains(q.Question, "Terraform") {
			t.Errorf("skill not substituted in %q", q.Question)
		}
		if q.Difficulty != "hard" {
			t.Errorf("Difficulty = %q, want hard", q.Difficulty)
		}
		if !strings.Contains(q.ExpectedAnswer, "Terraform") {
			t.Errorf("ExpectedAnswer = %q, want skill mention", q.ExpectedAnswer)
		}
	}
	if !found {
		t.Error("no skill-targeted question generated")
	}
}

func TestGenerateRoleSpecificFallback(t *testing.T) {
	// No skills provided, so technical slots come from the role bank
	got := seededGenerator().Generate(types.GenerateQuestionsInput{
		JobRole:       "Senior Backend Developer",
		Difficulty:    "intermediate",
		QuestionCount: 10,
	})

	roleTagged := 0
	for _, q := range got.Questions {
		if q.Role == "Senior Backend Developer" {
			roleTagged++
			if q.Category != "technical" {
				t.Errorf("role question category = %q, want technical", q.Category)
			}
		}
	}
	if roleTagged == 0 {
		t.Error("expected role-specific questions for a backend developer")
	}
}

func TestGenerateUnknownDifficultyDefaultsToMedium(t *testing.T) {
	got := seededGenerator().Generate(types.GenerateQuestionsInput{
		JobRole:       "QA Analyst",
		Difficulty:    "expert",
		QuestionCount: 4,
	})

	for _, q := range got.Questions {
		if q.Difficulty != "medium" {
			t.Errorf("Difficulty = %q, want medium for unknown input level", q.Difficulty)
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	got := seededGenerator().Generate(types.GenerateQuestionsInput{
		JobRole:       "Software Engineer",
		QuestionCount: 0,
	})
	if len(got.Questions) != 0 {
		t.Errorf("len(Questions) = %d, want 0", len(got.Questions))
	}
}

func TestGenerateDoesNotExceedPool(t *testing.T) {
	// One skill and no matching role bank leaves at most one technical
	// question; template pools hold five per category.
	got := seededGenerator().Generate(types.GenerateQuestionsInput{
		JobRole:       "Mystery Role",
		Difficulty:    "beginner",
		Skills:        []string{"Rust"},
		QuestionCount: 50,
	})

	// 1 skill + 5 behavioral + 5 situational + 5 general
	if len(got.Questions) != 16 {
		t.Errorf("len(Questions) = %d, want 16", len(got.Questions))
	}
}

func TestGenerateSeedReproducibility(t *testing.T) {
	input := types.GenerateQuestionsInput{
		JobRole:       "Data Scientist",
		Difficulty:    "intermediate",
		Skills:        []string{"Python", "SQL"},
		QuestionCount: 8,
	}

	a := seededGenerator().Generate(input)
	b := seededGenerator().Generate(input)
	if len(a.Questions) != len(b.Questions) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Questions), len(b.Questions))
	}
	for i := range a.Questions {
		if a.Questions[i] != b.Questions[i] {
			t.Errorf("question %d differs between identical seeds", i)
		}
	}
}
