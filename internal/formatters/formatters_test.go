package formatters

import (
	"strings"
	"testing"

	"prepmatter/internal/types"
)

func TestRegistryDispatch(t *testing.T) {
	feedback := types.AnswerFeedback{
		Score:        72,
		Strengths:    []string{"Demonstrated strong technical knowledge"},
		Improvements: []string{},
		Suggestions:  []string{"Practice explaining concepts"},
	}

	tests := []struct {
		name     string
		data     any
		format   string
		contains string
	}{
		{
			name:     "feedback as text",
			data:     feedback,
			format:   "text",
			contains: "Overall Score: 72/100",
		},
		{
			name:     "feedback as markdown",
			data:     feedback,
			format:   "markdown",
			contains: "# Answer Feedback",
		},
		{
			name:     "feedback as json",
			data:     feedback,
			format:   "json",
			contains: `"score": 72`,
		},
		{
			name: "question set as text",
			data: types.QuestionSet{
				JobRole:    "backend developer",
				Difficulty: "medium",
				Questions: []types.QuestionSpec{
					{Question: "Explain database indexing.", Category: "technical", Difficulty: "medium"},
				},
			},
			format:   "text",
			contains: "1. [technical] Explain database indexing.",
		},
		{
			name: "summary as markdown",
			data: types.InterviewSummary{
				Summary:      "You completed 2 out of 3 questions.",
				OverallScore: 75,
			},
			format:   "markdown",
			contains: "| Overall | 75 |",
		},
		{
			name: "unregistered type falls back to json",
			data: map[string]string{"key": "value"},
			format:   "json",
			contains: `"key": "value"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := GlobalRegistry.Format(tt.data, tt.format)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if !strings.Contains(output, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, output)
			}
		})
	}
}

func TestRegistryUnknownFormat(t *testing.T) {
	_, err := GlobalRegistry.Format(types.AnswerFeedback{}, "yaml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		seen[f] = true
	}
	for _, want := range []string{"json", "text", "markdown"} {
		if !seen[want] {
			t.Errorf("expected format %q to be registered", want)
		}
	}
}
