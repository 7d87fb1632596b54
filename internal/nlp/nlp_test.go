package nlp

import (
	"context"
	"testing"

	"prepmatter/internal/config"
)

func TestHeuristicTagger(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		nouns      int
		verbs      int
		adjectives int
	}{
		{
			name:       "mixed suffixes",
			text:       "implementation testing quickly happiness deployed",
			nouns:      2,
			verbs:      2,
			adjectives: 1,
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name:  "no matching suffixes",
			text:  "the cat sat on a mat",
			nouns: 0,
		},
	}

	tagger := &HeuristicTagger{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, err := tagger.TagCounts(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("TagCounts() error = %v", err)
			}
			if counts.Nouns != tt.nouns {
				t.Errorf("Nouns = %d, want %d", counts.Nouns, tt.nouns)
			}
			if counts.Verbs != tt.verbs {
				t.Errorf("Verbs = %d, want %d", counts.Verbs, tt.verbs)
			}
			if counts.Adjectives != tt.adjectives {
				t.Errorf("Adjectives = %d, want %d", counts.Adjectives, tt.adjectives)
			}
		})
	}
}

func TestNeutralSentiment(t *testing.T) {
	s := &NeutralSentiment{}
	polarity, err := s.Polarity(context.Background(), "anything at all")
	if err != nil {
		t.Fatalf("Polarity() error = %v", err)
	}
	if polarity != 0 {
		t.Errorf("Polarity = %v, want 0", polarity)
	}
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		endpoint string
		wantErr  bool
	}{
		{name: "heuristic provider", provider: "heuristic"},
		{name: "empty provider defaults to heuristic", provider: ""},
		{name: "remote requires endpoint", provider: "remote", wantErr: true},
		{name: "remote with endpoint", provider: "remote", endpoint: "http://localhost:9090"},
		{name: "unknown provider", provider: "spacy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.NLPConfig{Provider: tt.provider, Endpoint: tt.endpoint}
			_, err := NewService(cfg, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewService() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceFallback(t *testing.T) {
	cfg := &config.NLPConfig{Provider: "remote", Endpoint: "http://127.0.0.1:1"}
	svc, err := NewService(cfg, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	// Remote is unreachable; WordTypes must degrade to the heuristic tagger
	// instead of failing.
	counts := svc.WordTypes(context.Background(), "implementation testing")
	if counts.Nouns != 1 || counts.Verbs != 1 {
		t.Errorf("WordTypes fallback = %+v, want nouns=1 verbs=1", counts)
	}

	if polarity := svc.Polarity(context.Background(), "great work"); polarity != 0 {
		t.Errorf("Polarity fallback = %v, want neutral 0", polarity)
	}
}
