package analysis

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// tokenize splits text into lowercase word tokens
func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// tokenSet returns the set of unique lowercase word tokens
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// splitSentences splits on '.' and keeps non-blank segments
func splitSentences(text string) []string {
	var sentences []string
	for _, seg := range strings.Split(text, ".") {
		if strings.TrimSpace(seg) != "" {
			sentences = append(sentences, seg)
		}
	}
	return sentences
}

// countAny counts how many of the given phrases occur in the lowercased text
func countAny(textLower string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(textLower, phrase) {
			count++
		}
	}
	return count
}

// containsAny reports whether any of the given phrases occurs in the lowercased text
func containsAny(textLower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(textLower, phrase) {
			return true
		}
	}
	return false
}

// clamp bounds v to the [lo, hi] interval
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tail returns the last n bytes of s, or all of s when shorter
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
