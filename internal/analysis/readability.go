package analysis

import "strings"

// Neutral fallbacks used when a readability formula cannot be computed
// (empty text, no complete sentences).
const (
	defaultReadability = 50.0
	defaultGradeLevel  = 10.0
)

// readabilityScores computes a Flesch reading-ease score and a
// Flesch-Kincaid grade level for the text. The ease score is bounded to
// [0,100]; both fall back to neutral constants when the text has no
// countable words or sentences.
func readabilityScores(text string) (ease, grade float64) {
	words := tokenize(text)
	sentences := splitSentences(text)

	if len(words) == 0 || len(sentences) == 0 {
		return defaultReadability, defaultGradeLevel
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))

	ease = 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade = 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	ease = clamp(ease, 0, 100)
	if grade < 0 {
		grade = 0
	}
	return ease, grade
}

// countSyllables estimates syllables by counting vowel groups, with the
// usual silent-e adjustment. Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
