package resume

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"prepmatter/internal/errors"
	"prepmatter/internal/types"
)

// Extraction caps per section
const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
	maxProjectEntries    = 5
	maxEntryLength       = 100
	maxProjectLength     = 150
	maxSummaryLength     = 300
	maxExcerptLength     = 500
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	specialChars      = regexp.MustCompile(`[^\w\s.\-+#@]`)

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:worked|employed|experience)\s+(?:as|at|with)\s+([^.]+)`),
		regexp.MustCompile(`(?i)(?:software engineer|developer|analyst|manager)\s+at\s+([^.]+)`),
		regexp.MustCompile(`(?i)(\d+)\s+(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)`),
	}
	educationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:bachelor|master|phd|degree)\s+(?:of|in|from)\s+([^.]+)`),
		regexp.MustCompile(`(?i)(?:university|college|institute)\s+of\s+([^.]+)`),
		regexp.MustCompile(`(?i)(?:b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|ph\.?d\.?)\s+in\s+([^.]+)`),
	}
	projectPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:project|built|developed|created)\s*:?\s*([^.]+)`),
		regexp.MustCompile(`(?i)(?:github|portfolio)\s*:?\s*([^.]+)`),
	}

	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`)

	summaryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:summary|objective|profile)\s*:?\s*([^.]+(?:\.[^.]+){0,2})`),
		regexp.MustCompile(`(?im)^([^.]+(?:\.[^.]+){0,2})`),
	}
)

// Parser extracts structured profile data from free-form resume text using
// the built-in skill database and section pattern tables
type Parser struct {
	skills        []string
	skillPatterns []*regexp.Regexp
	logger        *errors.Logger
}

// NewParser creates a resume parser
func NewParser(logger *errors.Logger) *Parser {
	skills := allSkills()
	patterns := make([]*regexp.Regexp, len(skills))
	for i, skill := range skills {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return &Parser{skills: skills, skillPatterns: patterns, logger: logger}
}

// Parse extracts skills, experience, education, projects, contact details
// and a summary from resume text
func (p *Parser) Parse(text string) types.ResumeProfile {
	cleaned := cleanText(text)

	return types.ResumeProfile{
		Skills:     p.extractSkills(cleaned),
		Experience: extractMatches(cleaned, experiencePatterns, 5, maxEntryLength, maxExperienceEntries),
		Education:  extractMatches(cleaned, educationPatterns, 3, maxEntryLength, maxEducationEntries),
		Projects:   extractMatches(cleaned, projectPatterns, 10, maxProjectLength, maxProjectEntries),
		Contact:    extractContact(cleaned),
		Summary:    extractSummary(cleaned),
		RawExcerpt: truncateWithEllipsis(text, maxExcerptLength),
	}
}

// cleanText collapses whitespace and strips characters outside the resume
// alphabet, keeping separators that appear in skill names
func cleanText(text string) string {
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = specialChars.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func (p *Parser) extractSkills(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for i, skill := range p.skills {
		if p.skillPatterns[i].MatchString(textLower) {
			found = append(found, titleCase(skill))
		}
	}
	if found == nil {
		found = []string{}
	}
	return found
}

// extractMatches runs each pattern over the text and collects the first
// capture group, trimmed and bounded
func extractMatches(text string, patterns []*regexp.Regexp, minLen, maxLen, limit int) []string {
	results := []string{}
	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			entry := strings.TrimSpace(m[1])
			if len(entry) <= minLen {
				continue
			}
			if len(entry) > maxLen {
				entry = entry[:maxLen]
			}
			results = append(results, entry)
			if len(results) == limit {
				return results
			}
		}
	}
	return results
}

func extractContact(text string) types.ContactInfo {
	var contact types.ContactInfo

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}
	if m := phonePattern.FindStringSubmatch(text); m != nil {
		contact.Phone = fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
	}
	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		contact.LinkedIn = "linkedin.com/in/" + m[1]
	}
	return contact
}

func extractSummary(text string) string {
	for _, pattern := range summaryPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		summary := strings.TrimSpace(m[1])
		if len(summary) > 50 {
			return truncateWithEllipsis(summary, maxSummaryLength)
		}
	}
	return truncateWithEllipsis(text, 200)
}

func truncateWithEllipsis(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// titleCase uppercases the first letter of every word, matching how skill
// names are reported ("machine learning" becomes "Machine Learning")
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// containsFold reports whether needle occurs in haystack ignoring case
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
