package resume

import (
	"reflect"
	"strings"
	"testing"

	"prepmatter/internal/types"
)

const sampleResume = `Summary: Experienced backend engineer focused on reliable distributed systems and developer tooling for growing teams.
Contact: jane.doe@example.com, 555-123-4567, linkedin.com/in/janedoe
Worked as Senior Backend Developer at Initech for several years.
5 years of experience building services in Python and Go with PostgreSQL, Redis and Docker on AWS.
Bachelor of Computer Science from State University.
Developed: an internal deployment pipeline using Terraform and Jenkins.
Built: a real-time analytics dashboard with React and TypeScript.`

func TestParseSkills(t *testing.T) {
	profile := NewParser(nil).Parse(sampleResume)

	want := []string{"Python", "Go", "Typescript", "React", "Postgresql", "Redis", "Aws", "Docker", "Jenkins", "Terraform"}
	if !reflect.DeepEqual(profile.Skills, want) {
		t.Errorf("Skills = %v, want %v", profile.Skills, want)
	}
}

func TestParseContact(t *testing.T) {
	profile := NewParser(nil).Parse(sampleResume)

	if profile.Contact.Email != "jane.doe@example.com" {
		t.Errorf("Email = %q", profile.Contact.Email)
	}
	if profile.Contact.Phone != "(555) 123-4567" {
		t.Errorf("Phone = %q, want normalized format", profile.Contact.Phone)
	}
	if profile.Contact.LinkedIn != "linkedin.com/in/janedoe" {
		t.Errorf("LinkedIn = %q", profile.Contact.LinkedIn)
	}
}

func TestParseSections(t *testing.T) {
	profile := NewParser(nil).Parse(sampleResume)

	if len(profile.Experience) == 0 {
		t.Fatal("no experience extracted")
	}
	if !strings.Contains(profile.Experience[0], "Senior Backend Developer at Initech") {
		t.Errorf("Experience[0] = %q", profile.Experience[0])
	}

	if len(profile.Education) == 0 {
		t.Fatal("no education extracted")
	}
	if !strings.Contains(profile.Education[0], "Computer Science") {
		t.Errorf("Education[0] = %q", profile.Education[0])
	}

	if len(profile.Projects) == 0 {
		t.Fatal("no projects extracted")
	}

	if !strings.HasPrefix(profile.Summary, "Experienced backend engineer") {
		t.Errorf("Summary = %q", profile.Summary)
	}
}

func TestParseCapsAndExcerpt(t *testing.T) {
	long := strings.Repeat("Developed: a service that processed incoming events reliably. ", 40)
	profile := NewParser(nil).Parse(long)

	if len(profile.Projects) > maxProjectEntries {
		t.Errorf("len(Projects) = %d, want at most %d", len(profile.Projects), maxProjectEntries)
	}
	if len(profile.RawExcerpt) != maxExcerptLength+3 {
		t.Errorf("len(RawExcerpt) = %d, want %d plus ellipsis", len(profile.RawExcerpt), maxExcerptLength)
	}
	if !strings.HasSuffix(profile.RawExcerpt, "...") {
		t.Error("RawExcerpt missing ellipsis")
	}
}

func TestParseEmptyText(t *testing.T) {
	profile := NewParser(nil).Parse("")

	if len(profile.Skills) != 0 {
		t.Errorf("Skills = %v, want empty", profile.Skills)
	}
	if profile.Contact != (types.ContactInfo{}) {
		t.Errorf("Contact = %+v, want zero", profile.Contact)
	}
	if profile.Summary != "" {
		t.Errorf("Summary = %q, want empty", profile.Summary)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "python", want: "Python"},
		{in: "machine learning", want: "Machine Learning"},
		{in: "scikit-learn", want: "Scikit-Learn"},
		{in: "asp.net", want: "Asp.Net"},
		{in: "c#", want: "C#"},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeInsights(t *testing.T) {
	parser := NewParser(nil)
	profile := parser.Parse(sampleResume)

	insights := parser.Analyze(&profile, "backend developer")

	if insights.MatchScore <= 0 || insights.MatchScore > 100 {
		t.Errorf("MatchScore = %v, want within (0,100]", insights.MatchScore)
	}

	joined := strings.Join(insights.Strengths, " | ")
	if !strings.Contains(joined, "Strong programming background") {
		t.Errorf("Strengths = %v, want programming strength", insights.Strengths)
	}
	if !strings.Contains(joined, "Cloud platform experience") {
		t.Errorf("Strengths = %v, want cloud strength", insights.Strengths)
	}

	// Resume has no AI/ML skills and only two projects
	suggestions := strings.Join(insights.Suggestions, " | ")
	if !strings.Contains(suggestions, "AI/ML") {
		t.Errorf("Suggestions = %v, want AI/ML nudge", insights.Suggestions)
	}
	if !strings.Contains(suggestions, "project examples") {
		t.Errorf("Suggestions = %v, want project nudge", insights.Suggestions)
	}

	// Backend role expects nodejs, sql, mongodb, express, django beyond what
	// the resume lists
	for _, skill := range []string{"nodejs", "sql", "mongodb", "express", "django"} {
		found := false
		for _, missing := range insights.MissingSkills {
			if missing == skill {
				found = true
			}
		}
		if !found {
			t.Errorf("MissingSkills = %v, want %q included", insights.MissingSkills, skill)
		}
	}
	for _, missing := range insights.MissingSkills {
		if missing == "python" {
			t.Error("python should not be missing, resume lists it")
		}
	}

	if cat, ok := insights.SkillCategories[CategoryDatabases]; !ok || cat.Count != 2 {
		t.Errorf("databases category = %+v, want postgresql and redis matched", insights.SkillCategories[CategoryDatabases])
	}
}

func TestAnalyzeNoTargetRole(t *testing.T) {
	parser := NewParser(nil)
	profile := parser.Parse("I know Python and nothing else worth mentioning here.")

	insights := parser.Analyze(&profile, "")
	if len(insights.MissingSkills) != 0 {
		t.Errorf("MissingSkills = %v, want empty without a target role", insights.MissingSkills)
	}
}
