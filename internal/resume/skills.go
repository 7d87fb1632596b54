package resume

// Skill category names used across parsing and insights
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryWebTechnologies      = "web_technologies"
	CategoryDatabases            = "databases"
	CategoryCloudPlatforms       = "cloud_platforms"
	CategoryTools                = "tools"
	CategoryAIML                 = "ai_ml"
)

// SkillCategory groups known skills under one category name. Categories are
// kept in a slice so extraction order stays deterministic.
type SkillCategory struct {
	Name   string
	Skills []string
}

var skillCategories = []SkillCategory{
	{Name: CategoryProgrammingLanguages, Skills: []string{
		"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust",
		"typescript", "kotlin", "swift", "scala", "r", "matlab", "perl",
	}},
	{Name: CategoryWebTechnologies, Skills: []string{
		"html", "css", "react", "angular", "vue", "nodejs", "express", "django",
		"flask", "spring", "laravel", "rails", "asp.net", "jquery", "bootstrap",
	}},
	{Name: CategoryDatabases, Skills: []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle",
		"sqlite", "cassandra", "dynamodb", "firebase",
	}},
	{Name: CategoryCloudPlatforms, Skills: []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
		"cloudflare", "vercel", "netlify",
	}},
	{Name: CategoryTools, Skills: []string{
		"git", "docker", "kubernetes", "jenkins", "terraform", "ansible",
		"webpack", "babel", "eslint", "jest", "cypress", "selenium",
	}},
	{Name: CategoryAIML, Skills: []string{
		"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn",
		"pandas", "numpy", "opencv", "nlp", "computer vision", "neural networks",
	}},
}

// allSkills flattens the category table in declaration order
func allSkills() []string {
	var skills []string
	for _, cat := range skillCategories {
		skills = append(skills, cat.Skills...)
	}
	return skills
}

// RoleSkills pairs a role key with the skills expected for it
type RoleSkills struct {
	Role   string
	Skills []string
}

var roleSkillMap = []RoleSkills{
	{Role: "software engineer", Skills: []string{"python", "javascript", "git", "sql", "react", "nodejs"}},
	{Role: "data scientist", Skills: []string{"python", "r", "machine learning", "pandas", "numpy", "sql"}},
	{Role: "frontend developer", Skills: []string{"javascript", "react", "html", "css", "typescript", "webpack"}},
	{Role: "backend developer", Skills: []string{"python", "nodejs", "sql", "mongodb", "express", "django"}},
	{Role: "full stack developer", Skills: []string{"javascript", "python", "react", "nodejs", "sql", "git"}},
	{Role: "devops engineer", Skills: []string{"docker", "kubernetes", "aws", "jenkins", "terraform", "git"}},
	{Role: "product manager", Skills: []string{"agile", "scrum", "analytics", "sql", "project management"}},
}

var defaultRoleSkills = []string{"git", "sql", "python", "javascript", "agile"}

// roleSkillsFor returns the expected skill list for a target role, matched by
// substring in declaration order
func roleSkillsFor(role string) []string {
	for _, rs := range roleSkillMap {
		if containsFold(role, rs.Role) {
			return rs.Skills
		}
	}
	return defaultRoleSkills
}
