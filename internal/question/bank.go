package question

import "prepmatter/internal/types"

// Template banks keyed by category and difficulty level. Technical templates
// carry a {skill} placeholder filled in at generation time.
var questionTemplates = map[types.QuestionCategory]map[string][]string{
	types.CategoryTechnical: {
		"easy": {
			"What is {skill} and how have you used it?",
			"Explain the basics of {skill}.",
			"What are the main features of {skill}?",
			"How would you describe {skill} to a beginner?",
			"What drew you to learning {skill}?",
		},
		"medium": {
			"Describe a project where you used {skill}. What challenges did you face?",
			"How would you optimize performance in a {skill} application?",
			"What are the best practices you follow when working with {skill}?",
			"Compare {skill} with similar technologies. What are the pros and cons?",
			"Walk me through how you would debug an issue in {skill}.",
		},
		"hard": {
			"Design a scalable system using {skill}. What architecture would you choose?",
			"How would you handle concurrency issues in {skill}?",
			"Explain the internals of {skill}. How does it work under the hood?",
			"What are the security considerations when using {skill}?",
			"How would you migrate a large codebase from another technology to {skill}?",
		},
	},
	types.CategoryBehavioral: {
		"easy": {
			"Tell me about yourself and your background.",
			"Why are you interested in this role?",
			"What are your greatest strengths?",
			"Where do you see yourself in 5 years?",
			"Why do you want to work for our company?",
		},
		"medium": {
			"Describe a time when you had to learn a new technology quickly.",
			"Tell me about a challenging project you worked on.",
			"How do you handle working under pressure?",
			"Describe a time when you had to work with a difficult team member.",
			"What's the most innovative solution you've implemented?",
		},
		"hard": {
			"Tell me about a time when you failed and how you handled it.",
			"Describe a situation where you had to make a decision with incomplete information.",
			"How would you handle a disagreement with your manager about technical direction?",
			"Tell me about a time when you had to convince others to adopt your approach.",
			"Describe the most complex problem you've solved and your approach.",
		},
	},
	types.CategorySituational: {
		"easy": {
			"How would you approach learning a new programming language?",
			"What would you do if you encountered a bug you couldn't solve?",
			"How do you stay updated with new technologies?",
			"What's your process for code review?",
			"How do you prioritize tasks when everything seems urgent?",
		},
		"medium": {
			"Your team is behind schedule on a project. How would you help catch up?",
			"You discover a security vulnerability in production. What's your approach?",
			"How would you onboard a new team member?",
			"A client wants a feature that you think is technically unfeasible. How do you handle it?",
			"You disagree with a design decision made by a senior developer. What do you do?",
		},
		"hard": {
			"The system is down and customers are complaining. Walk me through your incident response.",
			"You need to choose between two architectural approaches with different trade-offs. How do you decide?",
			"Your team wants to adopt a new technology, but management is resistant. How do you proceed?",
			"You've inherited a legacy codebase with poor documentation. How do you approach modernizing it?",
			"A critical team member just quit before a major deadline. How do you manage the situation?",
		},
	},
	types.CategoryGeneral: {
		"easy": {
			"What interests you most about software development?",
			"How do you approach problem-solving?",
			"What's your preferred development environment?",
			"How do you handle feedback on your code?",
			"What motivates you in your work?",
		},
		"medium": {
			"Describe your ideal work environment.",
			"How do you balance technical debt with new feature development?",
			"What's your approach to testing?",
			"How do you ensure code quality in your projects?",
			"What's the most important skill for a developer to have?",
		},
		"hard": {
			"How do you evaluate and choose between different technical solutions?",
			"What's your philosophy on software architecture?",
			"How do you measure the success of a software project?",
			"What role should developers play in product decisions?",
			"How do you balance innovation with stability in software development?",
		},
	},
}

// RolePool groups role-specific questions under a pool label such as
// "technical" or "coding"
type RolePool struct {
	Label     string
	Questions []string
}

// RoleQuestionBank holds the curated questions for one role key. Role keys
// are matched by substring against the requested job role, in declaration
// order.
type RoleQuestionBank struct {
	Role  string
	Pools []RolePool
}

var roleQuestionBanks = []RoleQuestionBank{
	{
		Role: "software engineer",
		Pools: []RolePool{
			{Label: "technical", Questions: []string{
				"Explain the difference between synchronous and asynchronous programming.",
				"How would you design a REST API for a social media platform?",
				"What are the SOLID principles and why are they important?",
				"Explain the concept of Big O notation with examples.",
				"How do you ensure your code is maintainable and scalable?",
			}},
			{Label: "coding", Questions: []string{
				"Write a function to reverse a string without using built-in methods.",
				"Implement a binary search algorithm.",
				"How would you find the duplicate number in an array?",
				"Design a data structure for a LRU cache.",
				"Write code to detect if a linked list has a cycle.",
			}},
		},
	},
	{
		Role: "frontend developer",
		Pools: []RolePool{
			{Label: "technical", Questions: []string{
				"Explain the difference between var, let, and const in JavaScript.",
				"How does the virtual DOM work in React?",
				"What are CSS Grid and Flexbox? When would you use each?",
				"Explain event bubbling and capturing in JavaScript.",
				"How do you optimize web application performance?",
			}},
		},
	},
	{
		Role: "backend developer",
		Pools: []RolePool{
			{Label: "technical", Questions: []string{
				"Explain the difference between SQL and NoSQL databases.",
				"How would you design a database schema for an e-commerce platform?",
				"What are microservices and their advantages?",
				"How do you handle authentication and authorization?",
				"Explain caching strategies and when to use them.",
			}},
		},
	},
	{
		Role: "data scientist",
		Pools: []RolePool{
			{Label: "technical", Questions: []string{
				"Explain the difference between supervised and unsupervised learning.",
				"How would you handle missing data in a dataset?",
				"What is overfitting and how do you prevent it?",
				"Explain the bias-variance tradeoff.",
				"How do you evaluate the performance of a machine learning model?",
			}},
		},
	},
}

// Expected-answer guidance attached per category
const (
	behavioralExpectation  = "Expected to use STAR method (Situation, Task, Action, Result) to provide specific examples."
	situationalExpectation = "Expected to demonstrate problem-solving approach and decision-making process."
	generalExpectation     = "Expected to show passion, communication skills, and cultural fit."
)
