package feedback

// Template pools for feedback synthesis. One entry is drawn at random from
// the pool matching each triggered rule.
var strengthTemplates = map[string][]string{
	"high_technical": {
		"Excellent technical depth and accuracy in your response",
		"Strong demonstration of technical knowledge and expertise",
		"Impressive understanding of technical concepts and implementation",
		"Great technical insight and practical application knowledge",
	},
	"good_structure": {
		"Well-structured and organized response",
		"Clear logical flow in your explanation",
		"Excellent use of the STAR method for storytelling",
		"Good progression from problem to solution",
	},
	"high_confidence": {
		"Confident and assured delivery",
		"Strong conviction in your responses",
		"Excellent communication confidence",
		"Clear and decisive communication style",
	},
	"good_examples": {
		"Great use of specific examples and real-world scenarios",
		"Excellent concrete examples that illustrate your points",
		"Strong practical examples that demonstrate experience",
		"Good use of case studies and specific instances",
	},
	"comprehensive": {
		"Comprehensive and thorough response",
		"Complete coverage of all question aspects",
		"Detailed and well-rounded answer",
		"Thorough exploration of the topic",
	},
}

var improvementTemplates = map[string][]string{
	"low_technical": {
		"Consider adding more technical details and depth",
		"Include more specific technical examples and implementations",
		"Expand on the technical aspects of your solution",
		"Provide more detailed technical reasoning",
	},
	"poor_structure": {
		"Try to organize your response with a clearer structure",
		"Consider using the STAR method for behavioral questions",
		"Improve the logical flow of your explanation",
		"Structure your answer with clear beginning, middle, and end",
	},
	"low_confidence": {
		"Speak with more confidence and conviction",
		"Reduce hedge words like 'maybe' and 'I think'",
		"Be more assertive in your responses",
		"Practice speaking with greater certainty",
	},
	"insufficient_examples": {
		"Include more specific examples from your experience",
		"Add concrete scenarios to illustrate your points",
		"Provide real-world examples to support your answers",
		"Use more detailed case studies and specific instances",
	},
	"incomplete": {
		"Provide more comprehensive coverage of the question",
		"Address all parts of the multi-part question",
		"Expand your response to be more thorough",
		"Include more detail to fully answer the question",
	},
	"too_brief": {
		"Expand your response with more detail and examples",
		"Provide a more comprehensive answer",
		"Add more depth to your explanation",
		"Include additional context and background",
	},
	"too_verbose": {
		"Try to be more concise while maintaining key points",
		"Focus on the most important aspects of your answer",
		"Streamline your response for better clarity",
		"Practice delivering more focused responses",
	},
}

var suggestionTemplates = map[string][]string{
	"technical_improvement": {
		"Practice explaining technical concepts in simple terms",
		"Prepare specific examples of your technical work",
		"Study common technical interview questions for your role",
		"Practice whiteboarding and code explanation",
	},
	"communication_improvement": {
		"Practice the STAR method for behavioral questions",
		"Work on speaking with more confidence and less hesitation",
		"Practice structuring your responses clearly",
		"Record yourself answering questions to improve delivery",
	},
	"preparation_tips": {
		"Research the company and role more thoroughly",
		"Prepare more specific examples from your experience",
		"Practice common interview questions for your field",
		"Review your resume and be ready to discuss each point",
	},
}

const (
	fallbackStrengthGood    = "Good effort in addressing the question"
	fallbackStrengthThanks  = "Thank you for providing a response"
	starMethodSuggestion    = "Practice using the STAR method (Situation, Task, Action, Result) for behavioral questions"
	hedgeWordSuggestion     = "Reduce filler words and hedge phrases to sound more confident"
	defaultSuggestion       = "Continue practicing interview questions to build confidence and improve responses"
	incompleteInterviewText = "Interview not completed"
	mockInterviewAdvice     = "Continue practicing with mock interviews to build confidence."
)
