package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"prepmatter/internal/observability"
	"prepmatter/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

const defaultQuestionCount = 5

// createAnalyzeAnswerHandler wraps the answer analysis handler with observability
func (s *Server) createAnalyzeAnswerHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("prepmatter.api")
		ctx, span := tracer.Start(ctx, "api.analyze_answer")
		defer span.End()

		var req AnalyzeAnswerRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Question) == "" {
			err := fmt.Errorf("missing question")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing question", "question field is required", http.StatusBadRequest)
			return
		}
		if req.Answer == "" {
			err := fmt.Errorf("missing answer")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing answer", "answer field is required", http.StatusBadRequest)
			return
		}

		if len(req.Answer) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("answer too large: %d chars", len(req.Answer))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Answer too large", fmt.Sprintf("answer exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		category := string(types.ParseCategory(req.Category))
		span.SetAttributes(
			attribute.Int("request.answer_length", len(req.Answer)),
			attribute.String("request.category", category),
			attribute.String("operation", "analyze_answer"),
		)

		input := types.AnalyzeAnswerInput{
			Question: req.Question,
			Answer:   req.Answer,
			Category: category,
			JobRole:  req.JobRole,
		}

		metrics := om.GetMetrics()
		var result AnalyzeAnswerResponse
		err := metrics.TrackOperation(ctx, "analyze_answer", func(ctx context.Context) error {
			analysis := s.Analyzer.Analyze(ctx, input)
			result.Analysis = analysis
			result.Feedback = s.Synthesizer.Generate(&analysis)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "answer_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze answer", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordOverallScore(ctx, result.Analysis.Scores.OverallScore, category, om)
		metrics.RecordBusinessMetric(ctx, "answer_analyzed", true, om,
			attribute.String("category", category),
			attribute.Int("score", result.Feedback.Score))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.score", result.Feedback.Score),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createGenerateQuestionsHandler wraps the question generation handler with observability
func (s *Server) createGenerateQuestionsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("prepmatter.api")
		ctx, span := tracer.Start(ctx, "api.generate_questions")
		defer span.End()

		var req GenerateQuestionsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobRole) == "" {
			err := fmt.Errorf("missing job role")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job role", "jobRole field is required", http.StatusBadRequest)
			return
		}

		count := req.QuestionCount
		if count <= 0 {
			count = defaultQuestionCount
		}

		span.SetAttributes(
			attribute.String("request.job_role", req.JobRole),
			attribute.String("request.difficulty", req.Difficulty),
			attribute.Int("request.question_count", count),
			attribute.String("operation", "generate_questions"),
		)

		input := types.GenerateQuestionsInput{
			JobRole:       req.JobRole,
			Difficulty:    req.Difficulty,
			Skills:        req.Skills,
			QuestionCount: count,
		}

		metrics := om.GetMetrics()
		var result types.QuestionSet
		err := metrics.TrackOperation(ctx, "generate_questions", func(ctx context.Context) error {
			result = s.Generator.Generate(input)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "questions_generated", false, om)
			writeErrorResponse(w, "Failed to generate questions", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "questions_generated", true, om,
			attribute.Int("questions_count", len(result.Questions)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.questions_count", len(result.Questions)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseResumeHandler wraps the resume parsing handler with observability
func (s *Server) createParseResumeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("prepmatter.api")
		ctx, span := tracer.Start(ctx, "api.parse_resume")
		defer span.End()

		var req ParseResumeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "parse_resume"),
		)

		metrics := om.GetMetrics()
		var result types.ResumeProfile
		err := metrics.TrackOperation(ctx, "parse_resume", func(ctx context.Context) error {
			result = s.Parser.Parse(req.ResumeText)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om)
			writeErrorResponse(w, "Failed to parse resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("skills_count", len(result.Skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.skills_count", len(result.Skills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createAnalyzeResumeHandler wraps the resume insights handler with observability
func (s *Server) createAnalyzeResumeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("prepmatter.api")
		ctx, span := tracer.Start(ctx, "api.analyze_resume")
		defer span.End()

		var req AnalyzeResumeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("request.target_role", req.TargetRole),
			attribute.String("operation", "analyze_resume"),
		)

		metrics := om.GetMetrics()
		var result AnalyzeResumeResponse
		err := metrics.TrackOperation(ctx, "analyze_resume", func(ctx context.Context) error {
			result.Profile = s.Parser.Parse(req.ResumeText)
			result.Insights = s.Parser.Analyze(&result.Profile, req.TargetRole)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om)
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("skills_count", len(result.Profile.Skills)),
			attribute.Float64("match_score", result.Insights.MatchScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("response.match_score", result.Insights.MatchScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createInterviewSummaryHandler wraps the interview summary handler with observability
func (s *Server) createInterviewSummaryHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("prepmatter.api")
		ctx, span := tracer.Start(ctx, "api.interview_summary")
		defer span.End()

		var req InterviewSummaryRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.questions_count", len(req.Questions)),
			attribute.String("operation", "interview_summary"),
		)

		input := types.InterviewSummaryInput{Questions: req.Questions}

		metrics := om.GetMetrics()
		var result types.InterviewSummary
		err := metrics.TrackOperation(ctx, "interview_summary", func(ctx context.Context) error {
			result = s.Synthesizer.SummarizeInterview(input)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "interview_summarized", false, om)
			writeErrorResponse(w, "Failed to summarize interview", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "interview_summarized", true, om,
			attribute.Int("questions_answered", result.QuestionsAnswered),
			attribute.Int("overall_score", result.OverallScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.overall_score", result.OverallScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
