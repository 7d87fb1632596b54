package server

import (
	"time"

	"prepmatter/internal/analysis"
	"prepmatter/internal/config"
	prepmatterErrors "prepmatter/internal/errors"
	"prepmatter/internal/feedback"
	"prepmatter/internal/nlp"
	"prepmatter/internal/question"
	"prepmatter/internal/resume"
	"prepmatter/internal/types"
)

// AnalyzeAnswerRequest represents the request body for the analyze-answer endpoint
type AnalyzeAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	JobRole  string `json:"jobRole"`
}

// GenerateQuestionsRequest represents the request body for the generate-questions endpoint
type GenerateQuestionsRequest struct {
	JobRole       string   `json:"jobRole"`
	Difficulty    string   `json:"difficulty"`
	Skills        []string `json:"skills,omitempty"`
	QuestionCount int      `json:"questionCount"`
}

// ParseResumeRequest represents the request body for the parse-resume endpoint
type ParseResumeRequest struct {
	ResumeText string `json:"resumeText"`
}

// AnalyzeResumeRequest represents the request body for the analyze-resume endpoint
type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
	TargetRole string `json:"targetRole,omitempty"`
}

// AnalyzeResumeResponse pairs the parsed profile with its insights
type AnalyzeResumeResponse struct {
	Profile  types.ResumeProfile  `json:"profile"`
	Insights types.ResumeInsights `json:"insights"`
}

// InterviewSummaryRequest represents the request body for the interview-summary endpoint
type InterviewSummaryRequest struct {
	Questions []types.AnsweredQuestion `json:"questions"`
}

// AnalyzeAnswerResponse pairs the feedback with the underlying analysis
type AnalyzeAnswerResponse struct {
	Feedback types.AnswerFeedback `json:"feedback"`
	Analysis types.AnswerAnalysis `json:"analysis"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Scoring pipeline services
	NLPService  *nlp.Service
	Analyzer    *analysis.Analyzer
	Synthesizer *feedback.Synthesizer
	Generator   *question.Generator
	Parser      *resume.Parser

	// Logger
	Logger *prepmatterErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *prepmatterErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	nlpService, err := nlp.NewService(&appCfg.NLP, logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		NLPService:     nlpService,
		Analyzer:       analysis.NewAnalyzer(nlpService, logger),
		Synthesizer:    feedback.NewSynthesizer(logger),
		Generator:      question.NewGenerator(logger),
		Parser:         resume.NewParser(logger),
		Logger:         logger,
	}, nil
}
