package cli

import (
	"context"
	"fmt"

	"prepmatter/internal/common"
	"prepmatter/internal/resume"
	"prepmatter/internal/types"

	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume [resume-file]",
	Short: "Extract a structured profile from resume text",
	Long: `Parse a plain text resume into a structured profile: recognized
skills, experience and education entries, projects, contact information and
a summary section.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if parseResumeConfig.OutputFormat == "" {
			parseResumeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(parseResumeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParseResume,
}

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume [resume-file]",
	Short: "Analyze a resume against a target role",
	Long: `Parse a plain text resume and assess it: strengths and weaknesses,
skill coverage by category, and a match score against a target role with the
skills missing for that role.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeResumeConfig.OutputFormat == "" {
			analyzeResumeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeResumeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyzeResume,
}

var (
	parseResumeConfig   common.CommandConfig
	analyzeResumeConfig common.CommandConfig
	analyzeResumeRole   string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeResumeCmd.Flags().StringVar(&analyzeResumeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeResumeCmd.Flags().StringVar(&analyzeResumeRole, "role", "", "Target job role to match the resume against")

	// Add completion for format flags
	formatCompletion := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	}
	_ = parseResumeCmd.RegisterFlagCompletionFunc("format", formatCompletion)
	_ = analyzeResumeCmd.RegisterFlagCompletionFunc("format", formatCompletion)
}

func runParseResume(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	parser := resume.NewParser(logger)

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, input string) (types.ResumeProfile, error) {
		return parser.Parse(input), nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		parseResumeConfig,
		cfg.App.MaxFileSize,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}

func runAnalyzeResume(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	parser := resume.NewParser(logger)

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input),
			"target_role", analyzeResumeRole,
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input string) (types.ResumeInsights, error) {
		profile := parser.Parse(input)
		return parser.Analyze(&profile, analyzeResumeRole), nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		analyzeResumeConfig,
		cfg.App.MaxFileSize,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
