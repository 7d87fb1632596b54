package cli

import (
	"context"
	"fmt"

	"prepmatter/internal/analysis"
	"prepmatter/internal/common"
	"prepmatter/internal/feedback"
	"prepmatter/internal/nlp"
	"prepmatter/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [question-file] [answer-file]",
	Short: "Score an interview answer and generate feedback",
	Long: `Score an interview answer against the question it responds to.
The command takes two arguments: the path to a file containing the interview
question and the path to a file containing your answer. Both files should be
in plain text format.

The answer is scored on content quality, technical depth, structure,
confidence and completeness, and the scores are turned into actionable
feedback with strengths, improvement areas and suggestions.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig   common.CommandConfig
	analyzeCategory string
	analyzeRole     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVar(&analyzeCategory, "category", "general", "Question category: technical, behavioral, situational, or general")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target job role for technical vocabulary matching")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	nlpService, err := nlp.NewService(&cfg.NLP, logger)
	if err != nil {
		return fmt.Errorf("failed to create NLP service: %w", err)
	}
	analyzer := analysis.NewAnalyzer(nlpService, logger)
	synthesizer := feedback.NewSynthesizer(logger)

	createInput := func(contents []string) (types.AnalyzeAnswerInput, error) {
		if len(contents) != 2 {
			return types.AnalyzeAnswerInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.AnalyzeAnswerInput{
			Question: contents[0],
			Answer:   contents[1],
			Category: string(types.ParseCategory(analyzeCategory)),
			JobRole:  analyzeRole,
		}, nil
	}

	logDetails := func(input types.AnalyzeAnswerInput, cfg common.CommandConfig) {
		logger.Info("Starting answer analysis",
			"question_chars", len(input.Question),
			"answer_chars", len(input.Answer),
			"category", input.Category,
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input types.AnalyzeAnswerInput) (types.AnswerFeedback, error) {
		result := analyzer.Analyze(ctx, input)
		return synthesizer.Generate(&result), nil
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		cfg.App.MaxFileSize,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze answer: %w", err)
	}
	logger.Info("Answer analysis completed successfully")
	return nil
}
