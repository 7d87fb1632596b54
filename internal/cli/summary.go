package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"prepmatter/internal/common"
	"prepmatter/internal/feedback"
	"prepmatter/internal/types"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [session-file]",
	Short: "Summarize a completed practice interview session",
	Long: `Summarize a practice interview session from a JSON session file.
The file holds the questions asked during the session together with the
per-answer feedback each one received, for example the JSON output of the
analyze command collected per question:

  {"questions": [{"question": "...", "category": "technical", "feedback": {...}}]}

The summary averages the per-answer scores into session-level scores and
produces overall strengths, improvement areas and recommendations.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if summaryConfig.OutputFormat == "" {
			summaryConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(summaryConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSummary,
}

var summaryConfig common.CommandConfig

func init() {
	summaryCmd.Flags().StringVarP(&summaryConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	summaryCmd.Flags().StringVar(&summaryConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = summaryCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	synthesizer := feedback.NewSynthesizer(logger)

	createInput := func(contents []string) (types.InterviewSummaryInput, error) {
		if len(contents) != 1 {
			return types.InterviewSummaryInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		var input types.InterviewSummaryInput
		if err := json.Unmarshal([]byte(contents[0]), &input); err != nil {
			return types.InterviewSummaryInput{}, fmt.Errorf("invalid session file: %w", err)
		}
		return input, nil
	}

	logDetails := func(input types.InterviewSummaryInput, cfg common.CommandConfig) {
		logger.Info("Starting interview summarization",
			"total_questions", len(input.Questions),
			"output_format", cfg.OutputFormat)
	}

	summaryOperation := func(ctx context.Context, input types.InterviewSummaryInput) (types.InterviewSummary, error) {
		return synthesizer.SummarizeInterview(input), nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		summaryConfig,
		cfg.App.MaxFileSize,
		args,
		createInput,
		summaryOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to summarize interview: %w", err)
	}
	logger.Info("Interview summarization completed successfully")
	return nil
}
