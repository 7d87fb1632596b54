package cli

import (
	"fmt"

	"prepmatter/internal/common"
	"prepmatter/internal/question"
	"prepmatter/internal/types"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [job-role]",
	Short: "Generate practice interview questions for a role",
	Long: `Generate a set of practice interview questions for a target job role.
The set mixes technical, behavioral, situational and general questions, with
the blend of categories determined by the requested count. Skill-specific
technical questions can be added with the --skills flag.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if questionsConfig.OutputFormat == "" {
			questionsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(questionsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runQuestions,
}

var (
	questionsConfig     common.CommandConfig
	questionsDifficulty string
	questionsSkills     []string
	questionsCount      int
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	questionsCmd.Flags().StringVar(&questionsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	questionsCmd.Flags().StringVar(&questionsDifficulty, "difficulty", "intermediate", "Experience level: beginner, intermediate, or advanced")
	questionsCmd.Flags().StringSliceVar(&questionsSkills, "skills", nil, "Skills to generate technical questions for")
	questionsCmd.Flags().IntVarP(&questionsCount, "count", "n", 5, "Number of questions to generate")

	// Add completion for format flag
	_ = questionsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runQuestions(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	input := types.GenerateQuestionsInput{
		JobRole:       args[0],
		Difficulty:    questionsDifficulty,
		Skills:        questionsSkills,
		QuestionCount: questionsCount,
	}

	logger.Info("Starting question generation",
		"job_role", input.JobRole,
		"difficulty", input.Difficulty,
		"question_count", input.QuestionCount,
		"output_format", questionsConfig.OutputFormat)

	generator := question.NewGenerator(logger)
	result := generator.Generate(input)

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(result, questionsConfig); err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}
	logger.Info("Question generation completed successfully",
		"questions_generated", len(result.Questions))
	return nil
}
