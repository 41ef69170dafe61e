package cli

import (
	"fmt"
	"strings"

	"resumeforge/internal/ai"
	"resumeforge/internal/assist"
	"resumeforge/internal/common"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [job-title]",
	Short: "Suggest relevant skills for a job title",
	Long: `Suggest skills worth adding to a resume targeting a given job title.
Multi-word titles can be passed as separate arguments or quoted.

An unavailable AI backend yields an empty suggestion list rather than
an error.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if suggestConfig.OutputFormat == "" {
			suggestConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(suggestConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSuggest,
}

var suggestConfig common.CommandConfig

func init() {
	suggestCmd.Flags().StringVarP(&suggestConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	suggestCmd.Flags().StringVar(&suggestConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = suggestCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	jobTitle := strings.TrimSpace(strings.Join(args, " "))
	if jobTitle == "" {
		return fmt.Errorf("job title must not be blank")
	}

	// Create AI service for generate operation
	generateAIConfig := cfg.GetGenerateConfig()
	aiService, err := ai.NewService(&generateAIConfig, "generate", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	assistService := assist.New(aiService, nil, logger)

	logger.Info("Suggesting skills",
		"job_title", jobTitle,
		"output_format", suggestConfig.OutputFormat)

	suggestions := types.SkillSuggestions{
		JobTitle: jobTitle,
		Skills:   assistService.SuggestSkills(cmd.Context(), jobTitle),
	}

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(suggestions, suggestConfig); err != nil {
		return err
	}
	logger.Info("Skill suggestion completed", "skill_count", len(suggestions.Skills))
	return nil
}
