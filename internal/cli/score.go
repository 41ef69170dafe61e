package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/common"
	"resumeforge/internal/resume"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume's completeness",
	Long: `Score how complete a resume is. The resume file must be JSON.

The report includes an overall completeness percentage and entry counts
for each resume section. Completeness weighs contact details, the summary,
work history, education, skills, projects and certifications.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}

	var r types.Resume
	if err := json.Unmarshal([]byte(contents[0]), &r); err != nil {
		return fmt.Errorf("resume file is not valid JSON: %w", err)
	}
	r = resume.Normalize(r)

	logger.Info("Scoring resume completeness",
		"resume_id", r.ID,
		"output_format", scoreConfig.OutputFormat)

	report := buildCompletenessReport(r)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(report, scoreConfig)
}

// buildCompletenessReport assembles the completeness score and per-section
// entry counts for a resume
func buildCompletenessReport(r types.Resume) types.CompletenessReport {
	return types.CompletenessReport{
		ResumeID:     r.ID,
		Name:         strings.TrimSpace(r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName),
		Completeness: resume.Completeness(r),
		Sections: []types.SectionCount{
			{Section: "experience", Count: len(r.WorkExperience)},
			{Section: "education", Count: len(r.Education)},
			{Section: "skills", Count: len(r.Skills)},
			{Section: "projects", Count: len(r.Projects)},
			{Section: "certifications", Count: len(r.Certifications)},
		},
	}
}
