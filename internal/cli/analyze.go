package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"resumeforge/internal/ai"
	"resumeforge/internal/ats"
	"resumeforge/internal/common"
	"resumeforge/internal/job"
	"resumeforge/internal/resume"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file] [job-description-file]",
	Short: "Analyze a resume against a job description for ATS compatibility",
	Long: `Analyze a resume against a job description to evaluate how well it would
perform in applicant tracking systems. The resume file must be JSON; the job
description file is plain text.

The analysis includes:
- An ATS compatibility score from 0 to 100
- Keyword matches with occurrence counts and importance
- Keywords from the posting that are missing from the resume
- Per-section feedback and scores
- Concrete improvement suggestions`,
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

var analyzeConfig common.CommandConfig

var (
	analyzeJobTitle   string
	analyzeJobCompany string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "title", "", "Job title of the posting")
	analyzeCmd.Flags().StringVar(&analyzeJobCompany, "company", "", "Company of the posting")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// analyzeInput pairs the parsed resume with the posting it is matched against
type analyzeInput struct {
	Resume types.Resume
	Job    types.JobDescription
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for analyze operation
	analyzeAIConfig := cfg.GetAnalyzeConfig()
	aiService, err := ai.NewService(&analyzeAIConfig, "analyze", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	analyzer := ats.New(aiService, nil, logger)

	createInput := func(contents []string) (analyzeInput, error) {
		if len(contents) != 2 {
			return analyzeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		var r types.Resume
		if err := json.Unmarshal([]byte(contents[0]), &r); err != nil {
			return analyzeInput{}, fmt.Errorf("resume file is not valid JSON: %w", err)
		}
		return analyzeInput{
			Resume: resume.Normalize(r),
			Job:    job.New(analyzeJobTitle, analyzeJobCompany, contents[1]),
		}, nil
	}

	logDetails := func(input analyzeInput, cfg common.CommandConfig) {
		logger.Info("Starting ATS analysis",
			"resume_id", input.Resume.ID,
			"job_title", input.Job.Title,
			"job_chars", len(input.Job.Description),
			"output_format", cfg.OutputFormat)
	}

	// Token usage is logged by the analyzer itself
	analyzeOperation := func(ctx context.Context, input analyzeInput) (types.ATSAnalysis, *ai.TokenUsage, error) {
		return analyzer.Analyze(ctx, input.Resume, input.Job), nil, nil
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("ATS analysis completed successfully")
	return nil
}
