// Package ats matches resumes against job descriptions through the AI
// boundary and folds the verdict back into application state.
package ats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/ai"
	"resumeforge/internal/errors"
	"resumeforge/internal/resume"
	"resumeforge/internal/store"
	"resumeforge/internal/types"
)

// FailureSuggestion is surfaced when an analysis cannot be completed
const FailureSuggestion = "Error analyzing resume. Please try again."

// Analyzer runs ATS analyses. It never returns an error to its caller; a
// failed run yields the fallback analysis instead.
type Analyzer struct {
	ai     *ai.Service
	store  *store.Store
	logger *errors.Logger
}

// New creates an analyzer. The store may be nil for one-shot CLI use; state
// write-back and loading flags are then skipped.
func New(aiSvc *ai.Service, st *store.Store, logger *errors.Logger) *Analyzer {
	return &Analyzer{
		ai:     aiSvc,
		store:  st,
		logger: logger,
	}
}

// FallbackAnalysis is the result reported when analysis fails
func FallbackAnalysis() types.ATSAnalysis {
	return types.ATSAnalysis{
		Score:           0,
		MissingKeywords: []string{},
		Suggestions:     []string{FailureSuggestion},
		KeywordMatches:  []types.KeywordMatch{},
		SectionFeedback: []types.SectionFeedback{},
	}
}

// Analyze scores the resume against the job description. Keywords are
// extracted from the posting first and carried on the job copy; the match
// verdict is stored only while the analyzed resume is still the current one,
// so a late result cannot clobber a newer selection.
func (a *Analyzer) Analyze(ctx context.Context, r types.Resume, job types.JobDescription) types.ATSAnalysis {
	a.setLoading(true)
	defer a.setLoading(false)

	// Best effort: a failed extraction leaves the posting as provided
	if keywords := a.ExtractKeywords(ctx, job.Description); len(keywords) > 0 {
		job.Keywords = keywords
	}
	if a.store != nil {
		a.store.SetActiveJobDescription(job)
	}

	analysis, err := a.runMatch(ctx, r, job)
	if err != nil {
		a.logError(err, "ATS analysis failed", "resume_id", r.ID)
		analysis = FallbackAnalysis()
	}

	if a.store != nil {
		if a.store.CurrentResumeID() == r.ID {
			a.store.ApplyAnalysis(r.ID, analysis, job.Keywords)
		} else {
			// Selection moved on while the model was thinking
			a.logDebug("analysis result not stored, current resume changed",
				"analyzed_id", r.ID,
				"current_id", a.store.CurrentResumeID())
		}
	}

	return analysis
}

// ExtractKeywords pulls ATS-relevant keywords out of a job description.
// Failures yield an empty list, never an error.
func (a *Analyzer) ExtractKeywords(ctx context.Context, description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{}
	}

	text, usage, err := a.ai.Generate(ctx, ai.PromptExtractKeywords, description)
	if err != nil {
		a.logError(err, "Keyword extraction failed")
		return []string{}
	}
	a.logUsage("extract_keywords", usage)

	return ai.SplitList(text)
}

// runMatch performs the model call and parses the verdict
func (a *Analyzer) runMatch(ctx context.Context, r types.Resume, job types.JobDescription) (types.ATSAnalysis, error) {
	text, usage, err := a.ai.Generate(ctx, ai.PromptJobMatch, resume.PlainText(r), renderJob(job))
	if err != nil {
		return types.ATSAnalysis{}, err
	}
	a.logUsage("job_match", usage)

	return parseAnalysis(text)
}

// parseAnalysis decodes a model response into an ATSAnalysis. The response
// may wrap the JSON in prose or a fenced block.
func parseAnalysis(text string) (types.ATSAnalysis, error) {
	block, ok := ai.ExtractJSONBlock(text)
	if !ok {
		return types.ATSAnalysis{}, errors.NewAIError(errors.ErrCodeParseFailed,
			"No JSON object in analysis response", nil)
	}

	var analysis types.ATSAnalysis
	if err := json.Unmarshal([]byte(block), &analysis); err != nil {
		return types.ATSAnalysis{}, errors.NewAIError(errors.ErrCodeParseFailed,
			"Malformed JSON in analysis response", err)
	}

	return normalizeAnalysis(analysis), nil
}

// normalizeAnalysis clamps the score into [0,100] and replaces nil slices
// with empty ones so consumers never see null fields.
func normalizeAnalysis(a types.ATSAnalysis) types.ATSAnalysis {
	if a.Score < 0 {
		a.Score = 0
	}
	if a.Score > 100 {
		a.Score = 100
	}
	if a.MissingKeywords == nil {
		a.MissingKeywords = []string{}
	}
	if a.Suggestions == nil {
		a.Suggestions = []string{}
	}
	if a.KeywordMatches == nil {
		a.KeywordMatches = []types.KeywordMatch{}
	}
	if a.SectionFeedback == nil {
		a.SectionFeedback = []types.SectionFeedback{}
	}
	return a
}

// renderJob flattens a posting for the match prompt
func renderJob(job types.JobDescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job Title: %s\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n", job.Company)
	fmt.Fprintf(&b, "Description: %s\n", job.Description)
	fmt.Fprintf(&b, "Required Skills: %s", strings.Join(job.Skills, ", "))
	if len(job.Keywords) > 0 {
		fmt.Fprintf(&b, "\nKeywords: %s", strings.Join(job.Keywords, ", "))
	}
	return b.String()
}

func (a *Analyzer) setLoading(active bool) {
	if a.store != nil {
		a.store.SetLoading(store.FlagAnalyzingResume, active)
	}
}

func (a *Analyzer) logError(err error, msg string, args ...any) {
	if a.logger != nil {
		a.logger.LogError(err, msg, args...)
	}
}

func (a *Analyzer) logDebug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func (a *Analyzer) logUsage(operation string, usage *ai.TokenUsage) {
	if a.logger == nil || usage == nil {
		return
	}
	a.logger.Debug("Analysis operation completed",
		"operation", operation,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens)
}
