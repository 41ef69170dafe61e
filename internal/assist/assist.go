package assist

import (
	"context"
	"fmt"
	"strings"

	"resumeforge/internal/ai"
	"resumeforge/internal/errors"
	"resumeforge/internal/store"
	"resumeforge/internal/types"
)

// SummaryFallback is returned when summary generation fails for any reason
const SummaryFallback = "Unable to generate summary. Please try again."

// Service produces AI-assisted resume content. Every operation degrades to a
// safe fallback instead of returning an error; callers always get usable text.
type Service struct {
	ai     *ai.Service
	store  *store.Store
	logger *errors.Logger
}

// New creates an assist service. The store may be nil for one-shot CLI use;
// loading flags are then skipped.
func New(aiSvc *ai.Service, st *store.Store, logger *errors.Logger) *Service {
	return &Service{
		ai:     aiSvc,
		store:  st,
		logger: logger,
	}
}

// GenerateSummary produces a professional summary for the resume. On any
// failure the fallback message is returned in place of generated text.
func (s *Service) GenerateSummary(ctx context.Context, r types.Resume) string {
	s.setLoading(true)
	defer s.setLoading(false)

	text, usage, err := s.ai.Generate(ctx, ai.PromptGenerateSummary,
		summaryName(r.PersonalInfo),
		r.PersonalInfo.Title,
		summaryWork(r.WorkExperience),
		summarySkills(r.Skills),
		summaryEducation(r.Education),
	)
	if err != nil {
		s.logError(err, "Summary generation failed", "resume_id", r.ID)
		return SummaryFallback
	}
	s.logUsage("generate_summary", usage)

	text = strings.TrimSpace(text)
	if text == "" {
		return SummaryFallback
	}
	return text
}

// ImproveDescription rewrites a work experience description. The original
// text is returned unchanged when generation fails or yields nothing.
func (s *Service) ImproveDescription(ctx context.Context, description, position, company string) string {
	s.setLoading(true)
	defer s.setLoading(false)

	text, usage, err := s.ai.Generate(ctx, ai.PromptImproveDescription, position, company, description)
	if err != nil {
		s.logError(err, "Description improvement failed", "position", position, "company", company)
		return description
	}
	s.logUsage("improve_description", usage)

	text = strings.TrimSpace(text)
	if text == "" {
		return description
	}
	return text
}

// SuggestSkills returns skill names relevant to a job title. Failures yield
// an empty list, never an error.
func (s *Service) SuggestSkills(ctx context.Context, jobTitle string) []string {
	s.setLoading(true)
	defer s.setLoading(false)

	text, usage, err := s.ai.Generate(ctx, ai.PromptSuggestSkills, jobTitle)
	if err != nil {
		s.logError(err, "Skill suggestion failed", "job_title", jobTitle)
		return []string{}
	}
	s.logUsage("suggest_skills", usage)

	return ai.SplitList(text)
}

func (s *Service) setLoading(active bool) {
	if s.store != nil {
		s.store.SetLoading(store.FlagGeneratingContent, active)
	}
}

func (s *Service) logError(err error, msg string, args ...any) {
	if s.logger != nil {
		s.logger.LogError(err, msg, args...)
	}
}

func (s *Service) logUsage(operation string, usage *ai.TokenUsage) {
	if s.logger == nil || usage == nil {
		return
	}
	s.logger.Debug("Assist operation completed",
		"operation", operation,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens)
}

// summaryName renders the candidate name for the summary prompt
func summaryName(p types.PersonalInfo) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// summaryWork renders work history as "Position at Company (start - end)" items
func summaryWork(entries []types.WorkExperience) string {
	items := make([]string, 0, len(entries))
	for _, exp := range entries {
		end := exp.EndDate
		if exp.Current {
			end = "Present"
		}
		items = append(items, fmt.Sprintf("%s at %s (%s - %s)", exp.Position, exp.Company, exp.StartDate, end))
	}
	return strings.Join(items, ", ")
}

func summarySkills(skills []types.Skill) string {
	names := make([]string, 0, len(skills))
	for _, sk := range skills {
		names = append(names, sk.Name)
	}
	return strings.Join(names, ", ")
}

// summaryEducation renders education as "Degree in Field from Institution" items
func summaryEducation(entries []types.Education) string {
	items := make([]string, 0, len(entries))
	for _, edu := range entries {
		items = append(items, fmt.Sprintf("%s in %s from %s", edu.Degree, edu.Field, edu.Institution))
	}
	return strings.Join(items, ", ")
}
