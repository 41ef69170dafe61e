package ai

import (
	"resumeforge/internal/config"
)

// PromptKind identifies a user prompt template. The value doubles as the
// operation name on traces and in logs.
type PromptKind string

const (
	PromptGenerateSummary    PromptKind = "generate_summary"
	PromptImproveDescription PromptKind = "improve_description"
	PromptSuggestSkills      PromptKind = "suggest_skills"
	PromptExtractKeywords    PromptKind = "extract_keywords"
	PromptJobMatch           PromptKind = "job_match"
)

// SystemPrompts contains system-level instructions for AI interactions
type SystemPrompts struct {
	GenerateContent string
	AnalyzeMatch    string
}

// UserPrompts contains user-level prompt templates with placeholders for dynamic content
type UserPrompts struct {
	GenerateSummary    string
	ImproveDescription string
	SuggestSkills      string
	ExtractKeywords    string
	JobMatch           string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	GenerateContent: `You are an expert resume writer and career coach with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills or experiences
- Every piece of information must be directly traceable to the source material
- Write concise, impactful, achievement-oriented prose
- Optimize wording for ATS (Applicant Tracking System) screening

Your expertise includes:
- Professional summary writing
- Work experience descriptions with quantified outcomes
- Skill identification for specific roles`,

	AnalyzeMatch: `You are an expert ATS (Applicant Tracking System) analyzer and recruitment specialist. Your role is to:

- Score resumes against job descriptions the way a real ATS would
- Identify keywords that are present, missing, and weighted by importance
- Give section-by-section feedback that a candidate can act on
- Base every observation on the provided documents, never on assumptions

When asked for JSON output, return only the JSON with no surrounding commentary.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	GenerateSummary: `Generate a professional resume summary based on the following information:
Name: %s
Title: %s
Work Experience: %s
Skills: %s
Education: %s

Make it concise (3-4 sentences), professional, impactful, and optimized for ATS systems.`,

	ImproveDescription: `Improve the following work experience description for a %s position at %s.
Make it more impactful, quantitative when possible, and optimized for ATS systems.
Use active voice, focus on achievements, and keep it concise yet comprehensive.

Original Description:
%s

Improved Description (in approximately the same length):`,

	SuggestSkills: `Generate a list of 10-15 relevant technical and soft skills for a %s position.
Consider both technical skills and soft skills that would be valuable for this role.
Only return the list of skills separated by commas, no other text.`,

	ExtractKeywords: `Extract the most important keywords from the following job description that
should appear in a resume to pass ATS screening. Focus on hard skills,
technical competencies, and specific qualifications mentioned.

Job Description:
%s

Return only a list of 10-15 keywords separated by commas, nothing else.`,

	JobMatch: `You are an expert ATS (Applicant Tracking System) analyzer. Analyze the following resume for its compatibility with the job description.

RESUME:
%s

JOB DESCRIPTION:
%s

Provide a detailed analysis in this JSON format:
{
  "score": [a score from 0-100 representing how well the resume matches the job],
  "missingKeywords": [array of important keywords from the job description that are missing in the resume],
  "suggestions": [array of specific suggestions to improve the resume for this job],
  "keywordMatches": [
    {
      "keyword": [a keyword that appears in both resume and job description],
      "count": [how many times it appears in the resume],
      "importance": [a number from 1-10 indicating how important this keyword is for the job]
    }
  ],
  "sectionFeedback": [
    {
      "section": [name of resume section],
      "score": [a score from 0-100 for this section],
      "feedback": [specific feedback for this section]
    }
  ]
}

Only return the JSON. No explanations or other text.`,
}

// Prompts resolves prompt content for one operation group, prioritizing
// file-loaded content, then config overrides, then the built-in defaults.
type Prompts struct {
	operation string
	custom    *config.PromptConfig
}

// NewPrompts creates a prompt resolver for an operation group ("generate" or "analyze")
func NewPrompts(operation string, cfg *config.OperationAIConfig) *Prompts {
	p := &Prompts{operation: operation}
	if cfg != nil {
		p.custom = &cfg.CustomPrompts
	}
	return p
}

// SystemPrompt returns the system instruction for this operation group
func (p *Prompts) SystemPrompt() string {
	loaded := config.GetPromptsForOperation(p.operation)
	custom := p.customSystemPrompts()

	switch p.operation {
	case "analyze":
		return resolvePrompt(
			loaded.SystemPrompts.AnalyzeMatch,
			custom.AnalyzeMatch,
			DefaultSystemPrompts.AnalyzeMatch,
		)
	default:
		return resolvePrompt(
			loaded.SystemPrompts.GenerateContent,
			custom.GenerateContent,
			DefaultSystemPrompts.GenerateContent,
		)
	}
}

// UserTemplate returns the user prompt template for the given kind
func (p *Prompts) UserTemplate(kind PromptKind) string {
	loaded := config.GetPromptsForOperation(p.operation)
	custom := p.customUserPrompts()

	switch kind {
	case PromptGenerateSummary:
		return resolvePrompt(loaded.UserPrompts.GenerateSummary, custom.GenerateSummary, DefaultUserPrompts.GenerateSummary)
	case PromptImproveDescription:
		return resolvePrompt(loaded.UserPrompts.ImproveDescription, custom.ImproveDescription, DefaultUserPrompts.ImproveDescription)
	case PromptSuggestSkills:
		return resolvePrompt(loaded.UserPrompts.SuggestSkills, custom.SuggestSkills, DefaultUserPrompts.SuggestSkills)
	case PromptExtractKeywords:
		return resolvePrompt(loaded.UserPrompts.ExtractKeywords, custom.ExtractKeywords, DefaultUserPrompts.ExtractKeywords)
	case PromptJobMatch:
		return resolvePrompt(loaded.UserPrompts.JobMatch, custom.JobMatch, DefaultUserPrompts.JobMatch)
	default:
		return ""
	}
}

func (p *Prompts) customSystemPrompts() *config.SystemPrompts {
	if p.custom != nil {
		return &p.custom.SystemPrompts
	}
	return &config.SystemPrompts{}
}

func (p *Prompts) customUserPrompts() *config.UserPrompts {
	if p.custom != nil {
		return &p.custom.UserPrompts
	}
	return &config.UserPrompts{}
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
