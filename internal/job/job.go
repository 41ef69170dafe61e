// Package job normalizes raw job posting input into the shape the
// analysis pipeline works with.
package job

import (
	"strings"

	"resumeforge/internal/types"
)

// Placeholder fills blank title or company fields so prompts and reports
// never render empty labels.
const Placeholder = "Not specified"

// New builds a JobDescription from raw user input. Title and company are
// trimmed and defaulted; the description passes through as provided.
// Skills and keywords start empty and are filled in by analysis.
func New(title, company, description string) types.JobDescription {
	return types.JobDescription{
		Title:       orPlaceholder(title),
		Company:     orPlaceholder(company),
		Description: description,
		Skills:      []string{},
		Keywords:    []string{},
	}
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	return s
}
