package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeforge/internal/config"
)

func TestPromptsDefaultResolution(t *testing.T) {
	p := NewPrompts("generate", nil)

	assert.Equal(t, DefaultSystemPrompts.GenerateContent, p.SystemPrompt())
	assert.Equal(t, DefaultUserPrompts.GenerateSummary, p.UserTemplate(PromptGenerateSummary))
	assert.Equal(t, DefaultUserPrompts.SuggestSkills, p.UserTemplate(PromptSuggestSkills))
}

func TestPromptsAnalyzeSystemPrompt(t *testing.T) {
	p := NewPrompts("analyze", nil)

	assert.Equal(t, DefaultSystemPrompts.AnalyzeMatch, p.SystemPrompt())
	assert.Equal(t, DefaultUserPrompts.JobMatch, p.UserTemplate(PromptJobMatch))
}

func TestPromptsConfigOverride(t *testing.T) {
	cfg := &config.OperationAIConfig{
		CustomPrompts: config.PromptConfig{
			SystemPrompts: config.SystemPrompts{
				GenerateContent: "custom system",
			},
			UserPrompts: config.UserPrompts{
				ImproveDescription: "custom improve %s %s %s",
			},
		},
	}

	p := NewPrompts("generate", cfg)

	assert.Equal(t, "custom system", p.SystemPrompt())
	assert.Equal(t, "custom improve %s %s %s", p.UserTemplate(PromptImproveDescription))
	// unset templates still fall back to the defaults
	assert.Equal(t, DefaultUserPrompts.ExtractKeywords, p.UserTemplate(PromptExtractKeywords))
}

func TestResolvePromptPriority(t *testing.T) {
	assert.Equal(t, "file", resolvePrompt("file", "config", "default"))
	assert.Equal(t, "config", resolvePrompt("", "config", "default"))
	assert.Equal(t, "default", resolvePrompt("", "", "default"))
}

func TestDefaultUserPromptPlaceholders(t *testing.T) {
	// Each template must consume exactly the arguments callers pass it
	tests := []struct {
		kind PromptKind
		args []any
	}{
		{PromptGenerateSummary, []any{"Ada Lovelace", "Engineer", "work", "skills", "education"}},
		{PromptImproveDescription, []any{"Engineer", "Acme", "did things"}},
		{PromptSuggestSkills, []any{"Engineer"}},
		{PromptExtractKeywords, []any{"a job description"}},
		{PromptJobMatch, []any{"resume text", "job text"}},
	}

	p := NewPrompts("generate", nil)
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got := fmt.Sprintf(p.UserTemplate(tt.kind), tt.args...)
			assert.NotContains(t, got, "%!", "placeholder count mismatch")
			assert.NotContains(t, got, "MISSING")
			for _, arg := range tt.args {
				assert.Contains(t, got, arg.(string))
			}
		})
	}
}

func TestJobMatchPromptRequestsJSONOnly(t *testing.T) {
	tpl := DefaultUserPrompts.JobMatch
	assert.True(t, strings.Contains(tpl, `"score"`))
	assert.True(t, strings.Contains(tpl, `"keywordMatches"`))
	assert.True(t, strings.Contains(tpl, `"sectionFeedback"`))
	assert.True(t, strings.Contains(tpl, "Only return the JSON"))
}
