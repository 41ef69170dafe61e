package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ATSAnalysis", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSAnalysis", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "CompletenessReport", &CompletenessTextFormatter{})
	registry.RegisterFormatter("markdown", "CompletenessReport", &CompletenessMarkdownFormatter{})
	registry.RegisterFormatter("text", "SkillSuggestions", &SkillsTextFormatter{})
	registry.RegisterFormatter("markdown", "SkillSuggestions", &SkillsMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ATSAnalysis:
		return "ATSAnalysis"
	case types.CompletenessReport:
		return "CompletenessReport"
	case types.SkillSuggestions:
		return "SkillSuggestions"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for ATS analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ATSAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n\n", result.Score))

	if len(result.KeywordMatches) > 0 {
		output.WriteString("Keyword Matches:\n")
		for _, match := range result.KeywordMatches {
			output.WriteString(fmt.Sprintf("- %s (count: %d, importance: %d/10)\n",
				match.Keyword, match.Count, match.Importance))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("Missing Keywords:\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.SectionFeedback) > 0 {
		output.WriteString("Section Feedback:\n")
		for _, feedback := range result.SectionFeedback {
			output.WriteString(fmt.Sprintf("- %s (%d/100): %s\n",
				feedback.Section, feedback.Score, feedback.Feedback))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "ATSAnalysis"
}

// AnalysisMarkdownFormatter handles markdown formatting for ATS analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ATSAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Score))

	if len(result.KeywordMatches) > 0 {
		output.WriteString("## Keyword Matches\n\n")
		output.WriteString("| Keyword | Count | Importance |\n")
		output.WriteString("|---------|-------|------------|\n")
		for _, match := range result.KeywordMatches {
			output.WriteString(fmt.Sprintf("| %s | %d | %d/10 |\n",
				match.Keyword, match.Count, match.Importance))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.SectionFeedback) > 0 {
		output.WriteString("## Section Feedback\n\n")
		for _, feedback := range result.SectionFeedback {
			output.WriteString(fmt.Sprintf("### %s (%d/100)\n\n%s\n\n",
				feedback.Section, feedback.Score, feedback.Feedback))
		}
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "ATSAnalysis"
}

// CompletenessTextFormatter handles text formatting for completeness reports
type CompletenessTextFormatter struct{}

func (ctf *CompletenessTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CompletenessReport)
	if !ok {
		return "", fmt.Errorf("expected CompletenessReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME COMPLETENESS ===\n\n")
	if result.Name != "" {
		output.WriteString(fmt.Sprintf("Name: %s\n", result.Name))
	}
	output.WriteString(fmt.Sprintf("Completeness: %d%%\n\n", result.Completeness))

	if len(result.Sections) > 0 {
		output.WriteString("Sections:\n")
		for _, section := range result.Sections {
			output.WriteString(fmt.Sprintf("- %-15s %d entries\n", section.Section, section.Count))
		}
	}

	return output.String(), nil
}

func (ctf *CompletenessTextFormatter) SupportedType() string {
	return "CompletenessReport"
}

// CompletenessMarkdownFormatter handles markdown formatting for completeness reports
type CompletenessMarkdownFormatter struct{}

func (cmf *CompletenessMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CompletenessReport)
	if !ok {
		return "", fmt.Errorf("expected CompletenessReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Completeness\n\n")
	if result.Name != "" {
		output.WriteString(fmt.Sprintf("**Name:** %s\n\n", result.Name))
	}
	output.WriteString(fmt.Sprintf("**Completeness:** %d%%\n\n", result.Completeness))

	if len(result.Sections) > 0 {
		output.WriteString("## Sections\n\n")
		output.WriteString("| Section | Entries |\n")
		output.WriteString("|---------|--------|\n")
		for _, section := range result.Sections {
			output.WriteString(fmt.Sprintf("| %s | %d |\n", section.Section, section.Count))
		}
	}

	return output.String(), nil
}

func (cmf *CompletenessMarkdownFormatter) SupportedType() string {
	return "CompletenessReport"
}

// SkillsTextFormatter handles text formatting for skill suggestions
type SkillsTextFormatter struct{}

func (stf *SkillsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillSuggestions)
	if !ok {
		return "", fmt.Errorf("expected SkillSuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== SUGGESTED SKILLS: %s ===\n\n", result.JobTitle))
	if len(result.Skills) == 0 {
		output.WriteString("No suggestions available.\n")
		return output.String(), nil
	}
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (stf *SkillsTextFormatter) SupportedType() string {
	return "SkillSuggestions"
}

// SkillsMarkdownFormatter handles markdown formatting for skill suggestions
type SkillsMarkdownFormatter struct{}

func (smf *SkillsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillSuggestions)
	if !ok {
		return "", fmt.Errorf("expected SkillSuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Suggested Skills: %s\n\n", result.JobTitle))
	if len(result.Skills) == 0 {
		output.WriteString("No suggestions available.\n")
		return output.String(), nil
	}
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}

	return output.String(), nil
}

func (smf *SkillsMarkdownFormatter) SupportedType() string {
	return "SkillSuggestions"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
