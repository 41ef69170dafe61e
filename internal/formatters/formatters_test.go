package formatters

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func sampleAnalysis() types.ATSAnalysis {
	return types.ATSAnalysis{
		Score:           82,
		MissingKeywords: []string{"Terraform"},
		Suggestions:     []string{"Mention cloud experience earlier"},
		KeywordMatches: []types.KeywordMatch{
			{Keyword: "Go", Count: 3, Importance: 9},
		},
		SectionFeedback: []types.SectionFeedback{
			{Section: "skills", Score: 75, Feedback: "solid coverage"},
		},
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleAnalysis(), "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded types.ATSAnalysis
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Score != 82 {
		t.Errorf("expected score 82, got %d", decoded.Score)
	}
}

func TestAnalysisTextFormatter(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleAnalysis(), "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{
		"Score: 82/100",
		"Go (count: 3, importance: 9/10)",
		"- Terraform",
		"skills (75/100): solid coverage",
		"1. Mention cloud experience earlier",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestAnalysisMarkdownFormatter(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleAnalysis(), "markdown")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{
		"# ATS Analysis",
		"**Score:** 82/100",
		"| Go | 3 | 9/10 |",
		"## Missing Keywords",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestCompletenessFormatters(t *testing.T) {
	report := types.CompletenessReport{
		ResumeID:     "r1",
		Name:         "Ada Lovelace",
		Completeness: 64,
		Sections: []types.SectionCount{
			{Section: "experience", Count: 2},
			{Section: "skills", Count: 5},
		},
	}

	text, err := GlobalRegistry.Format(report, "text")
	if err != nil {
		t.Fatalf("text Format failed: %v", err)
	}
	if !strings.Contains(text, "Completeness: 64%") || !strings.Contains(text, "Ada Lovelace") {
		t.Errorf("unexpected text output:\n%s", text)
	}

	md, err := GlobalRegistry.Format(report, "markdown")
	if err != nil {
		t.Fatalf("markdown Format failed: %v", err)
	}
	if !strings.Contains(md, "| experience | 2 |") {
		t.Errorf("unexpected markdown output:\n%s", md)
	}
}

func TestSkillsFormatters(t *testing.T) {
	suggestions := types.SkillSuggestions{
		JobTitle: "Platform Engineer",
		Skills:   []string{"Go", "Kubernetes"},
	}

	text, err := GlobalRegistry.Format(suggestions, "text")
	if err != nil {
		t.Fatalf("text Format failed: %v", err)
	}
	if !strings.Contains(text, "Platform Engineer") || !strings.Contains(text, "- Go\n") {
		t.Errorf("unexpected text output:\n%s", text)
	}

	empty := types.SkillSuggestions{JobTitle: "Novelist"}
	text, err = GlobalRegistry.Format(empty, "markdown")
	if err != nil {
		t.Fatalf("markdown Format failed: %v", err)
	}
	if !strings.Contains(text, "No suggestions available.") {
		t.Errorf("unexpected output for empty skills:\n%s", text)
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleAnalysis(), "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestGenericFallbackToJSON(t *testing.T) {
	out, err := GlobalRegistry.Format(map[string]int{"a": 1}, "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, `"a": 1`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	for _, want := range []string{"json", "text", "markdown"} {
		if !slices.Contains(formats, want) {
			t.Errorf("missing format %q in %v", want, formats)
		}
	}
}
