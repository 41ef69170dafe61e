package ats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/ai"
	"resumeforge/internal/store"
	"resumeforge/internal/types"
)

// fakeProvider scripts responses per operation name
type fakeProvider struct {
	responses map[string]string
	errs      map[string]error
	prompts   map[string]string
	onCall    func(operation string)
}

func (f *fakeProvider) GenerateText(_ context.Context, operation, _, userPrompt string) (string, *ai.TokenUsage, error) {
	if f.prompts == nil {
		f.prompts = make(map[string]string)
	}
	f.prompts[operation] = userPrompt
	if f.onCall != nil {
		f.onCall(operation)
	}
	if err := f.errs[operation]; err != nil {
		return "", nil, err
	}
	return f.responses[operation], nil, nil
}

func (f *fakeProvider) GetModelInfo(context.Context) *ai.ModelInfo {
	return &ai.ModelInfo{Name: "fake", Available: true}
}

func (f *fakeProvider) Close() error { return nil }

func newAnalyzer(fake *fakeProvider, st *store.Store) *Analyzer {
	svc := &ai.Service{
		Provider: fake,
		Prompts:  ai.NewPrompts("analyze", nil),
	}
	return New(svc, st, nil)
}

func sampleJob() types.JobDescription {
	return types.JobDescription{
		Title:       "Platform Engineer",
		Company:     "Acme",
		Description: "Build and run the platform",
		Skills:      []string{"Go", "Kubernetes"},
	}
}

const matchResponse = "Here you go:\n```json\n" + `{
  "score": 87,
  "missingKeywords": ["Terraform"],
  "suggestions": ["Mention Kubernetes earlier"],
  "keywordMatches": [{"keyword": "Go", "count": 3, "importance": 9}],
  "sectionFeedback": [{"section": "skills", "score": 80, "feedback": "solid"}]
}` + "\n```"

func TestAnalyzeSuccess(t *testing.T) {
	st := store.New(nil)
	doc := st.CreateResume()

	fake := &fakeProvider{responses: map[string]string{
		"extract_keywords": "Go, Docker",
		"job_match":        matchResponse,
	}}
	a := newAnalyzer(fake, st)

	got := a.Analyze(context.Background(), doc, sampleJob())

	assert.Equal(t, 87, got.Score)
	assert.Equal(t, []string{"Terraform"}, got.MissingKeywords)
	require.Len(t, got.KeywordMatches, 1)
	assert.Equal(t, "Go", got.KeywordMatches[0].Keyword)

	// verdict folded into the analyzed document
	stored, ok := st.Resume(doc.ID)
	require.True(t, ok)
	require.NotNil(t, stored.ATSScore)
	assert.Equal(t, 87, *stored.ATSScore)
	assert.Equal(t, []string{"Go", "Docker"}, stored.Keywords)

	// active job carries the extracted keywords
	job, ok := st.ActiveJobDescription()
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Docker"}, job.Keywords)

	// transient analysis state recorded
	analysis, ok := st.ATSAnalysis()
	require.True(t, ok)
	assert.Equal(t, 87, analysis.Score)

	assert.False(t, st.IsLoading(store.FlagAnalyzingResume))
}

func TestAnalyzeMatchPromptContents(t *testing.T) {
	st := store.New(nil)
	doc := st.CreateResume()
	doc.PersonalInfo.FirstName = "Ada"
	doc.PersonalInfo.LastName = "Lovelace"
	st.SaveResume(doc)
	doc, _ = st.Resume(doc.ID)

	fake := &fakeProvider{responses: map[string]string{
		"extract_keywords": "Go",
		"job_match":        matchResponse,
	}}
	a := newAnalyzer(fake, st)

	a.Analyze(context.Background(), doc, sampleJob())

	prompt := fake.prompts["job_match"]
	assert.Contains(t, prompt, "Ada Lovelace")
	assert.Contains(t, prompt, "Job Title: Platform Engineer")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "Required Skills: Go, Kubernetes")
	assert.Contains(t, prompt, "Keywords: Go")
}

func TestAnalyzeModelFailureYieldsFallback(t *testing.T) {
	st := store.New(nil)
	doc := st.CreateResume()

	fake := &fakeProvider{
		responses: map[string]string{"extract_keywords": "Go"},
		errs:      map[string]error{"job_match": errors.New("boom")},
	}
	a := newAnalyzer(fake, st)

	got := a.Analyze(context.Background(), doc, sampleJob())

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, []string{FailureSuggestion}, got.Suggestions)
	assert.NotNil(t, got.MissingKeywords)
	assert.NotNil(t, got.KeywordMatches)
	assert.NotNil(t, got.SectionFeedback)
	assert.False(t, st.IsLoading(store.FlagAnalyzingResume))
}

func TestAnalyzeUnparseableResponseYieldsFallback(t *testing.T) {
	fake := &fakeProvider{responses: map[string]string{
		"extract_keywords": "",
		"job_match":        "sorry, I cannot help with that",
	}}
	a := newAnalyzer(fake, nil)

	got := a.Analyze(context.Background(), types.Resume{ID: "r1"}, sampleJob())

	assert.Equal(t, FallbackAnalysis(), got)
}

func TestAnalyzeKeywordExtractionFailureIsNonFatal(t *testing.T) {
	st := store.New(nil)
	doc := st.CreateResume()

	fake := &fakeProvider{
		responses: map[string]string{"job_match": matchResponse},
		errs:      map[string]error{"extract_keywords": errors.New("boom")},
	}
	a := newAnalyzer(fake, st)

	got := a.Analyze(context.Background(), doc, sampleJob())

	assert.Equal(t, 87, got.Score)
	job, ok := st.ActiveJobDescription()
	require.True(t, ok)
	assert.Empty(t, job.Keywords)
}

func TestAnalyzeStaleResultNotStored(t *testing.T) {
	st := store.New(nil)
	first := st.CreateResume()
	second := st.CreateResume() // current moves to the second document
	st.SetCurrentResumeID(first.ID)

	fake := &fakeProvider{responses: map[string]string{
		"extract_keywords": "Go",
		"job_match":        matchResponse,
	}}
	// selection changes while the match request is in flight
	fake.onCall = func(operation string) {
		if operation == "job_match" {
			st.SetCurrentResumeID(second.ID)
		}
	}
	a := newAnalyzer(fake, st)

	got := a.Analyze(context.Background(), first, sampleJob())

	// the caller still receives the verdict
	assert.Equal(t, 87, got.Score)

	// but neither document was touched by it
	stored, _ := st.Resume(first.ID)
	assert.Nil(t, stored.ATSScore)
	other, _ := st.Resume(second.ID)
	assert.Nil(t, other.ATSScore)

	_, ok := st.ATSAnalysis()
	assert.False(t, ok, "stale analysis must not be recorded")
}

func TestParseAnalysisNormalization(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantScore int
	}{
		{"clamps high score", `{"score": 250}`, 100},
		{"clamps negative score", `{"score": -5}`, 0},
		{"bare object without fences", `prose {"score": 55} trailing`, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnalysis(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.NotNil(t, got.MissingKeywords)
			assert.NotNil(t, got.Suggestions)
			assert.NotNil(t, got.KeywordMatches)
			assert.NotNil(t, got.SectionFeedback)
		})
	}
}

func TestParseAnalysisErrors(t *testing.T) {
	_, err := parseAnalysis("no object here")
	assert.Error(t, err)

	_, err = parseAnalysis("{broken json}")
	assert.Error(t, err)
}

func TestExtractKeywordsEmptyDescription(t *testing.T) {
	fake := &fakeProvider{}
	a := newAnalyzer(fake, nil)

	got := a.ExtractKeywords(context.Background(), "   ")

	assert.Empty(t, got)
	assert.NotContains(t, fake.prompts, "extract_keywords", "no model call for empty input")
}
