package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/ai"
	"resumeforge/internal/assist"
	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	"resumeforge/internal/errors"
	"resumeforge/internal/job"
	"resumeforge/internal/observability"
	"resumeforge/internal/store"
	"resumeforge/internal/types"
)

// scriptedProvider returns canned responses per operation name
type scriptedProvider struct {
	responses map[string]string
	errs      map[string]error
}

func (p *scriptedProvider) GenerateText(_ context.Context, operation, _, _ string) (string, *ai.TokenUsage, error) {
	if err := p.errs[operation]; err != nil {
		return "", nil, err
	}
	return p.responses[operation], nil, nil
}

func (p *scriptedProvider) GetModelInfo(context.Context) *ai.ModelInfo {
	return &ai.ModelInfo{Name: "scripted", Available: true}
}

func (p *scriptedProvider) Close() error { return nil }

const analyzeResponse = "```json\n" + `{
  "score": 73,
  "missingKeywords": ["Rust"],
  "suggestions": ["Lead with backend work"],
  "keywordMatches": [{"keyword": "Go", "count": 2, "importance": 8}],
  "sectionFeedback": []
}` + "\n```"

func newTestServer(t *testing.T, apiKeys ...string) (*Server, http.Handler) {
	t.Helper()

	keyMap := make(map[string]bool)
	for _, k := range apiKeys {
		keyMap[k] = true
	}

	st := store.New(nil)
	generate := &scriptedProvider{responses: map[string]string{
		"generate_summary":    "A focused engineering summary.",
		"improve_description": "Sharper description.",
		"suggest_skills":      "Go, Kubernetes, SQL",
	}}
	analyze := &scriptedProvider{responses: map[string]string{
		"extract_keywords": "Go, Docker",
		"job_match":        analyzeResponse,
	}}

	s := &Server{
		Version:        "test",
		AppConfig:      &config.Config{},
		APIKeys:        keyMap,
		MaxRequestSize: 1 << 20,
		Store:          st,
		Assist:         assist.New(&ai.Service{Provider: generate, Prompts: ai.NewPrompts("generate", nil)}, st, nil),
		Analyzer:       ats.New(&ai.Service{Provider: analyze, Prompts: ai.NewPrompts("analyze", nil)}, st, nil),
		Logger:         errors.NewLogger(slog.LevelError),
	}

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	require.NoError(t, err)

	return s, s.setupRoutes(om)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestResumeLifecycle(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	rec := doJSON(t, h, http.MethodPost, "/resumes", nil, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, created.ID)

	var listed []types.Resume
	rec = doJSON(t, h, http.MethodGet, "/resumes", nil, &listed)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, listed, 1)

	var fetched struct {
		types.Resume
		Completeness int `json:"completeness"`
	}
	rec = doJSON(t, h, http.MethodGet, "/resumes/"+created.ID, nil, &fetched)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, 0, fetched.Completeness)

	created.Summary = "Updated summary"
	var saved types.Resume
	rec = doJSON(t, h, http.MethodPut, "/resumes/"+created.ID, created, &saved)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Updated summary", saved.Summary)

	rec = doJSON(t, h, http.MethodDelete, "/resumes/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/resumes/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResumeUpdateUnknownID(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/resumes/missing", types.Resume{}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersonalAndSummaryUpdates(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	first := "Ada"
	var updated types.Resume
	rec := doJSON(t, h, http.MethodPut, "/resumes/"+created.ID+"/personal",
		types.PersonalInfoPatch{FirstName: &first}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", updated.PersonalInfo.FirstName)

	rec = doJSON(t, h, http.MethodPut, "/resumes/"+created.ID+"/summary",
		SummaryUpdateRequest{Summary: "Short summary"}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Short summary", updated.Summary)
}

func TestSectionEntryLifecycle(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	var added map[string]string
	rec := doJSON(t, h, http.MethodPost, "/resumes/"+created.ID+"/experience",
		types.WorkExperience{Company: "Acme", Position: "Engineer"}, &added)
	require.Equal(t, http.StatusCreated, rec.Code)
	entryID := added["id"]
	require.NotEmpty(t, entryID)

	position := "Senior Engineer"
	var patched types.Resume
	rec = doJSON(t, h, http.MethodPatch, "/resumes/"+created.ID+"/experience/"+entryID,
		types.WorkExperiencePatch{Position: &position}, &patched)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, patched.WorkExperience, 1)
	assert.Equal(t, "Senior Engineer", patched.WorkExperience[0].Position)
	assert.Equal(t, "Acme", patched.WorkExperience[0].Company)

	rec = doJSON(t, h, http.MethodDelete, "/resumes/"+created.ID+"/experience/"+entryID, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var fetched struct {
		types.Resume
		Completeness int `json:"completeness"`
	}
	doJSON(t, h, http.MethodGet, "/resumes/"+created.ID, nil, &fetched)
	assert.Empty(t, fetched.WorkExperience)
}

func TestSkillEntryAdd(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	var added map[string]string
	rec := doJSON(t, h, http.MethodPost, "/resumes/"+created.ID+"/skills",
		types.Skill{Name: "Go", Level: types.SkillLevelAdvanced, Category: "technical"}, &added)
	require.Equal(t, http.StatusCreated, rec.Code)

	var fetched struct {
		types.Resume
		Completeness int `json:"completeness"`
	}
	doJSON(t, h, http.MethodGet, "/resumes/"+created.ID, nil, &fetched)
	require.Len(t, fetched.Skills, 1)
	assert.Equal(t, "Go", fetched.Skills[0].Name)
}

func TestUnknownSectionRejected(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	rec := doJSON(t, h, http.MethodPost, "/resumes/"+created.ID+"/hobbies",
		map[string]string{"name": "chess"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSectionEntryUnknownResume(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/resumes/missing/experience",
		types.WorkExperience{Company: "Acme"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzeEndpoint(t *testing.T) {
	s, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	var analysis types.ATSAnalysis
	rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: created.ID,
		Job: types.JobDescription{
			Title:       "Backend Engineer",
			Company:     "Acme",
			Description: "Build services in Go",
		},
	}, &analysis)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 73, analysis.Score)
	assert.Equal(t, []string{"Rust"}, analysis.MissingKeywords)

	// The verdict is folded back into the analyzed document
	stored, ok := s.Store.Resume(created.ID)
	require.True(t, ok)
	require.NotNil(t, stored.ATSScore)
	assert.Equal(t, 73, *stored.ATSScore)
}

func TestAnalyzeNonCurrentResume(t *testing.T) {
	s, h := newTestServer(t)

	var first, second types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &first)
	doJSON(t, h, http.MethodPost, "/resumes", nil, &second)
	require.Equal(t, second.ID, s.Store.CurrentResumeID())

	var analysis types.ATSAnalysis
	rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: first.ID,
		Job:      types.JobDescription{Description: "Build services in Go"},
	}, &analysis)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 73, analysis.Score)

	// The analyzed document becomes current and receives the verdict
	assert.Equal(t, first.ID, s.Store.CurrentResumeID())
	stored, ok := s.Store.Resume(first.ID)
	require.True(t, ok)
	require.NotNil(t, stored.ATSScore)
	assert.Equal(t, 73, *stored.ATSScore)
	assert.Equal(t, []string{"Go", "Docker"}, stored.Keywords)
}

func TestAnalyzeFillsJobPlaceholders(t *testing.T) {
	s, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: created.ID,
		Job:      types.JobDescription{Description: "Ship Go services"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Blank title and company are defaulted before the posting reaches
	// the analyzer and the store
	active, ok := s.Store.ActiveJobDescription()
	require.True(t, ok)
	assert.Equal(t, job.Placeholder, active.Title)
	assert.Equal(t, job.Placeholder, active.Company)
	assert.NotNil(t, active.Skills)
}

func TestAnalyzeValidation(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: created.ID,
		Job:      types.JobDescription{Title: "No description"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: "missing",
		Job:      types.JobDescription{Description: "something"},
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssistSummaryEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	var resp map[string]string
	rec := doJSON(t, h, http.MethodPost, "/assist/summary", SummaryRequest{ResumeID: created.ID}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A focused engineering summary.", resp["summary"])

	rec = doJSON(t, h, http.MethodPost, "/assist/summary", SummaryRequest{ResumeID: "missing"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssistSkillsEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	var resp map[string][]string
	rec := doJSON(t, h, http.MethodPost, "/assist/skills", SkillsRequest{JobTitle: "SRE"}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Go", "Kubernetes", "SQL"}, resp["skills"])

	rec = doJSON(t, h, http.MethodPost, "/assist/skills", SkillsRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistImproveEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	var resp map[string]string
	rec := doJSON(t, h, http.MethodPost, "/assist/improve", ImproveRequest{
		Description: "did stuff",
		Position:    "Engineer",
		Company:     "Acme",
	}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sharper description.", resp["description"])

	rec = doJSON(t, h, http.MethodPost, "/assist/improve", ImproveRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	_, h := newTestServer(t, "secret-key-12345")

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("X-API-Key", "secret-key-12345")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer secret-key-12345")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open without a key
	req = httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatsIncludesStore(t *testing.T) {
	_, h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/resumes", nil, nil)

	var stats map[string]any
	rec := doJSON(t, h, http.MethodGet, "/stats", nil, &stats)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "resumeforge", stats["service"])

	storeStats, ok := stats["store"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), storeStats["resume_count"])
}

func TestContentTypeRequired(t *testing.T) {
	_, h := newTestServer(t)

	var created types.Resume
	doJSON(t, h, http.MethodPost, "/resumes", nil, &created)

	req := httptest.NewRequest(http.MethodPut, "/resumes/"+created.ID+"/summary",
		bytes.NewBufferString(`{"summary":"x"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute, 2, nil)
	defer rl.Close()

	assert.True(t, rl.Allow("client"))
	assert.True(t, rl.Allow("client"))
	// Burst exhausted, refill is 1 req/s
	assert.False(t, rl.Allow("client"))

	// Independent keys have independent buckets
	assert.True(t, rl.Allow("other"))

	stats := rl.GetStats()
	assert.Equal(t, 2, stats["burst_capacity"])
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(req))
}
