package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/types"
)

func TestCreateResumeSetsCurrent(t *testing.T) {
	s := New(nil)

	doc := s.CreateResume()
	require.NotEmpty(t, doc.ID)
	assert.Equal(t, doc.ID, s.CurrentResumeID())

	got, ok := s.CurrentResume()
	require.True(t, ok)
	assert.Equal(t, doc.ID, got.ID)
	assert.NotNil(t, got.Skills)
}

func TestDeleteResumeClearsPointerOnlyWhenCurrent(t *testing.T) {
	s := New(nil)
	first := s.CreateResume()
	second := s.CreateResume()

	// second is current; deleting first keeps the pointer
	s.DeleteResume(first.ID)
	assert.Equal(t, second.ID, s.CurrentResumeID())
	assert.Len(t, s.Resumes(), 1)

	s.DeleteResume(second.ID)
	assert.Empty(t, s.CurrentResumeID())
	assert.Empty(t, s.Resumes())
}

func TestSetCurrentResumeIDUnconditional(t *testing.T) {
	s := New(nil)
	s.SetCurrentResumeID("no-such-id")
	assert.Equal(t, "no-such-id", s.CurrentResumeID())

	_, ok := s.CurrentResume()
	assert.False(t, ok, "dangling pointer must not resolve to a document")
}

func TestMutationWithoutCurrentIsCountedNoOp(t *testing.T) {
	s := New(nil)
	doc := s.CreateResume()
	s.SetCurrentResumeID("")

	s.UpdateSummary("ignored")
	id := s.AddSkill("Go", types.SkillLevelExpert, "languages")

	assert.Empty(t, id, "add without current document must return no id")
	assert.EqualValues(t, 2, s.SkippedMutations())

	got, _ := s.Resume(doc.ID)
	assert.Empty(t, got.Summary)
	assert.Empty(t, got.Skills)
	assert.Equal(t, doc.UpdatedAt, got.UpdatedAt, "no-op must not stamp updatedAt")
}

func TestSaveResumeReplacesWholeDocument(t *testing.T) {
	s := New(nil)
	doc := s.CreateResume()

	doc.Summary = "rewritten"
	doc.Skills = append(doc.Skills, types.Skill{ID: "s1", Name: "Go"})
	s.SaveResume(doc)

	got, ok := s.Resume(doc.ID)
	require.True(t, ok)
	assert.Equal(t, "rewritten", got.Summary)
	assert.Len(t, got.Skills, 1)
	assert.Greater(t, got.UpdatedAt, doc.UpdatedAt)

	// unknown id is ignored
	before := len(s.Resumes())
	s.SaveResume(types.Resume{ID: "ghost"})
	assert.Len(t, s.Resumes(), before)
}

func TestImportResume(t *testing.T) {
	s := New(nil)

	imported := s.ImportResume(types.Resume{Summary: "from file"})
	assert.NotEmpty(t, imported.ID)
	assert.NotEmpty(t, imported.CreatedAt)
	assert.Equal(t, imported.ID, s.CurrentResumeID())
	assert.NotNil(t, imported.WorkExperience, "collections normalized on import")

	// same id replaces in place
	imported.Summary = "updated"
	s.ImportResume(imported)
	assert.Len(t, s.Resumes(), 1)
	got, _ := s.Resume(imported.ID)
	assert.Equal(t, "updated", got.Summary)
}

func TestReturnedCopiesAreIndependent(t *testing.T) {
	s := New(nil)
	s.CreateResume()
	s.AddSkill("Go", types.SkillLevelAdvanced, "languages")

	got, _ := s.CurrentResume()
	got.Skills[0].Name = "mutated"
	got.Summary = "mutated"

	fresh, _ := s.CurrentResume()
	assert.Equal(t, "Go", fresh.Skills[0].Name)
	assert.Empty(t, fresh.Summary)
}

func TestActiveJobAndAnalysis(t *testing.T) {
	s := New(nil)

	_, ok := s.ActiveJobDescription()
	assert.False(t, ok)

	s.SetActiveJobDescription(types.JobDescription{Title: "Engineer", Skills: []string{"Go"}})
	jd, ok := s.ActiveJobDescription()
	require.True(t, ok)
	assert.Equal(t, "Engineer", jd.Title)

	_, ok = s.ATSAnalysis()
	assert.False(t, ok)

	s.SetATSAnalysis(types.ATSAnalysis{Score: 72, Suggestions: []string{"add keywords"}})
	a, ok := s.ATSAnalysis()
	require.True(t, ok)
	assert.Equal(t, 72, a.Score)
}

func TestApplyAnalysis(t *testing.T) {
	s := New(nil)
	doc := s.CreateResume()

	applied := s.ApplyAnalysis(doc.ID, types.ATSAnalysis{Score: 64}, []string{"go", "grpc"})
	require.True(t, applied)

	got, _ := s.Resume(doc.ID)
	require.NotNil(t, got.ATSScore)
	assert.Equal(t, 64, *got.ATSScore)
	assert.Equal(t, []string{"go", "grpc"}, got.Keywords)

	// unknown document: analysis still recorded, nothing merged
	applied = s.ApplyAnalysis("ghost", types.ATSAnalysis{Score: 10}, nil)
	assert.False(t, applied)
	a, ok := s.ATSAnalysis()
	require.True(t, ok)
	assert.Equal(t, 10, a.Score)
}

func TestLoadingFlagsIndependent(t *testing.T) {
	s := New(nil)

	s.SetLoading(FlagAnalyzingResume, true)
	assert.True(t, s.IsLoading(FlagAnalyzingResume))
	assert.False(t, s.IsLoading(FlagSavingResume))
	assert.False(t, s.IsLoading(FlagGeneratingContent))

	s.SetLoading(FlagSavingResume, true)
	s.SetLoading(FlagAnalyzingResume, false)
	assert.False(t, s.IsLoading(FlagAnalyzingResume))
	assert.True(t, s.IsLoading(FlagSavingResume))

	snap := s.Loading()
	assert.Len(t, snap, 1)
	assert.True(t, snap[FlagSavingResume])
}

func TestStats(t *testing.T) {
	s := New(nil)
	s.CreateResume()
	s.SetActiveJobDescription(types.JobDescription{Title: "x"})

	stats := s.Stats()
	assert.Equal(t, 1, stats["resume_count"])
	assert.Equal(t, true, stats["current_selected"])
	assert.Equal(t, true, stats["has_active_job"])
	assert.Equal(t, false, stats["has_analysis"])
}
