package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/types"
)

func newStoreWithResume(t *testing.T) *Store {
	t.Helper()
	s := New(nil)
	s.CreateResume()
	return s
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestUpdatePersonalInfoPartial(t *testing.T) {
	s := newStoreWithResume(t)

	s.UpdatePersonalInfo(types.PersonalInfoPatch{
		FirstName: strp("Ada"),
		Email:     strp("ada@example.com"),
	})
	s.UpdatePersonalInfo(types.PersonalInfoPatch{Email: strp("ada@acme.com")})

	got, _ := s.CurrentResume()
	assert.Equal(t, "Ada", got.PersonalInfo.FirstName, "untouched field must survive later patches")
	assert.Equal(t, "ada@acme.com", got.PersonalInfo.Email)
	assert.Empty(t, got.PersonalInfo.LastName)
}

func TestAddEntriesPreserveSiblings(t *testing.T) {
	s := newStoreWithResume(t)

	workID := s.AddWorkExperience(types.WorkExperience{Company: "Acme", Position: "Engineer"})
	eduID := s.AddEducation(types.Education{Institution: "MIT"})
	skillID := s.AddSkill("Go", types.SkillLevelExpert, "languages")
	projID := s.AddProject(types.Project{Name: "forge"})
	certID := s.AddCertification(types.Certification{Name: "CKA"})

	for name, id := range map[string]string{
		"work": workID, "education": eduID, "skill": skillID,
		"project": projID, "certification": certID,
	} {
		assert.NotEmpty(t, id, "%s id", name)
	}

	got, _ := s.CurrentResume()
	assert.Len(t, got.WorkExperience, 1)
	assert.Len(t, got.Education, 1)
	assert.Len(t, got.Skills, 1)
	assert.Len(t, got.Projects, 1)
	assert.Len(t, got.Certifications, 1)
	assert.Equal(t, workID, got.WorkExperience[0].ID)
	assert.NotNil(t, got.WorkExperience[0].Achievements)
}

func TestUpdateWorkExperiencePatch(t *testing.T) {
	s := newStoreWithResume(t)
	id := s.AddWorkExperience(types.WorkExperience{
		Company:  "Acme",
		Position: "Engineer",
		EndDate:  "2023-01",
	})

	s.UpdateWorkExperience(id, types.WorkExperiencePatch{
		Position:     strp("Staff Engineer"),
		Current:      boolp(true),
		EndDate:      strp(""),
		Achievements: &[]string{"led migration"},
	})

	got, _ := s.CurrentResume()
	exp := got.WorkExperience[0]
	assert.Equal(t, "Acme", exp.Company, "unpatched field unchanged")
	assert.Equal(t, "Staff Engineer", exp.Position)
	assert.True(t, exp.Current)
	assert.Empty(t, exp.EndDate)
	assert.Equal(t, []string{"led migration"}, exp.Achievements)
}

func TestUpdateUnknownEntryStampsButLeavesCollection(t *testing.T) {
	s := newStoreWithResume(t)
	s.AddSkill("Go", types.SkillLevelAdvanced, "languages")
	before, _ := s.CurrentResume()

	s.UpdateSkill("no-such-entry", types.SkillPatch{Name: strp("Rust")})

	after, _ := s.CurrentResume()
	require.Len(t, after.Skills, 1)
	assert.Equal(t, "Go", after.Skills[0].Name)
	assert.Greater(t, after.UpdatedAt, before.UpdatedAt)
}

func TestDeleteEntries(t *testing.T) {
	s := newStoreWithResume(t)
	keep := s.AddSkill("Go", types.SkillLevelAdvanced, "languages")
	drop := s.AddSkill("COBOL", types.SkillLevelBeginner, "languages")

	s.DeleteSkill(drop)

	got, _ := s.CurrentResume()
	require.Len(t, got.Skills, 1)
	assert.Equal(t, keep, got.Skills[0].ID)

	// deleting an unknown id is a stamped no-op
	before := got.UpdatedAt
	s.DeleteSkill("ghost")
	got, _ = s.CurrentResume()
	assert.Len(t, got.Skills, 1)
	assert.Greater(t, got.UpdatedAt, before)
}

func TestUpdateEducationAndCertification(t *testing.T) {
	s := newStoreWithResume(t)
	eduID := s.AddEducation(types.Education{Institution: "MIT", Degree: "BSc"})
	certID := s.AddCertification(types.Certification{Name: "CKA", Expires: false})

	s.UpdateEducation(eduID, types.EducationPatch{GPA: strp("3.9")})
	s.UpdateCertification(certID, types.CertificationPatch{
		Expires:    boolp(true),
		ExpiryDate: strp("2027-05"),
	})

	got, _ := s.CurrentResume()
	assert.Equal(t, "3.9", got.Education[0].GPA)
	assert.Equal(t, "BSc", got.Education[0].Degree)
	assert.True(t, got.Certifications[0].Expires)
	assert.Equal(t, "2027-05", got.Certifications[0].ExpiryDate)
}

func TestUpdateProjectTechnologies(t *testing.T) {
	s := newStoreWithResume(t)
	id := s.AddProject(types.Project{Name: "forge", Technologies: []string{"Go"}})

	techs := []string{"Go", "Postgres"}
	s.UpdateProject(id, types.ProjectPatch{Technologies: &techs})

	// mutating the caller's slice afterwards must not leak into the store
	techs[0] = "mutated"

	got, _ := s.CurrentResume()
	assert.Equal(t, []string{"Go", "Postgres"}, got.Projects[0].Technologies)
}

func TestSummaryAndTemplate(t *testing.T) {
	s := newStoreWithResume(t)

	s.UpdateSummary("seasoned engineer")
	s.UpdateTemplate("classic")

	got, _ := s.CurrentResume()
	assert.Equal(t, "seasoned engineer", got.Summary)
	assert.Equal(t, "classic", got.TemplateID)
}
