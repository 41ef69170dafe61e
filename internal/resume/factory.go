package resume

import (
	"resumeforge/internal/types"
	"resumeforge/internal/utils"
)

// DefaultTemplateID is assigned to every freshly created resume
const DefaultTemplateID = "modern"

// NewEmpty creates a blank resume with a fresh identifier and matching
// creation/update timestamps. All collection fields are initialized to
// empty non-nil slices; downstream code relies on never seeing nil here.
func NewEmpty() types.Resume {
	now := utils.NowISO()
	return types.Resume{
		ID:             utils.NewID(),
		CreatedAt:      now,
		UpdatedAt:      now,
		PersonalInfo:   types.PersonalInfo{},
		Summary:        "",
		WorkExperience: []types.WorkExperience{},
		Education:      []types.Education{},
		Skills:         []types.Skill{},
		Projects:       []types.Project{},
		Certifications: []types.Certification{},
		ATSScore:       nil,
		TemplateID:     DefaultTemplateID,
		Keywords:       []string{},
	}
}

// Normalize replaces nil collection fields with empty slices. Documents
// decoded from external JSON may arrive with nulls; every entry point that
// accepts a caller-supplied resume passes it through here.
func Normalize(r types.Resume) types.Resume {
	if r.WorkExperience == nil {
		r.WorkExperience = []types.WorkExperience{}
	}
	if r.Education == nil {
		r.Education = []types.Education{}
	}
	if r.Skills == nil {
		r.Skills = []types.Skill{}
	}
	if r.Projects == nil {
		r.Projects = []types.Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []types.Certification{}
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	if r.TemplateID == "" {
		r.TemplateID = DefaultTemplateID
	}
	return r
}
