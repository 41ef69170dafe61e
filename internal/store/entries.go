package store

import (
	"slices"

	"resumeforge/internal/types"
	"resumeforge/internal/utils"
)

// Sub-entity mutators. All of them target the current document; with no
// current document they are silent no-ops (the add variants then return an
// empty id). Updates apply pointer-field patches, so absent fields are left
// untouched, and an unknown entry id leaves the collection unchanged while
// still stamping updatedAt.

// UpdatePersonalInfo patches the contact block of the current document.
func (s *Store) UpdatePersonalInfo(patch types.PersonalInfoPatch) {
	s.mutateCurrent("updatePersonalInfo", func(r *types.Resume) {
		p := &r.PersonalInfo
		setStr(&p.FirstName, patch.FirstName)
		setStr(&p.LastName, patch.LastName)
		setStr(&p.Email, patch.Email)
		setStr(&p.Phone, patch.Phone)
		setStr(&p.Location, patch.Location)
		setStr(&p.LinkedIn, patch.LinkedIn)
		setStr(&p.Website, patch.Website)
		setStr(&p.Title, patch.Title)
	})
}

// UpdateSummary replaces the summary of the current document.
func (s *Store) UpdateSummary(summary string) {
	s.mutateCurrent("updateSummary", func(r *types.Resume) {
		r.Summary = summary
	})
}

// UpdateTemplate switches the render template of the current document.
func (s *Store) UpdateTemplate(templateID string) {
	s.mutateCurrent("updateTemplate", func(r *types.Resume) {
		r.TemplateID = templateID
	})
}

// AddWorkExperience appends an employment entry and returns its new id.
func (s *Store) AddWorkExperience(exp types.WorkExperience) string {
	exp.ID = utils.NewID()
	if exp.Achievements == nil {
		exp.Achievements = []string{}
	}
	id := ""
	s.mutateCurrent("addWorkExperience", func(r *types.Resume) {
		r.WorkExperience = append(r.WorkExperience, exp)
		id = exp.ID
	})
	return id
}

// UpdateWorkExperience patches the employment entry with the given id.
func (s *Store) UpdateWorkExperience(id string, patch types.WorkExperiencePatch) {
	s.mutateCurrent("updateWorkExperience", func(r *types.Resume) {
		for i := range r.WorkExperience {
			if r.WorkExperience[i].ID != id {
				continue
			}
			e := &r.WorkExperience[i]
			setStr(&e.Company, patch.Company)
			setStr(&e.Position, patch.Position)
			setStr(&e.Location, patch.Location)
			setStr(&e.StartDate, patch.StartDate)
			setStr(&e.EndDate, patch.EndDate)
			setBool(&e.Current, patch.Current)
			setStr(&e.Description, patch.Description)
			if patch.Achievements != nil {
				e.Achievements = slices.Clone(*patch.Achievements)
			}
			return
		}
	})
}

// DeleteWorkExperience removes the employment entry with the given id.
func (s *Store) DeleteWorkExperience(id string) {
	s.mutateCurrent("deleteWorkExperience", func(r *types.Resume) {
		r.WorkExperience = slices.DeleteFunc(r.WorkExperience, func(e types.WorkExperience) bool {
			return e.ID == id
		})
	})
}

// AddEducation appends an education entry and returns its new id.
func (s *Store) AddEducation(edu types.Education) string {
	edu.ID = utils.NewID()
	id := ""
	s.mutateCurrent("addEducation", func(r *types.Resume) {
		r.Education = append(r.Education, edu)
		id = edu.ID
	})
	return id
}

// UpdateEducation patches the education entry with the given id.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.mutateCurrent("updateEducation", func(r *types.Resume) {
		for i := range r.Education {
			if r.Education[i].ID != id {
				continue
			}
			e := &r.Education[i]
			setStr(&e.Institution, patch.Institution)
			setStr(&e.Degree, patch.Degree)
			setStr(&e.Field, patch.Field)
			setStr(&e.Location, patch.Location)
			setStr(&e.StartDate, patch.StartDate)
			setStr(&e.EndDate, patch.EndDate)
			setBool(&e.Current, patch.Current)
			setStr(&e.GPA, patch.GPA)
			setStr(&e.Description, patch.Description)
			return
		}
	})
}

// DeleteEducation removes the education entry with the given id.
func (s *Store) DeleteEducation(id string) {
	s.mutateCurrent("deleteEducation", func(r *types.Resume) {
		r.Education = slices.DeleteFunc(r.Education, func(e types.Education) bool {
			return e.ID == id
		})
	})
}

// AddSkill appends a skill and returns its new id.
func (s *Store) AddSkill(name, level, category string) string {
	skill := types.Skill{ID: utils.NewID(), Name: name, Level: level, Category: category}
	id := ""
	s.mutateCurrent("addSkill", func(r *types.Resume) {
		r.Skills = append(r.Skills, skill)
		id = skill.ID
	})
	return id
}

// UpdateSkill patches the skill with the given id.
func (s *Store) UpdateSkill(id string, patch types.SkillPatch) {
	s.mutateCurrent("updateSkill", func(r *types.Resume) {
		for i := range r.Skills {
			if r.Skills[i].ID != id {
				continue
			}
			e := &r.Skills[i]
			setStr(&e.Name, patch.Name)
			setStr(&e.Level, patch.Level)
			setStr(&e.Category, patch.Category)
			return
		}
	})
}

// DeleteSkill removes the skill with the given id.
func (s *Store) DeleteSkill(id string) {
	s.mutateCurrent("deleteSkill", func(r *types.Resume) {
		r.Skills = slices.DeleteFunc(r.Skills, func(e types.Skill) bool {
			return e.ID == id
		})
	})
}

// AddProject appends a project entry and returns its new id.
func (s *Store) AddProject(proj types.Project) string {
	proj.ID = utils.NewID()
	if proj.Technologies == nil {
		proj.Technologies = []string{}
	}
	id := ""
	s.mutateCurrent("addProject", func(r *types.Resume) {
		r.Projects = append(r.Projects, proj)
		id = proj.ID
	})
	return id
}

// UpdateProject patches the project entry with the given id.
func (s *Store) UpdateProject(id string, patch types.ProjectPatch) {
	s.mutateCurrent("updateProject", func(r *types.Resume) {
		for i := range r.Projects {
			if r.Projects[i].ID != id {
				continue
			}
			e := &r.Projects[i]
			setStr(&e.Name, patch.Name)
			setStr(&e.Description, patch.Description)
			setStr(&e.StartDate, patch.StartDate)
			setStr(&e.EndDate, patch.EndDate)
			setBool(&e.Current, patch.Current)
			setStr(&e.URL, patch.URL)
			if patch.Technologies != nil {
				e.Technologies = slices.Clone(*patch.Technologies)
			}
			return
		}
	})
}

// DeleteProject removes the project entry with the given id.
func (s *Store) DeleteProject(id string) {
	s.mutateCurrent("deleteProject", func(r *types.Resume) {
		r.Projects = slices.DeleteFunc(r.Projects, func(e types.Project) bool {
			return e.ID == id
		})
	})
}

// AddCertification appends a certification entry and returns its new id.
func (s *Store) AddCertification(cert types.Certification) string {
	cert.ID = utils.NewID()
	id := ""
	s.mutateCurrent("addCertification", func(r *types.Resume) {
		r.Certifications = append(r.Certifications, cert)
		id = cert.ID
	})
	return id
}

// UpdateCertification patches the certification entry with the given id.
func (s *Store) UpdateCertification(id string, patch types.CertificationPatch) {
	s.mutateCurrent("updateCertification", func(r *types.Resume) {
		for i := range r.Certifications {
			if r.Certifications[i].ID != id {
				continue
			}
			e := &r.Certifications[i]
			setStr(&e.Name, patch.Name)
			setStr(&e.Issuer, patch.Issuer)
			setStr(&e.Date, patch.Date)
			setStr(&e.URL, patch.URL)
			setBool(&e.Expires, patch.Expires)
			setStr(&e.ExpiryDate, patch.ExpiryDate)
			return
		}
	})
}

// DeleteCertification removes the certification entry with the given id.
func (s *Store) DeleteCertification(id string) {
	s.mutateCurrent("deleteCertification", func(r *types.Resume) {
		r.Certifications = slices.DeleteFunc(r.Certifications, func(e types.Certification) bool {
			return e.ID == id
		})
	})
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
