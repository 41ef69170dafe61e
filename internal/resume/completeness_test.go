package resume

import (
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func fullPersonalInfo() types.PersonalInfo {
	return types.PersonalInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Location:  "London",
		LinkedIn:  "linkedin.com/in/ada",
		Website:   "ada.dev",
		Title:     "Software Engineer",
	}
}

func fullWorkExperience() types.WorkExperience {
	return types.WorkExperience{
		ID:           "w1",
		Company:      "Analytical Engines Ltd",
		Position:     "Engineer",
		StartDate:    "2020-01",
		EndDate:      "2023-06",
		Description:  strings.Repeat("built and maintained engines ", 3),
		Achievements: []string{"shipped the difference engine"},
	}
}

func fullEducation() types.Education {
	return types.Education{
		ID:          "e1",
		Institution: "University of London",
		Degree:      "BSc",
		Field:       "Mathematics",
		StartDate:   "2014-09",
		EndDate:     "2018-06",
		Description: "First class honours",
	}
}

func fullResume() types.Resume {
	r := NewEmpty()
	r.PersonalInfo = fullPersonalInfo()
	r.Summary = strings.Repeat("Experienced engineer with a track record. ", 4)
	for range 3 {
		r.WorkExperience = append(r.WorkExperience, fullWorkExperience())
	}
	for range 2 {
		r.Education = append(r.Education, fullEducation())
	}
	for range 8 {
		r.Skills = append(r.Skills, types.Skill{ID: "s", Name: "Go", Level: types.SkillLevelExpert})
	}
	for range 2 {
		r.Projects = append(r.Projects, types.Project{
			ID:           "p",
			Name:         "resumeforge",
			Description:  "a resume builder with analysis support",
			Technologies: []string{"Go"},
		})
	}
	for range 2 {
		r.Certifications = append(r.Certifications, types.Certification{
			ID: "c", Name: "Cert", Issuer: "Org", Date: "2022-01",
		})
	}
	return r
}

func TestCompletenessBounds(t *testing.T) {
	if got := Completeness(NewEmpty()); got != 0 {
		t.Errorf("empty resume: got %d, want 0", got)
	}
	if got := Completeness(fullResume()); got != 100 {
		t.Errorf("full resume: got %d, want 100", got)
	}
}

func TestCompletenessSectionWeights(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*types.Resume)
		want  int // earned points before percentage conversion
	}{
		{
			name:  "personal info only",
			apply: func(r *types.Resume) { r.PersonalInfo = fullPersonalInfo() },
			want:  16,
		},
		{
			name:  "short summary",
			apply: func(r *types.Resume) { r.Summary = "brief" },
			want:  5,
		},
		{
			name:  "long summary",
			apply: func(r *types.Resume) { r.Summary = strings.Repeat("x", 101) },
			want:  10,
		},
		{
			name: "one full work entry",
			apply: func(r *types.Resume) {
				r.WorkExperience = append(r.WorkExperience, fullWorkExperience())
			},
			want: 20,
		},
		{
			name: "current role counts as end date",
			apply: func(r *types.Resume) {
				exp := fullWorkExperience()
				exp.EndDate = ""
				exp.Current = true
				r.WorkExperience = append(r.WorkExperience, exp)
			},
			want: 20,
		},
		{
			name: "one full education entry",
			apply: func(r *types.Resume) {
				r.Education = append(r.Education, fullEducation())
			},
			want: 15,
		},
		{
			name: "skills two points each",
			apply: func(r *types.Resume) {
				for range 4 {
					r.Skills = append(r.Skills, types.Skill{Name: "Go"})
				}
			},
			want: 8,
		},
		{
			name: "skills capped at fifteen",
			apply: func(r *types.Resume) {
				for range 30 {
					r.Skills = append(r.Skills, types.Skill{Name: "Go"})
				}
			},
			want: 15,
		},
		{
			name: "short project description earns no description points",
			apply: func(r *types.Resume) {
				r.Projects = append(r.Projects, types.Project{
					Name:         "tool",
					Description:  "tiny",
					Technologies: []string{"Go"},
				})
			},
			want: 3,
		},
		{
			name: "one full certification",
			apply: func(r *types.Resume) {
				r.Certifications = append(r.Certifications, types.Certification{
					Name: "Cert", Issuer: "Org", Date: "2022-01",
				})
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewEmpty()
			tt.apply(&r)
			wantPct := pct(tt.want)
			if got := Completeness(r); got != wantPct {
				t.Errorf("got %d%%, want %d%% (%d points)", got, wantPct, tt.want)
			}
		})
	}
}

func pct(points int) int {
	scaled := float64(points) / totalPoints * 100
	return int(scaled + 0.5)
}

func TestCompletenessEntryCaps(t *testing.T) {
	capped := NewEmpty()
	for range 3 {
		capped.WorkExperience = append(capped.WorkExperience, fullWorkExperience())
	}
	over := capped
	over.WorkExperience = append([]types.WorkExperience{}, capped.WorkExperience...)
	for range 5 {
		over.WorkExperience = append(over.WorkExperience, fullWorkExperience())
	}
	if a, b := Completeness(capped), Completeness(over); a != b {
		t.Errorf("entries beyond the cap changed the score: %d vs %d", a, b)
	}
}

func TestCompletenessMonotonic(t *testing.T) {
	r := NewEmpty()
	prev := Completeness(r)

	steps := []func(*types.Resume){
		func(r *types.Resume) { r.PersonalInfo.FirstName = "Ada" },
		func(r *types.Resume) { r.Summary = "short" },
		func(r *types.Resume) { r.Summary = strings.Repeat("x", 120) },
		func(r *types.Resume) { r.WorkExperience = append(r.WorkExperience, fullWorkExperience()) },
		func(r *types.Resume) { r.Skills = append(r.Skills, types.Skill{Name: "Go"}) },
		func(r *types.Resume) { r.Certifications = append(r.Certifications, types.Certification{Name: "Cert"}) },
	}
	for i, step := range steps {
		step(&r)
		got := Completeness(r)
		if got < prev {
			t.Errorf("step %d decreased score from %d to %d", i, prev, got)
		}
		prev = got
	}
}
