package resume

import (
	"math"

	"resumeforge/internal/types"
)

// Rubric caps. Entries beyond a cap contribute nothing to the score.
const (
	maxScoredWork     = 3
	maxScoredEdu      = 2
	maxScoredProjects = 2
	maxScoredCerts    = 2
	maxSkillPoints    = 15
)

// totalPoints is the fixed denominator of the rubric:
// personal 16 + summary 10 + work 60 + education 30 + skills 15 +
// projects 10 + certifications 6.
const totalPoints = 147

// Completeness scores how filled-out a resume is, as a percentage in
// [0, 100]. The function is pure; adding content never lowers the score.
func Completeness(r types.Resume) int {
	earned := scorePersonalInfo(r.PersonalInfo) +
		scoreSummary(r.Summary) +
		scoreWorkExperience(r.WorkExperience) +
		scoreEducation(r.Education) +
		scoreSkills(r.Skills) +
		scoreProjects(r.Projects) +
		scoreCertifications(r.Certifications)

	return int(math.Round(float64(earned) / totalPoints * 100))
}

func scorePersonalInfo(p types.PersonalInfo) int {
	score := 0
	for _, field := range []string{
		p.FirstName, p.LastName, p.Email, p.Phone,
		p.Location, p.LinkedIn, p.Website, p.Title,
	} {
		if field != "" {
			score += 2
		}
	}
	return score
}

func scoreSummary(summary string) int {
	switch {
	case len(summary) > 100:
		return 10
	case len(summary) > 0:
		return 5
	default:
		return 0
	}
}

func scoreWorkExperience(entries []types.WorkExperience) int {
	score := 0
	for i, exp := range entries {
		if i >= maxScoredWork {
			break
		}
		if exp.Company != "" {
			score += 3
		}
		if exp.Position != "" {
			score += 3
		}
		if exp.StartDate != "" {
			score += 2
		}
		if exp.EndDate != "" || exp.Current {
			score += 2
		}
		if len(exp.Description) > 50 {
			score += 5
		}
		if len(exp.Achievements) > 0 {
			score += 5
		}
	}
	return score
}

func scoreEducation(entries []types.Education) int {
	score := 0
	for i, edu := range entries {
		if i >= maxScoredEdu {
			break
		}
		if edu.Institution != "" {
			score += 3
		}
		if edu.Degree != "" {
			score += 3
		}
		if edu.Field != "" {
			score += 3
		}
		if edu.StartDate != "" {
			score += 2
		}
		if edu.EndDate != "" || edu.Current {
			score += 2
		}
		if edu.Description != "" {
			score += 2
		}
	}
	return score
}

func scoreSkills(skills []types.Skill) int {
	return min(len(skills)*2, maxSkillPoints)
}

func scoreProjects(projects []types.Project) int {
	score := 0
	for i, proj := range projects {
		if i >= maxScoredProjects {
			break
		}
		if proj.Name != "" {
			score++
		}
		if len(proj.Description) > 20 {
			score += 2
		}
		if len(proj.Technologies) > 0 {
			score += 2
		}
	}
	return score
}

func scoreCertifications(certs []types.Certification) int {
	score := 0
	for i, cert := range certs {
		if i >= maxScoredCerts {
			break
		}
		if cert.Name != "" {
			score++
		}
		if cert.Issuer != "" {
			score++
		}
		if cert.Date != "" {
			score++
		}
	}
	return score
}
