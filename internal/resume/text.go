package resume

import (
	"fmt"
	"strings"

	"resumeforge/internal/types"
)

// PlainText renders a resume as the flat text block sent to the language
// model. Empty sections are omitted so prompts stay compact.
func PlainText(r types.Resume) string {
	var b strings.Builder

	name := strings.TrimSpace(r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName)
	if name != "" {
		b.WriteString(name + "\n")
	}
	if r.PersonalInfo.Title != "" {
		b.WriteString(r.PersonalInfo.Title + "\n")
	}
	contact := joinNonEmpty(", ",
		r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location)
	if contact != "" {
		b.WriteString(contact + "\n")
	}

	if r.Summary != "" {
		b.WriteString("\nSUMMARY\n" + r.Summary + "\n")
	}

	if len(r.WorkExperience) > 0 {
		b.WriteString("\nWORK EXPERIENCE\n")
		for _, exp := range r.WorkExperience {
			b.WriteString(fmt.Sprintf("%s at %s (%s)\n",
				exp.Position, exp.Company, dateRange(exp.StartDate, exp.EndDate, exp.Current)))
			if exp.Description != "" {
				b.WriteString(exp.Description + "\n")
			}
			for _, a := range exp.Achievements {
				if a != "" {
					b.WriteString("- " + a + "\n")
				}
			}
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, edu := range r.Education {
			line := joinNonEmpty(", ", edu.Degree, edu.Field, edu.Institution)
			b.WriteString(fmt.Sprintf("%s (%s)\n",
				line, dateRange(edu.StartDate, edu.EndDate, edu.Current)))
		}
	}

	if len(r.Skills) > 0 {
		names := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			if s.Name != "" {
				names = append(names, s.Name)
			}
		}
		b.WriteString("\nSKILLS\n" + strings.Join(names, ", ") + "\n")
	}

	if len(r.Projects) > 0 {
		b.WriteString("\nPROJECTS\n")
		for _, p := range r.Projects {
			b.WriteString(p.Name)
			if len(p.Technologies) > 0 {
				b.WriteString(" (" + strings.Join(p.Technologies, ", ") + ")")
			}
			b.WriteString("\n")
			if p.Description != "" {
				b.WriteString(p.Description + "\n")
			}
		}
	}

	if len(r.Certifications) > 0 {
		b.WriteString("\nCERTIFICATIONS\n")
		for _, c := range r.Certifications {
			b.WriteString(joinNonEmpty(", ", c.Name, c.Issuer, c.Date) + "\n")
		}
	}

	return strings.TrimSpace(b.String())
}

func dateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return "dates not specified"
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
