package resume

import (
	"strings"
	"testing"
)

func TestPlainTextEmptySectionsOmitted(t *testing.T) {
	r := NewEmpty()
	r.PersonalInfo.FirstName = "Ada"
	r.PersonalInfo.LastName = "Lovelace"

	text := PlainText(r)
	if !strings.Contains(text, "Ada Lovelace") {
		t.Errorf("missing name in output:\n%s", text)
	}
	for _, header := range []string{"SUMMARY", "WORK EXPERIENCE", "EDUCATION", "SKILLS", "PROJECTS", "CERTIFICATIONS"} {
		if strings.Contains(text, header) {
			t.Errorf("empty section %s should be omitted:\n%s", header, text)
		}
	}
}

func TestPlainTextSections(t *testing.T) {
	r := fullResume()
	r.WorkExperience[0].Current = true
	r.WorkExperience[0].EndDate = ""

	text := PlainText(r)

	for _, want := range []string{
		"SUMMARY",
		"WORK EXPERIENCE",
		"Engineer at Analytical Engines Ltd",
		"Present",
		"- shipped the difference engine",
		"EDUCATION",
		"BSc, Mathematics, University of London",
		"SKILLS",
		"Go",
		"PROJECTS",
		"resumeforge",
		"CERTIFICATIONS",
		"Cert, Org, 2022-01",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in output:\n%s", want, text)
		}
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2020-01", "2022-02", false, "2020-01 - 2022-02"},
		{"2020-01", "", true, "2020-01 - Present"},
		{"2020-01", "", false, "2020-01"},
		{"", "2022-02", false, "2022-02"},
		{"", "", false, "dates not specified"},
	}
	for _, tt := range tests {
		if got := dateRange(tt.start, tt.end, tt.current); got != tt.want {
			t.Errorf("dateRange(%q, %q, %v) = %q, want %q",
				tt.start, tt.end, tt.current, got, tt.want)
		}
	}
}
