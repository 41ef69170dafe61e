package types

// PersonalInfo holds the contact block of a resume
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
	Title     string `json:"title"`
}

// WorkExperience represents a single employment entry
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education represents a single education entry
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Skill proficiency levels, ordered weakest to strongest
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"
)

// Skill represents a single skill entry
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// Project represents a single project entry
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`
}

// Certification represents a single certification entry
type Certification struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	URL        string `json:"url"`
	Expires    bool   `json:"expires"`
	ExpiryDate string `json:"expiryDate"`
}

// Resume is the root document. The five collection fields are never nil;
// construct instances through resume.NewEmpty to keep that invariant.
type Resume struct {
	ID             string           `json:"id"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	ATSScore       *int             `json:"atsScore"`
	TemplateID     string           `json:"templateId"`
	Keywords       []string         `json:"keywords"`
}

// JobDescription is the transient posting a resume is analyzed against
type JobDescription struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Keywords    []string `json:"keywords"`
}

// KeywordMatch reports how often a job keyword appears in the resume
type KeywordMatch struct {
	Keyword    string `json:"keyword"`
	Count      int    `json:"count"`
	Importance int    `json:"importance"` // 1-10
}

// SectionFeedback carries per-section scoring from an analysis
type SectionFeedback struct {
	Section  string `json:"section"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ATSAnalysis is the result of matching a resume against a job description.
// All fields are always concrete; failed analyses produce a zero score with
// an explanatory suggestion rather than nil fields.
type ATSAnalysis struct {
	Score           int               `json:"score"`
	MissingKeywords []string          `json:"missingKeywords"`
	Suggestions     []string          `json:"suggestions"`
	KeywordMatches  []KeywordMatch    `json:"keywordMatches"`
	SectionFeedback []SectionFeedback `json:"sectionFeedback"`
}

// SectionCount reports how many entries a resume section holds
type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// CompletenessReport summarizes how filled-in a resume is
type CompletenessReport struct {
	ResumeID     string         `json:"resumeId"`
	Name         string         `json:"name"`
	Completeness int            `json:"completeness"`
	Sections     []SectionCount `json:"sections"`
}

// SkillSuggestions carries suggested skills for a job title
type SkillSuggestions struct {
	JobTitle string   `json:"jobTitle"`
	Skills   []string `json:"skills"`
}

// PersonalInfoPatch updates individual contact fields. Nil means unchanged.
type PersonalInfoPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Website   *string `json:"website,omitempty"`
	Title     *string `json:"title,omitempty"`
}

// WorkExperiencePatch updates individual fields of an employment entry
type WorkExperiencePatch struct {
	Company      *string   `json:"company,omitempty"`
	Position     *string   `json:"position,omitempty"`
	Location     *string   `json:"location,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	Current      *bool     `json:"current,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
}

// EducationPatch updates individual fields of an education entry
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SkillPatch updates individual fields of a skill entry
type SkillPatch struct {
	Name     *string `json:"name,omitempty"`
	Level    *string `json:"level,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ProjectPatch updates individual fields of a project entry
type ProjectPatch struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	Current      *bool     `json:"current,omitempty"`
	URL          *string   `json:"url,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
}

// CertificationPatch updates individual fields of a certification entry
type CertificationPatch struct {
	Name       *string `json:"name,omitempty"`
	Issuer     *string `json:"issuer,omitempty"`
	Date       *string `json:"date,omitempty"`
	URL        *string `json:"url,omitempty"`
	Expires    *bool   `json:"expires,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
}
