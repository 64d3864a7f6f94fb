package models

// Ephemeral parse results. These are recomputed per parse call and
// never mutated afterwards; required fields fall back to sentinel
// values rather than being absent.

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type ExperienceEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

type ParsedCV struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []string          `json:"projects,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
}

type JDBasicInfo struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Type       string `json:"type"`
	Salary     string `json:"salary,omitempty"`
	Experience string `json:"experience"`
}

type JDRequirements struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

type JDSkills struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

type ParsedJD struct {
	BasicInfo        JDBasicInfo    `json:"basic_info"`
	Description      string         `json:"description"`
	Responsibilities []string       `json:"responsibilities"`
	Requirements     JDRequirements `json:"requirements"`
	Skills           JDSkills       `json:"skills"`
	Benefits         []string       `json:"benefits,omitempty"`
	CompanyInfo      string         `json:"company_info,omitempty"`
}

type MatchDetails struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceGap   string   `json:"experience_gap"`
	Recommendations []string `json:"recommendations"`
}

// MatchingResult is a derived value, recomputed on demand.
// All scores are integers in [0, 100].
type MatchingResult struct {
	OverallMatch    int          `json:"overall_match"`
	SkillsMatch     int          `json:"skills_match"`
	ExperienceMatch int          `json:"experience_match"`
	EducationMatch  int          `json:"education_match"`
	Details         MatchDetails `json:"details"`
}
