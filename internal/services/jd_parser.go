package services

import (
	"fmt"
	"regexp"
	"strings"

	"talentsift/screening/internal/models"
)

const (
	UnknownTitle      = "Unknown Title"
	UnknownJobCompany = "Unknown Company"
	UnknownLocation   = "Unknown Location"
	NotSpecified      = "Not specified"

	maxResponsibilities = 10
	maxSkillsPerList    = 15
)

type JDParser interface {
	ParseJD(text string) models.ParsedJD
}

type jdParser struct {
	rules []sectionRule
}

func NewJDParser() JDParser {
	return &jdParser{
		rules: []sectionRule{
			newSectionRule("description", "description", "job description", "about the role", "about this role", "the role", "overview"),
			newSectionRule("responsibilities", "responsibilities", "duties", `what you'll do`, "what you will do", "your role"),
			newSectionRule("requirements", "requirements", "qualifications", "what we're looking for", "what we are looking for", "must have", "must haves"),
			newSectionRule("preferred", "preferred qualifications", "preferred", "nice to have", "nice to haves", "bonus points"),
			newSectionRule("benefits", "benefits", "perks", "what we offer", "we offer"),
			newSectionRule("company", "about us", "about the company", "who we are"),
		},
	}
}

// ParseJD segments a job description into a structured record. Same
// contract as ParseCV: pure, total, sentinel defaults, never an error.
func (p *jdParser) ParseJD(text string) models.ParsedJD {
	sections := splitSections(text, p.rules)

	header := sectionText(sections[""])
	requirements := splitItems(sectionText(sections["requirements"]))
	preferred := splitItems(sectionText(sections["preferred"]))

	jd := models.ParsedJD{
		BasicInfo:        p.parseBasicInfo(header, text),
		Description:      p.parseDescription(sectionText(sections["description"]), header),
		Responsibilities: capItems(splitItems(sectionText(sections["responsibilities"])), maxResponsibilities),
		Requirements:     classifyRequirements(requirements),
		Skills: models.JDSkills{
			Required:  capItems(extractSkillList(requirements), maxSkillsPerList),
			Preferred: capItems(extractSkillList(preferred), maxSkillsPerList),
		},
	}

	if s := sectionText(sections["benefits"]); s != "" {
		jd.Benefits = splitItems(s)
	}
	if s := sectionText(sections["company"]); s != "" {
		jd.CompanyInfo = collapseWhitespace(s)
	}

	return jd
}

var (
	labeledTitleRe    = regexp.MustCompile(`(?i)^\s*(?:job title|position|role)\s*:\s*(.+)$`)
	labeledCompanyRe  = regexp.MustCompile(`(?i)^\s*company\s*:\s*(.+)$`)
	labeledLocationRe = regexp.MustCompile(`(?i)^\s*location\s*:\s*(.+)$`)
	labeledTypeRe     = regexp.MustCompile(`(?i)^\s*(?:employment\s+)?type\s*:\s*(.+)$`)
	employmentTypeRe  = regexp.MustCompile(`(?i)\b(full[ \-]time|part[ \-]time|contract|internship|freelance|temporary)\b`)
	remoteRe          = regexp.MustCompile(`(?i)\bremote\b`)
)

func (p *jdParser) parseBasicInfo(header, fullText string) models.JDBasicInfo {
	info := models.JDBasicInfo{
		Title:      UnknownTitle,
		Company:    UnknownJobCompany,
		Location:   UnknownLocation,
		Type:       "Full-time",
		Experience: NotSpecified,
	}

	for _, line := range strings.Split(fullText, "\n") {
		line = strings.TrimSpace(line)
		if m := labeledTitleRe.FindStringSubmatch(line); m != nil && info.Title == UnknownTitle {
			info.Title = strings.TrimSpace(m[1])
		}
		if m := labeledCompanyRe.FindStringSubmatch(line); m != nil && info.Company == UnknownJobCompany {
			info.Company = strings.TrimSpace(m[1])
		}
		if m := labeledLocationRe.FindStringSubmatch(line); m != nil && info.Location == UnknownLocation {
			info.Location = strings.TrimSpace(m[1])
		}
		if m := labeledTypeRe.FindStringSubmatch(line); m != nil {
			info.Type = strings.TrimSpace(m[1])
		}
	}

	// Fall back to the first header line for the title.
	if info.Title == UnknownTitle {
		for _, line := range strings.Split(header, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				info.Title = line
				break
			}
		}
	}

	if info.Type == "Full-time" {
		if m := employmentTypeRe.FindString(fullText); m != "" {
			info.Type = canonicalType(m)
		} else if remoteRe.MatchString(fullText) {
			info.Type = "Remote"
		}
	}

	if salary := ExtractSalary(fullText); salary != "" {
		info.Salary = salary
	}

	if years := ExtractYearsOfExperience(fullText); years > 0 {
		info.Experience = yearsLabel(years)
	}

	return info
}

func (p *jdParser) parseDescription(section, header string) string {
	if section != "" {
		return collapseWhitespace(section)
	}

	// No labeled description: use the header paragraph after the title.
	lines := strings.Split(header, "\n")
	if len(lines) > 1 {
		return collapseWhitespace(strings.Join(lines[1:], "\n"))
	}
	return ""
}

// Requirement classification keyword lists, checked in priority order:
// technical, then soft, then experience, then education. A line hitting
// both a technical and a soft keyword is technical; that tie-break is
// deliberate. Unmatched lines default to technical.
var requirementBuckets = []struct {
	name     string
	keywords []string
}{
	{"technical", []string{
		"proficien", "programming", "coding", "software", "development",
		"framework", "database", "api", "cloud", "devops", "testing",
		"architecture", "debugging", "algorithms",
	}},
	{"soft", []string{
		"communication", "team", "collaborat", "leadership", "interpersonal",
		"problem-solving", "self-motivated", "attention to detail", "mentoring",
	}},
	{"experience", []string{
		"years", "experience", "track record", "background", "worked",
	}},
	{"education", []string{
		"degree", "bachelor", "master", "phd", "education", "university",
		"certification", "certified",
	}},
}

func classifyRequirements(lines []string) models.JDRequirements {
	reqs := models.JDRequirements{
		Technical:  []string{},
		Soft:       []string{},
		Experience: []string{},
		Education:  []string{},
	}

	for _, line := range lines {
		switch classifyRequirement(line) {
		case "soft":
			reqs.Soft = append(reqs.Soft, line)
		case "experience":
			reqs.Experience = append(reqs.Experience, line)
		case "education":
			reqs.Education = append(reqs.Education, line)
		default:
			reqs.Technical = append(reqs.Technical, line)
		}
	}

	return reqs
}

func classifyRequirement(line string) string {
	lower := strings.ToLower(line)
	for _, bucket := range requirementBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.name
			}
		}
	}
	return "technical"
}

func extractSkillList(lines []string) []string {
	set := newSkillSet()
	for _, line := range lines {
		for _, hit := range vocabularyHits(line) {
			set.add(hit)
		}
	}
	return set.values()
}

func capItems(items []string, max int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}

func canonicalType(raw string) string {
	lower := strings.ToLower(strings.ReplaceAll(raw, " ", "-"))
	switch lower {
	case "full-time":
		return "Full-time"
	case "part-time":
		return "Part-time"
	default:
		return strings.ToUpper(lower[:1]) + lower[1:]
	}
}

func yearsLabel(years int) string {
	label := "years"
	if years == 1 {
		label = "year"
	}
	return fmt.Sprintf("%d+ %s", years, label)
}
