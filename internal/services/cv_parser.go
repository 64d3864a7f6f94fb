package services

import (
	"regexp"
	"strings"

	"talentsift/screening/internal/models"
)

// Sentinel values for required CV fields. Absence of a section yields
// a sentinel or an empty collection, never an error.
const (
	UnknownName        = "Unknown Name"
	UnknownEmail       = "Unknown Email"
	UnknownCompany     = "Unknown Company"
	UnknownPosition    = "Unknown Position"
	UnknownDuration    = "Unknown Duration"
	UnknownInstitution = "Unknown Institution"
	UnknownDegree      = "Unknown Degree"
	UnknownField       = "Unknown Field"
	UnknownYear        = "Unknown Year"
)

type CVParser interface {
	ParseCV(text string) models.ParsedCV
}

type cvParser struct {
	rules []sectionRule
}

func NewCVParser() CVParser {
	return &cvParser{
		rules: []sectionRule{
			newSectionRule("summary", "summary", "professional summary", "objective", "profile", "about me"),
			newSectionRule("skills", "skills", "technical skills", "core competencies", "technologies"),
			newSectionRule("experience", "experience", "work experience", "professional experience", "employment history", "work history"),
			newSectionRule("education", "education", "academic background", "academic history"),
			newSectionRule("projects", "projects", "personal projects", "selected projects"),
			newSectionRule("certifications", "certifications", "certificates", "licenses"),
			newSectionRule("languages", "languages"),
		},
	}
}

// ParseCV segments a résumé text blob into a structured record. It is
// a pure function over the input string: no side effects, no failure
// path. The worst case for unstructured input is a mostly-sentinel
// record.
func (p *cvParser) ParseCV(text string) models.ParsedCV {
	sections := splitSections(text, p.rules)

	cv := models.ParsedCV{
		PersonalInfo: p.parsePersonalInfo(sectionText(sections[""]), text),
		Summary:      collapseWhitespace(sectionText(sections["summary"])),
		Skills:       p.parseSkills(sectionText(sections["skills"]), text),
		Experience:   p.parseExperience(sectionText(sections["experience"])),
		Education:    p.parseEducation(sectionText(sections["education"])),
	}

	if s := sectionText(sections["projects"]); s != "" {
		cv.Projects = splitItems(s)
	}
	if s := sectionText(sections["certifications"]); s != "" {
		cv.Certifications = splitItems(s)
	}
	if s := sectionText(sections["languages"]); s != "" {
		cv.Languages = splitItems(s)
	}

	return cv
}

var locationRe = regexp.MustCompile(`^[A-Z][A-Za-z .\-]+,\s*[A-Z][A-Za-z .]*$`)

func (p *cvParser) parsePersonalInfo(header, fullText string) models.PersonalInfo {
	info := models.PersonalInfo{
		Name:     UnknownName,
		Email:    UnknownEmail,
		Phone:    ExtractPhone(header),
		LinkedIn: ExtractLinkedIn(fullText),
		GitHub:   ExtractGitHub(fullText),
	}

	if email := ExtractEmail(fullText); email != "" {
		info.Email = email
	}
	if info.Phone == "" {
		info.Phone = ExtractPhone(fullText)
	}

	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || countDigits(line) > 3 {
			continue
		}
		if locationRe.MatchString(line) {
			if info.Location == "" {
				info.Location = line
			}
			continue
		}
		if info.Name == UnknownName && len(strings.Fields(line)) <= 5 {
			info.Name = line
		}
	}

	return info
}

func (p *cvParser) parseSkills(skillsSection, fullText string) []string {
	set := newSkillSet()

	// Explicit tokens first, so their casing survives, then the fixed
	// vocabulary scanned over the whole document.
	if skillsSection != "" {
		for _, item := range splitItems(skillsSection) {
			for _, token := range strings.Split(item, ",") {
				token = strings.TrimSpace(token)
				if len(token) >= 3 && len(token) < 30 {
					set.add(token)
				}
			}
		}
	}

	for _, hit := range vocabularyHits(fullText) {
		set.add(hit)
	}

	return set.values()
}

var positionSeparators = []string{" at ", " @ ", " | ", " - ", " – ", " — "}

func (p *cvParser) parseExperience(section string) []models.ExperienceEntry {
	entries := splitEntries(section)
	parsed := make([]models.ExperienceEntry, 0, len(entries))

	for _, block := range entries {
		entry := models.ExperienceEntry{
			Company:  UnknownCompany,
			Position: UnknownPosition,
			Duration: UnknownDuration,
		}

		blockText := strings.Join(block, "\n")
		if techs := vocabularyHits(blockText); len(techs) > 0 {
			entry.Technologies = techs
		}

		var descLines []string
		for i, line := range block {
			if entry.Duration == UnknownDuration && hasDuration(line) {
				entry.Duration = extractDuration(line)
			}
			if i == 0 {
				p.parseRoleLine(line, &entry)
				continue
			}
			if !hasDuration(line) || len(strings.Fields(line)) > 6 {
				descLines = append(descLines, line)
			}
		}
		entry.Description = strings.Join(descLines, " ")

		parsed = append(parsed, entry)
	}

	return parsed
}

// parseRoleLine fills position/company from an entry's first line,
// trying "Position at Company" style separators before falling back
// to treating the text before any year as the company name.
func (p *cvParser) parseRoleLine(line string, entry *models.ExperienceEntry) {
	stripped := stripYears(line)

	for _, sep := range positionSeparators {
		if idx := strings.Index(stripped, sep); idx > 0 {
			entry.Position = strings.TrimSpace(stripped[:idx])
			if company := strings.TrimSpace(stripped[idx+len(sep):]); company != "" {
				entry.Company = company
			}
			return
		}
	}

	if stripped != "" {
		if hasDuration(line) {
			entry.Company = stripped
		} else {
			entry.Position = stripped
		}
	}
}

var (
	yearRangeRe = regexp.MustCompile(`\(?\b(19|20)\d{2}\b\s*(?:[-–—to]+\s*(?:\b(19|20)\d{2}\b|present|current|now))?\)?`)
	presentRe   = regexp.MustCompile(`(?i)\bpresent\b|\bcurrent\b`)
)

func hasDuration(line string) bool {
	return yearRe.MatchString(line) || presentRe.MatchString(line)
}

func extractDuration(line string) string {
	if m := yearRangeRe.FindString(line); m != "" {
		return strings.Trim(m, "() ")
	}
	return strings.TrimSpace(line)
}

var (
	degreeRe      = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|ph\.?d\.?|doctorate|b\.?sc?\.?|m\.?sc?\.?|b\.?a\.?|m\.?a\.?|mba|associate(?:'s)?|diploma)\b`)
	fieldRe       = regexp.MustCompile(`(?i)\b(?:in|of)\s+([A-Za-z][A-Za-z &/\-]{2,50})`)
	institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)
)

func (p *cvParser) parseEducation(section string) []models.EducationEntry {
	entries := splitEntries(section)
	parsed := make([]models.EducationEntry, 0, len(entries))

	for _, block := range entries {
		entry := models.EducationEntry{
			Institution: UnknownInstitution,
			Degree:      UnknownDegree,
			Field:       UnknownField,
			Year:        UnknownYear,
		}

		blockText := strings.Join(block, "\n")
		if years := ExtractYears(blockText); len(years) > 0 {
			entry.Year = years[len(years)-1]
		}
		entry.GPA = ExtractGPA(blockText)

		for _, line := range block {
			if entry.Degree == UnknownDegree {
				if m := degreeRe.FindString(line); m != "" {
					entry.Degree = m
					if f := fieldRe.FindStringSubmatch(line); f != nil {
						entry.Field = strings.TrimSpace(f[1])
					}
				}
			}
			if entry.Institution == UnknownInstitution && institutionRe.MatchString(line) {
				if name := stripYears(line); name != "" {
					entry.Institution = name
				}
			}
		}

		if entry.Institution == UnknownInstitution && len(block) > 0 && !degreeRe.MatchString(block[0]) {
			if name := stripYears(block[0]); name != "" {
				entry.Institution = name
			}
		}

		parsed = append(parsed, entry)
	}

	return parsed
}

// stripYears removes year ranges and trailing separators, returning ""
// when nothing but the years was there.
func stripYears(line string) string {
	stripped := strings.TrimSpace(yearRangeRe.ReplaceAllString(line, ""))
	return strings.TrimRight(stripped, " ,|–-")
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
