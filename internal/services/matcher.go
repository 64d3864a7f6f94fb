package services

import (
	"fmt"
	"math"
	"strings"

	"talentsift/screening/internal/models"
)

type Matcher interface {
	Match(cv models.ParsedCV, jd models.ParsedJD) models.MatchingResult
}

type matcher struct{}

func NewMatcher() Matcher {
	return &matcher{}
}

// Overall match weights. Skills dominate, experience and education are
// coarse presence/count heuristics rather than semantic comparisons.
const (
	skillsWeight     = 0.5
	experienceWeight = 0.3
	educationWeight  = 0.2
)

// Match computes a weighted fit score between a parsed CV and a parsed
// JD. All scores are integers clamped to [0, 100] by construction.
func (m *matcher) Match(cv models.ParsedCV, jd models.ParsedJD) models.MatchingResult {
	skills, matched, missing := m.matchSkills(cv, jd)
	experience, gap := m.matchExperience(cv, jd)
	education := m.matchEducation(cv, jd)

	overall := int(math.Round(
		float64(skills)*skillsWeight +
			float64(experience)*experienceWeight +
			float64(education)*educationWeight))

	return models.MatchingResult{
		OverallMatch:    overall,
		SkillsMatch:     skills,
		ExperienceMatch: experience,
		EducationMatch:  education,
		Details: models.MatchDetails{
			MatchedSkills:   matched,
			MissingSkills:   missing,
			ExperienceGap:   gap,
			Recommendations: m.recommendations(skills, missing, gap, education),
		},
	}
}

// matchSkills compares the JD's required+preferred skills against the
// CV's skills using bidirectional case-insensitive substring
// containment — permissive on purpose, to tolerate naming variants
// like "React" vs "React.js" (though not "JS" vs "JavaScript").
// A JD listing no skills vacuously matches at 100.
func (m *matcher) matchSkills(cv models.ParsedCV, jd models.ParsedJD) (int, []string, []string) {
	wanted := newSkillSet()
	for _, s := range jd.Skills.Required {
		wanted.add(s)
	}
	for _, s := range jd.Skills.Preferred {
		wanted.add(s)
	}

	targets := wanted.values()
	if len(targets) == 0 {
		return 100, []string{}, []string{}
	}

	matched := []string{}
	missing := []string{}
	for _, target := range targets {
		if cvHasSkill(cv.Skills, target) {
			matched = append(matched, target)
		} else {
			missing = append(missing, target)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(targets))))
	return score, matched, missing
}

func cvHasSkill(cvSkills []string, target string) bool {
	lowTarget := strings.ToLower(target)
	for _, skill := range cvSkills {
		lowSkill := strings.ToLower(skill)
		if strings.Contains(lowSkill, lowTarget) || strings.Contains(lowTarget, lowSkill) {
			return true
		}
	}
	return false
}

// matchExperience estimates candidate years from the year spans in the
// experience durations (falling back to two per listed entry) and
// compares them against the JD's stated requirement.
func (m *matcher) matchExperience(cv models.ParsedCV, jd models.ParsedJD) (int, string) {
	wantYears := ExtractYearsOfExperience(jd.BasicInfo.Experience)

	if wantYears == 0 {
		if len(cv.Experience) > 0 {
			return 100, "No specific experience requirement"
		}
		return 50, "No work experience listed"
	}

	haveYears := estimateYears(cv.Experience)
	if haveYears >= wantYears {
		return 100, "Meets the experience requirement"
	}

	score := int(math.Round(100 * float64(haveYears) / float64(wantYears)))
	gap := fmt.Sprintf("Approximately %d more year(s) of experience needed (%d of %d)",
		wantYears-haveYears, haveYears, wantYears)
	return score, gap
}

func estimateYears(entries []models.ExperienceEntry) int {
	minYear, maxYear := 0, 0
	for _, entry := range entries {
		for _, y := range ExtractYears(entry.Duration) {
			year := 0
			for _, ch := range y {
				year = year*10 + int(ch-'0')
			}
			if minYear == 0 || year < minYear {
				minYear = year
			}
			if year > maxYear {
				maxYear = year
			}
		}
	}

	if minYear == 0 {
		// No parseable years: assume two per listed role.
		return 2 * len(entries)
	}
	if span := maxYear - minYear; span > 0 {
		return span
	}
	return 1
}

// matchEducation is presence/degree-level based. No education
// requirement in the JD is a vacuous 100.
func (m *matcher) matchEducation(cv models.ParsedCV, jd models.ParsedJD) int {
	if len(jd.Requirements.Education) == 0 {
		return 100
	}
	if len(cv.Education) == 0 {
		return 30
	}

	required := strings.ToLower(strings.Join(jd.Requirements.Education, " "))
	wantsAdvanced := strings.Contains(required, "master") || strings.Contains(required, "phd") ||
		strings.Contains(required, "doctorate")

	hasAdvanced := false
	hasDegree := false
	for _, entry := range cv.Education {
		lower := strings.ToLower(entry.Degree)
		if entry.Degree != UnknownDegree {
			hasDegree = true
		}
		if strings.Contains(lower, "master") || strings.Contains(lower, "phd") ||
			strings.Contains(lower, "doctorate") || strings.Contains(lower, "m.s") {
			hasAdvanced = true
		}
	}

	switch {
	case wantsAdvanced && hasAdvanced:
		return 100
	case wantsAdvanced && hasDegree:
		return 70
	case hasDegree:
		return 90
	default:
		return 60
	}
}

func (m *matcher) recommendations(skillsScore int, missing []string, gap string, educationScore int) []string {
	recs := []string{}

	if len(missing) > 0 {
		limit := len(missing)
		if limit > 5 {
			limit = 5
		}
		recs = append(recs, "Develop skills in: "+strings.Join(missing[:limit], ", "))
	}
	if strings.Contains(gap, "needed") {
		recs = append(recs, gap)
	}
	if educationScore < 70 {
		recs = append(recs, "Highlight relevant education or certifications")
	}
	if skillsScore >= 80 && len(recs) == 0 {
		recs = append(recs, "Strong profile for this role")
	}

	return recs
}
