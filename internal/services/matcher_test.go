package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talentsift/screening/internal/models"
)

func jdWithSkills(required, preferred []string) models.ParsedJD {
	return models.ParsedJD{
		BasicInfo: models.JDBasicInfo{Experience: NotSpecified},
		Skills:    models.JDSkills{Required: required, Preferred: preferred},
	}
}

func TestMatch_ScoresWithinBounds(t *testing.T) {
	cv := models.ParsedCV{
		Skills: []string{"Go", "React"},
		Experience: []models.ExperienceEntry{
			{Duration: "2018 - 2022"},
		},
	}
	jd := jdWithSkills([]string{"Go", "Python", "Kubernetes"}, nil)

	result := NewMatcher().Match(cv, jd)

	for name, score := range map[string]int{
		"overall":    result.OverallMatch,
		"skills":     result.SkillsMatch,
		"experience": result.ExperienceMatch,
		"education":  result.EducationMatch,
	} {
		assert.GreaterOrEqual(t, score, 0, name)
		assert.LessOrEqual(t, score, 100, name)
	}
}

func TestMatchSkills_Vacuous(t *testing.T) {
	result := NewMatcher().Match(models.ParsedCV{}, jdWithSkills(nil, nil))

	assert.Equal(t, 100, result.SkillsMatch)
	assert.Empty(t, result.Details.MatchedSkills)
	assert.Empty(t, result.Details.MissingSkills)
	assert.NotNil(t, result.Details.MatchedSkills)
}

func TestMatchSkills_BidirectionalSubstring(t *testing.T) {
	cv := models.ParsedCV{Skills: []string{"React.js"}}
	jd := jdWithSkills([]string{"React"}, nil)

	result := NewMatcher().Match(cv, jd)

	assert.Equal(t, 100, result.SkillsMatch)
	assert.Contains(t, result.Details.MatchedSkills, "React")
}

func TestMatchSkills_PartialMatch(t *testing.T) {
	cv := models.ParsedCV{Skills: []string{"Go"}}
	jd := jdWithSkills([]string{"Go", "Python"}, nil)

	result := NewMatcher().Match(cv, jd)

	assert.Equal(t, 50, result.SkillsMatch)
	assert.Equal(t, []string{"Go"}, result.Details.MatchedSkills)
	assert.Equal(t, []string{"Python"}, result.Details.MissingSkills)
}

func TestMatchExperience(t *testing.T) {
	matcher := NewMatcher()

	t.Run("no requirement with experience", func(t *testing.T) {
		cv := models.ParsedCV{Experience: []models.ExperienceEntry{{Duration: "2020 - 2022"}}}
		result := matcher.Match(cv, jdWithSkills(nil, nil))
		assert.Equal(t, 100, result.ExperienceMatch)
	})

	t.Run("no requirement without experience", func(t *testing.T) {
		result := matcher.Match(models.ParsedCV{}, jdWithSkills(nil, nil))
		assert.Equal(t, 50, result.ExperienceMatch)
	})

	t.Run("meets requirement", func(t *testing.T) {
		cv := models.ParsedCV{Experience: []models.ExperienceEntry{{Duration: "2015 - 2022"}}}
		jd := jdWithSkills(nil, nil)
		jd.BasicInfo.Experience = "5+ years"

		result := matcher.Match(cv, jd)
		assert.Equal(t, 100, result.ExperienceMatch)
	})

	t.Run("falls short", func(t *testing.T) {
		cv := models.ParsedCV{Experience: []models.ExperienceEntry{{Duration: "2020 - 2022"}}}
		jd := jdWithSkills(nil, nil)
		jd.BasicInfo.Experience = "4+ years"

		result := matcher.Match(cv, jd)
		assert.Equal(t, 50, result.ExperienceMatch)
		assert.Contains(t, result.Details.ExperienceGap, "needed")
	})

	t.Run("no parseable years assumes two per role", func(t *testing.T) {
		cv := models.ParsedCV{Experience: []models.ExperienceEntry{
			{Duration: UnknownDuration},
			{Duration: UnknownDuration},
		}}
		jd := jdWithSkills(nil, nil)
		jd.BasicInfo.Experience = "4+ years"

		result := matcher.Match(cv, jd)
		assert.Equal(t, 100, result.ExperienceMatch)
	})
}

func TestMatchEducation(t *testing.T) {
	matcher := NewMatcher()
	withEduReq := func(req string) models.ParsedJD {
		jd := jdWithSkills(nil, nil)
		jd.Requirements.Education = []string{req}
		return jd
	}

	t.Run("no requirement is vacuous", func(t *testing.T) {
		result := matcher.Match(models.ParsedCV{}, jdWithSkills(nil, nil))
		assert.Equal(t, 100, result.EducationMatch)
	})

	t.Run("requirement without education", func(t *testing.T) {
		result := matcher.Match(models.ParsedCV{}, withEduReq("Bachelor's degree required"))
		assert.Equal(t, 30, result.EducationMatch)
	})

	t.Run("degree satisfies degree requirement", func(t *testing.T) {
		cv := models.ParsedCV{Education: []models.EducationEntry{{Degree: "Bachelor"}}}
		result := matcher.Match(cv, withEduReq("Bachelor's degree required"))
		assert.Equal(t, 90, result.EducationMatch)
	})

	t.Run("advanced requirement with only bachelor", func(t *testing.T) {
		cv := models.ParsedCV{Education: []models.EducationEntry{{Degree: "Bachelor"}}}
		result := matcher.Match(cv, withEduReq("Master's degree preferred"))
		assert.Equal(t, 70, result.EducationMatch)
	})

	t.Run("advanced requirement met", func(t *testing.T) {
		cv := models.ParsedCV{Education: []models.EducationEntry{{Degree: "Master of Science"}}}
		result := matcher.Match(cv, withEduReq("Master's degree preferred"))
		assert.Equal(t, 100, result.EducationMatch)
	})
}

func TestMatch_OverallWeighting(t *testing.T) {
	// skills 100, experience 100, education 100 -> overall 100
	cv := models.ParsedCV{
		Skills:     []string{"Go"},
		Experience: []models.ExperienceEntry{{Duration: "2015 - 2022"}},
	}
	result := NewMatcher().Match(cv, jdWithSkills([]string{"Go"}, nil))
	assert.Equal(t, 100, result.OverallMatch)

	// All zero except vacuous education: 0*0.5 + 50*0.3 + 100*0.2 = 35
	result = NewMatcher().Match(models.ParsedCV{}, jdWithSkills([]string{"Rust"}, nil))
	assert.Equal(t, 35, result.OverallMatch)
}

func TestMatch_Recommendations(t *testing.T) {
	result := NewMatcher().Match(models.ParsedCV{}, jdWithSkills([]string{"Rust", "Go"}, nil))

	assert.NotEmpty(t, result.Details.Recommendations)
	assert.Contains(t, result.Details.Recommendations[0], "Develop skills in:")
}
