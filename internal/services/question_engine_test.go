package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsift/screening/internal/models"
)

func testEngine() QuestionEngine {
	return NewQuestionEngine(rand.New(rand.NewSource(42)))
}

func engineJD(title string, required ...string) models.ParsedJD {
	return models.ParsedJD{
		BasicInfo: models.JDBasicInfo{Title: title, Company: "TechNova"},
		Skills:    models.JDSkills{Required: required},
	}
}

func TestGenerateQuestions_Composition(t *testing.T) {
	questions := testEngine().GenerateQuestions(
		engineJD("Backend Engineer", "Go", "SQL", "Docker", "React"),
		nil, nil,
		QuestionConfig{QuestionCount: 5},
	)

	require.Len(t, questions, 5)

	// Two technical from the top skills, then one each of the fixed
	// categories.
	assert.Equal(t, models.QuestionTechnical, questions[0].Type)
	assert.Equal(t, models.QuestionTechnical, questions[1].Type)
	assert.Equal(t, models.QuestionExperience, questions[2].Type)
	assert.Equal(t, models.QuestionBehavioral, questions[3].Type)
	assert.Equal(t, models.QuestionCompanySpecific, questions[4].Type)

	assert.Equal(t, "Go", questions[0].Category)
	assert.Equal(t, "SQL", questions[1].Category)
}

func TestGenerateQuestions_CountCap(t *testing.T) {
	questions := testEngine().GenerateQuestions(
		engineJD("Backend Engineer", "Go", "SQL"),
		nil, nil,
		QuestionConfig{QuestionCount: 3},
	)
	assert.Len(t, questions, 3)
}

func TestGenerateQuestions_DefaultCount(t *testing.T) {
	questions := testEngine().GenerateQuestions(
		engineJD("Backend Engineer", "Go"),
		nil, nil,
		QuestionConfig{},
	)
	assert.LessOrEqual(t, len(questions), 5)
	assert.NotEmpty(t, questions)
}

func TestGenerateQuestions_NoAdaptiveWithoutHistory(t *testing.T) {
	questions := testEngine().GenerateQuestions(
		engineJD("Backend Engineer", "Go"),
		nil, nil,
		QuestionConfig{QuestionCount: 10, AdaptiveFlow: true},
	)

	for _, q := range questions {
		assert.False(t, IsFollowUp(q), q.Category)
	}
}

func TestGenerateQuestions_AdaptiveFollowUps(t *testing.T) {
	previous := []models.AIResponse{
		{Score: 30, Improvements: []string{"Provide concrete examples."}},
		{Score: 95},
	}

	questions := testEngine().GenerateQuestions(
		engineJD("Backend Engineer", "Go"),
		nil, previous,
		QuestionConfig{QuestionCount: 10, AdaptiveFlow: true},
	)

	followUps := 0
	for _, q := range questions {
		if IsFollowUp(q) {
			followUps++
		}
	}
	// Low score earns a clarifying question; the high score is the
	// final response, which never earns an advanced follow-up here.
	assert.Equal(t, 1, followUps)
}

func TestTechnicalQuestion_DifficultyEscalation(t *testing.T) {
	engine := testEngine()
	jd := engineJD("Backend Engineer", "Go")

	withSkill := &models.ParsedCV{Skills: []string{"Go"}}
	questions := engine.GenerateQuestions(jd, withSkill, nil, QuestionConfig{QuestionCount: 5})
	assert.Equal(t, models.DifficultyMedium, questions[0].Difficulty)

	withoutSkill := &models.ParsedCV{Skills: []string{"Python"}}
	questions = engine.GenerateQuestions(jd, withoutSkill, nil, QuestionConfig{QuestionCount: 5})
	assert.Equal(t, models.DifficultyHard, questions[0].Difficulty)
}

func TestBehavioralQuestion_SeniorityPool(t *testing.T) {
	engine := testEngine()

	senior := engine.GenerateQuestions(engineJD("Senior Backend Engineer", "Go"), nil, nil, QuestionConfig{QuestionCount: 5})
	var behavioral models.AIQuestion
	for _, q := range senior {
		if q.Type == models.QuestionBehavioral {
			behavioral = q
		}
	}
	assert.Equal(t, "leadership", behavioral.Category)

	junior := engine.GenerateQuestions(engineJD("Junior Developer", "Go"), nil, nil, QuestionConfig{QuestionCount: 5})
	for _, q := range junior {
		if q.Type == models.QuestionBehavioral {
			behavioral = q
		}
	}
	assert.Equal(t, "collaboration", behavioral.Category)
}

func TestScoreResponse_Bounds(t *testing.T) {
	engine := testEngine()
	question := models.AIQuestion{
		ID:               "q1",
		Type:             models.QuestionTechnical,
		ExpectedKeywords: []string{"go"},
		ScoringCriteria:  criteriaByType[models.QuestionTechnical],
	}

	answers := []string{
		"",
		"no",
		strings.Repeat("goroutines channels scheduling preemption deadlock detection example ", 60),
	}
	for _, answer := range answers {
		resp := engine.ScoreResponse(question, answer, nil)
		assert.GreaterOrEqual(t, resp.Score, 0)
		assert.LessOrEqual(t, resp.Score, 100)
		assert.NotEmpty(t, resp.Feedback)
	}
}

func TestScoreResponse_KeywordMatters(t *testing.T) {
	engine := testEngine()
	question := models.AIQuestion{
		ID:               "q1",
		Type:             models.QuestionTechnical,
		ExpectedKeywords: []string{"goroutine"},
		ScoringCriteria:  criteriaByType[models.QuestionTechnical],
	}

	answer := "For example, I structured the worker pool so each goroutine drained a shared channel."
	offTopic := "For example, I once organized a large team offsite with careful planning."

	withKeyword := engine.ScoreResponse(question, answer, nil)
	without := engine.ScoreResponse(question, offTopic, nil)

	assert.Greater(t, withKeyword.Score, without.Score)
}

func TestScoreResponse_CommunicationSaturates(t *testing.T) {
	engine := testEngine()
	question := models.AIQuestion{
		ID:              "q1",
		Type:            models.QuestionBehavioral,
		ScoringCriteria: criteriaByType[models.QuestionBehavioral],
	}

	at300 := strings.Repeat("word ", 300)
	at600 := strings.Repeat("word ", 600)

	first := engine.ScoreResponse(question, at300, nil)
	second := engine.ScoreResponse(question, at600, nil)

	// Word count past 300 adds nothing.
	assert.Equal(t, first.Score, second.Score)
}

func TestScoreResponse_ImprovementsForShortAnswer(t *testing.T) {
	engine := testEngine()
	question := models.AIQuestion{
		ID:              "q1",
		Type:            models.QuestionBehavioral,
		ScoringCriteria: criteriaByType[models.QuestionBehavioral],
	}

	resp := engine.ScoreResponse(question, "it went fine", nil)
	assert.NotEmpty(t, resp.Improvements)
}

func TestFollowUpFor(t *testing.T) {
	engine := testEngine()
	question := models.AIQuestion{ID: "q1", Type: models.QuestionTechnical}

	t.Run("low score earns clarification", func(t *testing.T) {
		follow := engine.FollowUpFor(question, models.AIResponse{Score: 30})
		require.NotNil(t, follow)
		assert.Equal(t, models.DifficultyEasy, follow.Difficulty)
		assert.True(t, IsFollowUp(*follow))
	})

	t.Run("high score earns deep dive", func(t *testing.T) {
		follow := engine.FollowUpFor(question, models.AIResponse{Score: 95})
		require.NotNil(t, follow)
		assert.Equal(t, models.DifficultyHard, follow.Difficulty)
		assert.True(t, IsFollowUp(*follow))
	})

	t.Run("middling score earns nothing", func(t *testing.T) {
		assert.Nil(t, engine.FollowUpFor(question, models.AIResponse{Score: 70}))
	})
}
