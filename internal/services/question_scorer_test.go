package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talentsift/screening/internal/models"
)

func TestScoreAnswer_MultipleChoice(t *testing.T) {
	question := models.Question{
		Type: models.BuilderMultipleChoice,
		Options: []models.ChoiceOption{
			{ID: "a", Text: "Every sprint", Score: 100},
			{ID: "b", Text: "Rarely", Score: 20},
		},
	}

	scorer := NewQuestionScorer()
	assert.Equal(t, 100, scorer.ScoreAnswer(question, "a"))
	assert.Equal(t, 20, scorer.ScoreAnswer(question, "Rarely"))
	assert.Equal(t, 100, scorer.ScoreAnswer(question, "EVERY SPRINT"))
	assert.Equal(t, 0, scorer.ScoreAnswer(question, "c"))
}

func TestScoreAnswer_ExperienceLevel(t *testing.T) {
	question := models.Question{
		Type: models.BuilderExperienceLevel,
		Levels: []models.ExperienceLevel{
			{ID: "junior", Label: "0-2 years", Score: 30},
			{ID: "senior", Label: "5+ years", Score: 90},
		},
	}

	scorer := NewQuestionScorer()
	assert.Equal(t, 90, scorer.ScoreAnswer(question, "senior"))
	assert.Equal(t, 30, scorer.ScoreAnswer(question, "0-2 years"))
	assert.Equal(t, 0, scorer.ScoreAnswer(question, "expert"))
}

func TestScoreAnswer_YesNo(t *testing.T) {
	question := models.Question{Type: models.BuilderYesNo, PositiveWeight: 80}

	scorer := NewQuestionScorer()
	assert.Equal(t, 80, scorer.ScoreAnswer(question, "yes"))
	assert.Equal(t, 80, scorer.ScoreAnswer(question, "Y"))
	assert.Equal(t, 80, scorer.ScoreAnswer(question, "true"))
	assert.Equal(t, 0, scorer.ScoreAnswer(question, "no"))
	assert.Equal(t, 0, scorer.ScoreAnswer(question, "maybe"))
}

func TestScoreAnswer_Rating(t *testing.T) {
	question := models.Question{Type: models.BuilderRating, Scale: 5}
	scorer := NewQuestionScorer()

	tests := []struct {
		answer string
		want   int
	}{
		{"5", 100},
		{"4", 80},
		{"3", 60},
		{"0", 0},
		{"7", 100},   // clamped to scale
		{"abc", 0},   // unparseable
		{"-2", 0},    // negative clamps to zero
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scorer.ScoreAnswer(question, tt.answer), tt.answer)
	}
}

func TestScoreAnswer_TextAndScenario(t *testing.T) {
	scorer := NewQuestionScorer()

	long := "I would first reproduce the issue locally, then bisect the change history."
	short := "not sure"

	for _, qt := range []models.BuilderQuestionType{models.BuilderText, models.BuilderScenario} {
		question := models.Question{Type: qt}
		assert.Equal(t, 70, scorer.ScoreAnswer(question, long))
		assert.Equal(t, 30, scorer.ScoreAnswer(question, short))
	}
}

func TestScoreAnswer_SkillAssessment(t *testing.T) {
	question := models.Question{Type: models.BuilderSkillAssessment, CorrectAnswer: "O(log n)"}

	scorer := NewQuestionScorer()
	assert.Equal(t, 100, scorer.ScoreAnswer(question, "O(log n)"))
	assert.Equal(t, 0, scorer.ScoreAnswer(question, "O(n)"))
	assert.Equal(t, 0, scorer.ScoreAnswer(question, "o(log n)")) // exact match only
}

func TestScoreAnswer_UnknownTypeIsNeutral(t *testing.T) {
	question := models.Question{Type: "puzzle"}
	assert.Equal(t, 50, NewQuestionScorer().ScoreAnswer(question, "anything"))
}
