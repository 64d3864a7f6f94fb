package services

import (
	"math"
	"strconv"
	"strings"

	"talentsift/screening/internal/models"
)

// QuestionScorer scores answers to recruiter-authored builder
// questions. Intentionally much simpler than the engine's response
// scoring: a per-type switch over declared option weights. The two
// scorers are separate families and are not unified.
type QuestionScorer interface {
	ScoreAnswer(question models.Question, answer string) int
}

type questionScorer struct{}

func NewQuestionScorer() QuestionScorer {
	return &questionScorer{}
}

// ScoreAnswer implements QuestionScorer. Unknown types score 50.
func (s *questionScorer) ScoreAnswer(question models.Question, answer string) int {
	answer = strings.TrimSpace(answer)

	switch question.Type {
	case models.BuilderMultipleChoice:
		for _, opt := range question.Options {
			if strings.EqualFold(opt.ID, answer) || strings.EqualFold(opt.Text, answer) {
				return opt.Score
			}
		}
		return 0

	case models.BuilderExperienceLevel:
		for _, level := range question.Levels {
			if strings.EqualFold(level.ID, answer) || strings.EqualFold(level.Label, answer) {
				return level.Score
			}
		}
		return 0

	case models.BuilderYesNo:
		if isAffirmative(answer) {
			return question.PositiveWeight
		}
		return 0

	case models.BuilderRating:
		return scoreRating(answer, question.Scale)

	case models.BuilderText, models.BuilderScenario:
		if len(answer) > 20 {
			return 70
		}
		return 30

	case models.BuilderSkillAssessment:
		if question.CorrectAnswer != "" && answer == question.CorrectAnswer {
			return 100
		}
		return 0

	default:
		return 50
	}
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

func scoreRating(answer string, scale int) int {
	if scale <= 0 {
		return 0
	}
	rating, err := strconv.Atoi(answer)
	if err != nil {
		return 0
	}
	if rating < 0 {
		rating = 0
	}
	if rating > scale {
		rating = scale
	}
	return int(math.Round(float64(rating) / float64(scale) * 100))
}
