package handlers

import (
	"github.com/gofiber/fiber/v2"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/services"
)

type QuestionHandler struct {
	scorer services.QuestionScorer
}

func NewQuestionHandler(scorer services.QuestionScorer) *QuestionHandler {
	return &QuestionHandler{scorer: scorer}
}

// HandleScoreAnswer handles POST /questions/score. Recruiter-authored
// screening forms submit each question alongside the candidate's
// answer; scoring is stateless and driven entirely by the question's
// declared weights.
func (h *QuestionHandler) HandleScoreAnswer(c *fiber.Ctx) error {
	var req models.ScoreAnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question.type is required",
		})
	}

	score := h.scorer.ScoreAnswer(req.Question, req.Answer)

	return c.JSON(fiber.Map{
		"question_id": req.Question.ID,
		"score":       score,
	})
}
