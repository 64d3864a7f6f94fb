package handlers

import (
	"github.com/gofiber/fiber/v2"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/services"
)

type MatchHandler struct {
	cvParser services.CVParser
	jdParser services.JDParser
	matcher  services.Matcher
}

func NewMatchHandler(
	cvParser services.CVParser,
	jdParser services.JDParser,
	matcher services.Matcher,
) *MatchHandler {
	return &MatchHandler{
		cvParser: cvParser,
		jdParser: jdParser,
		matcher:  matcher,
	}
}

// HandleMatch handles POST /match. It runs the parse-and-match pipeline
// on raw text without touching storage, useful for previewing a score
// before applying.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CVText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_text is required",
		})
	}

	if req.JDText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text is required",
		})
	}

	cv := h.cvParser.ParseCV(req.CVText)
	jd := h.jdParser.ParseJD(req.JDText)
	result := h.matcher.Match(cv, jd)

	return c.JSON(fiber.Map{
		"parsed_cv": cv,
		"parsed_jd": jd,
		"result":    result,
	})
}
