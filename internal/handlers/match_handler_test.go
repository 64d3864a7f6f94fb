package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/services"
)

func setupMatchApp() *fiber.App {
	handler := NewMatchHandler(
		services.NewCVParser(),
		services.NewJDParser(),
		services.NewMatcher(),
	)

	app := fiber.New()
	app.Post("/api/v1/match", handler.HandleMatch)
	return app
}

func TestHandleMatch(t *testing.T) {
	app := setupMatchApp()

	resp := postJSON(t, app, "/api/v1/match", models.MatchRequest{
		CVText: "Jane Doe\njane@example.com\n\nSkills: React, Go, PostgreSQL",
		JDText: "Backend Engineer\n\nRequirements:\n- Proficiency in Go and PostgreSQL",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ParsedCV models.ParsedCV       `json:"parsed_cv"`
		ParsedJD models.ParsedJD       `json:"parsed_jd"`
		Result   models.MatchingResult `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Jane Doe", body.ParsedCV.PersonalInfo.Name)
	assert.Contains(t, body.ParsedJD.Skills.Required, "Go")
	assert.Contains(t, body.Result.Details.MatchedSkills, "Go")
	assert.Empty(t, body.Result.Details.MissingSkills)
	assert.Equal(t, 100, body.Result.SkillsMatch)
}

func TestHandleMatch_Validation(t *testing.T) {
	app := setupMatchApp()

	resp := postJSON(t, app, "/api/v1/match", models.MatchRequest{JDText: "Backend Engineer"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/v1/match", models.MatchRequest{CVText: "Jane Doe"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
