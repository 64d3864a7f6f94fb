package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/repositories"
)

type ApplicationHandler struct {
	appRepo       repositories.ApplicationRepository
	candidateRepo repositories.CandidateRepository
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	candidateRepo repositories.CandidateRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:       appRepo,
		candidateRepo: candidateRepo,
	}
}

// HandleGetApplication handles GET /applications/:id
func (h *ApplicationHandler) HandleGetApplication(c *fiber.Ctx) error {
	idParam := c.Params("id")
	appID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	application, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	response := buildApplicationResponse(application)
	return c.JSON(response)
}

// HandleListApplications handles GET /applications with an optional
// job_id filter
func (h *ApplicationHandler) HandleListApplications(c *fiber.Ctx) error {
	var applications []models.Application
	var err error

	if jobIDParam := c.Query("job_id"); jobIDParam != "" {
		jobID, parseErr := uuid.Parse(jobIDParam)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid job_id format",
			})
		}
		applications, err = h.appRepo.FindByJobID(jobID)
	} else {
		applications, err = h.appRepo.FindAll()
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applications",
		})
	}

	responses := make([]models.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponse(&applications[i]))
	}

	return c.JSON(fiber.Map{
		"applications": responses,
		"total":        len(responses),
	})
}

// HandleListApplicants handles GET /applicants
func (h *ApplicationHandler) HandleListApplicants(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.FindApplicants()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applicants",
		})
	}

	return c.JSON(fiber.Map{
		"applicants": candidates,
		"total":      len(candidates),
	})
}

func buildApplicationResponse(application *models.Application) models.ApplicationResponse {
	response := models.ApplicationResponse{
		ID:            application.ID.String(),
		JobID:         application.JobID.String(),
		CandidateID:   application.CandidateID.String(),
		Status:        string(application.Status),
		CandidateName: application.Candidate.Name,
	}

	// If completed, include the match result
	if application.Status == models.StatusCompleted && application.OverallMatch != nil {
		response.Result = &models.ApplicationResult{
			OverallMatch:    *application.OverallMatch,
			SkillsMatch:     derefInt(application.SkillsMatch),
			ExperienceMatch: derefInt(application.ExperienceMatch),
			EducationMatch:  derefInt(application.EducationMatch),
			Details:         application.MatchDetails,
		}
	}

	// If failed, include the error message
	if application.Status == models.StatusFailed && application.ErrorMessage != "" {
		response.ErrorMessage = &application.ErrorMessage
	}

	return response
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
