package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentsift/screening/internal/repositories"
	"talentsift/screening/internal/services"
)

type ReportHandler struct {
	appRepo       repositories.ApplicationRepository
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	sessionRepo   repositories.SessionRepository
	generator     services.ReportGenerator
}

func NewReportHandler(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	sessionRepo repositories.SessionRepository,
	generator services.ReportGenerator,
) *ReportHandler {
	return &ReportHandler{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		sessionRepo:   sessionRepo,
		generator:     generator,
	}
}

// HandleCandidateReport handles GET /reports/candidates/:applicationID
func (h *ReportHandler) HandleCandidateReport(c *fiber.Ctx) error {
	idParam := c.Params("applicationID")
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

	job, err := h.jobRepo.FindByID(application.JobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	candidate, err := h.candidateRepo.FindByID(application.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	// A missing interview session just means the report has no
	// interview score
	session, err := h.sessionRepo.FindLatestByApplicationID(appID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch interview session",
		})
	}

	report := h.generator.CandidateReport(application, job, candidate, session)
	return c.JSON(report)
}

// HandleJobReport handles GET /reports/jobs/:jobID
func (h *ReportHandler) HandleJobReport(c *fiber.Ctx) error {
	idParam := c.Params("jobID")
	jobID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	apps, err := h.appRepo.FindByJobID(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applications",
		})
	}

	report := h.generator.JobReport(job, apps)
	return c.JSON(report)
}

// HandleMetrics handles GET /reports/metrics
func (h *ReportHandler) HandleMetrics(c *fiber.Ctx) error {
	apps, err := h.appRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applications",
		})
	}

	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch jobs",
		})
	}

	metrics := h.generator.OverallMetrics(apps, jobs)
	return c.JSON(metrics)
}
