package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/repositories"
	"talentsift/screening/internal/services"
)

type JobHandler struct {
	jobRepo       repositories.JobRepository
	jdParser      services.JDParser
	semanticIndex services.SemanticIndex
}

func NewJobHandler(
	jobRepo repositories.JobRepository,
	jdParser services.JDParser,
	semanticIndex services.SemanticIndex,
) *JobHandler {
	return &JobHandler{
		jobRepo:       jobRepo,
		jdParser:      jdParser,
		semanticIndex: semanticIndex,
	}
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description is required",
		})
	}

	job := &models.Job{
		ID:             uuid.New(),
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		RawDescription: req.Description,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleListJobs handles GET /jobs
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch jobs",
		})
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// HandleGetJob handles GET /jobs/:id. The response includes the parsed
// view of the stored description.
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	idParam := c.Params("id")
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

	parsed := h.jdParser.ParseJD(job.RawDescription)

	return c.JSON(fiber.Map{
		"job":    job,
		"parsed": parsed,
	})
}

// HandleSimilarCandidates handles GET /jobs/:id/similar
func (h *JobHandler) HandleSimilarCandidates(c *fiber.Ctx) error {
	idParam := c.Params("id")
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

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	matches, err := h.semanticIndex.SimilarCandidates(c.Context(), job.RawDescription, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search similar candidates",
		})
	}

	responses := make([]models.SimilarCandidateResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, models.SimilarCandidateResponse{
			CandidateID: match.CandidateID,
			Name:        match.Name,
			Score:       match.Score,
		})
	}

	return c.JSON(fiber.Map{
		"job_id":     job.ID.String(),
		"candidates": responses,
		"total":      len(responses),
	})
}
