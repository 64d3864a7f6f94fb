package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/repositories"
	"talentsift/screening/internal/services"
)

type ApplyHandler struct {
	jobRepo        repositories.JobRepository
	candidateRepo  repositories.CandidateRepository
	docRepo        repositories.DocumentRepository
	appRepo        repositories.ApplicationRepository
	storageService services.StorageService
	worker         services.Worker
	maxFileSize    int64
}

func NewApplyHandler(
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	docRepo repositories.DocumentRepository,
	appRepo repositories.ApplicationRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *ApplyHandler {
	return &ApplyHandler{
		jobRepo:        jobRepo,
		candidateRepo:  candidateRepo,
		docRepo:        docRepo,
		appRepo:        appRepo,
		storageService: storageService,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleApply handles POST /apply
func (h *ApplyHandler) HandleApply(c *fiber.Ctx) error {
	name := c.Query("name")
	email := c.Query("email")
	phone := c.Query("phone")
	jobIDParam := c.Query("job_id")

	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email is required",
		})
	}

	if jobIDParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_id is required",
		})
	}

	jobID, err := uuid.Parse(jobIDParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required. Please upload 'resume' as a PDF file.",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	// Reuse the candidate record across applications
	candidate, err := h.candidateRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		candidate = &models.Candidate{
			ID:        uuid.New(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := h.candidateRepo.Create(candidate); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create candidate record",
			})
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up candidate",
		})
	}

	// Save file
	filename, filePath, err := h.storageService.SaveResume(resumeFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	// Create document record
	doc := models.Document{
		ID:               uuid.New(),
		CandidateID:      candidate.ID,
		Filename:         filename,
		OriginalFileName: resumeFile.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume document record",
		})
	}

	// Create application record
	application := &models.Application{
		ID:               uuid.New(),
		JobID:            jobID,
		CandidateID:      candidate.ID,
		ResumeDocumentID: doc.ID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.appRepo.Create(application); err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create application",
		})
	}

	// Enqueue for screening
	h.worker.EnqueueApplication(application.ID)

	// Return application ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.ApplyResponse{
		ApplicationID: application.ID.String(),
		CandidateID:   candidate.ID.String(),
		Status:        string(models.StatusQueued),
	})
}
