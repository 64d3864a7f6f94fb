package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentsift/screening/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	FindAll() ([]models.Application, error)
	FindByJobID(jobID uuid.UUID) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateMatchResult(id uuid.UUID, result *ScreeningUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPending(limit int) ([]models.Application, error)
}

type ScreeningUpdateData struct {
	OverallMatch    int
	SkillsMatch     int
	ExperienceMatch int
	EducationMatch  int
	MatchDetails    *models.MatchDetails
	ParsedResume    *models.ParsedCV
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Preload("Candidate").Preload("Job").Where("id = ?", id).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindAll() ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Candidate").Preload("Job").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) FindByJobID(jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Candidate").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for job: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) UpdateMatchResult(id uuid.UUID, data *ScreeningUpdateData) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(&models.Application{
			Status:          models.StatusCompleted,
			OverallMatch:    &data.OverallMatch,
			SkillsMatch:     &data.SkillsMatch,
			ExperienceMatch: &data.ExperienceMatch,
			EducationMatch:  &data.EducationMatch,
			MatchDetails:    data.MatchDetails,
			ParsedResume:    data.ParsedResume,
			UpdatedAt:       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update match result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) FindPending(limit int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending applications: %w", err)
	}

	return apps, nil
}
