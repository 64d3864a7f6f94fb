package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentsift/screening/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindByEmail(email string) (*models.Candidate, error)
	FindApplicants() ([]models.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate not found")
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// FindByEmail implements CandidateRepository.
func (r *candidateRepository) FindByEmail(email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("email = ?", email).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// FindApplicants returns the distinct candidates that have at least
// one application.
func (r *candidateRepository) FindApplicants() ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Joins("JOIN applications ON applications.candidate_id = candidates.id").
		Distinct("candidates.*").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return candidates, nil
}
