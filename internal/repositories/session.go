package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentsift/screening/internal/models"
)

type SessionRepository interface {
	Create(session *models.InterviewSession) error
	FindByID(id uuid.UUID) (*models.InterviewSession, error)
	FindLatestByApplicationID(appID uuid.UUID) (*models.InterviewSession, error)
	Save(session *models.InterviewSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.InterviewSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("interview session not found")
		}
		return nil, fmt.Errorf("failed to find interview session: %w", err)
	}
	return &session, nil
}

// FindLatestByApplicationID returns the most recent session for an
// application. A gorm.ErrRecordNotFound is passed through so callers
// can treat "no interview yet" as a normal case.
func (r *sessionRepository) FindLatestByApplicationID(appID uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.db.Where("application_id = ?", appID).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find interview session: %w", err)
	}
	return &session, nil
}

// Save persists the full session state, including the question and
// response sequences, after a response submission.
func (r *sessionRepository) Save(session *models.InterviewSession) error {
	if err := r.db.Save(session).Error; err != nil {
		return fmt.Errorf("failed to save interview session: %w", err)
	}
	return nil
}
