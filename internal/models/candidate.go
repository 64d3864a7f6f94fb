package models

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"type:text" json:"phone"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// Document is a stored résumé file belonging to a candidate.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID      uuid.UUID `gorm:"type:uuid;not null" json:"candidate_id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}
