package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusQueued     ApplicationStatus = "queued"
	StatusProcessing ApplicationStatus = "processing"
	StatusCompleted  ApplicationStatus = "completed"
	StatusFailed     ApplicationStatus = "failed"
)

// Application ties a candidate's résumé to a job and carries the
// screening outcome once the worker has processed it.
type Application struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID            uuid.UUID         `gorm:"type:uuid;not null" json:"job_id"`
	CandidateID      uuid.UUID         `gorm:"type:uuid;not null" json:"candidate_id"`
	ResumeDocumentID uuid.UUID         `gorm:"type:uuid;not null" json:"resume_document_id"`
	Status           ApplicationStatus `gorm:"not null;default:'queued'" json:"status"`
	OverallMatch     *int              `json:"overall_match,omitempty"`
	SkillsMatch      *int              `json:"skills_match,omitempty"`
	ExperienceMatch  *int              `json:"experience_match,omitempty"`
	EducationMatch   *int              `json:"education_match,omitempty"`
	MatchDetails     *MatchDetails     `gorm:"serializer:json" json:"match_details,omitempty"`
	ParsedResume     *ParsedCV         `gorm:"serializer:json" json:"parsed_resume,omitempty"`
	ErrorMessage     string            `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Job            Job       `gorm:"foreignKey:JobID" json:"-"`
	Candidate      Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	ResumeDocument Document  `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
