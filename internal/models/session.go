package models

import (
	"time"

	"github.com/google/uuid"
)

// InterviewSession is the one mutable aggregate in the screening
// domain: questions may grow through adaptive follow-ups, responses
// are append-only, and the overall score is the running mean of
// response scores. Invariant: 0 <= CurrentQuestionIndex <= len(Questions).
type InterviewSession struct {
	ID                   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID        uuid.UUID    `gorm:"type:uuid;not null" json:"application_id"`
	JobID                uuid.UUID    `gorm:"type:uuid;not null" json:"job_id"`
	CandidateID          uuid.UUID    `gorm:"type:uuid;not null" json:"candidate_id"`
	Questions            []AIQuestion `gorm:"serializer:json" json:"questions"`
	Responses            []AIResponse `gorm:"serializer:json" json:"responses"`
	CurrentQuestionIndex int          `json:"current_question_index"`
	OverallScore         int          `json:"overall_score"`
	IsCompleted          bool         `json:"is_completed"`
	AdaptiveFlow         bool         `json:"adaptive_flow"`
	CreatedAt            time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
