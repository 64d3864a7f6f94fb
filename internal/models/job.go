package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Company        string    `gorm:"type:text" json:"company"`
	Location       string    `gorm:"type:text" json:"location"`
	RawDescription string    `gorm:"type:text;not null" json:"raw_description"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
