package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid;not null;unique;default:gen_random_uuid()" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	EmploymentType string    `gorm:"size:100;not null;default:'Full Time'" json:"employmentType"`
	SalaryRange    string    `gorm:"size:255;not null;default:''" json:"salaryRange"`
	Location       string    `gorm:"size:255;not null;default:''" json:"location"`
	Description    string    `gorm:"type:text;not null;default:''" json:"description"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	CreatedAt      time.Time `gorm:"not null;default:clock_timestamp()" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null;default:clock_timestamp()" json:"updatedAt"`
}
