package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
	StatusInReview  = "In Review"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
)

// ValidStatus reports whether s is one of the five lifecycle statuses. Any
// status may follow any other; the transition order is administrator-driven.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusInReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application records one admission attempt. No uniqueness is enforced over
// (student, university, program); duplicate attempts are allowed.
type Application struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID    string `gorm:"type:uuid;not null;index" json:"student_id"`
	UniversityID string `gorm:"type:uuid;not null;index" json:"university_id"`
	ProgramID    string `gorm:"type:uuid;not null;index" json:"program_id"`

	Status     string `gorm:"type:varchar(20);not null;default:Draft" json:"status"`
	IsEligible bool   `json:"is_eligible"`

	AdmissionDate        string     `gorm:"type:varchar(30)" json:"admission_date"`
	EligibilityCheckedAt *time.Time `json:"eligibility_checked_at,omitempty"`

	Essays []Essay `gorm:"foreignKey:ApplicationID" json:"essays,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
