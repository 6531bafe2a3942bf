package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExamTypeSSC      = "SSC"
	ExamTypeHSC      = "HSC"
	ExamTypeOLevel   = "O Level"
	ExamTypeALevel   = "A Level"
	ExamTypeBachelor = "Bachelor"
	ExamTypeMaster   = "Master"
)

func ValidExamType(t string) bool {
	switch t {
	case ExamTypeSSC, ExamTypeHSC, ExamTypeOLevel, ExamTypeALevel, ExamTypeBachelor, ExamTypeMaster:
		return true
	}
	return false
}

type AcademicRecord struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID      string    `gorm:"type:uuid;not null;index" json:"student_id"`
	ExamType       string    `gorm:"type:varchar(20);not null" json:"exam_type"`
	Board          string    `gorm:"type:varchar(100)" json:"board"`
	Institution    string    `gorm:"type:varchar(255);not null" json:"institution"`
	GPA            float64   `json:"gpa"`
	Year           int       `json:"year"`
	CertificateURL *string   `json:"certificate_url,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *AcademicRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
