package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Program belongs to exactly one University. Nil thresholds mean the program
// sets no minimum for that credential, not that the leg is impossible.
type Program struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	UniversityID string `gorm:"type:uuid;not null;index" json:"university_id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`

	MinSSCGPA       *float64 `json:"min_ssc_gpa,omitempty"`
	MinHSCGPA       *float64 `json:"min_hsc_gpa,omitempty"`
	MinOLevelPoints *int     `json:"min_o_level_points,omitempty"`
	MinALevelPoints *int     `json:"min_a_level_points,omitempty"`

	Duration   string    `gorm:"type:varchar(50)" json:"duration"`
	TuitionFee string    `gorm:"type:varchar(100)" json:"tuition_fee"`
	IntakeTerm string    `gorm:"type:varchar(50)" json:"intake_term"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Program) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
