package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatusAudit records every administrator status change, including
// backward moves (Accepted back to Draft is allowed as a correction).
type ApplicationStatusAudit struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID string    `gorm:"type:uuid;not null;index" json:"application_id"`
	ActorID       string    `gorm:"type:varchar(100);not null" json:"actor_id"`
	FromStatus    string    `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus      string    `gorm:"type:varchar(20);not null" json:"to_status"`
	Note          *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *ApplicationStatusAudit) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
