package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Essay struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID string    `gorm:"type:uuid;not null;uniqueIndex:uidx_essays_app_prompt" json:"application_id"`
	EssayPrompt   string    `gorm:"type:varchar(500);not null;uniqueIndex:uidx_essays_app_prompt" json:"essay_prompt"`
	Content       string    `gorm:"type:text" json:"content"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Essay) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
