package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID    string    `gorm:"type:uuid;not null;index" json:"student_id"`
	FileURL      string    `gorm:"type:varchar(500);not null" json:"file_url"`
	Type         string    `gorm:"type:varchar(100)" json:"type"` // MIME type of the upload
	DocumentType string    `gorm:"type:varchar(50);not null;default:other" json:"document_type"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
