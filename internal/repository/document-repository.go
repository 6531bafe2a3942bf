package repository

import (
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type DocumentRepository interface {
	Create(d *domain.Document) error
	FindByID(id string) (*domain.Document, error)
	ListByStudent(studentID string) ([]domain.Document, error)
	Delete(id string) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(d *domain.Document) error {
	return r.db.Create(d).Error
}

func (r *documentRepository) FindByID(id string) (*domain.Document, error) {
	var d domain.Document
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepository) ListByStudent(studentID string) ([]domain.Document, error) {
	var out []domain.Document
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *documentRepository) Delete(id string) error {
	return r.db.Delete(&domain.Document{}, "id = ?", id).Error
}
