package repository

import (
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type EssayRepository interface {
	Create(e *domain.Essay) error
	FindByID(id string) (*domain.Essay, error)
	ListByApplication(applicationID string) ([]domain.Essay, error)
	Save(e *domain.Essay) error
	Delete(id string) error
}

type essayRepository struct {
	db *gorm.DB
}

func NewEssayRepository(db *gorm.DB) EssayRepository {
	return &essayRepository{db: db}
}

func (r *essayRepository) Create(e *domain.Essay) error {
	return r.db.Create(e).Error
}

func (r *essayRepository) FindByID(id string) (*domain.Essay, error) {
	var e domain.Essay
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *essayRepository) ListByApplication(applicationID string) ([]domain.Essay, error) {
	var out []domain.Essay
	err := r.db.Where("application_id = ?", applicationID).Order("updated_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *essayRepository) Save(e *domain.Essay) error {
	return r.db.Save(e).Error
}

func (r *essayRepository) Delete(id string) error {
	return r.db.Delete(&domain.Essay{}, "id = ?", id).Error
}
