package repository

import (
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type ProgramRepository interface {
	Create(p *domain.Program) error
	FindByID(id string) (*domain.Program, error)
	List() ([]domain.Program, error)
	ListByUniversity(universityID string) ([]domain.Program, error)
	Save(p *domain.Program) error
	Delete(id string) error
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(p *domain.Program) error {
	return r.db.Create(p).Error
}

func (r *programRepository) FindByID(id string) (*domain.Program, error) {
	var p domain.Program
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) List() ([]domain.Program, error) {
	var out []domain.Program
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *programRepository) ListByUniversity(universityID string) ([]domain.Program, error) {
	var out []domain.Program
	err := r.db.Where("university_id = ?", universityID).Order("name ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *programRepository) Save(p *domain.Program) error {
	return r.db.Save(p).Error
}

func (r *programRepository) Delete(id string) error {
	return r.db.Delete(&domain.Program{}, "id = ?", id).Error
}
