package repository

import (
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type UniversityRepository interface {
	Create(u *domain.University) error
	FindByID(id string) (*domain.University, error)
	List() ([]domain.University, error)
	Save(u *domain.University) error
	Delete(id string) error
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (r *universityRepository) Create(u *domain.University) error {
	return r.db.Create(u).Error
}

func (r *universityRepository) FindByID(id string) (*domain.University, error) {
	var u domain.University
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) List() ([]domain.University, error) {
	var out []domain.University
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *universityRepository) Save(u *domain.University) error {
	return r.db.Save(u).Error
}

func (r *universityRepository) Delete(id string) error {
	return r.db.Delete(&domain.University{}, "id = ?", id).Error
}
