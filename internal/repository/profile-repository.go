package repository

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type ProfileRepository interface {
	Create(profile *domain.Profile) (*domain.Profile, error)
	FindByID(id string) (*domain.Profile, error)
	FindByEmail(email string) (*domain.Profile, error)
	Save(profile *domain.Profile) error
	List(limit, offset int) ([]domain.Profile, error)
	Delete(id string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil {
		return nil, errors.New("nil profile")
	}
	if err := r.db.Create(profile).Error; err != nil {
		log.Printf("create profile error: %v", err)
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) FindByID(id string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	if err := r.db.First(profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) FindByEmail(email string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	if err := r.db.First(profile, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Save(profile *domain.Profile) error {
	if profile == nil {
		return errors.New("nil profile")
	}
	if err := r.db.Save(profile).Error; err != nil {
		log.Printf("save profile error: %v", err)
		return err
	}
	return nil
}

func (r *profileRepository) List(limit, offset int) ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Delete(id string) error {
	return r.db.Delete(&domain.Profile{}, "id = ?", id).Error
}
