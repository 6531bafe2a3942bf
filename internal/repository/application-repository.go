package repository

import (
	"log"

	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type ApplicationRepository interface {
	// CreateWithCredentialWriteback persists the student's active-scheme
	// credentials into their profile and inserts the application in one
	// transaction, so a partial failure can never leave an application
	// pointing at unsaved credentials.
	CreateWithCredentialWriteback(app *domain.Application, credentialUpdates map[string]any) error

	FindByID(id string) (*domain.Application, error)
	ListByStudent(studentID string) ([]domain.Application, error)
	ListAll(limit, offset int) ([]domain.Application, error)
	Save(app *domain.Application) error
	Delete(id string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateWithCredentialWriteback(app *domain.Application, credentialUpdates map[string]any) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(credentialUpdates) > 0 {
			res := tx.Model(&domain.Profile{}).
				Where("id = ?", app.StudentID).
				Updates(credentialUpdates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return tx.Create(app).Error
	})
	if err != nil {
		log.Printf("application intake tx error: %v", err)
	}
	return err
}

func (r *applicationRepository) FindByID(id string) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.Preload("Essays").First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByStudent(studentID string) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListAll(limit, offset int) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Preload("Essays").Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Save(app *domain.Application) error {
	return r.db.Save(app).Error
}

func (r *applicationRepository) Delete(id string) error {
	return r.db.Delete(&domain.Application{}, "id = ?", id).Error
}
