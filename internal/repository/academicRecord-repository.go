package repository

import (
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type AcademicRecordRepository interface {
	Create(r *domain.AcademicRecord) error
	FindByID(id string) (*domain.AcademicRecord, error)
	ListByStudent(studentID string) ([]domain.AcademicRecord, error)
	Save(r *domain.AcademicRecord) error
	Delete(id string) error
}

type academicRecordRepository struct {
	db *gorm.DB
}

func NewAcademicRecordRepository(db *gorm.DB) AcademicRecordRepository {
	return &academicRecordRepository{db: db}
}

func (a *academicRecordRepository) Create(r *domain.AcademicRecord) error {
	return a.db.Create(r).Error
}

func (a *academicRecordRepository) FindByID(id string) (*domain.AcademicRecord, error) {
	var rec domain.AcademicRecord
	if err := a.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *academicRecordRepository) ListByStudent(studentID string) ([]domain.AcademicRecord, error) {
	var out []domain.AcademicRecord
	err := a.db.Where("student_id = ?", studentID).Order("year DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *academicRecordRepository) Save(r *domain.AcademicRecord) error {
	return a.db.Save(r).Error
}

func (a *academicRecordRepository) Delete(id string) error {
	return a.db.Delete(&domain.AcademicRecord{}, "id = ?", id).Error
}
