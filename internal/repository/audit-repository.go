package repository

import (
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type AuditRepository interface {
	Create(entry *domain.ApplicationStatusAudit) error
	ListByApplication(applicationID string) ([]domain.ApplicationStatusAudit, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(entry *domain.ApplicationStatusAudit) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) ListByApplication(applicationID string) ([]domain.ApplicationStatusAudit, error) {
	var out []domain.ApplicationStatusAudit
	err := r.db.Where("application_id = ?", applicationID).Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
