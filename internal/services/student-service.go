package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/interfaces"
	"github.com/bhortijuddho/admission-svc/internal/repository"
	"github.com/bhortijuddho/admission-svc/pkg/utils"
)

const (
	avatarMaxWidth   = 512
	avatarJPGQuality = 85

	documentsFolder = "bhortijuddho/documents"
	avatarsFolder   = "bhortijuddho/avatars"
)

type StudentService interface {
	GetProfile(studentID string) (*domain.Profile, error)
	UpdateProfile(studentID string, input dto.UpdateProfileRequest) (*domain.Profile, error)
	UploadAvatar(ctx context.Context, studentID, filename string, data []byte) (string, error)

	ListAcademicRecords(studentID string) ([]domain.AcademicRecord, error)
	AddAcademicRecord(studentID string, input dto.AcademicRecordRequest) (*domain.AcademicRecord, error)
	UpdateAcademicRecord(studentID, recordID string, input dto.AcademicRecordRequest) (*domain.AcademicRecord, error)
	DeleteAcademicRecord(studentID, recordID string) error

	UploadDocument(ctx context.Context, studentID, filename, mimeType, docType string, data []byte) (*domain.Document, error)
	ListDocuments(studentID string) ([]domain.Document, error)
	DeleteDocument(studentID, documentID string) error

	ListEssays(studentID, applicationID string) ([]domain.Essay, error)
	AddEssay(studentID, applicationID string, input dto.EssayRequest) (*domain.Essay, error)
	UpdateEssay(studentID, essayID string, input dto.EssayRequest) (*domain.Essay, error)
	DeleteEssay(studentID, essayID string) error
}

type studentService struct {
	profileRepo  repository.ProfileRepository
	recordRepo   repository.AcademicRecordRepository
	documentRepo repository.DocumentRepository
	essayRepo    repository.EssayRepository
	appRepo      repository.ApplicationRepository
	uploader     interfaces.Uploader
}

func NewStudentService(
	profileRepo repository.ProfileRepository,
	recordRepo repository.AcademicRecordRepository,
	documentRepo repository.DocumentRepository,
	essayRepo repository.EssayRepository,
	appRepo repository.ApplicationRepository,
	uploader interfaces.Uploader,
) StudentService {
	return &studentService{
		profileRepo:  profileRepo,
		recordRepo:   recordRepo,
		documentRepo: documentRepo,
		essayRepo:    essayRepo,
		appRepo:      appRepo,
		uploader:     uploader,
	}
}

func (s *studentService) GetProfile(studentID string) (*domain.Profile, error) {
	if studentID == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	profile, err := s.profileRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("profile")
		}
		return nil, apperr.Persistencef("load profile")
	}
	return profile, nil
}

func (s *studentService) UpdateProfile(studentID string, input dto.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.GetProfile(studentID)
	if err != nil {
		return nil, err
	}

	setIfPresent := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	setIfPresent(&profile.FullName, input.FullName)
	setIfPresent(&profile.Phone, input.Phone)
	setIfPresent(&profile.Address, input.Address)
	setIfPresent(&profile.Country, input.Country)
	setIfPresent(&profile.DateOfBirth, input.DateOfBirth)
	setIfPresent(&profile.Gender, input.Gender)
	setIfPresent(&profile.CountryOfBirth, input.CountryOfBirth)
	setIfPresent(&profile.CitizenshipStatus, input.CitizenshipStatus)
	setIfPresent(&profile.CitizenshipCountry, input.CitizenshipCountry)
	setIfPresent(&profile.SecondaryCitizenship, input.SecondaryCitizenship)
	setIfPresent(&profile.PassportNumber, input.PassportNumber)
	setIfPresent(&profile.AlternatePhone, input.AlternatePhone)
	setIfPresent(&profile.EmergencyContactName, input.EmergencyContactName)
	setIfPresent(&profile.EmergencyContactRelationship, input.EmergencyContactRelationship)
	setIfPresent(&profile.EmergencyContactPhone, input.EmergencyContactPhone)

	if err := s.profileRepo.Save(profile); err != nil {
		return nil, apperr.Persistencef("save profile")
	}
	return profile, nil
}

func (s *studentService) UploadAvatar(ctx context.Context, studentID, filename string, data []byte) (string, error) {
	profile, err := s.GetProfile(studentID)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", apperr.Validationf("file is required")
	}

	norm, err := utils.NormalizeToJPG(data, avatarMaxWidth, avatarJPGQuality)
	if err != nil {
		return "", apperr.Validationf("unsupported image: %v", err)
	}

	name := fmt.Sprintf("%s/avatar-%d.jpg", studentID, time.Now().Unix())
	url, err := s.uploader.UploadBytes(ctx, avatarsFolder, name, norm)
	if err != nil {
		return "", apperr.Persistencef("upload avatar")
	}

	profile.AvatarURL = &url
	if err := s.profileRepo.Save(profile); err != nil {
		return "", apperr.Persistencef("save avatar url")
	}
	return url, nil
}

// ACADEMIC RECORDS

func (s *studentService) ListAcademicRecords(studentID string) ([]domain.AcademicRecord, error) {
	records, err := s.recordRepo.ListByStudent(studentID)
	if err != nil {
		return nil, apperr.Persistencef("list academic records")
	}
	return records, nil
}

func (s *studentService) AddAcademicRecord(studentID string, input dto.AcademicRecordRequest) (*domain.AcademicRecord, error) {
	if err := validateAcademicRecord(input); err != nil {
		return nil, err
	}
	rec := &domain.AcademicRecord{
		StudentID:      studentID,
		ExamType:       input.ExamType,
		Board:          strings.TrimSpace(input.Board),
		Institution:    strings.TrimSpace(input.Institution),
		GPA:            input.GPA,
		Year:           input.Year,
		CertificateURL: input.CertificateURL,
	}
	if err := s.recordRepo.Create(rec); err != nil {
		return nil, apperr.Persistencef("create academic record")
	}
	return rec, nil
}

func (s *studentService) UpdateAcademicRecord(studentID, recordID string, input dto.AcademicRecordRequest) (*domain.AcademicRecord, error) {
	if err := validateAcademicRecord(input); err != nil {
		return nil, err
	}
	rec, err := s.recordRepo.FindByID(recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("academic record")
		}
		return nil, apperr.Persistencef("load academic record")
	}
	if rec.StudentID != studentID {
		return nil, apperr.NotFoundf("academic record")
	}

	rec.ExamType = input.ExamType
	rec.Board = strings.TrimSpace(input.Board)
	rec.Institution = strings.TrimSpace(input.Institution)
	rec.GPA = input.GPA
	rec.Year = input.Year
	rec.CertificateURL = input.CertificateURL

	if err := s.recordRepo.Save(rec); err != nil {
		return nil, apperr.Persistencef("save academic record")
	}
	return rec, nil
}

func (s *studentService) DeleteAcademicRecord(studentID, recordID string) error {
	rec, err := s.recordRepo.FindByID(recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("academic record")
		}
		return apperr.Persistencef("load academic record")
	}
	if rec.StudentID != studentID {
		return apperr.NotFoundf("academic record")
	}
	if err := s.recordRepo.Delete(recordID); err != nil {
		return apperr.Persistencef("delete academic record")
	}
	return nil
}

func validateAcademicRecord(input dto.AcademicRecordRequest) error {
	if !domain.ValidExamType(input.ExamType) {
		return apperr.Validationf("invalid exam_type %q", input.ExamType)
	}
	if strings.TrimSpace(input.Institution) == "" {
		return apperr.Validationf("institution is required")
	}
	if input.GPA < 0 || input.GPA > 5.0 {
		return apperr.Validationf("gpa must be between 0.0 and 5.0")
	}
	if input.Year < 1950 || input.Year > time.Now().Year()+1 {
		return apperr.Validationf("invalid year")
	}
	return nil
}

// DOCUMENTS

func (s *studentService) UploadDocument(ctx context.Context, studentID, filename, mimeType, docType string, data []byte) (*domain.Document, error) {
	if len(data) == 0 {
		return nil, apperr.Validationf("file is required")
	}
	docType = strings.TrimSpace(strings.ToLower(docType))
	if docType == "" {
		docType = "other"
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		ext = "bin"
	}

	// storage path convention: {student_id}/{purpose}-{timestamp}.{ext}
	name := fmt.Sprintf("%s/%s-%d.%s", studentID, docType, time.Now().Unix(), ext)
	url, err := s.uploader.UploadBytes(ctx, documentsFolder, name, data)
	if err != nil {
		return nil, apperr.Persistencef("upload document")
	}

	doc := &domain.Document{
		StudentID:    studentID,
		FileURL:      url,
		Type:         mimeType,
		DocumentType: docType,
	}
	if err := s.documentRepo.Create(doc); err != nil {
		return nil, apperr.Persistencef("save document reference")
	}
	return doc, nil
}

func (s *studentService) ListDocuments(studentID string) ([]domain.Document, error) {
	docs, err := s.documentRepo.ListByStudent(studentID)
	if err != nil {
		return nil, apperr.Persistencef("list documents")
	}
	return docs, nil
}

func (s *studentService) DeleteDocument(studentID, documentID string) error {
	doc, err := s.documentRepo.FindByID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("document")
		}
		return apperr.Persistencef("load document")
	}
	if doc.StudentID != studentID {
		return apperr.NotFoundf("document")
	}
	if err := s.documentRepo.Delete(documentID); err != nil {
		return apperr.Persistencef("delete document")
	}
	return nil
}

// ESSAYS

func (s *studentService) ListEssays(studentID, applicationID string) ([]domain.Essay, error) {
	if _, err := s.ownedApplication(studentID, applicationID); err != nil {
		return nil, err
	}
	essays, err := s.essayRepo.ListByApplication(applicationID)
	if err != nil {
		return nil, apperr.Persistencef("list essays")
	}
	return essays, nil
}

func (s *studentService) AddEssay(studentID, applicationID string, input dto.EssayRequest) (*domain.Essay, error) {
	if strings.TrimSpace(input.EssayPrompt) == "" {
		return nil, apperr.Validationf("essay_prompt is required")
	}
	if _, err := s.ownedApplication(studentID, applicationID); err != nil {
		return nil, err
	}

	essay := &domain.Essay{
		ApplicationID: applicationID,
		EssayPrompt:   strings.TrimSpace(input.EssayPrompt),
		Content:       input.Content,
	}
	if err := s.essayRepo.Create(essay); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperr.Validationf("an essay for this prompt already exists")
		}
		return nil, apperr.Persistencef("create essay")
	}
	return essay, nil
}

func (s *studentService) UpdateEssay(studentID, essayID string, input dto.EssayRequest) (*domain.Essay, error) {
	essay, err := s.ownedEssay(studentID, essayID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.EssayPrompt) != "" {
		essay.EssayPrompt = strings.TrimSpace(input.EssayPrompt)
	}
	essay.Content = input.Content
	if err := s.essayRepo.Save(essay); err != nil {
		return nil, apperr.Persistencef("save essay")
	}
	return essay, nil
}

func (s *studentService) DeleteEssay(studentID, essayID string) error {
	if _, err := s.ownedEssay(studentID, essayID); err != nil {
		return err
	}
	if err := s.essayRepo.Delete(essayID); err != nil {
		return apperr.Persistencef("delete essay")
	}
	return nil
}

func (s *studentService) ownedApplication(studentID, applicationID string) (*domain.Application, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("application")
		}
		return nil, apperr.Persistencef("load application")
	}
	if app.StudentID != studentID {
		return nil, apperr.NotFoundf("application")
	}
	return app, nil
}

func (s *studentService) ownedEssay(studentID, essayID string) (*domain.Essay, error) {
	essay, err := s.essayRepo.FindByID(essayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("essay")
		}
		return nil, apperr.Persistencef("load essay")
	}
	if _, err := s.ownedApplication(studentID, essay.ApplicationID); err != nil {
		return nil, err
	}
	return essay, nil
}
