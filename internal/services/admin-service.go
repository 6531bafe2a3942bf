package services

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/interfaces"
	"github.com/bhortijuddho/admission-svc/internal/repository"
)

type AdminService interface {
	VerifyPasscode(passcode string) error

	ListStudents(limit, offset int) ([]domain.Profile, error)
	DeleteStudent(studentID string) error

	CreateUniversity(u *domain.University) error
	UpdateUniversity(id string, u *domain.University) (*domain.University, error)
	DeleteUniversity(id string) error

	CreateProgram(p *domain.Program) error
	UpdateProgram(id string, p *domain.Program) (*domain.Program, error)
	DeleteProgram(id string) error

	ListApplications(limit, offset int) ([]domain.Application, error)

	// SetApplicationStatus records the change in the audit log. Any status may
	// follow any other; moving to Accepted additionally composes the
	// acceptance email and publishes an event for the mail worker.
	SetApplicationStatus(actorID, applicationID string, input dto.SetStatusRequest) (*dto.StatusChangeResponse, error)
	ListStatusAudit(applicationID string) ([]domain.ApplicationStatusAudit, error)

	// ComposeUpdateEmail builds the generic "update regarding your
	// application" preview for the manual-send path.
	ComposeUpdateEmail(applicationID string) (*dto.EmailPreview, error)
}

type adminService struct {
	passcode       string
	profileRepo    repository.ProfileRepository
	universityRepo repository.UniversityRepository
	programRepo    repository.ProgramRepository
	appRepo        repository.ApplicationRepository
	auditRepo      repository.AuditRepository
	producer       interfaces.ProducerHandler
	now            func() time.Time
}

func NewAdminService(
	passcode string,
	profileRepo repository.ProfileRepository,
	universityRepo repository.UniversityRepository,
	programRepo repository.ProgramRepository,
	appRepo repository.ApplicationRepository,
	auditRepo repository.AuditRepository,
	producer interfaces.ProducerHandler,
) AdminService {
	return &adminService{
		passcode:       passcode,
		profileRepo:    profileRepo,
		universityRepo: universityRepo,
		programRepo:    programRepo,
		appRepo:        appRepo,
		auditRepo:      auditRepo,
		producer:       producer,
		now:            time.Now,
	}
}

func (s *adminService) VerifyPasscode(passcode string) error {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.passcode)) != 1 {
		return apperr.ErrNotAuthenticated
	}
	return nil
}

// STUDENTS

func (s *adminService) ListStudents(limit, offset int) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.List(limit, offset)
	if err != nil {
		return nil, apperr.Persistencef("list students")
	}
	return profiles, nil
}

func (s *adminService) DeleteStudent(studentID string) error {
	if err := s.profileRepo.Delete(studentID); err != nil {
		return apperr.Persistencef("delete student")
	}
	return nil
}

// UNIVERSITIES

func (s *adminService) CreateUniversity(u *domain.University) error {
	if strings.TrimSpace(u.Name) == "" {
		return apperr.Validationf("name is required")
	}
	u.Name = strings.TrimSpace(u.Name)
	if err := s.universityRepo.Create(u); err != nil {
		if helper.IsUniqueViolation(err) {
			return apperr.Validationf("university %q already exists", u.Name)
		}
		return apperr.Persistencef("create university")
	}
	return nil
}

func (s *adminService) UpdateUniversity(id string, in *domain.University) (*domain.University, error) {
	u, err := s.universityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("university")
		}
		return nil, apperr.Persistencef("load university")
	}
	if strings.TrimSpace(in.Name) != "" {
		u.Name = strings.TrimSpace(in.Name)
	}
	if strings.TrimSpace(in.Country) != "" {
		u.Country = strings.TrimSpace(in.Country)
	}
	if err := s.universityRepo.Save(u); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperr.Validationf("university %q already exists", u.Name)
		}
		return nil, apperr.Persistencef("save university")
	}
	return u, nil
}

func (s *adminService) DeleteUniversity(id string) error {
	if err := s.universityRepo.Delete(id); err != nil {
		return apperr.Persistencef("delete university")
	}
	return nil
}

// PROGRAMS

func (s *adminService) CreateProgram(p *domain.Program) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperr.Validationf("name is required")
	}
	if p.UniversityID == "" {
		return apperr.Validationf("university_id is required")
	}
	if _, err := s.universityRepo.FindByID(p.UniversityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("university")
		}
		return apperr.Persistencef("load university")
	}
	if err := validateThresholds(p); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := s.programRepo.Create(p); err != nil {
		return apperr.Persistencef("create program")
	}
	return nil
}

func (s *adminService) UpdateProgram(id string, in *domain.Program) (*domain.Program, error) {
	p, err := s.programRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("program")
		}
		return nil, apperr.Persistencef("load program")
	}
	if err := validateThresholds(in); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) != "" {
		p.Name = strings.TrimSpace(in.Name)
	}
	p.MinSSCGPA = in.MinSSCGPA
	p.MinHSCGPA = in.MinHSCGPA
	p.MinOLevelPoints = in.MinOLevelPoints
	p.MinALevelPoints = in.MinALevelPoints
	if in.Duration != "" {
		p.Duration = in.Duration
	}
	if in.TuitionFee != "" {
		p.TuitionFee = in.TuitionFee
	}
	if in.IntakeTerm != "" {
		p.IntakeTerm = in.IntakeTerm
	}

	if err := s.programRepo.Save(p); err != nil {
		return nil, apperr.Persistencef("save program")
	}
	return p, nil
}

func (s *adminService) DeleteProgram(id string) error {
	if err := s.programRepo.Delete(id); err != nil {
		return apperr.Persistencef("delete program")
	}
	return nil
}

func validateThresholds(p *domain.Program) error {
	if p.MinSSCGPA != nil && (*p.MinSSCGPA < 0 || *p.MinSSCGPA > 5.0) {
		return apperr.Validationf("min_ssc_gpa must be between 0.0 and 5.0")
	}
	if p.MinHSCGPA != nil && (*p.MinHSCGPA < 0 || *p.MinHSCGPA > 5.0) {
		return apperr.Validationf("min_hsc_gpa must be between 0.0 and 5.0")
	}
	if p.MinOLevelPoints != nil && *p.MinOLevelPoints < 0 {
		return apperr.Validationf("min_o_level_points must not be negative")
	}
	if p.MinALevelPoints != nil && *p.MinALevelPoints < 0 {
		return apperr.Validationf("min_a_level_points must not be negative")
	}
	return nil
}

// APPLICATIONS

func (s *adminService) ListApplications(limit, offset int) ([]domain.Application, error) {
	apps, err := s.appRepo.ListAll(limit, offset)
	if err != nil {
		return nil, apperr.Persistencef("list applications")
	}
	return apps, nil
}

func (s *adminService) SetApplicationStatus(actorID, applicationID string, input dto.SetStatusRequest) (*dto.StatusChangeResponse, error) {
	if !domain.ValidStatus(input.Status) {
		return nil, apperr.Validationf("invalid status %q", input.Status)
	}

	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("application")
		}
		return nil, apperr.Persistencef("load application")
	}

	fromStatus := app.Status
	app.Status = input.Status
	if err := s.appRepo.Save(app); err != nil {
		return nil, apperr.Persistencef("save application status")
	}

	audit := &domain.ApplicationStatusAudit{
		ApplicationID: app.ID,
		ActorID:       actorID,
		FromStatus:    fromStatus,
		ToStatus:      input.Status,
		Note:          input.Note,
	}
	if err := s.auditRepo.Create(audit); err != nil {
		// The status change already happened; losing the audit row is worth
		// surfacing, not worth reverting.
		log.Printf("status audit write failed for application %s: %v", app.ID, err)
	}

	resp := &dto.StatusChangeResponse{ApplicationID: app.ID, Status: app.Status}

	if input.Status == domain.StatusAccepted {
		preview, err := s.composeAcceptanceEmail(app)
		if err != nil {
			log.Printf("acceptance email composition failed for application %s: %v", app.ID, err)
		} else {
			resp.Email = preview
			s.publishAccepted(app, preview)
		}
	}

	return resp, nil
}

func (s *adminService) ListStatusAudit(applicationID string) ([]domain.ApplicationStatusAudit, error) {
	entries, err := s.auditRepo.ListByApplication(applicationID)
	if err != nil {
		return nil, apperr.Persistencef("list status audit")
	}
	return entries, nil
}

func (s *adminService) composeAcceptanceEmail(app *domain.Application) (*dto.EmailPreview, error) {
	student, university, program, err := s.lookups(app)
	if err != nil {
		return nil, err
	}
	if student.Email == "" {
		return nil, apperr.Validationf("student email not found")
	}

	uniName := fallback(university, "University", "the university")
	progName := "the program"
	if program != nil && program.Name != "" {
		progName = program.Name
	}
	studentName := "Student"
	if student.FullName != "" {
		studentName = student.FullName
	}

	return &dto.EmailPreview{
		To:      student.Email,
		Subject: fmt.Sprintf("Congratulations! Admission Accepted to %s", uniName.subject),
		Body: fmt.Sprintf(
			"Dear %s,\n\nWe are pleased to inform you that your application for %s at %s has been ACCEPTED!\n\nPlease log in to your dashboard to view the details.\n\nBest regards,\nBhortiJuddho Admin Team",
			studentName, progName, uniName.body,
		),
	}, nil
}

func (s *adminService) ComposeUpdateEmail(applicationID string) (*dto.EmailPreview, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("application")
		}
		return nil, apperr.Persistencef("load application")
	}

	student, university, program, err := s.lookups(app)
	if err != nil {
		return nil, err
	}
	if student.Email == "" {
		return nil, apperr.Validationf("student email not found")
	}

	uniName := fallback(university, "University", "the university")
	progName := "the program"
	if program != nil && program.Name != "" {
		progName = program.Name
	}
	studentName := "Student"
	if student.FullName != "" {
		studentName = student.FullName
	}

	return &dto.EmailPreview{
		To:      student.Email,
		Subject: fmt.Sprintf("Update regarding your application to %s", uniName.subject),
		Body: fmt.Sprintf(
			"Dear %s,\n\nThis is an update regarding your application for %s.\n\nBest regards,\nBhortiJuddho Admin Team",
			studentName, progName,
		),
	}, nil
}

func (s *adminService) lookups(app *domain.Application) (*domain.Profile, *domain.University, *domain.Program, error) {
	student, err := s.profileRepo.FindByID(app.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperr.NotFoundf("student")
		}
		return nil, nil, nil, apperr.Persistencef("load student")
	}

	// University/program may have been deleted since the application was
	// created; the wording degrades to placeholders instead of failing.
	university, _ := s.universityRepo.FindByID(app.UniversityID)
	program, _ := s.programRepo.FindByID(app.ProgramID)
	return student, university, program, nil
}

type uniNames struct {
	subject string
	body    string
}

func fallback(u *domain.University, subjectDefault, bodyDefault string) uniNames {
	if u != nil && u.Name != "" {
		return uniNames{subject: u.Name, body: u.Name}
	}
	return uniNames{subject: subjectDefault, body: bodyDefault}
}

func (s *adminService) publishAccepted(app *domain.Application, preview *dto.EmailPreview) {
	if s.producer == nil {
		return
	}
	event := dto.ApplicationAcceptedEvent{
		ApplicationID: app.ID,
		StudentID:     app.StudentID,
		To:            preview.To,
		Subject:       preview.Subject,
		Body:          preview.Body,
		OccurredAt:    s.now().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal accepted event: %v", err)
		return
	}
	if err := s.producer.PublishMessage([]byte(dto.EventKeyApplicationAccepted), payload); err != nil {
		log.Printf("publish accepted event: %v", err)
	}
}
