package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/eligibility"
	"github.com/bhortijuddho/admission-svc/internal/repository"
)

type AdmissionService interface {
	// CheckEligibility parses the raw credential input and compares it to the
	// program's thresholds. Malformed input is reported as a validation error;
	// the evaluator never runs on defaulted zeroes.
	CheckEligibility(studentID, programID string, input dto.EligibilityCheckRequest) (*eligibility.Result, error)

	// Apply is the eligibility-checked intake path: it re-evaluates, requires a
	// positive decision and an admission date, then atomically writes back the
	// credentials to the profile and inserts the Draft application.
	Apply(studentID, programID string, input dto.ApplyRequest) (*domain.Application, error)

	ListUniversities() ([]domain.University, error)
	ListPrograms() ([]domain.Program, error)
	ListProgramsByUniversity(universityID string) ([]domain.Program, error)

	ListApplications(studentID string) ([]domain.Application, error)
	UpdateApplication(studentID, applicationID string, input dto.UpdateApplicationRequest) (*domain.Application, error)
	DeleteApplication(studentID, applicationID string) error
}

type admissionService struct {
	uniRepo     repository.UniversityRepository
	programRepo repository.ProgramRepository
	appRepo     repository.ApplicationRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewAdmissionService(
	uniRepo repository.UniversityRepository,
	programRepo repository.ProgramRepository,
	appRepo repository.ApplicationRepository,
	profileRepo repository.ProfileRepository,
) AdmissionService {
	return &admissionService{
		uniRepo:     uniRepo,
		programRepo: programRepo,
		appRepo:     appRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *admissionService) ListUniversities() ([]domain.University, error) {
	unis, err := s.uniRepo.List()
	if err != nil {
		return nil, apperr.Persistencef("list universities: %v", err)
	}
	return unis, nil
}

func (s *admissionService) ListPrograms() ([]domain.Program, error) {
	programs, err := s.programRepo.List()
	if err != nil {
		return nil, apperr.Persistencef("list programs: %v", err)
	}
	return programs, nil
}

func (s *admissionService) ListProgramsByUniversity(universityID string) ([]domain.Program, error) {
	if universityID == "" {
		return nil, apperr.Validationf("university id is required")
	}
	programs, err := s.programRepo.ListByUniversity(universityID)
	if err != nil {
		return nil, apperr.Persistencef("list programs: %v", err)
	}
	return programs, nil
}

func (s *admissionService) CheckEligibility(studentID, programID string, input dto.EligibilityCheckRequest) (*eligibility.Result, error) {
	if studentID == "" {
		return nil, apperr.ErrNotAuthenticated
	}

	program, err := s.loadProgram(programID)
	if err != nil {
		return nil, err
	}

	system, pair, err := parseCredentials(input)
	if err != nil {
		return nil, err
	}

	res := eligibility.Evaluate(system, pair, programRequirement(program))
	return &res, nil
}

func (s *admissionService) Apply(studentID, programID string, input dto.ApplyRequest) (*domain.Application, error) {
	if studentID == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	if strings.TrimSpace(input.AdmissionDate) == "" {
		return nil, apperr.Validationf("admission_date is required")
	}

	program, err := s.loadProgram(programID)
	if err != nil {
		return nil, err
	}

	system, pair, err := parseCredentials(input.EligibilityCheckRequest)
	if err != nil {
		return nil, err
	}

	res := eligibility.Evaluate(system, pair, programRequirement(program))
	if !res.Eligible {
		return nil, apperr.Validationf("credentials do not meet the program's minimum requirements")
	}

	checkedAt := s.now()
	app := &domain.Application{
		StudentID:            studentID,
		UniversityID:         program.UniversityID,
		ProgramID:            program.ID,
		Status:               domain.StatusDraft,
		IsEligible:           true,
		AdmissionDate:        strings.TrimSpace(input.AdmissionDate),
		EligibilityCheckedAt: &checkedAt,
	}

	// Write back the active scheme's credentials and null the alternate
	// scheme's fields, in the same transaction as the application insert.
	err = s.appRepo.CreateWithCredentialWriteback(app, credentialWriteback(system, pair))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("profile")
		}
		return nil, apperr.Persistencef("create application")
	}
	return app, nil
}

func (s *admissionService) ListApplications(studentID string) ([]domain.Application, error) {
	if studentID == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	apps, err := s.appRepo.ListByStudent(studentID)
	if err != nil {
		return nil, apperr.Persistencef("list applications")
	}
	return apps, nil
}

func (s *admissionService) UpdateApplication(studentID, applicationID string, input dto.UpdateApplicationRequest) (*domain.Application, error) {
	app, err := s.owned(studentID, applicationID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, apperr.Validationf("invalid status %q", *input.Status)
		}
		app.Status = *input.Status
	}
	if input.AdmissionDate != nil {
		if strings.TrimSpace(*input.AdmissionDate) == "" {
			return nil, apperr.Validationf("admission_date cannot be empty")
		}
		app.AdmissionDate = strings.TrimSpace(*input.AdmissionDate)
	}

	if err := s.appRepo.Save(app); err != nil {
		return nil, apperr.Persistencef("save application")
	}
	return app, nil
}

func (s *admissionService) DeleteApplication(studentID, applicationID string) error {
	if _, err := s.owned(studentID, applicationID); err != nil {
		return err
	}
	if err := s.appRepo.Delete(applicationID); err != nil {
		return apperr.Persistencef("delete application")
	}
	return nil
}

func (s *admissionService) owned(studentID, applicationID string) (*domain.Application, error) {
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

func (s *admissionService) loadProgram(programID string) (*domain.Program, error) {
	program, err := s.programRepo.FindByID(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("program")
		}
		return nil, apperr.Persistencef("load program")
	}
	return program, nil
}

func parseCredentials(input dto.EligibilityCheckRequest) (eligibility.System, eligibility.Pair, error) {
	system, err := eligibility.ParseSystem(input.EducationSystem)
	if err != nil {
		return "", eligibility.Pair{}, apperr.Validationf("%v", err)
	}

	creds := eligibility.Credentials{
		System:    system,
		SSCGPARaw: input.SSCGPA,
		HSCGPARaw: input.HSCGPA,
		OLevelRaw: input.OLevelPoints,
		ALevelRaw: input.ALevelPoints,
	}
	pair, err := creds.ActivePair()
	if err != nil {
		return "", eligibility.Pair{}, apperr.Validationf("%v", err)
	}
	return system, pair, nil
}

func programRequirement(p *domain.Program) eligibility.Requirement {
	return eligibility.Requirement{
		MinSSCGPA:       p.MinSSCGPA,
		MinHSCGPA:       p.MinHSCGPA,
		MinOLevelPoints: p.MinOLevelPoints,
		MinALevelPoints: p.MinALevelPoints,
	}
}

func credentialWriteback(system eligibility.System, pair eligibility.Pair) map[string]any {
	if system == eligibility.SystemBD {
		return map[string]any{
			"education_system": string(system),
			"ssc_gpa":          pair.First,
			"hsc_gpa":          pair.Second,
			"o_level_points":   nil,
			"a_level_points":   nil,
		}
	}
	return map[string]any{
		"education_system": string(system),
		"ssc_gpa":          nil,
		"hsc_gpa":          nil,
		"o_level_points":   int(pair.First),
		"a_level_points":   int(pair.Second),
	}
}
