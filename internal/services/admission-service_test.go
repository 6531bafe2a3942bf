package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/dto"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func newAdmissionFixture() (*admissionService, *fakeProgramRepo, *fakeApplicationRepo, *fakeProfileRepo) {
	uniRepo := newFakeUniversityRepo()
	programRepo := newFakeProgramRepo()
	appRepo := newFakeApplicationRepo()
	profileRepo := newFakeProfileRepo()

	_ = uniRepo.Create(&domain.University{ID: "uni-1", Name: "University of Dhaka"})
	_ = programRepo.Create(&domain.Program{
		ID:              "prog-1",
		UniversityID:    "uni-1",
		Name:            "BSc in Computer Science",
		MinSSCGPA:       ptrF(4.0),
		MinHSCGPA:       ptrF(4.5),
		MinOLevelPoints: ptrI(20),
		MinALevelPoints: ptrI(10),
	})
	_, _ = profileRepo.Create(&domain.Profile{ID: "student-1", Email: "s@example.com", FullName: "Rahim Uddin"})

	svc := NewAdmissionService(uniRepo, programRepo, appRepo, profileRepo).(*admissionService)
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }
	return svc, programRepo, appRepo, profileRepo
}

func bdInput(ssc, hsc string) dto.EligibilityCheckRequest {
	return dto.EligibilityCheckRequest{
		EducationSystem: "BD",
		SSCGPA:          ssc,
		HSCGPA:          hsc,
	}
}

func TestCheckEligibilityPasses(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	res, err := svc.CheckEligibility("student-1", "prog-1", bdInput("4.5", "5.0"))
	require.NoError(t, err)
	assert.True(t, res.Eligible)
}

func TestCheckEligibilityOneLegShortFails(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	res, err := svc.CheckEligibility("student-1", "prog-1", bdInput("3.9", "5.0"))
	require.NoError(t, err)
	assert.False(t, res.Eligible)
}

func TestCheckEligibilityMalformedInputIsRefused(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	_, err := svc.CheckEligibility("student-1", "prog-1", bdInput("abc", "5.0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCheckEligibilityUnknownProgram(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	_, err := svc.CheckEligibility("student-1", "nope", bdInput("5.0", "5.0"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCheckEligibilityRequiresAuth(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	_, err := svc.CheckEligibility("", "prog-1", bdInput("5.0", "5.0"))
	assert.ErrorIs(t, err, apperr.ErrNotAuthenticated)
}

func TestApplyRefusedWhenIneligible(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()

	_, err := svc.Apply("student-1", "prog-1", dto.ApplyRequest{
		EligibilityCheckRequest: bdInput("3.0", "5.0"),
		AdmissionDate:           "Spring 2026",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, appRepo.apps, "no application row on refusal")
}

func TestApplyRequiresAdmissionDate(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	_, err := svc.Apply("student-1", "prog-1", dto.ApplyRequest{
		EligibilityCheckRequest: bdInput("5.0", "5.0"),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestApplyCreatesDraftWithWriteback(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()

	app, err := svc.Apply("student-1", "prog-1", dto.ApplyRequest{
		EligibilityCheckRequest: bdInput("4.8", "4.9"),
		AdmissionDate:           "Spring 2026",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, app.Status)
	assert.True(t, app.IsEligible)
	assert.Equal(t, "uni-1", app.UniversityID)
	assert.Equal(t, "Spring 2026", app.AdmissionDate)
	require.NotNil(t, app.EligibilityCheckedAt)
	assert.Equal(t, 2026, app.EligibilityCheckedAt.Year())

	// the active scheme is persisted and the alternate scheme is nulled
	wb := appRepo.lastWriteback
	require.NotNil(t, wb)
	assert.Equal(t, "BD", wb["education_system"])
	assert.Equal(t, 4.8, wb["ssc_gpa"])
	assert.Equal(t, 4.9, wb["hsc_gpa"])
	assert.Nil(t, wb["o_level_points"])
	assert.Nil(t, wb["a_level_points"])
}

func TestApplyCambridgeWriteback(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()

	_, err := svc.Apply("student-1", "prog-1", dto.ApplyRequest{
		EligibilityCheckRequest: dto.EligibilityCheckRequest{
			EducationSystem: "Cambridge",
			OLevelPoints:    "20",
			ALevelPoints:    "10",
		},
		AdmissionDate: "Fall 2026",
	})
	require.NoError(t, err)

	wb := appRepo.lastWriteback
	require.NotNil(t, wb)
	assert.Equal(t, "Cambridge", wb["education_system"])
	assert.Equal(t, 20, wb["o_level_points"])
	assert.Equal(t, 10, wb["a_level_points"])
	assert.Nil(t, wb["ssc_gpa"])
	assert.Nil(t, wb["hsc_gpa"])
}

func TestApplyProfileMissingRollsUpAsNotFound(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()
	appRepo.profileMissing = true

	_, err := svc.Apply("student-1", "prog-1", dto.ApplyRequest{
		EligibilityCheckRequest: bdInput("5.0", "5.0"),
		AdmissionDate:           "Spring 2026",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateApplicationOwnership(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()
	_ = appRepo.CreateWithCredentialWriteback(&domain.Application{
		ID: "app-1", StudentID: "someone-else", Status: domain.StatusDraft,
	}, nil)

	status := domain.StatusSubmitted
	_, err := svc.UpdateApplication("student-1", "app-1", dto.UpdateApplicationRequest{Status: &status})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateApplicationRejectsUnknownStatus(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()
	_ = appRepo.CreateWithCredentialWriteback(&domain.Application{
		ID: "app-1", StudentID: "student-1", Status: domain.StatusDraft,
	}, nil)

	bogus := "Approved"
	_, err := svc.UpdateApplication("student-1", "app-1", dto.UpdateApplicationRequest{Status: &bogus})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDeleteApplication(t *testing.T) {
	svc, _, appRepo, _ := newAdmissionFixture()
	_ = appRepo.CreateWithCredentialWriteback(&domain.Application{
		ID: "app-1", StudentID: "student-1", Status: domain.StatusDraft,
	}, nil)

	require.NoError(t, svc.DeleteApplication("student-1", "app-1"))
	assert.Empty(t, appRepo.apps)
}
