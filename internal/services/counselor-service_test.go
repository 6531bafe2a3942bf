package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/clients/counselor"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/dto"
)

func newCounselorFixture() (CounselorService, *fakeApplicationRepo, *fakeDocumentRepo) {
	profileRepo := newFakeProfileRepo()
	appRepo := newFakeApplicationRepo()
	docRepo := newFakeDocumentRepo()

	_, _ = profileRepo.Create(&domain.Profile{ID: "student-1", Email: "s@example.com", FullName: "Rahim Uddin"})

	// unconfigured client forces the rule-based fallback
	svc := NewCounselorService(counselor.New("", ""), profileRepo, appRepo, docRepo)
	return svc, appRepo, docRepo
}

func TestAskRequiresMessage(t *testing.T) {
	svc, _, _ := newCounselorFixture()

	_, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{Message: "   "})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAskStressReplyUsesFirstName(t *testing.T) {
	svc, _, _ := newCounselorFixture()

	res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{
		Message: "I'm so stressed about admissions",
	})
	require.NoError(t, err)
	assert.Equal(t, "rules", res.Source)
	assert.Contains(t, res.Reply, "Rahim")
	assert.Contains(t, res.Reply, "stress is normal")
}

func TestAskStressMentionsExistingApplications(t *testing.T) {
	svc, appRepo, _ := newCounselorFixture()
	_ = appRepo.CreateWithCredentialWriteback(&domain.Application{ID: "app-1", StudentID: "student-1"}, nil)
	_ = appRepo.CreateWithCredentialWriteback(&domain.Application{ID: "app-2", StudentID: "student-1"}, nil)

	res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{
		Message: "feeling overwhelmed",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Reply, "2 application(s)")
}

func TestAskDocumentReplyCountsUploads(t *testing.T) {
	svc, _, docRepo := newCounselorFixture()

	res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{
		Message: "what about my documents?",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Reply, "no documents uploaded yet")

	_ = docRepo.Create(&domain.Document{StudentID: "student-1", FileURL: "u", DocumentType: "transcript"})
	res, err = svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{
		Message: "what about my documents?",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Reply, "1 document(s) on file")
}

func TestAskKeywordRouting(t *testing.T) {
	svc, _, _ := newCounselorFixture()

	cases := []struct {
		message string
		want    string
	}{
		{"how is my GPA judged?", "GPA weighting differs"},
		{"which university should I pick", "reach"},
		{"help me with my essay", "one concrete story"},
		{"when is the deadline?", "Nov-Jan"},
	}
	for _, tc := range cases {
		res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{Message: tc.message})
		require.NoError(t, err, tc.message)
		assert.Equal(t, "rules", res.Source)
		assert.Contains(t, res.Reply, tc.want, tc.message)
	}
}

func TestAskDefaultReply(t *testing.T) {
	svc, _, _ := newCounselorFixture()

	res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Reply, "What would you like to work through?")
}

func TestAskUsesAPIWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"API advice"}]}}]}`))
	}))
	defer srv.Close()

	profileRepo := newFakeProfileRepo()
	svc := NewCounselorService(counselor.New("key", srv.URL), profileRepo, newFakeApplicationRepo(), newFakeDocumentRepo())

	res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "api", res.Source)
	assert.Equal(t, "API advice", res.Reply)
}

func TestAskFallsBackToRulesWhenAPIFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	profileRepo := newFakeProfileRepo()
	svc := NewCounselorService(counselor.New("key", srv.URL), profileRepo, newFakeApplicationRepo(), newFakeDocumentRepo())

	res, err := svc.Ask(context.Background(), "student-1", dto.CounselorAskRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "rules", res.Source)
}

func TestAskUnknownStudentStillAnswers(t *testing.T) {
	svc, _, _ := newCounselorFixture()

	res, err := svc.Ask(context.Background(), "ghost", dto.CounselorAskRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Contains(t, res.Reply, "there,")
}
