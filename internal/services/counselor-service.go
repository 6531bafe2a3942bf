package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/clients/counselor"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/repository"
)

// apiTimeout bounds the external responder call; on expiry the rule-based
// fallback answers instead.
const apiTimeout = 8 * time.Second

type CounselorService interface {
	Ask(ctx context.Context, studentID string, input dto.CounselorAskRequest) (*dto.CounselorAskResponse, error)
}

type counselorService struct {
	api          *counselor.Client
	profileRepo  repository.ProfileRepository
	appRepo      repository.ApplicationRepository
	documentRepo repository.DocumentRepository
}

func NewCounselorService(
	api *counselor.Client,
	profileRepo repository.ProfileRepository,
	appRepo repository.ApplicationRepository,
	documentRepo repository.DocumentRepository,
) CounselorService {
	return &counselorService{
		api:          api,
		profileRepo:  profileRepo,
		appRepo:      appRepo,
		documentRepo: documentRepo,
	}
}

// askContext is the student snapshot the responder personalizes with.
type askContext struct {
	FirstName    string
	Applications int
	Documents    int
}

func (s *counselorService) Ask(ctx context.Context, studentID string, input dto.CounselorAskRequest) (*dto.CounselorAskResponse, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, apperr.Validationf("message is required")
	}

	actx := s.loadContext(studentID)

	if s.api.Configured() {
		apiCtx, cancel := context.WithTimeout(ctx, apiTimeout)
		defer cancel()

		reply, err := s.api.Generate(apiCtx, buildPrompt(message, actx))
		if err == nil && strings.TrimSpace(reply) != "" {
			return &dto.CounselorAskResponse{Reply: reply, Source: "api"}, nil
		}
		log.Printf("counselor api unavailable, using rules: %v", err)
	}

	return &dto.CounselorAskResponse{
		Reply:  ruleBasedReply(message, actx),
		Source: "rules",
	}, nil
}

func (s *counselorService) loadContext(studentID string) askContext {
	actx := askContext{FirstName: "there"}

	if profile, err := s.profileRepo.FindByID(studentID); err == nil && profile.FullName != "" {
		actx.FirstName = strings.Fields(profile.FullName)[0]
	}
	if apps, err := s.appRepo.ListByStudent(studentID); err == nil {
		actx.Applications = len(apps)
	}
	if docs, err := s.documentRepo.ListByStudent(studentID); err == nil {
		actx.Documents = len(docs)
	}
	return actx
}

func buildPrompt(message string, actx askContext) string {
	return fmt.Sprintf(
		"You are an admission counselor for university applicants in Bangladesh. "+
			"The student has %d application(s) and %d uploaded document(s). "+
			"Answer concisely and practically.\n\nStudent: %s",
		actx.Applications, actx.Documents, message,
	)
}

// containsAny reports whether the lowercased message mentions any keyword.
func containsAny(msg string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}

func ruleBasedReply(message string, actx askContext) string {
	msg := strings.ToLower(message)

	switch {
	case containsAny(msg, "stress", "anxious", "worried", "overwhelmed", "pressure"):
		portfolio := "Consider applying to 5-7 universities to spread your chances."
		if actx.Applications > 0 {
			portfolio = fmt.Sprintf("You already have %d application(s) in progress - that is real momentum.", actx.Applications)
		}
		return fmt.Sprintf("%s, admission season stress is normal. %s Break the work into document prep, exam prep, and submission, and take one block at a time.", actx.FirstName, portfolio)

	case containsAny(msg, "gpa", "grade", "result", "cgpa"):
		return "GPA weighting differs per university in Bangladesh: public universities combine SSC+HSC with an admission test (often 40-60% test weight), private universities mostly take HSC directly with a 3.5-4.0 minimum. Run the eligibility check on each program you are considering before you apply."

	case containsAny(msg, "which university", "which uni", "choose university", "recommend"):
		return "Score your options on five axes: program ranking, placement rate, cost, location, and UGC accreditation. Mix 2 reach, 3 target, and 2 safety schools, then compare with the eligibility checker."

	case containsAny(msg, "document", "certificate", "transcript"):
		if actx.Documents == 0 {
			return fmt.Sprintf("%s, you have no documents uploaded yet. Start with your SSC and HSC certificates and transcripts - most programs ask for those first.", actx.FirstName)
		}
		return fmt.Sprintf("You have %d document(s) on file. Check each application's requirements for extras like recommendation letters or test score reports.", actx.Documents)

	case containsAny(msg, "essay", "statement"):
		return "Keep essays specific: one concrete story per prompt, why this program, and what you will do with it. Draft in the essay editor so everything stays attached to the right application."

	case containsAny(msg, "deadline", "date", "when"):
		return "Public university admission windows in Bangladesh cluster around Nov-Jan; private universities run multiple intakes per year. Record the admission date on each application so nothing slips."

	default:
		return fmt.Sprintf("%s, I can help with eligibility, university selection, GPA questions, documents, essays, and deadlines. What would you like to work through?", actx.FirstName)
	}
}
