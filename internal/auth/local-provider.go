package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/domain"
)

// localProvider stores credentials in the profiles table: bcrypt hash on
// signup, compare on signin.
type localProvider struct {
	profiles ProfileStore
}

func NewLocalProvider(deps Deps) Provider {
	return &localProvider{profiles: deps.Profiles}
}

func (p *localProvider) SignUp(email, password, fullName string) (*domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Validationf("a valid email is required")
	}
	if len(password) < 6 {
		return nil, apperr.Validationf("password must be at least 6 characters")
	}

	if existing, err := p.profiles.FindByEmail(email); err == nil && existing != nil {
		return nil, apperr.Validationf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
	}
	return p.profiles.Create(profile)
}

func (p *localProvider) SignIn(email, password string) (*domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperr.ErrNotAuthenticated
	}

	profile, err := p.profiles.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotAuthenticated
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrNotAuthenticated
	}
	return profile, nil
}
