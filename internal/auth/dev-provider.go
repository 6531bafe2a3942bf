package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

// devProvider is the development fake: it accepts any email/password pair and
// derives a stable id from the email, so repeated logins in a dev environment
// keep pointing at the same profile row.
type devProvider struct {
	profiles ProfileStore
}

func NewDevProvider(deps Deps) Provider {
	log.Println("auth: using dev provider - any email/password is accepted")
	return &devProvider{profiles: deps.Profiles}
}

func (p *devProvider) SignUp(email, password, fullName string) (*domain.Profile, error) {
	return p.ensure(email, fullName)
}

func (p *devProvider) SignIn(email, password string) (*domain.Profile, error) {
	return p.ensure(email, "")
}

func (p *devProvider) ensure(email, fullName string) (*domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		email = "dev@example.com"
	}

	if existing, err := p.profiles.FindByEmail(email); err == nil && existing != nil {
		return existing, nil
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &domain.Profile{
		ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)).String(),
		Email:    email,
		FullName: strings.TrimSpace(fullName),
	}
	return p.profiles.Create(profile)
}
