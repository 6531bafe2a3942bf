// Package auth abstracts where student identities come from. The service only
// ever asks a Provider for a stable student id; which backend answers is a
// startup decision, never an ambient runtime check.
package auth

import (
	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type Provider interface {
	// SignUp registers a new student and returns the created profile.
	SignUp(email, password, fullName string) (*domain.Profile, error)
	// SignIn authenticates and returns the student's profile.
	SignIn(email, password string) (*domain.Profile, error)
}

// NewProvider selects the implementation by name ("local" or "dev").
func NewProvider(name string, deps Deps) Provider {
	if name == "dev" {
		return NewDevProvider(deps)
	}
	return NewLocalProvider(deps)
}

// Deps are the collaborators both providers share.
type Deps struct {
	Profiles ProfileStore
}

// ProfileStore is the slice of the profile repository the providers need.
type ProfileStore interface {
	Create(profile *domain.Profile) (*domain.Profile, error)
	FindByEmail(email string) (*domain.Profile, error)
}
