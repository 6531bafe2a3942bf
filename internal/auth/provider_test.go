package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/apperr"
	"github.com/bhortijuddho/admission-svc/internal/domain"
)

type memProfileStore struct {
	profiles map[string]*domain.Profile // keyed by email
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: map[string]*domain.Profile{}}
}

func (s *memProfileStore) Create(p *domain.Profile) (*domain.Profile, error) {
	cp := *p
	s.profiles[cp.Email] = &cp
	return &cp, nil
}

func (s *memProfileStore) FindByEmail(email string) (*domain.Profile, error) {
	p, ok := s.profiles[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func TestNewProviderSelection(t *testing.T) {
	deps := Deps{Profiles: newMemProfileStore()}

	_, isDev := NewProvider("dev", deps).(*devProvider)
	assert.True(t, isDev)

	_, isLocal := NewProvider("local", deps).(*localProvider)
	assert.True(t, isLocal)

	// anything unrecognized falls back to local
	_, isLocal = NewProvider("", deps).(*localProvider)
	assert.True(t, isLocal)
}

func TestLocalSignUpAndSignIn(t *testing.T) {
	p := NewLocalProvider(Deps{Profiles: newMemProfileStore()})

	created, err := p.SignUp("Student@Example.com", "secret1", "Rahim Uddin")
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", created.Email)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secret1", created.PasswordHash)

	got, err := p.SignIn("student@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = p.SignIn("student@example.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrNotAuthenticated)

	_, err = p.SignIn("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperr.ErrNotAuthenticated)
}

func TestLocalSignUpValidation(t *testing.T) {
	p := NewLocalProvider(Deps{Profiles: newMemProfileStore()})

	_, err := p.SignUp("not-an-email", "secret1", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = p.SignUp("a@b.com", "short", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLocalSignUpRejectsDuplicateEmail(t *testing.T) {
	p := NewLocalProvider(Deps{Profiles: newMemProfileStore()})

	_, err := p.SignUp("a@b.com", "secret1", "")
	require.NoError(t, err)
	_, err = p.SignUp("a@b.com", "secret2", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDevProviderIsDeterministic(t *testing.T) {
	p := NewDevProvider(Deps{Profiles: newMemProfileStore()})

	first, err := p.SignIn("dev@x.com", "anything")
	require.NoError(t, err)
	second, err := p.SignIn("dev@x.com", "different-password")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := p.SignIn("other@x.com", "anything")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestDevProviderSignUpKeepsExistingProfile(t *testing.T) {
	store := newMemProfileStore()
	p := NewDevProvider(Deps{Profiles: store})

	created, err := p.SignUp("dev@x.com", "pw", "Dev Student")
	require.NoError(t, err)
	assert.Equal(t, "Dev Student", created.FullName)

	again, err := p.SignUp("dev@x.com", "pw", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Dev Student", again.FullName, "existing row wins")
}
