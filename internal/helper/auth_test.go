package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundtrip(t *testing.T) {
	a := SetupAuth("test-secret")

	token, err := a.GenerateToken("student-1", "s@example.com", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", claims.UserID)
	assert.Equal(t, "s@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

func TestVerifyTokenAcceptsBearerPrefix(t *testing.T) {
	a := SetupAuth("test-secret")

	token, err := a.GenerateToken("student-1", "s@example.com", "student")
	require.NoError(t, err)

	claims, err := a.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", claims.UserID)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	a := SetupAuth("test-secret")
	other := SetupAuth("different-secret")

	token, err := a.GenerateToken("student-1", "s@example.com", "student")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresUserAndRole(t *testing.T) {
	a := SetupAuth("test-secret")

	_, err := a.GenerateToken("", "s@example.com", "student")
	assert.Error(t, err)

	_, err = a.GenerateToken("student-1", "s@example.com", "")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	a := SetupAuth("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, a.VerifyPassword("secret1", string(hash)))
	assert.Error(t, a.VerifyPassword("wrong", string(hash)))
}
