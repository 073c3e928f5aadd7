package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(openTestDB(t), testSecret, time.Hour)
}

func TestRegisterHashesPasswordAndForcesUserRole(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("John Doe", "John@Example.com", "user123")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "john@example.com", user.Email, "email normalized to lower case")
	assert.NotEqual(t, "user123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("user123")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("John Doe", "john@example.com", "user123")
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "john@example.com", "other")
	require.ErrorIs(t, err, ErrConflict)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("", "john@example.com", "user123")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register("John", "not-an-email", "user123")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register("John", "john@example.com", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginIssuesTokenWithIDAndRole(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("John Doe", "john@example.com", "user123")
	require.NoError(t, err)

	token, loggedIn, err := svc.Login("john@example.com", "user123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := utils.ParseAuthToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("John Doe", "john@example.com", "user123")
	require.NoError(t, err)

	_, _, err = svc.Login("john@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.Login("nobody@example.com", "user123")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.GetUser(4242)
	require.ErrorIs(t, err, ErrNotFound)
}
