package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"contacthub/internal/apperrors"
	"contacthub/internal/auth"
	"contacthub/internal/repository"
)

func newAuthService() AuthService {
	return NewAuthService(repository.NewUserRepository(), auth.NewJWTService("test-secret", time.Hour))
}

func TestAuthService_Signup(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	user, token, err := service.Signup(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)

	// Stored credential is a salted hash, never the plaintext.
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))

	// The issued token round-trips to the same identity.
	identity, err := auth.NewJWTService("test-secret", time.Hour).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	_, _, err := service.Signup(ctx, "A@x.com", "secret1")
	require.NoError(t, err)

	user, token, err := service.Signup(ctx, "a@x.com", "secret2")
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "secret1",
		},
		{
			name:          "wrong password",
			email:         "a@x.com",
			password:      "wrong",
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "unknown email",
			email:         "nouser@x.com",
			password:      "x",
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newAuthService()
			ctx := context.Background()

			_, _, err := service.Signup(ctx, "a@x.com", "secret1")
			require.NoError(t, err)

			user, token, err := service.Login(ctx, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, "a@x.com", user.Email)
			}
		})
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	_, _, err := service.Signup(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPassword := service.Login(ctx, "a@x.com", "wrong")
	_, _, unknownEmail := service.Login(ctx, "nouser@x.com", "x")

	// Both failures surface the same error, and so the same message.
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.EqualError(t, wrongPassword, apperrors.ErrInvalidCredentials.Error())
}

func TestAuthService_Login_NormalizedEmail(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	_, _, err := service.Signup(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	user, _, err := service.Login(ctx, "  A@X.COM ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}
