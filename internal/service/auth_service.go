package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"contacthub/internal/apperrors"
	"contacthub/internal/auth"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

// bcryptCost is tuned so hashing stays around the 100ms class on commodity
// hardware.
const bcryptCost = 10

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Signup creates a user with a salted password hash and issues a first token.
// The plaintext password is never stored.
func (s *authService) Signup(ctx context.Context, email, password string) (*model.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hashedPassword))
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password both yield ErrInvalidCredentials so the response never reveals
// which one it was.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// FindByEmail resolves a user for the authenticated verify endpoint.
func (s *authService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.FindByEmail(ctx, email)
}
