package repository

import (
	"context"
	"sync"
	"time"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
)

// UserRepository defines credential persistence operations. Users are only
// ever created and looked up; update and delete are out of scope.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// userRepository keeps users in memory, keyed by normalized email. State is
// transient: a restart loses everything, by design. User ids come from a
// counter independent of contact ids.
type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]model.User
	nextID  uint
}

// NewUserRepository builds an empty in-memory repository. Construct one per
// process (or per test); consumers receive it via injection, never a global.
func NewUserRepository() UserRepository {
	return &userRepository{
		byEmail: make(map[string]model.User),
		nextID:  1,
	}
}

// Create stores a new user. The email is normalized before the uniqueness
// check, so "A@x.com" and "a@x.com" collide.
func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	key := model.NormalizeEmail(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	user := model.User{
		ID:           r.nextID,
		Email:        key,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.byEmail[key] = user

	return &user, nil
}

// FindByEmail looks up a user by normalized email in O(1).
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	key := model.NormalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byEmail[key]
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}
