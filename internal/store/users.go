package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/models"
)

type userRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates an empty in-memory user store. Users appear only
// through registration and are never updated or deleted afterwards.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		users:  make(map[string]models.User),
		logger: logger,
	}
}

func (r *userRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return models.User{}, ErrUserAlreadyExists
	}

	r.users[user.Username] = user

	return user, nil
}

func (r *userRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

func (r *userRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
