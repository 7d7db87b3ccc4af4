package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{
		Username:     "alice",
		PasswordHash: "$2a$10$fakehash",
		Email:        "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "alice"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestUserRepository_FindUserByUsername_Missing(t *testing.T) {
	repo := NewUserRepository(logger.Nop())

	_, err := repo.FindUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
