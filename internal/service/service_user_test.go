package service

import (
	"context"
	"testing"
	"time"

	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/store"
	"github.com/messagely/messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	repo := &mockUserRepository{
		ListUsersFunc: func(_ context.Context) ([]models.UserProfile, error) {
			return []models.UserProfile{
				{Username: "alice", FirstName: "Alice", LastName: "Aliceson", Phone: "+1"},
				{Username: "bob", FirstName: "Bob", LastName: "Bobson", Phone: "+2"},
			}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	repo := &mockUserRepository{
		GetUserFunc: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "alice", username)
			return models.User{Username: "alice", FirstName: "Alice", JoinAt: now}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	user, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
	assert.True(t, user.JoinAt.Equal(now))
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockUserRepository{
		GetUserFunc: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
