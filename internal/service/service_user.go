package service

import (
	"context"
	"fmt"

	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/internal/store"
	"github.com/messagely/messagely/models"
)

// userService is the concrete implementation of UserService: a read-only
// directory over the user repository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// List returns the public projections of all users, order not significant.
func (s *userService) List(ctx context.Context) ([]models.UserProfile, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// Get returns the full profile for one user, including join_at and
// last_login_at, with the password hash stripped at the repository level.
func (s *userService) Get(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user fetch ended with error")
		return models.User{}, fmt.Errorf("user fetch ended with error: %w", err)
	}

	return user, nil
}
