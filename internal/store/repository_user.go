package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/messagely/messagely/internal/logger"
	"github.com/messagely/messagely/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup, and profile projections
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (JoinAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Password, user.FirstName, user.LastName, user.Phone)

	var created models.User
	if err := row.Scan(&created.Username, &created.Password, &created.FirstName, &created.LastName, &created.Phone, &created.JoinAt, &created.LastLoginAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		case "":
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the full user record, including the stored
// password hash, for credential verification.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&foundUser.Username, &foundUser.Password, &foundUser.FirstName, &foundUser.LastName, &foundUser.Phone, &foundUser.JoinAt, &foundUser.LastLoginAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// TouchLastLogin sets last_login_at to the current database time. It is
// idempotent; updating an already-set timestamp simply advances it.
func (r *userRepository) TouchLastLogin(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchLastLogin, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Str("username", username).Msg("error updating last login timestamp")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListUsers returns the public projections of all registered users.
// An empty database yields an empty slice, not an error.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.UserProfile, 0)
	for rows.Next() {
		var u models.UserProfile
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetUser returns the full profile for one user. The password hash is part of
// the scanned record but must never cross the service boundary; the service
// layer strips it before returning data to callers.
func (r *userRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	user, err := r.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}
