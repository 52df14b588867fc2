package store

import (
	"context"

	"github.com/messagely/messagely/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser persists a new user record. The Password field must already
	// contain the bcrypt digest, never plaintext.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the full user record including the stored
	// password hash. Intended for credential verification only.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// TouchLastLogin sets last_login_at to the current time.
	TouchLastLogin(ctx context.Context, username string) error

	// ListUsers returns the public projections of all users.
	ListUsers(ctx context.Context) ([]models.UserProfile, error)

	// GetUser returns the full profile (without the hash) for one user.
	GetUser(ctx context.Context, username string) (models.User, error)
}

// MessageRepository is the persistence boundary for messages.
type MessageRepository interface {
	// CreateMessage persists a new message with sent_at assigned by the
	// database and read_at NULL.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)

	// GetMessage returns one message with both participants resolved.
	GetMessage(ctx context.Context, id int64) (models.MessageDetail, error)

	// MarkMessageRead stamps read_at if it is still NULL and returns the
	// resulting receipt. A second call leaves the first timestamp intact.
	MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error)

	// ListMessagesTo returns all messages addressed to username with the
	// sender resolved.
	ListMessagesTo(ctx context.Context, username string) ([]models.MessageWithSender, error)

	// ListMessagesFrom returns all messages sent by username with the
	// recipient resolved.
	ListMessagesFrom(ctx context.Context, username string) ([]models.MessageWithRecipient, error)
}
